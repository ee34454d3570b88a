package contact

import (
	"strings"
	"time"
)

// Message is one submitted contact-form entry.
type Message struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Subject   string    `json:"subject,omitempty"`
	Body      string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

// SubmitRequest carries the contact form's field values.
type SubmitRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// Validate enforces the form contract: name, a plausible email address and a
// non-empty message.
func (r SubmitRequest) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return errFieldRequired("name")
	}
	email := strings.TrimSpace(r.Email)
	if email == "" {
		return errFieldRequired("email")
	}
	at := strings.Index(email, "@")
	if at <= 0 || at == len(email)-1 {
		return errInvalidEmail
	}
	if strings.TrimSpace(r.Message) == "" {
		return errFieldRequired("message")
	}
	return nil
}
