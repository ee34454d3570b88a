package contact

import "errors"

var errInvalidEmail = errors.New("invalid email address")

type fieldRequiredError struct {
	field string
}

func (e *fieldRequiredError) Error() string {
	return "missing required field: " + e.field
}

func errFieldRequired(field string) error {
	return &fieldRequiredError{field: field}
}

// IsValidationError reports whether err came from form validation rather than
// persistence, so the handler can answer 400 instead of 500.
func IsValidationError(err error) bool {
	var fr *fieldRequiredError
	return errors.As(err, &fr) || errors.Is(err, errInvalidEmail)
}
