package domain

// CardForm carries the admin editor's field values for one card. Techs is the
// raw comma-separated input; it is parsed when the form is built into a card.
type CardForm struct {
	Title         string `json:"title"`
	TitleFr       string `json:"titleFr"`
	Description   string `json:"description"`
	DescriptionFr string `json:"descriptionFr"`
	Category      string `json:"category"`
	CategoryFr    string `json:"categoryFr"`
	Image         string `json:"image"`
	DemoURL       string `json:"demoUrl"`
	Techs         string `json:"techs"`
}

// Validate enforces the required-field contract: title, image and description
// in the primary language. Everything else is optional.
func (f CardForm) Validate() error {
	switch {
	case f.Title == "":
		return &MissingFieldError{Field: "title"}
	case f.Image == "":
		return &MissingFieldError{Field: "image"}
	case f.Description == "":
		return &MissingFieldError{Field: "description"}
	}
	return nil
}

// Card builds the persisted record from the form. The caller assigns ID and
// SortOrder.
func (f CardForm) Card() Card {
	return Card{
		Title:         f.Title,
		TitleFr:       f.TitleFr,
		Description:   f.Description,
		DescriptionFr: f.DescriptionFr,
		Category:      f.Category,
		CategoryFr:    f.CategoryFr,
		Image:         f.Image,
		DemoURL:       f.DemoURL,
		Techs:         ParseTechs(f.Techs),
	}
}

// Fields returns the update payload for an existing record. SortOrder is never
// part of it; only the reconciler touches that field.
func (f CardForm) Fields() map[string]interface{} {
	return map[string]interface{}{
		"title":         f.Title,
		"titleFr":       f.TitleFr,
		"description":   f.Description,
		"descriptionFr": f.DescriptionFr,
		"category":      f.Category,
		"categoryFr":    f.CategoryFr,
		"image":         f.Image,
		"demoUrl":       f.DemoURL,
		"techs":         ParseTechs(f.Techs),
	}
}
