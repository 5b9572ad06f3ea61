package models

// Subscriber is a single intake form submission. Name fields must be
// capitalized Cyrillic, the birth date and phone number are stored as
// opaque strings.
type Subscriber struct {
	LastName    string `json:"last_name" validate:"required,cyrillic_name"`
	FirstName   string `json:"first_name" validate:"required,cyrillic_name"`
	BirthDate   string `json:"b_date" validate:"required"`
	PhoneNumber string `json:"phone_number" validate:"required"`
	Email       string `json:"email" validate:"required,email"`
}

func (s *Subscriber) Validate() error {
	return validate.Struct(s)
}
