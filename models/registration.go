package models

// RegistrationForm carries the full set of fields required to register.
// Every field is validated non-empty before any network call is made.
type RegistrationForm struct {
	Firstname string `json:"firstname" validate:"required"`
	Lastname  string `json:"lastname" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	Contact   string `json:"contact" validate:"required"`
	Gender    string `json:"gender" validate:"required"`
	DOB       string `json:"dob" validate:"required"`
	Password  string `json:"password" validate:"required"`
	Role      string `json:"role" validate:"required,oneof=student instructor"`
}
