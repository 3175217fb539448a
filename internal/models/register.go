package models

// RegisterRequest holds the fields of the registration form.
type RegisterRequest struct {
	Username     string `validate:"required" message:"must provide username"`
	Password     string `validate:"required" message:"must provide password"`
	Confirmation string `validate:"required,eqfield=Password" message:"passwords must match"`
}
