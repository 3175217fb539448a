package models

// LoginRequest holds the fields of the login form.
type LoginRequest struct {
	Username string `validate:"required" message:"must provide username"`
	Password string `validate:"required" message:"must provide password"`
}
