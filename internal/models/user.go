package models

// User is a registered account. It is never modified after registration.
type User struct {
	ID           int64  `db:"id"`       // Primary key
	Username     string `db:"username"` // Globally unique login name
	PasswordHash string `db:"hash"`     // Salted one-way password digest
}
