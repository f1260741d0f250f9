package domain

import "errors"

var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrAdminNotFound = errors.New("admin not found")

// Admin is the single stored credential record. The bearer token issued on
// login is the full stateless proof of authentication; no session store exists.
type Admin struct {
	ID           int64  `json:"id" db:"id"`
	Name         string `json:"name" db:"name"`
	Email        string `json:"email" db:"email"`
	PasswordHash string `json:"-" db:"password_hash"`
}
