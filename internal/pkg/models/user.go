package models

import (
	"time"
)

// User roles
const (
	RoleCustomer = "CUSTOMER"
	RoleAdmin    = "ADMIN"
)

// User represents an identity known to the gateway (customer or admin).
// PasswordHash is only set for admins; OTP-created customers have none.
type User struct {
	ID           int64     `json:"user_id" db:"id"`
	Username     string    `json:"username" db:"username"`
	Role         string    `json:"role" db:"role"`
	Enabled      bool      `json:"enabled" db:"enabled"`
	PasswordHash string    `json:"-" db:"password_hash"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}

// UserRequest represents an admin request to create a user
type UserRequest struct {
	Username string `json:"username"`
	Password string `json:"password,omitempty"`
	Role     string `json:"role"`
	Enabled  bool   `json:"enabled"`
}
