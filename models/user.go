package models

import "time"

// User represents an application account. Password carries the plaintext
// credential on register/login requests only and is never persisted or
// echoed back; PasswordHash is the stored bcrypt hash.
type User struct {
	UserID       int64     `json:"user_id,omitempty"`
	Login        string    `json:"login"`
	Password     string    `json:"password,omitempty"`
	PasswordHash string    `json:"-"`
	Name         string    `json:"name,omitempty"`
	CreatedAt    time.Time `json:"created_at,omitempty"`
}
