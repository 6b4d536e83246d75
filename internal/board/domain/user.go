package domain

import "time"

type User struct {
	ID           string
	Username     string
	PasswordHash string // argon2 encoded, never serialized outward
	Role         Role
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
