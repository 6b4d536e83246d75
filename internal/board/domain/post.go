package domain

import "time"

type Post struct {
	ID        string
	BoardID   string
	AuthorID  string // Foreign key to users; input to the owner-or-admin rule
	Title     string
	Body      string
	CreatedAt time.Time
	UpdatedAt time.Time
}
