package domain

import "time"

type Board struct {
	ID          string
	ClubID      string
	Name        string
	Description string
	CreatedBy   string
	CreatedAt   time.Time
	UpdatedAt   *time.Time
}

type Post struct {
	ID        string
	BoardID   string
	ClubID    string
	AuthorID  string
	Title     string
	Content   string
	CreatedAt time.Time
	UpdatedAt *time.Time
}
