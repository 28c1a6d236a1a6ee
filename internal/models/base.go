package models

import "time"

// Base carries the identity and timestamps every content record has.
// ID keeps the backend's string form (UUID, or ObjectID for legacy data).
type Base struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"created"`
	UpdatedAt time.Time `json:"modified"`
}

// WriteBase adds the title shared by Post, Note and Page.
type WriteBase struct {
	Base
	Title string `json:"title"`
}
