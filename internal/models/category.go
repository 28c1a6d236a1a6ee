package models

// CategoryModel represents a post category.
type CategoryModel struct {
	Base
	Name string `json:"name"`
	Slug string `json:"slug"`
	Type int    `json:"type"`
}
