package models

import "time"

// PostModel is the slice of a blog post the site core reads: enough to
// build links and the copyright footer.
type PostModel struct {
	WriteBase
	Slug       string         `json:"slug"`
	CategoryID *string        `json:"category_id,omitempty"`
	Category   *CategoryModel `json:"category,omitempty"`
	Copyright  *bool          `json:"copyright,omitempty"`
}

// CopyrightEnabled reports whether the post shows a copyright notice.
// Posts default to showing one when the flag is absent.
func (p PostModel) CopyrightEnabled() bool {
	return p.Copyright == nil || *p.Copyright
}

// LastModified returns the modification time, falling back to creation.
func (p PostModel) LastModified() time.Time {
	if !p.UpdatedAt.IsZero() {
		return p.UpdatedAt
	}
	return p.CreatedAt
}
