package activity

import "github.com/thelucius7/site-core/internal/models"

// ProcessPayload is the loosely shaped process report pushed by the
// owner's desktop reporter. Older reporters only send the bare process
// name; newer ones send processInfo.
type ProcessPayload struct {
	ProcessInfo *models.Process `json:"processInfo,omitempty"`
	Process     string          `json:"process,omitempty"`
}

// MediaPayload is the media report. An empty title clears the media.
type MediaPayload struct {
	Title  string `json:"title"`
	Artist string `json:"artist"`
}
