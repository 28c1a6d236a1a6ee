package models

// Process identifies the owner's foreground application.
// Optional fields are empty when the reporter did not send them.
type Process struct {
	Name        string `json:"name"`
	IconBase64  string `json:"iconBase64,omitempty"`
	IconURL     string `json:"iconUrl,omitempty"`
	Description string `json:"description,omitempty"`
}

// Media identifies what the owner is currently listening to.
type Media struct {
	Title  string `json:"title"`
	Artist string `json:"artist"`
}

// Activity is the owner's current process and media. A nil field means
// nothing has been reported for it.
type Activity struct {
	Process *Process `json:"process"`
	Media   *Media   `json:"media"`
}

// ActivityPresence is one reader's presence in a room, in the shape the
// gateway broadcasts with ACTIVITY_UPDATE_PRESENCE.
type ActivityPresence struct {
	Identity      string `json:"identity"`
	RoomName      string `json:"roomName"`
	Position      int    `json:"position"`
	SID           string `json:"sid"`
	DisplayName   string `json:"displayName,omitempty"`
	ReaderID      string `json:"readerId,omitempty"`
	OperationTime int64  `json:"operationTime"`
	UpdatedAt     int64  `json:"updatedAt"`
	ConnectedAt   int64  `json:"connectedAt"`
	JoinedAt      int64  `json:"joinedAt"`
}

// PresenceMap maps a session identity to its presence record.
type PresenceMap map[string]ActivityPresence

// Clone returns an independent copy.
func (m PresenceMap) Clone() PresenceMap {
	out := make(PresenceMap, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
