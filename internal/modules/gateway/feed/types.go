package feed

// DefaultChannel is where the blog backend fans out public gateway broadcasts.
const DefaultChannel = "mx:gateway:public"

const (
	EventUpdatePresence = "ACTIVITY_UPDATE_PRESENCE"
	EventLeavePresence  = "ACTIVITY_LEAVE_PRESENCE"
	EventProcessUpdate  = "PS_UPDATE"
	EventMediaUpdate    = "MEDIA_UPDATE"
)

// Message is the envelope the gateway hub publishes on Redis.
type Message struct {
	Event   string      `json:"event"`
	Payload interface{} `json:"payload"`
	Code    *int        `json:"code,omitempty"`
	Room    string      `json:"room,omitempty"`
}

type leavePresencePayload struct {
	Identity string `json:"identity"`
	RoomName string `json:"roomName"`
}
