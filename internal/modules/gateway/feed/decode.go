package feed

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ParseMessage decodes one Redis payload into an envelope.
func ParseMessage(raw string) (Message, error) {
	var msg Message
	if err := json.Unmarshal([]byte(raw), &msg); err != nil {
		return Message{}, fmt.Errorf("decode gateway message: %w", err)
	}
	msg.Event = strings.TrimSpace(msg.Event)
	if msg.Event == "" {
		return Message{}, fmt.Errorf("decode gateway message: missing event")
	}
	return msg, nil
}

// decodePayload converts the loosely typed payload into out. The payload
// is whatever json.Unmarshal produced for interface{}, or a JSON string
// when the publisher double-encoded it.
func decodePayload(payload interface{}, out interface{}) error {
	var data []byte
	switch typed := payload.(type) {
	case nil:
		return errNullPayload
	case string:
		data = []byte(typed)
	case []byte:
		data = typed
	default:
		encoded, err := json.Marshal(typed)
		if err != nil {
			return err
		}
		data = encoded
	}
	if strings.TrimSpace(string(data)) == "null" {
		return errNullPayload
	}
	return json.Unmarshal(data, out)
}
