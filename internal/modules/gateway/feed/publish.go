package feed

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
)

// Publisher sends one message on a pub/sub channel. *pkgredis.Client
// satisfies it.
type Publisher interface {
	Publish(ctx context.Context, channel string, message interface{}) error
}

// Publish encodes msg the way the gateway hub does and sends it on channel
// (DefaultChannel when empty). It lets a local tool stand in for the blog
// backend.
func Publish(ctx context.Context, pub Publisher, channel string, msg Message) error {
	msg.Event = strings.TrimSpace(msg.Event)
	if msg.Event == "" {
		return fmt.Errorf("publish gateway message: missing event")
	}
	if strings.TrimSpace(channel) == "" {
		channel = DefaultChannel
	}
	data, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("encode gateway message: %w", err)
	}
	if err := pub.Publish(ctx, channel, string(data)); err != nil {
		return fmt.Errorf("publish %s: %w", channel, err)
	}
	return nil
}
