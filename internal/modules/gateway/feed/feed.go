package feed

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/redis/go-redis/v9"
	"github.com/thelucius7/site-core/internal/models"
	"github.com/thelucius7/site-core/internal/modules/activity"
	"go.uber.org/zap"
)

var errNullPayload = errors.New("null payload")

// Subscriber opens a pub/sub subscription. *pkgredis.Client satisfies it.
type Subscriber interface {
	Subscribe(ctx context.Context, channels ...string) *redis.PubSub
}

// Feed applies gateway broadcasts to an activity store.
type Feed struct {
	sub     Subscriber
	store   *activity.Store
	channel string
	logger  *zap.Logger
}

// New creates a feed reading channel (DefaultChannel when empty).
func New(sub Subscriber, store *activity.Store, channel string, logger *zap.Logger) *Feed {
	if logger == nil {
		logger = zap.NewNop()
	}
	if strings.TrimSpace(channel) == "" {
		channel = DefaultChannel
	}
	return &Feed{sub: sub, store: store, channel: channel, logger: logger}
}

// Run subscribes and applies messages until ctx is done or the
// subscription closes.
func (f *Feed) Run(ctx context.Context) error {
	pubsub := f.sub.Subscribe(ctx, f.channel)
	defer pubsub.Close()

	if _, err := pubsub.Receive(ctx); err != nil {
		return fmt.Errorf("subscribe %s: %w", f.channel, err)
	}
	// Presence from before this subscription can no longer be trusted;
	// leave events may have been missed.
	f.store.ResetActivityPresence(nil)
	f.logger.Info("gateway feed subscribed", zap.String("channel", f.channel))

	ch := pubsub.Channel()
	for {
		select {
		case <-ctx.Done():
			return nil

		case redisMsg, ok := <-ch:
			if !ok {
				return nil
			}
			msg, err := ParseMessage(redisMsg.Payload)
			if err != nil {
				f.logger.Warn("gateway feed dropped message", zap.Error(err))
				continue
			}
			if _, err := Apply(f.store, msg); err != nil {
				f.logger.Warn("gateway feed dropped payload",
					zap.String("event", msg.Event),
					zap.Error(err),
				)
			}
		}
	}
}

// Apply dispatches one gateway message to the store. It reports whether the
// event was one the store cares about; unknown events are ignored.
func Apply(store *activity.Store, msg Message) (bool, error) {
	switch msg.Event {
	case EventUpdatePresence:
		var presence models.ActivityPresence
		if err := decodePayload(msg.Payload, &presence); err != nil {
			return true, fmt.Errorf("presence payload: %w", err)
		}
		store.SetActivityPresence(presence)
		return true, nil

	case EventLeavePresence:
		var leave leavePresencePayload
		if err := decodePayload(msg.Payload, &leave); err != nil {
			return true, fmt.Errorf("leave payload: %w", err)
		}
		store.DeleteActivityPresence(leave.Identity)
		return true, nil

	case EventProcessUpdate:
		var payload activity.ProcessPayload
		err := decodePayload(msg.Payload, &payload)
		switch {
		case errors.Is(err, errNullPayload):
			store.SetActivityProcessInfoFromPayload(nil)
		case err != nil:
			// An unreadable report means nothing trustworthy is running.
			store.SetActivityProcessInfoFromPayload(nil)
			return true, fmt.Errorf("process payload: %w", err)
		default:
			store.SetActivityProcessInfoFromPayload(&payload)
		}
		return true, nil

	case EventMediaUpdate:
		var payload activity.MediaPayload
		err := decodePayload(msg.Payload, &payload)
		if err != nil && !errors.Is(err, errNullPayload) {
			return true, fmt.Errorf("media payload: %w", err)
		}
		if err != nil || strings.TrimSpace(payload.Title) == "" {
			store.SetActivityMediaInfo(nil)
			return true, nil
		}
		store.SetActivityMediaInfo(&models.Media{Title: payload.Title, Artist: payload.Artist})
		return true, nil
	}
	return false, nil
}
