package surface

import (
	"strings"
	"sync"

	"github.com/thelucius7/site-core/internal/models"
	"github.com/thelucius7/site-core/internal/modules/activity"
	"github.com/thelucius7/site-core/internal/modules/socials"
)

// Overlay is the text every surface draws over the particles: the owner's
// status, the reader count and the social links. It follows the store and
// can be read from the frame goroutine at any time.
type Overlay struct {
	mu       sync.RWMutex
	activity models.Activity
	presence models.PresenceMap
	room     string

	links  []socials.Link
	unsubs []func()
}

// NewOverlay follows store. room narrows the reader count to one page; empty
// counts everyone.
func NewOverlay(store *activity.Store, room string) *Overlay {
	o := &Overlay{
		activity: store.Activity(),
		presence: store.Presence(),
		room:     room,
		links:    socials.Links(),
	}
	o.unsubs = append(o.unsubs,
		store.SubscribeActivity(func(a models.Activity) {
			o.mu.Lock()
			o.activity = a
			o.mu.Unlock()
		}),
		store.SubscribePresence(func(m models.PresenceMap) {
			o.mu.Lock()
			o.presence = m
			o.mu.Unlock()
		}),
	)
	return o
}

// Status is the one-line summary, e.g. "正在使用 Code · 2 人正在看".
func (o *Overlay) Status() string {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return strings.Join([]string{
		activity.Describe(o.activity),
		activity.ReaderSummary(o.presence, o.room),
	}, " · ")
}

// Links returns a copy of the social links in display order.
func (o *Overlay) Links() []socials.Link {
	out := make([]socials.Link, len(o.links))
	copy(out, o.links)
	return out
}

// Close stops following the store.
func (o *Overlay) Close() {
	for _, unsub := range o.unsubs {
		unsub()
	}
	o.unsubs = nil
}

// Shade converts a particle colour at the given opacity to 8-bit channels
// over a black background.
func Shade(r, g, b, opacity float32) (uint8, uint8, uint8) {
	return channel(r * opacity), channel(g * opacity), channel(b * opacity)
}

func channel(v float32) uint8 {
	switch {
	case v <= 0:
		return 0
	case v >= 1:
		return 255
	}
	return uint8(v*255 + 0.5)
}
