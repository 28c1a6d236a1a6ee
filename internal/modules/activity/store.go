package activity

import (
	"github.com/thelucius7/site-core/internal/models"
	"github.com/thelucius7/site-core/internal/pkg/atom"
)

// Store holds the owner's activity and the readers' presence map.
type Store struct {
	activity *atom.Atom[models.Activity]
	presence *atom.Atom[models.PresenceMap]
}

// Default is the process-wide store fed by the gateway and read by surfaces.
var Default = NewStore()

// NewStore returns an empty store: no process, no media, no presence.
func NewStore() *Store {
	return &Store{
		activity: atom.New(models.Activity{}),
		presence: atom.New(models.PresenceMap{}),
	}
}

// Activity returns the current activity.
func (s *Store) Activity() models.Activity { return s.activity.Get() }

// Presence returns a copy of the presence map.
func (s *Store) Presence() models.PresenceMap { return s.presence.Get().Clone() }

// SubscribeActivity calls fn after every activity write.
func (s *Store) SubscribeActivity(fn func(models.Activity)) func() {
	return s.activity.Subscribe(fn)
}

// SubscribePresence calls fn with a copy of the map after every presence write.
func (s *Store) SubscribePresence(fn func(models.PresenceMap)) func() {
	if fn == nil {
		return func() {}
	}
	return s.presence.Subscribe(func(m models.PresenceMap) { fn(m.Clone()) })
}

// SetActivityProcessInfo replaces the process and keeps the media.
func (s *Store) SetActivityProcessInfo(process *models.Process) {
	s.activity.Update(func(prev models.Activity) models.Activity {
		prev.Process = cloneProcess(process)
		return prev
	})
}

// SetActivityMediaInfo replaces the media and keeps the process.
func (s *Store) SetActivityMediaInfo(media *models.Media) {
	s.activity.Update(func(prev models.Activity) models.Activity {
		if media == nil {
			prev.Media = nil
		} else {
			m := *media
			prev.Media = &m
		}
		return prev
	})
}

// SetActivityProcessInfoFromPayload normalizes a reporter payload. The name
// comes from processInfo.name, then from the bare process field; without
// either the process is cleared.
func (s *Store) SetActivityProcessInfoFromPayload(payload *ProcessPayload) {
	s.SetActivityProcessInfo(resolveProcess(payload))
}

func resolveProcess(payload *ProcessPayload) *models.Process {
	if payload == nil {
		return nil
	}

	info := payload.ProcessInfo
	name := ""
	if info != nil {
		name = info.Name
	}
	if name == "" {
		name = payload.Process
	}
	if name == "" {
		return nil
	}

	out := &models.Process{Name: name}
	if info != nil {
		out.IconBase64 = info.IconBase64
		out.IconURL = info.IconURL
		out.Description = info.Description
	}
	return out
}

// SetActivityPresence upserts presence under its identity.
func (s *Store) SetActivityPresence(presence models.ActivityPresence) {
	if presence.Identity == "" {
		return
	}
	s.presence.Update(func(prev models.PresenceMap) models.PresenceMap {
		next := prev.Clone()
		next[presence.Identity] = presence
		return next
	})
}

// DeleteActivityPresence removes the entry for sessionID if there is one.
func (s *Store) DeleteActivityPresence(sessionID string) {
	if _, ok := s.presence.Get()[sessionID]; !ok {
		return
	}
	s.presence.Update(func(prev models.PresenceMap) models.PresenceMap {
		next := prev.Clone()
		delete(next, sessionID)
		return next
	})
}

// ResetActivityPresence replaces the whole map. A nil map empties it.
func (s *Store) ResetActivityPresence(data models.PresenceMap) {
	if data == nil {
		s.presence.Set(models.PresenceMap{})
		return
	}
	s.presence.Set(data.Clone())
}

func cloneProcess(p *models.Process) *models.Process {
	if p == nil {
		return nil
	}
	out := *p
	return &out
}
