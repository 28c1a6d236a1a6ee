package activity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thelucius7/site-core/internal/models"
)

func TestSetProcessAndMediaAreIndependent(t *testing.T) {
	s := NewStore()
	require.Nil(t, s.Activity().Process)
	require.Nil(t, s.Activity().Media)

	s.SetActivityMediaInfo(&models.Media{Title: "Lemon", Artist: "米津玄師"})
	s.SetActivityProcessInfo(&models.Process{Name: "Code"})

	a := s.Activity()
	require.NotNil(t, a.Process)
	require.NotNil(t, a.Media)
	assert.Equal(t, "Code", a.Process.Name)
	assert.Equal(t, "Lemon", a.Media.Title)

	s.SetActivityProcessInfo(nil)
	a = s.Activity()
	assert.Nil(t, a.Process)
	require.NotNil(t, a.Media, "clearing the process must keep the media")

	s.SetActivityMediaInfo(nil)
	assert.Nil(t, s.Activity().Media)
}

func TestSetProcessCopiesInput(t *testing.T) {
	s := NewStore()
	p := &models.Process{Name: "Code"}
	s.SetActivityProcessInfo(p)
	p.Name = "mutated"

	assert.Equal(t, "Code", s.Activity().Process.Name)
}

func TestSetActivityProcessInfoFromPayload(t *testing.T) {
	tests := []struct {
		name    string
		payload *ProcessPayload
		want    *models.Process
	}{
		{
			name: "processInfo name with optional fields",
			payload: &ProcessPayload{
				ProcessInfo: &models.Process{
					Name:        "Visual Studio Code",
					IconBase64:  "aWNvbg==",
					IconURL:     "https://example.com/code.png",
					Description: "editing main.go",
				},
				Process: "Code.exe",
			},
			want: &models.Process{
				Name:        "Visual Studio Code",
				IconBase64:  "aWNvbg==",
				IconURL:     "https://example.com/code.png",
				Description: "editing main.go",
			},
		},
		{
			name: "processInfo name without optional fields",
			payload: &ProcessPayload{
				ProcessInfo: &models.Process{Name: "Steam"},
			},
			want: &models.Process{Name: "Steam"},
		},
		{
			name:    "bare process string",
			payload: &ProcessPayload{Process: "Telegram"},
			want:    &models.Process{Name: "Telegram"},
		},
		{
			name: "processInfo without name falls back to process",
			payload: &ProcessPayload{
				ProcessInfo: &models.Process{IconURL: "https://example.com/x.png"},
				Process:     "Figma",
			},
			want: &models.Process{Name: "Figma", IconURL: "https://example.com/x.png"},
		},
		{
			name: "processInfo name kept verbatim",
			payload: &ProcessPayload{
				ProcessInfo: &models.Process{Name: " Code "},
				Process:     "Code.exe",
			},
			want: &models.Process{Name: " Code "},
		},
		{
			name:    "whitespace name is still a name",
			payload: &ProcessPayload{ProcessInfo: &models.Process{Name: "   "}},
			want:    &models.Process{Name: "   "},
		},
		{
			name:    "padded bare process kept verbatim",
			payload: &ProcessPayload{Process: " Telegram"},
			want:    &models.Process{Name: " Telegram"},
		},
		{
			name:    "nil payload",
			payload: nil,
			want:    nil,
		},
		{
			name:    "neither name source",
			payload: &ProcessPayload{ProcessInfo: &models.Process{Description: "idle"}},
			want:    nil,
		},
		{
			name:    "empty payload",
			payload: &ProcessPayload{},
			want:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewStore()
			s.SetActivityProcessInfo(&models.Process{Name: "previous"})
			s.SetActivityMediaInfo(&models.Media{Title: "kept"})

			s.SetActivityProcessInfoFromPayload(tt.payload)

			a := s.Activity()
			assert.Equal(t, tt.want, a.Process)
			require.NotNil(t, a.Media)
			assert.Equal(t, "kept", a.Media.Title)
		})
	}
}

func TestPresenceUpsertAndDelete(t *testing.T) {
	s := NewStore()
	s.SetActivityPresence(models.ActivityPresence{Identity: "a", RoomName: "article_1", Position: 10})
	s.SetActivityPresence(models.ActivityPresence{Identity: "b", RoomName: "article_1", Position: 20})
	s.SetActivityPresence(models.ActivityPresence{Identity: "c", RoomName: "article_2", Position: 30})

	before := s.Presence()
	require.Len(t, before, 3)

	s.DeleteActivityPresence("b")

	after := s.Presence()
	assert.Len(t, after, 2)
	assert.NotContains(t, after, "b")
	assert.Equal(t, before["a"], after["a"])
	assert.Equal(t, before["c"], after["c"])
}

func TestPresenceDeleteMissingIsNoop(t *testing.T) {
	s := NewStore()
	s.SetActivityPresence(models.ActivityPresence{Identity: "a"})

	notified := 0
	s.SubscribePresence(func(models.PresenceMap) { notified++ })

	s.DeleteActivityPresence("missing")
	assert.Len(t, s.Presence(), 1)
	assert.Zero(t, notified)
}

func TestPresenceLastWriteWins(t *testing.T) {
	s := NewStore()
	s.SetActivityPresence(models.ActivityPresence{Identity: "session-1", SID: "sock-a", Position: 1})
	s.SetActivityPresence(models.ActivityPresence{Identity: "session-1", SID: "sock-b", Position: 2})

	m := s.Presence()
	require.Len(t, m, 1)
	assert.Equal(t, "sock-b", m["session-1"].SID)
	assert.Equal(t, 2, m["session-1"].Position)
}

func TestPresenceIgnoresEmptyIdentity(t *testing.T) {
	s := NewStore()
	s.SetActivityPresence(models.ActivityPresence{RoomName: "article_1"})
	assert.Empty(t, s.Presence())
}

func TestResetActivityPresence(t *testing.T) {
	s := NewStore()
	s.SetActivityPresence(models.ActivityPresence{Identity: "a"})
	s.SetActivityPresence(models.ActivityPresence{Identity: "b"})

	s.ResetActivityPresence(nil)
	assert.Empty(t, s.Presence())

	data := models.PresenceMap{"x": {Identity: "x"}}
	s.ResetActivityPresence(data)
	data["y"] = models.ActivityPresence{Identity: "y"}

	m := s.Presence()
	assert.Len(t, m, 1, "reset must copy the caller's map")
	assert.Contains(t, m, "x")
}

func TestPresenceReadIsCopy(t *testing.T) {
	s := NewStore()
	s.SetActivityPresence(models.ActivityPresence{Identity: "a"})

	m := s.Presence()
	delete(m, "a")

	assert.Len(t, s.Presence(), 1)
}

func TestSubscribersObserveWrites(t *testing.T) {
	s := NewStore()
	var activities []models.Activity
	var sizes []int
	unsubA := s.SubscribeActivity(func(a models.Activity) { activities = append(activities, a) })
	unsubP := s.SubscribePresence(func(m models.PresenceMap) { sizes = append(sizes, len(m)) })
	defer unsubA()
	defer unsubP()

	s.SetActivityProcessInfo(&models.Process{Name: "Code"})
	s.SetActivityPresence(models.ActivityPresence{Identity: "a"})
	s.ResetActivityPresence(nil)

	require.Len(t, activities, 1)
	assert.Equal(t, "Code", activities[0].Process.Name)
	assert.Equal(t, []int{1, 0}, sizes)
}
