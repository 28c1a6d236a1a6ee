package activity

import (
	"fmt"
	"sort"
	"strings"

	"github.com/thelucius7/site-core/internal/models"
)

// Describe renders the owner's activity as a one-line status.
func Describe(a models.Activity) string {
	parts := make([]string, 0, 2)
	if a.Process != nil && a.Process.Name != "" {
		line := "正在使用 " + a.Process.Name
		if d := strings.TrimSpace(a.Process.Description); d != "" {
			line += "（" + d + "）"
		}
		parts = append(parts, line)
	}
	if a.Media != nil && a.Media.Title != "" {
		line := "正在听 " + a.Media.Title
		if a.Media.Artist != "" {
			line += " - " + a.Media.Artist
		}
		parts = append(parts, line)
	}
	if len(parts) == 0 {
		return "主人已离线"
	}
	return strings.Join(parts, " · ")
}

// RoomReaders returns the presence entries of one room, most recently
// updated first. An empty room name selects every entry.
func RoomReaders(m models.PresenceMap, roomName string) []models.ActivityPresence {
	out := make([]models.ActivityPresence, 0, len(m))
	for _, p := range m {
		if roomName != "" && p.RoomName != roomName {
			continue
		}
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].UpdatedAt == out[j].UpdatedAt {
			return out[i].Identity < out[j].Identity
		}
		return out[i].UpdatedAt > out[j].UpdatedAt
	})
	return out
}

// ReaderSummary renders how many readers are present in a room.
func ReaderSummary(m models.PresenceMap, roomName string) string {
	readers := RoomReaders(m, roomName)
	switch len(readers) {
	case 0:
		return "暂时没有人在看"
	case 1:
		if name := readers[0].DisplayName; name != "" {
			return fmt.Sprintf("%s 正在看", name)
		}
		return "1 人正在看"
	default:
		return fmt.Sprintf("%d 人正在看", len(readers))
	}
}
