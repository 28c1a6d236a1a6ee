package activity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/thelucius7/site-core/internal/models"
)

func TestDescribe(t *testing.T) {
	tests := []struct {
		name string
		in   models.Activity
		want string
	}{
		{name: "nothing", in: models.Activity{}, want: "主人已离线"},
		{
			name: "process only",
			in:   models.Activity{Process: &models.Process{Name: "Code"}},
			want: "正在使用 Code",
		},
		{
			name: "process with description",
			in:   models.Activity{Process: &models.Process{Name: "Code", Description: "site-core"}},
			want: "正在使用 Code（site-core）",
		},
		{
			name: "both",
			in: models.Activity{
				Process: &models.Process{Name: "Code"},
				Media:   &models.Media{Title: "Lemon", Artist: "米津玄師"},
			},
			want: "正在使用 Code · 正在听 Lemon - 米津玄師",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Describe(tt.in))
		})
	}
}

func TestRoomReadersOrdering(t *testing.T) {
	m := models.PresenceMap{
		"a": {Identity: "a", RoomName: "article_1", UpdatedAt: 10},
		"b": {Identity: "b", RoomName: "article_1", UpdatedAt: 30},
		"c": {Identity: "c", RoomName: "article_2", UpdatedAt: 20},
	}

	got := RoomReaders(m, "article_1")
	if assert.Len(t, got, 2) {
		assert.Equal(t, "b", got[0].Identity)
		assert.Equal(t, "a", got[1].Identity)
	}
	assert.Len(t, RoomReaders(m, ""), 3)
}

func TestReaderSummary(t *testing.T) {
	assert.Equal(t, "暂时没有人在看", ReaderSummary(nil, "article_1"))
	assert.Equal(t, "Lucius 正在看", ReaderSummary(models.PresenceMap{
		"a": {Identity: "a", RoomName: "r", DisplayName: "Lucius"},
	}, "r"))
	assert.Equal(t, "2 人正在看", ReaderSummary(models.PresenceMap{
		"a": {Identity: "a", RoomName: "r"},
		"b": {Identity: "b", RoomName: "r"},
	}, "r"))
}
