package proctitle

import (
	"errors"
	"strings"
	"unicode/utf8"
)

// MaxLen is the kernel's limit on a thread name, without the trailing NUL.
const MaxLen = 15

var errEmptyTitle = errors.New("empty process title")

// Title joins the program name and the surface it drives, e.g.
// "site-terminal", cut to MaxLen.
func Title(app, surface string) string {
	app = strings.TrimSpace(app)
	surface = strings.TrimSpace(surface)
	title := app
	if surface != "" {
		title = app + "-" + surface
	}
	return truncate(title, MaxLen)
}

// truncate cuts s to at most n bytes without splitting a rune.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n]
}
