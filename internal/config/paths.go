package config

import (
	"path/filepath"
	"strings"
)

// resolvePath anchors a relative runtime path at base, the directory that
// holds the config file, so a site started from anywhere writes next to
// its config. An empty raw falls back to fallback.
func resolvePath(base, raw, fallback string) string {
	target := strings.TrimSpace(raw)
	if target == "" {
		target = fallback
	}
	if filepath.IsAbs(target) {
		return filepath.Clean(target)
	}
	if strings.TrimSpace(base) == "" {
		base = "."
	}
	return filepath.Join(base, target)
}
