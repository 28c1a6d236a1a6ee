//go:build linux

package proctitle

import (
	"os"
	"strings"
	"unsafe"

	"golang.org/x/sys/unix"
)

// Set applies a short process title on Linux via PR_SET_NAME.
func Set(title string) error {
	title = strings.TrimSpace(title)
	if title == "" {
		return errEmptyTitle
	}

	if len(os.Args) > 0 {
		os.Args[0] = title
	}

	b := make([]byte, MaxLen+1)
	copy(b, truncate(title, MaxLen))

	return unix.Prctl(unix.PR_SET_NAME, uintptr(unsafe.Pointer(&b[0])), 0, 0, 0)
}
