package surface

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/thelucius7/site-core/internal/modules/background"
)

type recorder []background.Input

func (r *recorder) Send(ev background.Input) bool {
	*r = append(*r, ev)
	return true
}

func TestTrackerScroll(t *testing.T) {
	var out recorder
	tr := NewTracker(&out)

	tr.ScrollBy(40)
	tr.ScrollBy(40)
	tr.ScrollBy(-100)
	assert.Zero(t, tr.ScrollY())

	tr.ScrollBy(120)
	tr.ScrollTop()
	assert.Equal(t, recorder{
		background.Scroll(40),
		background.Scroll(80),
		background.Scroll(0),
		background.Scroll(120),
		background.Scroll(0),
	}, out)
}

func TestTrackerButtonEdges(t *testing.T) {
	var out recorder
	tr := NewTracker(&out)

	tr.Button(true)
	tr.Button(true)
	tr.Button(false)
	tr.Button(false)
	tr.Button(true)
	assert.Equal(t, recorder{background.Click(), background.Click()}, out)
}

func TestTrackerLeaveOnce(t *testing.T) {
	var out recorder
	tr := NewTracker(&out)

	tr.Leave()
	assert.Empty(t, out)

	tr.Move(3, -4)
	tr.Leave()
	tr.Leave()
	assert.Equal(t, recorder{background.Pointer(3, -4), background.Leave()}, out)
}
