package surface

import "github.com/thelucius7/site-core/internal/modules/background"

// Sender queues inputs for the background loop.
type Sender interface {
	Send(ev background.Input) bool
}

// Tracker turns raw device state into background inputs: it keeps the page
// scroll offset, detects button presses and remembers whether the pointer
// is over the surface. It belongs to the goroutine that reads the device.
type Tracker struct {
	out     Sender
	scrollY float64
	pressed bool
	inside  bool
}

func NewTracker(out Sender) *Tracker {
	return &Tracker{out: out}
}

// ScrollY is the current page offset, never negative.
func (t *Tracker) ScrollY() float64 { return t.scrollY }

// ScrollBy moves the page by dy and sends the new offset.
func (t *Tracker) ScrollBy(dy float64) {
	t.scrollY = max(t.scrollY+dy, 0)
	t.out.Send(background.Scroll(t.scrollY))
}

// ScrollTop returns the page to the top.
func (t *Tracker) ScrollTop() {
	t.ScrollBy(-t.scrollY)
}

// Move reports the pointer at centred coordinates x, y.
func (t *Tracker) Move(x, y float64) {
	t.inside = true
	t.out.Send(background.Pointer(x, y))
}

// Leave reports the pointer gone. Repeated calls send nothing.
func (t *Tracker) Leave() {
	if !t.inside {
		return
	}
	t.inside = false
	t.out.Send(background.Leave())
}

// Button records the primary button state and sends a click on press.
func (t *Tracker) Button(down bool) {
	if down && !t.pressed {
		t.out.Send(background.Click())
	}
	t.pressed = down
}
