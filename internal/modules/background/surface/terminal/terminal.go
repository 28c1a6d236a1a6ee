package terminal

import (
	"context"
	"sync"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
	"github.com/thelucius7/site-core/internal/modules/background"
	"github.com/thelucius7/site-core/internal/modules/background/particle"
	"github.com/thelucius7/site-core/internal/modules/background/surface"
	"github.com/thelucius7/site-core/internal/modules/socials"
	"go.uber.org/zap"
)

const (
	// A cell stands for this many virtual pixels.
	cellWidth  = 8
	cellHeight = 16
	// wheelStep is the scroll distance of one wheel notch.
	wheelStep = 40
	// overlayRows are kept for the status and social lines.
	overlayRows = 2
)

// Surface draws the background into a terminal.
type Surface struct {
	screen  tcell.Screen
	loop    *background.Loop
	overlay *surface.Overlay
	logger  *zap.Logger

	// Owned by the event goroutine.
	input    *surface.Tracker
	viewport [2]int
}

// New wraps an initialised screen. The caller keeps ownership of screen and
// must Fini it.
func New(screen tcell.Screen, loop *background.Loop, overlay *surface.Overlay, logger *zap.Logger) *Surface {
	if logger == nil {
		logger = zap.NewNop()
	}
	cols, rows := screen.Size()
	return &Surface{
		screen:   screen,
		loop:     loop,
		overlay:  overlay,
		logger:   logger,
		input:    surface.NewTracker(loop),
		viewport: [2]int{cols, rows},
	}
}

// PixelSize is the virtual pixel size of a cols x rows grid.
func PixelSize(cols, rows int) (width, height float64) {
	return float64(cols * cellWidth), float64(rows * cellHeight)
}

// Run draws frames and feeds input until ctx is done or the user quits.
func (s *Surface) Run(ctx context.Context) {
	s.screen.EnableMouse(tcell.MouseMotionEvents)
	s.screen.EnableFocus()
	s.screen.HideCursor()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		s.loop.Run(ctx, s)
	}()

	s.loop.Send(background.Resize(PixelSize(s.viewport[0], s.viewport[1])))

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := s.screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()

	for {
		select {
		case <-ctx.Done():
			wg.Wait()
			return
		case ev, ok := <-events:
			if !ok || !s.handle(ev) {
				s.logger.Info("terminal surface closed")
				cancel()
				wg.Wait()
				return
			}
		}
	}
}

// handle translates one terminal event. It returns false to quit.
func (s *Surface) handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if isQuit(ev.Key(), ev.Rune()) {
			return false
		}
		switch ev.Key() {
		case tcell.KeyUp, tcell.KeyPgUp:
			s.input.ScrollBy(-wheelStep)
		case tcell.KeyDown, tcell.KeyPgDn:
			s.input.ScrollBy(wheelStep)
		case tcell.KeyHome:
			s.input.ScrollTop()
		}

	case *tcell.EventMouse:
		s.handleMouse(ev)

	case *tcell.EventFocus:
		if !ev.Focused {
			s.input.Leave()
		}

	case *tcell.EventResize:
		cols, rows := ev.Size()
		s.viewport = [2]int{cols, rows}
		s.loop.Send(background.Resize(PixelSize(cols, rows)))
		s.screen.Sync()
	}
	return true
}

func isQuit(key tcell.Key, r rune) bool {
	switch key {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		return r == 'q' || r == 'Q'
	}
	return false
}

func (s *Surface) handleMouse(ev *tcell.EventMouse) {
	buttons := ev.Buttons()
	if buttons&tcell.WheelUp != 0 {
		s.input.ScrollBy(-wheelStep)
	}
	if buttons&tcell.WheelDown != 0 {
		s.input.ScrollBy(wheelStep)
	}

	col, row := ev.Position()
	width, height := PixelSize(s.viewport[0], s.viewport[1])
	px := float64(col*cellWidth) + cellWidth/2
	py := float64(row*cellHeight) + cellHeight/2
	s.input.Move(particle.CenterPointer(px, py, width, height))
	s.input.Button(buttons&tcell.Button1 != 0)
}

// Present draws one frame. It runs on the loop goroutine.
func (s *Surface) Present(in *background.Instance) {
	s.screen.Clear()
	cols, rows := s.screen.Size()
	field := rows - overlayRows

	if e := in.Engine(); e != nil && field > 0 {
		s.drawParticles(e, cols, field)
	}
	if s.overlay != nil && rows > 0 {
		s.drawOverlay(cols, rows)
	}
	s.screen.Show()
}

func (s *Surface) drawParticles(e *particle.Engine, cols, field int) {
	spec := e.Spec()
	buf := e.Buffer()
	width, height := e.Size()

	for i := 0; i < buf.Count; i++ {
		x, y, z := buf.Position(i)
		sx, sy, scale, ok := particle.Project(float64(x), float64(y), float64(z), width, height)
		if !ok {
			continue
		}
		col, row := int(sx/cellWidth), int(sy/cellHeight)
		if col < 0 || col >= cols || row < 0 || row >= field {
			continue
		}
		r, g, b := buf.Color(i)
		cr, cg, cb := surface.Shade(r, g, b, spec.Opacity)
		style := tcell.StyleDefault.
			Foreground(tcell.NewRGBColor(int32(cr), int32(cg), int32(cb))).
			Background(tcell.ColorBlack)
		s.screen.SetContent(col, row, glyph(float64(spec.PointSize)*scale), nil, style)
	}
}

// glyph picks a character for a particle of the given on-screen size.
func glyph(size float64) rune {
	switch {
	case size < 2.5:
		return '·'
	case size < 5:
		return '•'
	default:
		return '●'
	}
}

func (s *Surface) drawOverlay(cols, rows int) {
	status := tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack)
	drawText(s.screen, 0, rows-2, cols, " "+s.overlay.Status(), status)

	col := 1
	for _, link := range s.overlay.Links() {
		style := tcell.StyleDefault.Foreground(tcell.ColorWhite)
		if c, _, err := socials.BrandColor(link); err == nil {
			r, g, b := c.RGB255()
			style = style.Background(tcell.NewRGBColor(int32(r), int32(g), int32(b)))
		}
		label := " " + link.Icon + " "
		col = drawText(s.screen, col, rows-1, cols, label, style) + 1
		if col >= cols {
			break
		}
	}
}

// drawText writes text from col on row, clipped to cols. It returns the
// column after the last cell written.
func drawText(screen tcell.Screen, col, row, cols int, text string, style tcell.Style) int {
	for _, r := range text {
		if col >= cols {
			break
		}
		screen.SetContent(col, row, r, nil, style)
		col += runewidth.RuneWidth(r)
	}
	return col
}
