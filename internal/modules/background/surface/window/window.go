package window

import (
	"context"
	"errors"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/thelucius7/site-core/internal/modules/background"
	"github.com/thelucius7/site-core/internal/modules/background/particle"
	"github.com/thelucius7/site-core/internal/modules/background/surface"
	"github.com/thelucius7/site-core/internal/modules/socials"
	"go.uber.org/zap"
)

const (
	wheelStep = 40
	// The debug font is 6x16.
	glyphWidth  = 6
	lineHeight  = 16
	linkPadding = 6
	titlePrefix = "site"
)

var backdrop = color.RGBA{A: 255}

// Game drives the background from ebiten's update loop. The loop is stepped
// directly from Update, so Loop.Run is never started for a window.
type Game struct {
	ctx     context.Context
	loop    *background.Loop
	overlay *surface.Overlay
	logger  *zap.Logger
	input   *surface.Tracker

	last          time.Time
	width, height int
	title         string
}

func NewGame(ctx context.Context, loop *background.Loop, overlay *surface.Overlay, logger *zap.Logger) *Game {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Game{
		ctx:     ctx,
		loop:    loop,
		overlay: overlay,
		logger:  logger,
		input:   surface.NewTracker(loop),
	}
}

func (g *Game) Update() error {
	if g.ctx.Err() != nil ||
		inpututil.IsKeyJustPressed(ebiten.KeyEscape) ||
		inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}

	if _, wy := ebiten.Wheel(); wy != 0 {
		g.input.ScrollBy(-wy * wheelStep)
	}
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowDown), inpututil.IsKeyJustPressed(ebiten.KeyPageDown):
		g.input.ScrollBy(wheelStep)
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowUp), inpututil.IsKeyJustPressed(ebiten.KeyPageUp):
		g.input.ScrollBy(-wheelStep)
	case inpututil.IsKeyJustPressed(ebiten.KeyHome):
		g.input.ScrollTop()
	}

	cx, cy := ebiten.CursorPosition()
	if inside(cx, cy, g.width, g.height) && ebiten.IsFocused() {
		g.input.Move(particle.CenterPointer(float64(cx), float64(cy), float64(g.width), float64(g.height)))
	} else {
		g.input.Leave()
	}
	g.input.Button(ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft))

	now := time.Now()
	dt := 0.0
	if !g.last.IsZero() {
		dt = now.Sub(g.last).Seconds()
	}
	g.last = now
	g.loop.Step(dt)

	if status := g.overlay.Status(); status != g.title {
		g.title = status
		ebiten.SetWindowTitle(titlePrefix + " · " + status)
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(backdrop)
	if in := g.loop.Instance(); in != nil {
		if e := in.Engine(); e != nil {
			drawParticles(screen, e)
		}
	}
	g.drawLinks(screen)
}

// Layout keeps one logical pixel per device pixel and resizes the
// background with the window.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.width || outsideHeight != g.height {
		g.width, g.height = outsideWidth, outsideHeight
		g.loop.Send(background.Resize(float64(outsideWidth), float64(outsideHeight)))
	}
	return outsideWidth, outsideHeight
}

func drawParticles(screen *ebiten.Image, e *particle.Engine) {
	spec := e.Spec()
	buf := e.Buffer()
	width, height := e.Size()

	for i := 0; i < buf.Count; i++ {
		x, y, z := buf.Position(i)
		sx, sy, scale, ok := particle.Project(float64(x), float64(y), float64(z), width, height)
		if !ok {
			continue
		}
		r, g, b := buf.Color(i)
		radius := float32(float64(spec.PointSize)*scale) / 2
		vector.DrawFilledCircle(screen, float32(sx), float32(sy), max(radius, 0.5), particleColor(r, g, b, spec.Opacity), true)
	}
}

func (g *Game) drawLinks(screen *ebiten.Image) {
	y := g.height - lineHeight - linkPadding
	x := linkPadding
	for _, link := range g.overlay.Links() {
		w := labelWidth(link.Icon)
		if c, alpha, err := socials.BrandColor(link); err == nil {
			r, gr, b := c.RGB255()
			fill := color.RGBA{R: r, G: gr, B: b, A: uint8(alpha*255 + 0.5)}
			vector.DrawFilledRect(screen, float32(x), float32(y), float32(w), lineHeight, fill, false)
		}
		ebitenutil.DebugPrintAt(screen, link.Icon, x+linkPadding/2, y)
		x += w + linkPadding
	}
}

func particleColor(r, g, b, opacity float32) color.RGBA {
	cr, cg, cb := surface.Shade(r, g, b, opacity)
	return color.RGBA{R: cr, G: cg, B: cb, A: 255}
}

func labelWidth(label string) int {
	return len([]rune(label))*glyphWidth + linkPadding
}

func inside(x, y, width, height int) bool {
	return x >= 0 && y >= 0 && x < width && y < height
}

// Run opens a window and blocks until it is closed or the game's context
// is done.
func Run(g *Game, width, height int) error {
	ebiten.SetWindowSize(width, height)
	ebiten.SetWindowTitle(titlePrefix)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(int(time.Second / g.loop.Interval()))

	defer g.loop.Close()
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	g.logger.Info("window surface closed")
	return nil
}
