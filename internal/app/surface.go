package app

import (
	"context"
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/thelucius7/site-core/internal/modules/background/surface/terminal"
	"github.com/thelucius7/site-core/internal/modules/background/surface/window"
	"go.uber.org/zap"
)

// minColors is the palette a terminal needs before particles are worth
// drawing; below it the background stays off.
const minColors = 256

func (a *App) runTerminal(ctx context.Context) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("terminal init: %w", err)
	}
	defer screen.Fini()

	m := a.start(screen.Colors() >= minColors)
	a.logger.Info("terminal surface ready", zap.String("mode", string(m.Mode())), zap.Int("colors", screen.Colors()))
	terminal.New(screen, a.loop, a.overlay, a.logger.Named("Terminal")).Run(ctx)
	return nil
}

// runWindow must be called from the main goroutine.
func (a *App) runWindow(ctx context.Context) error {
	m := a.start(true)
	a.logger.Info("window surface ready", zap.String("mode", string(m.Mode())))
	g := window.NewGame(ctx, a.loop, a.overlay, a.logger.Named("Window"))
	return window.Run(g, a.cfg.Background.Width, a.cfg.Background.Height)
}
