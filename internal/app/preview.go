package app

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/roomgen/internal/assets"
	"github.com/samdwyer/roomgen/internal/ui"
	"github.com/samdwyer/roomgen/internal/world"
)

// preview draws the layout and blocks until the user quits.
func (a *App) preview(layout *world.Layout) error {
	palette, err := assets.LoadPalette()
	if err != nil {
		return err
	}
	screen, err := a.newScreen()
	if err != nil {
		return err
	}
	defer screen.Close()

	renderer := ui.NewRenderer(screen, palette)
	title := fmt.Sprintf("roomgen run %s (seed %d)", a.runID, a.seed)

	for running := true; running; {
		renderer.Render(layout, title)
		running = handleEvent(screen, screen.PollEvent())
	}
	return nil
}

// handleEvent processes one input event and reports whether to keep previewing.
func handleEvent(screen *ui.Screen, ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'q', 'Q':
				return false
			}
		}
	case *tcell.EventResize:
		screen.Sync()
	case nil:
		// Screen finalized.
		return false
	}
	return true
}
