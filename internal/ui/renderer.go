package ui

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/roomgen/internal/assets"
	"github.com/samdwyer/roomgen/internal/world"
)

// Renderer draws a layout to the screen, one line per room.
type Renderer struct {
	screen  *Screen
	palette *assets.Palette
}

// NewRenderer creates a renderer for the given screen and role palette.
func NewRenderer(screen *Screen, palette *assets.Palette) *Renderer {
	return &Renderer{screen: screen, palette: palette}
}

// Render draws the layout summary, its rooms, and a key hint.
func (r *Renderer) Render(layout *world.Layout, title string) {
	r.screen.Clear()

	header := tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
	r.drawText(0, 0, title, header)

	stats := layout.Stats()
	r.drawText(0, 1, fmt.Sprintf("%d rooms, %d connections, start to end in %d steps",
		len(layout.Rooms), stats.Edges, layout.PathLength(layout.Start().NameIndex, layout.End().NameIndex)),
		tcell.StyleDefault.Foreground(tcell.ColorGray))

	for i, room := range layout.Rooms {
		y := i + 3
		style, glyph := r.roleStyle(room.Role)
		r.screen.SetContent(0, y, glyph, style.Bold(true))
		r.drawText(2, y, RoomLine(room), style)
	}

	_, height := r.screen.Size()
	r.drawText(0, height-1, "q/Esc: quit", tcell.StyleDefault.Foreground(tcell.ColorDarkGray))

	r.screen.Show()
}

// RoomLine formats a room as "name [degree] -> peer, peer".
func RoomLine(room world.Room) string {
	return fmt.Sprintf("%-9s [%d] -> %s", room.Name(), room.Degree(), strings.Join(room.ConnectionNames(), ", "))
}

// roleStyle returns the style and glyph for a role, falling back to plain text.
func (r *Renderer) roleStyle(role world.Role) (tcell.Style, rune) {
	if r.palette != nil {
		if s := r.palette.GetByLabel(role.String()); s != nil {
			return tcell.StyleDefault.Foreground(s.TCellColor()), s.GlyphRune()
		}
	}
	return tcell.StyleDefault, '?'
}

// drawText writes msg starting at x, y.
func (r *Renderer) drawText(x, y int, msg string, style tcell.Style) {
	for i, ch := range []rune(msg) {
		r.screen.SetContent(x+i, y, ch, style)
	}
}
