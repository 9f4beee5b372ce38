package assets

import (
	"errors"

	"github.com/gdamore/tcell/v2"
)

// RoleStyle defines how a room role is drawn, loaded from JSON.
type RoleStyle struct {
	Label string `json:"label"` // Descriptor label (e.g., "START_ROOM")
	Name  string `json:"name"`  // Display name (e.g., "Start")
	Glyph string `json:"glyph"` // Single character marker (e.g., "S")
	Color string `json:"color"` // Hex color code (e.g., "#4CAF50")
}

// GlyphRune returns the glyph as a rune for rendering.
func (s *RoleStyle) GlyphRune() rune {
	if len(s.Glyph) == 0 {
		return '?'
	}
	return rune(s.Glyph[0])
}

// TCellColor returns the color as a tcell.Color.
func (s *RoleStyle) TCellColor() tcell.Color {
	color, err := ParseHexColor(s.Color)
	if err != nil {
		return tcell.ColorWhite // fallback
	}
	return color
}

// PaletteFile represents the structure of roles.json.
type PaletteFile struct {
	Roles []RoleStyle `json:"roles"`
}

// LoadRoleStyles loads role styles from the embedded roles.json file.
func LoadRoleStyles() ([]RoleStyle, error) {
	file, err := Load[PaletteFile]("roles.json")
	if err != nil {
		return nil, err
	}
	return file.Roles, nil
}

// Palette holds role styles keyed by descriptor label.
type Palette struct {
	styles map[string]*RoleStyle
	all    []RoleStyle
}

// NewPalette creates a palette from loaded role styles.
func NewPalette(styles []RoleStyle) *Palette {
	p := &Palette{
		styles: make(map[string]*RoleStyle),
		all:    styles,
	}
	for i := range styles {
		p.styles[styles[i].Label] = &styles[i]
	}
	return p
}

// LoadPalette loads and creates a palette from the embedded roles.json.
func LoadPalette() (*Palette, error) {
	styles, err := LoadRoleStyles()
	if err != nil {
		return nil, err
	}
	if len(styles) == 0 {
		return nil, errors.New("no role styles loaded from roles.json")
	}
	return NewPalette(styles), nil
}

// MustLoadPalette loads a palette, panicking on error.
func MustLoadPalette() *Palette {
	p, err := LoadPalette()
	if err != nil {
		panic(err)
	}
	return p
}

// GetByLabel returns the style for a role label, or nil if not found.
func (p *Palette) GetByLabel(label string) *RoleStyle {
	return p.styles[label]
}

// All returns all role styles.
func (p *Palette) All() []RoleStyle {
	return p.all
}

// Count returns the number of styles in the palette.
func (p *Palette) Count() int {
	return len(p.all)
}
