// Package assets provides the embedded game art: rune-art pixmaps standing in
// for bitmap images, and JSON sprite-sheet descriptors mapping animation frame
// names to source regions within a sheet.
//
// Pixmaps carry their size in virtual-pixel world coordinates; the art grid
// resolution is independent and sampled nearest-neighbor by the renderer.
package assets

import (
	"embed"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/vovakirdan/rooftop-runner/internal/core"
)

//go:embed data
var dataFS embed.FS

// SheetRect is a rectangle within a sprite sheet descriptor.
type SheetRect struct {
	X int `json:"x"`
	Y int `json:"y"`
	W int `json:"w"`
	H int `json:"h"`
}

// Cell describes one named animation frame: where it lives in the sheet and
// how it is offset when placed at a destination.
type Cell struct {
	Frame            SheetRect `json:"frame"`
	SpriteSourceSize SheetRect `json:"spriteSourceSize"`
}

// Sheet is a sprite-sheet descriptor keyed by frame file name
// (e.g. "Run (3).png").
type Sheet struct {
	Frames map[string]Cell `json:"frames"`
}

// Pixmap is a rune-art image with virtual-pixel dimensions. The art grid is
// typically much coarser than the pixel size; Sample maps pixel coordinates
// onto it. Space runes are treated as transparent by the renderer.
type Pixmap struct {
	w, h  int
	color core.Color
	rows  [][]rune
	artW  int
}

// Width returns the image width in virtual pixels.
func (p *Pixmap) Width() int {
	return p.w
}

// Height returns the image height in virtual pixels.
func (p *Pixmap) Height() int {
	return p.h
}

// Color returns the foreground color the image is drawn with.
func (p *Pixmap) Color() core.Color {
	return p.color
}

// Sample returns the art rune covering the given virtual-pixel coordinate.
// Out-of-range coordinates return a space (transparent).
func (p *Pixmap) Sample(px, py int) rune {
	if px < 0 || px >= p.w || py < 0 || py >= p.h {
		return ' '
	}
	ay := py * len(p.rows) / p.h
	ax := px * p.artW / p.w
	row := p.rows[ay]
	if ax >= len(row) {
		return ' '
	}
	return row[ax]
}

var colorNames = map[string]core.Color{
	"default":        core.ColorDefault,
	"red":            core.ColorRed,
	"green":          core.ColorGreen,
	"yellow":         core.ColorYellow,
	"blue":           core.ColorBlue,
	"magenta":        core.ColorMagenta,
	"cyan":           core.ColorCyan,
	"white":          core.ColorWhite,
	"bright-red":     core.ColorBrightRed,
	"bright-green":   core.ColorBrightGreen,
	"bright-yellow":  core.ColorBrightYellow,
	"bright-blue":    core.ColorBrightBlue,
	"bright-magenta": core.ColorBrightMagenta,
	"bright-cyan":    core.ColorBrightCyan,
	"bright-white":   core.ColorBrightWhite,
	"orange":         core.ColorOrange,
	"gray":           core.ColorGray,
}

// Loader reads embedded art and descriptors. All loads happen once during
// game initialization; any failure is a fatal startup error.
type Loader struct{}

// LoadPixmap reads an embedded .art file. The first line is a header
// "<width> <height> <color>"; the remaining lines are the art grid.
func (Loader) LoadPixmap(name string) (*Pixmap, error) {
	raw, err := dataFS.ReadFile("data/" + name + ".art")
	if err != nil {
		return nil, fmt.Errorf("assets: cannot read pixmap %s: %w", name, err)
	}

	lines := strings.Split(strings.TrimRight(string(raw), "\n"), "\n")
	if len(lines) < 2 {
		return nil, fmt.Errorf("assets: pixmap %s has no art rows", name)
	}

	var w, h int
	var colorName string
	if _, err := fmt.Sscanf(lines[0], "%d %d %s", &w, &h, &colorName); err != nil {
		return nil, fmt.Errorf("assets: pixmap %s has a malformed header: %w", name, err)
	}
	color, ok := colorNames[colorName]
	if !ok {
		return nil, fmt.Errorf("assets: pixmap %s names unknown color %q", name, colorName)
	}
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("assets: pixmap %s has invalid dimensions %dx%d", name, w, h)
	}

	rows := make([][]rune, len(lines)-1)
	artW := 0
	for i, line := range lines[1:] {
		rows[i] = []rune(line)
		artW = core.Max(artW, len(rows[i]))
	}

	return &Pixmap{w: w, h: h, color: color, rows: rows, artW: artW}, nil
}

// LoadSheet parses an embedded JSON sprite-sheet descriptor.
func (Loader) LoadSheet(name string) (Sheet, error) {
	var sheet Sheet
	raw, err := dataFS.ReadFile("data/" + name + ".json")
	if err != nil {
		return sheet, fmt.Errorf("assets: cannot read sheet %s: %w", name, err)
	}
	if err := json.Unmarshal(raw, &sheet); err != nil {
		return sheet, fmt.Errorf("assets: cannot parse sheet %s: %w", name, err)
	}
	if len(sheet.Frames) == 0 {
		return sheet, fmt.Errorf("assets: sheet %s describes no frames", name)
	}
	return sheet, nil
}
