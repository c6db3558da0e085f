package tilemap

import "fmt"

// MaskMap is a Source built from ASCII rows, where the marker rune flags an
// occupied tile. Every other rune is empty. Rows may have different lengths;
// the map width is the longest row.
type MaskMap struct {
	layer  string
	marker rune
	lines  []string
	cols   int
}

// NewMaskMap creates a single-layer mask source.
//
// Example:
//
//	m := NewMaskMap("Farmable", 'F', []string{
//	    "..FF",
//	    "FFF.",
//	})
func NewMaskMap(layer string, marker rune, lines []string) *MaskMap {
	cols := 0
	for _, line := range lines {
		if n := len([]rune(line)); n > cols {
			cols = n
		}
	}
	return &MaskMap{layer: layer, marker: marker, lines: lines, cols: cols}
}

// Size returns the mask dimensions in tiles.
func (m *MaskMap) Size() (cols, rows int) {
	return m.cols, len(m.lines)
}

// LayerTiles returns the marked tiles in row-major order.
func (m *MaskMap) LayerTiles(name string) ([]Coord, error) {
	if name != m.layer {
		return nil, fmt.Errorf("%w: %q", ErrLayerNotFound, name)
	}

	var coords []Coord
	for row, line := range m.lines {
		for col, r := range []rune(line) {
			if r == m.marker {
				coords = append(coords, Coord{Col: col, Row: row})
			}
		}
	}
	return coords, nil
}
