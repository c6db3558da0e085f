package tilemap

import (
	"fmt"
	"io/fs"

	"github.com/lafriks/go-tiled"
)

// TMXMap is a Source backed by a Tiled TMX map.
type TMXMap struct {
	m *tiled.Map
}

// LoadTMX parses a TMX map from fsys.
//
// Parameters:
//   - fsys: File system holding the map and any external tilesets it references
//   - path: Map path inside fsys, e.g., "data/map/farm.tmx"
//
// Returns:
//   - *TMXMap: The parsed map
//   - error: Read or parse error
func LoadTMX(fsys fs.FS, path string) (*TMXMap, error) {
	m, err := tiled.LoadFile(path, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("failed to load TMX map %s: %w", path, err)
	}
	return &TMXMap{m: m}, nil
}

// Size returns the map dimensions in tiles.
func (t *TMXMap) Size() (cols, rows int) {
	return t.m.Width, t.m.Height
}

// LayerTiles returns the non-empty tiles of the named tile layer.
func (t *TMXMap) LayerTiles(name string) ([]Coord, error) {
	for _, layer := range t.m.Layers {
		if layer.Name != name {
			continue
		}

		var coords []Coord
		for i, tile := range layer.Tiles {
			if tile == nil || tile.IsNil() {
				continue
			}
			coords = append(coords, Coord{Col: i % t.m.Width, Row: i / t.m.Width})
		}
		return coords, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrLayerNotFound, name)
}
