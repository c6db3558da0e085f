// Package tilemap exposes static tile-map data as per-layer tile coordinate lists.
//
// Two sources are provided: TMX maps authored in Tiled (LoadTMX) and inline ASCII
// masks (MaskMap) used by tests and terminal tools.
package tilemap

import "errors"

// ErrLayerNotFound is returned when a source has no layer with the requested name.
var ErrLayerNotFound = errors.New("tilemap: layer not found")

// Coord is a tile coordinate in map space.
type Coord struct {
	Col int
	Row int
}

// Source is a static tile map that can enumerate the occupied tiles of a layer.
type Source interface {
	// Size returns the map dimensions in tiles.
	Size() (cols, rows int)
	// LayerTiles returns the occupied tiles of the named layer in row-major order.
	LayerTiles(name string) ([]Coord, error)
}
