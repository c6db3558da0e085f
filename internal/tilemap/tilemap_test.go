package tilemap

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testTMX = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" tiledversion="1.10.2" orientation="orthogonal" renderorder="right-down" width="4" height="3" tilewidth="64" tileheight="64" infinite="0" nextlayerid="3" nextobjectid="1">
 <tileset firstgid="1" name="ground" tilewidth="64" tileheight="64" tilecount="4" columns="2">
  <image source="ground.png" width="128" height="128"/>
 </tileset>
 <layer id="1" name="Ground" width="4" height="3">
  <data encoding="csv">
1,1,1,1,
1,1,1,1,
1,1,1,1
</data>
 </layer>
 <layer id="2" name="Farmable" width="4" height="3">
  <data encoding="csv">
0,0,2,2,
2,0,0,0,
0,0,0,2
</data>
 </layer>
</map>
`

func TestLoadTMX(t *testing.T) {
	fsys := fstest.MapFS{
		"map/farm.tmx": &fstest.MapFile{Data: []byte(testTMX)},
	}

	m, err := LoadTMX(fsys, "map/farm.tmx")
	require.NoError(t, err)

	cols, rows := m.Size()
	assert.Equal(t, 4, cols)
	assert.Equal(t, 3, rows)

	tiles, err := m.LayerTiles("Farmable")
	require.NoError(t, err)
	assert.Equal(t, []Coord{
		{Col: 2, Row: 0},
		{Col: 3, Row: 0},
		{Col: 0, Row: 1},
		{Col: 3, Row: 2},
	}, tiles)

	_, err = m.LayerTiles("Water")
	assert.ErrorIs(t, err, ErrLayerNotFound)
}

func TestLoadTMXMissingFile(t *testing.T) {
	_, err := LoadTMX(fstest.MapFS{}, "missing.tmx")
	assert.Error(t, err)
}

func TestMaskMap(t *testing.T) {
	m := NewMaskMap("Farmable", 'F', []string{
		"..FF",
		"F",
		"",
	})

	cols, rows := m.Size()
	assert.Equal(t, 4, cols)
	assert.Equal(t, 3, rows)

	tiles, err := m.LayerTiles("Farmable")
	require.NoError(t, err)
	assert.Equal(t, []Coord{{Col: 2, Row: 0}, {Col: 3, Row: 0}, {Col: 0, Row: 1}}, tiles)

	_, err = m.LayerTiles("Other")
	assert.ErrorIs(t, err, ErrLayerNotFound)
}
