package systems

import (
	"testing"

	"github.com/decker502/farmland/pkg/ecs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSoilGridSystem_Invariants(t *testing.T) {
	em := ecs.NewEntityManager()
	grid := NewSoilGridSystem(em, 2, 3)
	require.True(t, grid.MarkFarmable(0, 0))

	t.Run("不可耕种的格子不能翻土", func(t *testing.T) {
		assert.False(t, grid.Till(0, 1))
		assert.False(t, grid.IsTilled(0, 1))
	})

	t.Run("未耕的格子不能浇水或播种", func(t *testing.T) {
		assert.False(t, grid.SetWatered(0, 0))
		assert.False(t, grid.SetPlanted(0, 0))
	})

	t.Run("翻土后可以浇水和播种，且只生效一次", func(t *testing.T) {
		assert.True(t, grid.Till(0, 0))
		assert.False(t, grid.Till(0, 0), "重复翻土是空操作")
		assert.True(t, grid.SetWatered(0, 0))
		assert.False(t, grid.SetWatered(0, 0))
		assert.True(t, grid.SetPlanted(0, 0))
		assert.False(t, grid.SetPlanted(0, 0))
		assert.True(t, grid.Flags(0, 0).Valid())
	})

	t.Run("清除湿润只影响湿润标志", func(t *testing.T) {
		assert.Equal(t, 1, grid.ClearAllWater())
		assert.False(t, grid.IsWatered(0, 0))
		assert.True(t, grid.IsPlanted(0, 0))
		assert.Equal(t, 0, grid.ClearAllWater())
	})

	t.Run("收获后清除播种标志", func(t *testing.T) {
		assert.True(t, grid.ClearPlanted(0, 0))
		assert.False(t, grid.ClearPlanted(0, 0))
		assert.True(t, grid.IsTilled(0, 0))
	})
}

func TestSoilGridSystem_OutOfBounds(t *testing.T) {
	em := ecs.NewEntityManager()
	grid := NewSoilGridSystem(em, 2, 2)

	cells := [][2]int{{-1, 0}, {0, -1}, {2, 0}, {0, 2}, {100, 100}}
	for _, c := range cells {
		row, col := c[0], c[1]
		assert.False(t, grid.MarkFarmable(row, col))
		assert.False(t, grid.IsFarmable(row, col))
		assert.False(t, grid.IsTilled(row, col))
		assert.False(t, grid.IsWatered(row, col))
		assert.False(t, grid.IsPlanted(row, col))
		assert.False(t, grid.Till(row, col))
		assert.False(t, grid.SetWatered(row, col))
		assert.False(t, grid.SetPlanted(row, col))
	}
}

func TestSoilGridSystem_WorldToCell(t *testing.T) {
	em := ecs.NewEntityManager()
	grid := NewSoilGridSystem(em, 3, 4)

	tests := []struct {
		name    string
		x, y    float64
		row     int
		col     int
		inRange bool
	}{
		{"原点", 0, 0, 0, 0, true},
		{"格子内部", 70, 130, 2, 1, true},
		{"格子右下边缘", 63.9, 63.9, 0, 0, true},
		{"最后一个格子", 255, 191, 2, 3, true},
		{"右侧越界", 256, 0, 0, 0, false},
		{"下方越界", 0, 192, 0, 0, false},
		{"负坐标不截断到 0", -0.5, 10, 0, 0, false},
		{"负Y", 10, -1, 0, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			row, col, ok := grid.WorldToCell(tt.x, tt.y)
			assert.Equal(t, tt.inRange, ok)
			if tt.inRange {
				assert.Equal(t, tt.row, row)
				assert.Equal(t, tt.col, col)
			}
		})
	}
}

func TestSoilGridSystem_GridEntity(t *testing.T) {
	em := ecs.NewEntityManager()
	grid := NewSoilGridSystem(em, -1, 5)

	assert.Equal(t, 0, grid.Rows())
	assert.Equal(t, 5, grid.Cols())
	assert.True(t, em.IsAlive(grid.GridEntity()))
	assert.Empty(t, grid.TilledCells())
}
