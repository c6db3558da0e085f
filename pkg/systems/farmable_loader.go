package systems

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/decker502/farmland/internal/tilemap"
	"github.com/decker502/farmland/pkg/ecs"
)

// ErrFarmableAreaLoaded 可耕种区域只能加载一次
var ErrFarmableAreaLoaded = errors.New("farmable area already loaded")

// LoadFarmableArea 从静态地图的指定图层标记可耕种格子
// 每个网格只能调用一次；网格外的图块会被跳过并记录警告
//
// 返回:
//   - int: 标记的格子数量
//   - error: 重复加载或图层读取失败
func LoadFarmableArea(grid *SoilGridSystem, src tilemap.Source, layer string) (int, error) {
	if grid.farmableLoaded {
		return 0, ErrFarmableAreaLoaded
	}

	tiles, err := src.LayerTiles(layer)
	if err != nil {
		return 0, fmt.Errorf("failed to read farmable layer: %w", err)
	}
	grid.farmableLoaded = true

	marked := 0
	for _, tile := range tiles {
		if !grid.MarkFarmable(tile.Row, tile.Col) {
			log.Warnf("[FarmableLoader] Tile (col=%d, row=%d) is outside the %dx%d grid, skipped",
				tile.Col, tile.Row, grid.Rows(), grid.Cols())
			continue
		}
		marked++
	}

	log.Infof("[FarmableLoader] Marked %d farmable cells from layer %q", marked, layer)
	return marked, nil
}

// NewSoilGridFromMap 按地图尺寸创建网格并加载可耕种区域
func NewSoilGridFromMap(em *ecs.EntityManager, src tilemap.Source, layer string) (*SoilGridSystem, error) {
	cols, rows := src.Size()
	grid := NewSoilGridSystem(em, rows, cols)
	if _, err := LoadFarmableArea(grid, src, layer); err != nil {
		return nil, err
	}
	return grid, nil
}
