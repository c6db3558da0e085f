package systems

import (
	"github.com/charmbracelet/log"
	"github.com/decker502/farmland/pkg/types"
)

// HarvestSystem 收获成熟作物
// 收获会销毁作物实体并清除格子的播种标志，格子保持已耕状态
type HarvestSystem struct {
	soil *SoilSystem
}

// NewHarvestSystem 创建收获系统
func NewHarvestSystem(soil *SoilSystem) *HarvestSystem {
	return &HarvestSystem{soil: soil}
}

// HarvestAt 收获世界坐标处的作物
// 返回:
//   - types.CropType: 收获的作物类型
//   - bool: 该处有可收获作物时为 true
func (h *HarvestSystem) HarvestAt(x, y float64) (types.CropType, bool) {
	row, col, ok := h.soil.grid.WorldToCell(x, y)
	if !ok {
		return types.CropUnknown, false
	}
	return h.Harvest(row, col)
}

// Harvest 收获格子上的作物（未成熟的作物不能收获）
func (h *HarvestSystem) Harvest(row, col int) (types.CropType, bool) {
	id, crop, ok := h.soil.CropAt(row, col)
	if !ok || !crop.Harvestable {
		return types.CropUnknown, false
	}

	em := h.soil.entityManager
	em.DestroyEntity(id)
	em.RemoveMarkedEntities()
	h.soil.grid.ClearPlanted(row, col)

	log.Debugf("[HarvestSystem] Harvested %s at (%d, %d)", crop.CropType, row, col)
	return crop.CropType, true
}
