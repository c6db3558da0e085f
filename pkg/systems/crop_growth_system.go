package systems

import (
	"github.com/charmbracelet/log"
	"github.com/decker502/farmland/pkg/components"
	"github.com/decker502/farmland/pkg/config"
	"github.com/decker502/farmland/pkg/ecs"
	"github.com/decker502/farmland/pkg/types"
)

// maturityEpsilon 浮点累加误差容忍度（与 CropComponent.Stage 一致）
const maturityEpsilon = 1e-9

// CropGrowthSystem 作物生长控制器
//
// 每个 tick 调用一次 Update：
//   - 作物所在格子湿润时，成熟度增加 GrowSpeed
//   - 成熟度截断后首次大于 0 时挂载碰撞体并移到 main 层
//   - 成熟度达到上限时固定在上限并标记可收获（终态）
//   - 未浇水的作物不生长，也不衰减
type CropGrowthSystem struct {
	entityManager *ecs.EntityManager
	grid          *SoilGridSystem
	assets        FarmAssetCatalog
}

// NewCropGrowthSystem 创建作物生长系统
func NewCropGrowthSystem(em *ecs.EntityManager, grid *SoilGridSystem, assets FarmAssetCatalog) *CropGrowthSystem {
	return &CropGrowthSystem{
		entityManager: em,
		grid:          grid,
		assets:        assets,
	}
}

// Update 推进所有作物一个 tick
// 遍历顺序为实体ID升序，保证同一次运行内可复现
func (s *CropGrowthSystem) Update() {
	for _, id := range ecs.GetEntitiesWith1[*components.CropComponent](s.entityManager) {
		crop, ok := ecs.GetComponent[*components.CropComponent](s.entityManager, id)
		if !ok {
			continue
		}

		if !crop.Harvestable && s.grid.IsWatered(crop.Row, crop.Col) {
			crop.Age += crop.GrowSpeed
			if crop.Age+maturityEpsilon >= crop.MaxAge {
				log.Debugf("[CropGrowthSystem] %s at (%d, %d) is ready to harvest", crop.CropType, crop.Row, crop.Col)
			}
		}

		refreshCrop(s.entityManager, s.assets, id, crop)
	}
}

// refreshCrop 根据成熟度同步作物的派生状态
//   - 成熟度封顶，达到上限时标记可收获
//   - 生长阶段图片和锚定位置
//   - 阶段大于 0 时的碰撞体和 main 深度层
func refreshCrop(em *ecs.EntityManager, assets FarmAssetCatalog, id ecs.EntityID, crop *components.CropComponent) {
	if crop.Age < 0 {
		crop.Age = 0
	}
	if crop.Age+maturityEpsilon >= crop.MaxAge {
		crop.Age = crop.MaxAge
		crop.Harvestable = true
	}

	stage := crop.Stage()
	width, height := assets.CropStageSize(crop.CropType, stage)

	// 锚点：土块底边中点 + 垂直偏移
	anchorX, anchorY := config.CellMidBottom(crop.Row, crop.Col)
	anchorY += crop.YOffset

	if pos, ok := ecs.GetComponent[*components.PositionComponent](em, id); ok {
		pos.X = anchorX - width/2
		pos.Y = anchorY - height
	}
	if visual, ok := ecs.GetComponent[*components.VisualComponent](em, id); ok {
		visual.ImageID = config.CropImageID(crop.CropType, stage)
		visual.Width = width
		visual.Height = height
	}

	if stage <= 0 {
		return
	}

	offsetX, offsetY, hitW, hitH := config.CropHitbox(width, height)
	if collision, ok := ecs.GetComponent[*components.CollisionComponent](em, id); ok {
		collision.OffsetX, collision.OffsetY = offsetX, offsetY
		collision.Width, collision.Height = hitW, hitH
	} else {
		ecs.AddComponent(em, id, &components.CollisionComponent{
			Width:   hitW,
			Height:  hitH,
			OffsetX: offsetX,
			OffsetY: offsetY,
		})
	}
	if depth, ok := ecs.GetComponent[*components.DepthComponent](em, id); ok {
		depth.Layer = types.LayerMain
	}
}
