package systems

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/charmbracelet/log"
	"github.com/decker502/farmland/pkg/components"
	"github.com/decker502/farmland/pkg/config"
	"github.com/decker502/farmland/pkg/ecs"
	"github.com/decker502/farmland/pkg/types"
)

// ErrUnknownCrop 资源目录中缺少作物的生长阶段图片
var ErrUnknownCrop = errors.New("unknown crop type")

// FarmAssetCatalog 农田资源目录
// 核心逻辑只按索引/ID选择资源，不解码图片
type FarmAssetCatalog interface {
	// WaterVariantCount 湿润土块外观数量
	WaterVariantCount() int
	// CropStageCount 作物生长阶段图片数量（未知作物返回 0）
	CropStageCount(crop types.CropType) int
	// CropStageSize 指定阶段图片尺寸
	CropStageSize(crop types.CropType, stage int) (width, height float64)
}

// SoundPlayer 音效播放（即发即弃）
type SoundPlayer interface {
	PlaySound(soundID string) bool
}

// RainQuery 天气查询
type RainQuery interface {
	IsRaining() bool
}

// CheckFarmAssets 检查资源目录是否覆盖全部作物
// 资源缺失属于配置错误，在启动时暴露，而不是在种植时静默失败
func CheckFarmAssets(assets FarmAssetCatalog) error {
	if assets.WaterVariantCount() <= 0 {
		return errors.New("farm assets: no water tile variants")
	}
	for _, crop := range types.AllCropTypes {
		if assets.CropStageCount(crop) == 0 {
			return fmt.Errorf("farm assets: %w: %s has no growth stage images", ErrUnknownCrop, crop)
		}
	}
	return nil
}

// SoilSystem 土块/湿润土块/作物实体注册表
//
// 网格是唯一的权威状态，本系统维护与之同步的可视化实体：
//   - 任一格子被翻土时，销毁并重建全部土块实体（自动拼接外观依赖邻居）
//   - 浇水时为该格子创建一个湿润土块实体（外观随机）
//   - 播种时创建作物实体，作物实体从不由本系统销毁
//
// 所有动作对非法输入都是静默空操作。
type SoilSystem struct {
	entityManager *ecs.EntityManager
	grid          *SoilGridSystem
	assets        FarmAssetCatalog
	farmConfig    *config.FarmConfig
	rng           *rand.Rand

	// 外部协作方（可为 nil）
	sounds SoundPlayer
	rain   RainQuery
}

// NewSoilSystem 创建实体注册表
// 参数:
//   - em: EntityManager 实例
//   - grid: 农田网格
//   - assets: 资源目录
//   - farmConfig: 农田配置（为 nil 时使用默认作物参数）
//   - rng: 随机数源（湿润土块外观），为 nil 时使用固定种子
func NewSoilSystem(em *ecs.EntityManager, grid *SoilGridSystem, assets FarmAssetCatalog, farmConfig *config.FarmConfig, rng *rand.Rand) *SoilSystem {
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}
	return &SoilSystem{
		entityManager: em,
		grid:          grid,
		assets:        assets,
		farmConfig:    farmConfig,
		rng:           rng,
	}
}

// SetSoundPlayer 设置音效协作方
func (s *SoilSystem) SetSoundPlayer(sounds SoundPlayer) {
	s.sounds = sounds
}

// SetRainQuery 设置天气协作方
func (s *SoilSystem) SetRainQuery(rain RainQuery) {
	s.rain = rain
}

// Grid 返回农田网格
func (s *SoilSystem) Grid() *SoilGridSystem {
	return s.grid
}

// TillAt 在世界坐标处翻土
// 命中可耕种格子时播放锄地音效（即使该格子已耕）
// 返回 true 表示产生了新的已耕格子
func (s *SoilSystem) TillAt(x, y float64) bool {
	row, col, ok := s.grid.WorldToCell(x, y)
	if !ok || !s.grid.IsFarmable(row, col) {
		return false
	}
	s.playSound(config.SoundHoe)
	return s.Till(row, col)
}

// Till 翻土（格子坐标版本）
// 新耕格子会触发全部土块实体重建；下雨时立即浇灌全部已耕格子
func (s *SoilSystem) Till(row, col int) bool {
	if !s.grid.Till(row, col) {
		return false
	}

	log.Debugf("[SoilSystem] Tilled cell (%d, %d)", row, col)
	s.rebuildSoilTiles()

	if s.rain != nil && s.rain.IsRaining() {
		s.WaterAll()
	}
	return true
}

// rebuildSoilTiles 销毁全部土块实体，按当前已耕格子重建
func (s *SoilSystem) rebuildSoilTiles() {
	for _, id := range ecs.GetEntitiesWith1[*components.SoilTileComponent](s.entityManager) {
		s.entityManager.DestroyEntity(id)
	}
	s.entityManager.RemoveMarkedEntities()

	cells := s.grid.TilledCells()
	for _, cell := range cells {
		variant := ResolveSoilVariant(s.grid, cell.Row, cell.Col)
		x, y := s.grid.CellOrigin(cell.Row, cell.Col)

		id := s.entityManager.CreateEntity()
		ecs.AddComponent(s.entityManager, id, &components.SoilTileComponent{Row: cell.Row, Col: cell.Col, Variant: variant})
		ecs.AddComponent(s.entityManager, id, &components.PositionComponent{X: x, Y: y})
		ecs.AddComponent(s.entityManager, id, &components.DepthComponent{Layer: types.LayerSoil})
		ecs.AddComponent(s.entityManager, id, &components.VisualComponent{
			ImageID: config.SoilImageID(variant),
			Width:   config.TileSize,
			Height:  config.TileSize,
		})
	}

	log.Debugf("[SoilSystem] Rebuilt %d soil tiles", len(cells))
}

// WaterAt 在世界坐标处浇水
// 返回 true 表示该格子由干燥变为湿润
func (s *SoilSystem) WaterAt(x, y float64) bool {
	row, col, ok := s.grid.WorldToCell(x, y)
	if !ok {
		return false
	}
	return s.Water(row, col)
}

// Water 浇水（格子坐标版本），只对已耕且未湿润的格子生效
func (s *SoilSystem) Water(row, col int) bool {
	if !s.grid.SetWatered(row, col) {
		return false
	}

	variant := 0
	if n := s.assets.WaterVariantCount(); n > 0 {
		variant = s.rng.Intn(n)
	}
	x, y := s.grid.CellOrigin(row, col)

	id := s.entityManager.CreateEntity()
	ecs.AddComponent(s.entityManager, id, &components.WaterTileComponent{Row: row, Col: col, VariantIndex: variant})
	ecs.AddComponent(s.entityManager, id, &components.PositionComponent{X: x, Y: y})
	ecs.AddComponent(s.entityManager, id, &components.DepthComponent{Layer: types.LayerSoilWater})
	ecs.AddComponent(s.entityManager, id, &components.VisualComponent{
		ImageID: config.WaterImageID(variant),
		Width:   config.TileSize,
		Height:  config.TileSize,
	})
	return true
}

// WaterAll 浇灌全部已耕格子
// 返回新湿润的格子数量
func (s *SoilSystem) WaterAll() int {
	watered := 0
	for _, cell := range s.grid.TilledCells() {
		if s.Water(cell.Row, cell.Col) {
			watered++
		}
	}
	if watered > 0 {
		log.Debugf("[SoilSystem] Watered %d tilled cells", watered)
	}
	return watered
}

// RemoveWater 销毁全部湿润土块实体，清除全部格子的湿润标志
func (s *SoilSystem) RemoveWater() {
	for _, id := range ecs.GetEntitiesWith1[*components.WaterTileComponent](s.entityManager) {
		s.entityManager.DestroyEntity(id)
	}
	s.entityManager.RemoveMarkedEntities()

	cleared := s.grid.ClearAllWater()
	log.Debugf("[SoilSystem] Removed water from %d cells", cleared)
}

// PlantAt 在世界坐标处播种
// 返回:
//   - ecs.EntityID: 新作物实体
//   - bool: 是否播种成功
func (s *SoilSystem) PlantAt(x, y float64, crop types.CropType) (ecs.EntityID, bool) {
	row, col, ok := s.grid.WorldToCell(x, y)
	if !ok {
		return 0, false
	}
	return s.Plant(row, col, crop)
}

// Plant 播种（格子坐标版本），只对已耕且未播种的格子生效
// 作物锚定在土块底边中点，加上作物类型的垂直偏移
func (s *SoilSystem) Plant(row, col int, crop types.CropType) (ecs.EntityID, bool) {
	stages := s.assets.CropStageCount(crop)
	if stages == 0 {
		log.Warnf("[SoilSystem] Cannot plant %s: no growth stage images", crop)
		return 0, false
	}
	stats, ok := s.farmConfig.CropSettings(crop)
	if !ok {
		log.Warnf("[SoilSystem] Cannot plant %s: no crop settings", crop)
		return 0, false
	}

	if !s.grid.SetPlanted(row, col) {
		return 0, false
	}
	s.playSound(config.SoundPlant)

	cropComp := &components.CropComponent{
		CropType:  crop,
		Row:       row,
		Col:       col,
		MaxAge:    float64(stages - 1),
		GrowSpeed: stats.GrowSpeed,
		YOffset:   stats.YOffset,
	}

	id := s.entityManager.CreateEntity()
	ecs.AddComponent(s.entityManager, id, cropComp)
	ecs.AddComponent(s.entityManager, id, &components.PositionComponent{})
	ecs.AddComponent(s.entityManager, id, &components.DepthComponent{Layer: types.LayerGroundPlant})
	ecs.AddComponent(s.entityManager, id, &components.VisualComponent{})
	ecs.AddComponent(s.entityManager, id, &components.ObstacleComponent{})
	refreshCrop(s.entityManager, s.assets, id, cropComp)

	log.Debugf("[SoilSystem] Planted %s at (%d, %d), entity %d", crop, row, col, id)
	return id, true
}

// CropAt 查找格子上的作物实体
func (s *SoilSystem) CropAt(row, col int) (ecs.EntityID, *components.CropComponent, bool) {
	for _, id := range ecs.GetEntitiesWith1[*components.CropComponent](s.entityManager) {
		crop, ok := ecs.GetComponent[*components.CropComponent](s.entityManager, id)
		if ok && crop.Row == row && crop.Col == col {
			return id, crop, true
		}
	}
	return 0, nil, false
}

func (s *SoilSystem) playSound(soundID string) {
	if s.sounds == nil {
		return
	}
	s.sounds.PlaySound(soundID)
}
