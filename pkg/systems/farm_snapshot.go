package systems

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/decker502/farmland/pkg/components"
	"github.com/decker502/farmland/pkg/ecs"
	"github.com/decker502/farmland/pkg/types"
)

// FarmSnapshot 农田可持久化状态
//
// 只保存权威状态（格子标志、作物成熟度、天数、天气）；
// 可视化实体在恢复时由正常的动作重放重新生成。
type FarmSnapshot struct {
	Day     int            `yaml:"day"`
	Raining bool           `yaml:"raining"`
	Tilled  []CellPos      `yaml:"tilled"`
	Watered []CellPos      `yaml:"watered"`
	Crops   []CropSnapshot `yaml:"crops"`
}

// CropSnapshot 单个作物的持久化状态
type CropSnapshot struct {
	Crop string  `yaml:"crop"`
	Row  int     `yaml:"row"`
	Col  int     `yaml:"col"`
	Age  float64 `yaml:"age"`
}

// CaptureFarm 抓取当前农田状态
func CaptureFarm(soil *SoilSystem, days *DayCycleSystem) FarmSnapshot {
	snap := FarmSnapshot{
		Day:     days.Day(),
		Raining: days.Weather().IsRaining(),
		Tilled:  soil.grid.TilledCells(),
		Watered: soil.grid.WateredCells(),
	}

	em := soil.entityManager
	for _, id := range ecs.GetEntitiesWith1[*components.CropComponent](em) {
		crop, ok := ecs.GetComponent[*components.CropComponent](em, id)
		if !ok {
			continue
		}
		snap.Crops = append(snap.Crops, CropSnapshot{
			Crop: crop.CropType.String(),
			Row:  crop.Row,
			Col:  crop.Col,
			Age:  crop.Age,
		})
	}
	return snap
}

// RestoreFarm 将快照重放到刚加载完可耕种区域的农田上
//
// 按 翻土 → 浇水 → 播种 的顺序重放，不变式由正常动作保证；
// 无法重放的条目（如地图变化后不再可耕种的格子）记录警告并跳过。
// 重放期间不播放音效，也不触发下雨浇灌。
func RestoreFarm(soil *SoilSystem, days *DayCycleSystem, snap FarmSnapshot) error {
	if len(soil.grid.TilledCells()) > 0 {
		return fmt.Errorf("restore farm: grid already has tilled cells")
	}

	sounds, rain := soil.sounds, soil.rain
	soil.sounds, soil.rain = nil, nil
	defer func() {
		soil.sounds, soil.rain = sounds, rain
	}()

	for _, cell := range snap.Tilled {
		if !soil.grid.Till(cell.Row, cell.Col) {
			log.Warnf("[FarmSnapshot] Cannot restore tilled cell (%d, %d), skipped", cell.Row, cell.Col)
		}
	}
	soil.rebuildSoilTiles()

	for _, cell := range snap.Watered {
		if !soil.Water(cell.Row, cell.Col) {
			log.Warnf("[FarmSnapshot] Cannot restore watered cell (%d, %d), skipped", cell.Row, cell.Col)
		}
	}

	for _, saved := range snap.Crops {
		cropType, ok := types.ParseCropType(saved.Crop)
		if !ok {
			return fmt.Errorf("restore farm: %w: %q", ErrUnknownCrop, saved.Crop)
		}
		id, ok := soil.Plant(saved.Row, saved.Col, cropType)
		if !ok {
			log.Warnf("[FarmSnapshot] Cannot restore %s at (%d, %d), skipped", saved.Crop, saved.Row, saved.Col)
			continue
		}
		crop, _ := ecs.GetComponent[*components.CropComponent](soil.entityManager, id)
		crop.Age = saved.Age
		refreshCrop(soil.entityManager, soil.assets, id, crop)
	}

	days.setDay(snap.Day)
	days.Weather().SetRaining(snap.Raining)

	log.Infof("[FarmSnapshot] Restored day %d: %d tilled, %d watered, %d crops",
		days.Day(), len(snap.Tilled), len(snap.Watered), len(snap.Crops))
	return nil
}
