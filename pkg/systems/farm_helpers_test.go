package systems

import (
	"math/rand"

	"github.com/decker502/farmland/internal/tilemap"
	"github.com/decker502/farmland/pkg/config"
	"github.com/decker502/farmland/pkg/ecs"
)

// testFarm 测试用的农田装配
// 被多个测试文件共享使用
type testFarm struct {
	em      *ecs.EntityManager
	grid    *SoilGridSystem
	soil    *SoilSystem
	growth  *CropGrowthSystem
	weather *WeatherSystem
	days    *DayCycleSystem
	harvest *HarvestSystem
	sounds  *recordingSoundPlayer
}

// newTestFarm 按 ASCII 掩码创建农田（'F' 为可耕种），不下雨
func newTestFarm(mask ...string) *testFarm {
	src := tilemap.NewMaskMap(config.DefaultFarmableLayer, 'F', mask)
	farmConfig := config.DefaultFarmConfig()
	farmConfig.RainChance = 0
	farm, err := BuildFarm(src, config.DefaultFarmAssets(), farmConfig, rand.New(rand.NewSource(7)))
	if err != nil {
		panic(err)
	}

	sounds := &recordingSoundPlayer{}
	farm.Soil.SetSoundPlayer(sounds)

	return &testFarm{
		em:      farm.EntityManager,
		grid:    farm.Grid,
		soil:    farm.Soil,
		growth:  farm.Growth,
		weather: farm.Weather,
		days:    farm.Days,
		harvest: farm.Harvest,
		sounds:  sounds,
	}
}

// cellCenter 格子中心的世界坐标
func cellCenter(row, col int) (float64, float64) {
	x, y := config.CellOrigin(row, col)
	return x + config.TileSize/2, y + config.TileSize/2
}

// recordingSoundPlayer 记录播放过的音效
type recordingSoundPlayer struct {
	played []string
}

func (p *recordingSoundPlayer) PlaySound(soundID string) bool {
	p.played = append(p.played, soundID)
	return true
}

func (p *recordingSoundPlayer) count(soundID string) int {
	n := 0
	for _, id := range p.played {
		if id == soundID {
			n++
		}
	}
	return n
}
