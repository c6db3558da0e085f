package systems

import (
	"errors"
	"math/rand"

	"github.com/decker502/farmland/internal/tilemap"
	"github.com/decker502/farmland/pkg/config"
	"github.com/decker502/farmland/pkg/ecs"
)

// Farm 一块农田的全部系统
// 供 ebiten 场景和终端工具共用
type Farm struct {
	EntityManager *ecs.EntityManager
	Grid          *SoilGridSystem
	Soil          *SoilSystem
	Growth        *CropGrowthSystem
	Weather       *WeatherSystem
	Days          *DayCycleSystem
	Harvest       *HarvestSystem
}

// BuildFarm 从地图来源装配农田
//
// 网格尺寸取 farmConfig.Rows/Cols，为 0 时取地图尺寸；
// 天气和湿润土块外观共用同一个随机数源，第一天的天气在装配时决定。
//
// 返回:
//   - *Farm: 装配好的农田（土壤系统已接入天气）
//   - error: 资源描述不完整或可耕种图层读取失败
func BuildFarm(src tilemap.Source, assets FarmAssetCatalog, farmConfig *config.FarmConfig, rng *rand.Rand) (*Farm, error) {
	if src == nil {
		return nil, errors.New("build farm: no map source")
	}
	if farmConfig == nil {
		farmConfig = config.DefaultFarmConfig()
	}
	if err := CheckFarmAssets(assets); err != nil {
		return nil, err
	}

	em := ecs.NewEntityManager()
	var (
		grid *SoilGridSystem
		err  error
	)
	if farmConfig.Rows == 0 || farmConfig.Cols == 0 {
		grid, err = NewSoilGridFromMap(em, src, farmConfig.FarmableLayer)
	} else {
		grid = NewSoilGridSystem(em, farmConfig.Rows, farmConfig.Cols)
		_, err = LoadFarmableArea(grid, src, farmConfig.FarmableLayer)
	}
	if err != nil {
		return nil, err
	}

	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}
	weather := NewWeatherSystem(farmConfig.RainChance, rng)
	weather.Roll()
	soil := NewSoilSystem(em, grid, assets, farmConfig, rng)
	soil.SetRainQuery(weather)

	return &Farm{
		EntityManager: em,
		Grid:          grid,
		Soil:          soil,
		Growth:        NewCropGrowthSystem(em, grid, assets),
		Weather:       weather,
		Days:          NewDayCycleSystem(soil, weather),
		Harvest:       NewHarvestSystem(soil),
	}, nil
}
