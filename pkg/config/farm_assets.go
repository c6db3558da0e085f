package config

import "github.com/decker502/farmland/pkg/types"

// StageSize 生长阶段图片尺寸
type StageSize struct {
	Width  float64
	Height float64
}

// StaticFarmAssets 静态资源目录描述
//
// 不加载任何图片，只描述“有多少张、多大”：
// 用于终端工具、测试，以及图片加载失败时的降级。
type StaticFarmAssets struct {
	WaterVariants int
	CropStages    map[types.CropType][]StageSize
}

// DefaultFarmAssets 返回与 assets/graphics 目录一致的资源描述
// 每种作物 4 个生长阶段（0-3），湿润土块 3 种外观
func DefaultFarmAssets() *StaticFarmAssets {
	return &StaticFarmAssets{
		WaterVariants: 3,
		CropStages: map[types.CropType][]StageSize{
			types.CropCorn: {
				{Width: 64, Height: 40},
				{Width: 64, Height: 64},
				{Width: 64, Height: 88},
				{Width: 64, Height: 112},
			},
			types.CropTomato: {
				{Width: 64, Height: 40},
				{Width: 64, Height: 56},
				{Width: 64, Height: 72},
				{Width: 64, Height: 84},
			},
		},
	}
}

// WaterVariantCount 湿润土块外观数量
func (a *StaticFarmAssets) WaterVariantCount() int {
	return a.WaterVariants
}

// CropStageCount 作物生长阶段图片数量，未知作物返回 0
func (a *StaticFarmAssets) CropStageCount(crop types.CropType) int {
	return len(a.CropStages[crop])
}

// CropStageSize 指定阶段图片尺寸，越界时返回 0, 0
func (a *StaticFarmAssets) CropStageSize(crop types.CropType, stage int) (float64, float64) {
	stages := a.CropStages[crop]
	if stage < 0 || stage >= len(stages) {
		return 0, 0
	}
	return stages[stage].Width, stages[stage].Height
}
