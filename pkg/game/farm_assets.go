package game

import (
	"github.com/decker502/farmland/pkg/config"
	"github.com/decker502/farmland/pkg/types"
)

// FarmAssets 基于已加载图片的农田资源目录
//
// 阶段数量和尺寸从资源清单与已加载的图片测量；
// 图片缺失时回退到静态描述，保证缺图时游戏仍能以色块运行。
type FarmAssets struct {
	resourceManager *ResourceManager
	fallback        *config.StaticFarmAssets
}

// NewFarmAssets 创建资源目录
func NewFarmAssets(rm *ResourceManager, fallback *config.StaticFarmAssets) *FarmAssets {
	if fallback == nil {
		fallback = config.DefaultFarmAssets()
	}
	return &FarmAssets{resourceManager: rm, fallback: fallback}
}

// WaterVariantCount 清单中连续编号的湿润土块图片数量
func (a *FarmAssets) WaterVariantCount() int {
	n := a.countSequential(config.WaterImageID)
	if n == 0 {
		return a.fallback.WaterVariantCount()
	}
	return n
}

// CropStageCount 清单中连续编号的作物阶段图片数量
func (a *FarmAssets) CropStageCount(crop types.CropType) int {
	if crop == types.CropUnknown {
		return 0
	}
	n := a.countSequential(func(i int) string { return config.CropImageID(crop, i) })
	if n == 0 {
		return a.fallback.CropStageCount(crop)
	}
	return n
}

// CropStageSize 已加载图片的尺寸，未加载时使用静态描述
func (a *FarmAssets) CropStageSize(crop types.CropType, stage int) (float64, float64) {
	if img := a.resourceManager.GetImageByID(config.CropImageID(crop, stage)); img != nil {
		b := img.Bounds()
		return float64(b.Dx()), float64(b.Dy())
	}
	return a.fallback.CropStageSize(crop, stage)
}

// countSequential 统计从 0 开始连续存在于清单中的资源ID数量
func (a *FarmAssets) countSequential(id func(int) string) int {
	n := 0
	for {
		if _, ok := a.resourceManager.ResourcePath(id(n)); !ok {
			return n
		}
		n++
	}
}
