package components

import "github.com/decker502/farmland/pkg/types"

// CropComponent 标识实体为种在农田格子上的作物
//
// 生长阶段：
//   - 幼苗: int(Age) <= 0，无碰撞体，位于 ground plant 层
//   - 生长中: 0 < Age < MaxAge，有碰撞体，位于 main 层
//   - 可收获: Age == MaxAge，Harvestable = true（终态）
type CropComponent struct {
	CropType types.CropType
	// Row/Col 作物所在的土块格子
	Row int
	Col int

	// Age 成熟度（连续值，截断后作为生长阶段图片索引）
	Age float64
	// MaxAge 成熟度上限 = 生长阶段图片数量 - 1
	MaxAge float64
	// GrowSpeed 每次浇水 tick 增加的成熟度
	GrowSpeed float64
	// YOffset 相对土块底部中点的垂直偏移（玉米更高，偏移更大）
	YOffset float64

	Harvestable bool
}

// Stage 返回当前生长阶段（截断后的成熟度）
func (c *CropComponent) Stage() int {
	return int(c.Age + maturityEpsilon)
}

// maturityEpsilon 吸收浮点累加误差（如 10 次 0.1 累加得到 0.9999999999999999）
const maturityEpsilon = 1e-9
