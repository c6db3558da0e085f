package components

import "github.com/decker502/farmland/pkg/types"

// SoilTileComponent 标识实体为已耕地块的可视化投影
// 每次任一格子耕种状态变化时，全部土块实体都会重建
type SoilTileComponent struct {
	Row     int
	Col     int
	Variant types.SoilVariant
}
