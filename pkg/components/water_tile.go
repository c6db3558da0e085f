package components

// WaterTileComponent 标识实体为湿润土块的可视化投影
// VariantIndex 只影响外观，随机选择
type WaterTileComponent struct {
	Row          int
	Col          int
	VariantIndex int
}
