package components

// PositionComponent 存储实体的世界坐标（左上角，像素）
type PositionComponent struct {
	X float64
	Y float64
}
