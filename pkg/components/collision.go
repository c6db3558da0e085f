package components

// CollisionComponent 作物的阻挡区域
// 作物成熟度首次超过 0 时挂载，坐标相对作物图片左上角（PositionComponent）
type CollisionComponent struct {
	OffsetX float64
	OffsetY float64
	Width   float64
	Height  float64
}
