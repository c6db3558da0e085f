package systems

import (
	"github.com/decker502/farmland/pkg/components"
	"github.com/decker502/farmland/pkg/ecs"
)

// Hitbox 世界坐标下的碰撞矩形
type Hitbox struct {
	X, Y          float64
	Width, Height float64
}

// Contains 点是否在矩形内（左闭右开）
func (h Hitbox) Contains(x, y float64) bool {
	return x >= h.X && x < h.X+h.Width && y >= h.Y && y < h.Y+h.Height
}

// BlockingHitboxes 返回当前阻挡移动的全部碰撞矩形
// 只有属于碰撞集合（ObstacleComponent）且已挂载碰撞体的实体才会阻挡
func BlockingHitboxes(em *ecs.EntityManager) []Hitbox {
	ids := ecs.GetEntitiesWith3[
		*components.ObstacleComponent,
		*components.CollisionComponent,
		*components.PositionComponent,
	](em)

	boxes := make([]Hitbox, 0, len(ids))
	for _, id := range ids {
		collision, _ := ecs.GetComponent[*components.CollisionComponent](em, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
		boxes = append(boxes, Hitbox{
			X:      pos.X + collision.OffsetX,
			Y:      pos.Y + collision.OffsetY,
			Width:  collision.Width,
			Height: collision.Height,
		})
	}
	return boxes
}
