package components

// ObstacleComponent 标记实体属于碰撞集合
// 只有同时拥有 CollisionComponent 的障碍物才会真正阻挡移动
type ObstacleComponent struct{}
