package config

// 布局配置常量
// 本文件定义了农田场景中的布局参数，包括网格尺寸、作物锚点偏移、碰撞盒收缩量等
// 所有坐标使用"世界坐标系"（相对于地图左上角，像素）

const (
	// TileSize 是一个农田格子的边长（像素）
	// 与渲染协作方共享；世界坐标到网格坐标的转换为整除 TileSize
	TileSize = 64

	// GameWindowWidth / GameWindowHeight 是游戏的逻辑屏幕尺寸
	GameWindowWidth  = 1280
	GameWindowHeight = 720
)

// Crop anchoring (作物锚点配置)
const (
	// CornYOffset 玉米相对土块底部中点的垂直偏移（玉米更高）
	CornYOffset = -16.0

	// DefaultCropYOffset 其他作物的垂直偏移
	DefaultCropYOffset = -8.0

	// CropHitboxShrinkX 碰撞盒相对图片边界在水平方向的总收缩量（像素）
	CropHitboxShrinkX = 26.0

	// CropHitboxShrinkYRatio 碰撞盒在垂直方向的收缩比例（相对图片高度）
	CropHitboxShrinkYRatio = 0.4
)

// CellOrigin 返回格子左上角的世界坐标
func CellOrigin(row, col int) (x, y float64) {
	return float64(col * TileSize), float64(row * TileSize)
}

// CellMidBottom 返回格子底边中点的世界坐标（作物锚点）
func CellMidBottom(row, col int) (x, y float64) {
	ox, oy := CellOrigin(row, col)
	return ox + TileSize/2.0, oy + TileSize
}

// CropHitbox 根据作物图片尺寸计算碰撞盒（相对图片左上角）
// 碰撞盒与图片中心对齐，宽度减少 CropHitboxShrinkX，高度减少 40%
//
// 返回：
//   - offsetX, offsetY: 碰撞盒左上角相对图片左上角的偏移
//   - width, height: 碰撞盒尺寸（不小于 0）
func CropHitbox(imageWidth, imageHeight float64) (offsetX, offsetY, width, height float64) {
	width = imageWidth - CropHitboxShrinkX
	if width < 0 {
		width = 0
	}
	height = imageHeight * (1 - CropHitboxShrinkYRatio)
	offsetX = (imageWidth - width) / 2
	offsetY = (imageHeight - height) / 2
	return offsetX, offsetY, width, height
}
