package types

// SoilVariant 已耕地块的视觉形状标识
// 取值与 soil 资源目录中的图片名一致（如 "lr" -> soil/lr.png）
//
// 命名规则：字母表示该地块“朝哪些方向连通”
//   - t/b/l/r: 上/下/左/右
//   - x: 四面连通（中心块）
//   - o: 孤立块
type SoilVariant string

const (
	SoilIsolated SoilVariant = "o" // 无相邻耕地
	SoilCenter   SoilVariant = "x" // 四面都有耕地

	// 水平方向
	SoilHorizontal SoilVariant = "lr" // 左右都有
	SoilRightEnd   SoilVariant = "r"  // 只有左侧（右端）
	SoilLeftEnd    SoilVariant = "l"  // 只有右侧（左端）

	// 垂直方向
	SoilVertical  SoilVariant = "tb" // 上下都有
	SoilBottomEnd SoilVariant = "b"  // 只有上方（下端）
	SoilTopEnd    SoilVariant = "t"  // 只有下方（上端）

	// L 形拐角
	SoilCornerTopRight    SoilVariant = "tr" // 下+左
	SoilCornerTopLeft     SoilVariant = "tl" // 下+右
	SoilCornerBottomRight SoilVariant = "br" // 上+左
	SoilCornerBottomLeft  SoilVariant = "bl" // 上+右

	// T 形交汇（缺哪一侧）
	SoilJunctionNoLeft   SoilVariant = "tbr" // 上+下+右
	SoilJunctionNoRight  SoilVariant = "tbl" // 上+下+左
	SoilJunctionNoBottom SoilVariant = "lrb" // 左+右+上
	SoilJunctionNoTop    SoilVariant = "lrt" // 左+右+下
)

// AllSoilVariants 自动拼接算法可能产生的全部形状
var AllSoilVariants = []SoilVariant{
	SoilIsolated, SoilCenter,
	SoilHorizontal, SoilRightEnd, SoilLeftEnd,
	SoilVertical, SoilBottomEnd, SoilTopEnd,
	SoilCornerTopRight, SoilCornerTopLeft, SoilCornerBottomRight, SoilCornerBottomLeft,
	SoilJunctionNoLeft, SoilJunctionNoRight, SoilJunctionNoBottom, SoilJunctionNoTop,
}
