package systems

import "github.com/decker502/farmland/pkg/types"

// TilledQuery 自动拼接只需要的网格读取能力
type TilledQuery interface {
	IsTilled(row, col int) bool
}

// 邻居位掩码
const (
	neighborTop = 1 << iota
	neighborRight
	neighborBottom
	neighborLeft

	neighborAll = neighborTop | neighborRight | neighborBottom | neighborLeft
)

// soilNeighborMask 计算四邻域已耕掩码，越界邻居视为未耕
func soilNeighborMask(grid TilledQuery, row, col int) int {
	mask := 0
	if grid.IsTilled(row-1, col) {
		mask |= neighborTop
	}
	if grid.IsTilled(row, col+1) {
		mask |= neighborRight
	}
	if grid.IsTilled(row+1, col) {
		mask |= neighborBottom
	}
	if grid.IsTilled(row, col-1) {
		mask |= neighborLeft
	}
	return mask
}

// ResolveSoilVariant 根据四邻域已耕状态选择土块外观
//
// 判定顺序（先匹配先生效）：
//  1. 四邻全耕 → x
//  2. 上下都未耕（水平）：左右 → lr，仅左 → r，仅右 → l，都无 → o
//  3. 左右都未耕（垂直）：上下 → tb，仅上 → b，仅下 → t
//  4. L 形拐角：下+左 → tr，下+右 → tl，上+左 → br，上+右 → bl
//  5. T 形三岔：缺左 → tbr，缺右 → tbl，缺下 → lrb，缺上 → lrt
//  6. 其他 → o
//
// 只依赖邻居的已耕状态，与格子自身状态无关。
func ResolveSoilVariant(grid TilledQuery, row, col int) types.SoilVariant {
	mask := soilNeighborMask(grid, row, col)

	top := mask&neighborTop != 0
	right := mask&neighborRight != 0
	bottom := mask&neighborBottom != 0
	left := mask&neighborLeft != 0

	if mask == neighborAll {
		return types.SoilCenter
	}

	if !top && !bottom {
		switch {
		case left && right:
			return types.SoilHorizontal
		case left:
			return types.SoilRightEnd
		case right:
			return types.SoilLeftEnd
		default:
			return types.SoilIsolated
		}
	}

	if !left && !right {
		switch {
		case top && bottom:
			return types.SoilVertical
		case top:
			return types.SoilBottomEnd
		default:
			return types.SoilTopEnd
		}
	}

	switch mask {
	case neighborBottom | neighborLeft:
		return types.SoilCornerTopRight
	case neighborBottom | neighborRight:
		return types.SoilCornerTopLeft
	case neighborTop | neighborLeft:
		return types.SoilCornerBottomRight
	case neighborTop | neighborRight:
		return types.SoilCornerBottomLeft
	case neighborAll &^ neighborLeft:
		return types.SoilJunctionNoLeft
	case neighborAll &^ neighborRight:
		return types.SoilJunctionNoRight
	case neighborAll &^ neighborBottom:
		return types.SoilJunctionNoBottom
	case neighborAll &^ neighborTop:
		return types.SoilJunctionNoTop
	}

	return types.SoilIsolated
}
