package components

// CellFlags 单个农田格子的状态位集合
//
// 各标志相互独立，但受领域规则约束：
//   - Tilled 需要 Farmable
//   - Watered / Planted 需要 Tilled
type CellFlags uint8

const (
	CellFarmable CellFlags = 1 << iota // 地图标记为可耕种
	CellTilled                         // 已用锄头翻土
	CellWatered                        // 已浇水
	CellPlanted                        // 已播种
)

// Has 检查是否包含全部给定标志
func (f CellFlags) Has(flags CellFlags) bool {
	return f&flags == flags
}

// Valid 检查标志组合是否满足领域不变式
func (f CellFlags) Valid() bool {
	if f.Has(CellTilled) && !f.Has(CellFarmable) {
		return false
	}
	if (f.Has(CellWatered) || f.Has(CellPlanted)) && !f.Has(CellTilled) {
		return false
	}
	return true
}

// SoilGridComponent 农田网格数据
//
// Cells 按 [row][col] 索引，尺寸在创建时由地图尺寸确定，之后不再改变。
// 只能通过 SoilGridSystem 修改，以保证不变式。
type SoilGridComponent struct {
	Rows  int
	Cols  int
	Cells [][]CellFlags
}
