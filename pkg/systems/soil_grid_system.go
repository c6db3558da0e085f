package systems

import (
	"github.com/charmbracelet/log"
	"github.com/decker502/farmland/pkg/components"
	"github.com/decker502/farmland/pkg/config"
	"github.com/decker502/farmland/pkg/ecs"
)

// SoilGridSystem 农田网格（权威状态）
//
// 网格数据保存在一个 SoilGridComponent 实体上，所有修改都经过本系统，
// 以保证不变式：Tilled ⇒ Farmable；Watered/Planted ⇒ Tilled。
// 违反不变式的修改是静默的空操作（返回 false），不是错误。
// 所有读取在越界时返回 false。
type SoilGridSystem struct {
	entityManager *ecs.EntityManager
	gridEntity    ecs.EntityID
	grid          *components.SoilGridComponent

	farmableLoaded bool // 可耕种区域已从地图加载
}

// NewSoilGridSystem 创建农田网格
// 参数:
//   - em: EntityManager 实例
//   - rows, cols: 网格尺寸（来自地图尺寸，创建后不再改变；负数按 0 处理）
//
// 返回:
//   - *SoilGridSystem: 网格系统实例
func NewSoilGridSystem(em *ecs.EntityManager, rows, cols int) *SoilGridSystem {
	if rows < 0 {
		rows = 0
	}
	if cols < 0 {
		cols = 0
	}

	cells := make([][]components.CellFlags, rows)
	for row := range cells {
		cells[row] = make([]components.CellFlags, cols)
	}

	grid := &components.SoilGridComponent{Rows: rows, Cols: cols, Cells: cells}
	gridEntity := em.CreateEntity()
	ecs.AddComponent(em, gridEntity, grid)

	log.Debugf("[SoilGridSystem] Created %dx%d soil grid (entity %d)", rows, cols, gridEntity)

	return &SoilGridSystem{
		entityManager: em,
		gridEntity:    gridEntity,
		grid:          grid,
	}
}

// Rows 网格行数
func (s *SoilGridSystem) Rows() int { return s.grid.Rows }

// Cols 网格列数
func (s *SoilGridSystem) Cols() int { return s.grid.Cols }

// GridEntity 网格实体ID
func (s *SoilGridSystem) GridEntity() ecs.EntityID { return s.gridEntity }

// InBounds 检查格子坐标是否在网格内
func (s *SoilGridSystem) InBounds(row, col int) bool {
	return row >= 0 && row < s.grid.Rows && col >= 0 && col < s.grid.Cols
}

// Flags 返回格子的全部标志，越界返回 0
func (s *SoilGridSystem) Flags(row, col int) components.CellFlags {
	if !s.InBounds(row, col) {
		return 0
	}
	return s.grid.Cells[row][col]
}

// IsFarmable 格子是否可耕种
func (s *SoilGridSystem) IsFarmable(row, col int) bool {
	return s.Flags(row, col).Has(components.CellFarmable)
}

// IsTilled 格子是否已耕
func (s *SoilGridSystem) IsTilled(row, col int) bool {
	return s.Flags(row, col).Has(components.CellTilled)
}

// IsWatered 格子是否已浇水
func (s *SoilGridSystem) IsWatered(row, col int) bool {
	return s.Flags(row, col).Has(components.CellWatered)
}

// IsPlanted 格子是否已播种
func (s *SoilGridSystem) IsPlanted(row, col int) bool {
	return s.Flags(row, col).Has(components.CellPlanted)
}

// MarkFarmable 标记格子为可耕种（仅由地图加载器调用）
func (s *SoilGridSystem) MarkFarmable(row, col int) bool {
	if !s.InBounds(row, col) {
		return false
	}
	s.grid.Cells[row][col] |= components.CellFarmable
	return true
}

// Till 翻土
// 返回 true 表示格子由未耕变为已耕；不可耕种、已耕或越界时返回 false
func (s *SoilGridSystem) Till(row, col int) bool {
	flags := s.Flags(row, col)
	if !flags.Has(components.CellFarmable) || flags.Has(components.CellTilled) {
		return false
	}
	s.grid.Cells[row][col] |= components.CellTilled
	return true
}

// SetWatered 浇水
// 返回 true 表示格子由干燥变为湿润；未耕、已湿润或越界时返回 false
func (s *SoilGridSystem) SetWatered(row, col int) bool {
	flags := s.Flags(row, col)
	if !flags.Has(components.CellTilled) || flags.Has(components.CellWatered) {
		return false
	}
	s.grid.Cells[row][col] |= components.CellWatered
	return true
}

// ClearAllWater 清除所有格子的湿润标志
// 返回被清除的格子数量
func (s *SoilGridSystem) ClearAllWater() int {
	cleared := 0
	for row := range s.grid.Cells {
		for col := range s.grid.Cells[row] {
			if s.grid.Cells[row][col].Has(components.CellWatered) {
				s.grid.Cells[row][col] &^= components.CellWatered
				cleared++
			}
		}
	}
	return cleared
}

// SetPlanted 标记格子已播种
// 返回 true 表示格子由空变为已播种；未耕、已播种或越界时返回 false
func (s *SoilGridSystem) SetPlanted(row, col int) bool {
	flags := s.Flags(row, col)
	if !flags.Has(components.CellTilled) || flags.Has(components.CellPlanted) {
		return false
	}
	s.grid.Cells[row][col] |= components.CellPlanted
	return true
}

// ClearPlanted 清除播种标志（收获后调用）
func (s *SoilGridSystem) ClearPlanted(row, col int) bool {
	if !s.IsPlanted(row, col) {
		return false
	}
	s.grid.Cells[row][col] &^= components.CellPlanted
	return true
}

// WorldToCell 世界坐标转换为格子坐标
// 坐标整除 TileSize；负坐标和越界坐标返回 ok = false
func (s *SoilGridSystem) WorldToCell(x, y float64) (row, col int, ok bool) {
	if x < 0 || y < 0 {
		return 0, 0, false
	}
	col = int(x) / config.TileSize
	row = int(y) / config.TileSize
	if !s.InBounds(row, col) {
		return 0, 0, false
	}
	return row, col, true
}

// CellOrigin 格子左上角的世界坐标
func (s *SoilGridSystem) CellOrigin(row, col int) (x, y float64) {
	return config.CellOrigin(row, col)
}

// IsWateredAt 世界坐标所在格子是否湿润（越界返回 false）
func (s *SoilGridSystem) IsWateredAt(x, y float64) bool {
	row, col, ok := s.WorldToCell(x, y)
	return ok && s.IsWatered(row, col)
}

// CellPos 格子坐标
type CellPos struct {
	Row int `yaml:"row"`
	Col int `yaml:"col"`
}

// TilledCells 返回全部已耕格子（按行优先顺序）
func (s *SoilGridSystem) TilledCells() []CellPos {
	return s.cellsWith(components.CellTilled)
}

// WateredCells 返回全部湿润格子（按行优先顺序）
func (s *SoilGridSystem) WateredCells() []CellPos {
	return s.cellsWith(components.CellWatered)
}

// FarmableCount 可耕种格子数量
func (s *SoilGridSystem) FarmableCount() int {
	return len(s.cellsWith(components.CellFarmable))
}

func (s *SoilGridSystem) cellsWith(flag components.CellFlags) []CellPos {
	var cells []CellPos
	for row := range s.grid.Cells {
		for col, flags := range s.grid.Cells[row] {
			if flags.Has(flag) {
				cells = append(cells, CellPos{Row: row, Col: col})
			}
		}
	}
	return cells
}
