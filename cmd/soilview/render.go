package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/decker502/farmland/pkg/components"
	"github.com/decker502/farmland/pkg/ecs"
	"github.com/decker502/farmland/pkg/types"
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	statusStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	messageStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("244")).Italic(true)
	helpStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	grassStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("22"))
	farmableStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("64"))
	soilStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("130")).Background(lipgloss.Color("52"))
	wateredStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("153")).Background(lipgloss.Color("24"))

	cropColor = lipgloss.Color("118")
	ripeColor = lipgloss.Color("214")
)

// variantGlyphs 用方框线条表示土块朝哪些方向连通
var variantGlyphs = map[types.SoilVariant]string{
	types.SoilIsolated:          "▪",
	types.SoilCenter:            "┼",
	types.SoilHorizontal:        "─",
	types.SoilRightEnd:          "╴",
	types.SoilLeftEnd:           "╶",
	types.SoilVertical:          "│",
	types.SoilBottomEnd:         "╵",
	types.SoilTopEnd:            "╷",
	types.SoilCornerTopRight:    "┐",
	types.SoilCornerTopLeft:     "┌",
	types.SoilCornerBottomRight: "┘",
	types.SoilCornerBottomLeft:  "└",
	types.SoilJunctionNoLeft:    "├",
	types.SoilJunctionNoRight:   "┤",
	types.SoilJunctionNoBottom:  "┴",
	types.SoilJunctionNoTop:     "┬",
}

// connectsLeft / connectsRight 土块形状是否向左/右连通
func connectsLeft(v types.SoilVariant) bool {
	switch v {
	case types.SoilCenter, types.SoilHorizontal, types.SoilRightEnd,
		types.SoilCornerTopRight, types.SoilCornerBottomRight, types.SoilJunctionNoRight,
		types.SoilJunctionNoBottom, types.SoilJunctionNoTop:
		return true
	}
	return false
}

func connectsRight(v types.SoilVariant) bool {
	switch v {
	case types.SoilCenter, types.SoilHorizontal, types.SoilLeftEnd,
		types.SoilCornerTopLeft, types.SoilCornerBottomLeft, types.SoilJunctionNoLeft,
		types.SoilJunctionNoBottom, types.SoilJunctionNoTop:
		return true
	}
	return false
}

// cellGlyph 返回格子的三字符表示
// 土块形状取自土块实体，作物用首字母表示（成熟时大写）
func cellGlyph(v types.SoilVariant, crop *components.CropComponent) string {
	left, right := " ", " "
	if connectsLeft(v) {
		left = "─"
	}
	if connectsRight(v) {
		right = "─"
	}

	center := variantGlyphs[v]
	if crop != nil {
		letter := crop.CropType.String()[:1]
		if crop.Harvestable {
			letter = strings.ToUpper(letter)
		}
		center = letter
	}
	return left + center + right
}

// View implements tea.Model.
func (m model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("SOILVIEW"))
	b.WriteString("\n\n")
	b.WriteString(m.renderGrid())
	b.WriteString("\n")

	auto := ""
	if m.autoGrow {
		auto = " (auto)"
	}
	status := fmt.Sprintf("day %d %s | tool %s | seed %s | ticks %d%s | corn %d tomato %d",
		m.farm.Days.Day(), weatherName(m.farm.Weather), m.tool, m.seed, m.ticks, auto,
		m.harvested[types.CropCorn], m.harvested[types.CropTomato])
	b.WriteString(statusStyle.Render(status))
	b.WriteString("\n")
	b.WriteString(messageStyle.Render(m.message))
	b.WriteString("\n\n")
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))
	return b.String()
}

func (m model) renderGrid() string {
	em := m.farm.EntityManager

	variants := make(map[[2]int]types.SoilVariant)
	for _, id := range ecs.GetEntitiesWith1[*components.SoilTileComponent](em) {
		tile, _ := ecs.GetComponent[*components.SoilTileComponent](em, id)
		variants[[2]int{tile.Row, tile.Col}] = tile.Variant
	}

	var b strings.Builder
	for row := 0; row < m.farm.Grid.Rows(); row++ {
		for col := 0; col < m.farm.Grid.Cols(); col++ {
			glyph, style := m.cellView(row, col, variants[[2]int{row, col}])
			if row == m.cursorRow && col == m.cursorCol {
				style = style.Reverse(true)
			}
			b.WriteString(style.Render(glyph))
		}
		b.WriteString("\n")
	}
	return b.String()
}

// cellView 返回格子的字符和样式
func (m model) cellView(row, col int, variant types.SoilVariant) (string, lipgloss.Style) {
	grid := m.farm.Grid
	switch {
	case grid.IsTilled(row, col):
		_, crop, _ := m.farm.Soil.CropAt(row, col)
		style := soilStyle
		if grid.IsWatered(row, col) {
			style = wateredStyle
		}
		if crop != nil {
			style = style.Bold(true).Foreground(cropColor)
			if crop.Harvestable {
				style = style.Foreground(ripeColor)
			}
		}
		return cellGlyph(variant, crop), style
	case grid.IsFarmable(row, col):
		return " · ", farmableStyle
	default:
		return " \" ", grassStyle
	}
}
