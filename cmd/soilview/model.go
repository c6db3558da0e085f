package main

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/decker502/farmland/pkg/systems"
	"github.com/decker502/farmland/pkg/types"
)

// growInterval 自动生长模式下两次生长 tick 的间隔
const growInterval = 500 * time.Millisecond

// tool 终端中可用的工具
type tool int

const (
	toolHoe tool = iota
	toolWater
	toolSeed
	toolHarvest
)

func (t tool) String() string {
	switch t {
	case toolHoe:
		return "hoe"
	case toolWater:
		return "water"
	case toolSeed:
		return "seed"
	case toolHarvest:
		return "harvest"
	default:
		return "unknown"
	}
}

// growTickMsg 自动生长的 tick 消息
// gen 是发出时的自动生长代数，旧代的 tick 被丢弃
type growTickMsg struct {
	gen int
}

func growTickCmd(gen int) tea.Cmd {
	return tea.Tick(growInterval, func(time.Time) tea.Msg {
		return growTickMsg{gen: gen}
	})
}

// model soilview 的 Bubble Tea 模型
type model struct {
	farm      *systems.Farm
	cursorRow int
	cursorCol int
	tool      tool
	seed      types.CropType
	harvested map[types.CropType]int
	ticks     int
	autoGrow  bool
	growGen   int
	message   string
	keys      keyMap
	help      help.Model
	width     int
	quitting  bool
}

func newModel(farm *systems.Farm) model {
	return model{
		farm:      farm,
		tool:      toolHoe,
		seed:      types.CropCorn,
		harvested: make(map[types.CropType]int),
		keys:      defaultKeyMap(),
		help:      help.New(),
	}
}

// Init implements tea.Model.
func (m model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width

	case growTickMsg:
		if !m.autoGrow || msg.gen != m.growGen {
			return m, nil
		}
		m.grow()
		return m, growTickCmd(m.growGen)

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Up):
		m.moveCursor(-1, 0)
	case key.Matches(msg, m.keys.Down):
		m.moveCursor(1, 0)
	case key.Matches(msg, m.keys.Left):
		m.moveCursor(0, -1)
	case key.Matches(msg, m.keys.Right):
		m.moveCursor(0, 1)
	case key.Matches(msg, m.keys.Hoe):
		m.tool = toolHoe
	case key.Matches(msg, m.keys.Water):
		m.tool = toolWater
	case key.Matches(msg, m.keys.Seed):
		m.tool = toolSeed
	case key.Matches(msg, m.keys.Harvest):
		m.tool = toolHarvest
	case key.Matches(msg, m.keys.NextSeed):
		m.seed = nextSeed(m.seed)
		m.message = fmt.Sprintf("seed: %s", m.seed)
	case key.Matches(msg, m.keys.Use):
		m.useTool()
	case key.Matches(msg, m.keys.Grow):
		m.grow()
	case key.Matches(msg, m.keys.Auto):
		m.autoGrow = !m.autoGrow
		if m.autoGrow {
			m.growGen++
			return m, growTickCmd(m.growGen)
		}
	case key.Matches(msg, m.keys.NewDay):
		m.farm.Days.StartNewDay()
		m.message = fmt.Sprintf("day %d: %s", m.farm.Days.Day(), weatherName(m.farm.Weather))
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}
	return m, nil
}

func (m *model) moveCursor(dRow, dCol int) {
	row, col := m.cursorRow+dRow, m.cursorCol+dCol
	if m.farm.Grid.InBounds(row, col) {
		m.cursorRow, m.cursorCol = row, col
	}
}

// useTool 在光标格子上使用当前工具
func (m *model) useTool() {
	row, col := m.cursorRow, m.cursorCol
	var ok bool

	switch m.tool {
	case toolHoe:
		ok = m.farm.Soil.Till(row, col)
	case toolWater:
		ok = m.farm.Soil.Water(row, col)
	case toolSeed:
		_, ok = m.farm.Soil.Plant(row, col, m.seed)
	case toolHarvest:
		var crop types.CropType
		crop, ok = m.farm.Harvest.Harvest(row, col)
		if ok {
			m.harvested[crop]++
		}
	}

	if ok {
		m.message = fmt.Sprintf("%s at (%d, %d)", m.tool, row, col)
	} else {
		m.message = fmt.Sprintf("%s at (%d, %d): nothing happened", m.tool, row, col)
	}
}

func (m *model) grow() {
	m.farm.Growth.Update()
	m.ticks++
}

func nextSeed(current types.CropType) types.CropType {
	for i, crop := range types.AllCropTypes {
		if crop == current {
			return types.AllCropTypes[(i+1)%len(types.AllCropTypes)]
		}
	}
	return types.AllCropTypes[0]
}

func weatherName(w *systems.WeatherSystem) string {
	if w.IsRaining() {
		return "raining"
	}
	return "sunny"
}
