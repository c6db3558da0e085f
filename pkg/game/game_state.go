package game

import (
	"github.com/charmbracelet/log"
	"github.com/decker502/farmland/pkg/types"
	"github.com/quasilyte/gdata/v2"
)

// AppName gdata 存储目录名
const AppName = "farmland"

// Tool 玩家手中的工具
type Tool int

const (
	ToolHoe     Tool = iota // 锄头：翻土
	ToolWater               // 水壶：浇水
	ToolSeed                // 种子：播种当前选中的作物
	ToolHarvest             // 徒手：收获成熟作物
)

// AllTools 工具切换顺序
var AllTools = []Tool{ToolHoe, ToolWater, ToolSeed, ToolHarvest}

// String 返回工具名称
func (t Tool) String() string {
	switch t {
	case ToolHoe:
		return "hoe"
	case ToolWater:
		return "water"
	case ToolSeed:
		return "seed"
	case ToolHarvest:
		return "harvest"
	default:
		return "unknown"
	}
}

// GameState 存储跨场景的全局状态
// 这是一个单例，用于管理工具选择、收获库存以及持久化管理器
type GameState struct {
	// 玩家交互状态
	SelectedTool Tool
	SelectedSeed types.CropType

	// inventory 收获库存：作物 -> 数量
	inventory map[types.CropType]int

	gdataManager    *gdata.Manager   // 可为 nil（降级模式，不持久化）
	settingsManager *SettingsManager // 玩家设置
	farmSaveManager *FarmSaveManager // 农田存档
	audioManager    *AudioManager    // 由 app 在音频初始化后设置
}

// 全局单例实例（这是架构规范允许的唯一全局变量）
var globalGameState *GameState

// GetGameState 返回全局 GameState 单例
// 首次调用时打开 gdata 存储；失败时降级为仅内存模式
func GetGameState() *GameState {
	if globalGameState == nil {
		manager, err := gdata.Open(gdata.Config{AppName: AppName})
		if err != nil {
			log.Warnf("[GameState] Failed to open gdata storage: %v (saves disabled)", err)
			manager = nil
		}
		globalGameState = NewGameState(manager)
	}
	return globalGameState
}

// NewGameState 创建游戏状态
// 参数：
//   - gdataManager: 存储管理器，可为 nil
func NewGameState(gdataManager *gdata.Manager) *GameState {
	settingsManager, _ := NewSettingsManager(gdataManager)
	return &GameState{
		SelectedTool:    ToolHoe,
		SelectedSeed:    types.CropCorn,
		inventory:       make(map[types.CropType]int),
		gdataManager:    gdataManager,
		settingsManager: settingsManager,
		farmSaveManager: NewFarmSaveManager(gdataManager),
	}
}

// GetGdataManager 返回 gdata 存储管理器（可能为 nil）
func (gs *GameState) GetGdataManager() *gdata.Manager {
	return gs.gdataManager
}

// GetSettingsManager 返回设置管理器
func (gs *GameState) GetSettingsManager() *SettingsManager {
	return gs.settingsManager
}

// GetFarmSaveManager 返回农田存档管理器
func (gs *GameState) GetFarmSaveManager() *FarmSaveManager {
	return gs.farmSaveManager
}

// SetAudioManager 设置音频管理器
func (gs *GameState) SetAudioManager(am *AudioManager) {
	gs.audioManager = am
}

// GetAudioManager 返回音频管理器（可能为 nil）
func (gs *GameState) GetAudioManager() *AudioManager {
	return gs.audioManager
}

// SelectTool 切换工具
func (gs *GameState) SelectTool(tool Tool) {
	gs.SelectedTool = tool
}

// CycleSeed 切换到下一种作物种子
func (gs *GameState) CycleSeed() types.CropType {
	for i, crop := range types.AllCropTypes {
		if crop == gs.SelectedSeed {
			gs.SelectedSeed = types.AllCropTypes[(i+1)%len(types.AllCropTypes)]
			return gs.SelectedSeed
		}
	}
	gs.SelectedSeed = types.AllCropTypes[0]
	return gs.SelectedSeed
}

// AddHarvest 收获入库
func (gs *GameState) AddHarvest(crop types.CropType) {
	gs.inventory[crop]++
}

// InventoryCount 返回作物库存数量
func (gs *GameState) InventoryCount(crop types.CropType) int {
	return gs.inventory[crop]
}

// InventorySnapshot 返回可序列化的库存（作物名 -> 数量）
func (gs *GameState) InventorySnapshot() map[string]int {
	snapshot := make(map[string]int, len(gs.inventory))
	for crop, count := range gs.inventory {
		if count > 0 {
			snapshot[crop.String()] = count
		}
	}
	return snapshot
}

// RestoreInventory 从存档恢复库存，忽略未知作物
func (gs *GameState) RestoreInventory(snapshot map[string]int) {
	gs.inventory = make(map[types.CropType]int, len(snapshot))
	for name, count := range snapshot {
		crop, ok := types.ParseCropType(name)
		if !ok {
			log.Warnf("[GameState] Unknown crop %q in saved inventory, ignored", name)
			continue
		}
		gs.inventory[crop] = count
	}
}
