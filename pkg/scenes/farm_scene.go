package scenes

import (
	"fmt"
	"image/color"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
	"github.com/decker502/farmland/internal/tilemap"
	"github.com/decker502/farmland/pkg/config"
	"github.com/decker502/farmland/pkg/ecs"
	"github.com/decker502/farmland/pkg/game"
	"github.com/decker502/farmland/pkg/systems"
	"github.com/decker502/farmland/pkg/types"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	// GrowthTickSeconds 两次生长更新之间的模拟时间（秒）
	GrowthTickSeconds = 1.0

	// HUD 布局
	HUDHeight  = 48
	HUDMarginX = 8
	HUDLineY1  = 6
	HUDLineY2  = 24

	// MessageDuration 操作提示的显示时长（秒）
	MessageDuration = 2.0

	// VolumeStep 每次按 -/= 调整的音量
	VolumeStep = 0.1
)

var (
	grassColor    = color.RGBA{R: 96, G: 150, B: 72, A: 255}
	hudColor      = color.RGBA{R: 32, G: 24, B: 16, A: 220}
	gridLineColor = color.RGBA{R: 255, G: 255, B: 255, A: 48}
)

// FarmSceneOptions 农田场景的依赖
type FarmSceneOptions struct {
	ResourceManager *game.ResourceManager
	SceneManager    *game.SceneManager
	GameState       *game.GameState
	FarmConfig      *config.FarmConfig
	// Source 提供地图尺寸和可耕种图层
	Source tilemap.Source
	// Restore 为 true 时从存档恢复农田
	Restore bool
}

// FarmScene 农田玩法场景
// 鼠标在格子上使用当前工具；键盘选择工具、种子和推进天数
type FarmScene struct {
	resourceManager *game.ResourceManager
	sceneManager    *game.SceneManager
	gameState       *game.GameState

	// ECS Framework and Systems
	entityManager *ecs.EntityManager
	grid          *systems.SoilGridSystem
	soil          *systems.SoilSystem
	growth        *systems.CropGrowthSystem
	weather       *systems.WeatherSystem
	days          *systems.DayCycleSystem
	harvest       *systems.HarvestSystem
	renderSystem  *systems.RenderSystem

	growthTimer  float64
	message      string
	messageTimer float64
}

// NewFarmScene 创建农田场景
//
// 返回：
//   - *FarmScene: 场景实例
//   - error: 资源描述不完整或地图图层读取失败
func NewFarmScene(opts FarmSceneOptions) (*FarmScene, error) {
	farmConfig := opts.FarmConfig
	if farmConfig == nil {
		farmConfig = config.DefaultFarmConfig()
	}

	seed := farmConfig.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	assets := game.NewFarmAssets(opts.ResourceManager, config.DefaultFarmAssets())
	farm, err := systems.BuildFarm(opts.Source, assets, farmConfig, rand.New(rand.NewSource(seed)))
	if err != nil {
		return nil, err
	}
	if am := opts.GameState.GetAudioManager(); am != nil {
		farm.Soil.SetSoundPlayer(am)
	}

	scene := &FarmScene{
		resourceManager: opts.ResourceManager,
		sceneManager:    opts.SceneManager,
		gameState:       opts.GameState,
		entityManager:   farm.EntityManager,
		grid:            farm.Grid,
		soil:            farm.Soil,
		growth:          farm.Growth,
		weather:         farm.Weather,
		days:            farm.Days,
		harvest:         farm.Harvest,
		renderSystem:    systems.NewRenderSystem(farm.EntityManager, opts.ResourceManager),
	}

	if opts.Restore {
		scene.restore()
	}

	log.Infof("[FarmScene] Farm ready: %dx%d grid, %d farmable cells, seed %d",
		farm.Grid.Rows(), farm.Grid.Cols(), farm.Grid.FarmableCount(), seed)
	return scene, nil
}

// restore 读取存档并重放农田状态；失败时保留空农田
func (s *FarmScene) restore() {
	data, err := s.gameState.GetFarmSaveManager().Load()
	if err != nil {
		log.Debugf("[FarmScene] No farm restored: %v", err)
		return
	}
	if err := s.applySave(data); err != nil {
		log.Warnf("[FarmScene] Failed to restore farm: %v", err)
	}
}

// applySave 把存档应用到空农田
func (s *FarmScene) applySave(data *game.FarmSaveData) error {
	if err := systems.RestoreFarm(s.soil, s.days, data.Farm); err != nil {
		return err
	}
	s.gameState.RestoreInventory(data.Inventory)
	log.Infof("[FarmScene] Restored day %d (%d crops)", data.Farm.Day, len(data.Farm.Crops))
	return nil
}

// SaveOnExit 保存农田和背包
func (s *FarmScene) SaveOnExit() bool {
	data := &game.FarmSaveData{
		Farm:      systems.CaptureFarm(s.soil, s.days),
		Inventory: s.gameState.InventorySnapshot(),
	}
	if err := s.gameState.GetFarmSaveManager().Save(data); err != nil {
		log.Warnf("[FarmScene] Failed to save farm: %v", err)
		return false
	}
	return true
}

// ScreenSize 农田加 HUD 的逻辑屏幕尺寸
func (s *FarmScene) ScreenSize() (int, int) {
	return s.grid.Cols() * config.TileSize, s.grid.Rows()*config.TileSize + HUDHeight
}

// Update 处理输入并按固定间隔推进作物生长
func (s *FarmScene) Update(deltaTime float64) {
	s.handleKeyboard()

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		cx, cy := ebiten.CursorPosition()
		s.UseTool(float64(cx), float64(cy))
	}

	s.Advance(deltaTime)
}

// Advance 推进模拟时间，每满 GrowthTickSeconds 执行一次生长更新
// 返回执行的生长 tick 数
func (s *FarmScene) Advance(deltaTime float64) int {
	if s.messageTimer > 0 {
		s.messageTimer -= deltaTime
	}

	ticks := 0
	s.growthTimer += deltaTime
	for s.growthTimer >= GrowthTickSeconds {
		s.growthTimer -= GrowthTickSeconds
		s.growth.Update()
		ticks++
	}
	return ticks
}

func (s *FarmScene) handleKeyboard() {
	toolKeys := []ebiten.Key{ebiten.Key1, ebiten.Key2, ebiten.Key3, ebiten.Key4}
	for i, key := range toolKeys {
		if inpututil.IsKeyJustPressed(key) {
			s.gameState.SelectTool(game.AllTools[i])
			s.showMessage(fmt.Sprintf("Tool: %s", game.AllTools[i]))
		}
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		s.showMessage(fmt.Sprintf("Seed: %s", s.gameState.CycleSeed()))
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		s.NewDay()
	}

	if am := s.gameState.GetAudioManager(); am != nil {
		switch {
		case inpututil.IsKeyJustPressed(ebiten.KeyM):
			if am.ToggleMusic(config.SoundMusic) {
				s.showMessage("Music on")
			} else {
				s.showMessage("Music off")
			}
		case inpututil.IsKeyJustPressed(ebiten.KeyMinus):
			am.SetMusicVolume(am.MusicVolume() - VolumeStep)
			s.showMessage(fmt.Sprintf("Music volume: %.0f%%", am.MusicVolume()*100))
		case inpututil.IsKeyJustPressed(ebiten.KeyEqual):
			am.SetMusicVolume(am.MusicVolume() + VolumeStep)
			s.showMessage(fmt.Sprintf("Music volume: %.0f%%", am.MusicVolume()*100))
		}
	}

	settings := s.gameState.GetSettingsManager()
	if inpututil.IsKeyJustPressed(ebiten.KeyF2) {
		settings.ToggleShowGrid()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF3) {
		settings.ToggleShowHitboxes()
	}
}

// UseTool 在世界坐标处使用当前选中的工具
// 返回操作是否改变了农田
func (s *FarmScene) UseTool(x, y float64) bool {
	switch s.gameState.SelectedTool {
	case game.ToolHoe:
		return s.soil.TillAt(x, y)
	case game.ToolWater:
		return s.soil.WaterAt(x, y)
	case game.ToolSeed:
		_, ok := s.soil.PlantAt(x, y, s.gameState.SelectedSeed)
		return ok
	case game.ToolHarvest:
		crop, ok := s.harvest.HarvestAt(x, y)
		if ok {
			s.gameState.AddHarvest(crop)
			s.showMessage(fmt.Sprintf("Harvested %s (%d)", crop, s.gameState.InventoryCount(crop)))
		}
		return ok
	}
	return false
}

// NewDay 结束当天：清除浇水并掷出新一天的天气
func (s *FarmScene) NewDay() {
	s.days.StartNewDay()
	weather := "sunny"
	if s.weather.IsRaining() {
		weather = "raining"
	}
	s.showMessage(fmt.Sprintf("Day %d: %s", s.days.Day(), weather))
}

func (s *FarmScene) showMessage(msg string) {
	s.message = msg
	s.messageTimer = MessageDuration
	log.Debugf("[FarmScene] %s", msg)
}

// Draw 绘制草地、农田实体和 HUD
func (s *FarmScene) Draw(screen *ebiten.Image) {
	screen.Fill(grassColor)

	settings := s.gameState.GetSettingsManager().GetSettings()
	if settings.ShowGrid {
		s.drawGrid(screen)
	}

	s.renderSystem.ShowHitboxes = settings.ShowHitboxes
	s.renderSystem.Draw(screen)

	s.drawHUD(screen)
}

func (s *FarmScene) drawGrid(screen *ebiten.Image) {
	w := float32(s.grid.Cols() * config.TileSize)
	h := float32(s.grid.Rows() * config.TileSize)
	for col := 0; col <= s.grid.Cols(); col++ {
		x := float32(col * config.TileSize)
		vector.StrokeLine(screen, x, 0, x, h, 1, gridLineColor, false)
	}
	for row := 0; row <= s.grid.Rows(); row++ {
		y := float32(row * config.TileSize)
		vector.StrokeLine(screen, 0, y, w, y, 1, gridLineColor, false)
	}
}

func (s *FarmScene) drawHUD(screen *ebiten.Image) {
	top := s.grid.Rows() * config.TileSize
	width, _ := s.ScreenSize()
	vector.DrawFilledRect(screen, 0, float32(top), float32(width), HUDHeight, hudColor, false)

	weather := "sunny"
	if s.weather.IsRaining() {
		weather = "rain"
	}
	status := fmt.Sprintf("Day %d (%s)  Tool: %s  Seed: %s  Corn: %d  Tomato: %d",
		s.days.Day(), weather, s.gameState.SelectedTool, s.gameState.SelectedSeed,
		s.gameState.InventoryCount(types.CropCorn), s.gameState.InventoryCount(types.CropTomato))
	ebitenutil.DebugPrintAt(screen, status, HUDMarginX, top+HUDLineY1)

	hint := "[1-4] tool  [Tab] seed  [N] new day  [F2] grid  [F3] hitboxes"
	if s.messageTimer > 0 {
		hint = s.message
	}
	ebitenutil.DebugPrintAt(screen, hint, HUDMarginX, top+HUDLineY2)
}
