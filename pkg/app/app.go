// Package app 组装农田游戏：配置、地图、资源、音频和农田场景
//
// main.go 通过 NewApp() 创建，并把 *App 交给 ebiten.RunGame。
package app

import (
	"fmt"
	"image/color"

	"github.com/charmbracelet/log"
	"github.com/decker502/farmland/pkg/config"
	"github.com/decker502/farmland/pkg/embedded"
	"github.com/decker502/farmland/pkg/game"
	"github.com/decker502/farmland/pkg/scenes"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// ResourceConfigPath 资源清单在嵌入文件系统中的路径
const ResourceConfigPath = "assets/config/resources.yaml"

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// FarmConfigPath 外部农田配置文件，为空时使用嵌入的 data/farm.yaml
	FarmConfigPath string
	// MapPath 外部 TMX 地图，覆盖农田配置中的 mapFile
	MapPath string
	// Seed 覆盖农田配置中的随机数种子（0 表示不覆盖）
	Seed int64
	// NewFarm 忽略存档，开一块新农田
	NewFarm bool
}

// App 是游戏应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	sceneManager *game.SceneManager
	gameState    *game.GameState
	screenWidth  int
	screenHeight int
	verbose      bool
}

// NewApp 创建并初始化游戏应用
//
// 调用此函数前，必须先调用 embedded.Init() 初始化嵌入资源。
func NewApp(cfg Config) (*App, error) {
	configureLogging(cfg.Verbose)

	farmConfig, err := LoadFarmConfig(cfg.FarmConfigPath)
	if err != nil {
		return nil, err
	}
	if cfg.Seed != 0 {
		farmConfig.Seed = cfg.Seed
	}

	source, err := LoadFarmSource(farmConfig, cfg.MapPath)
	if err != nil {
		return nil, err
	}

	// 初始化音频上下文
	audioContext := audio.NewContext(48000)

	// 创建资源管理器
	resourceManager := game.NewResourceManager(audioContext, embedded.FS())
	if err := resourceManager.LoadResourceConfig(ResourceConfigPath); err != nil {
		return nil, fmt.Errorf("资源配置加载失败: %w", err)
	}
	// 图片缺失时渲染系统使用色块，不阻止启动
	if err := resourceManager.LoadResourceGroup("farm_images"); err != nil {
		log.Warnf("[App] Farm images incomplete: %v", err)
	}

	// 初始化 AudioManager 并设置到 GameState
	gameState := game.GetGameState()
	audioManager := game.NewAudioManager(resourceManager, gameState.GetSettingsManager())
	audioManager.PreloadSounds([]string{config.SoundHoe, config.SoundPlant})
	gameState.SetAudioManager(audioManager)
	log.Debugf("[App] AudioManager initialized")

	sceneManager := game.NewSceneManager()
	farmScene, err := scenes.NewFarmScene(scenes.FarmSceneOptions{
		ResourceManager: resourceManager,
		SceneManager:    sceneManager,
		GameState:       gameState,
		FarmConfig:      farmConfig,
		Source:          source,
		Restore:         !cfg.NewFarm,
	})
	if err != nil {
		return nil, fmt.Errorf("农田场景创建失败: %w", err)
	}
	sceneManager.SwitchTo(farmScene)
	audioManager.PlayMusic(config.SoundMusic)

	width, height := farmScene.ScreenSize()
	return &App{
		sceneManager: sceneManager,
		gameState:    gameState,
		screenWidth:  width,
		screenHeight: height,
		verbose:      cfg.Verbose,
	}, nil
}

// configureLogging 详细模式输出 Debug 日志，否则只输出警告和错误
func configureLogging(verbose bool) {
	log.SetReportTimestamp(false)
	if verbose {
		log.SetLevel(log.DebugLevel)
	} else {
		log.SetLevel(log.WarnLevel)
	}
}

// Update 更新游戏逻辑
// 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	if ebiten.IsWindowBeingClosed() {
		a.Close()
		return ebiten.Termination
	}

	// F11 切换全屏
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		fullscreen := !ebiten.IsFullscreen()
		ebiten.SetFullscreen(fullscreen)
		a.gameState.GetSettingsManager().SetFullscreen(fullscreen)
	}

	deltaTime := 1.0 / float64(ebiten.TPS())
	a.sceneManager.Update(deltaTime)
	return nil
}

// Close 保存当前场景和玩家设置
func (a *App) Close() {
	a.sceneManager.SaveCurrentScene()
	if err := a.gameState.GetSettingsManager().Save(); err != nil {
		log.Warnf("[App] Failed to save settings: %v", err)
	}
}

// Draw 绘制游戏画面
// 每帧调用一次
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 用于控制全屏时的缩放和 letterbox 颜色
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 返回游戏的逻辑屏幕尺寸（农田加 HUD）
// 此尺寸独立于实际窗口大小，Ebitengine 会自动处理缩放
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.screenWidth, a.screenHeight
}

// ScreenSize 返回逻辑屏幕尺寸，用于设置初始窗口大小
func (a *App) ScreenSize() (int, int) {
	return a.screenWidth, a.screenHeight
}

// Fullscreen 返回玩家设置中的全屏选项
func (a *App) Fullscreen() bool {
	return a.gameState.GetSettingsManager().GetSettings().Fullscreen
}

// IsVerbose 返回是否启用了详细日志
func (a *App) IsVerbose() bool {
	return a.verbose
}
