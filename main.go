// farmland 是一个基于 Ebitengine 的农田模拟游戏
//
// 用法：
//
//	farmland                       - 从存档继续（没有存档时开新农田）
//	farmland --new                 - 开一块新农田
//	farmland --map ./my_farm.tmx   - 使用外部 TMX 地图
//	farmland --config ./farm.yaml  - 使用外部农田配置
//
// 操作：
//
//	鼠标左键  - 使用当前工具
//	1-4       - 选择工具（锄头、水壶、种子、收获）
//	Tab       - 切换种子
//	N         - 进入下一天
//	F2 / F3   - 网格线 / 碰撞盒
//	F11       - 全屏
package main

import (
	"fmt"
	"os"

	"github.com/decker502/farmland/pkg/app"
	"github.com/decker502/farmland/pkg/embedded"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"
)

var (
	flagVerbose bool
	flagConfig  string
	flagMap     string
	flagSeed    int64
	flagNew     bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "farmland",
	Short: "Farmland - till, water, plant and harvest",
	Long: `Farmland is a small farming game: till farmable soil with the hoe,
water it, plant corn or tomatoes and harvest them once they are ripe.
Watered crops grow every tick; water dries up at the start of each day
and rain waters every tilled cell.`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE:         runGame,
}

func init() {
	rootCmd.Flags().BoolVarP(&flagVerbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.Flags().StringVar(&flagConfig, "config", "", "Path to a farm config YAML (default: embedded data/farm.yaml)")
	rootCmd.Flags().StringVar(&flagMap, "map", "", "Path to a TMX map with a Farmable layer")
	rootCmd.Flags().Int64Var(&flagSeed, "seed", 0, "RNG seed for weather and water tiles (0 = from config or time)")
	rootCmd.Flags().BoolVar(&flagNew, "new", false, "Start a new farm instead of loading the save")
}

func runGame(cmd *cobra.Command, args []string) error {
	// 初始化嵌入资源
	embedded.Init(assetsFS, dataFS)

	gameApp, err := app.NewApp(app.Config{
		Verbose:        flagVerbose,
		FarmConfigPath: flagConfig,
		MapPath:        flagMap,
		Seed:           flagSeed,
		NewFarm:        flagNew,
	})
	if err != nil {
		return fmt.Errorf("游戏初始化失败: %w", err)
	}

	width, height := gameApp.ScreenSize()
	ebiten.SetWindowSize(width, height)
	ebiten.SetWindowTitle("Farmland")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowClosingHandled(true)
	ebiten.SetFullscreen(gameApp.Fullscreen())

	// 窗口关闭时 App.Update 保存农田并返回 ebiten.Termination
	return ebiten.RunGame(gameApp)
}
