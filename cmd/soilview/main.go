// soilview 在终端中查看和操作农田
//
// 用法：
//
//	soilview                          - 使用 data/farm.yaml 和其中的地图
//	soilview --map ./my_farm.tmx      - 使用外部 TMX 地图
//	soilview --mask "FFF" --mask "F.F" - 使用内联掩码
//	soilview --seed 42                - 固定天气随机数
//
// 每个格子显示自动拼接选出的土块形状（方框线条表示连通方向）
package main

import (
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/decker502/farmland/internal/tilemap"
	"github.com/decker502/farmland/pkg/config"
	"github.com/decker502/farmland/pkg/systems"
)

var (
	flagRoot    string
	flagConfig  string
	flagMap     string
	flagMask    []string
	flagSeed    int64
	flagVerbose bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "soilview",
	Short: "Inspect and play the farm grid in the terminal",
	Long: `soilview renders the farm grid in the terminal. Each tilled cell shows the
soil variant chosen by the autotile resolver as box-drawing lines, so the
neighbour rules can be checked by eye while tilling.

Controls:
  arrows/hjkl  - Move cursor
  1-4          - Select hoe, water, seed, harvest
  space/enter  - Use tool
  tab          - Next seed
  g            - One growth tick
  a            - Toggle automatic growth
  n            - Start a new day
  ?            - Full help
  q            - Quit`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE:         runView,
}

func init() {
	rootCmd.Flags().StringVar(&flagRoot, "root", ".", "Project root holding data/")
	rootCmd.Flags().StringVar(&flagConfig, "config", "data/farm.yaml", "Farm config path relative to --root")
	rootCmd.Flags().StringVar(&flagMap, "map", "", "TMX map path (overrides the config)")
	rootCmd.Flags().StringArrayVar(&flagMask, "mask", nil, "Inline farmable mask row, repeatable ('F' = farmable)")
	rootCmd.Flags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = from config or time)")
	rootCmd.Flags().BoolVarP(&flagVerbose, "verbose", "v", false, "Log to stderr at debug level")
}

func runView(cmd *cobra.Command, args []string) error {
	// 终端界面独占 stdout，日志默认只保留错误
	log.SetOutput(os.Stderr)
	log.SetLevel(log.ErrorLevel)
	if flagVerbose {
		log.SetLevel(log.DebugLevel)
	}

	farmConfig, src, err := loadFarm()
	if err != nil {
		return err
	}

	seed := flagSeed
	if seed == 0 {
		seed = farmConfig.Seed
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	farm, err := systems.BuildFarm(src, config.DefaultFarmAssets(), farmConfig, rand.New(rand.NewSource(seed)))
	if err != nil {
		return fmt.Errorf("failed to build farm: %w", err)
	}

	p := tea.NewProgram(newModel(farm), tea.WithAltScreen())
	_, err = p.Run()
	return err
}

// loadFarm 按 --mask、--map、配置文件的优先级选择可耕种区域来源
func loadFarm() (*config.FarmConfig, tilemap.Source, error) {
	if len(flagMask) > 0 {
		cfg := config.DefaultFarmConfig()
		cfg.Farmable = flagMask
		return cfg, tilemap.NewMaskMap(cfg.FarmableLayer, 'F', flagMask), nil
	}

	cfg, err := config.LoadFarmConfig(filepath.Join(flagRoot, flagConfig))
	if err != nil {
		return nil, nil, err
	}

	switch {
	case flagMap != "":
		m, err := tilemap.LoadTMX(os.DirFS(filepath.Dir(flagMap)), filepath.Base(flagMap))
		if err != nil {
			return nil, nil, err
		}
		return cfg, m, nil
	case cfg.MapFile != "":
		m, err := tilemap.LoadTMX(os.DirFS(flagRoot), cfg.MapFile)
		if err != nil {
			return nil, nil, err
		}
		return cfg, m, nil
	default:
		return cfg, tilemap.NewMaskMap(cfg.FarmableLayer, 'F', cfg.Farmable), nil
	}
}
