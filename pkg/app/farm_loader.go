package app

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/decker502/farmland/internal/tilemap"
	"github.com/decker502/farmland/pkg/config"
	"github.com/decker502/farmland/pkg/embedded"
)

// DefaultFarmConfigPath 嵌入的默认农田配置
const DefaultFarmConfigPath = "data/farm.yaml"

// LoadFarmConfig 加载农田配置
// path 为空时读取嵌入的 data/farm.yaml，否则读取磁盘文件
func LoadFarmConfig(path string) (*config.FarmConfig, error) {
	if path != "" {
		return config.LoadFarmConfig(path)
	}

	data, err := embedded.ReadFile(DefaultFarmConfigPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read embedded farm config: %w", err)
	}
	cfg, err := config.ParseFarmConfig(data)
	if err != nil {
		return nil, fmt.Errorf("invalid embedded farm config: %w", err)
	}
	return cfg, nil
}

// LoadFarmSource 按优先级选择可耕种区域来源：
//   - mapOverride: 磁盘上的 TMX 文件
//   - cfg.MapFile: 嵌入的 TMX 文件
//   - cfg.Farmable: 内联 ASCII 掩码
func LoadFarmSource(cfg *config.FarmConfig, mapOverride string) (tilemap.Source, error) {
	if mapOverride == "" && cfg.MapFile == "" {
		return tilemap.NewMaskMap(cfg.FarmableLayer, 'F', cfg.Farmable), nil
	}

	var (
		m   *tilemap.TMXMap
		err error
	)
	if mapOverride != "" {
		log.Infof("[App] Loading farm map from %s", mapOverride)
		m, err = tilemap.LoadTMX(os.DirFS(filepath.Dir(mapOverride)), filepath.Base(mapOverride))
	} else {
		log.Infof("[App] Loading embedded farm map %s", cfg.MapFile)
		m, err = tilemap.LoadTMX(embedded.FS(), cfg.MapFile)
	}
	if err != nil {
		return nil, err
	}
	return m, nil
}
