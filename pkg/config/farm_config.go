package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/decker502/farmland/pkg/types"
	"gopkg.in/yaml.v3"
)

const (
	// DefaultFarmableLayer 地图中标记可耕种格子的图层名
	DefaultFarmableLayer = "Farmable"

	// DefaultRainChance 每天下雨的默认概率（11 个等概率结果中的 3 个）
	DefaultRainChance = 3.0 / 11.0
)

// FarmConfig 农田配置数据结构
// 对应 data/farm.yaml
type FarmConfig struct {
	// MapFile TMX 地图路径；为空时使用 Farmable 内联掩码
	MapFile string `yaml:"mapFile"`
	// FarmableLayer 可耕种图层名，默认 "Farmable"
	FarmableLayer string `yaml:"farmableLayer"`
	// Farmable 内联 ASCII 掩码，每行一个字符串，'F' 表示可耕种
	// 仅在 MapFile 为空时使用（测试、终端工具）
	Farmable []string `yaml:"farmable"`

	// Rows/Cols 网格尺寸；为 0 时取地图尺寸
	Rows int `yaml:"rows"`
	Cols int `yaml:"cols"`

	// RainChance 每天下雨的概率 [0, 1]；省略时为 DefaultRainChance，显式的 0 表示从不下雨
	RainChance float64 `yaml:"rainChance"`
	// Seed 随机数种子；为 0 时由调用方决定（通常用时间）
	Seed int64 `yaml:"seed"`

	// Crops 作物参数，键为作物名（"corn", "tomato"）
	Crops map[string]CropStats `yaml:"crops"`
}

// CropStats 单种作物的生长参数
// 省略的字段使用原版默认值；YAML 中显式写出的 yOffset: 0 会被保留
type CropStats struct {
	GrowSpeed float64 `yaml:"growSpeed"` // 每个浇水 tick 增加的成熟度
	YOffset   float64 `yaml:"yOffset"`   // 相对土块底部中点的垂直偏移

	yOffsetSet bool
}

// UnmarshalYAML 记录 yOffset 是否出现在配置中
func (s *CropStats) UnmarshalYAML(node *yaml.Node) error {
	var raw struct {
		GrowSpeed float64  `yaml:"growSpeed"`
		YOffset   *float64 `yaml:"yOffset"`
	}
	if err := node.Decode(&raw); err != nil {
		return err
	}

	*s = CropStats{GrowSpeed: raw.GrowSpeed}
	if raw.YOffset != nil {
		s.YOffset = *raw.YOffset
		s.yOffsetSet = true
	}
	return nil
}

// defaultCropStats 原版作物参数
var defaultCropStats = map[types.CropType]CropStats{
	types.CropCorn:   {GrowSpeed: 1, YOffset: CornYOffset},
	types.CropTomato: {GrowSpeed: 0.7, YOffset: DefaultCropYOffset},
}

// DefaultFarmConfig 返回默认农田配置（无地图，需要调用方提供可耕种数据）
func DefaultFarmConfig() *FarmConfig {
	cfg := &FarmConfig{RainChance: DefaultRainChance}
	applyFarmDefaults(cfg)
	return cfg
}

// LoadFarmConfig 从YAML文件加载农田配置
// 参数：
//
//	path - 配置文件路径
//
// 返回：
//
//	*FarmConfig - 解析后的配置（已应用默认值并通过校验）
//	error - 文件读取、解析或校验失败
func LoadFarmConfig(path string) (*FarmConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read farm config file %s: %w", path, err)
	}

	cfg, err := ParseFarmConfig(data)
	if err != nil {
		return nil, fmt.Errorf("invalid farm config %s: %w", path, err)
	}
	return cfg, nil
}

// ParseFarmConfig 从YAML数据解析农田配置（用于嵌入资源）
func ParseFarmConfig(data []byte) (*FarmConfig, error) {
	// yaml 不会覆盖文档中缺失的字段，预先填入默认概率
	cfg := FarmConfig{RainChance: DefaultRainChance}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse farm config YAML: %w", err)
	}

	applyFarmDefaults(&cfg)

	if err := validateFarmConfig(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// applyFarmDefaults 为缺失的可选字段设置默认值
func applyFarmDefaults(cfg *FarmConfig) {
	if cfg.FarmableLayer == "" {
		cfg.FarmableLayer = DefaultFarmableLayer
	}

	if cfg.Crops == nil {
		cfg.Crops = make(map[string]CropStats)
	}
	for crop, stats := range defaultCropStats {
		existing, ok := cfg.Crops[crop.String()]
		if !ok {
			cfg.Crops[crop.String()] = stats
			continue
		}
		// 只补齐未配置的字段
		if existing.GrowSpeed == 0 {
			existing.GrowSpeed = stats.GrowSpeed
		}
		if !existing.yOffsetSet && existing.YOffset == 0 {
			existing.YOffset = stats.YOffset
		}
		cfg.Crops[crop.String()] = existing
	}

	// 内联掩码决定网格尺寸
	if cfg.MapFile == "" && len(cfg.Farmable) > 0 {
		if cfg.Rows == 0 {
			cfg.Rows = len(cfg.Farmable)
		}
		if cfg.Cols == 0 {
			for _, line := range cfg.Farmable {
				if len(line) > cfg.Cols {
					cfg.Cols = len(line)
				}
			}
		}
	}
}

// validateFarmConfig 验证配置合法性
func validateFarmConfig(cfg *FarmConfig) error {
	if cfg.RainChance < 0 || cfg.RainChance > 1 {
		return fmt.Errorf("rainChance must be within [0, 1], got %.2f", cfg.RainChance)
	}
	if cfg.Rows < 0 || cfg.Cols < 0 {
		return fmt.Errorf("grid size must not be negative, got %dx%d", cfg.Rows, cfg.Cols)
	}
	if cfg.MapFile == "" && len(cfg.Farmable) == 0 {
		return errors.New("either mapFile or farmable mask is required")
	}

	for name, stats := range cfg.Crops {
		if _, ok := types.ParseCropType(name); !ok {
			return fmt.Errorf("unknown crop %q", name)
		}
		if stats.GrowSpeed <= 0 {
			return fmt.Errorf("crop %q: growSpeed must be positive, got %.2f", name, stats.GrowSpeed)
		}
	}

	for i, line := range cfg.Farmable {
		if strings.Trim(line, ".F") != "" {
			return fmt.Errorf("farmable mask line %d contains characters other than '.' and 'F': %q", i, line)
		}
	}
	return nil
}

// CropSettings 返回指定作物的生长参数
// 配置中不存在时回退到原版默认值
func (c *FarmConfig) CropSettings(crop types.CropType) (CropStats, bool) {
	if c != nil {
		if stats, ok := c.Crops[crop.String()]; ok {
			return stats, true
		}
	}
	stats, ok := defaultCropStats[crop]
	return stats, ok
}
