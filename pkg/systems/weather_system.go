package systems

import (
	"math/rand"

	"github.com/charmbracelet/log"
)

// WeatherSystem 天气状态
// 实现 RainQuery，供 SoilSystem 在翻土时查询
type WeatherSystem struct {
	raining    bool
	rainChance float64
	rng        *rand.Rand
}

// NewWeatherSystem 创建天气系统
// 参数:
//   - rainChance: 每天下雨概率 [0, 1]，越界时截断
//   - rng: 随机数源，为 nil 时使用固定种子
func NewWeatherSystem(rainChance float64, rng *rand.Rand) *WeatherSystem {
	if rainChance < 0 {
		rainChance = 0
	}
	if rainChance > 1 {
		rainChance = 1
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}
	return &WeatherSystem{rainChance: rainChance, rng: rng}
}

// IsRaining 当前是否下雨
func (w *WeatherSystem) IsRaining() bool {
	return w.raining
}

// SetRaining 直接设置天气（读档、调试）
func (w *WeatherSystem) SetRaining(raining bool) {
	w.raining = raining
}

// Roll 为新的一天重新决定天气
func (w *WeatherSystem) Roll() bool {
	w.raining = w.rng.Float64() < w.rainChance
	log.Debugf("[WeatherSystem] Rolled weather: raining=%v", w.raining)
	return w.raining
}
