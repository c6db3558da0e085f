package systems

import (
	"math/rand"
	"testing"

	"github.com/decker502/farmland/internal/tilemap"
	"github.com/decker502/farmland/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildFarm(t *testing.T) {
	src := tilemap.NewMaskMap(config.DefaultFarmableLayer, 'F', []string{"FF.", ".F."})

	t.Run("网格尺寸取地图尺寸", func(t *testing.T) {
		farm, err := BuildFarm(src, config.DefaultFarmAssets(), nil, rand.New(rand.NewSource(3)))
		require.NoError(t, err)
		assert.Equal(t, 2, farm.Grid.Rows())
		assert.Equal(t, 3, farm.Grid.Cols())
		assert.Equal(t, 3, farm.Grid.FarmableCount())
		assert.Equal(t, 1, farm.Days.Day())
	})

	t.Run("配置尺寸裁剪地图", func(t *testing.T) {
		cfg := config.DefaultFarmConfig()
		cfg.Rows, cfg.Cols = 1, 1
		farm, err := BuildFarm(src, config.DefaultFarmAssets(), cfg, nil)
		require.NoError(t, err)
		assert.Equal(t, 1, farm.Grid.FarmableCount())
	})

	t.Run("土壤系统接入天气", func(t *testing.T) {
		farm, err := BuildFarm(src, config.DefaultFarmAssets(), nil, nil)
		require.NoError(t, err)
		farm.Weather.SetRaining(true)
		require.True(t, farm.Soil.Till(0, 0))
		assert.True(t, farm.Grid.IsWatered(0, 0))
	})

	t.Run("第一天开始前决定天气", func(t *testing.T) {
		wet := config.DefaultFarmConfig()
		wet.RainChance = 1
		farm, err := BuildFarm(src, config.DefaultFarmAssets(), wet, nil)
		require.NoError(t, err)
		assert.True(t, farm.Weather.IsRaining())
		require.True(t, farm.Soil.Till(0, 0))
		assert.True(t, farm.Grid.IsWatered(0, 0), "下雨天翻的土立即湿润")

		dry := config.DefaultFarmConfig()
		dry.RainChance = 0
		farm, err = BuildFarm(src, config.DefaultFarmAssets(), dry, nil)
		require.NoError(t, err)
		assert.False(t, farm.Weather.IsRaining())
	})

	t.Run("缺少地图来源", func(t *testing.T) {
		_, err := BuildFarm(nil, config.DefaultFarmAssets(), nil, nil)
		assert.Error(t, err)
	})

	t.Run("图层不存在", func(t *testing.T) {
		cfg := config.DefaultFarmConfig()
		cfg.FarmableLayer = "Water"
		_, err := BuildFarm(src, config.DefaultFarmAssets(), cfg, nil)
		assert.ErrorIs(t, err, tilemap.ErrLayerNotFound)
	})
}
