package app

import (
	"os"
	"testing"

	"github.com/decker502/farmland/internal/tilemap"
	"github.com/decker502/farmland/pkg/config"
	"github.com/decker502/farmland/pkg/game"
	"github.com/decker502/farmland/pkg/systems"
	"github.com/decker502/farmland/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 项目根目录下随游戏发布的配置、地图和资源清单必须彼此一致
func TestShippedFarmData(t *testing.T) {
	root := os.DirFS("../..")

	data, err := os.ReadFile("../../" + DefaultFarmConfigPath)
	require.NoError(t, err)
	farmConfig, err := config.ParseFarmConfig(data)
	require.NoError(t, err)

	m, err := tilemap.LoadTMX(root, farmConfig.MapFile)
	require.NoError(t, err)
	tiles, err := m.LayerTiles(farmConfig.FarmableLayer)
	require.NoError(t, err)
	assert.NotEmpty(t, tiles)

	rm := game.NewResourceManager(nil, root)
	require.NoError(t, rm.LoadResourceConfig(ResourceConfigPath))
	require.NoError(t, rm.LoadResourceGroup("farm_images"))

	for _, variant := range types.AllSoilVariants {
		assert.NotNil(t, rm.GetImageByID(config.SoilImageID(variant)), "soil variant %s", variant)
	}

	assets := game.NewFarmAssets(rm, nil)
	require.NoError(t, systems.CheckFarmAssets(assets))

	static := config.DefaultFarmAssets()
	assert.Equal(t, static.WaterVariantCount(), assets.WaterVariantCount())
	for _, crop := range types.AllCropTypes {
		require.Equal(t, static.CropStageCount(crop), assets.CropStageCount(crop), "crop %s", crop)
		for stage := 0; stage < assets.CropStageCount(crop); stage++ {
			w, h := assets.CropStageSize(crop, stage)
			sw, sh := static.CropStageSize(crop, stage)
			assert.Equal(t, sw, w, "%s stage %d width", crop, stage)
			assert.Equal(t, sh, h, "%s stage %d height", crop, stage)
		}
	}
}
