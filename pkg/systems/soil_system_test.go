package systems

import (
	"math/rand"
	"testing"

	"github.com/decker502/farmland/pkg/components"
	"github.com/decker502/farmland/pkg/config"
	"github.com/decker502/farmland/pkg/ecs"
	"github.com/decker502/farmland/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func soilTileVariants(em *ecs.EntityManager) map[CellPos]types.SoilVariant {
	variants := make(map[CellPos]types.SoilVariant)
	for _, id := range ecs.GetEntitiesWith1[*components.SoilTileComponent](em) {
		tile, _ := ecs.GetComponent[*components.SoilTileComponent](em, id)
		variants[CellPos{Row: tile.Row, Col: tile.Col}] = tile.Variant
	}
	return variants
}

func TestSoilSystem_TillRebuildsNeighbors(t *testing.T) {
	farm := newTestFarm(
		"FFF",
		"FFF",
	)

	require.True(t, farm.soil.Till(0, 0))
	assert.Equal(t, map[CellPos]types.SoilVariant{
		{0, 0}: types.SoilIsolated,
	}, soilTileVariants(farm.em))

	// 新耕格子改变邻居外观
	require.True(t, farm.soil.Till(0, 1))
	assert.Equal(t, map[CellPos]types.SoilVariant{
		{0, 0}: types.SoilLeftEnd,
		{0, 1}: types.SoilRightEnd,
	}, soilTileVariants(farm.em))

	require.True(t, farm.soil.Till(1, 1))
	assert.Equal(t, map[CellPos]types.SoilVariant{
		{0, 0}: types.SoilLeftEnd,
		{0, 1}: types.SoilCornerTopRight,
		{1, 1}: types.SoilBottomEnd,
	}, soilTileVariants(farm.em))

	id := ecs.GetEntitiesWith1[*components.SoilTileComponent](farm.em)[0]
	depth, _ := ecs.GetComponent[*components.DepthComponent](farm.em, id)
	assert.Equal(t, types.LayerSoil, depth.Layer)
}

func TestSoilSystem_TillIdempotent(t *testing.T) {
	farm := newTestFarm("FF")
	x, y := cellCenter(0, 0)

	require.True(t, farm.soil.TillAt(x, y))
	countBefore := farm.em.EntityCount()
	flagsBefore := farm.grid.Flags(0, 0)

	assert.False(t, farm.soil.TillAt(x, y))
	assert.Equal(t, countBefore, farm.em.EntityCount())
	assert.Equal(t, flagsBefore, farm.grid.Flags(0, 0))
	assert.Len(t, ecs.GetEntitiesWith1[*components.SoilTileComponent](farm.em), 1)
}

func TestSoilSystem_TillSounds(t *testing.T) {
	farm := newTestFarm("F.")

	x, y := cellCenter(0, 0)
	farm.soil.TillAt(x, y)
	farm.soil.TillAt(x, y)
	assert.Equal(t, 2, farm.sounds.count(config.SoundHoe), "命中可耕种格子就播放锄地音效")

	x, y = cellCenter(0, 1)
	farm.soil.TillAt(x, y)
	assert.Equal(t, 2, farm.sounds.count(config.SoundHoe), "不可耕种格子不播放")
}

func TestSoilSystem_TillWhileRaining(t *testing.T) {
	farm := newTestFarm("FF")
	farm.weather.SetRaining(true)

	x, y := cellCenter(0, 1)
	require.True(t, farm.soil.TillAt(x, y))

	assert.True(t, farm.grid.IsWatered(0, 1))
	assert.Len(t, ecs.GetEntitiesWith1[*components.WaterTileComponent](farm.em), 1)
}

func TestSoilSystem_Water(t *testing.T) {
	farm := newTestFarm("FF")
	farm.soil.Till(0, 0)

	t.Run("未耕格子不能浇水", func(t *testing.T) {
		x, y := cellCenter(0, 1)
		assert.False(t, farm.soil.WaterAt(x, y))
		assert.Empty(t, ecs.GetEntitiesWith1[*components.WaterTileComponent](farm.em))
	})

	t.Run("已耕格子浇水一次", func(t *testing.T) {
		x, y := cellCenter(0, 0)
		assert.True(t, farm.soil.WaterAt(x, y))
		assert.False(t, farm.soil.WaterAt(x, y), "重复浇水不再创建实体")

		ids := ecs.GetEntitiesWith1[*components.WaterTileComponent](farm.em)
		require.Len(t, ids, 1)

		water, _ := ecs.GetComponent[*components.WaterTileComponent](farm.em, ids[0])
		assert.GreaterOrEqual(t, water.VariantIndex, 0)
		assert.Less(t, water.VariantIndex, config.DefaultFarmAssets().WaterVariantCount())

		pos, _ := ecs.GetComponent[*components.PositionComponent](farm.em, ids[0])
		assert.Equal(t, 0.0, pos.X)
		assert.Equal(t, 0.0, pos.Y)

		depth, _ := ecs.GetComponent[*components.DepthComponent](farm.em, ids[0])
		assert.Equal(t, types.LayerSoilWater, depth.Layer)
	})
}

func TestSoilSystem_RemoveWater(t *testing.T) {
	farm := newTestFarm("FFF")
	for col := 0; col < 3; col++ {
		farm.soil.Till(0, col)
	}
	assert.Equal(t, 3, farm.soil.WaterAll())
	assert.Equal(t, 0, farm.soil.WaterAll(), "已湿润的格子不再计数")

	farm.soil.RemoveWater()

	for col := 0; col < 3; col++ {
		assert.False(t, farm.grid.IsWatered(0, col))
		assert.True(t, farm.grid.IsTilled(0, col))
	}
	assert.Empty(t, ecs.GetEntitiesWith1[*components.WaterTileComponent](farm.em))
	assert.Len(t, ecs.GetEntitiesWith1[*components.SoilTileComponent](farm.em), 3)
}

func TestSoilSystem_Plant(t *testing.T) {
	farm := newTestFarm("FF")
	farm.soil.Till(0, 0)
	x, y := cellCenter(0, 0)

	id, ok := farm.soil.PlantAt(x, y, types.CropCorn)
	require.True(t, ok)
	assert.Equal(t, 1, farm.sounds.count(config.SoundPlant))

	_, ok = farm.soil.PlantAt(x, y, types.CropTomato)
	assert.False(t, ok, "已播种格子是空操作")
	assert.Len(t, ecs.GetEntitiesWith1[*components.CropComponent](farm.em), 1)
	assert.Equal(t, 1, farm.sounds.count(config.SoundPlant))

	crop, _ := ecs.GetComponent[*components.CropComponent](farm.em, id)
	assert.Equal(t, types.CropCorn, crop.CropType)
	assert.Equal(t, 3.0, crop.MaxAge)
	assert.Equal(t, 1.0, crop.GrowSpeed)
	assert.Equal(t, config.CornYOffset, crop.YOffset)
	assert.Zero(t, crop.Age)
	assert.False(t, crop.Harvestable)

	// 锚定在土块底边中点 + 偏移
	pos, _ := ecs.GetComponent[*components.PositionComponent](farm.em, id)
	visual, _ := ecs.GetComponent[*components.VisualComponent](farm.em, id)
	assert.Equal(t, "IMAGE_CORN_0", visual.ImageID)
	assert.Equal(t, 32.0, pos.X+visual.Width/2)
	assert.Equal(t, 64.0+config.CornYOffset, pos.Y+visual.Height)

	depth, _ := ecs.GetComponent[*components.DepthComponent](farm.em, id)
	assert.Equal(t, types.LayerGroundPlant, depth.Layer)
	assert.True(t, ecs.HasComponent[*components.ObstacleComponent](farm.em, id))
	assert.False(t, ecs.HasComponent[*components.CollisionComponent](farm.em, id))

	t.Run("未耕格子不能播种", func(t *testing.T) {
		x, y := cellCenter(0, 1)
		_, ok := farm.soil.PlantAt(x, y, types.CropTomato)
		assert.False(t, ok)
	})

	t.Run("未知作物不能播种", func(t *testing.T) {
		farm.soil.Till(0, 1)
		_, ok := farm.soil.Plant(0, 1, types.CropUnknown)
		assert.False(t, ok)
		assert.False(t, farm.grid.IsPlanted(0, 1))
	})
}

func TestSoilSystem_TomatoOffset(t *testing.T) {
	farm := newTestFarm("F")
	farm.soil.Till(0, 0)

	id, ok := farm.soil.Plant(0, 0, types.CropTomato)
	require.True(t, ok)

	crop, _ := ecs.GetComponent[*components.CropComponent](farm.em, id)
	assert.Equal(t, config.DefaultCropYOffset, crop.YOffset)
	assert.Equal(t, 0.7, crop.GrowSpeed)
}

func TestSoilSystem_OutOfBoundsActions(t *testing.T) {
	farm := newTestFarm("FF", "FF")
	countBefore := farm.em.EntityCount()

	positions := [][2]float64{{-1, 10}, {10, -1}, {128, 10}, {10, 128}, {1e6, 1e6}}
	for _, p := range positions {
		assert.False(t, farm.soil.TillAt(p[0], p[1]))
		assert.False(t, farm.soil.WaterAt(p[0], p[1]))
		_, ok := farm.soil.PlantAt(p[0], p[1], types.CropCorn)
		assert.False(t, ok)
		_, ok = farm.harvest.HarvestAt(p[0], p[1])
		assert.False(t, ok)
	}

	assert.Equal(t, countBefore, farm.em.EntityCount())
	assert.Empty(t, farm.grid.TilledCells())
	assert.Empty(t, farm.sounds.played)
}

func TestSoilSystem_RandomActionsKeepInvariants(t *testing.T) {
	farm := newTestFarm(
		"FF.FF",
		"F.FFF",
		"FFF..",
	)
	rng := rand.New(rand.NewSource(42))

	for i := 0; i < 500; i++ {
		x := rng.Float64()*6*config.TileSize - config.TileSize
		y := rng.Float64()*4*config.TileSize - config.TileSize

		switch rng.Intn(7) {
		case 0, 1:
			farm.soil.TillAt(x, y)
		case 2:
			farm.soil.WaterAt(x, y)
		case 3:
			farm.soil.PlantAt(x, y, types.AllCropTypes[rng.Intn(len(types.AllCropTypes))])
		case 4:
			farm.growth.Update()
		case 5:
			farm.harvest.HarvestAt(x, y)
		case 6:
			if rng.Intn(10) == 0 {
				farm.days.StartNewDay()
			}
		}

		assertFarmConsistent(t, farm)
	}
}

// assertFarmConsistent 检查网格不变式以及实体与网格的一致性
func assertFarmConsistent(t *testing.T, farm *testFarm) {
	t.Helper()

	for row := 0; row < farm.grid.Rows(); row++ {
		for col := 0; col < farm.grid.Cols(); col++ {
			require.True(t, farm.grid.Flags(row, col).Valid(), "cell (%d, %d) flags %04b", row, col, farm.grid.Flags(row, col))
		}
	}

	tiles := soilTileVariants(farm.em)
	require.Len(t, tiles, len(farm.grid.TilledCells()))
	for cell, variant := range tiles {
		require.True(t, farm.grid.IsTilled(cell.Row, cell.Col))
		require.Equal(t, ResolveSoilVariant(farm.grid, cell.Row, cell.Col), variant)
	}

	waterIDs := ecs.GetEntitiesWith1[*components.WaterTileComponent](farm.em)
	require.Len(t, waterIDs, len(farm.grid.WateredCells()))

	planted := make(map[CellPos]int)
	for _, id := range ecs.GetEntitiesWith1[*components.CropComponent](farm.em) {
		crop, _ := ecs.GetComponent[*components.CropComponent](farm.em, id)
		require.True(t, farm.grid.IsPlanted(crop.Row, crop.Col))
		require.LessOrEqual(t, crop.Age, crop.MaxAge)
		planted[CellPos{Row: crop.Row, Col: crop.Col}]++
	}
	for cell, n := range planted {
		require.Equal(t, 1, n, "cell %v has %d crops", cell, n)
	}
}

func TestCheckFarmAssets(t *testing.T) {
	assert.NoError(t, CheckFarmAssets(config.DefaultFarmAssets()))

	missing := config.DefaultFarmAssets()
	delete(missing.CropStages, types.CropTomato)
	assert.ErrorIs(t, CheckFarmAssets(missing), ErrUnknownCrop)

	noWater := config.DefaultFarmAssets()
	noWater.WaterVariants = 0
	assert.Error(t, CheckFarmAssets(noWater))
}
