package game

import (
	"testing"

	"github.com/decker502/farmland/pkg/systems"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFarmSaveManager_Degraded(t *testing.T) {
	m := NewFarmSaveManager(nil)

	assert.False(t, m.HasSave())
	assert.NoError(t, m.Save(&FarmSaveData{}))

	_, err := m.Load()
	assert.ErrorIs(t, err, ErrNoFarmSave)
}

func TestFarmSaveManager_RoundTrip(t *testing.T) {
	m := NewFarmSaveManager(createTestGdataManager(t, "farm"))

	_, err := m.Load()
	require.ErrorIs(t, err, ErrNoFarmSave)

	data := &FarmSaveData{
		Farm: systems.FarmSnapshot{
			Day:     3,
			Raining: true,
			Tilled:  []systems.CellPos{{Row: 1, Col: 2}},
			Watered: []systems.CellPos{{Row: 1, Col: 2}},
			Crops:   []systems.CropSnapshot{{Crop: "tomato", Row: 1, Col: 2, Age: 1.4}},
		},
		Inventory: map[string]int{"corn": 4},
	}
	require.NoError(t, m.Save(data))
	assert.True(t, m.HasSave())

	loaded, err := m.Load()
	require.NoError(t, err)
	assert.Equal(t, farmSaveVersion, loaded.Version)
	assert.Equal(t, data.Farm, loaded.Farm)
	assert.Equal(t, data.Inventory, loaded.Inventory)
	assert.False(t, loaded.SavedAt.IsZero())
}
