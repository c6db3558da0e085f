package components

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCellFlagsValid(t *testing.T) {
	tests := []struct {
		name  string
		flags CellFlags
		want  bool
	}{
		{"空格子", 0, true},
		{"可耕种", CellFarmable, true},
		{"已耕种", CellFarmable | CellTilled, true},
		{"已耕种已浇水已播种", CellFarmable | CellTilled | CellWatered | CellPlanted, true},
		{"未标记可耕种却已耕种", CellTilled, false},
		{"未耕种却浇水", CellFarmable | CellWatered, false},
		{"未耕种却播种", CellFarmable | CellPlanted, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.flags.Valid())
		})
	}
}

func TestCropStageTruncation(t *testing.T) {
	crop := &CropComponent{}
	for i := 0; i < 10; i++ {
		crop.Age += 0.1
	}
	assert.Equal(t, 1, crop.Stage(), "十次 0.1 累加应视为阶段 1")

	crop.Age = 2.7
	assert.Equal(t, 2, crop.Stage())
}
