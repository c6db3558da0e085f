package systems

import (
	"testing"

	"github.com/decker502/farmland/pkg/types"
	"github.com/stretchr/testify/assert"
)

// patternGrid 3x3 合成邻域，中心为 (1, 1)
type patternGrid [3]string

func (p patternGrid) IsTilled(row, col int) bool {
	if row < 0 || row >= 3 || col < 0 || col >= 3 {
		return false
	}
	return p[row][col] == '#'
}

func TestResolveSoilVariant_AllPatterns(t *testing.T) {
	tests := []struct {
		name    string
		pattern patternGrid
		want    types.SoilVariant
	}{
		{"孤立", patternGrid{"...", ".#.", "..."}, types.SoilIsolated},
		{"四面", patternGrid{".#.", "###", ".#."}, types.SoilCenter},

		{"左右", patternGrid{"...", "###", "..."}, types.SoilHorizontal},
		{"仅左", patternGrid{"...", "##.", "..."}, types.SoilRightEnd},
		{"仅右", patternGrid{"...", ".##", "..."}, types.SoilLeftEnd},

		{"上下", patternGrid{".#.", ".#.", ".#."}, types.SoilVertical},
		{"仅上", patternGrid{".#.", ".#.", "..."}, types.SoilBottomEnd},
		{"仅下", patternGrid{"...", ".#.", ".#."}, types.SoilTopEnd},

		{"下+左", patternGrid{"...", "##.", ".#."}, types.SoilCornerTopRight},
		{"下+右", patternGrid{"...", ".##", ".#."}, types.SoilCornerTopLeft},
		{"上+左", patternGrid{".#.", "##.", "..."}, types.SoilCornerBottomRight},
		{"上+右", patternGrid{".#.", ".##", "..."}, types.SoilCornerBottomLeft},

		{"缺左", patternGrid{".#.", ".##", ".#."}, types.SoilJunctionNoLeft},
		{"缺右", patternGrid{".#.", "##.", ".#."}, types.SoilJunctionNoRight},
		{"缺下", patternGrid{".#.", "###", "..."}, types.SoilJunctionNoBottom},
		{"缺上", patternGrid{"...", "###", ".#."}, types.SoilJunctionNoTop},
	}

	seen := make(map[types.SoilVariant]bool)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ResolveSoilVariant(tt.pattern, 1, 1))
		})
		seen[tt.want] = true
	}
	assert.Len(t, seen, len(types.AllSoilVariants), "每种外观都可达")
}

func TestResolveSoilVariant_IgnoresDiagonals(t *testing.T) {
	withDiagonals := patternGrid{"#.#", "###", "#.#"}
	without := patternGrid{"...", "###", "..."}

	assert.Equal(t, ResolveSoilVariant(without, 1, 1), ResolveSoilVariant(withDiagonals, 1, 1))
}

func TestResolveSoilVariant_GridEdges(t *testing.T) {
	// 越界邻居视为未耕
	corner := patternGrid{"##.", "#..", "..."}
	assert.Equal(t, types.SoilCornerTopLeft, ResolveSoilVariant(corner, 0, 0))

	edge := patternGrid{"...", "...", "###"}
	assert.Equal(t, types.SoilLeftEnd, ResolveSoilVariant(edge, 2, 0))
	assert.Equal(t, types.SoilRightEnd, ResolveSoilVariant(edge, 2, 2))
}
