package player

import (
	"math"
	"testing"

	"github.com/gopxl/beep/v2/effects"
	"github.com/stretchr/testify/assert"
)

func TestApplyLevel(t *testing.T) {
	tests := []struct {
		name       string
		level      float64
		wantSilent bool
		wantVolume float64
	}{
		{"zero is silent", 0, true, 0},
		{"negative clamps to silent", -0.5, true, 0},
		{"full is unity", 1, false, 0},
		{"above full clamps", 3, false, 0},
		{"half is minus one", 0.5, false, -1},
		{"tenth", 0.1, false, math.Log2(0.1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := &effects.Volume{Base: volumeBase, Silent: !tt.wantSilent}
			applyLevel(v, tt.level)
			assert.Equal(t, tt.wantSilent, v.Silent)
			assert.InDelta(t, tt.wantVolume, v.Volume, 1e-9)
		})
	}
}

func TestApplyLevel_UnmutesAfterZero(t *testing.T) {
	v := &effects.Volume{Base: volumeBase}
	applyLevel(v, 0)
	applyLevel(v, 0.2)
	assert.False(t, v.Silent)
	assert.InDelta(t, math.Log2(0.2), v.Volume, 1e-9)
}
