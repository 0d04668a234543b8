package player

import (
	"math"

	"github.com/gopxl/beep/v2/effects"
)

// volumeBase is the base of effects.Volume's exponent: each step of -1
// halves the amplitude.
const volumeBase = 2

// clampLevel bounds a level to [0, 1].
func clampLevel(level float64) float64 {
	return math.Max(0, math.Min(1, level))
}

// applyLevel maps a [0, 1] level onto v. Level 0 silences the stream;
// otherwise the exponent is log2(level), so 1 is unity gain and 0.5 is
// half amplitude. Callers hold speaker.Lock when v is playing.
func applyLevel(v *effects.Volume, level float64) {
	level = clampLevel(level)
	if level == 0 {
		v.Silent = true
		v.Volume = 0
		return
	}
	v.Silent = false
	v.Volume = math.Log2(level)
}
