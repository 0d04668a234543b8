package styles

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
)

func TestBoldGradient_PreservesText(t *testing.T) {
	for _, s := range []string{"", "L", "Lo-Fi Player", "ローファイ"} {
		t.Run(s, func(t *testing.T) {
			out := BoldGradient(s, T().Dusk, T().Dawn)
			assert.Equal(t, s, ansi.Strip(out))
		})
	}
}

func TestToColorful_Fallback(t *testing.T) {
	c := toColorful(lipgloss.Color("240"))
	assert.InDelta(t, 0.5, c.R, 1e-9)

	c = toColorful(lipgloss.Color("#ffffff"))
	assert.InDelta(t, 1.0, c.G, 1e-9)
}
