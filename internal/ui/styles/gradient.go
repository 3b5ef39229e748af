package styles

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/rivo/uniseg"
)

// ApplyBoldGradient renders bold text with a horizontal color gradient.
func ApplyBoldGradient(text string, from, to lipgloss.Color) string {
	return applyGradient(text, true, from, to)
}

// divergenceFull is the relative divergence drawn in the full error color.
const divergenceFull = 0.05

// DivergenceColor maps the relative gap between the requested and the
// realized ratio to a color: success at 0, warning at half of divergenceFull,
// error from divergenceFull up.
func DivergenceColor(divergence float64) lipgloss.Color {
	t := T()
	d := math.Abs(divergence) / divergenceFull
	switch {
	case d <= 0:
		return t.Success
	case d >= 1:
		return t.Error
	case d < 0.5:
		return blendAt(t.Success, t.Warning, d*2)
	default:
		return blendAt(t.Warning, t.Error, (d-0.5)*2)
	}
}

// blendAt returns the color at position p (0..1) between from and to.
func blendAt(from, to lipgloss.Color, p float64) lipgloss.Color {
	return lipgloss.Color(toColorful(from).BlendHcl(toColorful(to), p).Clamped().Hex())
}

func applyGradient(text string, bold bool, from, to lipgloss.Color) string {
	var clusters []string
	gr := uniseg.NewGraphemes(text)
	for gr.Next() {
		clusters = append(clusters, gr.Str())
	}

	base := lipgloss.NewStyle().Bold(bold)
	switch len(clusters) {
	case 0:
		return ""
	case 1:
		return base.Foreground(from).Render(text)
	}

	var b strings.Builder
	last := float64(len(clusters) - 1)
	for i, cluster := range clusters {
		b.WriteString(base.Foreground(blendAt(from, to, float64(i)/last)).Render(cluster))
	}
	return b.String()
}

// toColorful parses a "#rrggbb" theme color. ANSI color numbers have no
// RGB value and map to neutral gray.
func toColorful(c lipgloss.Color) colorful.Color {
	if col, err := colorful.Hex(string(c)); err == nil {
		return col
	}
	return colorful.Color{R: 0.5, G: 0.5, B: 0.5}
}
