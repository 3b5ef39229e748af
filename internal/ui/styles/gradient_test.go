package styles

import (
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
)

func TestDivergenceColor_Endpoints(t *testing.T) {
	th := T()

	assert.Equal(t, th.Success, DivergenceColor(0))
	assert.Equal(t, th.Error, DivergenceColor(divergenceFull))
	assert.Equal(t, th.Error, DivergenceColor(-divergenceFull*3))
}

func TestDivergenceColor_SignDoesNotMatter(t *testing.T) {
	assert.Equal(t, DivergenceColor(0.01), DivergenceColor(-0.01))
}

func TestDivergenceColor_IntermediateIsHex(t *testing.T) {
	c := string(DivergenceColor(divergenceFull / 4))

	assert.Len(t, c, 7)
	assert.Equal(t, byte('#'), c[0])
	assert.NotEqual(t, string(T().Success), c)
	assert.NotEqual(t, string(T().Warning), c)
}

func TestApplyBoldGradient_PreservesText(t *testing.T) {
	text := "Gear Ratio"

	out := ApplyBoldGradient(text, T().Primary, T().Secondary)

	assert.Equal(t, text, ansi.Strip(out))
}

func TestApplyBoldGradient_Empty(t *testing.T) {
	assert.Empty(t, ApplyBoldGradient("", T().Primary, T().Secondary))
}
