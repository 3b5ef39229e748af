package popup

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCenter(t *testing.T) {
	got := Center("ab\ncd", 10, 6)

	lines := strings.Split(got, "\n")
	require.Len(t, lines, 4)
	assert.Empty(t, lines[0])
	assert.Empty(t, lines[1])
	assert.Equal(t, "    ab", lines[2])
	assert.Equal(t, "    cd", lines[3])
}

func TestCenter_LargerThanScreen(t *testing.T) {
	got := Center("abcdef", 3, 0)
	assert.Equal(t, "abcdef", got)
}

func TestRenderBordered_FitsContent(t *testing.T) {
	out := ansi.Strip(RenderBordered("hello", 40, 20))

	assert.Contains(t, out, "hello")
	assert.Contains(t, out, "╭")
	assert.Contains(t, out, "╯")
	for line := range strings.SplitSeq(out, "\n") {
		assert.LessOrEqual(t, ansi.StringWidth(line), 40)
	}
}

func TestCompose_ReplacesOnlyVisibleCells(t *testing.T) {
	base := "0123456789\n0123456789\n0123456789"
	overlay := "\n   XYZ"

	got := Compose(base, overlay, 10)

	assert.Equal(t, "0123456789\n012XYZ6789\n0123456789", got)
}

func TestCompose_PadsShortBaseLines(t *testing.T) {
	got := Compose("ab", "    XY", 8)
	assert.Equal(t, "ab  XY  ", got)
}

func TestCompose_KeepsOverlayStyling(t *testing.T) {
	styled := "  \x1b[1mAB\x1b[0m"

	got := Compose("xxxxxx", styled, 6)

	assert.Equal(t, "xxABxx", ansi.Strip(got))
	assert.Contains(t, got, "\x1b[1m")
}

func TestCompose_OverlayTallerThanBase(t *testing.T) {
	got := Compose("abc", "x\ny\nz\n\n", 3)
	assert.Equal(t, "xbc\ny  \nz  ", got, "trailing blank overlay lines add nothing")
}

func TestCompose_BorderedBoxBelowShortBase(t *testing.T) {
	content := strings.Repeat("row\n", 11) + "last row"
	box := RenderBordered(content, 40, 30)

	got := ansi.Strip(Compose("one\ntwo\nthree\nfour", box, 40))

	assert.Contains(t, got, "last row")
	assert.Contains(t, got, "╰")
	assert.Equal(t, strings.Count(strings.TrimRight(box, "\n"), "\n"), strings.Count(got, "\n"))
}
