package card

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var lorem = strings.TrimSpace(strings.Repeat(
	"Lorem ipsum dolor sit amet, consectetur adipiscing elit, sed do eiusmod tempor incididunt ut labore et dolore magna aliqua. ", 5))

func TestMeasureEmptyText(t *testing.T) {
	reg := NewFontRegistry()
	face, _ := reg.Resolve("go", 24)
	w, h := Measure("", face, 24, 800, 1.3)
	assert.Zero(t, w)
	assert.Zero(t, h)
}

func TestMeasureRespectsMaxWidth(t *testing.T) {
	reg := NewFontRegistry()
	face, _ := reg.Resolve("go", 24)
	w, _ := Measure(lorem, face, 24, 600, 1.3)
	assert.Greater(t, w, 0.0)
	assert.LessOrEqual(t, w, 600.0)
}

func TestMeasureWrapsLongText(t *testing.T) {
	reg := NewFontRegistry()
	face, _ := reg.Resolve("go", 24)
	_, single := Measure("short", face, 24, 800, 1.3)
	_, wrapped := Measure(lorem, face, 24, 600, 1.3)
	require.Greater(t, single, 0.0)
	assert.Greater(t, wrapped, single, "long text must wrap onto multiple lines")
}

func TestMeasureLineHeightScalesHeight(t *testing.T) {
	reg := NewFontRegistry()
	face, _ := reg.Resolve("go", 24)
	_, h1 := Measure(lorem, face, 24, 600, 1.0)
	_, h2 := Measure(lorem, face, 24, 600, 2.0)
	assert.InDelta(t, h1*2, h2, 0.001, "height is proportional to the line height multiplier")
}
