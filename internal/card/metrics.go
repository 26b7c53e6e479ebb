package card

import (
	"github.com/fogleman/gg"
	"golang.org/x/image/font"
)

// Measure lays text out as a single left-aligned paragraph wrapped at
// maxWidth and returns the tight bounding size of the result. Width never
// exceeds maxWidth; height is the sum of wrapped line heights, where one
// line is fontSize × lineHeight points. All values are floating point;
// callers ceil when building pixel canvases.
//
// Empty text measures as zero; the canvas floor is applied upstream.
func Measure(text string, face font.Face, fontSize, maxWidth, lineHeight float64) (w, h float64) {
	lines := wrapLines(text, face, maxWidth)
	if len(lines) == 0 {
		return 0, 0
	}

	mc := gg.NewContext(1, 1)
	mc.SetFontFace(face)
	for _, line := range lines {
		lw, _ := mc.MeasureString(line)
		if lw > w {
			w = lw
		}
	}
	if w > maxWidth {
		w = maxWidth
	}
	h = float64(len(lines)) * fontSize * lineHeight
	return w, h
}

// wrapLines word-wraps text at maxWidth using the same measurement the
// renderer draws with, so measured bounds and drawn bounds agree.
func wrapLines(text string, face font.Face, maxWidth float64) []string {
	if text == "" {
		return nil
	}
	mc := gg.NewContext(1, 1)
	mc.SetFontFace(face)
	return mc.WordWrap(text, maxWidth)
}
