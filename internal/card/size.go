package card

import (
	"math"

	"golang.org/x/image/font"
)

// Canvas floors. Even a single emoji still produces a usable share card.
const (
	MinCanvasWidth  = 400
	MinCanvasHeight = 200
)

// CanvasSize computes the pixel canvas for text under cfg: the measured
// text bounds plus padding on all sides, floored at MinCanvasWidth ×
// MinCanvasHeight. Deterministic for a given (text, cfg, face) — the cache
// depends on that, since size is not recomputed on a cache hit.
func CanvasSize(text string, cfg Config, face font.Face) (width, height int) {
	tw, th := Measure(text, face, cfg.FontSize, cfg.MaxWidth, cfg.LineHeight)

	width = int(math.Ceil(tw + 2*cfg.Padding))
	height = int(math.Ceil(th + 2*cfg.Padding))
	if width < MinCanvasWidth {
		width = MinCanvasWidth
	}
	if height < MinCanvasHeight {
		height = MinCanvasHeight
	}
	return width, height
}
