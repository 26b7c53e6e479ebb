package card

import (
	"bytes"
	"fmt"
	"image/png"

	"github.com/fogleman/gg"
	"golang.org/x/image/font"
)

// RenderedImage is an encoded card. Immutable once created; the cache holds
// a shared read-only reference to the same bytes the caller receives.
type RenderedImage struct {
	PixelWidth  int
	PixelHeight int
	PNG         []byte
}

// Renderer draws a card onto a canvas of a precomputed size. The production
// implementation is CanvasRenderer; tests substitute counting or failing
// doubles.
type Renderer interface {
	Render(text string, cfg Config, face font.Face, width, height int) (*RenderedImage, error)
}

const (
	watermarkFontSize = 11.0
	watermarkInset    = 10.0
	watermarkAlpha    = 77 // ~30% opacity

	// maxCanvasPixels bounds the drawing surface. Beyond this the surface
	// is refused rather than letting a pathological input exhaust memory.
	maxCanvasPixels = 32 << 20
)

// CanvasRenderer renders cards with an antialiased 2D canvas and encodes
// them as PNG. The registry supplies the watermark face, which uses the
// same family as the body text at a fixed small size.
type CanvasRenderer struct {
	fonts *FontRegistry
}

func NewCanvasRenderer(fonts *FontRegistry) *CanvasRenderer {
	return &CanvasRenderer{fonts: fonts}
}

// Render draws, back to front: rounded background (flat or gradient),
// optional border stroke, the wrapped text block, and the watermark last so
// it always sits on top. PNG encoding is the hard failure point; there is
// no fallback encoding.
func (r *CanvasRenderer) Render(text string, cfg Config, face font.Face, width, height int) (*RenderedImage, error) {
	if width <= 0 || height <= 0 || width*height > maxCanvasPixels {
		return nil, fmt.Errorf("%w: %dx%d", ErrSurface, width, height)
	}

	style := StyleFor(cfg.Theme)
	radius := style.CornerRadius
	if cfg.CornerRadius >= 0 {
		radius = cfg.CornerRadius
	}
	if maxR := float64(min(width, height)) / 2; radius > maxR {
		radius = maxR
	}

	dc := gg.NewContext(width, height)
	fw, fh := float64(width), float64(height)

	// Background.
	if style.Gradient {
		grad := gg.NewLinearGradient(0, 0, fw, fh)
		grad.AddColorStop(0, style.Primary)
		grad.AddColorStop(1, style.Secondary)
		dc.SetFillStyle(grad)
	} else {
		dc.SetColor(style.Primary)
	}
	dc.DrawRoundedRectangle(0, 0, fw, fh, radius)
	dc.Fill()

	// Border, inset by half the stroke width so it stays inside the canvas.
	if cfg.BorderWidth > 0 {
		inset := cfg.BorderWidth / 2
		br := radius - inset
		if br < 0 {
			br = 0
		}
		dc.SetColor(style.Accent)
		dc.SetLineWidth(cfg.BorderWidth)
		dc.DrawRoundedRectangle(inset, inset, fw-2*inset, fh-2*inset, br)
		dc.Stroke()
	}

	// Text block, inset by padding on all sides.
	dc.SetFontFace(face)
	dc.SetColor(style.Text)
	lines := wrapLines(text, face, cfg.MaxWidth)
	lineHeight := cfg.FontSize * cfg.LineHeight
	for i, line := range lines {
		y := cfg.Padding + lineHeight*(float64(i)+0.5)
		drawLine(dc, line, cfg.Padding, y, cfg.LetterSpacing)
	}

	// Watermark, drawn last so the text region never clips it.
	if cfg.Watermark != "" {
		wmFace, _ := r.fonts.Resolve(cfg.FontFamily, watermarkFontSize)
		dc.SetFontFace(wmFace)
		dc.SetRGBA255(int(style.Text.R), int(style.Text.G), int(style.Text.B), watermarkAlpha)
		dc.DrawStringAnchored(cfg.Watermark, fw-watermarkInset, fh-watermarkInset, 1, 0)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, dc.Image()); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEncoding, err)
	}
	return &RenderedImage{PixelWidth: width, PixelHeight: height, PNG: buf.Bytes()}, nil
}

// drawLine draws one wrapped line with its left edge at x and vertical
// center at y. Nonzero spacing switches to per-rune drawing, advancing each
// glyph by its measured width plus the spacing.
func drawLine(dc *gg.Context, line string, x, y, spacing float64) {
	if spacing == 0 {
		dc.DrawStringAnchored(line, x, y, 0, 0.5)
		return
	}
	cx := x
	for _, r := range line {
		s := string(r)
		dc.DrawStringAnchored(s, cx, y, 0, 0.5)
		w, _ := dc.MeasureString(s)
		cx += w + spacing
	}
}
