// Package card implements the text-to-image rendering core: measurement,
// theming, drawing, PNG encoding, and a bounded result cache behind a
// single Generate entry point.
package card

import (
	"fmt"
	"log/slog"
	"unicode/utf8"

	"github.com/clipcard/clipcard/internal/util"
)

// Generator is the consumer-facing contract of the pipeline. UI and CLI
// layers depend on this, not on Pipeline, so tests can substitute an
// in-memory double.
type Generator interface {
	Generate(text string, cfg Config) ([]byte, error)
}

// Pipeline turns (text, config) into encoded PNG bytes:
// validate, cache lookup, font resolution, size, render, cache store.
// A strict linear flow with no retries; a failed render is never cached.
//
// Safe for concurrent use. Concurrent identical requests are not coalesced:
// both may render, which is redundant work but identical output, and the
// last store wins.
type Pipeline struct {
	fonts    *FontRegistry
	cache    Cache
	renderer Renderer
	log      *slog.Logger
}

// Option customizes a Pipeline.
type Option func(*Pipeline)

// WithRenderer substitutes the renderer. Tests use this for call counting
// and failure injection.
func WithRenderer(r Renderer) Option {
	return func(p *Pipeline) { p.renderer = r }
}

func WithLogger(log *slog.Logger) Option {
	return func(p *Pipeline) { p.log = log }
}

// NewPipeline builds a pipeline around the given font registry and cache.
// cache may be nil, which disables caching entirely.
func NewPipeline(fonts *FontRegistry, cache Cache, opts ...Option) *Pipeline {
	p := &Pipeline{
		fonts: fonts,
		cache: cache,
		log:   slog.Default(),
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.renderer == nil {
		p.renderer = NewCanvasRenderer(fonts)
	}
	return p
}

// Generate renders text under cfg and returns the PNG bytes. Validation
// failures are returned before the cache or renderer is touched.
func (p *Pipeline) Generate(text string, cfg Config) ([]byte, error) {
	if util.NormalizeWhitespace(text) == "" {
		return nil, ErrEmptyInput
	}
	if n := utf8.RuneCountInString(text); n > MaxTextLength {
		return nil, fmt.Errorf("%w: %d characters, maximum is %d", ErrInputTooLong, n, MaxTextLength)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	key := Fingerprint(text, cfg)
	if p.cache != nil {
		if data, ok := p.cache.Get(key); ok {
			p.log.Debug("card cache hit", "key", key[:8])
			return data, nil
		}
	}

	face, substituted := p.fonts.Resolve(cfg.FontFamily, cfg.FontSize)
	if substituted {
		// Degraded, not fatal: render proceeds with the default family.
		p.log.Warn("font family not found, substituting default",
			"family", cfg.FontFamily, "default", DefaultFontFamily)
	}

	width, height := CanvasSize(text, cfg, face)
	img, err := p.renderer.Render(text, cfg, face, width, height)
	if err != nil {
		return nil, err
	}

	if p.cache != nil {
		p.cache.Put(key, img.PNG)
	}
	p.log.Debug("card rendered",
		"key", key[:8], "width", width, "height", height,
		"bytes", len(img.PNG), "text", util.Truncate(text, 32))
	return img.PNG, nil
}
