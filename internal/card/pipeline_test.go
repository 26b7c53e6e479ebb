package card

import (
	"errors"
	"strings"
	"testing"

	"golang.org/x/image/font"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// countingRenderer wraps a real renderer and counts calls, so tests can
// observe whether a generate call actually rendered or hit the cache.
type countingRenderer struct {
	inner Renderer
	calls int
}

func (r *countingRenderer) Render(text string, cfg Config, face font.Face, w, h int) (*RenderedImage, error) {
	r.calls++
	return r.inner.Render(text, cfg, face, w, h)
}

// failingRenderer always fails, standing in for surface or encoding errors.
type failingRenderer struct{ err error }

func (r *failingRenderer) Render(string, Config, font.Face, int, int) (*RenderedImage, error) {
	return nil, r.err
}

func newTestPipeline(t *testing.T) (*Pipeline, *countingRenderer, *LRUCache) {
	t.Helper()
	reg := NewFontRegistry()
	cache, err := NewLRUCache(DefaultCacheEntries, DefaultCacheBytes)
	require.NoError(t, err)
	counter := &countingRenderer{inner: NewCanvasRenderer(reg)}
	return NewPipeline(reg, cache, WithRenderer(counter)), counter, cache
}

func TestGenerateDeterministic(t *testing.T) {
	p, _, cache := newTestPipeline(t)
	cfg := DefaultConfig()

	first, err := p.Generate("Hello World!", cfg)
	require.NoError(t, err)
	cache.Clear()
	second, err := p.Generate("Hello World!", cfg)
	require.NoError(t, err)
	assert.Equal(t, first, second, "cleared cache must reproduce identical bytes")
}

func TestGenerateCacheCorrectness(t *testing.T) {
	p, counter, _ := newTestPipeline(t)
	cfg := DefaultConfig()

	first, err := p.Generate("Hello World!", cfg)
	require.NoError(t, err)
	require.Equal(t, 1, counter.calls)

	second, err := p.Generate("Hello World!", cfg)
	require.NoError(t, err)
	assert.Equal(t, 1, counter.calls, "identical request must not re-render")
	assert.Equal(t, first, second)

	// Changing any single field triggers a fresh render.
	mutations := []func(*Config){
		func(c *Config) { c.Theme = ThemeDark },
		func(c *Config) { c.FontSize = 25 },
		func(c *Config) { c.Padding = 33 },
		func(c *Config) { c.Watermark = "draft" },
		func(c *Config) { c.LetterSpacing = 1 },
	}
	for i, mutate := range mutations {
		changed := cfg
		mutate(&changed)
		_, err := p.Generate("Hello World!", changed)
		require.NoError(t, err)
		assert.Equal(t, 2+i, counter.calls, "mutation %d should have rendered", i)
	}
}

func TestGenerateEmptyInput(t *testing.T) {
	p, counter, _ := newTestPipeline(t)
	for _, text := range []string{"", "   ", "\n\t "} {
		_, err := p.Generate(text, DefaultConfig())
		assert.ErrorIs(t, err, ErrEmptyInput, "text %q", text)
	}
	assert.Zero(t, counter.calls, "validation failures must not render")
}

func TestGenerateTextLengthBound(t *testing.T) {
	p, _, _ := newTestPipeline(t)
	cfg := DefaultConfig()
	cfg.FontSize = 6
	cfg.MaxWidth = 2000

	_, err := p.Generate(strings.Repeat("a", MaxTextLength+1), cfg)
	assert.ErrorIs(t, err, ErrInputTooLong)

	atBound := strings.Repeat("a ", MaxTextLength/2)
	require.Equal(t, MaxTextLength, len([]rune(atBound)))
	_, err = p.Generate(atBound, cfg)
	assert.NoError(t, err, "text exactly at the bound is accepted")
}

func TestGenerateInvalidConfigShortCircuits(t *testing.T) {
	p, counter, cache := newTestPipeline(t)
	cfg := DefaultConfig()
	cfg.Padding = -1

	_, err := p.Generate("hello", cfg)
	assert.ErrorIs(t, err, ErrInvalidConfig)
	assert.Zero(t, counter.calls)
	assert.Zero(t, cache.Len(), "invalid requests must not touch the cache")
}

func TestGenerateFontFallback(t *testing.T) {
	p, _, _ := newTestPipeline(t)
	cfg := DefaultConfig()
	cfg.FontFamily = "definitely-not-installed"

	out, err := p.Generate("fallback", cfg)
	require.NoError(t, err, "unknown font families degrade, never fail")
	assert.NotEmpty(t, out)

	cfg.FontFamily = DefaultFontFamily
	def, err := p.Generate("fallback", cfg)
	require.NoError(t, err)
	assert.Equal(t, len(def), len(out), "substituted font renders with default metrics")
}

func TestGenerateRenderFailureNotCached(t *testing.T) {
	reg := NewFontRegistry()
	cache, err := NewLRUCache(8, 1<<20)
	require.NoError(t, err)
	p := NewPipeline(reg, cache, WithRenderer(&failingRenderer{err: ErrEncoding}))

	_, err = p.Generate("hello", DefaultConfig())
	assert.ErrorIs(t, err, ErrEncoding)
	assert.Zero(t, cache.Len())
}

func TestGenerateNilCache(t *testing.T) {
	reg := NewFontRegistry()
	p := NewPipeline(reg, nil)
	out, err := p.Generate("no cache at all", DefaultConfig())
	require.NoError(t, err)
	assert.NotEmpty(t, out)
}

func TestScenarioHelloWorld(t *testing.T) {
	p, _, _ := newTestPipeline(t)
	out, err := p.Generate("Hello World!", DefaultConfig())
	require.NoError(t, err)
	w, h := decodeDims(t, out)
	assert.GreaterOrEqual(t, w, 400)
	assert.GreaterOrEqual(t, h, 200)
}

func TestScenarioWrappedParagraph(t *testing.T) {
	p, _, _ := newTestPipeline(t)
	cfg := DefaultConfig()
	cfg.MaxWidth = 600
	paragraph := lorem[:500]

	out, err := p.Generate(paragraph, cfg)
	require.NoError(t, err)
	w, h := decodeDims(t, out)
	assert.LessOrEqual(t, float64(w), cfg.MaxWidth+2*cfg.Padding+1)
	singleLine := cfg.FontSize * cfg.LineHeight
	assert.Greater(t, float64(h), singleLine+2*cfg.Padding, "500 characters must wrap across lines")
}

func TestScenarioWatermarkChangesOutput(t *testing.T) {
	p, counter, _ := newTestPipeline(t)
	cfg := DefaultConfig()

	plain, err := p.Generate("Hello World!", cfg)
	require.NoError(t, err)
	cfg.Watermark = "draft"
	marked, err := p.Generate("Hello World!", cfg)
	require.NoError(t, err)

	assert.Equal(t, 2, counter.calls, "watermark change must miss the cache")
	assert.NotEqual(t, plain, marked)
}

func TestGeneratorInterface(t *testing.T) {
	p, _, _ := newTestPipeline(t)
	var g Generator = p
	_, err := g.Generate("through the interface", DefaultConfig())
	assert.NoError(t, err)
}

func TestFieldErrorUnwrap(t *testing.T) {
	err := fieldErr("padding", "must be in [0,200]")
	assert.ErrorIs(t, err, ErrInvalidConfig)
	var fe *FieldError
	assert.True(t, errors.As(err, &fe))
}
