package card

import (
	"errors"
	"unicode/utf8"

	"github.com/clipcard/clipcard/internal/util"
)

// Documented ranges for Config fields. Values outside a range are rejected
// by Validate, never silently clamped.
const (
	MinPadding    = 0.0
	MaxPadding    = 200.0
	MinMaxWidth   = 100.0
	MaxMaxWidth   = 2000.0
	MinLineHeight = 0.5
	MaxLineHeight = 3.0
	MinFontSize   = 6.0
	MaxFontSize   = 200.0

	// MaxWatermarkLength bounds the watermark text in runes.
	MaxWatermarkLength = 100

	// MaxTextLength bounds the input text in runes.
	MaxTextLength = 10000
)

// Config holds every knob that affects rendered output. It is a plain
// comparable value: two configs are the same card style iff they are equal,
// which is also what the cache fingerprint and favorite deduplication rely
// on. The zero value is not useful; start from DefaultConfig.
type Config struct {
	FontFamily    string  `json:"fontFamily" yaml:"font_family"`
	FontSize      float64 `json:"fontSize" yaml:"font_size"`
	Theme         Theme   `json:"theme" yaml:"theme"`
	Padding       float64 `json:"padding" yaml:"padding"`
	MaxWidth      float64 `json:"maxWidth" yaml:"max_width"`
	LineHeight    float64 `json:"lineHeight" yaml:"line_height"`
	LetterSpacing float64 `json:"letterSpacing" yaml:"letter_spacing"`
	Watermark     string  `json:"watermark" yaml:"watermark"`

	// CornerRadius overrides the theme's corner radius when >= 0.
	// Negative means "use the theme default".
	CornerRadius float64 `json:"cornerRadius" yaml:"corner_radius"`

	// BorderWidth is the stroked border width in points; 0 disables it.
	BorderWidth float64 `json:"borderWidth" yaml:"border_width"`
}

// DefaultConfig returns the out-of-the-box card style: system font at a
// medium size, light theme, comfortable padding.
func DefaultConfig() Config {
	return Config{
		FontFamily:   DefaultFontFamily,
		FontSize:     24,
		Theme:        ThemeLight,
		Padding:      32,
		MaxWidth:     800,
		LineHeight:   1.3,
		CornerRadius: -1,
	}
}

// Validate checks every field against its documented range and returns all
// violations joined together. The result matches ErrInvalidConfig.
func (c Config) Validate() error {
	var errs []error
	if c.FontSize < MinFontSize || c.FontSize > MaxFontSize {
		errs = append(errs, fieldErr("fontSize", "must be in [%g,%g], got %g", MinFontSize, MaxFontSize, c.FontSize))
	}
	if !c.Theme.Valid() {
		errs = append(errs, fieldErr("theme", "unknown theme %q", string(c.Theme)))
	}
	if c.Padding < MinPadding || c.Padding > MaxPadding {
		errs = append(errs, fieldErr("padding", "must be in [%g,%g], got %g", MinPadding, MaxPadding, c.Padding))
	}
	if c.MaxWidth < MinMaxWidth || c.MaxWidth > MaxMaxWidth {
		errs = append(errs, fieldErr("maxWidth", "must be in [%g,%g], got %g", MinMaxWidth, MaxMaxWidth, c.MaxWidth))
	}
	if c.LineHeight < MinLineHeight || c.LineHeight > MaxLineHeight {
		errs = append(errs, fieldErr("lineHeight", "must be in [%g,%g], got %g", MinLineHeight, MaxLineHeight, c.LineHeight))
	}
	if utf8.RuneCountInString(c.Watermark) > MaxWatermarkLength {
		errs = append(errs, fieldErr("watermark", "must be at most %d characters", MaxWatermarkLength))
	}
	if c.BorderWidth < 0 {
		errs = append(errs, fieldErr("borderWidth", "must not be negative, got %g", c.BorderWidth))
	}
	return errors.Join(errs...)
}

// Fingerprint derives the cache key for a (text, config) pair: a sha256 of
// the canonical JSON encoding, so changing any single field changes the key
// and keys stay stable across process restarts.
func Fingerprint(text string, cfg Config) string {
	return util.HashJSON(struct {
		Text   string `json:"text"`
		Config Config `json:"config"`
	}{text, cfg})
}
