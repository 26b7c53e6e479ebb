package card

import "image/color"

// Theme selects a predefined visual style for a share card.
type Theme string

const (
	ThemeLight      Theme = "light"
	ThemeDark       Theme = "dark"
	ThemeGradient   Theme = "gradient"
	ThemeModern     Theme = "modern"
	ThemeMinimalist Theme = "minimalist"
)

// Themes returns every defined theme, in display order.
func Themes() []Theme {
	return []Theme{ThemeLight, ThemeDark, ThemeGradient, ThemeModern, ThemeMinimalist}
}

// Valid reports whether t is one of the defined themes.
func (t Theme) Valid() bool {
	_, ok := styles[t]
	return ok
}

// Style is the concrete visual style a theme maps to. Primary is the
// background fill; for gradient themes Secondary is the second gradient
// stop, drawn corner to corner. Accent colors the border stroke.
type Style struct {
	Primary      color.NRGBA
	Secondary    color.NRGBA
	Text         color.NRGBA
	Accent       color.NRGBA
	CornerRadius float64
	Gradient     bool
}

// styles maps every Theme to its Style. Keep this table in sync with
// Themes; the totality test iterates both.
var styles = map[Theme]Style{
	ThemeLight: {
		Primary:      color.NRGBA{R: 0xf7, G: 0xf4, B: 0xec, A: 0xff},
		Text:         color.NRGBA{R: 0x26, G: 0x21, B: 0x1a, A: 0xff},
		Accent:       color.NRGBA{R: 0xd8, G: 0xd2, B: 0xc4, A: 0xff},
		CornerRadius: 12,
	},
	ThemeDark: {
		Primary:      color.NRGBA{R: 0x1e, G: 0x1e, B: 0x2e, A: 0xff},
		Text:         color.NRGBA{R: 0xe8, G: 0xe6, B: 0xe3, A: 0xff},
		Accent:       color.NRGBA{R: 0x45, G: 0x45, B: 0x5e, A: 0xff},
		CornerRadius: 12,
	},
	ThemeGradient: {
		Primary:      color.NRGBA{R: 0x4a, G: 0x90, B: 0xd9, A: 0xff},
		Secondary:    darken(color.NRGBA{R: 0x4a, G: 0x90, B: 0xd9, A: 0xff}),
		Text:         color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff},
		Accent:       color.NRGBA{R: 0x8a, G: 0xbc, B: 0xe8, A: 0xff},
		CornerRadius: 16,
		Gradient:     true,
	},
	ThemeModern: {
		Primary:      color.NRGBA{R: 0x6d, G: 0x5b, B: 0xd0, A: 0xff},
		Secondary:    darken(color.NRGBA{R: 0x6d, G: 0x5b, B: 0xd0, A: 0xff}),
		Text:         color.NRGBA{R: 0xf5, G: 0xf3, B: 0xff, A: 0xff},
		Accent:       color.NRGBA{R: 0xa8, G: 0x9c, B: 0xe8, A: 0xff},
		CornerRadius: 20,
		Gradient:     true,
	},
	ThemeMinimalist: {
		Primary:      color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff},
		Text:         color.NRGBA{R: 0x11, G: 0x11, B: 0x11, A: 0xff},
		Accent:       color.NRGBA{R: 0xe2, G: 0xe2, B: 0xe2, A: 0xff},
		CornerRadius: 4,
	},
}

// StyleFor returns the style for t. The table is total over Valid themes;
// an unknown theme (which validation rejects before rendering) falls back
// to the light style so the renderer never draws from a zero Style.
func StyleFor(t Theme) Style {
	if s, ok := styles[t]; ok {
		return s
	}
	return styles[ThemeLight]
}

// darken returns c scaled to 90% luminance, used as the second stop of a
// two-stop gradient.
func darken(c color.NRGBA) color.NRGBA {
	return color.NRGBA{
		R: uint8(float64(c.R) * 0.9),
		G: uint8(float64(c.G) * 0.9),
		B: uint8(float64(c.B) * 0.9),
		A: c.A,
	}
}
