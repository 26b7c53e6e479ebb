package card

import (
	"fmt"
	"strings"
	"sync"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
)

// DefaultFontFamily is substituted whenever a requested family cannot be
// resolved. Font lookup never hard-fails.
const DefaultFontFamily = "go"

var familySources = map[string][]byte{
	"go":        goregular.TTF,
	"go-bold":   gobold.TTF,
	"go-italic": goitalic.TTF,
	"go-mono":   gomono.TTF,
}

// familyAliases maps the names callers commonly hand us (settings files,
// "system default" from the UI) onto registered families.
var familyAliases = map[string]string{
	"":        DefaultFontFamily,
	"system":  DefaultFontFamily,
	"default": DefaultFontFamily,
	"regular": DefaultFontFamily,
	"mono":    "go-mono",
	"bold":    "go-bold",
	"italic":  "go-italic",
}

var parsedFamilies = func() map[string]*truetype.Font {
	out := make(map[string]*truetype.Font, len(familySources))
	for name, ttf := range familySources {
		f, err := truetype.Parse(ttf)
		if err != nil {
			panic(fmt.Errorf("parse embedded font %s: %w", name, err))
		}
		out[name] = f
	}
	return out
}()

type faceKey struct {
	family string
	size   float64
}

// FontRegistry resolves family names to concrete font faces. Faces are
// cached per (family, size) because truetype face construction is not free
// and the same face is requested for every render of a given config.
type FontRegistry struct {
	mu    sync.Mutex
	faces map[faceKey]font.Face
}

func NewFontRegistry() *FontRegistry {
	return &FontRegistry{faces: make(map[faceKey]font.Face)}
}

// Families lists the registered family names.
func (r *FontRegistry) Families() []string {
	return []string{"go", "go-bold", "go-italic", "go-mono"}
}

// Resolve returns a face for the family at the given point size. Unknown
// families substitute DefaultFontFamily; substituted reports whether that
// happened so callers can log it.
func (r *FontRegistry) Resolve(family string, size float64) (face font.Face, substituted bool) {
	name := strings.ToLower(strings.TrimSpace(family))
	if alias, ok := familyAliases[name]; ok {
		name = alias
	}
	ttf, ok := parsedFamilies[name]
	if !ok {
		name = DefaultFontFamily
		ttf = parsedFamilies[name]
		substituted = true
	}

	key := faceKey{family: name, size: size}
	r.mu.Lock()
	defer r.mu.Unlock()
	if f, ok := r.faces[key]; ok {
		return f, substituted
	}
	f := truetype.NewFace(ttf, &truetype.Options{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	r.faces[key] = f
	return f, substituted
}
