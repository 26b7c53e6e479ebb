// Package export writes rendered cards to disk and suggests file names for
// save dialogs.
package export

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gosimple/slug"
)

// timestampLayout matches the suggested-filename pattern
// text-to-image-<YYYY-MM-DD-HHmmss>.png.
const timestampLayout = "2006-01-02-150405"

// SuggestName builds a filename for a card rendered from text at the given
// time: the timestamp pattern, plus a short slug of the text when one can
// be derived.
func SuggestName(text string, now time.Time) string {
	base := "text-to-image-" + now.Format(timestampLayout)
	words := strings.Fields(text)
	if len(words) > 4 {
		words = words[:4]
	}
	s := slug.Make(strings.Join(words, " "))
	if len(s) > 32 {
		s = s[:32]
	}
	if s != "" {
		base += "-" + s
	}
	return base + ".png"
}

// WritePNG writes data to path, creating parent directories as needed.
func WritePNG(path string, data []byte) error {
	if len(data) == 0 {
		return fmt.Errorf("export: refusing to write empty image to %s", path)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return os.WriteFile(path, data, 0o644)
}
