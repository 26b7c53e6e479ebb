// Package static embeds the gallery page templates.
package static

import _ "embed"

//go:embed templates/gallery.html
var GalleryTemplate string

//go:embed templates/item.html
var ItemTemplate string
