// Package gallery exports history to a static HTML page: one PNG per card
// under cards/ plus an index.html linking them. The export is a one-shot
// user action, so files are always rewritten in full.
package gallery

import (
	"bytes"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gosimple/slug"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"github.com/clipcard/clipcard/internal/history"
	"github.com/clipcard/clipcard/internal/html"
	"github.com/clipcard/clipcard/internal/static"
	"github.com/clipcard/clipcard/internal/util"
)

// markdown renders card text into the gallery body. Clipboard text is often
// markdown; the card shows it raw, the gallery shows it formatted.
var markdown = goldmark.New(
	goldmark.WithExtensions(extension.GFM),
)

// Options controls the exported page.
type Options struct {
	// Title is the page heading; empty selects a default.
	Title string
	// RenderBodies enables markdown rendering of each item's text below
	// its card image.
	RenderBodies bool
}

// Result reports what Export wrote.
type Result struct {
	CardsWritten int
	IndexPath    string
}

// Export writes the gallery for items into dir. Items render newest first.
func Export(dir string, items []history.Item, opts Options) (*Result, error) {
	cardsDir := filepath.Join(dir, "cards")
	if err := os.MkdirAll(cardsDir, 0o755); err != nil {
		return nil, err
	}

	sorted := make([]history.Item, len(items))
	copy(sorted, items)
	history.SortByCreated(sorted)

	result := &Result{}
	var sections []string
	for _, item := range sorted {
		name := assetName(item)
		cardPath := filepath.Join(cardsDir, name)
		if err := os.WriteFile(cardPath, item.PNG, 0o644); err != nil {
			return nil, fmt.Errorf("write card %s: %w", item.ID, err)
		}
		result.CardsWritten++

		sections = append(sections, renderItem(item, "cards/"+name, opts))
	}

	title := opts.Title
	if title == "" {
		title = "Share cards"
	}
	page := html.Render(static.GalleryTemplate, map[string]string{
		"page_title":  util.EscapeHTML(title),
		"item_count":  fmt.Sprintf("%d", len(sorted)),
		"exported_at": time.Now().UTC().Format("2006-01-02 15:04"),
		"items":       strings.Join(sections, "\n"),
	})

	result.IndexPath = filepath.Join(dir, "index.html")
	if err := os.WriteFile(result.IndexPath, []byte(page), 0o644); err != nil {
		return nil, err
	}
	slog.Info("gallery exported", "dir", dir, "cards", result.CardsWritten)
	return result, nil
}

func renderItem(item history.Item, cardPath string, opts Options) string {
	favorite := ""
	if item.Favorite {
		favorite = "yes"
	}

	bodyHTML := ""
	if opts.RenderBodies && strings.TrimSpace(item.Text) != "" {
		var buf bytes.Buffer
		if err := markdown.Convert([]byte(item.Text), &buf); err != nil {
			slog.Warn("gallery: markdown render failed, skipping body", "id", item.ID, "error", err)
		} else {
			bodyHTML = buf.String()
		}
	}

	return html.Render(static.ItemTemplate, map[string]string{
		"id":          item.ID,
		"card_path":   cardPath,
		"alt_text":    util.EscapeHTML(util.Truncate(item.Text, 120)),
		"created_at":  item.CreatedAt.UTC().Format("2006-01-02 15:04"),
		"favorite":    favorite,
		"theme":       util.EscapeHTML(string(item.Config.Theme)),
		"font_family": util.EscapeHTML(item.Config.FontFamily),
		"font_size":   fmt.Sprintf("%g", item.Config.FontSize),
		"body_html":   bodyHTML,
	})
}

// assetName builds a stable, readable file name for an item's PNG: a slug
// of the leading words plus an ID prefix for uniqueness.
func assetName(item history.Item) string {
	words := strings.Fields(item.Text)
	if len(words) > 6 {
		words = words[:6]
	}
	s := slug.Make(strings.Join(words, " "))
	if len(s) > 48 {
		s = s[:48]
	}
	prefix := item.ID
	if len(prefix) > 8 {
		prefix = prefix[:8]
	}
	if s == "" {
		return prefix + ".png"
	}
	return s + "-" + prefix + ".png"
}
