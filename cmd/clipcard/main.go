// Package main implements the clipcard command line tool: it turns text
// into a styled PNG share card. Text comes from an argument or stdin
// (standing in for the clipboard the GUI front end reads), the card goes
// to a file or stdout, and each render is recorded in history.
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/clipcard/clipcard/internal/card"
	"github.com/clipcard/clipcard/internal/export"
	"github.com/clipcard/clipcard/internal/gallery"
	"github.com/clipcard/clipcard/internal/history"
	"github.com/clipcard/clipcard/internal/logger"
	"github.com/clipcard/clipcard/internal/settings"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "clipcard:", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	fs := flag.NewFlagSet("clipcard", flag.ExitOnError)
	var (
		settingsPath = fs.String("settings", defaultSettingsPath(), "settings file")
		output       = fs.String("o", "", "output PNG path (default: suggested name in current dir; \"-\" for stdout)")
		theme        = fs.String("theme", "", "theme override")
		fontFamily   = fs.String("font", "", "font family override")
		fontSize     = fs.Float64("size", 0, "font size override in points")
		watermark    = fs.String("watermark", "", "watermark text")
		noHistory    = fs.Bool("no-history", false, "do not record this card in history")
		galleryDir   = fs.String("gallery", "", "export the history gallery into this directory and exit")
		listThemes   = fs.Bool("themes", false, "list available themes and exit")
	)
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *listThemes {
		for _, t := range card.Themes() {
			fmt.Println(t)
		}
		return nil
	}

	cfgFile, err := settings.Load(*settingsPath)
	if err != nil {
		return err
	}
	logger.Setup(cfgFile.LogLevel, cfgFile.LogFile)

	if *galleryDir != "" {
		store, err := history.Open(cfgFile.HistoryPath, cfgFile.MaxHistory)
		if err != nil {
			return err
		}
		res, err := gallery.Export(*galleryDir, store.List(), gallery.Options{RenderBodies: true})
		if err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "wrote %d cards to %s\n", res.CardsWritten, *galleryDir)
		return nil
	}

	text, err := readText(fs.Args())
	if err != nil {
		return err
	}

	cfg := cfgFile.Defaults
	if *theme != "" {
		cfg.Theme = card.Theme(*theme)
	}
	if *fontFamily != "" {
		cfg.FontFamily = *fontFamily
	}
	if *fontSize > 0 {
		cfg.FontSize = *fontSize
	}
	if *watermark != "" {
		cfg.Watermark = *watermark
	}

	cache, err := card.NewLRUCache(cfgFile.CacheEntries, cfgFile.CacheBytes)
	if err != nil {
		return err
	}
	pipeline := card.NewPipeline(card.NewFontRegistry(), cache)

	png, err := pipeline.Generate(text, cfg)
	if err != nil {
		return err
	}

	if !*noHistory {
		store, err := history.Open(cfgFile.HistoryPath, cfgFile.MaxHistory)
		if err != nil {
			return err
		}
		if _, err := store.Add(text, cfg, png); err != nil {
			slog.Warn("could not record history", "error", err)
		}
	}

	switch *output {
	case "-":
		_, err = os.Stdout.Write(png)
		return err
	case "":
		name := export.SuggestName(text, time.Now())
		if err := export.WritePNG(name, png); err != nil {
			return err
		}
		fmt.Fprintln(os.Stderr, name)
		return nil
	default:
		return export.WritePNG(*output, png)
	}
}

// readText takes the card text from the remaining arguments, or from stdin
// when none are given.
func readText(args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	return string(data), nil
}

// defaultSettingsPath puts the settings file under the user config dir,
// falling back to the working directory when that cannot be resolved.
func defaultSettingsPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "clipcard.yaml"
	}
	return filepath.Join(dir, "clipcard", "settings.yaml")
}
