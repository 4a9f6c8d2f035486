package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/lysyi3m/actus-navigator/app/browser"
	"github.com/lysyi3m/actus-navigator/app/cfg"
	"github.com/lysyi3m/actus-navigator/app/export"
	"github.com/lysyi3m/actus-navigator/app/feed"
)

func main() {
	appCfg, err := cfg.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if appCfg == nil {
		// Help was shown, exit gracefully
		return
	}

	if appCfg.Debug {
		slog.SetLogLoggerLevel(slog.LevelDebug)
	}

	if err := run(appCfg); err != nil {
		slog.Error("Command failed", "error", err)
		os.Exit(1)
	}
}

func run(appCfg *cfg.Cfg) error {
	sourceConfig := feed.DefaultConfig()
	if appCfg.SiteConfig != "" {
		loaded, err := feed.LoadConfig(appCfg.SiteConfig)
		if err != nil {
			return fmt.Errorf("failed to load site profile: %w", err)
		}
		sourceConfig = loaded
	}

	fetcher := feed.NewFetcher(appCfg.UserAgent, time.Duration(sourceConfig.Settings.Timeout)*time.Second)
	source := feed.NewSource(sourceConfig, fetcher)

	ctx := context.Background()

	switch appCfg.Mode {
	case cfg.ModeExport:
		exporter := export.NewExporter(source, appCfg.Pages, appCfg.PageSize)
		if err := exporter.Run(ctx, appCfg.Output); err != nil {
			return err
		}
		fmt.Printf("HTML page generated at %s\n", appCfg.Output)
		return nil
	default:
		reader := feed.NewReader(fetcher)
		b := browser.NewBrowser(source, reader, os.Stdin, os.Stdout, sourceConfig.Settings.PageSize)
		return b.Run(ctx)
	}
}
