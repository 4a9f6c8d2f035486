package cfg

import (
	"cmp"
	"fmt"

	"github.com/jessevdk/go-flags"
)

// Version is set at build time via -ldflags
var Version = "dev"

func GetVersion() string {
	return cmp.Or(Version, "unknown")
}

type browseCmd struct{}

type exportCmd struct {
	Pages    int `long:"pages" default:"3" description:"Number of listing pages to collect"`
	PageSize int `long:"page-size" default:"10" description:"Number of news items per page"`

	Args struct {
		Output string `positional-arg-name:"OUTPUT" description:"Path of the generated HTML file" required:"yes"`
	} `positional-args:"yes" required:"yes"`
}

type rawCfg struct {
	// Global configuration
	SiteConfig string `long:"site" env:"SITE_CONFIG" description:"Path to a site profile file (YAML)"`
	UserAgent  string `long:"user-agent" env:"USER_AGENT" default:"Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0 Safari/537.36" description:"User agent string for HTTP requests"`
	Debug      bool   `long:"debug" env:"DEBUG" description:"Enable debug logging"`

	Browse browseCmd `command:"browse" description:"Browse the news interactively in the terminal (default)"`
	Export exportCmd `command:"export" description:"Export the news to a self-contained HTML page"`
}

var globalCfg *Cfg

func Load() (*Cfg, error) {
	var raw rawCfg

	parser := flags.NewParser(&raw, flags.Default)
	parser.SubcommandsOptional = true

	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok {
			if flagsErr.Type == flags.ErrHelp {
				return nil, nil
			}
		}
		return nil, fmt.Errorf("failed to parse configuration: %w", err)
	}

	cfg := &Cfg{
		SiteConfig: raw.SiteConfig,
		UserAgent:  raw.UserAgent,
		Debug:      raw.Debug,
		Version:    GetVersion(),
		Mode:       ModeBrowse,
	}

	if parser.Active != nil && parser.Active.Name == "export" {
		cfg.Mode = ModeExport
		cfg.Output = raw.Export.Args.Output
		cfg.Pages = raw.Export.Pages
		cfg.PageSize = raw.Export.PageSize
	}

	globalCfg = cfg

	return cfg, nil
}

func Get() *Cfg {
	if globalCfg == nil {
		panic("configuration not loaded - call cfg.Load() first")
	}
	return globalCfg
}
