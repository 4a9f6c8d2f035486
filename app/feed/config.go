package feed

import (
	"fmt"
	"log/slog"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	defaultBaseURL   = "https://actus.ulb.be"
	defaultListPath  = "/fr/toutes-les-actus"
	defaultFeedURL   = "https://actus.ulb.be/adminsite/webservices/export_rss.jsp?NOMBRE=10"
	defaultPageParam = "page"
	defaultPageSize  = 10
	defaultTimeout   = 10
)

// DefaultConfig returns the built-in profile for the ULB news site.
func DefaultConfig() *Config {
	return &Config{
		Name:      "ulb",
		BaseURL:   defaultBaseURL,
		ListPath:  defaultListPath,
		FeedURL:   defaultFeedURL,
		PageParam: defaultPageParam,
		Settings: ConfigSettings{
			PageSize: defaultPageSize,
			Timeout:  defaultTimeout,
		},
	}
}

// LoadConfig reads a YAML site profile, fills in defaults for omitted
// fields, and validates the result.
func LoadConfig(configFile string) (*Config, error) {
	config, err := parseConfig(configFile)
	if err != nil {
		return nil, err
	}

	// Derive profile name from filename (remove .yml extension)
	fileName := filepath.Base(configFile)
	config.Name = strings.TrimSuffix(strings.TrimSuffix(fileName, ".yml"), ".yaml")

	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", configFile, err)
	}

	slog.Debug("Site profile loaded", "name", config.Name, "base_url", config.BaseURL, "page_size", config.Settings.PageSize)

	return config, nil
}

func parseConfig(configFile string) (*Config, error) {
	data, err := os.ReadFile(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if config.BaseURL == "" {
		config.BaseURL = defaultBaseURL
	}
	if config.ListPath == "" {
		config.ListPath = defaultListPath
	}
	if config.FeedURL == "" {
		config.FeedURL = defaultFeedURL
	}
	if config.PageParam == "" {
		config.PageParam = defaultPageParam
	}
	if config.Settings.PageSize == 0 {
		config.Settings.PageSize = defaultPageSize
	}
	if config.Settings.Timeout == 0 {
		config.Settings.Timeout = defaultTimeout
	}

	return &config, nil
}

func validateConfig(config *Config) error {
	if config == nil {
		return fmt.Errorf("config is nil")
	}

	requiredURLFields := map[string]string{
		"base URL": config.BaseURL,
		"feed URL": config.FeedURL,
	}

	for fieldName, fieldValue := range requiredURLFields {
		parsed, err := url.Parse(fieldValue)
		if err != nil || parsed.Scheme == "" || parsed.Host == "" {
			return fmt.Errorf("%s must be an absolute URL, got %q", fieldName, fieldValue)
		}
	}

	positiveFields := map[string]int{
		"page size": config.Settings.PageSize,
		"timeout":   config.Settings.Timeout,
	}

	for fieldName, fieldValue := range positiveFields {
		if fieldValue <= 0 {
			return fmt.Errorf("%s must be positive", fieldName)
		}
	}

	return nil
}

// ListingURL builds the listing page URL. The site serves its first
// page without a page parameter, so one is appended only for page > 0.
func (c *Config) ListingURL(page int) string {
	listingURL := strings.TrimSuffix(c.BaseURL, "/") + c.ListPath
	if page > 0 {
		separator := "?"
		if strings.Contains(listingURL, "?") {
			separator = "&"
		}
		listingURL += separator + c.PageParam + "=" + strconv.Itoa(page)
	}
	return listingURL
}
