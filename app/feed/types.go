package feed

// News item types

type Item struct {
	Title   string
	Date    string // display string as published by the source, may be empty
	Summary string
	Link    string // absolute URL, identity key within one fetch
}

// Configuration types

type Config struct {
	Name      string         // Derived from filename (without .yml extension)
	BaseURL   string         `yaml:"base_url"`
	ListPath  string         `yaml:"list_path"`
	FeedURL   string         `yaml:"feed_url"`
	PageParam string         `yaml:"page_param"`
	Settings  ConfigSettings `yaml:"settings"`
}

type ConfigSettings struct {
	PageSize int `yaml:"page_size"`
	Timeout  int `yaml:"timeout"` // seconds
}
