package cfg

// Mode selects which command the process runs.
type Mode string

const (
	ModeBrowse Mode = "browse"
	ModeExport Mode = "export"
)

type Cfg struct {
	// Global configuration
	SiteConfig string
	UserAgent  string
	Debug      bool

	// Export configuration
	Output   string
	Pages    int
	PageSize int

	// Application metadata
	Version string
	Mode    Mode
}
