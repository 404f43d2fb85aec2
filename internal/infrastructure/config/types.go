package config

// Config is the root config for ghost.json
type Config struct {
	Decode DecodeConfig `json:"decode"`
	Report ReportConfig `json:"report"`
	Store  StoreConfig  `json:"store"`
	Viewer ViewerConfig `json:"viewer"`
}

// DecodeConfig controls how strictly recordings are decoded
type DecodeConfig struct {
	// StrictDuration fails decoding when the header total time and the
	// summed frame times differ by more than DurationTolerance seconds
	StrictDuration    bool    `json:"strictDuration" env:"GHOST_STRICT_DURATION"`
	DurationTolerance float64 `json:"durationTolerance" env:"GHOST_DURATION_TOLERANCE"`
}

// ReportConfig selects collectors and the output format
type ReportConfig struct {
	Format     string   `json:"format" env:"GHOST_REPORT_FORMAT"` // text, json or yaml
	Collectors []string `json:"collectors" env:"GHOST_COLLECTORS" envSeparator:","`
}

// StoreConfig enables SQLite export of decoded runs
type StoreConfig struct {
	Path string `json:"path" env:"GHOST_DB_PATH"` // empty disables export
}

// ViewerConfig configures the playback window
type ViewerConfig struct {
	ScreenWidth  int     `json:"screenWidth"`
	ScreenHeight int     `json:"screenHeight"`
	Scale        int     `json:"scale" env:"GHOST_VIEWER_SCALE"`
	Framerate    int     `json:"framerate"`
	Speed        float64 `json:"speed" env:"GHOST_VIEWER_SPEED"` // playback speed multiplier
	Trail        int     `json:"trail"`                          // frames of path drawn behind the marker, 0 draws all
	Margin       int     `json:"margin"`                         // pixels kept free around the path
}
