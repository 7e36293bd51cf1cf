package puppetk

// ParamConfig declares the URL parameters a run understands
type ParamConfig struct {
	Strings  map[string]string `toml:"strings"`
	Booleans []string          `toml:"booleans"`
}

// BrowserConfig for live chrome sessions
type BrowserConfig struct {
	ChromePath string `toml:"chrome_path"`
	ProfileDir string `toml:"profile_dir"`
	Headless   bool   `toml:"headless"`
}

// Config for puppetk
type Config struct {
	URL        string        `toml:"url"`
	DataPath   string        `toml:"data_path"` // where the resolution journal is kept, empty disables it
	FlashColor string        `toml:"flash_color"`
	Params     ParamConfig   `toml:"params"`
	Browser    BrowserConfig `toml:"browser"`
}
