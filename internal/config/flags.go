package config

import "flag"

var (
	flagConfig     = flag.String("config", "", "Path to config file")
	flagDebug      = flag.Bool("debug", false, "Enable debug logging")
	flagMesh       = flag.String("mesh", "", "Primitive name or path to an .obj file")
	flagShells     = flag.Int("shells", 0, "Number of shell layers")
	flagWindPreset = flag.String("wind-preset", "", "Wind preset (calm, gentleBreeze, strongWind, storm)")
	flagNoFins     = flag.Bool("no-fins", false, "Disable fins")
	flagFullscreen = flag.Bool("fullscreen", false, "Run in fullscreen mode")
	flagWidth      = flag.Int("width", 0, "Window width")
	flagHeight     = flag.Int("height", 0, "Window height")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
		cfg.Window.ShowFPS = true
	}
	if *flagMesh != "" {
		cfg.Mesh.SetSource(*flagMesh)
	}
	if *flagShells > 0 {
		cfg.Shell.Count = *flagShells
	}
	if *flagWindPreset != "" {
		cfg.Wind.Preset = *flagWindPreset
	}
	if *flagNoFins {
		cfg.Fin.Enabled = false
	}
	if *flagFullscreen {
		cfg.Window.Fullscreen = true
	}
	if *flagWidth > 0 {
		cfg.Window.Width = *flagWidth
	}
	if *flagHeight > 0 {
		cfg.Window.Height = *flagHeight
	}
}
