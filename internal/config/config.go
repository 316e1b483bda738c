// Package config handles viewer and generator configuration loading.
package config

// Config holds all settings.
type Config struct {
	Window  WindowConfig  `yaml:"window"`
	Mesh    MeshConfig    `yaml:"mesh"`
	Shell   ShellConfig   `yaml:"shell"`
	Fin     FinConfig     `yaml:"fin"`
	Wind    WindConfig    `yaml:"wind"`
	Logging LoggingConfig `yaml:"logging"`
}

// WindowConfig holds display settings.
type WindowConfig struct {
	Width      int  `yaml:"width"`
	Height     int  `yaml:"height"`
	Fullscreen bool `yaml:"fullscreen"`
	VSync      bool `yaml:"vsync"`
	FPSLimit   int  `yaml:"fps_limit"`
	ShowFPS    bool `yaml:"show_fps"`
}

// MeshConfig selects the source mesh: an OBJ file when Path is set,
// otherwise a built-in primitive.
type MeshConfig struct {
	Path      string  `yaml:"path"`
	Primitive string  `yaml:"primitive"` // quad, cube, plane, sphere, torus
	Size      float32 `yaml:"size"`
}

// TaperConfig mirrors the tapering controls. A non-empty Preset overrides
// Enabled, Intensity and Curve.
type TaperConfig struct {
	Preset    string  `yaml:"preset,omitempty"`
	Enabled   bool    `yaml:"enabled"`
	Intensity float32 `yaml:"intensity"`
	Curve     string  `yaml:"curve"`  // linear, quadratic, exponential
	Method    string  `yaml:"method"` // centroid, normal, hybrid
}

// ShellConfig holds shell layer settings.
type ShellConfig struct {
	Count       int         `yaml:"count"`
	Spacing     float32     `yaml:"spacing"`
	MaxDistance float32     `yaml:"max_distance"`
	Opacity     float32     `yaml:"opacity"`
	Density     float32     `yaml:"density"`
	Taper       TaperConfig `yaml:"taper"`
	PoolSize    int         `yaml:"pool_size"`
}

// FinConfig holds fin settings.
type FinConfig struct {
	Enabled  bool        `yaml:"enabled"`
	Length   float32     `yaml:"length"`
	MaxCount int         `yaml:"max_count"`
	Taper    TaperConfig `yaml:"taper"`
	Workers  int         `yaml:"workers"` // 0 uses all CPUs
}

// WindConfig holds wind settings. A non-empty Preset overrides the
// individual values.
type WindConfig struct {
	Preset              string     `yaml:"preset,omitempty"`
	Enabled             bool       `yaml:"enabled"`
	Direction           [3]float32 `yaml:"direction,flow"`
	Strength            float32    `yaml:"strength"`
	TurbulenceIntensity float32    `yaml:"turbulence_intensity"`
	TurbulenceFrequency float32    `yaml:"turbulence_frequency"`
	GustStrength        float32    `yaml:"gust_strength"`
	GustFrequency       float32    `yaml:"gust_frequency"`
	GustDuration        float32    `yaml:"gust_duration"`
	Dampening           float32    `yaml:"dampening"`
	Responsiveness      float32    `yaml:"responsiveness"`
	Randomness          float32    `yaml:"randomness"`
	AnimationSpeed      float32    `yaml:"animation_speed"`
	Seed                uint64     `yaml:"seed"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Width:  1280,
			Height: 720,
			VSync:  true,
		},
		Mesh: MeshConfig{
			Primitive: "sphere",
			Size:      1,
		},
		Shell: ShellConfig{
			Count:       16,
			Spacing:     0.02,
			MaxDistance: 0.1,
			Opacity:     0.8,
			Density:     0.7,
			Taper: TaperConfig{
				Enabled:   true,
				Intensity: 0.3,
				Curve:     "quadratic",
				Method:    "centroid",
			},
			PoolSize: 8,
		},
		Fin: FinConfig{
			Enabled:  true,
			Length:   0.05,
			MaxCount: 2000,
			Taper: TaperConfig{
				Enabled:   true,
				Intensity: 0.5,
				Curve:     "linear",
				Method:    "centroid",
			},
		},
		Wind: WindConfig{
			Enabled:             true,
			Direction:           [3]float32{1, 0, 0},
			Strength:            0.5,
			TurbulenceIntensity: 0.3,
			TurbulenceFrequency: 1,
			GustStrength:        0.3,
			GustFrequency:       0.5,
			GustDuration:        2,
			Dampening:           0.8,
			Responsiveness:      1,
			Randomness:          0.3,
			AnimationSpeed:      1,
			Seed:                0x5eed_f0e1,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}
