package config

// ServerConfig contains HTTP server configuration.
type ServerConfig struct {
	Port int `yaml:"port" validate:"gte=0"`
}

// PlannerConfig points at the trip-planning backend that produces raw trip
// results. An empty ResultURL means no upstream; the sample timeline is
// served instead.
type PlannerConfig struct {
	ResultURL string `yaml:"resultURL" validate:"omitempty,url"`
	TimeoutMS int    `yaml:"timeoutMS" validate:"gte=0"`
}

// RenderConfig contains log-sheet rendering defaults.
type RenderConfig struct {
	Width     int    `yaml:"width" validate:"gte=0"`
	Theme     string `yaml:"theme" validate:"omitempty,oneof=light dark"`
	CacheSize int    `yaml:"cacheSize" validate:"gte=0"`
}

// LoggingConfig contains logger configuration.
type LoggingConfig struct {
	Level string `yaml:"level" validate:"omitempty,oneof=trace debug info warn error"`
}

// AppConfig is the root configuration structure.
type AppConfig struct {
	Server  ServerConfig  `yaml:"server"`
	Planner PlannerConfig `yaml:"planner"`
	Render  RenderConfig  `yaml:"render"`
	Logging LoggingConfig `yaml:"logging"`
}
