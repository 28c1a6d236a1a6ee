package config

// AppConfig holds runtime startup configuration loaded from YAML.
type AppConfig struct {
	Env        string             `yaml:"env"` // "development" | "production"
	Theme      string             `yaml:"theme"`
	Background BackgroundConfig   `yaml:"background"`
	Gateway    GatewayConfig      `yaml:"gateway"`
	Site       SiteConfig         `yaml:"site"`
	Paths      RuntimePathsConfig `yaml:"paths"`

	// baseDir is the directory of the file the config came from.
	baseDir string
}

type BackgroundConfig struct {
	Mode    string `yaml:"mode"`
	Surface string `yaml:"surface"` // "terminal" | "window"
	FPS     int    `yaml:"fps"`
	Width   int    `yaml:"width"`
	Height  int    `yaml:"height"`
}

type GatewayConfig struct {
	Enable  bool               `yaml:"enable"`
	Channel string             `yaml:"channel"`
	Redis   RedisRuntimeConfig `yaml:"redis"`
}

type RedisRuntimeConfig struct {
	URL      string            `yaml:"url"`
	Host     string            `yaml:"host"`
	Port     int               `yaml:"port"`
	Username string            `yaml:"username"`
	Password string            `yaml:"password"`
	DB       int               `yaml:"db"`
	TLS      bool              `yaml:"tls"`
	Scheme   string            `yaml:"scheme"`
	Params   map[string]string `yaml:"params"`
}

type SiteConfig struct {
	Owner  string `yaml:"owner"`
	WebURL string `yaml:"web_url"`
}

type RuntimePathsConfig struct {
	Logs string `yaml:"logs"`
}

type rawAppConfig struct {
	Env        string              `yaml:"env"`
	NodeEnv    string              `yaml:"node_env"`
	Theme      string              `yaml:"theme"`
	ColorMode  string              `yaml:"color_mode"`
	Background rawBackgroundConfig `yaml:"background"`
	Gateway    rawGatewayConfig    `yaml:"gateway"`
	RedisURL   string              `yaml:"redis_url"`
	Site       rawSiteConfig       `yaml:"site"`
	WebURL     string              `yaml:"web_url"`
	Paths      rawPathsConfig      `yaml:"paths"`
	LogDir     string              `yaml:"log_dir"`
	LogsDir    string              `yaml:"logs_dir"`
}

type rawBackgroundConfig struct {
	Mode    string `yaml:"mode"`
	Surface string `yaml:"surface"`
	FPS     int    `yaml:"fps"`
	Width   int    `yaml:"width"`
	Height  int    `yaml:"height"`
}

type rawGatewayConfig struct {
	Enable  *bool          `yaml:"enable"`
	Channel string         `yaml:"channel"`
	Redis   rawRedisConfig `yaml:"redis"`
}

type rawRedisConfig struct {
	URL      string            `yaml:"url"`
	Host     string            `yaml:"host"`
	Port     int               `yaml:"port"`
	Username string            `yaml:"username"`
	Password string            `yaml:"password"`
	DB       *int              `yaml:"db"`
	TLS      *bool             `yaml:"tls"`
	Scheme   string            `yaml:"scheme"`
	Params   map[string]string `yaml:"params"`
}

type rawSiteConfig struct {
	Owner  string `yaml:"owner"`
	Name   string `yaml:"name"`
	WebURL string `yaml:"web_url"`
}

type rawPathsConfig struct {
	Logs string `yaml:"logs"`
}

// envOverrides are read from SITE_* variables and win over the file.
type envOverrides struct {
	Env            *string `envconfig:"ENV"`
	Theme          *string `envconfig:"THEME"`
	BackgroundMode *string `envconfig:"BACKGROUND_MODE"`
	Surface        *string `envconfig:"SURFACE"`
	FPS            *int    `envconfig:"FPS"`
	GatewayEnable  *bool   `envconfig:"GATEWAY_ENABLE"`
	GatewayChannel *string `envconfig:"GATEWAY_CHANNEL"`
	RedisURL       *string `envconfig:"REDIS_URL"`
	Owner          *string `envconfig:"OWNER"`
	WebURL         *string `envconfig:"WEB_URL"`
	LogDir         *string `envconfig:"LOG_DIR"`
}
