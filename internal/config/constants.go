package config

const (
	// DefaultConfigPath is used when --config is not provided.
	DefaultConfigPath = "config.yml"
	// EnvPrefix namespaces environment overrides, e.g. SITE_THEME.
	EnvPrefix = "SITE"

	defaultEnv          = "development"
	defaultTheme        = "light"
	defaultMode         = "auto"
	defaultSurface      = SurfaceTerminal
	defaultFPS          = 60
	defaultWindowWidth  = 1280
	defaultWindowHeight = 720
	defaultRedisHost    = "localhost"
	defaultRedisPort    = 6379
	defaultRedisDB      = 0
	defaultChannel      = "mx:gateway:public"
	defaultLogsSubdir   = "logs"
)

const (
	SurfaceTerminal = "terminal"
	SurfaceWindow   = "window"
)
