package config

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/kelseyhightower/envconfig"
	"github.com/thelucius7/site-core/internal/modules/background"
	"gopkg.in/yaml.v3"
)

// Load reads the YAML file at configPath, then applies SITE_* overrides.
// A missing file is not an error: defaults plus the environment are used.
func Load(configPath string) (*AppConfig, error) {
	path := strings.TrimSpace(configPath)
	if path == "" {
		path = DefaultConfigPath
	}

	content, err := os.ReadFile(path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("read config file %q: %w", path, err)
	}
	return parse(path, content)
}

func parse(path string, content []byte) (*AppConfig, error) {
	cfg := defaultAppConfig()

	if len(bytes.TrimSpace(content)) > 0 {
		decoder := yaml.NewDecoder(bytes.NewReader(content))
		decoder.KnownFields(true)
		raw := rawAppConfig{}
		if err := decoder.Decode(&raw); err != nil {
			return nil, fmt.Errorf("parse config file %q: %w", path, err)
		}
		applyRawAppConfig(&cfg, raw)
	}

	var env envOverrides
	if err := envconfig.Process(EnvPrefix, &env); err != nil {
		return nil, fmt.Errorf("read %s_* environment: %w", EnvPrefix, err)
	}
	applyEnvOverrides(&cfg, env)

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid config %q: %w", path, err)
	}
	cfg.baseDir = filepath.Dir(path)
	return &cfg, nil
}

func defaultAppConfig() AppConfig {
	cfg := AppConfig{
		Env:   defaultEnv,
		Theme: defaultTheme,
		Gateway: GatewayConfig{
			Channel: defaultChannel,
			Redis: RedisRuntimeConfig{
				Host: defaultRedisHost,
				Port: defaultRedisPort,
				DB:   defaultRedisDB,
			},
		},
	}
	cfg.Background = normalizeBackgroundConfig(cfg.Background)
	cfg.Gateway.Redis = normalizeRedisConfig(cfg.Gateway.Redis)
	return cfg
}

func applyRawAppConfig(cfg *AppConfig, raw rawAppConfig) {
	if v := strings.TrimSpace(raw.Env); v != "" {
		cfg.Env = v
	}
	if v := strings.TrimSpace(raw.NodeEnv); v != "" {
		cfg.Env = v
	}
	if v := strings.TrimSpace(raw.Theme); v != "" {
		cfg.Theme = v
	}
	if v := strings.TrimSpace(raw.ColorMode); v != "" {
		cfg.Theme = v
	}

	bg := cfg.Background
	if v := strings.TrimSpace(raw.Background.Mode); v != "" {
		bg.Mode = v
	}
	if v := strings.TrimSpace(raw.Background.Surface); v != "" {
		bg.Surface = v
	}
	if raw.Background.FPS != 0 {
		bg.FPS = raw.Background.FPS
	}
	if raw.Background.Width != 0 {
		bg.Width = raw.Background.Width
	}
	if raw.Background.Height != 0 {
		bg.Height = raw.Background.Height
	}
	cfg.Background = normalizeBackgroundConfig(bg)

	if raw.Gateway.Enable != nil {
		cfg.Gateway.Enable = *raw.Gateway.Enable
	}
	if v := strings.TrimSpace(raw.Gateway.Channel); v != "" {
		cfg.Gateway.Channel = v
	}
	cfg.Gateway.Redis = applyRawRedisConfig(cfg.Gateway.Redis, raw)

	if v := strings.TrimSpace(raw.Site.Owner); v != "" {
		cfg.Site.Owner = v
	}
	if v := strings.TrimSpace(raw.Site.Name); v != "" && cfg.Site.Owner == "" {
		cfg.Site.Owner = v
	}
	if v := strings.TrimSpace(raw.Site.WebURL); v != "" {
		cfg.Site.WebURL = v
	}
	if v := strings.TrimSpace(raw.WebURL); v != "" {
		cfg.Site.WebURL = v
	}
	cfg.Site = normalizeSite(cfg.Site)

	if v := strings.TrimSpace(raw.Paths.Logs); v != "" {
		cfg.Paths.Logs = v
	}
	if v := strings.TrimSpace(raw.LogDir); v != "" {
		cfg.Paths.Logs = v
	}
	if v := strings.TrimSpace(raw.LogsDir); v != "" {
		cfg.Paths.Logs = v
	}
	cfg.Paths = normalizeRuntimePaths(cfg.Paths)
	cfg.Env = normalizeEnv(cfg.Env)
	cfg.Theme = normalizeTheme(cfg.Theme)
}

func applyRawRedisConfig(current RedisRuntimeConfig, raw rawAppConfig) RedisRuntimeConfig {
	cfg := current
	r := raw.Gateway.Redis

	if v := strings.TrimSpace(r.URL); v != "" {
		cfg.URL = v
	}
	if v := strings.TrimSpace(raw.RedisURL); v != "" {
		cfg.URL = v
	}
	if v := strings.TrimSpace(r.Host); v != "" {
		cfg.Host = v
	}
	if r.Port != 0 {
		cfg.Port = r.Port
	}
	if v := strings.TrimSpace(r.Username); v != "" {
		cfg.Username = v
	}
	if v := strings.TrimSpace(r.Password); v != "" {
		cfg.Password = v
	}
	if r.DB != nil {
		cfg.DB = *r.DB
	}
	if r.TLS != nil {
		cfg.TLS = *r.TLS
	}
	if v := strings.TrimSpace(r.Scheme); v != "" {
		cfg.Scheme = v
	}
	if r.Params != nil {
		cfg.Params = copyStringMap(r.Params)
	}

	return normalizeRedisConfig(cfg)
}

func applyEnvOverrides(cfg *AppConfig, env envOverrides) {
	if env.Env != nil {
		cfg.Env = normalizeEnv(*env.Env)
	}
	if env.Theme != nil {
		cfg.Theme = normalizeTheme(*env.Theme)
	}
	if env.BackgroundMode != nil {
		cfg.Background.Mode = *env.BackgroundMode
	}
	if env.Surface != nil {
		cfg.Background.Surface = *env.Surface
	}
	if env.FPS != nil {
		cfg.Background.FPS = *env.FPS
	}
	cfg.Background = normalizeBackgroundConfig(cfg.Background)
	if env.GatewayEnable != nil {
		cfg.Gateway.Enable = *env.GatewayEnable
	}
	if env.GatewayChannel != nil && strings.TrimSpace(*env.GatewayChannel) != "" {
		cfg.Gateway.Channel = strings.TrimSpace(*env.GatewayChannel)
	}
	if env.RedisURL != nil {
		cfg.Gateway.Redis.URL = *env.RedisURL
		cfg.Gateway.Redis = normalizeRedisConfig(cfg.Gateway.Redis)
	}
	if env.Owner != nil {
		cfg.Site.Owner = *env.Owner
	}
	if env.WebURL != nil {
		cfg.Site.WebURL = *env.WebURL
	}
	cfg.Site = normalizeSite(cfg.Site)
	if env.LogDir != nil {
		cfg.Paths.Logs = *env.LogDir
	}
	cfg.Paths = normalizeRuntimePaths(cfg.Paths)
}

func (c *AppConfig) validate() error {
	if _, err := background.ParseMode(c.Background.Mode); err != nil {
		return fmt.Errorf("background.mode: %w", err)
	}
	switch c.Background.Surface {
	case SurfaceTerminal, SurfaceWindow:
	default:
		return fmt.Errorf("background.surface %q, expected %q or %q", c.Background.Surface, SurfaceTerminal, SurfaceWindow)
	}
	if c.Background.FPS < 1 || c.Background.FPS > 240 {
		return fmt.Errorf("background.fps %d, expected 1-240", c.Background.FPS)
	}
	if c.Background.Width < 1 || c.Background.Height < 1 {
		return fmt.Errorf("background size %dx%d, expected positive", c.Background.Width, c.Background.Height)
	}
	if c.Gateway.Redis.Port < 1 || c.Gateway.Redis.Port > 65535 {
		return fmt.Errorf("gateway.redis.port %d, expected 1-65535", c.Gateway.Redis.Port)
	}
	if c.Gateway.Redis.DB < 0 {
		return fmt.Errorf("gateway.redis.db %d, expected >= 0", c.Gateway.Redis.DB)
	}
	return nil
}

func (c *AppConfig) IsDev() bool {
	return strings.EqualFold(c.Env, defaultEnv)
}

// BackgroundMode returns the validated background mode.
func (c *AppConfig) BackgroundMode() background.Mode {
	mode, err := background.ParseMode(c.Background.Mode)
	if err != nil {
		return background.ModeAuto
	}
	return mode
}

// LogDir is paths.logs, relative paths taken from the config file's
// directory.
func (c *AppConfig) LogDir() string {
	if c == nil {
		return resolvePath("", "", defaultLogsSubdir)
	}
	return resolvePath(c.baseDir, c.Paths.Logs, defaultLogsSubdir)
}
