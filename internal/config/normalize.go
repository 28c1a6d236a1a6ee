package config

import "strings"

func normalizeRedisConfig(cfg RedisRuntimeConfig) RedisRuntimeConfig {
	cfg.URL = normalizeRedisRawURL(cfg.URL)
	cfg.Host = strings.TrimSpace(cfg.Host)
	cfg.Username = strings.TrimSpace(cfg.Username)
	cfg.Password = strings.TrimSpace(cfg.Password)
	cfg.Scheme = strings.ToLower(strings.TrimSpace(cfg.Scheme))

	if cfg.Host == "" && cfg.URL == "" {
		cfg.Host = defaultRedisHost
	}
	if cfg.Port == 0 {
		cfg.Port = defaultRedisPort
	}
	if cfg.Scheme == "" {
		if cfg.TLS {
			cfg.Scheme = "rediss"
		} else {
			cfg.Scheme = "redis"
		}
	}
	if cfg.Params != nil {
		cfg.Params = copyStringMap(cfg.Params)
	}
	return cfg
}

func normalizeRedisRawURL(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}
	if strings.HasPrefix(trimmed, "redis://") || strings.HasPrefix(trimmed, "rediss://") {
		return trimmed
	}
	return "redis://" + trimmed
}

func normalizeBackgroundConfig(cfg BackgroundConfig) BackgroundConfig {
	cfg.Mode = strings.ToLower(strings.TrimSpace(cfg.Mode))
	if cfg.Mode == "" {
		cfg.Mode = defaultMode
	}
	cfg.Surface = strings.ToLower(strings.TrimSpace(cfg.Surface))
	if cfg.Surface == "" {
		cfg.Surface = defaultSurface
	}
	if cfg.FPS == 0 {
		cfg.FPS = defaultFPS
	}
	if cfg.Width == 0 {
		cfg.Width = defaultWindowWidth
	}
	if cfg.Height == 0 {
		cfg.Height = defaultWindowHeight
	}
	return cfg
}

func normalizeEnv(env string) string {
	trimmed := strings.ToLower(strings.TrimSpace(env))
	if trimmed == "" {
		return defaultEnv
	}
	return trimmed
}

func normalizeTheme(theme string) string {
	trimmed := strings.ToLower(strings.TrimSpace(theme))
	if trimmed == "" {
		return defaultTheme
	}
	return trimmed
}

func normalizeSite(site SiteConfig) SiteConfig {
	site.Owner = strings.TrimSpace(site.Owner)
	site.WebURL = strings.TrimRight(strings.TrimSpace(site.WebURL), "/")
	return site
}

func normalizeRuntimePaths(paths RuntimePathsConfig) RuntimePathsConfig {
	paths.Logs = strings.TrimSpace(paths.Logs)
	return paths
}

func copyStringMap(input map[string]string) map[string]string {
	if input == nil {
		return nil
	}
	out := make(map[string]string, len(input))
	for key, value := range input {
		k := strings.TrimSpace(key)
		v := strings.TrimSpace(value)
		if k != "" && v != "" {
			out[k] = v
		}
	}
	return out
}
