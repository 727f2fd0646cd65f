package app

import (
	"fmt"
	"time"

	"esgweb/internal/env"
)

type config struct {
	port              string
	backendURL        string
	redisAddr         string
	redisPassword     string
	redisDB           int
	redisChanSize     int
	lruCacheSize      int
	lruChanSize       int
	partnerAPITimeout time.Duration
	registryTimeout   time.Duration
	lookupTimeout     time.Duration
	updatePeriod      time.Duration
	warmupSaverPeriod time.Duration
	sessionTTL        time.Duration
	toastTTL          time.Duration
	loginRateLimit    string
	chromeBin         string
	reportWidth       int
	reportTimeout     time.Duration
	pageSize          int
	secureCookies     bool
	shutdownTimeout   time.Duration
}

// loadConfig reads the process environment, the first invalid value is reported by its key
func loadConfig() (config, error) {
	cfg := config{
		port:           env.GetEnv("PORT", "8080"),
		backendURL:     env.GetEnv("CSDDD_BACKEND_URL", "http://localhost:8081"),
		redisAddr:      env.GetEnv("REDIS_ADDR", "localhost:6379"),
		redisPassword:  env.GetEnv("REDIS_PASSWORD", ""),
		loginRateLimit: env.GetEnv("LOGIN_RATE_LIMIT", "10-M"),
		chromeBin:      env.GetEnv("CHROME_BIN", ""),
	}

	ints := []struct {
		key string
		def int
		dst *int
	}{
		{"REDIS_DB", 0, &cfg.redisDB},
		{"REDIS_CHAN_SIZE", 1000, &cfg.redisChanSize},
		{"LRU_CACHE_SIZE", 1000, &cfg.lruCacheSize},
		{"LRU_CHAN_SIZE", 1000, &cfg.lruChanSize},
		{"REPORT_WIDTH_PX", 1024, &cfg.reportWidth},
		{"PAGE_SIZE", 20, &cfg.pageSize},
	}
	for _, v := range ints {
		value, err := env.GetInt(v.key, v.def)
		if err != nil {
			return config{}, fmt.Errorf("can't parse %s: %w", v.key, err)
		}
		if value < 0 {
			return config{}, fmt.Errorf("%s must not be negative", v.key)
		}
		*v.dst = value
	}

	durations := []struct {
		key string
		def time.Duration
		dst *time.Duration
	}{
		{"PARTNER_API_TIMEOUT", 5 * time.Second, &cfg.partnerAPITimeout},
		{"REGISTRY_TIMEOUT", time.Second, &cfg.registryTimeout},
		{"V1_LOOKUP_TIMEOUT", 100 * time.Millisecond, &cfg.lookupTimeout},
		{"UPDATE_CACHE_PERIOD", 24 * time.Hour, &cfg.updatePeriod},
		{"WARMUP_SAVER_PERIOD", time.Hour, &cfg.warmupSaverPeriod},
		{"SESSION_TTL", 8 * time.Hour, &cfg.sessionTTL},
		{"TOAST_TTL", time.Minute, &cfg.toastTTL},
		{"REPORT_TIMEOUT", 30 * time.Second, &cfg.reportTimeout},
		{"SHUTDOWN_TIMEOUT", 10 * time.Second, &cfg.shutdownTimeout},
	}
	for _, v := range durations {
		value, err := env.GetDuration(v.key, v.def)
		if err != nil {
			return config{}, fmt.Errorf("can't parse %s: %w", v.key, err)
		}
		*v.dst = value
	}

	secure, err := env.GetBool("SECURE_COOKIES", false)
	if err != nil {
		return config{}, fmt.Errorf("can't parse SECURE_COOKIES: %w", err)
	}
	cfg.secureCookies = secure

	if cfg.pageSize == 0 {
		return config{}, fmt.Errorf("PAGE_SIZE must be positive")
	}
	if cfg.reportWidth == 0 {
		return config{}, fmt.Errorf("REPORT_WIDTH_PX must be positive")
	}
	if cfg.warmupSaverPeriod <= 0 {
		return config{}, fmt.Errorf("WARMUP_SAVER_PERIOD must be positive")
	}
	return cfg, nil
}
