package infra

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config represents application configuration loaded from environment variables.
type Config struct {
	AppEnv             string
	Port               string
	ProviderAPIKey     string
	CORSAllowedOrigins []string
	HTTPReadTimeout    time.Duration
	HTTPWriteTimeout   time.Duration
	HTTPIdleTimeout    time.Duration
	RateLimitPerMin    int
	WorkerCount        int
	JobQueueSize       int
	StageTimeout       time.Duration
	EnhanceDelay       time.Duration
	VisualDelay        time.Duration
	AudioDelay         time.Duration
	FusionDelay        time.Duration
	EstimatedTime      int
	ModelCatalogPath   string
}

// LoadConfig loads configuration from environment variables and applies
// defaults where needed. The provider credential falls back to a demo
// placeholder so the simulated providers keep working without one.
func LoadConfig() (*Config, error) {
	cfg := &Config{
		AppEnv:             getEnv("APP_ENV", "development"),
		Port:               getEnv("PORT", "5000"),
		ProviderAPIKey:     getEnv("OPENROUTER_API_KEY", "demo-key"),
		CORSAllowedOrigins: splitList(os.Getenv("CORS_ALLOWED_ORIGINS")),
		HTTPReadTimeout:    time.Second * time.Duration(getEnvInt("HTTP_READ_TIMEOUT_SECONDS", 15)),
		HTTPWriteTimeout:   time.Second * time.Duration(getEnvInt("HTTP_WRITE_TIMEOUT_SECONDS", 60)),
		HTTPIdleTimeout:    time.Second * time.Duration(getEnvInt("HTTP_IDLE_TIMEOUT_SECONDS", 60)),
		RateLimitPerMin:    getEnvInt("RATE_LIMIT_PER_MINUTE", 60),
		WorkerCount:        getEnvInt("WORKER_COUNT", 4),
		JobQueueSize:       getEnvInt("JOB_QUEUE_SIZE", 64),
		StageTimeout:       time.Second * time.Duration(getEnvInt("STAGE_TIMEOUT_SECONDS", 30)),
		EnhanceDelay:       time.Millisecond * time.Duration(getEnvInt("ENHANCE_DELAY_MS", 500)),
		VisualDelay:        time.Millisecond * time.Duration(getEnvInt("VISUAL_DELAY_MS", 2000)),
		AudioDelay:         time.Millisecond * time.Duration(getEnvInt("AUDIO_DELAY_MS", 1500)),
		FusionDelay:        time.Millisecond * time.Duration(getEnvInt("FUSION_DELAY_MS", 1000)),
		EstimatedTime:      getEnvInt("ESTIMATED_TIME_SECONDS", 30),
		ModelCatalogPath:   os.Getenv("FUSION_MODELS_PATH"),
	}

	if cfg.WorkerCount < 1 {
		return nil, fmt.Errorf("WORKER_COUNT must be at least 1")
	}
	if cfg.JobQueueSize < 1 {
		return nil, fmt.Errorf("JOB_QUEUE_SIZE must be at least 1")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return fallback
}

func splitList(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
