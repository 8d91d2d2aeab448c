package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Port string

	// Auth
	APIKey string

	// Worker pool
	WorkerCount  int
	MaxQueueSize int

	// Upload limits
	MaxUploadBytes int64

	// Archive reading defaults
	TabWidth int
	MaxDepth int

	// Job state
	JobTTL time.Duration

	// PDF
	PDFFallbackPdftotext bool
}

// fileConfig mirrors Config for the optional YAML overlay named by
// DOSSIER_CONFIG. Environment variables still win over file values.
type fileConfig struct {
	Port                 string `yaml:"port"`
	APIKey               string `yaml:"api_key"`
	WorkerCount          int    `yaml:"worker_count"`
	MaxQueueSize         int    `yaml:"max_queue_size"`
	MaxUploadBytes       int64  `yaml:"max_upload_bytes"`
	TabWidth             int    `yaml:"tab_width"`
	MaxDepth             int    `yaml:"max_depth"`
	JobTTL               string `yaml:"job_ttl"`
	PDFFallbackPdftotext *bool  `yaml:"pdf_fallback_pdftotext"`
}

func Load() (Config, error) {
	fc, err := loadFile(os.Getenv("DOSSIER_CONFIG"))
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		Port: envOr("DOSSIER_PORT", strOr(fc.Port, "8087")),

		APIKey: envOr("DOSSIER_API_KEY", fc.APIKey),

		WorkerCount:  envInt("DOSSIER_WORKER_COUNT", intOr(fc.WorkerCount, 4)),
		MaxQueueSize: envInt("DOSSIER_MAX_QUEUE_SIZE", intOr(fc.MaxQueueSize, 100)),

		MaxUploadBytes: envInt64("DOSSIER_MAX_UPLOAD_BYTES", int64Or(fc.MaxUploadBytes, 20971520)), // 20MB

		TabWidth: envInt("DOSSIER_TAB_WIDTH", intOr(fc.TabWidth, 8)),
		MaxDepth: envInt("DOSSIER_MAX_DEPTH", intOr(fc.MaxDepth, 64)),

		JobTTL: envDuration("DOSSIER_JOB_TTL", durationOr(fc.JobTTL, 1*time.Hour)),

		PDFFallbackPdftotext: envBool("DOSSIER_PDF_FALLBACK_PDFTOTEXT", boolOr(fc.PDFFallbackPdftotext, true)),
	}

	if cfg.WorkerCount <= 0 {
		cfg.WorkerCount = 4
	}
	if cfg.MaxQueueSize <= 0 {
		cfg.MaxQueueSize = 100
	}
	if cfg.MaxUploadBytes <= 0 {
		cfg.MaxUploadBytes = 20971520
	}
	if cfg.TabWidth <= 0 {
		cfg.TabWidth = 8
	}
	if cfg.MaxDepth <= 0 {
		cfg.MaxDepth = 64
	}
	if cfg.JobTTL <= 0 {
		cfg.JobTTL = 1 * time.Hour
	}

	return cfg, nil
}

func (c Config) Validate() error {
	if c.APIKey == "" {
		return fmt.Errorf("DOSSIER_API_KEY is required")
	}
	return nil
}

func loadFile(path string) (fileConfig, error) {
	var fc fileConfig
	if path == "" {
		return fc, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return fc, fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return fc, fmt.Errorf("parse config file %s: %w", path, err)
	}
	return fc, nil
}

func strOr(v, fallback string) string {
	if v != "" {
		return v
	}
	return fallback
}

func intOr(v, fallback int) int {
	if v != 0 {
		return v
	}
	return fallback
}

func int64Or(v, fallback int64) int64 {
	if v != 0 {
		return v
	}
	return fallback
}

func boolOr(v *bool, fallback bool) bool {
	if v != nil {
		return *v
	}
	return fallback
}

func durationOr(v string, fallback time.Duration) time.Duration {
	if v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envInt64(key string, fallback int64) int64 {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return n
		}
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
