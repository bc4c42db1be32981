package config

import (
	"log"
	"os"
	"strconv"
	"strings"
)

// Config holds application configuration.
type Config struct {
	Port            string
	Env             string
	CORSAllowOrigin []string
	LogLevel        string
	LogFormat       string

	DatabaseURL      string
	RunMigrations    bool
	ScoringPreset    string
	EntityRecognizer bool

	SamplesStore string
	SamplesDir   string
	AWSRegion    string
	S3Bucket     string
	S3Prefix     string

	RateLimitRPS   float64
	RateLimitBurst int
	MaxUploadBytes int64

	LinkedInAPIBase string
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	// Best-effort load of local env files for dev convenience.
	loadEnvFiles(".env", "cmd/.env")

	env := normalizeEnv(getEnv("ENV", "dev"))

	cfg := Config{
		Port:             getEnv("PORT", "8080"),
		Env:              env,
		CORSAllowOrigin:  splitAndTrim(getEnv("CORS_ALLOW_ORIGINS", "http://localhost:5173")),
		LogLevel:         getEnv("LOG_LEVEL", "info"),
		LogFormat:        normalizeLogFormat(getEnv("LOG_FORMAT", defaultLogFormat(env))),
		DatabaseURL:      os.Getenv("DATABASE_URL"),
		RunMigrations:    getBool("RUN_MIGRATIONS", false),
		ScoringPreset:    strings.ToLower(strings.TrimSpace(getEnv("SCORING_PRESET", "default"))),
		EntityRecognizer: getBool("ENTITY_RECOGNIZER", false),
		SamplesStore:     normalizeStoreType(getEnv("SAMPLES_STORE", "local")),
		SamplesDir:       getEnv("SAMPLES_DIR", "./samples"),
		AWSRegion:        getEnv("AWS_REGION", ""),
		S3Bucket:         getEnv("S3_BUCKET", ""),
		S3Prefix:         getEnv("S3_PREFIX", ""),
		RateLimitRPS:     getFloat("RATE_LIMIT_RPS", 5),
		RateLimitBurst:   getInt("RATE_LIMIT_BURST", 20),
		MaxUploadBytes:   int64(getInt("MAX_UPLOAD_BYTES", 5<<20)),
		LinkedInAPIBase:  strings.TrimRight(getEnv("LINKEDIN_API_BASE", "https://api.linkedin.com"), "/"),
	}

	if cfg.SamplesStore == "s3" && cfg.S3Bucket == "" {
		log.Printf("SAMPLES_STORE=s3 requires S3_BUCKET; falling back to local samples")
		cfg.SamplesStore = "local"
	}
	return cfg
}

func getEnv(key, def string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return def
}

func getBool(key string, def bool) bool {
	raw := strings.TrimSpace(os.Getenv(key))
	switch strings.ToLower(raw) {
	case "":
		return def
	case "on", "yes":
		return true
	case "off", "no":
		return false
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		log.Printf("invalid %s=%q, using %t", key, raw, def)
		return def
	}
	return v
}

func getInt(key string, def int) int {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v <= 0 {
		log.Printf("invalid %s=%q, using %d", key, raw, def)
		return def
	}
	return v
}

func getFloat(key string, def float64) float64 {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || v <= 0 {
		log.Printf("invalid %s=%q, using %g", key, raw, def)
		return def
	}
	return v
}

func splitAndTrim(raw string) []string {
	parts := strings.Split(raw, ",")
	var out []string
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func normalizeEnv(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "production", "prod":
		return "production"
	case "staging":
		return "staging"
	case "local":
		return "local"
	case "development", "dev":
		return "dev"
	default:
		return "dev"
	}
}

func normalizeStoreType(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "s3":
		return "s3"
	default:
		return "local"
	}
}

func defaultLogFormat(env string) string {
	if env == "dev" || env == "local" {
		return "pretty"
	}
	return "json"
}

func normalizeLogFormat(raw string) string {
	if strings.EqualFold(strings.TrimSpace(raw), "pretty") {
		return "pretty"
	}
	return "json"
}
