package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	ProviderAnthropic = "anthropic"
	ProviderGemini    = "gemini"
)

type Config struct {
	Server         ServerConfig
	LLM            LLMConfig
	CircuitBreaker CircuitBreakerConfig
	Upload         UploadConfig
	Worker         WorkerConfig
	Analysis       AnalysisConfig
}

type ServerConfig struct {
	Port string
	Env  string
}

// LLMConfig is loaded once at startup and handed to the provider constructor.
type LLMConfig struct {
	Provider  string
	APIKey    string
	Model     string
	MaxTokens int
	Timeout   time.Duration
}

type CircuitBreakerConfig struct {
	Enabled          bool
	MaxRequests      int
	Interval         time.Duration
	Timeout          time.Duration
	MinRequests      int
	FailureThreshold float64
}

type UploadConfig struct {
	MaxFileSize int64
}

type WorkerConfig struct {
	Concurrency int
	QueueSize   int
}

type AnalysisConfig struct {
	StrictSchema bool
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found. Using default values.")
	}

	provider := strings.ToLower(getEnv("LLM_PROVIDER", ProviderAnthropic))

	return &Config{
		Server: ServerConfig{
			Port: getEnv("PORT", "8000"),
			Env:  getEnv("ENV", "development"),
		},
		LLM: LLMConfig{
			Provider:  provider,
			APIKey:    getEnv("LLM_API_KEY", defaultAPIKey(provider)),
			Model:     getEnv("LLM_MODEL", defaultModel(provider)),
			MaxTokens: getEnvAsInt("LLM_MAX_TOKENS", 1000),
			Timeout:   getEnvAsDuration("LLM_TIMEOUT", "60s"),
		},
		CircuitBreaker: CircuitBreakerConfig{
			Enabled:          getEnvAsBool("CB_ENABLED", true),
			MaxRequests:      getEnvAsInt("CB_MAX_REQUESTS", 3),
			Interval:         getEnvAsDuration("CB_INTERVAL", "60s"),
			Timeout:          getEnvAsDuration("CB_TIMEOUT", "30s"),
			MinRequests:      getEnvAsInt("CB_MIN_REQUESTS", 5),
			FailureThreshold: getEnvAsFloat("CB_FAILURE_THRESHOLD", 0.6),
		},
		Upload: UploadConfig{
			MaxFileSize: getEnvAsInt64("MAX_FILE_SIZE", 10485760),
		},
		Worker: WorkerConfig{
			Concurrency: getEnvAsInt("WORKER_CONCURRENCY", 4),
			QueueSize:   getEnvAsInt("WORKER_QUEUE_SIZE", 100),
		},
		Analysis: AnalysisConfig{
			StrictSchema: getEnvAsBool("ANALYSIS_STRICT_SCHEMA", false),
		},
	}
}

// Validate reports configuration that would make every analysis fall back.
func (c *Config) Validate() error {
	switch c.LLM.Provider {
	case ProviderAnthropic, ProviderGemini:
	default:
		return fmt.Errorf("unsupported LLM provider: %q", c.LLM.Provider)
	}

	if c.LLM.APIKey == "" {
		return fmt.Errorf("LLM_API_KEY is required for provider %s", c.LLM.Provider)
	}

	if c.LLM.MaxTokens <= 0 {
		return fmt.Errorf("LLM_MAX_TOKENS must be positive, got %d", c.LLM.MaxTokens)
	}

	if c.CircuitBreaker.Enabled {
		if c.CircuitBreaker.MaxRequests <= 0 {
			return fmt.Errorf("CB_MAX_REQUESTS must be positive, got %d", c.CircuitBreaker.MaxRequests)
		}
		if c.CircuitBreaker.MinRequests <= 0 {
			return fmt.Errorf("CB_MIN_REQUESTS must be positive, got %d", c.CircuitBreaker.MinRequests)
		}
	}

	if c.Worker.Concurrency <= 0 {
		return fmt.Errorf("WORKER_CONCURRENCY must be positive, got %d", c.Worker.Concurrency)
	}

	return nil
}

func defaultModel(provider string) string {
	if provider == ProviderGemini {
		return "gemini-2.5-flash"
	}
	return "claude-sonnet-4-5"
}

// defaultAPIKey falls back to the provider's conventional variable.
func defaultAPIKey(provider string) string {
	if provider == ProviderGemini {
		return getEnv("GEMINI_API_KEY", "")
	}
	return getEnv("ANTHROPIC_API_KEY", "")
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsInt64(key string, defaultValue int64) int64 {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseInt(valueStr, 10, 64); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseFloat(valueStr, 64); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseBool(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue string) time.Duration {
	valueStr := getEnv(key, defaultValue)
	if duration, err := time.ParseDuration(valueStr); err == nil {
		return duration
	}
	duration, _ := time.ParseDuration(defaultValue)
	return duration
}
