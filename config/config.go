package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all application configuration loaded from environment variables.
type Config struct {
	// BigQuery destination, assembled into project.dataset.table.
	ProjectID string
	DatasetID string
	TableID   string

	// Target site.
	BaseURL   string
	UserAgent string

	// Search filter sent to the list page.
	SearchRegion string
	SearchKind   string
	SearchSort   string

	MaxRetries    int
	RetryDelayMs  int
	HTTPTimeoutMs int

	APIPort int

	OutputDir string
	StatsDir  string
	LogDir    string
}

// Load reads the .env file and returns a populated Config struct.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("[config] No .env file found, falling back to system env vars")
	}

	return &Config{
		ProjectID: getEnv("PROJECT_ID", ""),
		DatasetID: getEnv("DATASET_ID", ""),
		TableID:   getEnv("TABLE_ID", ""),

		BaseURL: getEnv("BASE_URL", "https://rent.591.com.tw"),
		UserAgent: getEnv("USER_AGENT",
			"Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 Chrome/129.0.0.0 Safari/537.36"),

		SearchRegion: getEnv("SEARCH_REGION", "8"),
		SearchKind:   getEnv("SEARCH_KIND", "0"),
		SearchSort:   getEnv("SEARCH_SORT", "money_desc"),

		MaxRetries:    getEnvInt("MAX_RETRIES", 3),
		RetryDelayMs:  getEnvInt("RETRY_DELAY_MS", 2000),
		HTTPTimeoutMs: getEnvInt("HTTP_TIMEOUT_MS", 30000),

		APIPort: getEnvInt("API_PORT", 8080),

		OutputDir: getEnv("OUTPUT_DIR", "./output"),
		StatsDir:  getEnv("STATS_DIR", "./stats"),
		LogDir:    getEnv("LOG_DIR", "./logs"),
	}
}

// TablePath returns the fully-qualified BigQuery table path.
func (c *Config) TablePath() string {
	return c.ProjectID + "." + c.DatasetID + "." + c.TableID
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if val := os.Getenv(key); val != "" {
		n, err := strconv.Atoi(val)
		if err == nil {
			return n
		}
	}
	return fallback
}
