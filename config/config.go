package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"go.uber.org/zap"
)

// DefaultSearchTimeout bounds the self-drive car search call when
// SEARCH_TIMEOUT_SECONDS is not set.
const DefaultSearchTimeout = 30 * time.Second

// Config holds the project config values
type Config struct {
	BaseURL       string
	Environment   string
	SearchTimeout time.Duration
}

// New sets up all config related services
func New() *Config {

	//setup zap logger and replace default logger
	logger, err := setLogger(os.Getenv("APP_ENV"))
	if err != nil {
		logger = zap.NewExample()
	}
	defer logger.Sync()
	_ = zap.ReplaceGlobals(logger)

	return &Config{
		BaseURL:       os.Getenv("API_BASE_URL"),
		Environment:   os.Getenv("APP_ENV"),
		SearchTimeout: searchTimeout(),
	}
}

func searchTimeout() time.Duration {
	secs, err := strconv.Atoi(os.Getenv("SEARCH_TIMEOUT_SECONDS"))
	if err != nil || secs <= 0 {
		return DefaultSearchTimeout
	}
	return time.Duration(secs) * time.Second
}

// AlertError is a useful function that will log the failure and return the
// human-readable alert string the UI surfaces for a given message and err
func AlertError(message string, err error) string {
	zap.S().With(err).Error(message)
	return fmt.Sprintf("%s, %v", message, err)
}
