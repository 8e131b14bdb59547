package internal

import (
	"os"
	"strconv"
)

// Config holds the runtime knobs. The tracked symbol set is not here:
// it is compiled in and changing it means editing the symbols table.
type Config struct {
	MarketDataURL string
	WindowWidth   int
	WindowHeight  int
	LogDir        string
}

func LoadConfig() *Config {
	return &Config{
		MarketDataURL: getEnvOrDefault("MARKET_DATA_URL", "http://localhost:8000/api/market-data"),
		WindowWidth:   getEnvAsIntOrDefault("WINDOW_WIDTH", 960),
		WindowHeight:  getEnvAsIntOrDefault("WINDOW_HEIGHT", 720),
		LogDir:        getEnvOrDefault("LOG_DIR", "logs"),
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}
