package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerPort    int
	DataPath      string
	JWTSecretKey  string
	TokenDuration time.Duration
	LoginDelay    time.Duration
	RegisterDelay time.Duration
}

func getEnv(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func parseDuration(value string, fallback time.Duration) time.Duration {
	duration, err := time.ParseDuration(value)
	if err != nil {
		return fallback
	}
	return duration
}

func LoadConfig() *Config {
	err := godotenv.Load()
	if err != nil {
		log.Println("Warning: .env file not found, using environment variables")
	}

	return &Config{
		ServerPort:    getEnvAsInt("SERVER_PORT", 8080),
		DataPath:      getEnv("DATA_PATH", "data/glassblog.db"),
		JWTSecretKey:  getEnv("JWT_SECRET_KEY", ""),
		TokenDuration: parseDuration(getEnv("TOKEN_DURATION", "24h"), 24*time.Hour),
		// fixed artificial delays standing in for the network round trip
		LoginDelay:    parseDuration(getEnv("LOGIN_DELAY", "500ms"), 500*time.Millisecond),
		RegisterDelay: parseDuration(getEnv("REGISTER_DELAY", "800ms"), 800*time.Millisecond),
	}
}
