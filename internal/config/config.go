package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds application configuration
type Config struct {
	Env       string
	LogLevel  string
	LogFormat string

	// Demo credentials. There is no real credential backend; these gate the
	// admin login and the simulated doctor two-factor step.
	AdminPassword string
	OTPCode       string

	// Chat responder typing simulation window, [min, max).
	ComposeDelayMin time.Duration
	ComposeDelayMax time.Duration

	// Decorative UI knobs.
	CarouselPeriod time.Duration
	CarouselSlides int
	ParticleCount  int
}

// Load reads configuration from environment variables
func Load() *Config {
	return &Config{
		Env:             getEnv("ENV", "development"),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
		LogFormat:       getEnv("LOG_FORMAT", "json"),
		AdminPassword:   getEnv("ADMIN_PASSWORD", "admin@1234"),
		OTPCode:         getEnv("OTP_CODE", "123456"),
		ComposeDelayMin: getEnvAsDuration("COMPOSE_DELAY_MIN", 1000*time.Millisecond),
		ComposeDelayMax: getEnvAsDuration("COMPOSE_DELAY_MAX", 3000*time.Millisecond),
		CarouselPeriod:  getEnvAsDuration("CAROUSEL_PERIOD", 4000*time.Millisecond),
		CarouselSlides:  getEnvAsInt("CAROUSEL_SLIDES", 3),
		ParticleCount:   getEnvAsInt("PARTICLE_COUNT", 20),
	}
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsInt retrieves an environment variable as an integer or returns a default value
func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}
	if value, err := time.ParseDuration(valueStr); err == nil {
		return value
	}
	return defaultValue
}
