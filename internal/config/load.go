// internal/config/load.go
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// EnvFile — необязательный файл с переменными окружения POP_*.
const EnvFile = ".env"

// Load собирает конфигурацию: значения по умолчанию, затем JSON-файл (если path не пуст),
// затем переменные окружения POP_*. Результат проверяется через Validate.
func Load(path string) (Config, error) {
	if err := godotenv.Load(EnvFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("failed to load %s: %w", EnvFile, err)
	}

	cfg := Default()
	if path != "" {
		file, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := json.Unmarshal(file, &cfg); err != nil {
			return Config{}, fmt.Errorf("failed to unmarshal config: %w", err)
		}
		log.Printf("Loaded config from %s", path)
	}

	cfg = applyEnv(cfg)
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func applyEnv(cfg Config) Config {
	cfg.Variant = getEnv("POP_VARIANT", cfg.Variant)
	cfg.ViewportWidth = getEnvInt("POP_WIDTH", cfg.ViewportWidth)
	cfg.ViewportHeight = getEnvInt("POP_HEIGHT", cfg.ViewportHeight)
	cfg.SpawnDelayTicks = getEnvInt("POP_TARGET_DELAY", cfg.SpawnDelayTicks)
	cfg.MaxTargets = getEnvInt("POP_TARGET_MAX", cfg.MaxTargets)
	cfg.Bounciness = getEnvFloat("POP_BOUNCINESS", cfg.Bounciness)
	cfg.Gravity = getEnvFloat("POP_GRAVITY", cfg.Gravity)
	cfg.HitRadius = getEnvFloat("POP_HIT_RADIUS", cfg.HitRadius)
	cfg.TargetSize = getEnvFloat("POP_TARGET_SIZE", cfg.TargetSize)
	cfg.DustParticles = getEnvInt("POP_DUST", cfg.DustParticles)
	cfg.Seed = int64(getEnvInt("POP_SEED", int(cfg.Seed)))
	cfg.Sound = getEnvBool("POP_SOUND", cfg.Sound)
	return cfg
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
		log.Printf("ignoring %s=%q: not an integer", key, v)
	}
	return fallback
}

func getEnvFloat(key string, fallback float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
		log.Printf("ignoring %s=%q: not a number", key, v)
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
		log.Printf("ignoring %s=%q: not a boolean", key, v)
	}
	return fallback
}
