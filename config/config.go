package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds frontend settings shared by the blockfall binaries.
type Config struct {
	// Scale is the window size multiplier for the ebiten frontend.
	Scale int
	// Muted starts the game with audio off.
	Muted bool
	// Haptics enables vibration feedback where the platform supports it.
	Haptics bool
	// DebugUI shows the ImGui inspector.
	DebugUI bool
	// Seed fixes the piece sequence. Zero picks a random seed.
	Seed uint64
	// Volume is the tone amplitude in [0, 1].
	Volume float64
}

// Default returns the settings used when nothing is configured.
func Default() Config {
	return Config{
		Scale:   2,
		Haptics: true,
		Volume:  0.3,
	}
}

// Load reads .env files (if present) and then the environment.
// Files that do not exist are skipped; other read errors are returned.
func Load(files ...string) (Config, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Default(), fmt.Errorf("load %s: %w", f, err)
		}
	}
	return FromEnv(), nil
}

// FromEnv builds a Config from BLOCKFALL_* variables, falling back to
// Default for anything unset or invalid.
func FromEnv() Config {
	def := Default()

	cfg := Config{
		Scale:   GetEnvAsInt("BLOCKFALL_SCALE", def.Scale),
		Muted:   GetEnvAsBool("BLOCKFALL_MUTED", def.Muted),
		Haptics: GetEnvAsBool("BLOCKFALL_HAPTICS", def.Haptics),
		DebugUI: GetEnvAsBool("BLOCKFALL_DEBUG_UI", def.DebugUI),
		Seed:    uint64(GetEnvAsInt("BLOCKFALL_SEED", int(def.Seed))),
		Volume:  GetEnvAsFloat("BLOCKFALL_VOLUME", def.Volume),
	}

	if cfg.Scale < 1 {
		log.Printf("Invalid BLOCKFALL_SCALE %d, using default: %d", cfg.Scale, def.Scale)
		cfg.Scale = def.Scale
	}
	if cfg.Volume < 0 || cfg.Volume > 1 {
		log.Printf("Invalid BLOCKFALL_VOLUME %g, using default: %g", cfg.Volume, def.Volume)
		cfg.Volume = def.Volume
	}

	return cfg
}

func GetEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func GetEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(strings.TrimSpace(valueStr))
	if err != nil {
		log.Printf("Invalid integer value for %s: %s, using default: %d", key, valueStr, defaultValue)
		return defaultValue
	}
	return value
}

func GetEnvAsBool(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseBool(strings.TrimSpace(valueStr))
	if err != nil {
		log.Printf("Invalid boolean value for %s: %s, using default: %t", key, valueStr, defaultValue)
		return defaultValue
	}
	return value
}

func GetEnvAsFloat(key string, defaultValue float64) float64 {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseFloat(strings.TrimSpace(valueStr), 64)
	if err != nil {
		log.Printf("Invalid float value for %s: %s, using default: %g", key, valueStr, defaultValue)
		return defaultValue
	}
	return value
}
