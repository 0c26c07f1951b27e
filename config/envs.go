package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Grid sizes offered by the shell menu
const (
	MinMenuSize = 10
	MaxMenuSize = 40
)

// Config holds the application's configuration values.
type Config struct {
	Rows, Columns int    // Initial grid size for the shell menu
	Diagonal      bool   // Initial diagonal movement toggle
	Palette       string // Palette name
	StepDelayMs   int    // Delay between animated settlements, 0 draws at once
	LogFile       string // Shell log destination, empty discards

	AudioEnabled bool
	MasterVolume float64 // 0.0 - 1.0

	HTTPAddr string // Listen address for the HTTP driver
	BaseURL  string // Base URL for API routes
	GinMode  string // Mode for the Gin framework (e.g., release, debug, test)
	MaxCells int    // Largest rows*columns accepted per request

	RedisAddr       string // Empty uses an in-process cache
	RedisDB         int
	CacheTTLSeconds int
}

// Load reads an optional .env file, then the environment.
// Unset or malformed values fall back to defaults.
func Load(files ...string) Config {
	if err := godotenv.Load(files...); err != nil {
		log.Printf("[CONFIG] [INFO] .env file not found or could not be loaded: %v", err)
	}

	return Config{
		Rows:        clampInt(getEnvAsInt("ASTAR_ROWS", 20), MinMenuSize, MaxMenuSize),
		Columns:     clampInt(getEnvAsInt("ASTAR_COLUMNS", 20), MinMenuSize, MaxMenuSize),
		Diagonal:    getEnvAsBool("ASTAR_DIAGONAL", false),
		Palette:     strings.ToLower(getEnvWithDefault("ASTAR_PALETTE", "default")),
		StepDelayMs: max(getEnvAsInt("ASTAR_STEP_DELAY_MS", 15), 0),
		LogFile:     getEnvWithDefault("ASTAR_LOG_FILE", ""),

		AudioEnabled: getEnvAsBool("ASTAR_AUDIO_ENABLED", true),
		// 0-100 converted to 0.0-1.0
		MasterVolume: float64(clampInt(getEnvAsInt("ASTAR_MASTER_VOLUME", 70), 0, 100)) / 100.0,

		HTTPAddr: getEnvWithDefault("ASTAR_HTTP_ADDR", ":8080"),
		BaseURL:  getEnvWithDefault("ASTAR_BASE_URL", "/api"),
		GinMode:  getEnvWithDefault("GIN_MODE", "release"),
		MaxCells: max(getEnvAsInt("ASTAR_MAX_CELLS", 1<<20), 1),

		RedisAddr:       getEnvWithDefault("ASTAR_REDIS_ADDR", ""),
		RedisDB:         max(getEnvAsInt("ASTAR_REDIS_DB", 0), 0),
		CacheTTLSeconds: max(getEnvAsInt("ASTAR_CACHE_TTL_SECONDS", 300), 1),
	}
}

// getEnvWithDefault retrieves the value of an environment variable or returns a default value if not set.
func getEnvWithDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt parses an integer variable, logging and ignoring malformed values.
func getEnvAsInt(key string, defaultValue int) int {
	valueStr, exists := os.LookupEnv(key)
	if !exists || valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("[CONFIG] [WARN] %s must be an integer, using %d: %v", key, defaultValue, err)
		return defaultValue
	}
	return value
}

// getEnvAsBool parses a boolean variable, logging and ignoring malformed values.
func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr, exists := os.LookupEnv(key)
	if !exists || valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		log.Printf("[CONFIG] [WARN] %s must be a boolean, using %t: %v", key, defaultValue, err)
		return defaultValue
	}
	return value
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
