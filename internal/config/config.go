package config

import (
	"fmt"
	"os"
	"path/filepath"
)

type Config struct {
	DBPath     string
	JWTSecret  string
	ServerPort string
	PhotoDir   string
	LogLevel   string
}

func Load() *Config {
	dataDir := getEnv("BARBERIA_DATA_DIR", defaultDataDir())

	return &Config{
		DBPath:     getEnv("BARBERIA_DB_PATH", filepath.Join(dataDir, "barberia.db")),
		JWTSecret:  getEnv("JWT_SECRET", "changeme"),
		ServerPort: getEnv("SERVER_PORT", "8590"),
		PhotoDir:   getEnv("BARBERIA_PHOTO_DIR", filepath.Join(dataDir, "fotos")),
		LogLevel:   getEnv("LOG_LEVEL", "info"),
	}
}

func defaultDataDir() string {
	if dir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(dir, "barberia-desk")
	}
	return "."
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// Addr binds to loopback only: the UI shell is the single expected caller.
func (c *Config) Addr() string {
	return fmt.Sprintf("127.0.0.1:%s", c.ServerPort)
}
