// Package config provides functionality for loading environment variables
// and the Viper-based configuration of the logging facade.
package config

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

// LoadEnv loads environment variables from the first .env file found in the
// current directory or its parent. Variables already set in the process
// environment win. It returns the file it loaded, or an empty string when
// none exists.
func LoadEnv() (string, error) {
	candidates := []string{".env"}
	if workDir, err := os.Getwd(); err == nil {
		candidates = append(candidates, filepath.Join(filepath.Dir(workDir), ".env"))
	}

	for _, envFile := range candidates {
		if _, err := os.Stat(envFile); err != nil {
			continue
		}
		if err := godotenv.Load(envFile); err != nil {
			return envFile, err
		}
		return envFile, nil
	}
	return "", nil
}

// GetEnv retrieves an environment variable with a fallback value if not set
func GetEnv(key, fallback string) string {
	value, exists := os.LookupEnv(key)
	if !exists {
		return fallback
	}
	return value
}
