package config

import (
	"os"

	"github.com/joho/godotenv"
)

// LoadEnv loads environment variables from a .env file in the working
// directory when one exists. Variables already set are not overridden.
// It returns the file it loaded, or "" when there was none.
func LoadEnv() (string, error) {
	return loadEnvFile(".env")
}

func loadEnvFile(envFile string) (string, error) {
	if _, err := os.Stat(envFile); err != nil {
		return "", nil
	}
	if err := godotenv.Load(envFile); err != nil {
		return "", err
	}
	return envFile, nil
}
