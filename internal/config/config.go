package config

import (
	"os"
	"path/filepath"
	"sync"

	"github.com/joho/godotenv"
)

var (
	envOnce   sync.Once
	envLoaded string
	envErr    error
)

// LoadEnv loads a .env file from the working directory, or failing that its parent,
// into the process environment so that O2Y_* overrides can live in a file. Variables
// already set in the environment win. It runs once per process and returns the file
// it loaded, "" when there was none.
func LoadEnv() (string, error) {
	envOnce.Do(func() {
		envLoaded, envErr = loadEnvFrom(".")
	})
	return envLoaded, envErr
}

func loadEnvFrom(dir string) (string, error) {
	candidates := []string{
		filepath.Join(dir, ".env"),
		filepath.Join(dir, "..", ".env"),
	}
	for _, envFile := range candidates {
		if _, err := os.Stat(envFile); err != nil {
			continue
		}
		if err := godotenv.Load(envFile); err != nil {
			return "", err
		}
		return envFile, nil
	}
	return "", nil
}
