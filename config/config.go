package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

const (
	defaultAddress = "localhost:5000"
	defaultRoot    = "."
)

// Load pulls an optional .env file into the environment so deployments can
// override the defaults without flags.
func Load() {
	if err := godotenv.Load(); err == nil {
		log.Println("loaded settings from .env")
	}
}

// Address returns the listen address for the browser host.
func Address() string {
	return getenv("CLOTH_ADDR", defaultAddress)
}

// Root returns the directory the static canvas page is served from.
func Root() string {
	return getenv("CLOTH_ROOT", defaultRoot)
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
