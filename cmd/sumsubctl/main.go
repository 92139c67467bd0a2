package main

import (
	"os"

	"github.com/joho/godotenv"
)

func main() {
	// Load .env.localdev file if it exists (for local development)
	_ = godotenv.Load(".env.localdev")

	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
