package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/passforge/passforge-go/internal/cli"
)

func main() {
	// A .env file is optional for the CLI.
	_ = godotenv.Load()

	os.Exit(cli.Execute())
}
