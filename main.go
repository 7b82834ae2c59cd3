package main

import (
	"log"

	"github.com/joho/godotenv"

	"github.com/resumepilot/resumepilot/cmd"
)

func init() {
	// A local .env is optional; a missing file is not an error.
	_ = godotenv.Load()
}

func main() {
	if err := cmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
