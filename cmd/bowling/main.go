package main

import (
	"bowling_backend/internal/app"
	"flag"
	"log"
)

func main() {
	envPath := flag.String("env", ".env", "path to .env file")
	configPath := flag.String("config", "config.yaml", "path to game rules config")
	flag.Parse()

	if err := app.NewApp(*envPath, *configPath).Run(); err != nil {
		log.Fatal(err)
	}
}
