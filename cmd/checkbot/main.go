package main

import (
	"log"
	"os"

	"github.com/uzbooks/checkbot/internal/app"
)

func main() {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "configs/values.yaml"
	}

	application, err := app.NewApp(configPath)
	if err != nil {
		log.Fatalf("failed to create app: %v", err)
	}

	log.Println("checkbot starting")
	if err := application.ListenAndServe(); err != nil {
		log.Fatalf("bot stopped: %v", err)
	}
}
