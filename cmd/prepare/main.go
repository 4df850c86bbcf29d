package main

import (
	"log"

	"github.com/joho/godotenv"

	"github.com/RaulAraujoSilva/BAP-KPI-Marketing/app"
	"github.com/RaulAraujoSilva/BAP-KPI-Marketing/internal/config"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment defaults")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Invalid configuration:", err)
	}

	service := app.NewPrepareService(cfg.Paths.SourceFile, cfg.Paths.PreparedFile)
	observations, err := service.Run()
	if err != nil {
		log.Fatal("Preparation failed:", err)
	}

	log.Printf("Prepared workbook written to %s (%d long rows)", cfg.Paths.PreparedFile, len(observations))
}
