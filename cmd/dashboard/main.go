package main

import (
	"log"

	"github.com/joho/godotenv"

	"github.com/RaulAraujoSilva/BAP-KPI-Marketing/internal/config"
	"github.com/RaulAraujoSilva/BAP-KPI-Marketing/ui"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment defaults")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Invalid configuration:", err)
	}

	app, err := ui.NewApp(ui.Config{
		Port:         cfg.Server.Port,
		PreparedFile: cfg.Paths.PreparedFile,
	})
	if err != nil {
		log.Fatal("Failed to create dashboard app:", err)
	}

	log.Println("Starting BAP Marketing Analytics dashboard on http://localhost:" + cfg.Server.Port)
	log.Fatal(app.Start())
}
