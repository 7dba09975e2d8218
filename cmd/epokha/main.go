package main

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/epokha-game/epokha/internal/config"
	"github.com/epokha-game/epokha/internal/llm"
	"github.com/epokha-game/epokha/internal/models"
	"github.com/epokha-game/epokha/internal/tui"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Printf("Error loading config: %v\n", err)
		os.Exit(1)
	}

	if cfg.SaveDir != "" {
		models.SaveDir = cfg.SaveDir
	}

	var client llm.Client
	if cfg.GeminiAPIKey != "" {
		gem, err := llm.NewGemini(context.Background(), cfg.GeminiAPIKey, cfg.Model)
		if err != nil {
			fmt.Printf("Error creating Gemini client: %v\n", err)
			os.Exit(1)
		}
		defer gem.Close()
		client = gem
	} else {
		client = llm.NewRelay(cfg.RelayURL, cfg.Model)
	}

	if err := tui.Run(client); err != nil {
		fmt.Printf("Error running TUI: %v\n", err)
		os.Exit(1)
	}
}
