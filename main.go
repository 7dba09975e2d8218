package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/epokha-game/epokha/internal/tui"
)

func main() {
	_ = godotenv.Load()

	if err := tui.Start(); err != nil {
		fmt.Fprintf(os.Stderr, "epokha: %v\n", err)
		os.Exit(1)
	}
}
