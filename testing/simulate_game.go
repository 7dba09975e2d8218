package main

import (
	"context"
	"fmt"
	"log"
	"math/rand/v2"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"github.com/joho/godotenv"
	"google.golang.org/api/option"

	"github.com/epokha-game/epokha/internal/config"
	"github.com/epokha-game/epokha/internal/engine"
	"github.com/epokha-game/epokha/internal/llm"
	"github.com/epokha-game/epokha/internal/models"
	"github.com/epokha-game/epokha/internal/start"
)

const maxTurns = 15

func main() {
	ctx := context.Background()
	_ = godotenv.Load()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Narrator transport (the "Game Master")
	var narrator llm.Client
	if cfg.GeminiAPIKey != "" {
		gem, err := llm.NewGemini(ctx, cfg.GeminiAPIKey, cfg.Model)
		if err != nil {
			log.Fatalf("Failed to create narrator client: %v", err)
		}
		defer gem.Close()
		narrator = gem
	} else {
		narrator = llm.NewRelay(cfg.RelayURL, cfg.Model)
	}

	// Player LLM: picks a choice each turn
	if cfg.GeminiAPIKey == "" {
		log.Fatal("simulation needs GEMINI_API_KEY for the player model")
	}
	playerClient, err := genai.NewClient(ctx, option.WithAPIKey(cfg.GeminiAPIKey))
	if err != nil {
		log.Fatalf("Failed to create player client: %v", err)
	}
	defer playerClient.Close()
	playerModel := playerClient.GenerativeModel("gemini-2.5-flash")

	// 1. Roll a starting hand
	fmt.Println("--- Step 1: Rolling a starting hand ---")
	rng := rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	settings := models.Settings{
		Gender:       "male",
		LocationType: "town",
		Region:       "central",
		City:         "moscow",
		Pace:         models.PaceSeason,
		Difficulty:   models.DifficultyNormal,
		StartAge:     7,
	}
	roll := start.Roll(rng, settings)
	for _, n := range roll.NPCs {
		fmt.Printf("NPC: %s — %s\n", n.Name, n.Desc)
	}
	for _, it := range roll.Items {
		fmt.Printf("Item: %s — %s\n", it.Name, it.Desc)
	}

	state := models.NewGameState(settings, roll)
	eng := engine.New(narrator, state, "") // no persistence during soak runs

	// 2. Play the life
	action := engine.FirstAction
	for turn := 1; turn <= maxTurns; turn++ {
		fmt.Printf("\n--- Turn %d (%s, age %d) ---\n", turn, state.DateLabel(), state.Age)
		fmt.Printf("Player Action: %s\n", action)

		res, err := eng.SubmitAction(ctx, action)
		if err != nil {
			fmt.Printf("Error processing turn: %v\n", err)
			if eng.CanRetry() {
				fmt.Println("Retrying once...")
				res, err = eng.Retry(ctx)
			}
			if err != nil {
				break
			}
		}
		fmt.Printf("Story: %s\n", res.Story)
		if res.Miracle != "" {
			fmt.Printf("MIRACLE: %s\n", res.Miracle)
		}

		fmt.Print("Stats:")
		for _, k := range models.StatKeys {
			fmt.Printf(" %s=%d", k, state.Stats[k])
		}
		fmt.Println()

		if res.GameOver != nil {
			fmt.Printf("\nGame Ended: %s\n", res.GameOver.Epilogue)
			for _, r := range res.GameOver.Reasons {
				fmt.Printf("Reason: %s\n", r)
			}
			fmt.Printf("Epitaph: %s\n", res.GameOver.Epitaph)
			break
		}

		action = getPlayerAction(ctx, playerModel, state, res)
	}
}

func getPlayerAction(ctx context.Context, model *genai.GenerativeModel, state *models.GameState, res *engine.TurnResult) string {
	var choicesText strings.Builder
	for i, c := range res.Choices {
		fmt.Fprintf(&choicesText, "%d. %s\n", i+1, c.Action)
	}

	prompt := fmt.Sprintf(`You are playing a life-simulation game set in 1990s Russia.
The hero is %d years old. Current stats: %v

The latest scene:
%s

Available choices:
%s
Pick the choice that keeps the hero alive and thriving. Return ONLY the text of the chosen action, no extra commentary.`,
		state.Age,
		state.Stats,
		res.Story,
		choicesText.String(),
	)

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil || len(resp.Candidates) == 0 || len(resp.Candidates[0].Content.Parts) == 0 {
		if len(res.Choices) > 0 {
			return res.Choices[0].Action
		}
		return "keep a low profile and watch"
	}
	return strings.TrimSpace(fmt.Sprintf("%v", resp.Candidates[0].Content.Parts[0]))
}
