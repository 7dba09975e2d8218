package models

// Pace controls how much in-world time one turn covers.
type Pace string

const (
	PaceSeason Pace = "season" // each turn advances one season
	PaceYear   Pace = "year"   // each turn advances a full year
)

// Difficulty controls choice count and miracle eligibility.
type Difficulty string

const (
	DifficultyNormal   Difficulty = "normal"
	DifficultyHardcore Difficulty = "hardcore"
)

// Entity is an NPC or inventory item. Name is the unique key within its
// collection; Desc is an append-only prose log (see EntityList.AppendUpdate).
type Entity struct {
	Name string `yaml:"name" json:"name"`
	Desc string `yaml:"desc" json:"desc"`
}

// Turn is one half of a conversation exchange with the narrator.
type Turn struct {
	Role    string `yaml:"role" json:"role"` // "user" or "assistant"
	Content string `yaml:"content" json:"content"`
}

// Choice is one action option offered to the player. Text is the short label,
// Action the long-form instruction that gets submitted back to the narrator.
type Choice struct {
	Text   string `yaml:"text" json:"text"`
	Action string `yaml:"action" json:"action"`
}

// GameOverData is the structured epilogue payload, present only once the game
// has ended.
type GameOverData struct {
	Epilogue string   `yaml:"epilogue" json:"epilogue"`
	Reasons  []string `yaml:"reasons" json:"reasons"`
	Epitaph  string   `yaml:"epitaph" json:"epitaph"`
}

// Settings are the player-chosen initial options, consumed once at game start.
type Settings struct {
	Gender       string     `yaml:"gender"`
	LocationType string     `yaml:"locationType"` // village, town, capital
	Region       string     `yaml:"region"`       // for villages and towns
	City         string     `yaml:"city"`         // for capitals
	Pace         Pace       `yaml:"pace"`
	Difficulty   Difficulty `yaml:"difficulty"`
	StartAge     int        `yaml:"startAge"`
}

// StartItem is a rolled starting item: a plain entity plus the stat modifier
// it applies to the freshly created character.
type StartItem struct {
	Name string `yaml:"name"`
	Desc string `yaml:"desc"`
	Stat string `yaml:"stat"`
	Mod  int    `yaml:"mod"`
}

// StartRoll is the output shape of the procedural starting roll.
type StartRoll struct {
	NPCs     []Entity
	Items    []StartItem
	StatMods map[string]int
}

// GameState is the single mutable root of one life. It is persisted as a
// whole and mutated only by the turn engine and its sub-resolvers.
type GameState struct {
	Gender       string     `yaml:"gender"`
	LocationType string     `yaml:"locationType"`
	Region       string     `yaml:"region"`
	City         string     `yaml:"city"`
	Pace         Pace       `yaml:"pace"`
	Difficulty   Difficulty `yaml:"difficulty"`
	StartAge     int        `yaml:"startAge"`

	Year      int `yaml:"year"`
	SeasonIdx int `yaml:"seasonIdx"` // 0..3
	Age       int `yaml:"age"`

	Stats     map[string]int `yaml:"stats"`
	Inventory EntityList     `yaml:"inventory"`
	NPCs      EntityList     `yaml:"npcs"`

	History         []Turn `yaml:"history"`
	LifeSummary     string `yaml:"lifeSummary"`
	LastSummaryTurn int    `yaml:"lastSummaryTurn"`
	TurnCount       int    `yaml:"turnCount"`

	MiracleAvailable bool `yaml:"miracleAvailable"`
	MiracleUsed      bool `yaml:"miracleUsed"`

	GameOver     bool          `yaml:"gameOver"`
	GameOverData *GameOverData `yaml:"gameOverData,omitempty"`

	// Most recent generated narrative and offered options. Not part of the
	// conversational history proper, but persisted so a resumed game can
	// render the last scene.
	LastStory   string   `yaml:"lastStory,omitempty"`
	LastChoices []Choice `yaml:"lastChoices,omitempty"`
	LastMiracle string   `yaml:"lastMiracle,omitempty"`
}

const startYear = 1993

// NewGameState seeds a fresh life from the chosen settings and a procedural
// starting roll. Stat modifiers from rolled items are applied on top of the
// all-fives baseline and clamped.
func NewGameState(settings Settings, roll *StartRoll) *GameState {
	s := &GameState{
		Gender:           settings.Gender,
		LocationType:     settings.LocationType,
		Region:           settings.Region,
		City:             settings.City,
		Pace:             settings.Pace,
		Difficulty:       settings.Difficulty,
		StartAge:         settings.StartAge,
		Year:             startYear,
		SeasonIdx:        0,
		Age:              settings.StartAge,
		Stats:            defaultStats(),
		MiracleAvailable: settings.Difficulty == DifficultyNormal,
	}

	if roll != nil {
		s.NPCs = append(EntityList{}, roll.NPCs...)
		for _, it := range roll.Items {
			s.Inventory = append(s.Inventory, Entity{Name: it.Name, Desc: it.Desc})
		}
		for stat, mod := range roll.StatMods {
			if _, ok := s.Stats[stat]; ok {
				s.Stats[stat] = clampStat(s.Stats[stat] + mod)
			}
		}
	} else {
		s.NPCs = EntityList{{Name: "Mama", Desc: "Nearby, as always."}}
	}

	return s
}

func defaultStats() map[string]int {
	stats := make(map[string]int, len(StatKeys))
	for _, k := range StatKeys {
		stats[k] = 5
	}
	return stats
}
