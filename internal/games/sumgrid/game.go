// Package sumgrid implements the Sum Rush puzzle: pick tiles whose values
// add up to the round target to clear them before the grid reaches the top.
package sumgrid

import (
	"math/rand"

	"github.com/vovakirdan/tui-sumrush/internal/config"
	"github.com/vovakirdan/tui-sumrush/internal/core"
	"github.com/vovakirdan/tui-sumrush/internal/registry"
)

// Game adapts the Engine to the platform's registry.Game interface: it maps
// tick-based input frames to engine intents, converts fixed ticks to whole
// seconds for the time-mode countdown, and renders the grid.
type Game struct {
	mode   Mode
	engine *Engine
	rng    *rand.Rand
	tick   uint64

	// Cursor position on the grid
	cursorRow int
	cursorCol int

	// Tick-to-second conversion for the time-mode countdown
	tickRate     int
	secondTicker int

	// Screen dimensions
	screenW  int
	screenH  int
	tooSmall bool
}

// Package-level variables for config/difficulty (set by the CLI before the
// game instance is created).
var (
	configPath       string
	difficultyPreset string
)

// SetConfigPath sets the rules config file path.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) {
	difficultyPreset = preset
}

// New creates a new classic mode game.
func New() *Game {
	return &Game{mode: ModeClassic}
}

// NewTimed creates a new time attack mode game.
func NewTimed() *Game {
	return &Game{mode: ModeTime}
}

func init() {
	registry.Register("sumgrid", func() registry.Game {
		return New()
	})
	registry.Register("sumgrid_time", func() registry.Game {
		return NewTimed()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	if g.mode == ModeTime {
		return "sumgrid_time"
	}
	return "sumgrid"
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.mode == ModeTime {
		return "Sum Rush (Time Attack)"
	}
	return "Sum Rush"
}

// Reset initializes/restarts the game.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.tick = 0
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.tickRate = cfg.TickRate
	if g.tickRate <= 0 {
		g.tickRate = 60
	}
	g.secondTicker = 0

	g.engine = NewEngine(g.mode, g.loadRules(), g.rng)
	g.engine.StartSession()

	g.cursorRow = Rows - 1
	g.cursorCol = Cols / 2

	g.checkScreenSize()
}

// loadRules resolves session rules from the config file and difficulty
// preset, falling back to defaults on any load problem.
func (g *Game) loadRules() Rules {
	fileCfg, err := config.LoadSumgrid(configPath)
	if err != nil {
		return DefaultRules()
	}
	config.ApplySumgridPreset(&fileCfg, config.DifficultyPreset(difficultyPreset))

	return Rules{
		TimeLimitSecs: fileCfg.Rules.TimeLimitSecs,
		ScorePerTile:  fileCfg.Rules.ScorePerTile,
		Targets:       fileCfg.Rules.Targets,
	}
}

// checkScreenSize checks if the screen can fit the board and HUD.
func (g *Game) checkScreenSize() {
	minW := Cols*cellWidth + 4
	minH := Rows + hudHeight + 2
	g.tooSmall = g.screenW < minW || g.screenH < minH
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	// Handle restart
	if in.Has(core.ActionRestart) && g.engine.GameOver() {
		g.Reset(core.RuntimeConfig{
			Seed:     g.rng.Int63(),
			ScreenW:  g.screenW,
			ScreenH:  g.screenH,
			TickRate: g.tickRate,
		})
		return g.stepResult()
	}

	// Handle pause toggle
	if in.Has(core.ActionPause) {
		g.engine.SetPaused(!g.engine.Paused())
	}

	if g.tooSmall || g.engine.GameOver() || g.engine.Paused() {
		return g.stepResult()
	}

	// Cursor movement
	switch {
	case in.Has(core.ActionUp):
		g.cursorRow = core.Clamp(g.cursorRow-1, 0, Rows-1)
	case in.Has(core.ActionDown):
		g.cursorRow = core.Clamp(g.cursorRow+1, 0, Rows-1)
	case in.Has(core.ActionLeft):
		g.cursorCol = core.Clamp(g.cursorCol-1, 0, Cols-1)
	case in.Has(core.ActionRight):
		g.cursorCol = core.Clamp(g.cursorCol+1, 0, Cols-1)
	}

	// Toggle the tile under the cursor; empty cells are a no-op
	if in.Has(core.ActionSelect) {
		if t, ok := g.engine.TileAt(g.cursorRow, g.cursorCol); ok {
			g.engine.ToggleTile(t.ID)
		}
	}

	// Time mode: one engine second per tickRate ticks. The countdown is
	// suspended above whenever the session is paused or over.
	if g.mode == ModeTime {
		g.secondTicker++
		if g.secondTicker >= g.tickRate {
			g.secondTicker = 0
			g.engine.AdvanceTime()
		}
	}

	return g.stepResult()
}

// stepResult packages the current state and drains engine notifications.
func (g *Game) stepResult() core.StepResult {
	return core.StepResult{
		State:  g.State(),
		Events: g.engine.TakeEvents(),
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.engine.Score(),
		GameOver: g.engine.GameOver(),
		Paused:   g.engine.Paused(),
	}
}

// Engine exposes the underlying state machine for snapshot queries.
func (g *Game) Engine() *Engine {
	return g.engine
}
