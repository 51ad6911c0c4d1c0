package sumgrid

import (
	"math/rand"
	"sort"

	"github.com/vovakirdan/tui-sumrush/internal/core"
)

// SelectionResult classifies the outcome of a selection change.
type SelectionResult int

const (
	// SelectionNone means the toggle was ignored (stale tile id, paused,
	// game over, or session not started).
	SelectionNone SelectionResult = iota
	// SelectionOpen means the selection sum is still below the target and
	// the selection persists.
	SelectionOpen
	// SelectionBust means the sum overshot the target; the selection was
	// emptied with the grid untouched.
	SelectionBust
	// SelectionCleared means the sum matched the target exactly and the
	// selected tiles were removed.
	SelectionCleared
)

// Outcome describes what a ToggleTile call did to the session.
type Outcome struct {
	Result     SelectionResult
	Sum        int // Selection sum after the toggle
	Cleared    int // Tiles removed (SelectionCleared only)
	ScoreDelta int // Points awarded (SelectionCleared only)
}

// Engine is the grid-and-target state machine. It owns the grid, the round
// target, the selection, the score, and the time-mode countdown. All
// operations are synchronous state transitions; the engine performs no I/O
// and knows nothing about rendering or scheduling.
type Engine struct {
	mode  Mode
	rules Rules
	rng   *rand.Rand

	tiles    map[int]Tile
	nextID   int
	target   int
	score    int
	selected map[int]bool
	timeLeft int

	started  bool
	paused   bool
	gameOver bool

	events []core.Event
}

// NewEngine creates an engine for the given mode. The RNG drives tile values
// and target choice; inject a fixed seed for deterministic sessions.
// The engine starts in the not-started state; call StartSession to play.
func NewEngine(mode Mode, rules Rules, rng *rand.Rand) *Engine {
	return &Engine{
		mode:     mode,
		rules:    rules.sanitize(),
		rng:      rng,
		tiles:    make(map[int]Tile),
		selected: make(map[int]bool),
	}
}

// StartSession resets all session state and populates the initial grid:
// InitialRows full rows of random tiles starting from the bottom row upward.
// The persisted high score lives outside the engine and is unaffected.
func (e *Engine) StartSession() {
	e.tiles = make(map[int]Tile)
	e.selected = make(map[int]bool)
	e.score = 0
	e.gameOver = false
	e.paused = false
	e.started = true
	e.timeLeft = e.rules.TimeLimitSecs
	e.events = nil

	for row := Rows - 1; row >= Rows-InitialRows; row-- {
		for col := 0; col < Cols; col++ {
			e.addTile(row, col)
		}
	}

	e.target = e.pickTarget()
}

// Restart is StartSession under the name the renderer boundary uses.
func (e *Engine) Restart() {
	e.StartSession()
}

// ToggleTile adds the tile to the selection, or removes it if already
// selected, then evaluates the selection against the target. Toggles are
// ignored while paused or after game over, and ids that no longer reference
// a grid tile (stale renderer state) are ignored rather than corrupting the
// selection.
func (e *Engine) ToggleTile(id int) Outcome {
	if !e.started || e.gameOver || e.paused {
		return Outcome{Result: SelectionNone}
	}
	if _, ok := e.tiles[id]; !ok {
		return Outcome{Result: SelectionNone}
	}

	if e.selected[id] {
		delete(e.selected, id)
	} else {
		e.selected[id] = true
	}

	return e.evaluateSelection()
}

// evaluateSelection compares the selection sum to the target. It runs
// synchronously inside ToggleTile so no other mutation can interleave.
func (e *Engine) evaluateSelection() Outcome {
	sum := e.SelectionSum()

	// An empty selection sums to zero; targets are all positive, so the
	// sum < target branch also covers deselecting the last tile.
	if sum < e.target {
		return Outcome{Result: SelectionOpen, Sum: sum}
	}

	if sum > e.target {
		e.selected = make(map[int]bool)
		return Outcome{Result: SelectionBust, Sum: sum}
	}

	// Exact match: clear the selected tiles.
	count := len(e.selected)
	for id := range e.selected {
		delete(e.tiles, id)
	}
	e.selected = make(map[int]bool)

	delta := count * e.rules.ScorePerTile
	e.score += delta
	e.target = e.pickTarget()
	e.events = append(e.events, core.Event{Type: core.EventCleared, Count: count, ScoreDelta: delta})

	switch e.mode {
	case ModeClassic:
		e.injectRow()
	case ModeTime:
		// Time mode never grows the grid on a clear, only on timeout.
		e.timeLeft = e.rules.TimeLimitSecs
	}

	return Outcome{Result: SelectionCleared, Sum: sum, Cleared: count, ScoreDelta: delta}
}

// AdvanceTime consumes one second of the time-mode countdown. When the timer
// reaches zero a row is injected and the timer resets. Calls are ignored in
// classic mode, while paused, after game over, or before a session starts.
func (e *Engine) AdvanceTime() {
	if e.mode != ModeTime || !e.started || e.gameOver || e.paused {
		return
	}

	e.timeLeft--
	if e.timeLeft > 0 {
		return
	}

	e.injectRow()
	e.timeLeft = e.rules.TimeLimitSecs
}

// injectRow is the sole growth and failure mechanism: if the top row is
// occupied the session ends with the grid unmodified; otherwise every tile
// shifts up one row and a full random row appears at the bottom.
func (e *Engine) injectRow() {
	if e.topRowOccupied() {
		e.gameOver = true
		e.events = append(e.events, core.Event{Type: core.EventGameOver})
		return
	}

	for id, t := range e.tiles {
		t.Row--
		e.tiles[id] = t
	}
	for col := 0; col < Cols; col++ {
		e.addTile(Rows-1, col)
	}
}

// pickTarget draws uniformly from the candidate set. Achievability is only
// statistically likely, not guaranteed.
func (e *Engine) pickTarget() int {
	return e.rules.Targets[e.rng.Intn(len(e.rules.Targets))]
}

// SetPaused pauses or resumes the session. Pausing blocks tile selection
// and the time countdown; it has no effect after game over.
func (e *Engine) SetPaused(paused bool) {
	if !e.started || e.gameOver {
		return
	}
	e.paused = paused
}

// TakeEvents drains pending notifications (cleared, game over) for the
// renderer and persistence collaborators.
func (e *Engine) TakeEvents() []core.Event {
	evs := e.events
	e.events = nil
	return evs
}

// SelectionSum returns the sum of the values of all selected tiles.
func (e *Engine) SelectionSum() int {
	sum := 0
	for id := range e.selected {
		sum += e.tiles[id].Value
	}
	return sum
}

// SelectedIDs returns the ids of the selected tiles in ascending order.
func (e *Engine) SelectedIDs() []int {
	ids := make([]int, 0, len(e.selected))
	for id := range e.selected {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

// IsSelected reports whether the tile id is part of the current selection.
func (e *Engine) IsSelected(id int) bool {
	return e.selected[id]
}

// SelectionSize returns the number of selected tiles.
func (e *Engine) SelectionSize() int {
	return len(e.selected)
}

// Mode returns the session mode.
func (e *Engine) Mode() Mode { return e.mode }

// Target returns the current round target.
func (e *Engine) Target() int { return e.target }

// Score returns the session score.
func (e *Engine) Score() int { return e.score }

// TimeLeft returns the seconds remaining in the current round.
// Only meaningful in time mode.
func (e *Engine) TimeLeft() int { return e.timeLeft }

// Paused reports whether the session is paused.
func (e *Engine) Paused() bool { return e.paused }

// GameOver reports whether the session has reached its terminal state.
func (e *Engine) GameOver() bool { return e.gameOver }

// Started reports whether a session has begun.
func (e *Engine) Started() bool { return e.started }

// Rules returns the sanitized session parameters.
func (e *Engine) Rules() Rules { return e.rules }
