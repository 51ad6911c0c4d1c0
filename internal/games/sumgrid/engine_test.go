package sumgrid

import (
	"math/rand"
	"reflect"
	"testing"

	"github.com/vovakirdan/tui-sumrush/internal/core"
)

func newTestEngine(mode Mode, seed int64) *Engine {
	e := NewEngine(mode, DefaultRules(), rand.New(rand.NewSource(seed)))
	e.StartSession()
	return e
}

// setTiles replaces the grid with a crafted layout and empties the selection.
func setTiles(e *Engine, tiles ...Tile) {
	e.tiles = make(map[int]Tile)
	e.selected = make(map[int]bool)
	for _, t := range tiles {
		e.tiles[t.ID] = t
		if t.ID > e.nextID {
			e.nextID = t.ID
		}
	}
}

func assertNoCellCollisions(t *testing.T, e *Engine) {
	t.Helper()
	seen := make(map[[2]int]int)
	for _, tile := range e.tiles {
		cell := [2]int{tile.Row, tile.Col}
		if other, ok := seen[cell]; ok {
			t.Fatalf("Tiles %d and %d share cell (%d, %d)", other, tile.ID, tile.Row, tile.Col)
		}
		seen[cell] = tile.ID
		if tile.Row < 0 || tile.Row >= Rows || tile.Col < 0 || tile.Col >= Cols {
			t.Fatalf("Tile %d out of bounds at (%d, %d)", tile.ID, tile.Row, tile.Col)
		}
	}
}

func TestStartSession(t *testing.T) {
	e := newTestEngine(ModeClassic, 1)

	if e.TileCount() != InitialRows*Cols {
		t.Errorf("TileCount = %d, expected %d", e.TileCount(), InitialRows*Cols)
	}

	for _, tile := range e.Tiles() {
		if tile.Row < Rows-InitialRows || tile.Row > Rows-1 {
			t.Errorf("Initial tile in unexpected row %d", tile.Row)
		}
		if tile.Value < 1 || tile.Value > MaxValue {
			t.Errorf("Tile value %d outside [1, %d]", tile.Value, MaxValue)
		}
	}
	assertNoCellCollisions(t, e)

	if e.Score() != 0 {
		t.Errorf("Score = %d, expected 0", e.Score())
	}
	if e.TimeLeft() != DefaultRules().TimeLimitSecs {
		t.Errorf("TimeLeft = %d, expected %d", e.TimeLeft(), DefaultRules().TimeLimitSecs)
	}

	found := false
	for _, candidate := range e.Rules().Targets {
		if candidate == e.Target() {
			found = true
		}
	}
	if !found {
		t.Errorf("Target %d not in candidate set %v", e.Target(), e.Rules().Targets)
	}

	if e.Snapshot().Status != StatusPlaying {
		t.Errorf("Status = %s, expected playing", e.Snapshot().Status)
	}
}

func TestExactClear(t *testing.T) {
	// Tiles valued 4, 6, 9 with target 10: selecting the 4 then the 6
	// clears exactly those two tiles.
	e := newTestEngine(ModeTime, 2)
	setTiles(e,
		Tile{ID: 1, Value: 4, Row: 11, Col: 0},
		Tile{ID: 2, Value: 6, Row: 11, Col: 1},
		Tile{ID: 3, Value: 9, Row: 11, Col: 2},
	)
	e.target = 10
	e.timeLeft = 3

	out := e.ToggleTile(1)
	if out.Result != SelectionOpen || out.Sum != 4 {
		t.Fatalf("After first pick: %+v", out)
	}

	out = e.ToggleTile(2)
	if out.Result != SelectionCleared {
		t.Fatalf("Expected clear, got %+v", out)
	}
	if out.Cleared != 2 || out.ScoreDelta != 20 {
		t.Errorf("Cleared = %d, ScoreDelta = %d, expected 2 and 20", out.Cleared, out.ScoreDelta)
	}

	if e.Score() != 20 {
		t.Errorf("Score = %d, expected 20", e.Score())
	}
	if e.SelectionSize() != 0 {
		t.Errorf("Selection should be empty after a clear, got %d", e.SelectionSize())
	}

	// Exactly the selected tiles are gone; the 9 stays put
	if _, ok := e.tiles[1]; ok {
		t.Error("Tile 1 should have been cleared")
	}
	if _, ok := e.tiles[2]; ok {
		t.Error("Tile 2 should have been cleared")
	}
	if _, ok := e.tiles[3]; !ok {
		t.Error("Tile 3 should have survived the clear")
	}

	// Time mode: the timer resets and the grid does not grow
	if e.TimeLeft() != e.Rules().TimeLimitSecs {
		t.Errorf("TimeLeft = %d, expected reset to %d", e.TimeLeft(), e.Rules().TimeLimitSecs)
	}
	if e.TileCount() != 1 {
		t.Errorf("TileCount = %d, expected 1 (no row injection in time mode)", e.TileCount())
	}

	// A cleared event was emitted
	events := e.TakeEvents()
	if len(events) != 1 || events[0].Count != 2 || events[0].ScoreDelta != 20 {
		t.Errorf("Events = %+v, expected one cleared(2, 20)", events)
	}
}

func TestOvershootAbortsSelection(t *testing.T) {
	// Target 10, picking a 9 then a 4 overshoots.
	e := newTestEngine(ModeClassic, 3)
	setTiles(e,
		Tile{ID: 1, Value: 9, Row: 11, Col: 0},
		Tile{ID: 2, Value: 4, Row: 11, Col: 1},
	)
	e.target = 10

	e.ToggleTile(1)
	out := e.ToggleTile(2)

	if out.Result != SelectionBust || out.Sum != 13 {
		t.Fatalf("Expected bust with sum 13, got %+v", out)
	}
	if e.SelectionSize() != 0 {
		t.Error("Selection should be emptied after an overshoot")
	}
	if e.TileCount() != 2 {
		t.Error("Grid must be unchanged after an overshoot")
	}
	if e.Score() != 0 {
		t.Error("Score must be unchanged after an overshoot")
	}
}

func TestUndershootKeepsSelection(t *testing.T) {
	e := newTestEngine(ModeClassic, 4)
	setTiles(e,
		Tile{ID: 1, Value: 3, Row: 11, Col: 0},
		Tile{ID: 2, Value: 2, Row: 11, Col: 1},
	)
	e.target = 10

	e.ToggleTile(1)
	out := e.ToggleTile(2)

	if out.Result != SelectionOpen || out.Sum != 5 {
		t.Fatalf("Expected open selection with sum 5, got %+v", out)
	}
	if e.SelectionSize() != 2 {
		t.Errorf("SelectionSize = %d, expected 2", e.SelectionSize())
	}
}

func TestToggleIdempotence(t *testing.T) {
	e := newTestEngine(ModeClassic, 5)
	tiles := e.Tiles()
	id := tiles[0].ID

	before := e.SelectedIDs()
	e.ToggleTile(id)
	e.ToggleTile(id)
	after := e.SelectedIDs()

	if !reflect.DeepEqual(before, after) {
		t.Errorf("Double toggle changed selection: %v vs %v", before, after)
	}
}

func TestStaleTileIDIgnored(t *testing.T) {
	e := newTestEngine(ModeTime, 6)
	setTiles(e,
		Tile{ID: 1, Value: 5, Row: 11, Col: 0},
		Tile{ID: 2, Value: 5, Row: 11, Col: 1},
	)
	e.target = 10

	// Never-existing id
	out := e.ToggleTile(9999)
	if out.Result != SelectionNone {
		t.Errorf("Unknown id should be ignored, got %+v", out)
	}

	// Id of a tile that was cleared earlier
	e.ToggleTile(1)
	e.ToggleTile(2) // clears both
	out = e.ToggleTile(1)
	if out.Result != SelectionNone {
		t.Errorf("Stale id of cleared tile should be ignored, got %+v", out)
	}
	if e.SelectionSize() != 0 {
		t.Error("Stale toggle must not corrupt the selection")
	}
}

func TestRowInjectionShift(t *testing.T) {
	e := newTestEngine(ModeClassic, 7)

	before := make(map[int]Tile)
	for id, tile := range e.tiles {
		before[id] = tile
	}
	countBefore := e.TileCount()

	e.injectRow()

	if e.GameOver() {
		t.Fatal("Injection with a free top row must not end the game")
	}

	// Every pre-existing tile moved up exactly one row
	for id, old := range before {
		now, ok := e.tiles[id]
		if !ok {
			t.Fatalf("Tile %d vanished during injection", id)
		}
		if now.Row != old.Row-1 || now.Col != old.Col || now.Value != old.Value {
			t.Errorf("Tile %d moved (%d,%d)->(%d,%d), expected row -1 only",
				id, old.Row, old.Col, now.Row, now.Col)
		}
	}

	// Exactly Cols new tiles at the bottom row with values in range
	if e.TileCount() != countBefore+Cols {
		t.Errorf("TileCount = %d, expected %d", e.TileCount(), countBefore+Cols)
	}
	bottom := 0
	for _, tile := range e.tiles {
		if tile.Row == Rows-1 {
			bottom++
			if tile.Value < 1 || tile.Value > MaxValue {
				t.Errorf("New tile value %d outside [1, %d]", tile.Value, MaxValue)
			}
		}
	}
	if bottom != Cols {
		t.Errorf("Bottom row has %d tiles, expected %d", bottom, Cols)
	}
	assertNoCellCollisions(t, e)
}

func TestRowInjectionTopRowOccupied(t *testing.T) {
	e := newTestEngine(ModeClassic, 8)
	setTiles(e,
		Tile{ID: 1, Value: 3, Row: 0, Col: 4},
		Tile{ID: 2, Value: 7, Row: 5, Col: 2},
	)

	e.injectRow()

	if !e.GameOver() {
		t.Fatal("Injection with an occupied top row must end the game")
	}

	// Grid left unmodified
	if e.TileCount() != 2 {
		t.Errorf("TileCount = %d, expected 2", e.TileCount())
	}
	if e.tiles[1].Row != 0 || e.tiles[2].Row != 5 {
		t.Error("Tiles must not move when the injection declares game over")
	}

	events := e.TakeEvents()
	if len(events) != 1 || events[0].Type != core.EventGameOver {
		t.Errorf("Events = %+v, expected exactly one game over notification", events)
	}
}

func TestTimeModeCountdown(t *testing.T) {
	e := newTestEngine(ModeTime, 9)
	limit := e.Rules().TimeLimitSecs
	countBefore := e.TileCount()

	for i := 0; i < limit; i++ {
		e.AdvanceTime()
	}

	if e.GameOver() {
		t.Fatal("Fresh grid should survive one injection")
	}
	if e.TileCount() != countBefore+Cols {
		t.Errorf("Expected exactly one injection (%d tiles), got %d tiles",
			countBefore+Cols, e.TileCount())
	}
	if e.TimeLeft() != limit {
		t.Errorf("TimeLeft = %d, expected reset to %d", e.TimeLeft(), limit)
	}
}

func TestAdvanceTimeIgnoredInClassic(t *testing.T) {
	e := newTestEngine(ModeClassic, 10)
	countBefore := e.TileCount()
	timeBefore := e.TimeLeft()

	for i := 0; i < 100; i++ {
		e.AdvanceTime()
	}

	if e.TileCount() != countBefore || e.TimeLeft() != timeBefore {
		t.Error("AdvanceTime must be a no-op in classic mode")
	}
}

func TestClassicClearInjectsRow(t *testing.T) {
	e := newTestEngine(ModeClassic, 11)
	setTiles(e,
		Tile{ID: 1, Value: 4, Row: 11, Col: 0},
		Tile{ID: 2, Value: 6, Row: 11, Col: 1},
		Tile{ID: 3, Value: 9, Row: 10, Col: 2},
	)
	e.target = 10

	e.ToggleTile(1)
	out := e.ToggleTile(2)

	if out.Result != SelectionCleared {
		t.Fatalf("Expected clear, got %+v", out)
	}

	// One survivor shifted up, plus a fresh bottom row
	if e.TileCount() != 1+Cols {
		t.Errorf("TileCount = %d, expected %d", e.TileCount(), 1+Cols)
	}
	if e.tiles[3].Row != 9 {
		t.Errorf("Survivor row = %d, expected 9 after the shift", e.tiles[3].Row)
	}
	assertNoCellCollisions(t, e)
}

func TestPauseBlocksMutation(t *testing.T) {
	e := newTestEngine(ModeTime, 12)
	id := e.Tiles()[0].ID
	timeBefore := e.TimeLeft()

	e.SetPaused(true)

	if out := e.ToggleTile(id); out.Result != SelectionNone {
		t.Errorf("Toggle while paused should be ignored, got %+v", out)
	}
	e.AdvanceTime()
	if e.TimeLeft() != timeBefore {
		t.Error("AdvanceTime while paused should be ignored")
	}
	if e.Snapshot().Status != StatusPaused {
		t.Errorf("Status = %s, expected paused", e.Snapshot().Status)
	}

	e.SetPaused(false)
	if out := e.ToggleTile(id); out.Result == SelectionNone {
		t.Error("Toggle after resume should work")
	}
}

func TestGameOverIsTerminal(t *testing.T) {
	e := newTestEngine(ModeTime, 13)
	setTiles(e, Tile{ID: 1, Value: 5, Row: 0, Col: 0})
	e.injectRow()
	e.TakeEvents()

	if !e.GameOver() {
		t.Fatal("Expected game over")
	}

	// No further mutation is permitted
	if out := e.ToggleTile(1); out.Result != SelectionNone {
		t.Error("Toggle after game over should be ignored")
	}
	timeBefore := e.TimeLeft()
	e.AdvanceTime()
	if e.TimeLeft() != timeBefore {
		t.Error("AdvanceTime after game over should be ignored")
	}
	e.SetPaused(true)
	if e.Paused() {
		t.Error("Pausing a finished session should be ignored")
	}

	// Restart starts a fresh session
	e.Restart()
	if e.GameOver() {
		t.Error("Restart should clear the game over flag")
	}
	if e.TileCount() != InitialRows*Cols {
		t.Errorf("Restart should repopulate the grid, got %d tiles", e.TileCount())
	}
	if e.Score() != 0 {
		t.Error("Restart should reset the score")
	}
}

func TestScoreMonotonicUnderRandomPlay(t *testing.T) {
	e := newTestEngine(ModeTime, 14)
	rng := rand.New(rand.NewSource(99))

	lastScore := 0
	for i := 0; i < 2000 && !e.GameOver(); i++ {
		switch rng.Intn(4) {
		case 0:
			e.AdvanceTime()
		default:
			tiles := e.Tiles()
			if len(tiles) > 0 {
				e.ToggleTile(tiles[rng.Intn(len(tiles))].ID)
			}
		}

		if e.Score() < lastScore {
			t.Fatalf("Score decreased from %d to %d at step %d", lastScore, e.Score(), i)
		}
		lastScore = e.Score()
		assertNoCellCollisions(t, e)
	}
}

func TestEmptySelectionNeverClears(t *testing.T) {
	e := newTestEngine(ModeClassic, 15)

	for _, target := range e.Rules().Targets {
		if target <= 0 {
			t.Fatalf("Target %d is not positive; an empty selection could match", target)
		}
	}

	// Toggling a tile on and off leaves the sum at zero without clearing
	id := e.Tiles()[0].ID
	e.ToggleTile(id)
	out := e.ToggleTile(id)

	if out.Result != SelectionOpen || out.Sum != 0 {
		t.Errorf("Deselecting to empty gave %+v, expected open with sum 0", out)
	}
	if e.Score() != 0 || len(e.TakeEvents()) != 0 {
		t.Error("Empty selection must never trigger a clear")
	}
}

func TestTargetAlwaysFromCandidateSet(t *testing.T) {
	candidates := make(map[int]bool)
	for _, target := range DefaultRules().Targets {
		candidates[target] = true
	}

	for seed := int64(0); seed < 50; seed++ {
		e := newTestEngine(ModeClassic, seed)
		if !candidates[e.Target()] {
			t.Errorf("Seed %d produced target %d outside the candidate set", seed, e.Target())
		}
	}
}

func TestRulesSanitize(t *testing.T) {
	bad := Rules{
		TimeLimitSecs: -5,
		ScorePerTile:  0,
		Targets:       []int{0, -3, 10},
	}
	clean := bad.sanitize()

	def := DefaultRules()
	if clean.TimeLimitSecs != def.TimeLimitSecs {
		t.Errorf("TimeLimitSecs = %d, expected default %d", clean.TimeLimitSecs, def.TimeLimitSecs)
	}
	if clean.ScorePerTile != def.ScorePerTile {
		t.Errorf("ScorePerTile = %d, expected default %d", clean.ScorePerTile, def.ScorePerTile)
	}
	if len(clean.Targets) != 1 || clean.Targets[0] != 10 {
		t.Errorf("Targets = %v, expected [10]", clean.Targets)
	}

	// All-invalid targets fall back to the default set
	clean = Rules{Targets: []int{0, -1}}.sanitize()
	if !reflect.DeepEqual(clean.Targets, def.Targets) {
		t.Errorf("Targets = %v, expected defaults %v", clean.Targets, def.Targets)
	}
}

func TestDeterminism(t *testing.T) {
	// Two engines with the same seed and operation sequence produce
	// identical snapshots.
	run := func() Snapshot {
		e := newTestEngine(ModeTime, 12345)
		rng := rand.New(rand.NewSource(777))
		for i := 0; i < 500 && !e.GameOver(); i++ {
			if i%7 == 0 {
				e.AdvanceTime()
			}
			tiles := e.Tiles()
			if len(tiles) > 0 {
				e.ToggleTile(tiles[rng.Intn(len(tiles))].ID)
			}
		}
		return e.Snapshot()
	}

	snap1 := run()
	snap2 := run()

	if !reflect.DeepEqual(snap1, snap2) {
		t.Errorf("Snapshots diverged:\n%+v\n%+v", snap1, snap2)
	}
}
