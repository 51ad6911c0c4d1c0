package sumgrid

// Status describes where a session is in its lifecycle.
type Status string

const (
	StatusNotStarted Status = "not_started"
	StatusPlaying    Status = "playing"
	StatusPaused     Status = "paused"
	StatusGameOver   Status = "game_over"
)

// Snapshot captures the complete engine state for the renderer boundary and
// for determinism testing.
type Snapshot struct {
	Mode         Mode
	Status       Status
	Target       int
	Score        int
	TimeLeft     int
	TileCount    int
	Tiles        []Tile // Sorted by row, then column
	SelectedIDs  []int  // Ascending
	SelectionSum int
}

// Snapshot returns the current engine snapshot.
func (e *Engine) Snapshot() Snapshot {
	status := StatusPlaying
	switch {
	case !e.started:
		status = StatusNotStarted
	case e.gameOver:
		status = StatusGameOver
	case e.paused:
		status = StatusPaused
	}

	return Snapshot{
		Mode:         e.mode,
		Status:       status,
		Target:       e.target,
		Score:        e.score,
		TimeLeft:     e.timeLeft,
		TileCount:    len(e.tiles),
		Tiles:        e.Tiles(),
		SelectedIDs:  e.SelectedIDs(),
		SelectionSum: e.SelectionSum(),
	}
}
