package sumgrid

import "sort"

// Tile is a single numbered unit occupying one grid cell. A tile's value
// and column never change; its row shifts up when a new row is injected.
type Tile struct {
	ID    int
	Value int
	Row   int
	Col   int
}

// Tiles returns all tiles on the grid, sorted by row then column.
func (e *Engine) Tiles() []Tile {
	out := make([]Tile, 0, len(e.tiles))
	for _, t := range e.tiles {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Row != out[j].Row {
			return out[i].Row < out[j].Row
		}
		return out[i].Col < out[j].Col
	})
	return out
}

// TileAt returns the tile occupying (row, col), if any.
func (e *Engine) TileAt(row, col int) (Tile, bool) {
	for _, t := range e.tiles {
		if t.Row == row && t.Col == col {
			return t, true
		}
	}
	return Tile{}, false
}

// TileCount returns the number of tiles currently on the grid.
func (e *Engine) TileCount() int {
	return len(e.tiles)
}

// addTile materializes a new random-valued tile at (row, col).
func (e *Engine) addTile(row, col int) {
	e.nextID++
	e.tiles[e.nextID] = Tile{
		ID:    e.nextID,
		Value: 1 + e.rng.Intn(MaxValue),
		Row:   row,
		Col:   col,
	}
}

// topRowOccupied reports whether any tile sits in row 0.
func (e *Engine) topRowOccupied() bool {
	for _, t := range e.tiles {
		if t.Row == 0 {
			return true
		}
	}
	return false
}
