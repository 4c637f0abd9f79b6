package engine

// MoveResult is the outcome of applying a direction to a board.
type MoveResult struct {
	Board      Board
	ScoreDelta int
	Changed    bool // At least one slot's value differs from the input
}

// compactRow slides a row to the left, merging equal adjacent tiles in a single
// left-to-right pass. A merged tile keeps the left tile's ID and never merges
// again in the same move.
func compactRow(row [Size]Tile) (result [Size]Tile, score int) {
	write := 0
	mergeable := false // result[write-1] can still absorb a tile

	for _, t := range row {
		if t.Empty() {
			continue
		}
		t.Merged = false
		t.Spawned = false

		if mergeable && result[write-1].Value == t.Value {
			result[write-1].Value *= 2
			result[write-1].Merged = true
			score += result[write-1].Value
			mergeable = false
			continue
		}

		result[write] = t
		write++
		mergeable = true
	}

	return result, score
}

// ApplyMove slides every tile in dir and merges pairs.
//
// The board is rotated so that dir becomes a left move, each row is compacted
// independently, and the result is rotated back. Changed is false when no slot
// changed value; in that case the returned board holds the same tiles (IDs
// included) as the input, with merge/spawn cues cleared.
func ApplyMove(b Board, dir Direction) (MoveResult, error) {
	if !dir.Valid() {
		return MoveResult{}, ErrInvalidDirection
	}
	if err := Validate(b); err != nil {
		return MoveResult{}, err
	}

	turns := turnsFor(dir)
	work := rotate(b, turns)

	var next Board
	score := 0
	for r := range Size {
		var row [Size]Tile
		copy(row[:], work[r*Size:(r+1)*Size])
		compacted, gained := compactRow(row)
		copy(next[r*Size:(r+1)*Size], compacted[:])
		score += gained
	}

	next = rotate(next, -turns)

	return MoveResult{
		Board:      next,
		ScoreDelta: score,
		Changed:    next.Values() != b.Values(),
	}, nil
}

// CanMove reports whether moving in dir would change the board.
func CanMove(b Board, dir Direction) bool {
	res, err := ApplyMove(b, dir)
	return err == nil && res.Changed
}
