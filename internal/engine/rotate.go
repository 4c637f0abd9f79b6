package engine

// rotateRight turns the board 90 degrees clockwise.
// The tile at (r, c) moves to (c, Size-1-r).
func rotateRight(b Board) Board {
	var out Board
	for r := range Size {
		for c := range Size {
			out[Index(c, Size-1-r)] = b[Index(r, c)]
		}
	}
	return out
}

// rotateLeft turns the board 90 degrees counter-clockwise.
// The tile at (r, c) moves to (Size-1-c, r).
func rotateLeft(b Board) Board {
	var out Board
	for r := range Size {
		for c := range Size {
			out[Index(Size-1-c, r)] = b[Index(r, c)]
		}
	}
	return out
}

// rotate applies n clockwise quarter turns (n may be negative).
func rotate(b Board, n int) Board {
	n %= 4
	if n < 0 {
		n += 4
	}
	for range n {
		b = rotateRight(b)
	}
	return b
}

// turnsFor returns the clockwise quarter turns that make dir equivalent to a
// left compaction. Undo with rotate(b, -turns).
func turnsFor(dir Direction) int {
	switch dir {
	case Up:
		return -1
	case Down:
		return 1
	case Right:
		return 2
	default:
		return 0
	}
}
