package engine

// EmptyIndices returns the indices of all empty slots in ascending order.
func EmptyIndices(b Board) []int {
	var out []int
	for i, t := range b {
		if t.Empty() {
			out = append(out, i)
		}
	}
	return out
}

// HasEmptyCell reports whether at least one slot is empty.
func HasEmptyCell(b Board) bool {
	for _, t := range b {
		if t.Empty() {
			return true
		}
	}
	return false
}

// HasPossibleMerge reports whether any horizontally or vertically adjacent
// tiles share a value.
func HasPossibleMerge(b Board) bool {
	for r := range Size {
		for c := range Size {
			v := b.At(r, c).Value
			if v == 0 {
				continue
			}
			if c < Size-1 && b.At(r, c+1).Value == v {
				return true
			}
			if r < Size-1 && b.At(r+1, c).Value == v {
				return true
			}
		}
	}
	return false
}

// IsGameOver reports whether the board is full and no merge is possible.
func IsGameOver(b Board) bool {
	return !HasEmptyCell(b) && !HasPossibleMerge(b)
}

// HasWon reports whether any tile equals WinValue.
func HasWon(b Board) bool {
	for _, t := range b {
		if t.Value == WinValue {
			return true
		}
	}
	return false
}

// Reaches reports whether any tile is at least target.
func Reaches(b Board, target int) bool {
	return target > 0 && MaxTile(b) >= target
}

// MaxTile returns the largest value on the board, 0 if empty.
func MaxTile(b Board) int {
	maxVal := 0
	for _, t := range b {
		maxVal = max(maxVal, t.Value)
	}
	return maxVal
}

// Sum returns the total of all tile values.
func Sum(b Board) int {
	total := 0
	for _, t := range b {
		total += t.Value
	}
	return total
}

// TileCount returns the number of occupied slots.
func TileCount(b Board) int {
	return Cells - len(EmptyIndices(b))
}
