// Package engine implements the 2048 rules: sliding and merging tiles,
// spawning new tiles and detecting terminal states.
//
// Every function is pure. A Board is a value; operations return a new Board
// and never modify their input. The only nondeterminism is tile spawning,
// which takes an explicit random source and ID source.
package engine

import (
	"errors"
	"fmt"
)

const (
	// Size is the board dimension.
	Size = 4
	// Cells is the number of slots on the board.
	Cells = Size * Size
	// WinValue is the tile value that wins the classic game.
	WinValue = 2048
)

var (
	// ErrInvalidDirection is returned for a direction outside Up/Down/Left/Right.
	ErrInvalidDirection = errors.New("engine: invalid direction")
	// ErrInvalidBoard is returned when a board holds a value that is not a power of two >= 2.
	ErrInvalidBoard = errors.New("engine: invalid board")
)

// TileID identifies a tile across moves.
type TileID string

// Tile is a single numbered tile. The zero Tile is an empty slot.
type Tile struct {
	ID      TileID
	Value   int
	Merged  bool // Produced by a merge during the last move
	Spawned bool // Placed by the last spawn
}

// Empty reports whether the slot holds no tile.
func (t Tile) Empty() bool {
	return t.Value == 0
}

// Board is the 4x4 grid in row-major order.
type Board [Cells]Tile

// NewBoard returns a board with every slot empty.
func NewBoard() Board {
	return Board{}
}

// Index converts a row/column pair to a slot index.
func Index(row, col int) int {
	return row*Size + col
}

// Coord converts a slot index to its row and column.
func Coord(index int) (row, col int) {
	return index / Size, index % Size
}

// At returns the tile at the given row and column.
func (b Board) At(row, col int) Tile {
	return b[Index(row, col)]
}

// Values returns the tile values, 0 for empty slots.
func (b Board) Values() [Cells]int {
	var vals [Cells]int
	for i, t := range b {
		vals[i] = t.Value
	}
	return vals
}

// FromValues builds a board from plain values, as stored by a save file.
// Each non-zero value becomes a fresh tile with an ID taken from ids.
func FromValues(vals [Cells]int, ids IDSource) (Board, error) {
	var b Board
	for i, v := range vals {
		if v == 0 {
			continue
		}
		if !validValue(v) {
			return Board{}, fmt.Errorf("%w: value %d at index %d", ErrInvalidBoard, v, i)
		}
		b[i] = Tile{ID: ids.NextID(), Value: v}
	}
	return b, nil
}

// Validate checks that every occupied slot holds a power of two >= 2.
func Validate(b Board) error {
	for i, t := range b {
		if t.Value != 0 && !validValue(t.Value) {
			return fmt.Errorf("%w: value %d at index %d", ErrInvalidBoard, t.Value, i)
		}
	}
	return nil
}

func validValue(v int) bool {
	return v >= 2 && v&(v-1) == 0
}

// ClearCues returns a copy of the board with merge/spawn cues reset.
func ClearCues(b Board) Board {
	for i := range b {
		b[i].Merged = false
		b[i].Spawned = false
	}
	return b
}

// String renders the board as four rows of values, '.' for empty.
func (b Board) String() string {
	out := make([]byte, 0, Cells*6)
	for row := range Size {
		for col := range Size {
			if col > 0 {
				out = append(out, ' ')
			}
			t := b.At(row, col)
			if t.Empty() {
				out = append(out, fmt.Sprintf("%5s", ".")...)
			} else {
				out = append(out, fmt.Sprintf("%5d", t.Value)...)
			}
		}
		if row < Size-1 {
			out = append(out, '\n')
		}
	}
	return string(out)
}
