package engine

import (
	"strconv"
	"sync/atomic"

	"github.com/google/uuid"
)

// DefaultSpawn4Prob is the chance that a spawned tile is a 4 rather than a 2.
const DefaultSpawn4Prob = 0.1

// Rand is the random source used for spawning. *math/rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
	Float64() float64
}

// IDSource hands out tile identities.
type IDSource interface {
	NextID() TileID
}

// UUIDSource issues random UUIDs.
type UUIDSource struct{}

// NextID returns a new random UUID.
func (UUIDSource) NextID() TileID {
	return TileID(uuid.NewString())
}

// CounterSource issues monotonically increasing IDs ("t1", "t2", ...).
// Safe for concurrent use.
type CounterSource struct {
	n atomic.Uint64
}

// NextID returns the next ID in sequence.
func (c *CounterSource) NextID() TileID {
	return TileID("t" + strconv.FormatUint(c.n.Add(1), 10))
}

// Spawner places new tiles.
type Spawner struct {
	Rand       Rand
	IDs        IDSource
	Spawn4Prob float64
}

// NewSpawner creates a spawner with the standard 90/10 split.
func NewSpawner(rng Rand, ids IDSource) Spawner {
	return Spawner{Rand: rng, IDs: ids, Spawn4Prob: DefaultSpawn4Prob}
}

// Spawn places one tile in a uniformly chosen empty slot. The new tile is
// flagged Spawned and all other spawn flags are cleared. A full board is
// returned unchanged.
func (s Spawner) Spawn(b Board) Board {
	empty := EmptyIndices(b)
	if len(empty) == 0 {
		return b
	}

	idx := empty[s.Rand.Intn(len(empty))]

	value := 2
	if s.Rand.Float64() < s.Spawn4Prob {
		value = 4
	}

	for i := range b {
		b[i].Spawned = false
	}
	b[idx] = Tile{ID: s.IDs.NextID(), Value: value, Spawned: true}
	return b
}

// SpawnRandomTile places a 2 (90%) or 4 (10%) in a random empty slot.
func SpawnRandomTile(b Board, rng Rand, ids IDSource) Board {
	return NewSpawner(rng, ids).Spawn(b)
}
