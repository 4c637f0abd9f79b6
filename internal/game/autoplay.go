package game

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/engine"
)

// Strategy picks moves for headless play.
type Strategy string

const (
	StrategyCycle  Strategy = "cycle"  // Up, Right, Down, Left in turn
	StrategyRandom Strategy = "random" // Any movable direction
	StrategyCorner Strategy = "corner" // Keep tiles in the bottom-left corner
)

// Strategies lists the known strategies.
var Strategies = []Strategy{StrategyCycle, StrategyRandom, StrategyCorner}

// ParseStrategy validates a strategy name.
func ParseStrategy(s string) (Strategy, error) {
	for _, st := range Strategies {
		if string(st) == s {
			return st, nil
		}
	}
	return "", fmt.Errorf("game: unknown strategy %q", s)
}

var (
	cycleOrder  = [...]engine.Direction{engine.Up, engine.Right, engine.Down, engine.Left}
	cornerOrder = [...]engine.Direction{engine.Down, engine.Left, engine.Right, engine.Up}
)

// AutoplayResult summarizes a headless run.
type AutoplayResult struct {
	Board    engine.Board
	Score    int
	Moves    int
	MaxTile  int
	Level    int // Campaign level reached (1-indexed), 0 otherwise
	GameOver bool
	Won      bool // Board holds the win tile
}

// Autoplay drives g with the strategy until the game ends or maxMoves board
// changes happened. Win notifications and level banners are dismissed. rng is
// only used by StrategyRandom.
func Autoplay(g *Game, strategy Strategy, maxMoves int, rng *rand.Rand) AutoplayResult {
	for g.moves < maxMoves {
		st := g.State()
		if st.GameOver {
			break
		}
		if g.won || g.levelCleared {
			g.Step(core.FrameOf(core.ActionContinue))
			continue
		}

		dir, ok := g.pick(strategy, rng)
		if !ok {
			break
		}
		g.Step(core.FrameOf(actionFor(dir)))
	}

	res := AutoplayResult{
		Board:    g.board,
		Score:    g.score,
		Moves:    g.moves,
		MaxTile:  engine.MaxTile(g.board),
		GameOver: g.gameOver || g.campaignDone,
		Won:      g.reachedWin(),
	}
	if g.mode == ModeCampaign {
		res.Level = g.levelIndex + 1
	}
	return res
}

// pick returns the first direction in strategy order that changes the board.
func (g *Game) pick(strategy Strategy, rng *rand.Rand) (engine.Direction, bool) {
	var order []engine.Direction
	switch strategy {
	case StrategyRandom:
		for _, i := range rng.Perm(len(engine.Directions)) {
			order = append(order, engine.Directions[i])
		}
	case StrategyCorner:
		order = cornerOrder[:]
	default:
		start := g.moves % len(cycleOrder)
		order = append(order, cycleOrder[start:]...)
		order = append(order, cycleOrder[:start]...)
	}

	for _, dir := range order {
		if engine.CanMove(g.board, dir) {
			return dir, true
		}
	}
	return 0, false
}

// actionFor maps a direction to its input action.
func actionFor(dir engine.Direction) core.Action {
	switch dir {
	case engine.Up:
		return core.ActionUp
	case engine.Down:
		return core.ActionDown
	case engine.Left:
		return core.ActionLeft
	default:
		return core.ActionRight
	}
}
