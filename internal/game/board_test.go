package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPlayingBoard(t *testing.T, seed uint64) *Board {
	t.Helper()
	b := NewBoard(seed, nil)
	b.Start()
	require.Equal(t, StatePlaying, b.State)
	return b
}

func TestNewBoardStartsInMenu(t *testing.T) {
	b := NewBoard(1, nil)
	assert.Equal(t, StateMenu, b.State)
	assert.Len(t, b.Snake, StartLength)
	assert.True(t, b.HasFood)
}

func TestResetProducesValidStartingState(t *testing.T) {
	b := newPlayingBoard(t, 42)

	require.Len(t, b.Snake, StartLength)
	assert.Equal(t, Cell{X: GridWidth / 2, Y: GridHeight / 2}, b.Snake[0])
	assert.Equal(t, Cell{X: GridWidth/2 - 1, Y: GridHeight / 2}, b.Snake[1])
	assert.Equal(t, Cell{X: GridWidth/2 - 2, Y: GridHeight / 2}, b.Snake[2])
	assert.Equal(t, DirRight, b.Dir)
	assert.Equal(t, DirRight, b.Pending)
	assert.Equal(t, 0, b.Score)
	assert.Equal(t, StartFPS, b.Speed)
	assert.Empty(t, b.Obstacles)
	assert.Empty(t, b.DeathReason)

	require.True(t, b.HasFood)
	assert.GreaterOrEqual(t, b.Food.X, SpawnMargin)
	assert.LessOrEqual(t, b.Food.X, GridWidth-1-SpawnMargin)
	assert.GreaterOrEqual(t, b.Food.Y, SpawnMargin)
	assert.LessOrEqual(t, b.Food.Y, GridHeight-1-SpawnMargin)
	for _, c := range b.Snake {
		assert.NotEqual(t, c, b.Food)
	}
}

func TestStartIsIdempotentAcrossSessions(t *testing.T) {
	b := newPlayingBoard(t, 7)
	for i := 0; i < 4; i++ {
		b.Step()
	}
	b.Start()
	assert.Len(t, b.Snake, StartLength)
	assert.Equal(t, 0, b.Score)
	assert.Equal(t, StartFPS, b.Speed)
	assert.Equal(t, StatePlaying, b.State)
}

func TestEatGrowsScoresAndSpeedsUp(t *testing.T) {
	b := newPlayingBoard(t, 3)
	// Pin the food five cells ahead of the head so the outcome is exact.
	b.Food = Cell{X: GridWidth/2 + 5, Y: GridHeight / 2}
	b.HasFood = true

	for i := 0; i < 5; i++ {
		b.Step()
	}

	require.Equal(t, StatePlaying, b.State)
	assert.Equal(t, 1, b.Score)
	assert.Len(t, b.Snake, StartLength+1)
	assert.Equal(t, StartFPS+1, b.Speed)

	// Fresh food was placed somewhere else.
	require.True(t, b.HasFood)
	assert.NotEqual(t, Cell{X: GridWidth/2 + 5, Y: GridHeight / 2}, b.Food)

	// Obstacles regenerated: exactly the cap, inside the margin, and never
	// on the snake or the food.
	require.Len(t, b.Obstacles, MaxObstacles)
	occupied := NewCellSet(b.Snake...)
	for c := range b.Obstacles {
		assert.GreaterOrEqual(t, c.X, SpawnMargin)
		assert.LessOrEqual(t, c.X, GridWidth-1-SpawnMargin)
		assert.GreaterOrEqual(t, c.Y, SpawnMargin)
		assert.LessOrEqual(t, c.Y, GridHeight-1-SpawnMargin)
		assert.False(t, occupied.Contains(c), "obstacle on snake at %v", c)
		assert.NotEqual(t, b.Food, c, "obstacle on food")
	}
}

func TestObstaclesFullyRegenerateOnEveryEat(t *testing.T) {
	b := newPlayingBoard(t, 99)
	// Force two consecutive eats and compare the obstacle sets.
	b.Food = b.Snake[0].Add(DirRight)
	b.Step()
	require.Equal(t, 1, b.Score)

	// Drop the next food right ahead, evicting any obstacle that happened to
	// regenerate there so the eat is guaranteed.
	next := b.Snake[0].Add(DirRight)
	delete(b.Obstacles, next)
	first := NewCellSet()
	for c := range b.Obstacles {
		first.Add(c)
	}
	b.Food = next
	b.HasFood = true
	b.Step()
	require.Equal(t, 2, b.Score)
	require.Len(t, b.Obstacles, MaxObstacles)

	// Regeneration draws a fresh uniform sample; with ~500 candidates the
	// fixed-seed draw never reproduces the previous set.
	assert.NotEqual(t, first, b.Obstacles)
}

func TestWallCollisionEndsGame(t *testing.T) {
	b := newPlayingBoard(t, 5)
	b.Snake = []Cell{{X: 0, Y: 10}, {X: 1, Y: 10}, {X: 2, Y: 10}}
	b.Dir = DirLeft
	b.Pending = DirLeft

	b.Step()

	assert.Equal(t, StateGameOver, b.State)
	assert.Equal(t, ReasonWall, b.DeathReason)
	assert.Len(t, b.Snake, 3)
}

func TestObstacleCollisionEndsGame(t *testing.T) {
	b := newPlayingBoard(t, 5)
	b.Obstacles = NewCellSet(b.Snake[0].Add(DirRight))

	b.Step()

	assert.Equal(t, StateGameOver, b.State)
	assert.Equal(t, ReasonObstacle, b.DeathReason)
}

func TestSelfCollisionEndsGame(t *testing.T) {
	b := newPlayingBoard(t, 5)
	// A hook shape: moving down runs the head into the third segment.
	b.Snake = []Cell{
		{X: 5, Y: 5}, {X: 6, Y: 5}, {X: 6, Y: 6}, {X: 5, Y: 6}, {X: 4, Y: 6},
	}
	b.Dir = DirDown
	b.Pending = DirDown
	b.HasFood = false

	b.Step()

	assert.Equal(t, StateGameOver, b.State)
	assert.Equal(t, ReasonSelf, b.DeathReason)
}

func TestMovingIntoVacatedTailIsLegal(t *testing.T) {
	b := newPlayingBoard(t, 5)
	// A 2x2 loop: the head chases the tail, which retracts the same tick.
	b.Snake = []Cell{
		{X: 5, Y: 5}, {X: 6, Y: 5}, {X: 6, Y: 6}, {X: 5, Y: 6},
	}
	b.Dir = DirDown
	b.Pending = DirDown
	b.HasFood = false

	b.Step()

	assert.Equal(t, StatePlaying, b.State)
	assert.Equal(t, Cell{X: 5, Y: 6}, b.Snake[0])
	assert.Len(t, b.Snake, 4)
}

func TestEatingIntoTailCellIsFatal(t *testing.T) {
	b := newPlayingBoard(t, 5)
	// Same loop, but the tail cell holds food: the tail does not retract on
	// an eating move, so the whole body is solid.
	b.Snake = []Cell{
		{X: 5, Y: 5}, {X: 6, Y: 5}, {X: 6, Y: 6}, {X: 5, Y: 6},
	}
	b.Dir = DirDown
	b.Pending = DirDown
	b.Food = Cell{X: 5, Y: 6}
	b.HasFood = true

	b.Step()

	assert.Equal(t, StateGameOver, b.State)
	assert.Equal(t, ReasonSelf, b.DeathReason)
}

func TestReversalIsRejected(t *testing.T) {
	b := newPlayingBoard(t, 5)
	b.Turn(DirLeft)
	assert.Equal(t, DirRight, b.Pending)

	b.Turn(DirUp)
	assert.Equal(t, DirUp, b.Pending)
}

func TestReversalCheckedAgainstCommittedDirection(t *testing.T) {
	b := newPlayingBoard(t, 5)
	// Two turns inside one tick: up latches, then left is still rejected
	// because right remains the committed direction until the next Step.
	b.Turn(DirUp)
	b.Turn(DirLeft)
	assert.Equal(t, DirUp, b.Pending)
}

func TestSpeedClamping(t *testing.T) {
	b := newPlayingBoard(t, 5)
	for i := 0; i < 100; i++ {
		b.AdjustSpeed(1)
	}
	assert.Equal(t, MaxFPS, b.Speed)
	for i := 0; i < 100; i++ {
		b.AdjustSpeed(-1)
	}
	assert.Equal(t, MinFPS, b.Speed)
}

func TestStepIsNoOpOutsidePlaying(t *testing.T) {
	b := NewBoard(11, nil)
	require.Equal(t, StateMenu, b.State)
	head := b.Snake[0]
	b.Step()
	assert.Equal(t, head, b.Snake[0])

	b.Start()
	b.TogglePause()
	require.Equal(t, StatePaused, b.State)
	head = b.Snake[0]
	b.Step()
	assert.Equal(t, head, b.Snake[0])

	b.TogglePause()
	b.Step()
	assert.NotEqual(t, head, b.Snake[0])
}

func TestTogglePauseOnlyFlipsPlayStates(t *testing.T) {
	b := NewBoard(11, nil)
	b.TogglePause()
	assert.Equal(t, StateMenu, b.State)

	b.Start()
	b.Snake = []Cell{{X: 0, Y: 10}, {X: 1, Y: 10}, {X: 2, Y: 10}}
	b.Dir = DirLeft
	b.Pending = DirLeft
	b.Step()
	require.Equal(t, StateGameOver, b.State)
	b.TogglePause()
	assert.Equal(t, StateGameOver, b.State)
}

func TestWinWhenNoFoodCandidateRemains(t *testing.T) {
	b := newPlayingBoard(t, 8)
	b.Snake = []Cell{{X: 5, Y: 5}, {X: 4, Y: 5}, {X: 3, Y: 5}}
	b.Dir = DirRight
	b.Pending = DirRight
	b.Food = Cell{X: 6, Y: 5}
	b.HasFood = true

	// Block every other interior cell so the eat leaves nowhere for food.
	occupied := NewCellSet(b.Snake...)
	occupied.Add(b.Food)
	b.Obstacles = NewCellSet(FreeCells(occupied)...)
	speedBefore := b.Speed

	b.Step()

	assert.Equal(t, StateWin, b.State)
	assert.Equal(t, 1, b.Score)
	assert.False(t, b.HasFood)
	// The snake keeps its grown length and the speed does not bump.
	assert.Len(t, b.Snake, 4)
	assert.Equal(t, speedBefore, b.Speed)
}

func TestDeterministicReplay(t *testing.T) {
	run := func() *Board {
		b := NewBoard(1234, nil)
		b.Start()
		turns := []Direction{DirUp, DirRight, DirDown, DirRight, DirUp}
		for i := 0; i < 200 && b.State == StatePlaying; i++ {
			if i%7 == 0 {
				b.Turn(turns[(i/7)%len(turns)])
			}
			b.Step()
		}
		return b
	}

	a, b := run(), run()
	assert.Equal(t, a.Snake, b.Snake)
	assert.Equal(t, a.Score, b.Score)
	assert.Equal(t, a.Speed, b.Speed)
	assert.Equal(t, a.State, b.State)
	assert.Equal(t, a.Food, b.Food)
	assert.Equal(t, a.Obstacles, b.Obstacles)
}

func TestInvariantsHoldOverRandomPlay(t *testing.T) {
	for seed := uint64(1); seed <= 5; seed++ {
		b := NewBoard(seed, nil)
		b.Start()
		steer := NewRand(seed * 31)
		dirs := []Direction{DirUp, DirDown, DirLeft, DirRight}

		for i := 0; i < 1000 && b.State == StatePlaying; i++ {
			if steer.Intn(3) == 0 {
				b.Turn(dirs[steer.Intn(len(dirs))])
			}
			lenBefore := len(b.Snake)
			scoreBefore := b.Score
			b.Step()
			if b.State != StatePlaying {
				break
			}

			// Length grows exactly with the score.
			if b.Score > scoreBefore {
				assert.Equal(t, lenBefore+1, len(b.Snake))
			} else {
				assert.Equal(t, lenBefore, len(b.Snake))
			}

			// Snake cells are pairwise distinct and in bounds.
			seen := NewCellSet()
			for _, c := range b.Snake {
				assert.True(t, c.InBounds(), "seed %d tick %d: %v out of bounds", seed, i, c)
				assert.False(t, seen.Contains(c), "seed %d tick %d: duplicate cell %v", seed, i, c)
				seen.Add(c)
			}

			// Food never sits on the snake or an obstacle.
			if b.HasFood {
				assert.False(t, seen.Contains(b.Food))
				assert.False(t, b.Obstacles.Contains(b.Food))
			}
			assert.LessOrEqual(t, len(b.Obstacles), MaxObstacles)
			assert.GreaterOrEqual(t, b.Speed, MinFPS)
			assert.LessOrEqual(t, b.Speed, MaxFPS)
		}
	}
}
