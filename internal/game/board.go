package game

// Board is the whole session state: one playthrough owns it exclusively and
// it is rebuilt wholesale on every reset. The frame loop passes it into Step
// and the renderer; nothing else mutates it.
type Board struct {
	Snake   []Cell // head first, tail last
	Dir     Direction
	Pending Direction // latched by input, committed at the start of each tick

	Food      Cell
	HasFood   bool
	Obstacles CellSet

	Score int
	Speed int // ticks per second

	State       GameState
	DeathReason string

	rng *Rand
	bus *EventBus
}

// NewBoard creates a fresh session in the menu state. The bus may be nil;
// collaborator events are then dropped.
func NewBoard(seed uint64, bus *EventBus) *Board {
	b := &Board{
		rng: NewRand(splitmix64(seed)),
		bus: bus,
	}
	b.Reset()
	b.State = StateMenu
	return b
}

// Reset produces a fresh valid starting state: a 3-cell snake centered on
// the grid facing right, one food cell, no obstacles. The mode is left
// untouched; Start and Restart own the transition into play.
func (b *Board) Reset() {
	head := Cell{X: GridWidth / 2, Y: GridHeight / 2}
	b.Snake = make([]Cell, 0, GridWidth*GridHeight)
	for i := 0; i < StartLength; i++ {
		b.Snake = append(b.Snake, Cell{X: head.X - i, Y: head.Y})
	}
	b.Dir = DirRight
	b.Pending = DirRight
	b.Obstacles = NewCellSet()
	b.Score = 0
	b.Speed = StartFPS
	b.DeathReason = ""
	b.placeFood()
}

// Start begins a new playthrough from the menu or a terminal state.
func (b *Board) Start() {
	b.Reset()
	b.State = StatePlaying
}

// TogglePause suspends or resumes ticking without touching entity state.
func (b *Board) TogglePause() {
	switch b.State {
	case StatePlaying:
		b.State = StatePaused
	case StatePaused:
		b.State = StatePlaying
	}
}

// Turn latches a pending direction change, applied atomically on the next
// tick. The exact opposite of the committed direction is rejected.
func (b *Board) Turn(d Direction) {
	if d == b.Dir.Opposite() {
		return
	}
	b.Pending = d
}

// AdjustSpeed nudges the tick rate by delta ticks/s, clamped.
func (b *Board) AdjustSpeed(delta int) {
	b.Speed = clamp(b.Speed+delta, MinFPS, MaxFPS)
}

// Step advances the session by exactly one discrete tick. It is a no-op
// outside the playing state.
func (b *Board) Step() {
	if b.State != StatePlaying {
		return
	}

	b.Dir = b.Pending
	newHead := b.Snake[0].Add(b.Dir)

	if !newHead.InBounds() {
		b.die(ReasonWall)
		return
	}

	willEat := b.HasFood && newHead == b.Food

	if b.Obstacles.Contains(newHead) {
		b.die(ReasonObstacle)
		return
	}

	// Self collision. On an eating move the tail does not retract this tick,
	// so the whole current body is solid; otherwise the tail cell is vacated
	// and the head may legally move into it.
	body := b.Snake
	if !willEat {
		body = body[:len(body)-1]
	}
	for _, c := range body {
		if c == newHead {
			b.die(ReasonSelf)
			return
		}
	}

	// Prepend the new head.
	b.Snake = append(b.Snake, Cell{})
	copy(b.Snake[1:], b.Snake)
	b.Snake[0] = newHead

	if !willEat {
		b.Snake = b.Snake[:len(b.Snake)-1]
		return
	}

	b.Score++
	if !b.placeFood() {
		// Board is full: the snake keeps its new length and the session ends.
		b.State = StateWin
		b.publish(Event{Type: EventWin, Score: b.Score, Length: len(b.Snake), Speed: b.Speed})
		return
	}
	b.Speed = clamp(b.Speed+1, MinFPS, MaxFPS)
	b.respawnObstacles()
	b.publish(Event{Type: EventAte, Score: b.Score, Length: len(b.Snake), Speed: b.Speed})
}

// placeFood picks a uniformly random free interior cell, excluding the snake
// and the current obstacles. Returns false when no candidate exists.
func (b *Board) placeFood() bool {
	exclude := NewCellSet(b.Snake...)
	for c := range b.Obstacles {
		exclude.Add(c)
	}
	candidates := FreeCells(exclude)
	if len(candidates) == 0 {
		b.HasFood = false
		return false
	}
	b.Food = candidates[b.rng.Intn(len(candidates))]
	b.HasFood = true
	return true
}

// respawnObstacles discards the previous obstacle set entirely and picks up
// to MaxObstacles fresh interior cells, avoiding the snake and the food.
func (b *Board) respawnObstacles() {
	exclude := NewCellSet(b.Snake...)
	if b.HasFood {
		exclude.Add(b.Food)
	}
	candidates := FreeCells(exclude)
	b.Obstacles = NewCellSet()
	n := min(MaxObstacles, len(candidates))
	// Partial Fisher-Yates: the first n slots end up as a uniform sample
	// without replacement.
	for i := 0; i < n; i++ {
		j := i + b.rng.Intn(len(candidates)-i)
		candidates[i], candidates[j] = candidates[j], candidates[i]
		b.Obstacles.Add(candidates[i])
	}
}

func (b *Board) die(reason string) {
	b.State = StateGameOver
	b.DeathReason = reason
	b.publish(Event{Type: EventGameOver, Reason: reason, Score: b.Score, Length: len(b.Snake), Speed: b.Speed})
}

func (b *Board) publish(e Event) {
	if b.bus != nil {
		b.bus.Emit(e)
	}
}
