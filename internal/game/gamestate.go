package game

type GameState int

const (
	StateMenu     GameState = iota
	StatePlaying            // ticking active
	StatePaused             // ticking suspended, state preserved
	StateGameOver           // terminal until restart
	StateWin                // terminal until restart
)

// Death reasons surfaced on the game-over screen and in the run log.
const (
	ReasonWall     = "Hit wall"
	ReasonObstacle = "Hit obstacle"
	ReasonSelf     = "Hit self"
)

// Terminal reports whether the session has ended and only a restart
// re-enters play.
func (s GameState) Terminal() bool {
	return s == StateGameOver || s == StateWin
}
