// Package sim implements the snake simulation: a fixed 20x20 grid, one
// snake, one food cell, and a step function driven by an external timer.
// It contains pure logic with no platform dependencies so it stays
// deterministic and testable.
package sim

import "math/rand"

// GridSize is the side length of the square play field.
const GridSize = 20

// FoodScore is the score awarded for each food eaten.
const FoodScore = 10

// Position is a cell on the grid.
type Position struct {
	X, Y int
}

// Direction is an axis-aligned unit vector.
type Direction struct {
	DX, DY int
}

// The four valid movement directions.
var (
	Up    = Direction{0, -1}
	Down  = Direction{0, 1}
	Left  = Direction{-1, 0}
	Right = Direction{1, 0}
)

// String returns a human-readable name for the direction.
func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "invalid"
	}
}

// valid reports whether d is one of the four unit vectors.
func (d Direction) valid() bool {
	return d == Up || d == Down || d == Left || d == Right
}

// State is the simulation's lifecycle state.
type State int

const (
	NotStarted State = iota
	Running
	Paused
	GameOver
)

// String returns a human-readable name for the state.
func (s State) String() string {
	switch s {
	case NotStarted:
		return "not_started"
	case Running:
		return "running"
	case Paused:
		return "paused"
	case GameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// BoundaryMode selects what happens when the head would leave the grid.
type BoundaryMode int

const (
	// Walled ends the game when the head crosses the edge.
	Walled BoundaryMode = iota
	// Wrap reduces each coordinate modulo GridSize instead.
	Wrap
)

// String returns a human-readable name for the boundary mode.
func (m BoundaryMode) String() string {
	if m == Wrap {
		return "wrap"
	}
	return "walled"
}

// maxSampleAttempts bounds the uniform rejection sampling before food
// placement falls back to scanning for free cells.
const maxSampleAttempts = 4 * GridSize * GridSize

// Simulation owns the snake, food, direction, score and game state.
// It advances one cell per Step call; a host drives Step from a
// fixed-period timer and SetDirection from keyboard input.
type Simulation struct {
	rng  *rand.Rand
	mode BoundaryMode

	snake   []Position // head first, never empty after Reset
	dir     Direction  // direction of the last executed move
	pending Direction  // buffered direction, consumed once per Step
	food    Position
	score   int
	state   State
}

// New creates a simulation in the NotStarted state.
// Step is a no-op until Reset is called.
func New(seed int64) *Simulation {
	return &Simulation{
		rng:   rand.New(rand.NewSource(seed)),
		mode:  Walled,
		state: NotStarted,
	}
}

// Reset starts (or restarts) a game with the given boundary mode: a
// single-segment snake at the grid center, moving right, fresh food,
// score zero, state Running.
func (s *Simulation) Reset(mode BoundaryMode) {
	s.mode = mode
	s.snake = []Position{{X: GridSize / 2, Y: GridSize / 2}}
	s.dir = Right
	s.pending = Right
	s.score = 0
	s.state = Running
	s.placeFood()
}

// SetBoundaryMode changes the boundary policy. Accepted only while the
// game is not running; returns whether the change was applied.
func (s *Simulation) SetBoundaryMode(mode BoundaryMode) bool {
	if s.state == Running || s.state == Paused {
		return false
	}
	s.mode = mode
	return true
}

// SetDirection requests a turn for the next step. Only perpendicular
// turns are accepted: a vector along the current travel axis (which
// includes the direct reversal) is ignored, as is anything that is not
// one of the four unit vectors. Requests are accepted while Running or
// Paused; a change made during pause applies on the first step after
// resume. Returns whether the request was accepted.
func (s *Simulation) SetDirection(d Direction) bool {
	if s.state != Running && s.state != Paused {
		return false
	}
	if !d.valid() {
		return false
	}
	// Same axis as current travel means either a no-op or a reversal
	// into the neck. Both are rejected.
	if (d.DX != 0) == (s.dir.DX != 0) {
		return false
	}
	s.pending = d
	return true
}

// Step advances the simulation by one cell. It is a guaranteed no-op
// unless the state is Running. Between two steps only the most recently
// accepted direction takes effect.
func (s *Simulation) Step() {
	if s.state != Running {
		return
	}

	s.dir = s.pending
	head := s.snake[0]
	newHead := Position{X: head.X + s.dir.DX, Y: head.Y + s.dir.DY}

	switch s.mode {
	case Walled:
		if newHead.X < 0 || newHead.X >= GridSize || newHead.Y < 0 || newHead.Y >= GridSize {
			s.state = GameOver
			return
		}
	case Wrap:
		newHead.X = wrap(newHead.X)
		newHead.Y = wrap(newHead.Y)
	}

	// The tail has not moved yet this step, so it counts as occupied.
	if s.occupied(newHead) {
		s.state = GameOver
		return
	}

	s.snake = append([]Position{newHead}, s.snake...)

	if newHead == s.food {
		s.score += FoodScore
		s.placeFood()
		return // tail retained: growth by one segment
	}
	s.snake = s.snake[:len(s.snake)-1]
}

// Pause suspends the simulation. Step becomes a no-op; direction
// requests are still accepted.
func (s *Simulation) Pause() {
	if s.state == Running {
		s.state = Paused
	}
}

// Resume continues a paused simulation.
func (s *Simulation) Resume() {
	if s.state == Paused {
		s.state = Running
	}
}

// TogglePause flips between Running and Paused.
func (s *Simulation) TogglePause() {
	switch s.state {
	case Running:
		s.state = Paused
	case Paused:
		s.state = Running
	}
}

// Snake returns a copy of the snake body, head first.
func (s *Simulation) Snake() []Position {
	out := make([]Position, len(s.snake))
	copy(out, s.snake)
	return out
}

// Head returns the head position. Valid only after Reset.
func (s *Simulation) Head() Position {
	if len(s.snake) == 0 {
		return Position{}
	}
	return s.snake[0]
}

// Food returns the current food position.
func (s *Simulation) Food() Position {
	return s.food
}

// Score returns the current score.
func (s *Simulation) Score() int {
	return s.score
}

// State returns the current lifecycle state.
func (s *Simulation) State() State {
	return s.state
}

// Mode returns the active boundary mode.
func (s *Simulation) Mode() BoundaryMode {
	return s.mode
}

// Len returns the snake length.
func (s *Simulation) Len() int {
	return len(s.snake)
}

// occupied reports whether any snake segment is at p.
func (s *Simulation) occupied(p Position) bool {
	for _, seg := range s.snake {
		if seg == p {
			return true
		}
	}
	return false
}

// placeFood draws uniform random cells until one misses the snake.
// When the board is nearly full the sampling is capped and placement
// falls back to scanning for free cells; with no free cell left the
// food is parked off-grid.
func (s *Simulation) placeFood() {
	if len(s.snake) < GridSize*GridSize {
		for range maxSampleAttempts {
			p := Position{X: s.rng.Intn(GridSize), Y: s.rng.Intn(GridSize)}
			if !s.occupied(p) {
				s.food = p
				return
			}
		}
	}

	var free []Position
	for y := range GridSize {
		for x := range GridSize {
			p := Position{X: x, Y: y}
			if !s.occupied(p) {
				free = append(free, p)
			}
		}
	}
	if len(free) == 0 {
		s.food = Position{X: -1, Y: -1}
		return
	}
	s.food = free[s.rng.Intn(len(free))]
}

// wrap reduces a coordinate modulo GridSize, handling underflow.
func wrap(v int) int {
	v %= GridSize
	if v < 0 {
		v += GridSize
	}
	return v
}
