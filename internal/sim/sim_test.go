package sim

import "testing"

func newRunning(t *testing.T, mode BoundaryMode) *Simulation {
	t.Helper()
	s := New(12345)
	s.Reset(mode)
	return s
}

func TestStepBeforeResetIsNoop(t *testing.T) {
	s := New(1)

	s.Step()

	if s.State() != NotStarted {
		t.Errorf("State() = %v, expected NotStarted", s.State())
	}
	if s.Len() != 0 {
		t.Errorf("Len() = %d, expected 0 before Reset", s.Len())
	}
}

func TestResetInitialState(t *testing.T) {
	s := newRunning(t, Walled)

	if s.State() != Running {
		t.Errorf("State() = %v, expected Running", s.State())
	}
	if s.Len() != 1 {
		t.Errorf("Len() = %d, expected 1", s.Len())
	}
	if s.Head() != (Position{X: GridSize / 2, Y: GridSize / 2}) {
		t.Errorf("Head() = %v, expected grid center", s.Head())
	}
	if s.Score() != 0 {
		t.Errorf("Score() = %d, expected 0", s.Score())
	}
	if s.occupied(s.Food()) {
		t.Errorf("food %v placed on the snake", s.Food())
	}
}

func TestStraightRunScenario(t *testing.T) {
	// Snake at (10,10) moving right, food far away: after 5 steps the
	// head is at (15,10), length and score unchanged.
	s := newRunning(t, Walled)
	s.food = Position{X: 15, Y: 15}

	for range 5 {
		s.Step()
	}

	if s.Head() != (Position{X: 15, Y: 10}) {
		t.Errorf("Head() = %v, expected (15,10)", s.Head())
	}
	if s.Len() != 1 {
		t.Errorf("Len() = %d, expected 1", s.Len())
	}
	if s.Score() != 0 {
		t.Errorf("Score() = %d, expected 0", s.Score())
	}
	if s.State() != Running {
		t.Errorf("State() = %v, expected Running", s.State())
	}
}

func TestWalledEdgeIsTerminal(t *testing.T) {
	s := newRunning(t, Walled)
	s.snake = []Position{{X: GridSize - 1, Y: 10}}
	before := s.Snake()

	s.Step()

	if s.State() != GameOver {
		t.Errorf("State() = %v, expected GameOver", s.State())
	}
	after := s.Snake()
	if len(after) != len(before) || after[0] != before[0] {
		t.Errorf("snake changed on terminal step: %v -> %v", before, after)
	}
}

func TestWrapAroundScenario(t *testing.T) {
	s := newRunning(t, Wrap)
	s.snake = []Position{{X: GridSize - 1, Y: 10}}
	s.food = Position{X: 5, Y: 5}

	s.Step()

	if s.State() != Running {
		t.Errorf("State() = %v, expected Running after wrap", s.State())
	}
	if s.Head() != (Position{X: 0, Y: 10}) {
		t.Errorf("Head() = %v, expected (0,10)", s.Head())
	}
}

func TestWrapUnderflow(t *testing.T) {
	s := newRunning(t, Wrap)
	s.snake = []Position{{X: 10, Y: 0}}
	s.dir = Up
	s.pending = Up
	s.food = Position{X: 5, Y: 5}

	s.Step()

	if s.Head() != (Position{X: 10, Y: GridSize - 1}) {
		t.Errorf("Head() = %v, expected (10,%d)", s.Head(), GridSize-1)
	}
}

func TestSetDirectionRejectsReversal(t *testing.T) {
	s := newRunning(t, Walled)
	s.snake = []Position{{X: 5, Y: 5}, {X: 4, Y: 5}}
	s.food = Position{X: 15, Y: 15}

	if s.SetDirection(Left) {
		t.Error("SetDirection(Left) accepted while moving right")
	}

	s.Step()

	if s.Head() != (Position{X: 6, Y: 5}) {
		t.Errorf("Head() = %v, expected (6,5)", s.Head())
	}
	if s.State() != Running {
		t.Errorf("State() = %v, expected Running", s.State())
	}
}

func TestSetDirectionRejectsSameAxis(t *testing.T) {
	s := newRunning(t, Walled)

	// Same direction is also a same-axis request.
	if s.SetDirection(Right) {
		t.Error("SetDirection(Right) accepted while moving right")
	}
	if !s.SetDirection(Down) {
		t.Error("perpendicular turn rejected")
	}
}

func TestSetDirectionRejectsInvalidVectors(t *testing.T) {
	s := newRunning(t, Walled)

	invalid := []Direction{
		{1, 1},
		{-1, 1},
		{0, 2},
		{0, 0},
		{3, 0},
	}
	for _, d := range invalid {
		if s.SetDirection(d) {
			t.Errorf("SetDirection(%v) accepted non-unit vector", d)
		}
	}
}

func TestDirectionCoalescing(t *testing.T) {
	// Two accepted perpendicular requests between steps: only the last
	// one takes effect.
	s := newRunning(t, Walled)
	s.food = Position{X: 0, Y: 0}

	if !s.SetDirection(Up) {
		t.Fatal("SetDirection(Up) rejected")
	}
	if !s.SetDirection(Down) {
		t.Fatal("SetDirection(Down) rejected")
	}

	head := s.Head()
	s.Step()

	if s.Head() != (Position{X: head.X, Y: head.Y + 1}) {
		t.Errorf("Head() = %v, expected move down from %v", s.Head(), head)
	}
}

func TestEatingGrowsAndScores(t *testing.T) {
	s := newRunning(t, Walled)
	head := s.Head()
	s.food = Position{X: head.X + 1, Y: head.Y}

	s.Step()

	if s.Score() != FoodScore {
		t.Errorf("Score() = %d, expected %d", s.Score(), FoodScore)
	}
	if s.Len() != 2 {
		t.Errorf("Len() = %d, expected 2 after eating", s.Len())
	}
	if s.occupied(s.Food()) {
		t.Errorf("resampled food %v lies on the snake", s.Food())
	}
}

func TestNonEatingStepKeepsLength(t *testing.T) {
	s := newRunning(t, Walled)
	s.food = Position{X: 0, Y: 0}

	s.Step()

	if s.Len() != 1 {
		t.Errorf("Len() = %d, expected 1", s.Len())
	}
	if s.Score() != 0 {
		t.Errorf("Score() = %d, expected 0", s.Score())
	}
}

func TestSelfCollision(t *testing.T) {
	// Head at (5,5) moving right into (6,5), which the body occupies
	// and is not the tail about to vacate.
	s := newRunning(t, Walled)
	s.snake = []Position{
		{X: 5, Y: 5},
		{X: 5, Y: 6},
		{X: 6, Y: 6},
		{X: 6, Y: 5},
		{X: 6, Y: 4},
	}
	before := s.Snake()

	s.Step()

	if s.State() != GameOver {
		t.Errorf("State() = %v, expected GameOver", s.State())
	}
	after := s.Snake()
	if len(after) != len(before) {
		t.Fatalf("snake length changed on collision: %d -> %d", len(before), len(after))
	}
	for i := range before {
		if after[i] != before[i] {
			t.Errorf("segment %d changed on collision: %v -> %v", i, before[i], after[i])
		}
	}
}

func TestTailCellIsStillOccupied(t *testing.T) {
	// The tail has not been resolved when the new head is checked, so
	// moving onto the current tail cell is a collision.
	s := newRunning(t, Walled)
	s.snake = []Position{
		{X: 5, Y: 5},
		{X: 5, Y: 6},
		{X: 6, Y: 6},
		{X: 6, Y: 5}, // tail, directly right of the head
	}

	s.Step()

	if s.State() != GameOver {
		t.Errorf("State() = %v, expected GameOver when moving onto the tail", s.State())
	}
}

func TestPauseResume(t *testing.T) {
	s := newRunning(t, Walled)
	s.food = Position{X: 0, Y: 0}
	head := s.Head()

	s.Pause()
	if s.State() != Paused {
		t.Fatalf("State() = %v, expected Paused", s.State())
	}

	s.Step()
	if s.Head() != head {
		t.Errorf("Step moved the snake while paused")
	}

	// Direction requested during pause applies on the step after resume.
	if !s.SetDirection(Down) {
		t.Error("SetDirection rejected while paused")
	}

	s.Resume()
	s.Step()

	if s.Head() != (Position{X: head.X, Y: head.Y + 1}) {
		t.Errorf("Head() = %v, expected queued turn applied after resume", s.Head())
	}
}

func TestTogglePause(t *testing.T) {
	s := newRunning(t, Walled)

	s.TogglePause()
	if s.State() != Paused {
		t.Errorf("State() = %v, expected Paused", s.State())
	}
	s.TogglePause()
	if s.State() != Running {
		t.Errorf("State() = %v, expected Running", s.State())
	}

	s.state = GameOver
	s.TogglePause()
	if s.State() != GameOver {
		t.Errorf("TogglePause changed a terminal state to %v", s.State())
	}
}

func TestStepAfterGameOverIsNoop(t *testing.T) {
	s := newRunning(t, Walled)
	s.snake = []Position{{X: 0, Y: 10}}
	s.dir = Left
	s.pending = Left

	s.Step()
	if s.State() != GameOver {
		t.Fatalf("State() = %v, expected GameOver", s.State())
	}

	snap := s.Snapshot()
	s.Step()
	after := s.Snapshot()

	if after.Score != snap.Score || after.Food != snap.Food || len(after.Snake) != len(snap.Snake) {
		t.Error("Step changed state after game over")
	}
}

func TestSetBoundaryModeOnlyWhileInactive(t *testing.T) {
	s := New(7)

	if !s.SetBoundaryMode(Wrap) {
		t.Error("SetBoundaryMode rejected before start")
	}

	s.Reset(Walled)
	if s.SetBoundaryMode(Wrap) {
		t.Error("SetBoundaryMode accepted while running")
	}
	if s.Mode() != Walled {
		t.Errorf("Mode() = %v, expected Walled", s.Mode())
	}

	s.state = GameOver
	if !s.SetBoundaryMode(Wrap) {
		t.Error("SetBoundaryMode rejected after game over")
	}
}

func TestSegmentsStayDistinctAndInBounds(t *testing.T) {
	// Drive a seeded game with a fixed turn pattern and check the
	// post-step invariants until it ends.
	turns := []Direction{Down, Left, Up, Right}
	s := newRunning(t, Walled)

	for i := 0; i < 2000 && s.State() == Running; i++ {
		if i%3 == 0 {
			s.SetDirection(turns[(i/3)%len(turns)])
		}
		s.Step()

		seen := make(map[Position]bool)
		for _, seg := range s.Snake() {
			if seg.X < 0 || seg.X >= GridSize || seg.Y < 0 || seg.Y >= GridSize {
				t.Fatalf("segment %v out of bounds at step %d", seg, i)
			}
			if s.State() != GameOver && seen[seg] {
				t.Fatalf("duplicate segment %v at step %d", seg, i)
			}
			seen[seg] = true
		}
		if s.State() == Running && s.occupied(s.Food()) {
			t.Fatalf("food %v on snake at step %d", s.Food(), i)
		}
	}
}

func TestDeterminism(t *testing.T) {
	run := func() Snapshot {
		s := New(98765)
		s.Reset(Wrap)
		for i := range 500 {
			if i%7 == 0 {
				s.SetDirection(Down)
			}
			if i%13 == 0 {
				s.SetDirection(Right)
			}
			s.Step()
		}
		return s.Snapshot()
	}

	a, b := run(), run()

	if a.Score != b.Score {
		t.Errorf("score mismatch: %d vs %d", a.Score, b.Score)
	}
	if a.Food != b.Food {
		t.Errorf("food mismatch: %v vs %v", a.Food, b.Food)
	}
	if len(a.Snake) != len(b.Snake) {
		t.Fatalf("length mismatch: %d vs %d", len(a.Snake), len(b.Snake))
	}
	for i := range a.Snake {
		if a.Snake[i] != b.Snake[i] {
			t.Errorf("segment %d mismatch: %v vs %v", i, a.Snake[i], b.Snake[i])
		}
	}
}

func TestSnapshotIsACopy(t *testing.T) {
	s := newRunning(t, Walled)
	snap := s.Snapshot()

	snap.Snake[0] = Position{X: -99, Y: -99}

	if s.Head() == (Position{X: -99, Y: -99}) {
		t.Error("mutating a snapshot changed the simulation")
	}
}

func TestFoodPlacementNearFullBoard(t *testing.T) {
	// Occupy everything except one cell; the fallback scan must find it.
	s := newRunning(t, Walled)
	s.snake = s.snake[:0]
	hole := Position{X: 3, Y: 7}
	for y := range GridSize {
		for x := range GridSize {
			p := Position{X: x, Y: y}
			if p != hole {
				s.snake = append(s.snake, p)
			}
		}
	}

	s.placeFood()

	if s.Food() != hole {
		t.Errorf("Food() = %v, expected the only free cell %v", s.Food(), hole)
	}

	// Completely full board parks the food off-grid instead of looping.
	s.snake = append(s.snake, hole)
	s.placeFood()
	if s.Food() != (Position{X: -1, Y: -1}) {
		t.Errorf("Food() = %v, expected off-grid placement", s.Food())
	}
}
