package sim

// Snapshot is a copy of the observable simulation state. Hosts render
// from snapshots; mutating one never affects the simulation.
type Snapshot struct {
	Snake []Position // head first
	Dir   Direction
	Food  Position
	Score int
	State State
	Mode  BoundaryMode
}

// Snapshot captures the current state for rendering or replay checks.
func (s *Simulation) Snapshot() Snapshot {
	return Snapshot{
		Snake: s.Snake(),
		Dir:   s.dir,
		Food:  s.food,
		Score: s.score,
		State: s.state,
		Mode:  s.mode,
	}
}
