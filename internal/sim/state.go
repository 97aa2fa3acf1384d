package sim

// State is the whole simulated world. Hosts keep it between frames and hand it
// back to GameLoop; nothing else is retained by this package.
type State struct {
	Entities []Entity `json:"entities" yaml:"entities"`
	Grid     Grid     `json:"grid" yaml:"grid"`
	Frame    uint64   `json:"frame" yaml:"frame"`
}

// NewState creates a state at frame zero.
func NewState(grid Grid, entities []Entity) State {
	return State{
		Entities: entities,
		Grid:     grid,
	}
}

// Process advances the world by one frame.
// Each pass completes over every entity before the next pass starts.
func (s *State) Process(input Vector2) {
	for _, b := range passes {
		s.runPass(b, input)
	}
	s.Frame++
}

// runPass applies one behavior to all entities against the pass-entry snapshot.
func (s *State) runPass(b Behavior, input Vector2) {
	snapshot := s.Entities
	next := make([]Entity, len(snapshot))
	grid := s.Grid
	for i, e := range snapshot {
		if !b.Applies(e) {
			next[i] = e
			continue
		}
		next[i], grid = b.Apply(e, grid, input, snapshot)
	}
	s.Entities = next
	s.Grid = grid
}

// Draw returns the grid's draw calls followed by each entity's, in order.
func (s State) Draw() []int {
	draws := s.Grid.Draw()
	for _, e := range s.Entities {
		draws = append(draws, e.Draw()...)
	}
	return draws
}

// Tile looks up a grid tile.
func (s State) Tile(p Vector2) (Tile, bool) {
	return s.Grid.Tile(p)
}

// Player returns the first input-driven entity on the player team.
// A dead player no longer accepts input, so the lookup falls back to the first
// player-colored member of the player team.
func (s State) Player() (Entity, bool) {
	for _, e := range s.Entities {
		if e.Team == TeamPlayer && e.Capabilities.AcceptsInput {
			return e, true
		}
	}
	for _, e := range s.Entities {
		if e.Team == TeamPlayer && e.BaseColor == ColorPlayer {
			return e, true
		}
	}
	return Entity{}, false
}

// Clone returns a deep copy of the state.
func (s State) Clone() State {
	entities := make([]Entity, len(s.Entities))
	copy(entities, s.Entities)
	return State{
		Entities: entities,
		Grid:     s.Grid.Clone(),
		Frame:    s.Frame,
	}
}

// Summary aggregates the outcome of a run so far.
type Summary struct {
	Frame           uint64
	PlayerHealth    int
	PlayerAlive     bool
	EnemiesTotal    int
	EnemiesDefeated int
}

// Over reports whether the run has ended: the player died or no enemy is left
// standing. A scenario without enemies never ends on its own.
func (s Summary) Over() bool {
	if !s.PlayerAlive {
		return true
	}
	return s.EnemiesTotal > 0 && s.EnemiesDefeated == s.EnemiesTotal
}

// EnemiesLeft returns the number of living enemies.
func (s Summary) EnemiesLeft() int {
	return s.EnemiesTotal - s.EnemiesDefeated
}

// Summary returns the current run summary.
func (s State) Summary() Summary {
	sum := Summary{Frame: s.Frame}
	if p, ok := s.Player(); ok {
		sum.PlayerHealth = p.Health
		sum.PlayerAlive = p.Alive()
	}
	for _, e := range s.Entities {
		if e.Team != TeamEnemy {
			continue
		}
		sum.EnemiesTotal++
		if !e.Alive() {
			sum.EnemiesDefeated++
		}
	}
	return sum
}
