package sim

// Behavior is one stateless per-entity transform. A pass applies a behavior to
// every entity whose capabilities satisfy Applies; the rest pass through.
//
// snapshot is the entity list as it was when the pass started, so no entity
// observes another's update from the same pass.
type Behavior interface {
	Applies(e Entity) bool
	Apply(e Entity, grid Grid, input Vector2, snapshot []Entity) (Entity, Grid)
}

// passes is the fixed frame order: input, then damage, then movement.
// Damage resolves against the intended destination before movement commits it.
var passes = [...]Behavior{
	InputBehavior{},
	DamageBehavior{},
	MovementBehavior{},
}

// InputBehavior copies the frame input into the pending move.
type InputBehavior struct{}

// Applies selects entities that accept input.
func (InputBehavior) Applies(e Entity) bool {
	return e.Capabilities.AcceptsInput
}

// Apply overwrites any prior pending move with the frame input.
func (InputBehavior) Apply(e Entity, grid Grid, input Vector2, _ []Entity) (Entity, Grid) {
	e.DeltaPosition = input
	return e, grid
}

// DamageBehavior resolves team combat and death.
//
// A living entity whose intended tile holds an opposing-team entity attacks it:
// the attacker's pending move is cancelled. A living entity targeted by at least
// one living opposing attacker loses one health point; simultaneous attackers
// still cost a single point per frame.
//
// An entity found at zero health loses its input and damage capabilities for
// good and keeps its position from then on.
type DamageBehavior struct{}

// Applies selects entities that resolve damage.
func (DamageBehavior) Applies(e Entity) bool {
	return e.Capabilities.ResolvesDamage
}

// Apply resolves one entity against the pass snapshot.
func (DamageBehavior) Apply(e Entity, grid Grid, _ Vector2, snapshot []Entity) (Entity, Grid) {
	if !e.Alive() {
		e.Health = 0
		e.Capabilities.AcceptsInput = false
		e.Capabilities.ResolvesDamage = false
		e.DeltaPosition = Vector2{}
		return e, grid
	}

	intended := e.Intended()
	attacking := false
	attacked := false
	for i := range snapshot {
		other := snapshot[i]
		if other.Team == e.Team {
			continue
		}
		if other.Position == intended {
			attacking = true
		}
		if isAttacker(other) && other.Intended() == e.Position {
			attacked = true
		}
	}

	if attacked {
		e.Health--
	}
	if attacking {
		e.DeltaPosition = Vector2{}
	}
	return e, grid
}

// isAttacker reports whether an entity can land a hit this frame.
func isAttacker(e Entity) bool {
	return e.Capabilities.ResolvesDamage && e.Alive() && !e.DeltaPosition.IsZero()
}

// MovementBehavior commits pending moves onto walkable tiles.
type MovementBehavior struct{}

// Applies selects entities that resolve movement.
func (MovementBehavior) Applies(e Entity) bool {
	return e.Capabilities.ResolvesMovement
}

// Apply moves the entity if its destination exists and is not a wall.
// The pending move is consumed either way.
func (MovementBehavior) Apply(e Entity, grid Grid, _ Vector2, _ []Entity) (Entity, Grid) {
	if t, ok := grid.Tile(e.Intended()); ok && t.Walkable() {
		e.Position.AddAssign(e.DeltaPosition)
	}
	e.DeltaPosition = Vector2{}
	return e, grid
}
