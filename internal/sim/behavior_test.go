package sim

import "testing"

func TestInputBehavior(t *testing.T) {
	e := NewPlayer(NewVector2(1, 1))
	e.DeltaPosition = NewVector2(5, 5)
	grid := mustGrid(RoomRows)

	got, _ := InputBehavior{}.Apply(e, grid, NewVector2(-1, 0), nil)
	if got.DeltaPosition != NewVector2(-1, 0) {
		t.Errorf("DeltaPosition = %v, expected (-1,0)", got.DeltaPosition)
	}
	if got.Position != e.Position {
		t.Errorf("Position = %v, expected unchanged %v", got.Position, e.Position)
	}
}

func TestMovementBehavior(t *testing.T) {
	grid := mustGrid(RoomRows)

	tests := []struct {
		name     string
		start    Vector2
		delta    Vector2
		expected Vector2
	}{
		{"onto floor", NewVector2(1, 1), NewVector2(1, 0), NewVector2(2, 1)},
		{"into wall", NewVector2(1, 1), NewVector2(-1, 0), NewVector2(1, 1)},
		{"into top wall", NewVector2(2, 1), NewVector2(0, -1), NewVector2(2, 1)},
		{"out of grid", NewVector2(3, 3), NewVector2(5, 0), NewVector2(3, 3)},
		{"negative destination", NewVector2(1, 1), NewVector2(-2, -2), NewVector2(1, 1)},
		{"diagonal", NewVector2(1, 1), NewVector2(1, 1), NewVector2(2, 2)},
		{"no move", NewVector2(2, 2), NewVector2(0, 0), NewVector2(2, 2)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			e := NewPlayer(tc.start)
			e.DeltaPosition = tc.delta
			got, _ := MovementBehavior{}.Apply(e, grid, Vector2{}, nil)
			if got.Position != tc.expected {
				t.Errorf("Position = %v, expected %v", got.Position, tc.expected)
			}
			if !got.DeltaPosition.IsZero() {
				t.Errorf("DeltaPosition = %v, expected zero", got.DeltaPosition)
			}
		})
	}
}

func TestDamageBehaviorAttack(t *testing.T) {
	grid := mustGrid(ArenaRows)
	player := NewPlayer(NewVector2(2, 2))
	player.DeltaPosition = NewVector2(0, 1)
	enemy := NewEnemy(NewVector2(2, 3))
	snapshot := []Entity{player, enemy}

	gotPlayer, _ := DamageBehavior{}.Apply(player, grid, Vector2{}, snapshot)
	if !gotPlayer.DeltaPosition.IsZero() {
		t.Errorf("attacker DeltaPosition = %v, expected zero", gotPlayer.DeltaPosition)
	}
	if gotPlayer.Health != DefaultHealth {
		t.Errorf("attacker Health = %d, expected %d", gotPlayer.Health, DefaultHealth)
	}

	gotEnemy, _ := DamageBehavior{}.Apply(enemy, grid, Vector2{}, snapshot)
	if gotEnemy.Health != DefaultHealth-1 {
		t.Errorf("target Health = %d, expected %d", gotEnemy.Health, DefaultHealth-1)
	}
}

func TestDamageBehaviorSameTeam(t *testing.T) {
	grid := mustGrid(ArenaRows)
	player := NewPlayer(NewVector2(6, 7))
	player.DeltaPosition = NewVector2(1, 0)
	pickup := NewPickup(NewVector2(7, 7))
	snapshot := []Entity{player, pickup}

	got, _ := DamageBehavior{}.Apply(player, grid, Vector2{}, snapshot)
	if got.DeltaPosition != NewVector2(1, 0) {
		t.Errorf("DeltaPosition = %v, expected move kept toward a teammate", got.DeltaPosition)
	}
	if got.Health != DefaultHealth {
		t.Errorf("Health = %d, expected %d", got.Health, DefaultHealth)
	}
}

func TestDamageBehaviorSingleHitPerFrame(t *testing.T) {
	grid := mustGrid(ArenaRows)
	enemy := NewEnemy(NewVector2(2, 3))
	a := NewPlayer(NewVector2(2, 2))
	a.DeltaPosition = NewVector2(0, 1)
	b := NewPlayer(NewVector2(1, 3))
	b.DeltaPosition = NewVector2(1, 0)
	c := NewPlayer(NewVector2(2, 2))
	c.DeltaPosition = NewVector2(0, 1)
	snapshot := []Entity{a, b, c, enemy}

	got, _ := DamageBehavior{}.Apply(enemy, grid, Vector2{}, snapshot)
	if got.Health != DefaultHealth-1 {
		t.Errorf("Health = %d, expected %d with three attackers", got.Health, DefaultHealth-1)
	}
}

func TestDamageBehaviorDeadAttackerHarmless(t *testing.T) {
	grid := mustGrid(ArenaRows)
	player := NewPlayer(NewVector2(2, 2))
	player.DeltaPosition = NewVector2(0, 1)
	player.Health = 0
	enemy := NewEnemy(NewVector2(2, 3))

	got, _ := DamageBehavior{}.Apply(enemy, grid, Vector2{}, []Entity{player, enemy})
	if got.Health != DefaultHealth {
		t.Errorf("Health = %d, expected %d", got.Health, DefaultHealth)
	}
}

func TestDamageBehaviorDeath(t *testing.T) {
	grid := mustGrid(ArenaRows)
	e := NewPlayer(NewVector2(1, 1))
	e.Health = 0
	e.DeltaPosition = NewVector2(1, 0)

	got, _ := DamageBehavior{}.Apply(e, grid, Vector2{}, []Entity{e})
	if got.Capabilities.AcceptsInput || got.Capabilities.ResolvesDamage {
		t.Errorf("Capabilities = %+v, expected input and damage cleared", got.Capabilities)
	}
	if !got.Capabilities.ResolvesMovement {
		t.Error("movement capability should be kept")
	}
	if !got.DeltaPosition.IsZero() {
		t.Errorf("DeltaPosition = %v, expected zero", got.DeltaPosition)
	}
}

func TestPassesOrder(t *testing.T) {
	if len(passes) != 3 {
		t.Fatalf("len(passes) = %d, expected 3", len(passes))
	}
	if _, ok := passes[0].(InputBehavior); !ok {
		t.Errorf("passes[0] = %T, expected InputBehavior", passes[0])
	}
	if _, ok := passes[1].(DamageBehavior); !ok {
		t.Errorf("passes[1] = %T, expected DamageBehavior", passes[1])
	}
	if _, ok := passes[2].(MovementBehavior); !ok {
		t.Errorf("passes[2] = %T, expected MovementBehavior", passes[2])
	}
}
