package sim_test

import (
	"reflect"
	"testing"

	"github.com/vovakirdan/gridsim/internal/sim"
)

func TestRunFrame(t *testing.T) {
	out := sim.GameLoop(sim.NewVector2(0, 0), sim.InitState())
	grid := out.State.Grid
	expected := 5*grid.Width*grid.Height + 5*len(out.State.Entities)
	if len(out.DrawCalls) != expected {
		t.Errorf("len(DrawCalls) = %d, expected %d", len(out.DrawCalls), expected)
	}
}

func TestRoomScenario(t *testing.T) {
	s := sim.InitRoomState()
	s = sim.GameLoop(sim.NewVector2(1, 0), s).State

	if tile, ok := s.Tile(sim.NewVector2(2, 1)); !ok || tile != sim.TileFloor {
		t.Errorf("Tile(2,1) = %v (%v), expected Floor", tile, ok)
	}
	if got := s.Entities[0].Position; got != sim.NewVector2(2, 1) {
		t.Errorf("player position = %v, expected (2,1)", got)
	}
}

func TestRoomWallsContainPlayer(t *testing.T) {
	s := sim.InitRoomState()
	for i := 0; i < 10; i++ {
		s = sim.GameLoop(sim.NewVector2(-1, -1), s).State
	}
	if got := s.Entities[0].Position; got != sim.NewVector2(1, 1) {
		t.Errorf("player position = %v, expected (1,1)", got)
	}
	for i := 0; i < 10; i++ {
		s = sim.GameLoop(sim.NewVector2(1, 1), s).State
	}
	if got := s.Entities[0].Position; got != sim.NewVector2(3, 3) {
		t.Errorf("player position = %v, expected (3,3)", got)
	}
}

func TestArenaAttackScenario(t *testing.T) {
	s := sim.InitState()
	const player, enemy = 0, 1

	s = sim.GameLoop(sim.NewVector2(1, 0), s).State
	if got := s.Entities[player].Position; got != sim.NewVector2(2, 1) {
		t.Fatalf("after step 1 player at %v, expected (2,1)", got)
	}
	s = sim.GameLoop(sim.NewVector2(0, 1), s).State
	if got := s.Entities[player].Position; got != sim.NewVector2(2, 2) {
		t.Fatalf("after step 2 player at %v, expected (2,2)", got)
	}
	if s.Entities[enemy].Health != sim.DefaultHealth {
		t.Fatalf("enemy damaged before contact: %d", s.Entities[enemy].Health)
	}

	s = sim.GameLoop(sim.NewVector2(0, 1), s).State
	if got := s.Entities[enemy].Health; got != sim.DefaultHealth-1 {
		t.Errorf("enemy health = %d, expected %d", got, sim.DefaultHealth-1)
	}
	if got := s.Entities[player].Position; got != sim.NewVector2(2, 2) {
		t.Errorf("player moved to %v during attack, expected (2,2)", got)
	}
	if got := s.Entities[player].Health; got != sim.DefaultHealth {
		t.Errorf("player health = %d, expected %d", got, sim.DefaultHealth)
	}
}

func TestDefeatEnemy(t *testing.T) {
	s := sim.InitState()
	s = sim.GameLoop(sim.NewVector2(1, 0), s).State
	s = sim.GameLoop(sim.NewVector2(0, 1), s).State

	prev := s.Entities[1].Health
	for i := 0; i < sim.DefaultHealth; i++ {
		s = sim.GameLoop(sim.NewVector2(0, 1), s).State
		h := s.Entities[1].Health
		if h < prev-1 {
			t.Fatalf("enemy lost %d health in one frame", prev-h)
		}
		prev = h
	}
	if got := s.Entities[1].Health; got != 0 {
		t.Fatalf("enemy health = %d, expected 0", got)
	}

	// Death is noticed on the following damage pass.
	s = sim.GameLoop(sim.NewVector2(0, 1), s).State
	caps := s.Entities[1].Capabilities
	if caps.AcceptsInput || caps.ResolvesDamage {
		t.Errorf("dead enemy capabilities = %+v", caps)
	}
	if got := s.Entities[1].Health; got != 0 {
		t.Errorf("dead enemy health = %d, expected 0", got)
	}
	// The body still blocks the tile.
	if got := s.Entities[0].Position; got != sim.NewVector2(2, 2) {
		t.Errorf("player position = %v, expected (2,2)", got)
	}

	sum := s.Summary()
	if sum.EnemiesDefeated != 1 || !sum.Over() {
		t.Errorf("Summary() = %+v, expected one enemy defeated and run over", sum)
	}
}

func TestDeathFreezesPlayer(t *testing.T) {
	s := sim.InitState()
	s.Entities[0].Health = 0

	inputs := []sim.Vector2{{X: 1}, {Y: 1}, {X: 1}, {Y: 1}, {X: -1}}
	for _, in := range inputs {
		s = sim.GameLoop(in, s).State
		p := s.Entities[0]
		if p.Capabilities.AcceptsInput || p.Capabilities.ResolvesDamage {
			t.Fatalf("dead player capabilities = %+v", p.Capabilities)
		}
		if p.Position != sim.NewVector2(1, 1) {
			t.Fatalf("dead player moved to %v", p.Position)
		}
	}

	sum := s.Summary()
	if sum.PlayerAlive || !sum.Over() {
		t.Errorf("Summary() = %+v, expected dead player and run over", sum)
	}
}

func TestZeroInputFrame(t *testing.T) {
	before := sim.InitState()
	after := sim.GameLoop(sim.NewVector2(0, 0), before).State

	for i := range before.Entities {
		b, a := before.Entities[i], after.Entities[i]
		if a.Position != b.Position || a.Health != b.Health {
			t.Errorf("entity %d changed: %+v -> %+v", i, b, a)
		}
		if !a.DeltaPosition.IsZero() {
			t.Errorf("entity %d delta = %v, expected zero", i, a.DeltaPosition)
		}
	}
	if after.Frame != before.Frame+1 {
		t.Errorf("Frame = %d, expected %d", after.Frame, before.Frame+1)
	}
}

func TestGameLoopDoesNotMutateInput(t *testing.T) {
	s := sim.InitState()
	orig := s.Clone()
	sim.GameLoop(sim.NewVector2(1, 0), s)
	if !reflect.DeepEqual(s, orig) {
		t.Error("GameLoop modified its state argument")
	}
}

func TestDeterminism(t *testing.T) {
	script := []sim.Vector2{
		{X: 1}, {Y: 1}, {Y: 1}, {Y: 1}, {X: 1}, {X: 1}, {Y: 1}, {Y: 1}, {X: -1}, {},
	}

	s1 := sim.InitState()
	s2 := sim.InitState()
	for i, in := range script {
		o1 := sim.GameLoop(in, s1)
		o2 := sim.GameLoop(in, s2)
		if !reflect.DeepEqual(o1, o2) {
			t.Fatalf("frame %d diverged", i)
		}
		s1, s2 = o1.State, o2.State
	}
}

func TestDrawOrder(t *testing.T) {
	s := sim.InitState()
	draws := s.Draw()
	gridLen := len(s.Grid.Draw())

	for i, e := range s.Entities {
		off := gridLen + 5*i
		if !reflect.DeepEqual(draws[off:off+5], e.Draw()) {
			t.Errorf("entity %d draw = %v, expected %v", i, draws[off:off+5], e.Draw())
		}
	}
}
