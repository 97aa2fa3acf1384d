package registry

import (
	"reflect"
	"testing"

	"github.com/vovakirdan/gridsim/internal/sim"
)

func TestBuiltinScenarios(t *testing.T) {
	for _, id := range []string{"arena", "room"} {
		if !Exists(id) {
			t.Errorf("scenario %q not registered", id)
		}
	}

	arena, err := Create("arena")
	if err != nil {
		t.Fatalf("Create(arena) failed: %v", err)
	}
	if !reflect.DeepEqual(arena, sim.InitState()) {
		t.Error("arena scenario differs from InitState()")
	}
}

func TestCreateReturnsFreshState(t *testing.T) {
	a, _ := Create("room")
	a.Entities[0].Health = 1
	b, _ := Create("room")
	if b.Entities[0].Health != sim.DefaultHealth {
		t.Error("Create() shares entity storage between calls")
	}
}

func TestCreateUnknown(t *testing.T) {
	if _, err := Create("nope"); err == nil {
		t.Error("expected error for unknown scenario")
	}
	if Title("nope") != "nope" {
		t.Errorf("Title() = %q, expected fallback to ID", Title("nope"))
	}
}

func TestListSorted(t *testing.T) {
	Replace("zz-test", "Test", sim.InitRoomState)
	list := List()
	for i := 1; i < len(list); i++ {
		if list[i-1].ID >= list[i].ID {
			t.Errorf("List() not sorted: %s >= %s", list[i-1].ID, list[i].ID)
		}
	}
	if Title("zz-test") != "Test" {
		t.Errorf("Title() = %q, expected Test", Title("zz-test"))
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic on duplicate registration")
		}
	}()
	Register("arena", "Arena again", sim.InitState)
}
