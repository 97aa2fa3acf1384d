package levels_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/gridsim/internal/levels"
	"github.com/vovakirdan/gridsim/internal/registry"
	"github.com/vovakirdan/gridsim/internal/sim"
)

func TestLoaderLoadAll(t *testing.T) {
	loader := levels.NewLoader("testdata")
	lvls, err := loader.LoadAll()
	require.NoError(t, err)

	// broken.yaml has no player and notes.txt is not a level.
	require.Len(t, lvls, 2)
	assert.Equal(t, "corridor", lvls[0].ID)
	assert.Equal(t, "duel", lvls[1].ID)
	assert.Equal(t, "testdata/corridor.yaml", lvls[0].FilePath)
}

func TestLoaderRecordsSkippedFiles(t *testing.T) {
	loader := levels.NewLoader("testdata")
	_, err := loader.LoadAll()
	require.NoError(t, err)

	require.Len(t, loader.Skipped, 1)
	assert.Equal(t, "testdata/broken.yaml", loader.Skipped[0].Path)
	assert.ErrorContains(t, loader.Skipped[0].Err, "exactly one player")

	// A second scan does not accumulate.
	_, err = loader.LoadAll()
	require.NoError(t, err)
	assert.Len(t, loader.Skipped, 1)
}

func TestLoadCorridor(t *testing.T) {
	lvl, err := levels.LoadFile("testdata/corridor.yaml")
	require.NoError(t, err)

	assert.Equal(t, "Corridor", lvl.Name)
	assert.Equal(t, 7, lvl.Grid.Width)
	assert.Equal(t, 3, lvl.Grid.Height)
	require.Len(t, lvl.Entities, 2)
	assert.Equal(t, sim.NewVector2(5, 1), lvl.Entities[1].Position)
	assert.Equal(t, sim.TeamEnemy, lvl.Entities[1].Team)
}

func TestLevelPlaysToVictory(t *testing.T) {
	lvl, err := levels.LoadFile("testdata/corridor.yaml")
	require.NoError(t, err)

	s := lvl.NewState()
	for i := 0; i < 3; i++ {
		s = sim.GameLoop(sim.NewVector2(1, 0), s).State
	}
	require.Equal(t, sim.NewVector2(4, 1), s.Entities[0].Position)

	for i := 0; i < sim.DefaultHealth; i++ {
		s = sim.GameLoop(sim.NewVector2(1, 0), s).State
	}
	sum := s.Summary()
	assert.Equal(t, 1, sum.EnemiesDefeated)
	assert.True(t, sum.Over())
	assert.True(t, sum.PlayerAlive)
}

func TestNewStateIsFresh(t *testing.T) {
	lvl, err := levels.LoadFile("testdata/duel.yml")
	require.NoError(t, err)

	a := lvl.NewState()
	a.Entities[0].Position = sim.NewVector2(3, 3)
	a.Grid.Tiles[0] = sim.TileFloor

	b := lvl.NewState()
	assert.Equal(t, sim.NewVector2(1, 1), b.Entities[0].Position)
	assert.Equal(t, sim.TileWall, b.Grid.Tiles[0])
}

func TestRegister(t *testing.T) {
	lvl, err := levels.LoadFile("testdata/duel.yml")
	require.NoError(t, err)
	lvl.Register()

	require.True(t, registry.Exists("duel"))
	assert.Equal(t, "Duel", registry.Title("duel"))
	s, err := registry.Create("duel")
	require.NoError(t, err)
	assert.Len(t, s.Entities, 3)
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"no id", "layout: ['#.#']\nentities: [{kind: player, x: 1, y: 0}]"},
		{"empty layout", "id: x\nlayout: []\n"},
		{"ragged layout", "id: x\nlayout: ['###', '#.']\nentities: [{kind: player, x: 1, y: 1}]"},
		{"bad glyph", "id: x\nlayout: ['#?#']\nentities: [{kind: player, x: 1, y: 0}]"},
		{"in wall", "id: x\nlayout: ['#.#']\nentities: [{kind: player, x: 0, y: 0}]"},
		{"outside", "id: x\nlayout: ['#.#']\nentities: [{kind: player, x: 9, y: 0}]"},
		{"unknown kind", "id: x\nlayout: ['#..#']\nentities: [{kind: player, x: 1, y: 0}, {kind: dragon, x: 2, y: 0}]"},
		{"two players", "id: x\nlayout: ['#..#']\nentities: [{kind: player, x: 1, y: 0}, {kind: player, x: 2, y: 0}]"},
		{"not yaml", "id: [x"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := levels.Parse([]byte(tc.data))
			assert.Error(t, err)
		})
	}
}
