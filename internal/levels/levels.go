// Package levels loads scenario files: a fixed literal wall/floor layout plus
// entity placements. It depends on sim but sim does not depend on levels.
package levels

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/gridsim/internal/registry"
	"github.com/vovakirdan/gridsim/internal/sim"
)

// Entity kinds accepted in level files.
const (
	KindPlayer = "player"
	KindEnemy  = "enemy"
	KindPickup = "pickup"
)

// YAMLLevel represents the YAML structure for a level file.
type YAMLLevel struct {
	ID       string       `yaml:"id"`
	Name     string       `yaml:"name"`
	Layout   []string     `yaml:"layout"`
	Entities []YAMLEntity `yaml:"entities"`
}

// YAMLEntity represents one entity placement.
type YAMLEntity struct {
	Kind string `yaml:"kind"`
	X    int    `yaml:"x"`
	Y    int    `yaml:"y"`
}

// Level is a parsed, validated level.
type Level struct {
	ID       string
	Name     string
	Grid     sim.Grid
	Entities []sim.Entity
	FilePath string
}

// NewState creates a fresh simulation state from the level.
func (l *Level) NewState() sim.State {
	entities := make([]sim.Entity, len(l.Entities))
	copy(entities, l.Entities)
	return sim.NewState(l.Grid.Clone(), entities)
}

// Register adds the level to the scenario registry, replacing any scenario
// with the same ID.
func (l *Level) Register() {
	lvl := *l
	title := lvl.Name
	if title == "" {
		title = lvl.ID
	}
	registry.Replace(lvl.ID, title, lvl.NewState)
}

// Parse parses and validates a YAML level.
func Parse(data []byte) (Level, error) {
	var yl YAMLLevel
	if err := yaml.Unmarshal(data, &yl); err != nil {
		return Level{}, fmt.Errorf("yaml unmarshal: %w", err)
	}
	if yl.ID == "" {
		return Level{}, fmt.Errorf("level has no id")
	}

	grid, err := sim.GridFromRows(yl.Layout)
	if err != nil {
		return Level{}, fmt.Errorf("level %s: %w", yl.ID, err)
	}
	if grid.Width == 0 || grid.Height == 0 {
		return Level{}, fmt.Errorf("level %s: empty layout", yl.ID)
	}

	entities, err := buildEntities(grid, yl.Entities)
	if err != nil {
		return Level{}, fmt.Errorf("level %s: %w", yl.ID, err)
	}

	return Level{
		ID:       yl.ID,
		Name:     yl.Name,
		Grid:     grid,
		Entities: entities,
	}, nil
}

// buildEntities places each entity and checks the placements.
func buildEntities(grid sim.Grid, placements []YAMLEntity) ([]sim.Entity, error) {
	entities := make([]sim.Entity, 0, len(placements))
	players := 0
	for i, p := range placements {
		pos := sim.NewVector2(p.X, p.Y)
		tile, ok := grid.Tile(pos)
		if !ok {
			return nil, fmt.Errorf("entity %d at %v is outside the grid", i, pos)
		}
		if !tile.Walkable() {
			return nil, fmt.Errorf("entity %d at %v is inside a wall", i, pos)
		}

		switch strings.ToLower(p.Kind) {
		case KindPlayer:
			players++
			entities = append(entities, sim.NewPlayer(pos))
		case KindEnemy:
			entities = append(entities, sim.NewEnemy(pos))
		case KindPickup:
			entities = append(entities, sim.NewPickup(pos))
		default:
			return nil, fmt.Errorf("entity %d has unknown kind %q", i, p.Kind)
		}
	}
	if players != 1 {
		return nil, fmt.Errorf("expected exactly one player, got %d", players)
	}
	return entities, nil
}

// Loader handles loading levels from a directory.
type Loader struct {
	Root string

	// Skipped lists the level files the last LoadAll could not use.
	Skipped []SkippedFile
}

// SkippedFile is a level file that failed to load.
type SkippedFile struct {
	Path string
	Err  error
}

// NewLoader creates a new level loader.
func NewLoader(root string) *Loader {
	return &Loader{Root: root}
}

// LoadAll recursively scans and loads all level files.
// Invalid files are skipped and recorded in Skipped.
// Returns levels sorted by ID for deterministic ordering.
func (l *Loader) LoadAll() ([]Level, error) {
	var levels []Level
	l.Skipped = nil

	err := filepath.WalkDir(l.Root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !isSupportedExtension(filepath.Ext(path)) {
			return nil
		}

		level, err := LoadFile(path)
		if err != nil {
			l.Skipped = append(l.Skipped, SkippedFile{Path: path, Err: err})
			return nil
		}
		levels = append(levels, level)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking directory %s: %w", l.Root, err)
	}

	sort.Slice(levels, func(i, j int) bool {
		return levels[i].ID < levels[j].ID
	})
	return levels, nil
}

// LoadFile loads a single level file.
func LoadFile(path string) (Level, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Level{}, fmt.Errorf("reading file %s: %w", path, err)
	}
	level, err := Parse(data)
	if err != nil {
		return Level{}, fmt.Errorf("parsing file %s: %w", path, err)
	}
	level.FilePath = path
	return level, nil
}

func isSupportedExtension(ext string) bool {
	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		return true
	}
	return false
}
