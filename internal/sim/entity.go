package sim

import "fmt"

// Team decides who may damage whom. Entities on the same team never hurt each other.
type Team uint8

const (
	TeamPlayer Team = iota
	TeamEnemy
)

// String returns the interchange name of the team.
func (t Team) String() string {
	switch t {
	case TeamPlayer:
		return "Player"
	case TeamEnemy:
		return "Enemy"
	default:
		return "Unknown"
	}
}

// MarshalText encodes the team as "Player" or "Enemy".
func (t Team) MarshalText() ([]byte, error) {
	switch t {
	case TeamPlayer, TeamEnemy:
		return []byte(t.String()), nil
	default:
		return nil, fmt.Errorf("sim: unknown team %d", uint8(t))
	}
}

// UnmarshalText decodes "Player" or "Enemy".
func (t *Team) UnmarshalText(text []byte) error {
	switch string(text) {
	case "Player":
		*t = TeamPlayer
	case "Enemy":
		*t = TeamEnemy
	default:
		return fmt.Errorf("sim: unknown team %q", string(text))
	}
	return nil
}

// Capabilities marks which behaviors run for an entity.
type Capabilities struct {
	AcceptsInput     bool `json:"accepts_input" yaml:"accepts_input"`
	ResolvesDamage   bool `json:"resolves_damage" yaml:"resolves_damage"`
	ResolvesMovement bool `json:"resolves_movement" yaml:"resolves_movement"`
}

// Archetype base colors (0xRRGGBB).
const (
	ColorPlayer = 0x00ff00
	ColorEnemy  = 0xff0000
	ColorPickup = 0xffff00
)

// DefaultHealth is the starting and maximum health of every archetype.
const DefaultHealth = 10

// Entity is a simulated actor on the grid.
type Entity struct {
	Position      Vector2      `json:"position" yaml:"position"`
	DeltaPosition Vector2      `json:"delta_position" yaml:"delta_position"`
	Capabilities  Capabilities `json:"capabilities" yaml:"capabilities"`
	Health        int          `json:"health" yaml:"health"`
	MaxHealth     int          `json:"max_health" yaml:"max_health"`
	BaseColor     int          `json:"base_color" yaml:"base_color"`
	Team          Team         `json:"team" yaml:"team"`
}

// NewPlayer creates the input-driven player archetype.
func NewPlayer(pos Vector2) Entity {
	return Entity{
		Position: pos,
		Capabilities: Capabilities{
			AcceptsInput:     true,
			ResolvesDamage:   true,
			ResolvesMovement: true,
		},
		Health:    DefaultHealth,
		MaxHealth: DefaultHealth,
		BaseColor: ColorPlayer,
		Team:      TeamPlayer,
	}
}

// NewEnemy creates the stationary enemy archetype.
func NewEnemy(pos Vector2) Entity {
	return Entity{
		Position: pos,
		Capabilities: Capabilities{
			ResolvesDamage:   true,
			ResolvesMovement: true,
		},
		Health:    DefaultHealth,
		MaxHealth: DefaultHealth,
		BaseColor: ColorEnemy,
		Team:      TeamEnemy,
	}
}

// NewPickup creates a pickup. It shares the player's team so it is never a
// damage target, and it does not resolve damage itself.
func NewPickup(pos Vector2) Entity {
	return Entity{
		Position: pos,
		Capabilities: Capabilities{
			ResolvesMovement: true,
		},
		Health:    DefaultHealth,
		MaxHealth: DefaultHealth,
		BaseColor: ColorPickup,
		Team:      TeamPlayer,
	}
}

// Alive reports whether the entity has health left.
func (e Entity) Alive() bool {
	return e.Health > 0
}

// Intended returns the position the entity would occupy if its pending move
// were committed.
func (e Entity) Intended() Vector2 {
	return e.Position.Add(e.DeltaPosition)
}

// Color returns the base color lightened toward white by the fraction of
// health lost. The per-channel delta is added onto the whole base color, so a
// channel that overflows carries into the next one.
func (e Entity) Color() int {
	if e.MaxHealth <= 0 {
		return e.BaseColor
	}
	lost := float64(e.MaxHealth-e.Health) / float64(e.MaxHealth)

	r := (e.BaseColor >> 16) & 0xff
	g := (e.BaseColor >> 8) & 0xff
	b := e.BaseColor & 0xff

	dr := int(float64(0xff-r) * lost)
	dg := int(float64(0xff-g) * lost)
	db := int(float64(0xff-b) * lost)

	return e.BaseColor + dr<<16 + dg<<8 + db
}

// Draw returns the entity's draw call.
func (e Entity) Draw() []int {
	return []int{
		e.Color(),
		e.Position.X * TileSize,
		e.Position.Y * TileSize,
		TileSize,
		TileSize,
	}
}
