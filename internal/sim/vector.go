// Package sim provides the deterministic tile-grid simulation: the grid, the
// entity data model, the ordered behavior passes and the per-frame orchestrator.
// It has no dependencies outside the standard library so the frame loop stays
// pure and testable; hosts live in other packages.
package sim

import "fmt"

// Vector2 is a 2D integer vector used for grid positions and movement deltas.
// X increases to the right, Y increases downward (display coordinates).
type Vector2 struct {
	X int `json:"x" yaml:"x"`
	Y int `json:"y" yaml:"y"`
}

// NewVector2 creates a vector from its components.
func NewVector2(x, y int) Vector2 {
	return Vector2{X: x, Y: y}
}

// Add returns the componentwise sum of two vectors.
func (v Vector2) Add(other Vector2) Vector2 {
	return Vector2{X: v.X + other.X, Y: v.Y + other.Y}
}

// AddAssign adds other to v in place.
func (v *Vector2) AddAssign(other Vector2) {
	v.X += other.X
	v.Y += other.Y
}

// IsZero reports whether both components are zero.
func (v Vector2) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// String returns a string representation of the vector.
func (v Vector2) String() string {
	return fmt.Sprintf("(%d,%d)", v.X, v.Y)
}
