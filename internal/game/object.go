package game

import "github.com/akovalev/fridayfall/internal/core"

// ObjectKind distinguishes what a falling object does on contact.
type ObjectKind int

const (
	// GoodDeal awards points when caught.
	GoodDeal ObjectKind = iota
	// BadItem costs a point of health when caught.
	BadItem
)

// String returns a human-readable name for the object kind.
func (k ObjectKind) String() string {
	switch k {
	case GoodDeal:
		return "GoodDeal"
	case BadItem:
		return "BadItem"
	default:
		return "Unknown"
	}
}

// FallingObject is one object dropping through the playfield. Objects have
// no identity beyond their lifetime; they are removed on contact with a
// living player or once fully below the field.
type FallingObject struct {
	X, Y float64
	Kind ObjectKind
}

// Rect returns the object's collision box.
func (o FallingObject) Rect(w, h float64) core.Rect {
	return core.NewRect(o.X, o.Y, w, h)
}
