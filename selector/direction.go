package selector

import "github.com/sasc/gctrain/report"

// Direction is the directional-pad button driving selection.
type Direction uint8

const (
	None Direction = iota
	Left
	Up
	Right
	Down

	numDirections = 5
)

// Directions lists the selectable directions in the order release edges are
// evaluated within one cycle.
var Directions = [...]Direction{Left, Up, Right, Down}

func (d Direction) String() string {
	switch d {
	case None:
		return "none"
	case Left:
		return "left"
	case Up:
		return "up"
	case Right:
		return "right"
	case Down:
		return "down"
	}
	return "invalid"
}

func (d Direction) valid() bool {
	return d > None && d < numDirections
}

func (d Direction) pressedIn(r report.Report) bool {
	switch d {
	case Left:
		return r.DLeft
	case Up:
		return r.DUp
	case Right:
		return r.DRight
	case Down:
		return r.DDown
	}
	return false
}
