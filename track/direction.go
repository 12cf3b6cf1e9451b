package track

import "github.com/lixenwraith/tile-track/grid"

// Direction is a tile side and a travel heading; values form a clockwise 4-cycle
type Direction uint8

const (
	Top Direction = iota
	Right
	Bottom
	Left
)

var directionNames = [4]string{"top", "right", "bottom", "left"}

func (d Direction) String() string {
	if d > Left {
		return "invalid"
	}
	return directionNames[d]
}

// Opposite maps Top<->Bottom and Right<->Left
func Opposite(d Direction) Direction {
	return (d + 2) % 4
}

// Rotate turns d counter-clockwise by k quarter turns
func Rotate(d Direction, k int) Direction {
	k = ((k % 4) + 4) % 4
	return Direction((int(d) - k + 4) % 4)
}

// Vector returns the unit cell step for travelling in d
func Vector(d Direction) grid.Point {
	switch d {
	case Top:
		return grid.Point{X: 0, Y: -1}
	case Right:
		return grid.Point{X: 1, Y: 0}
	case Bottom:
		return grid.Point{X: 0, Y: 1}
	default:
		return grid.Point{X: -1, Y: 0}
	}
}
