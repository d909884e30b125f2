package maze

import "pacman/game"

type Direction string

const (
	North Direction = "North"
	South Direction = "South"
	East  Direction = "East"
	West  Direction = "West"
	Stop  Direction = "Stop"
)

// Directions lists the moving directions in successor order.
var Directions = []Direction{North, South, East, West}

func (d Direction) Vector() (dx, dy int) {
	switch d {
	case North:
		return 0, -1
	case South:
		return 0, 1
	case East:
		return 1, 0
	case West:
		return -1, 0
	}
	return 0, 0
}

func (d Direction) Apply(p game.Position) game.Position {
	dx, dy := d.Vector()
	return p.Add(dx, dy)
}
