package physics

import "fmt"

// DiagonalThreshold is the largest |distX-distY| gap that still resolves to a diagonal heading.
const DiagonalThreshold = 100

// Heading is the set of one or two cardinal directions a projectile travels in.
// Two entries make a diagonal: both displacements are applied every tick.
type Heading struct {
	dirs [2]Direction
	n    int
}

// NewHeading builds a heading from one or two valid directions.
func NewHeading(dirs ...Direction) Heading {
	if len(dirs) == 0 || len(dirs) > 2 {
		panic(fmt.Sprintf("physics: heading needs 1 or 2 directions, got %d", len(dirs)))
	}
	var h Heading
	for _, d := range dirs {
		MustBeValid(d)
		h.dirs[h.n] = d
		h.n++
	}
	return h
}

// Directions returns the directions in application order.
func (h Heading) Directions() []Direction {
	return append([]Direction(nil), h.dirs[:h.n]...)
}

// Has reports whether d is part of the heading.
func (h Heading) Has(d Direction) bool {
	for _, hd := range h.dirs[:h.n] {
		if hd == d {
			return true
		}
	}
	return false
}

// IsDiagonal reports whether the heading has two directions.
func (h Heading) IsDiagonal() bool {
	return h.n == 2
}

// String returns the compass form, e.g. "N", "SE".
func (h Heading) String() string {
	s := ""
	for _, d := range h.dirs[:h.n] {
		s += d.Token()
	}
	return s
}

// ResolveHeading picks the heading from a source centre towards a target centre.
// When the axis distances are within DiagonalThreshold of each other the result is a
// diagonal chosen by the signs of the offsets; otherwise it is the single cardinal of
// the dominant axis.
func ResolveHeading(sourceX, sourceY, targetX, targetY int) Heading {
	distX := abs(sourceX - targetX)
	distY := abs(sourceY - targetY)

	if abs(distX-distY) < DiagonalThreshold {
		switch {
		case targetX > sourceX && targetY < sourceY:
			return NewHeading(North, East)
		case targetX > sourceX && targetY > sourceY:
			return NewHeading(South, East)
		case targetX < sourceX && targetY < sourceY:
			return NewHeading(North, West)
		default:
			return NewHeading(South, West)
		}
	}

	if distX > distY {
		if targetX > sourceX {
			return NewHeading(East)
		}
		return NewHeading(West)
	}
	if targetY < sourceY {
		return NewHeading(North)
	}
	return NewHeading(South)
}
