package physics

import (
	"fmt"
	"strings"
)

// Direction represents a cardinal direction
type Direction int

// Direction constants
const (
	North Direction = iota
	East
	South
	West
)

// AllDirections returns all valid directions for iteration
func AllDirections() []Direction {
	return []Direction{North, East, South, West}
}

// String returns the string representation of a direction
func (d Direction) String() string {
	switch d {
	case North:
		return "North"
	case East:
		return "East"
	case South:
		return "South"
	case West:
		return "West"
	default:
		return "Unknown"
	}
}

// Token returns the single-letter form used in level data ("N", "E", "S", "W")
func (d Direction) Token() string {
	switch d {
	case North:
		return "N"
	case East:
		return "E"
	case South:
		return "S"
	case West:
		return "W"
	default:
		return "?"
	}
}

// IsValid returns true if the direction is a valid cardinal direction
func (d Direction) IsValid() bool {
	return d >= North && d <= West
}

// Opposite returns the opposite direction
func (d Direction) Opposite() Direction {
	switch d {
	case North:
		return South
	case South:
		return North
	case East:
		return West
	case West:
		return East
	default:
		return d
	}
}

// Delta returns the unit x and y offsets for this direction in screen space (y grows downwards)
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case North:
		return 0, -1
	case East:
		return 1, 0
	case South:
		return 0, 1
	case West:
		return -1, 0
	default:
		return 0, 0
	}
}

// ParseDirection converts a direction token ("N", "north", "East", ...) to a Direction.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "n", "north":
		return North, nil
	case "e", "east":
		return East, nil
	case "s", "south":
		return South, nil
	case "w", "west":
		return West, nil
	}
	return 0, fmt.Errorf("invalid direction %q", s)
}

// MustParseDirection is ParseDirection for tokens that are fixed in code; an unknown token is a bug.
func MustParseDirection(s string) Direction {
	d, err := ParseDirection(s)
	if err != nil {
		panic(err)
	}
	return d
}

// MustBeValid panics when d is not one of the four cardinal directions.
func MustBeValid(d Direction) {
	if !d.IsValid() {
		panic(fmt.Sprintf("physics: direction %d does not map to a cardinal", int(d)))
	}
}
