// Package core contains the value types shared by the pixl canvas, its
// exporters and the editor.
package core

// Point represents a cell coordinate on the canvas grid.
type Point struct {
	X, Y int
}

// Add returns p translated by q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Direction represents one of the four grid neighbours.
type Direction int

const (
	North Direction = iota
	East
	South
	West
)

// Directions lists the 4-connected neighbour directions in traversal order.
var Directions = [4]Direction{East, West, South, North}

// String returns the string representation of a Direction.
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

// Delta returns the unit step for the direction. Y grows downward.
func (d Direction) Delta() Point {
	switch d {
	case North:
		return Point{0, -1}
	case East:
		return Point{1, 0}
	case South:
		return Point{0, 1}
	case West:
		return Point{-1, 0}
	default:
		return Point{}
	}
}

// Opposite returns the opposite direction.
func (d Direction) Opposite() Direction {
	switch d {
	case North:
		return South
	case East:
		return West
	case South:
		return North
	case West:
		return East
	default:
		return d
	}
}

// Bounds represents a rectangular area, Min inclusive and Max exclusive.
type Bounds struct {
	Min, Max Point
}

// Rect returns the bounds of a width x height area anchored at the origin.
func Rect(width, height int) Bounds {
	return Bounds{Max: Point{X: width, Y: height}}
}

// Width returns the width of the bounds.
func (b Bounds) Width() int {
	return b.Max.X - b.Min.X
}

// Height returns the height of the bounds.
func (b Bounds) Height() int {
	return b.Max.Y - b.Min.Y
}

// Contains checks if a point is within the bounds.
func (b Bounds) Contains(p Point) bool {
	return p.X >= b.Min.X && p.X < b.Max.X &&
		p.Y >= b.Min.Y && p.Y < b.Max.Y
}

// Clamp returns the point inside b closest to p.
func (b Bounds) Clamp(p Point) Point {
	if p.X < b.Min.X {
		p.X = b.Min.X
	}
	if p.X >= b.Max.X {
		p.X = b.Max.X - 1
	}
	if p.Y < b.Min.Y {
		p.Y = b.Min.Y
	}
	if p.Y >= b.Max.Y {
		p.Y = b.Max.Y - 1
	}
	return p
}
