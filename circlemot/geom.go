package circlemot

import (
	"image"
	"math"
)

// Rectangle is an axis-aligned bounding box as reported by an upstream detector.
type Rectangle struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

func NewRect(x, y, width, height float64) Rectangle {
	return Rectangle{
		X:      x,
		Y:      y,
		Width:  width,
		Height: height,
	}
}

func NewRectFrom(rect image.Rectangle) Rectangle {
	return Rectangle{
		X:      float64(rect.Min.X),
		Y:      float64(rect.Min.Y),
		Width:  float64(rect.Dx()),
		Height: float64(rect.Dy()),
	}
}

// Center returns the rectangle's center truncated toward zero.
// Detector coordinates are pixel grids, so centers are snapped to whole pixels.
func (rect Rectangle) Center() Point {
	return Point{
		X: math.Trunc(rect.X + rect.Width/2.0),
		Y: math.Trunc(rect.Y + rect.Height/2.0),
	}
}

type Point struct {
	X float64
	Y float64
}

func NewPoint(x, y float64) Point {
	return Point{
		X: x,
		Y: y,
	}
}

func NewPointFrom(point image.Point) Point {
	return Point{
		X: float64(point.X),
		Y: float64(point.Y),
	}
}

// Position is a circle observation: center plus radius.
type Position struct {
	X      float64
	Y      float64
	Radius float64
}

func NewPosition(x, y, radius float64) Position {
	return Position{
		X:      x,
		Y:      y,
		Radius: radius,
	}
}

// Center returns the position without its radius.
func (pos Position) Center() Point {
	return Point{X: pos.X, Y: pos.Y}
}

func euclideanDistance(p1, p2 Point) float64 {
	return math.Sqrt(math.Pow(p1.X-p2.X, 2) + math.Pow(p1.Y-p2.Y, 2))
}

func squaredDistance(p1, p2 Point) float64 {
	return math.Pow(p1.X-p2.X, 2) + math.Pow(p1.Y-p2.Y, 2)
}
