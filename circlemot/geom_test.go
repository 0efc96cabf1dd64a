package circlemot

import (
	"math"
	"testing"
)

const (
	eps = 0.00001
)

func TestEuclideanDistance(t *testing.T) {
	p1 := Point{X: 341, Y: 264}
	p2 := Point{X: 421, Y: 427}
	correnctAnswer := 181.57367
	answer := euclideanDistance(p1, p2)
	if math.Abs(answer-correnctAnswer) > eps {
		t.Errorf("Wrong answer: %v, correct answer: %v", answer, correnctAnswer)
	}
}

func TestRectangleCenter(t *testing.T) {
	center := NewRect(8.0, 9.0, 10.0, 10.0).Center()
	if center.X != 13.0 || center.Y != 14.0 {
		t.Errorf("Wrong center: %v, correct center: (13, 14)", center)
	}
	// Truncation is toward zero, not floor
	center = NewRect(-5.0, -5.0, 3.0, 3.0).Center()
	if center.X != -3.0 || center.Y != -3.0 {
		t.Errorf("Wrong center: %v, correct center: (-3, -3)", center)
	}
}

func TestSquaredDistance(t *testing.T) {
	p1 := Point{X: 10, Y: 10}
	p2 := Point{X: 13, Y: 14}
	correnctAnswer := 25.0
	answer := squaredDistance(p1, p2)
	if math.Abs(answer-correnctAnswer) > eps {
		t.Errorf("Wrong answer: %v, correct answer: %v", answer, correnctAnswer)
	}
}
