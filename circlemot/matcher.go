package circlemot

import (
	"math"
	"sort"
)

// MatchResult is a single pairing proposed by a Matcher: the roster index of
// an existing circle, the observation it should move to and whether the
// pairing is trusted. Unreliable results are still reported so the tracker
// can apply its hysteresis policy.
type MatchResult struct {
	CircleIndex  int
	Reliable     bool
	NextPosition Position
}

// Matcher pairs existing circles with new candidate positions. Implementations
// must return at most one result per circle index and must not reference an
// index outside the given roster. A circle absent from the results simply gets
// no update on that frame.
type Matcher interface {
	Match(height, width int, circles []*Circle, positions []Position) ([]MatchResult, error)
}

const (
	defaultRadiusGateFactor = 4.0
	defaultFrameGateFactor  = 0.05
)

// DistanceMatcher is a greedy minimum-distance Matcher. Circle/position pairs
// are processed in ascending distance order; a pair is claimed only when both
// its circle and its position are still unreserved. A claimed pair is reliable
// when the travelled distance stays within the gate for that circle.
type DistanceMatcher struct {
	// Accepted travel as a multiple of the circle radius
	radiusGateFactor float64
	// Accepted travel as a fraction of the frame diagonal
	frameGateFactor float64
}

// NewDistanceMatcher creates a DistanceMatcher with default gate factors.
func NewDistanceMatcher() *DistanceMatcher {
	return &DistanceMatcher{
		radiusGateFactor: defaultRadiusGateFactor,
		frameGateFactor:  defaultFrameGateFactor,
	}
}

// NewDistanceMatcherWithGates creates a DistanceMatcher with custom gate factors.
func NewDistanceMatcherWithGates(radiusGateFactor, frameGateFactor float64) *DistanceMatcher {
	return &DistanceMatcher{
		radiusGateFactor: radiusGateFactor,
		frameGateFactor:  frameGateFactor,
	}
}

// Match implements the Matcher interface.
func (matcher *DistanceMatcher) Match(height, width int, circles []*Circle, positions []Position) ([]MatchResult, error) {
	if len(circles) == 0 || len(positions) == 0 {
		return nil, nil
	}

	priorityQueue := make(matchHeap, 0, len(circles)*len(positions))
	for i, circle := range circles {
		center := circle.GetCenter()
		for j, position := range positions {
			priorityQueue.Push(matchCandidate{
				circleIndex:   i,
				positionIndex: j,
				distance:      euclideanDistance(center, position.Center()),
			})
		}
	}

	// We need to prevent double update of circles and double claim of positions.
	// Since we are using priority queue with min-heap we guarantee that every
	// circle is paired with the closest position still available.
	reservedCircles := make(map[int]struct{})
	reservedPositions := make(map[int]struct{})

	results := make([]MatchResult, 0, len(circles))
	for priorityQueue.Len() > 0 {
		candidate := priorityQueue.Pop()
		if _, ok := reservedCircles[candidate.circleIndex]; ok {
			continue
		}
		if _, ok := reservedPositions[candidate.positionIndex]; ok {
			continue
		}
		reservedCircles[candidate.circleIndex] = struct{}{}
		reservedPositions[candidate.positionIndex] = struct{}{}

		gate := reliabilityGate(circles[candidate.circleIndex], height, width, matcher.radiusGateFactor, matcher.frameGateFactor)
		results = append(results, MatchResult{
			CircleIndex:  candidate.circleIndex,
			Reliable:     candidate.distance <= gate,
			NextPosition: positions[candidate.positionIndex],
		})
	}

	sort.Slice(results, func(i, j int) bool {
		return results[i].CircleIndex < results[j].CircleIndex
	})
	return results, nil
}

// reliabilityGate returns the maximum distance a circle is trusted to travel
// between two consecutive frames.
func reliabilityGate(circle *Circle, height, width int, radiusGateFactor, frameGateFactor float64) float64 {
	frameDiagonal := math.Hypot(float64(width), float64(height))
	return math.Max(radiusGateFactor*circle.GetRadius(), frameGateFactor*frameDiagonal)
}
