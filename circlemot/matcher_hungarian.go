package circlemot

import (
	"sort"

	hungarian "github.com/arthurkushman/go-hungarian"
)

// HungarianMatcher is a Matcher backed by the Hungarian algorithm
// (Kuhn-Munkres) for globally optimal assignment. Distances are converted to
// similarity scores and solved for maximum total similarity.
type HungarianMatcher struct {
	radiusGateFactor float64
	frameGateFactor  float64
}

// NewHungarianMatcher creates a HungarianMatcher with default gate factors.
func NewHungarianMatcher() *HungarianMatcher {
	return &HungarianMatcher{
		radiusGateFactor: defaultRadiusGateFactor,
		frameGateFactor:  defaultFrameGateFactor,
	}
}

// NewHungarianMatcherWithGates creates a HungarianMatcher with custom gate factors.
func NewHungarianMatcherWithGates(radiusGateFactor, frameGateFactor float64) *HungarianMatcher {
	return &HungarianMatcher{
		radiusGateFactor: radiusGateFactor,
		frameGateFactor:  frameGateFactor,
	}
}

// Match implements the Matcher interface.
func (matcher *HungarianMatcher) Match(height, width int, circles []*Circle, positions []Position) ([]MatchResult, error) {
	numCircles := len(circles)
	numPositions := len(positions)
	if numCircles == 0 || numPositions == 0 {
		return nil, nil
	}

	distances := make([][]float64, numCircles)
	for i, circle := range circles {
		center := circle.GetCenter()
		row := make([]float64, numPositions)
		for j, position := range positions {
			row[j] = euclideanDistance(center, position.Center())
		}
		distances[i] = row
	}

	// The solver expects a square matrix; pad with zero similarity so dummy
	// rows/columns never win a real pairing.
	paddedSize := max(numCircles, numPositions)
	scores := make([][]float64, paddedSize)
	for i := 0; i < paddedSize; i++ {
		scores[i] = make([]float64, paddedSize)
	}
	for i := 0; i < numCircles; i++ {
		for j := 0; j < numPositions; j++ {
			// Convert to 0-1 similarity
			scores[i][j] = 1.0 / (1.0 + distances[i][j]*0.01)
		}
	}

	assignments := hungarian.SolveMax(scores)

	results := make([]MatchResult, 0, numCircles)
	for circleIndex, rowMap := range assignments {
		if circleIndex >= numCircles {
			continue
		}
		// The inner map holds a single assignment for this row
		for positionIndex := range rowMap {
			if positionIndex < numPositions {
				gate := reliabilityGate(circles[circleIndex], height, width, matcher.radiusGateFactor, matcher.frameGateFactor)
				results = append(results, MatchResult{
					CircleIndex:  circleIndex,
					Reliable:     distances[circleIndex][positionIndex] <= gate,
					NextPosition: positions[positionIndex],
				})
			}
			break
		}
	}

	sort.Slice(results, func(i, j int) bool {
		return results[i].CircleIndex < results[j].CircleIndex
	})
	return results, nil
}
