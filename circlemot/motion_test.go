package circlemot

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMotionTrackerSingleCycle(t *testing.T) {
	motion := NewUpDownMotionTracker()
	// Up = y decreasing, then back down
	for _, y := range []float64{400, 380, 320, 280, 320, 380, 400} {
		motion.Track(NewPosition(100, y, 10))
	}
	assert.Equal(t, 1, motion.Count())
}

func TestMotionTrackerIgnoresJitter(t *testing.T) {
	motion := NewUpDownMotionTrackerWithNoise(10.0)
	for _, y := range []float64{400, 397, 402, 398, 401, 396, 403} {
		motion.Track(NewPosition(100, y, 10))
	}
	assert.Equal(t, 0, motion.Count())
}

func TestMotionTrackerMultipleCycles(t *testing.T) {
	motion := NewUpDownMotionTracker()
	throws := []float64{
		400, 300, 200, 300, 400, // first throw
		400, 280, 180, 290, 400, // second throw
		390, 250, 170, 260, 395, // third throw
	}
	counts := make([]int, 0, len(throws))
	for _, y := range throws {
		motion.Track(NewPosition(100, y, 10))
		counts = append(counts, motion.Count())
	}
	assert.Equal(t, 3, motion.Count())
	// Count never decreases
	for i := 1; i < len(counts); i++ {
		assert.GreaterOrEqual(t, counts[i], counts[i-1])
	}
}

func TestMotionTrackerEmpty(t *testing.T) {
	motion := NewUpDownMotionTracker()
	assert.Equal(t, 0, motion.Count())
	motion.Track(NewPosition(100, 400, 10))
	assert.Equal(t, 0, motion.Count())
}
