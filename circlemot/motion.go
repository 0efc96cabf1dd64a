package circlemot

// DefaultMotionNoise is the minimum vertical travel (in pixels) that counts as
// actual motion rather than detector jitter.
const DefaultMotionNoise = 5.0

// UpDownMotionTracker counts completed up-then-down motion cycles (e.g.
// throws) from a stream of position samples. Image coordinates: "up" means
// the y coordinate decreases.
type UpDownMotionTracker struct {
	noise   float64
	refY    float64
	rising  bool
	started bool
	count   int
}

// NewUpDownMotionTracker creates a counter with DefaultMotionNoise.
func NewUpDownMotionTracker() *UpDownMotionTracker {
	return NewUpDownMotionTrackerWithNoise(DefaultMotionNoise)
}

// NewUpDownMotionTrackerWithNoise creates a counter with a custom jitter threshold.
func NewUpDownMotionTrackerWithNoise(noise float64) *UpDownMotionTracker {
	return &UpDownMotionTracker{
		noise: noise,
	}
}

// Track feeds one position sample. A cycle is counted once the object has
// risen by more than the noise threshold and then dropped back by more than
// the noise threshold.
func (motion *UpDownMotionTracker) Track(position Position) {
	y := position.Y
	if !motion.started {
		motion.refY = y
		motion.started = true
		return
	}
	if motion.rising {
		if y < motion.refY {
			// Still going up, move the reference with the peak
			motion.refY = y
		} else if y > motion.refY+motion.noise {
			motion.count++
			motion.rising = false
			motion.refY = y
		}
	} else {
		if y > motion.refY {
			// Baseline drifts down with the object
			motion.refY = y
		} else if y < motion.refY-motion.noise {
			motion.rising = true
			motion.refY = y
		}
	}
}

// Count returns the cumulative number of completed cycles. Non-decreasing.
func (motion *UpDownMotionTracker) Count() int {
	return motion.count
}
