package circlemot

import (
	"math"

	"github.com/pkg/errors"

	"gonum.org/v1/gonum/floats"
)

const defaultIgnoreThreshold = 0

// Tracker maintains persistent identity for a fixed set of circles across
// video frames. The roster is created once, by the first non-empty Update
// call, and its size never changes afterwards: index i always refers to the
// same logical object.
//
// A Tracker is not safe for concurrent use; one instance drives one stream.
type Tracker struct {
	height int
	width  int

	matcher Matcher
	// Number of consecutive unreliable results tolerated per circle before an
	// update is forced through regardless of the reliability flag
	ignoreThreshold int
	motionNoise     float64

	// Index-aligned roster. All three slices always have equal length.
	circles []*Circle
	motions []*UpDownMotionTracker
	misses  []int

	// Consecutive no-op frames since the last applied update
	skip int
}

// TrackerOption customizes a Tracker at construction time.
type TrackerOption func(*Tracker)

// WithMatcher replaces the default DistanceMatcher.
func WithMatcher(matcher Matcher) TrackerOption {
	return func(tracker *Tracker) {
		tracker.matcher = matcher
	}
}

// WithIgnoreThreshold sets how many consecutive unreliable results are
// tolerated before an update is forced. Default is 0: the first unreliable
// result is rejected, the next one is accepted no matter what.
func WithIgnoreThreshold(threshold int) TrackerOption {
	return func(tracker *Tracker) {
		tracker.ignoreThreshold = threshold
	}
}

// WithMotionNoise sets the jitter threshold (pixels) for the per-circle
// motion cycle counters.
func WithMotionNoise(noise float64) TrackerOption {
	return func(tracker *Tracker) {
		tracker.motionNoise = noise
	}
}

// NewTracker creates a tracker for frames of the given size with an empty roster.
func NewTracker(height, width int, opts ...TrackerOption) *Tracker {
	tracker := &Tracker{
		height:          height,
		width:           width,
		matcher:         NewDistanceMatcher(),
		ignoreThreshold: defaultIgnoreThreshold,
		motionNoise:     DefaultMotionNoise,
	}
	for _, opt := range opts {
		opt(tracker)
	}
	return tracker
}

// Size returns the number of tracked circles (0 while uninitialized).
func (tracker *Tracker) Size() int {
	return len(tracker.circles)
}

// Circles returns a snapshot of the roster in index order.
func (tracker *Tracker) Circles() []*Circle {
	out := make([]*Circle, len(tracker.circles))
	copy(out, tracker.circles)
	return out
}

// CycleCount returns the number of completed motion cycles for circle at given index.
func (tracker *Tracker) CycleCount(index int) (int, error) {
	if index < 0 || index >= len(tracker.motions) {
		return 0, errors.Errorf("cycle count index %d out of range [0;%d)", index, len(tracker.motions))
	}
	return tracker.motions[index].Count(), nil
}

// MissCount returns the number of consecutive rejected updates for circle at given index.
func (tracker *Tracker) MissCount(index int) (int, error) {
	if index < 0 || index >= len(tracker.misses) {
		return 0, errors.Errorf("miss count index %d out of range [0;%d)", index, len(tracker.misses))
	}
	return tracker.misses[index], nil
}

// Skipped returns the number of consecutive no-op Predict/Update calls since
// the last applied update.
func (tracker *Tracker) Skipped() int {
	return tracker.skip
}

// Update applies new observations to the roster. The first non-empty call
// initializes the roster: one circle, one motion counter and a zero miss
// count per position, index-aligned. Later calls run the matcher and apply
// the hysteresis acceptance policy. An empty positions list is a no-op.
func (tracker *Tracker) Update(positions []Position) error {
	if len(positions) == 0 {
		tracker.skip++
		return nil
	}
	if tracker.circles == nil {
		tracker.initialize(positions)
	} else {
		err := tracker.matchCircles(positions)
		if err != nil {
			return err
		}
	}
	tracker.skip = 0
	return nil
}

// Predict runs prediction-assisted self-assignment over raw detector
// rectangles and feeds the claimed observations into Update. Each circle, in
// roster order, claims the closest still-unclaimed rectangle center; the
// circle keeps its own stored radius since detections carry none. A circle
// that finds no unclaimed center is treated as a rejected update (miss count
// incremented, no position produced for it).
//
// No-op when the roster is uninitialized or the rectangles list is empty.
func (tracker *Tracker) Predict(rectangles []Rectangle) error {
	if tracker.circles == nil || len(rectangles) == 0 {
		tracker.skip++
		return nil
	}

	centers := make([]Point, len(rectangles))
	for i, rectangle := range rectangles {
		centers[i] = rectangle.Center()
	}

	claimed := make([]bool, len(centers))
	distances := make([]float64, len(centers))
	predicted := make([]Position, 0, len(tracker.circles))
	for i, circle := range tracker.circles {
		point := circle.PredictNextPosition()
		for j, center := range centers {
			if claimed[j] {
				distances[j] = math.Inf(1)
				continue
			}
			distances[j] = squaredDistance(point, center)
		}
		// Ties resolve to the earliest candidate: MinIdx returns the first
		// index holding the minimum
		closest := floats.MinIdx(distances)
		if math.IsInf(distances[closest], 1) {
			// Fewer detections than circles: no candidate left for this one
			tracker.misses[i]++
			continue
		}
		claimed[closest] = true
		predicted = append(predicted, Position{
			X:      centers[closest].X,
			Y:      centers[closest].Y,
			Radius: circle.GetRadius(),
		})
	}

	return tracker.Update(predicted)
}

func (tracker *Tracker) initialize(positions []Position) {
	tracker.circles = make([]*Circle, len(positions))
	tracker.motions = make([]*UpDownMotionTracker, len(positions))
	tracker.misses = make([]int, len(positions))
	for i, position := range positions {
		tracker.circles[i] = NewCircle(position)
		tracker.motions[i] = NewUpDownMotionTrackerWithNoise(tracker.motionNoise)
	}
}

// matchCircles delegates pairing to the matcher and applies the hysteresis
// acceptance policy: an update goes through when the matcher trusts it, or
// when the circle has already exceeded its tolerated streak of unreliable
// results. Rejected circles keep their prior state and stay invisible.
func (tracker *Tracker) matchCircles(positions []Position) error {
	for _, circle := range tracker.circles {
		circle.Invisible()
	}
	results, err := tracker.matcher.Match(tracker.height, tracker.width, tracker.Circles(), positions)
	if err != nil {
		return errors.Wrap(err, "Can't match circles with new positions")
	}
	for _, result := range results {
		index := result.CircleIndex
		if index < 0 || index >= len(tracker.circles) {
			return errors.Errorf("matcher returned circle index %d outside roster of size %d", index, len(tracker.circles))
		}
		if result.Reliable || tracker.misses[index] > tracker.ignoreThreshold {
			err = tracker.updateState(index, result.NextPosition)
			if err != nil {
				return err
			}
		} else {
			tracker.misses[index]++
		}
	}
	return nil
}

// updateState applies an accepted update to the circle at the given index.
func (tracker *Tracker) updateState(index int, position Position) error {
	err := tracker.circles[index].Update(position)
	if err != nil {
		return errors.Wrapf(err, "Can't update circle at index %d", index)
	}
	tracker.motions[index].Track(position)
	tracker.misses[index] = 0
	return nil
}
