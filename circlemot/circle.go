package circlemot

import (
	kalman_filter "github.com/LdDl/kalman-filter"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Circle is a single tracked circular object. Its center is fed through a 2D
// Kalman filter so the tracker can ask for a predicted position on frames
// where the detector output alone is ambiguous.
//
// The stored position always equals the last accepted observation; the filter
// is used for prediction only and never rewrites the measurement.
type Circle struct {
	id          uuid.UUID
	position    Position
	visible     bool
	track       []Point
	maxTrackLen int
	telemetry   *kalman_filter.Kalman2D
}

// NewCircleWithTime creates a circle at the given position with a custom time
// step for the underlying filter (e.g. 1.0/25.0 for a 25 fps stream).
func NewCircleWithTime(position Position, dt float64) *Circle {
	/* Kalman filter props */
	ux := 1.0
	uy := 1.0
	stdDevA := 2.0
	stdDevMx := 0.1
	stdDevMy := 0.1
	kf := kalman_filter.NewKalman2D(dt, ux, uy, stdDevA, stdDevMx, stdDevMy, kalman_filter.WithState2D(position.X, position.Y))
	circle := Circle{
		id:          uuid.New(),
		position:    position,
		visible:     false,
		track:       make([]Point, 0, 150),
		maxTrackLen: 150,
		telemetry:   kf,
	}
	circle.track = append(circle.track, circle.position.Center())
	return &circle
}

// NewCircle creates a circle with default time step of 1.0.
func NewCircle(position Position) *Circle {
	return NewCircleWithTime(position, 1.0)
}

// GetID returns circle's identifier
func (circle *Circle) GetID() uuid.UUID {
	return circle.id
}

// SetID sets circle's identifier
func (circle *Circle) SetID(newID uuid.UUID) {
	circle.id = newID
}

// GetPosition returns circle's current center and radius
func (circle *Circle) GetPosition() Position {
	return circle.position
}

// GetCenter returns circle's current center
func (circle *Circle) GetCenter() Point {
	return circle.position.Center()
}

// GetRadius returns circle's current radius
func (circle *Circle) GetRadius() float64 {
	return circle.position.Radius
}

// IsVisible reports whether the circle received an accepted update on the last frame
func (circle *Circle) IsVisible() bool {
	return circle.visible
}

// Invisible clears the visibility flag. Idempotent.
func (circle *Circle) Invisible() {
	circle.visible = false
}

// GetTrack returns circle's current track. Be careful: this is not copy of track, but reference to it
func (circle *Circle) GetTrack() []Point {
	return circle.track
}

// GetMaxTrackLen returns circle's max track length
func (circle *Circle) GetMaxTrackLen() int {
	return circle.maxTrackLen
}

// SetMaxTrackLen sets circle's max track length
func (circle *Circle) SetMaxTrackLen(newMaxTrackLen int) {
	circle.maxTrackLen = newMaxTrackLen
}

// DistanceTo returns distance to other circle (center to center)
func (circle *Circle) DistanceTo(otherCircle *Circle) float64 {
	return euclideanDistance(circle.GetCenter(), otherCircle.GetCenter())
}

// PredictNextPosition executes Kalman filter's prediction step and returns the
// estimated center for the upcoming frame. Advances filter time by one step.
func (circle *Circle) PredictNextPosition() Point {
	circle.telemetry.Predict()
	stateX, stateY := circle.telemetry.GetState()
	return Point{X: stateX, Y: stateY}
}

// Update accepts a new observation: stores position and radius as-is, feeds
// the center into the Kalman filter (second step, state re-evaluation based on
// Kalman gain) and marks the circle visible.
func (circle *Circle) Update(next Position) error {
	err := circle.telemetry.Update(next.X, next.Y)
	if err != nil {
		return errors.Wrap(err, "Can't update circle telemetry")
	}
	circle.position = next
	circle.visible = true
	// Update track
	circle.track = append(circle.track, circle.position.Center())
	if len(circle.track) > circle.maxTrackLen {
		circle.track = circle.track[1:]
	}
	return nil
}
