package circlemot

import (
	"testing"
)

func TestCircleUpdateStoresObservation(t *testing.T) {
	circle := NewCircle(NewPosition(50.0, 50.0, 5.0))
	if circle.IsVisible() {
		t.Error("Fresh circle should not be visible")
	}
	next := NewPosition(53.0, 48.0, 6.0)
	err := circle.Update(next)
	if err != nil {
		t.Error(err)
		return
	}
	if circle.GetPosition() != next {
		t.Errorf("Stored position %v does not match accepted observation %v", circle.GetPosition(), next)
	}
	if !circle.IsVisible() {
		t.Error("Updated circle should be visible")
	}
	circle.Invisible()
	circle.Invisible()
	if circle.IsVisible() {
		t.Error("Invisible should clear the flag and stay idempotent")
	}
}

func TestCirclePredictionFollowsStationaryTarget(t *testing.T) {
	circle := NewCircle(NewPosition(50.0, 50.0, 5.0))
	for i := 0; i < 5; i++ {
		circle.PredictNextPosition()
		err := circle.Update(NewPosition(50.0, 50.0, 5.0))
		if err != nil {
			t.Error(err)
			return
		}
	}
	predicted := circle.PredictNextPosition()
	if predicted.X < 45.0 || predicted.X > 55.0 || predicted.Y < 45.0 || predicted.Y > 55.0 {
		t.Errorf("Prediction %v drifted away from stationary target (50, 50)", predicted)
	}
}

func TestCircleTrackBounded(t *testing.T) {
	circle := NewCircle(NewPosition(10.0, 10.0, 5.0))
	circle.SetMaxTrackLen(3)
	for i := 0; i < 10; i++ {
		err := circle.Update(NewPosition(10.0+float64(i), 10.0, 5.0))
		if err != nil {
			t.Error(err)
			return
		}
	}
	if len(circle.GetTrack()) != 3 {
		t.Errorf("Track length %d, expected max of 3", len(circle.GetTrack()))
	}
}

func TestCircleDistanceTo(t *testing.T) {
	one := NewCircle(NewPosition(10.0, 10.0, 5.0))
	two := NewCircle(NewPosition(13.0, 14.0, 5.0))
	if d := one.DistanceTo(two); d != 5.0 {
		t.Errorf("Wrong distance: %v, correct distance: 5", d)
	}
}

func TestCircleIdentity(t *testing.T) {
	one := NewCircle(NewPosition(10.0, 10.0, 5.0))
	two := NewCircle(NewPosition(10.0, 10.0, 5.0))
	if one.GetID() == two.GetID() {
		t.Error("Two circles should not share an identifier")
	}
	two.SetID(one.GetID())
	if one.GetID() != two.GetID() {
		t.Error("SetID should overwrite the identifier")
	}
}
