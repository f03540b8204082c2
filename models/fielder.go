package models

import (
	"fmt"
	"math"
)

// FielderAttributes describes the physical tools of a defender. Speeds are
// in feet per second, arm strength in miles per hour, times in seconds.
// RouteEfficiency is the fraction of an ideal straight-line route the
// fielder actually achieves, in (0, 1].
type FielderAttributes struct {
	SprintSpeed      float64 `json:"sprint_speed"`
	Acceleration     float64 `json:"acceleration"`
	ReactionTime     float64 `json:"reaction_time"`
	RouteEfficiency  float64 `json:"route_efficiency"`
	ArmStrength      float64 `json:"arm_strength"`
	TransferTime     float64 `json:"transfer_time"`
	ThrowingAccuracy float64 `json:"throwing_accuracy"`
}

// Validate checks the attributes for physically meaningful values.
func (a FielderAttributes) Validate() error {
	if a.SprintSpeed <= 0 || !isFinite(a.SprintSpeed) {
		return fmt.Errorf("sprint speed must be positive, got %v", a.SprintSpeed)
	}
	if a.Acceleration <= 0 || !isFinite(a.Acceleration) {
		return fmt.Errorf("acceleration must be positive, got %v", a.Acceleration)
	}
	if a.ReactionTime < 0 || !isFinite(a.ReactionTime) {
		return fmt.Errorf("reaction time must be non-negative, got %v", a.ReactionTime)
	}
	if a.RouteEfficiency <= 0 || a.RouteEfficiency > 1 {
		return fmt.Errorf("route efficiency must be in (0, 1], got %v", a.RouteEfficiency)
	}
	if a.ArmStrength <= 0 || !isFinite(a.ArmStrength) {
		return fmt.Errorf("arm strength must be positive, got %v", a.ArmStrength)
	}
	if a.TransferTime < 0 || !isFinite(a.TransferTime) {
		return fmt.Errorf("transfer time must be non-negative, got %v", a.TransferTime)
	}
	return nil
}

// AverageInfielderAttributes returns league-typical tools for an infielder.
func AverageInfielderAttributes() FielderAttributes {
	return FielderAttributes{
		SprintSpeed:      27.0,
		Acceleration:     18.0,
		ReactionTime:     0.15,
		RouteEfficiency:  0.85,
		ArmStrength:      88.0,
		TransferTime:     0.5,
		ThrowingAccuracy: 2.0,
	}
}

// AverageOutfielderAttributes returns league-typical tools for an outfielder.
func AverageOutfielderAttributes() FielderAttributes {
	return FielderAttributes{
		SprintSpeed:      28.0,
		Acceleration:     16.0,
		ReactionTime:     0.25,
		RouteEfficiency:  0.88,
		ArmStrength:      95.0,
		TransferTime:     0.6,
		ThrowingAccuracy: 3.0,
	}
}

// FielderState is a defender on the field: an identifier (conventionally
// the position name), current location, and attributes.
type FielderState struct {
	ID         string            `json:"id"`
	Position   FieldPosition     `json:"position"`
	Attributes FielderAttributes `json:"attributes"`
}

// TimeToReach returns the seconds needed for the fielder to arrive at the
// target point from a standing start. The model is a reaction delay, an
// acceleration phase up to sprint speed, then constant-speed running, with
// the straight-line distance inflated by route efficiency.
func (f FielderState) TimeToReach(target FieldPosition) (float64, error) {
	if err := f.Attributes.Validate(); err != nil {
		return 0, err
	}
	if !isFinite(f.Position.X) || !isFinite(f.Position.Y) {
		return 0, fmt.Errorf("fielder %s has non-finite position", f.ID)
	}
	if !isFinite(target.X) || !isFinite(target.Y) {
		return 0, fmt.Errorf("target position is non-finite")
	}

	dist := f.Position.HorizontalDistanceTo(target) / f.Attributes.RouteEfficiency

	accelTime := f.Attributes.SprintSpeed / f.Attributes.Acceleration
	accelDist := 0.5 * f.Attributes.Acceleration * accelTime * accelTime

	var running float64
	if dist <= accelDist {
		running = math.Sqrt(2 * dist / f.Attributes.Acceleration)
	} else {
		running = accelTime + (dist-accelDist)/f.Attributes.SprintSpeed
	}
	return f.Attributes.ReactionTime + running, nil
}

// ThrowVelocityFPS returns the fielder's throw velocity in feet per second.
func (f FielderState) ThrowVelocityFPS() float64 {
	return f.Attributes.ArmStrength * 5280.0 / 3600.0
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
