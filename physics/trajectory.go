package physics

import (
	"math"

	"github.com/baseball-sim/physics-engine/models"
)

// BattedBallType classifies contact by launch angle.
type BattedBallType string

const (
	GroundBall BattedBallType = "ground_ball"
	LineDrive  BattedBallType = "line_drive"
	FlyBall    BattedBallType = "fly_ball"
	Popup      BattedBallType = "popup"
)

// ClassifyLaunchAngle maps a launch angle in degrees to a batted ball type.
// Every angle maps to exactly one type.
func ClassifyLaunchAngle(launchAngleDeg float64) BattedBallType {
	switch {
	case launchAngleDeg < 10:
		return GroundBall
	case launchAngleDeg < 25:
		return LineDrive
	case launchAngleDeg < 50:
		return FlyBall
	default:
		return Popup
	}
}

// InitialConditions describe the ball at contact. Spray angle is the
// horizontal angle off the center field line, positive to the pull side of
// a right-handed batter (left field, -x). Spin rates are non-negative
// magnitudes in rpm.
type InitialConditions struct {
	ExitVelocityMPH float64 `json:"exit_velocity_mph"`
	LaunchAngleDeg  float64 `json:"launch_angle_deg"`
	SprayAngleDeg   float64 `json:"spray_angle_deg"`
	BackspinRPM     float64 `json:"backspin_rpm"`
	SidespinRPM     float64 `json:"sidespin_rpm"`
}

// Validate checks the conditions against physical bounds.
func (c InitialConditions) Validate() error {
	if !finite(c.ExitVelocityMPH) || c.ExitVelocityMPH <= 0 || c.ExitVelocityMPH > MaxExitVelocityMPH {
		return &InvalidInputError{Field: "exit_velocity_mph", Value: c.ExitVelocityMPH, Reason: "must be in (0, 130]"}
	}
	if !finite(c.LaunchAngleDeg) || c.LaunchAngleDeg < MinLaunchAngleDeg || c.LaunchAngleDeg > MaxLaunchAngleDeg {
		return &InvalidInputError{Field: "launch_angle_deg", Value: c.LaunchAngleDeg, Reason: "must be in [-20, 85]"}
	}
	if !finite(c.SprayAngleDeg) || math.Abs(c.SprayAngleDeg) > MaxSprayAngleDeg {
		return &InvalidInputError{Field: "spray_angle_deg", Value: c.SprayAngleDeg, Reason: "must be in [-45, 45]"}
	}
	if !finite(c.BackspinRPM) || c.BackspinRPM < 0 {
		return &InvalidInputError{Field: "backspin_rpm", Value: c.BackspinRPM, Reason: "must be non-negative"}
	}
	if !finite(c.SidespinRPM) || c.SidespinRPM < 0 {
		return &InvalidInputError{Field: "sidespin_rpm", Value: c.SidespinRPM, Reason: "must be non-negative"}
	}
	return nil
}

// normalized applies the exit velocity floor and the spin rate cap.
func (c InitialConditions) normalized(cal Calibration) InitialConditions {
	out := c
	if out.ExitVelocityMPH < MinExitVelocityMPH {
		out.ExitVelocityMPH = MinExitVelocityMPH
	}
	if out.BackspinRPM > cal.MaxSpinRPM {
		out.BackspinRPM = cal.MaxSpinRPM
	}
	if out.SidespinRPM > cal.MaxSpinRPM {
		out.SidespinRPM = cal.MaxSpinRPM
	}
	return out
}

// TrajectorySample is one point on the ball's path. Position is in feet,
// velocity in feet per second, time in seconds since contact.
type TrajectorySample struct {
	TimeSec float64 `json:"t"`
	X       float64 `json:"x"`
	Y       float64 `json:"y"`
	Z       float64 `json:"z"`
	VX      float64 `json:"vx"`
	VY      float64 `json:"vy"`
	VZ      float64 `json:"vz"`
}

// Position returns the sample location as a field position.
func (s TrajectorySample) Position() models.FieldPosition {
	return models.FieldPosition{X: s.X, Y: s.Y, Z: s.Z}
}

// HorizontalSpeed returns the ground-plane speed in feet per second.
func (s TrajectorySample) HorizontalSpeed() float64 {
	return math.Sqrt(s.VX*s.VX + s.VY*s.VY)
}

// BattedBallResult is the full outcome of a simulated batted ball. Samples
// holds the aerial trajectory; for ground balls extended with a roll phase,
// roll samples are appended after LandingIndex.
type BattedBallResult struct {
	Conditions  InitialConditions  `json:"conditions"`
	Environment *Environment       `json:"environment"`
	Samples     []TrajectorySample `json:"samples"`

	// LandingIndex is the index of the ground-contact sample, or the
	// final sample for home runs and wall contact.
	LandingIndex int `json:"landing_index"`

	DistanceFt    float64        `json:"distance_ft"`
	FlightTimeSec float64        `json:"flight_time_sec"`
	PeakHeightFt  float64        `json:"peak_height_ft"`
	BallType      BattedBallType `json:"ball_type"`
	Fair          bool           `json:"fair"`
	HomeRun       bool           `json:"home_run"`
	WallContact   bool           `json:"wall_contact"`
}

// LandingPosition returns the point of first ground contact (or the wall
// crossing point for home runs and wall balls).
func (r *BattedBallResult) LandingPosition() models.FieldPosition {
	return r.Samples[r.LandingIndex].Position()
}

// RollSamples returns the roll-phase samples appended by ExtendWithRoll,
// or an empty slice if the result has no roll phase.
func (r *BattedBallResult) RollSamples() []TrajectorySample {
	return r.Samples[r.LandingIndex+1:]
}

// Simulator integrates batted ball trajectories under a fixed calibration.
// An optional field layout enables wall interactions and fair/foul scoring.
type Simulator struct {
	cal   Calibration
	field *models.FieldLayout
}

// NewSimulator returns a simulator using the given calibration and no
// field geometry.
func NewSimulator(cal Calibration) *Simulator {
	return &Simulator{cal: cal}
}

// NewFieldSimulator returns a simulator that additionally checks the wall
// profile of the given layout for home runs and wall contact.
func NewFieldSimulator(cal Calibration, field *models.FieldLayout) *Simulator {
	return &Simulator{cal: cal, field: field}
}

// Calibration returns the simulator's parameter set.
func (s *Simulator) Calibration() Calibration { return s.cal }

// lowLaunchVelocityFactor models the energy lost to the initial ground
// contact on low launch angles. Grounders come off the bat into the dirt
// almost immediately, so the aerial phase starts with reduced speed.
func lowLaunchVelocityFactor(launchAngleDeg float64) float64 {
	switch {
	case launchAngleDeg <= 0:
		return 0.55
	case launchAngleDeg <= 5:
		return 0.55 + launchAngleDeg/5*0.10
	default: // (5, 10)
		return 0.65 + (launchAngleDeg-5)/5*0.20
	}
}

// Simulate integrates the flight of a batted ball from contact to ground
// contact (or wall interaction) and returns the sampled trajectory with
// landing metrics. The same inputs always produce the same output.
func (s *Simulator) Simulate(cond InitialConditions, env *Environment) (*BattedBallResult, error) {
	if err := cond.Validate(); err != nil {
		return nil, err
	}
	if env == nil {
		return nil, &InvalidInputError{Field: "environment", Value: 0, Reason: "must not be nil"}
	}
	norm := cond.normalized(s.cal)

	ballType := ClassifyLaunchAngle(norm.LaunchAngleDeg)
	grounder := ballType == GroundBall

	speedMS := norm.ExitVelocityMPH * MPHToMS
	if grounder {
		speedMS *= lowLaunchVelocityFactor(norm.LaunchAngleDeg)
	}

	la := norm.LaunchAngleDeg * math.Pi / 180
	spray := norm.SprayAngleDeg * math.Pi / 180
	vel := Vec3{
		X: -speedMS * math.Cos(la) * math.Sin(spray),
		Y: speedMS * math.Cos(la) * math.Cos(spray),
		Z: speedMS * math.Sin(la),
	}
	pos := Vec3{Z: s.cal.ReleaseHeightFt * FeetToMeters}

	model := newAeroModel(s.cal, env, norm.BackspinRPM, norm.SidespinRPM, grounder)

	result := &BattedBallResult{
		Conditions:  cond,
		Environment: env,
		BallType:    ballType,
	}
	result.Samples = append(result.Samples, toSample(0, pos, vel))

	dt := s.cal.TimeStepSec
	t := 0.0
	landed := false
	for t < s.cal.MaxFlightTimeSec {
		nextPos, nextVel := rk4Step(model, pos, vel, dt)
		t += dt

		if !nextPos.IsFinite() || !nextVel.IsFinite() {
			return nil, &NumericalInstabilityError{TimeSec: t, Reason: "non-finite ball state"}
		}

		if nextPos.Z <= 0 {
			// Interpolate the exact ground contact between steps.
			frac := pos.Z / (pos.Z - nextPos.Z)
			landPos := pos.Add(nextPos.Add(pos.Scale(-1)).Scale(frac))
			landPos.Z = 0
			landVel := vel.Add(nextVel.Add(vel.Scale(-1)).Scale(frac))
			landT := t - dt + frac*dt
			result.Samples = append(result.Samples, toSample(landT, landPos, landVel))
			landed = true
			break
		}

		result.Samples = append(result.Samples, toSample(t, nextPos, nextVel))
		pos, vel = nextPos, nextVel

		if s.field != nil && s.checkWall(result) {
			break
		}
	}

	// No physical trajectory stays aloft this long, so an airborne ball at
	// the time cap means the force model has run away.
	if !landed && !result.HomeRun && !result.WallContact {
		return nil, &NumericalInstabilityError{TimeSec: t, Reason: "ball did not return to the ground plane"}
	}

	s.finalize(result)
	return result, nil
}

// checkWall inspects the newest sample for a wall crossing. It returns
// true when the flight should stop: over the wall (home run) or into it.
func (s *Simulator) checkWall(result *BattedBallResult) bool {
	last := result.Samples[len(result.Samples)-1]
	p := last.Position()
	if !s.field.IsFair(p) {
		return false
	}
	horiz := math.Hypot(p.X, p.Y)
	bearing := p.Bearing()
	if horiz < s.field.WallDistanceAt(bearing) {
		return false
	}
	if p.Z > s.field.WallHeightAt(bearing) {
		result.HomeRun = true
	} else {
		result.WallContact = true
	}
	return true
}

// finalize fills in the landing metrics from the sampled trajectory.
func (s *Simulator) finalize(result *BattedBallResult) {
	last := len(result.Samples) - 1
	result.LandingIndex = last

	peak := 0.0
	for _, sample := range result.Samples {
		if sample.Z > peak {
			peak = sample.Z
		}
	}
	result.PeakHeightFt = peak

	land := result.Samples[last]
	result.FlightTimeSec = land.TimeSec
	result.DistanceFt = math.Hypot(land.X, land.Y)
	result.Fair = models.InFairTerritory(land.Position())
}

// rk4Step advances position and velocity by one fixed step of classical
// fourth-order Runge-Kutta.
func rk4Step(model aeroModel, pos, vel Vec3, dt float64) (Vec3, Vec3) {
	k1v := model.acceleration(vel)
	k1p := vel

	k2v := model.acceleration(vel.Add(k1v.Scale(dt / 2)))
	k2p := vel.Add(k1v.Scale(dt / 2))

	k3v := model.acceleration(vel.Add(k2v.Scale(dt / 2)))
	k3p := vel.Add(k2v.Scale(dt / 2))

	k4v := model.acceleration(vel.Add(k3v.Scale(dt)))
	k4p := vel.Add(k3v.Scale(dt))

	nextVel := vel.Add(k1v.Add(k2v.Scale(2)).Add(k3v.Scale(2)).Add(k4v).Scale(dt / 6))
	nextPos := pos.Add(k1p.Add(k2p.Scale(2)).Add(k3p.Scale(2)).Add(k4p).Scale(dt / 6))
	return nextPos, nextVel
}

func toSample(t float64, pos, vel Vec3) TrajectorySample {
	return TrajectorySample{
		TimeSec: t,
		X:       pos.X * MetersToFeet,
		Y:       pos.Y * MetersToFeet,
		Z:       pos.Z * MetersToFeet,
		VX:      vel.X * MetersToFeet,
		VY:      vel.Y * MetersToFeet,
		VZ:      vel.Z * MetersToFeet,
	}
}
