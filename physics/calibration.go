package physics

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Calibration collects the tunable aerodynamic and numerical parameters of
// the flight model. Default values reproduce league-average carry; a YAML
// overlay lets deployments retune without rebuilding.
type Calibration struct {
	// Aerodynamics
	DragCoefficient     float64 `yaml:"drag_coefficient"`
	SpinDragFactor      float64 `yaml:"spin_drag_factor"`
	SpinDragMaxIncrease float64 `yaml:"spin_drag_max_increase"`
	LiftPerRPM          float64 `yaml:"lift_per_rpm"`
	SpinSaturationRPM   float64 `yaml:"spin_saturation_rpm"`
	SaturatedLiftSlope  float64 `yaml:"saturated_lift_slope"`
	MaxSpinRPM          float64 `yaml:"max_spin_rpm"`

	// Ground-ball launch corrections
	GroundBallDragCoefficient float64 `yaml:"ground_ball_drag_coefficient"`

	// Integration
	TimeStepSec      float64 `yaml:"time_step_sec"`
	MaxFlightTimeSec float64 `yaml:"max_flight_time_sec"`
	ReleaseHeightFt  float64 `yaml:"release_height_ft"`

	// Fielding success model
	SuccessCeiling     float64 `yaml:"success_ceiling"`
	SuccessMidpointSec float64 `yaml:"success_midpoint_sec"`
	SuccessSlopeSec    float64 `yaml:"success_slope_sec"`
}

// DefaultCalibration returns the stock parameter set.
func DefaultCalibration() Calibration {
	return Calibration{
		DragCoefficient:     0.32,
		SpinDragFactor:      2e-5,
		SpinDragMaxIncrease: 0.15,
		LiftPerRPM:          1.45e-4,
		SpinSaturationRPM:   2500,
		SaturatedLiftSlope:  0.2,
		MaxSpinRPM:          3000,

		GroundBallDragCoefficient: 0.08,

		TimeStepSec:      0.001,
		MaxFlightTimeSec: 15.0,
		ReleaseHeightFt:  3.0,

		SuccessCeiling:     0.97,
		SuccessMidpointSec: 0.35,
		SuccessSlopeSec:    0.18,
	}
}

// LoadCalibration reads a YAML file and overlays it on the defaults.
// Fields absent from the file keep their default values.
func LoadCalibration(path string) (Calibration, error) {
	cal := DefaultCalibration()
	data, err := os.ReadFile(path)
	if err != nil {
		return cal, fmt.Errorf("reading calibration file: %w", err)
	}
	if err := yaml.Unmarshal(data, &cal); err != nil {
		return cal, fmt.Errorf("parsing calibration file: %w", err)
	}
	if err := cal.Validate(); err != nil {
		return cal, err
	}
	return cal, nil
}

// Validate rejects parameter values that would destabilize the integrator.
func (c Calibration) Validate() error {
	if c.TimeStepSec <= 0 || c.TimeStepSec > 0.1 {
		return &InvalidInputError{Field: "time_step_sec", Value: c.TimeStepSec, Reason: "must be in (0, 0.1]"}
	}
	if c.MaxFlightTimeSec <= 0 {
		return &InvalidInputError{Field: "max_flight_time_sec", Value: c.MaxFlightTimeSec, Reason: "must be positive"}
	}
	if c.DragCoefficient < 0 {
		return &InvalidInputError{Field: "drag_coefficient", Value: c.DragCoefficient, Reason: "must be non-negative"}
	}
	if c.ReleaseHeightFt <= 0 {
		return &InvalidInputError{Field: "release_height_ft", Value: c.ReleaseHeightFt, Reason: "must be positive"}
	}
	if c.SuccessCeiling <= 0 || c.SuccessCeiling > 1 {
		return &InvalidInputError{Field: "success_ceiling", Value: c.SuccessCeiling, Reason: "must be in (0, 1]"}
	}
	if c.SuccessSlopeSec <= 0 {
		return &InvalidInputError{Field: "success_slope_sec", Value: c.SuccessSlopeSec, Reason: "must be positive"}
	}
	return nil
}
