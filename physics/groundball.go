package physics

import "fmt"

// Surface is the playing surface a ground ball rolls on.
type Surface string

const (
	SurfaceGrass Surface = "grass"
	SurfaceTurf  Surface = "turf"
	SurfaceDirt  Surface = "dirt"
)

// RollDeceleration returns the constant friction deceleration for the
// surface, in ft/s^2.
func RollDeceleration(surface Surface) (float64, error) {
	switch surface {
	case SurfaceGrass:
		return 20.0, nil
	case SurfaceTurf:
		return 15.0, nil
	case SurfaceDirt:
		return 28.0, nil
	default:
		return 0, &InvalidInputError{Field: "surface", Value: 0, Reason: fmt.Sprintf("unknown surface %q", surface)}
	}
}

// rollSampleInterval is the cadence of roll-phase samples.
const rollSampleInterval = 0.05

// ExtendWithRoll appends a roll phase to a ground ball result. The ball
// decelerates at the surface's constant rate along its landing direction,
// sampled every 50 ms, until it stops or maxDurationSec elapses. The
// aerial samples are left untouched.
func ExtendWithRoll(result *BattedBallResult, surface Surface, maxDurationSec float64) error {
	if result == nil || len(result.Samples) == 0 {
		return &InvalidInputError{Field: "result", Value: 0, Reason: "must hold a simulated trajectory"}
	}
	if result.BallType != GroundBall {
		return &InvalidInputError{Field: "ball_type", Value: 0, Reason: fmt.Sprintf("roll extension applies to ground balls, got %s", result.BallType)}
	}
	if result.HomeRun || result.WallContact {
		return &InvalidInputError{Field: "result", Value: 0, Reason: "ball never reached the ground in play"}
	}
	if maxDurationSec <= 0 || !finite(maxDurationSec) {
		return &InvalidInputError{Field: "max_duration_sec", Value: maxDurationSec, Reason: "must be positive"}
	}
	decel, err := RollDeceleration(surface)
	if err != nil {
		return err
	}

	land := result.Samples[result.LandingIndex]
	speed := land.HorizontalSpeed()
	if speed <= 0 {
		return nil
	}
	dirX := land.VX / speed
	dirY := land.VY / speed

	stopTime := speed / decel
	if stopTime > maxDurationSec {
		stopTime = maxDurationSec
	}

	for t := rollSampleInterval; t <= stopTime+1e-12; t += rollSampleInterval {
		v := speed - decel*t
		if v < 0 {
			v = 0
		}
		dist := speed*t - 0.5*decel*t*t
		result.Samples = append(result.Samples, TrajectorySample{
			TimeSec: land.TimeSec + t,
			X:       land.X + dirX*dist,
			Y:       land.Y + dirY*dist,
			Z:       0,
			VX:      dirX * v,
			VY:      dirY * v,
		})
	}

	// Final resting sample if the stop fell between cadence points.
	lastIdx := len(result.Samples) - 1
	if result.Samples[lastIdx].TimeSec < land.TimeSec+stopTime-1e-9 {
		v := speed - decel*stopTime
		if v < 0 {
			v = 0
		}
		dist := speed*stopTime - 0.5*decel*stopTime*stopTime
		result.Samples = append(result.Samples, TrajectorySample{
			TimeSec: land.TimeSec + stopTime,
			X:       land.X + dirX*dist,
			Y:       land.Y + dirY*dist,
			VX:      dirX * v,
			VY:      dirY * v,
		})
	}
	return nil
}
