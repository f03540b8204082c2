// Package fielding decides which defender plays a batted ball and models
// the throws that follow.
package fielding

import (
	"math"
	"math/rand"

	"github.com/baseball-sim/physics-engine/models"
	"github.com/baseball-sim/physics-engine/physics"
)

// InterceptionResult describes whether and how a batted ball gets played.
// Intercepted means some fielder can reach the ball in time; Fielded means
// the success draw also came up clean. An interception that fails the draw
// is a fielding error.
type InterceptionResult struct {
	Intercepted bool                 `json:"intercepted"`
	FielderID   string               `json:"fielder_id,omitempty"`
	Position    models.FieldPosition `json:"position"`
	TimeSec     float64              `json:"time_sec"`
	MarginSec   float64              `json:"margin_sec"`
	Probability float64              `json:"probability"`
	Fielded     bool                 `json:"fielded"`
	Error       bool                 `json:"error"`
}

// SuccessProbability maps a time margin in seconds to the chance the
// fielder converts the play, a logistic curve capped below 1 so even easy
// plays can be botched.
func SuccessProbability(marginSec float64, cal physics.Calibration) float64 {
	return cal.SuccessCeiling / (1 + math.Exp(-(marginSec-cal.SuccessMidpointSec)/cal.SuccessSlopeSec))
}

type candidate struct {
	index       int
	timeToReach float64
	distance    float64
}

// FindBestInterception determines which fielder, if any, plays the ball.
// Airborne balls are judged at the landing point against hang time; ground
// balls are chased along the roll trajectory, taking the earliest sample
// any fielder can beat. The rng drives only the success draw, so the
// chosen fielder and timing are deterministic in the inputs.
func FindBestInterception(result *physics.BattedBallResult, fielders []models.FielderState, cal physics.Calibration, rng *rand.Rand) (InterceptionResult, error) {
	if result == nil || len(result.Samples) == 0 {
		return InterceptionResult{}, &physics.InvalidInputError{Field: "result", Value: 0, Reason: "must hold a simulated trajectory"}
	}
	if result.HomeRun || !result.Fair {
		return InterceptionResult{}, nil
	}

	if result.BallType == physics.GroundBall {
		return interceptGroundBall(result, fielders, cal, rng)
	}
	return interceptAirborne(result, fielders, cal, rng)
}

// interceptAirborne picks the fielder with the largest margin at the
// landing point. Ties on margin go to the shorter run, then to roster
// order.
func interceptAirborne(result *physics.BattedBallResult, fielders []models.FielderState, cal physics.Calibration, rng *rand.Rand) (InterceptionResult, error) {
	landing := result.LandingPosition()
	hangTime := result.FlightTimeSec

	best := candidate{index: -1}
	bestMargin := math.Inf(-1)
	for i, f := range fielders {
		tt, err := f.TimeToReach(landing)
		if err != nil {
			return InterceptionResult{}, err
		}
		if tt > hangTime {
			continue
		}
		margin := hangTime - tt
		dist := f.Position.HorizontalDistanceTo(landing)
		if margin > bestMargin+1e-9 || (math.Abs(margin-bestMargin) <= 1e-9 && dist < best.distance) {
			best = candidate{index: i, timeToReach: tt, distance: dist}
			bestMargin = margin
		}
	}
	if best.index < 0 {
		return InterceptionResult{Position: landing, TimeSec: hangTime}, nil
	}
	return resolveOutcome(fielders[best.index].ID, landing, hangTime, bestMargin, cal, rng), nil
}

// interceptGroundBall walks the ball path from ground contact onward in
// time order and stops at the first sample some fielder can reach by the
// time the ball gets there.
func interceptGroundBall(result *physics.BattedBallResult, fielders []models.FielderState, cal physics.Calibration, rng *rand.Rand) (InterceptionResult, error) {
	path := result.Samples[result.LandingIndex:]
	for _, sample := range path {
		pos := sample.Position()
		best := candidate{index: -1}
		bestMargin := math.Inf(-1)
		for i, f := range fielders {
			tt, err := f.TimeToReach(pos)
			if err != nil {
				return InterceptionResult{}, err
			}
			if tt > sample.TimeSec {
				continue
			}
			margin := sample.TimeSec - tt
			dist := f.Position.HorizontalDistanceTo(pos)
			if margin > bestMargin+1e-9 || (math.Abs(margin-bestMargin) <= 1e-9 && dist < best.distance) {
				best = candidate{index: i, timeToReach: tt, distance: dist}
				bestMargin = margin
			}
		}
		if best.index >= 0 {
			return resolveOutcome(fielders[best.index].ID, pos, sample.TimeSec, bestMargin, cal, rng), nil
		}
	}

	// Ball rolled to a stop untouched.
	last := result.Samples[len(result.Samples)-1]
	return InterceptionResult{Position: last.Position(), TimeSec: last.TimeSec}, nil
}

func resolveOutcome(fielderID string, pos models.FieldPosition, t, margin float64, cal physics.Calibration, rng *rand.Rand) InterceptionResult {
	p := SuccessProbability(margin, cal)
	fielded := rng.Float64() < p
	return InterceptionResult{
		Intercepted: true,
		FielderID:   fielderID,
		Position:    pos,
		TimeSec:     t,
		MarginSec:   margin,
		Probability: p,
		Fielded:     fielded,
		Error:       !fielded,
	}
}
