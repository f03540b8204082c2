package fielding

import (
	"fmt"

	"github.com/baseball-sim/physics-engine/models"
)

// RelayThrowThresholdFt is the longest throw attempted directly. Anything
// strictly farther goes through a cutoff man.
const RelayThrowThresholdFt = 200.0

// relayExchangeSec is the glove-to-hand time at the cutoff man, on top of
// his own transfer time on the second throw.
const relayExchangeSec = 0.3

// airResistanceFactor pads straight-line throw flight time for drag.
const airResistanceFactor = 1.05

// ThrowSegment is one throw in a relay chain.
type ThrowSegment struct {
	FromID          string  `json:"from_id"`
	DistanceFt      float64 `json:"distance_ft"`
	VelocityFPS     float64 `json:"velocity_fps"`
	FlightTimeSec   float64 `json:"flight_time_sec"`
	TransferTimeSec float64 `json:"transfer_time_sec"`
}

// TotalSec is the segment's transfer plus flight time.
func (s ThrowSegment) TotalSec() float64 {
	return s.TransferTimeSec + s.FlightTimeSec
}

// RelayThrowResult is the timing of getting the ball from an outfielder to
// a base, directly or through a cutoff man.
type RelayThrowResult struct {
	TargetBase      string         `json:"target_base"`
	Direct          bool           `json:"direct"`
	CutoffID        string         `json:"cutoff_id,omitempty"`
	CutoffMissing   bool           `json:"cutoff_missing,omitempty"`
	Throws          []ThrowSegment `json:"throws"`
	ExchangeTimeSec float64        `json:"exchange_time_sec"`
	TotalTimeSec    float64        `json:"total_time_sec"`
}

// SimulateRelayThrow times a throw from the fielder holding the ball at
// ballPos to the target base. Throws longer than the relay threshold route
// through the cutoff man the layout assigns for the ball's outfield zone;
// if that cutoff man is absent from the roster the throw goes direct and
// the result is flagged.
func SimulateRelayThrow(thrower models.FielderState, ballPos models.FieldPosition, targetBase string, fielders []models.FielderState, layout *models.FieldLayout) (RelayThrowResult, error) {
	if err := thrower.Attributes.Validate(); err != nil {
		return RelayThrowResult{}, fmt.Errorf("thrower %s: %w", thrower.ID, err)
	}
	basePos, err := layout.BasePosition(targetBase)
	if err != nil {
		return RelayThrowResult{}, err
	}

	result := RelayThrowResult{TargetBase: targetBase}
	dist := ballPos.HorizontalDistanceTo(basePos)

	if dist <= RelayThrowThresholdFt {
		seg := throwSegment(thrower, dist)
		result.Direct = true
		result.Throws = []ThrowSegment{seg}
		result.TotalTimeSec = seg.TotalSec()
		return result, nil
	}

	zone := layout.OutfieldZoneFor(ballPos)
	cutoffName, ok := layout.CutoffFor(zone, targetBase)
	var cutoff *models.FielderState
	if ok {
		for i := range fielders {
			if fielders[i].ID == cutoffName {
				cutoff = &fielders[i]
				break
			}
		}
	}
	if cutoff == nil {
		seg := throwSegment(thrower, dist)
		result.Direct = true
		result.CutoffMissing = true
		result.Throws = []ThrowSegment{seg}
		result.TotalTimeSec = seg.TotalSec()
		return result, nil
	}
	if err := cutoff.Attributes.Validate(); err != nil {
		return RelayThrowResult{}, fmt.Errorf("cutoff %s: %w", cutoff.ID, err)
	}

	first := throwSegment(thrower, ballPos.HorizontalDistanceTo(cutoff.Position))
	second := throwSegment(*cutoff, cutoff.Position.HorizontalDistanceTo(basePos))
	result.CutoffID = cutoff.ID
	result.Throws = []ThrowSegment{first, second}
	result.ExchangeTimeSec = relayExchangeSec
	result.TotalTimeSec = first.TotalSec() + relayExchangeSec + second.TotalSec()
	return result, nil
}

func throwSegment(f models.FielderState, distanceFt float64) ThrowSegment {
	v := f.ThrowVelocityFPS()
	return ThrowSegment{
		FromID:          f.ID,
		DistanceFt:      distanceFt,
		VelocityFPS:     v,
		FlightTimeSec:   distanceFt / v * airResistanceFactor,
		TransferTimeSec: f.Attributes.TransferTime,
	}
}
