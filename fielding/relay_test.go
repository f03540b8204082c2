package fielding

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/baseball-sim/physics-engine/models"
)

func standardRoster() []models.FielderState {
	alignment := models.StandardDefensiveAlignment()
	outfield := map[string]bool{
		models.PositionLeftField:   true,
		models.PositionCenterField: true,
		models.PositionRightField:  true,
	}
	var roster []models.FielderState
	for _, name := range []string{
		models.PositionPitcher, models.PositionCatcher,
		models.PositionFirstBase, models.PositionSecondBase,
		models.PositionThirdBase, models.PositionShortstop,
		models.PositionLeftField, models.PositionCenterField,
		models.PositionRightField,
	} {
		attrs := models.AverageInfielderAttributes()
		if outfield[name] {
			attrs = models.AverageOutfielderAttributes()
		}
		roster = append(roster, models.FielderState{ID: name, Position: alignment[name], Attributes: attrs})
	}
	return roster
}

func rosterFielder(t *testing.T, roster []models.FielderState, id string) models.FielderState {
	t.Helper()
	for _, f := range roster {
		if f.ID == id {
			return f
		}
	}
	t.Fatalf("no fielder %s in roster", id)
	return models.FielderState{}
}

func TestThrowAtThresholdGoesDirect(t *testing.T) {
	layout := models.NewFieldLayout()
	roster := standardRoster()
	thrower := rosterFielder(t, roster, models.PositionCenterField)

	got, err := SimulateRelayThrow(thrower, models.FieldPosition{X: 0, Y: 200}, models.BaseHome, roster, layout)
	require.NoError(t, err)

	assert.True(t, got.Direct)
	assert.Empty(t, got.CutoffID)
	require.Len(t, got.Throws, 1)
	assert.Equal(t, 0.0, got.ExchangeTimeSec)

	// transfer 0.6 + 200 ft at 95 mph with the drag factor
	assert.InDelta(t, 200.0, got.Throws[0].DistanceFt, 1e-9)
	assert.InDelta(t, 2.1072, got.TotalTimeSec, 1e-3)
}

func TestThrowJustBeyondThresholdRelays(t *testing.T) {
	layout := models.NewFieldLayout()
	roster := standardRoster()
	thrower := rosterFielder(t, roster, models.PositionCenterField)

	got, err := SimulateRelayThrow(thrower, models.FieldPosition{X: 0, Y: 201}, models.BaseHome, roster, layout)
	require.NoError(t, err)

	assert.False(t, got.Direct)
	assert.Equal(t, models.PositionShortstop, got.CutoffID)
	require.Len(t, got.Throws, 2)
	assert.Equal(t, relayExchangeSec, got.ExchangeTimeSec)
	assert.Equal(t, got.Throws[0].TotalSec()+relayExchangeSec+got.Throws[1].TotalSec(), got.TotalTimeSec)
}

// A relay from the center field wall should get the ball home in the time
// a runner needs to score from second, roughly four and a half seconds.
func TestDeepCenterRelayHome(t *testing.T) {
	layout := models.NewFieldLayout()
	roster := standardRoster()
	thrower := rosterFielder(t, roster, models.PositionCenterField)

	got, err := SimulateRelayThrow(thrower, models.FieldPosition{X: 0, Y: 380}, models.BaseHome, roster, layout)
	require.NoError(t, err)

	assert.False(t, got.Direct)
	assert.Equal(t, models.PositionShortstop, got.CutoffID)
	assert.Greater(t, got.TotalTimeSec, 2.5)
	assert.Less(t, got.TotalTimeSec, 5.0)
	assert.InDelta(t, 4.398, got.TotalTimeSec, 0.01)
}

func TestRightFieldRelayHomeUsesSecondBaseman(t *testing.T) {
	layout := models.NewFieldLayout()
	roster := standardRoster()
	thrower := rosterFielder(t, roster, models.PositionRightField)

	got, err := SimulateRelayThrow(thrower, models.FieldPosition{X: 150, Y: 300}, models.BaseHome, roster, layout)
	require.NoError(t, err)

	assert.False(t, got.Direct)
	assert.Equal(t, models.PositionSecondBase, got.CutoffID)
}

func TestLeftFieldRelayThirdUsesShortstop(t *testing.T) {
	layout := models.NewFieldLayout()
	roster := standardRoster()
	thrower := rosterFielder(t, roster, models.PositionLeftField)

	got, err := SimulateRelayThrow(thrower, models.FieldPosition{X: -120, Y: 330}, models.BaseThird, roster, layout)
	require.NoError(t, err)

	assert.False(t, got.Direct)
	assert.Equal(t, models.PositionShortstop, got.CutoffID)
}

func TestMissingCutoffFallsBackToDirectThrow(t *testing.T) {
	layout := models.NewFieldLayout()
	var roster []models.FielderState
	for _, f := range standardRoster() {
		if f.ID != models.PositionShortstop {
			roster = append(roster, f)
		}
	}
	thrower := rosterFielder(t, roster, models.PositionCenterField)

	got, err := SimulateRelayThrow(thrower, models.FieldPosition{X: 0, Y: 380}, models.BaseHome, roster, layout)
	require.NoError(t, err)

	assert.True(t, got.Direct)
	assert.True(t, got.CutoffMissing)
	require.Len(t, got.Throws, 1)
	assert.InDelta(t, 380, got.Throws[0].DistanceFt, 1e-9)
}

func TestRelayThrowUnknownBase(t *testing.T) {
	layout := models.NewFieldLayout()
	roster := standardRoster()
	thrower := rosterFielder(t, roster, models.PositionCenterField)

	_, err := SimulateRelayThrow(thrower, models.FieldPosition{X: 0, Y: 380}, "fifth", roster, layout)
	assert.Error(t, err)
}

func TestRelayThrowRejectsInvalidThrower(t *testing.T) {
	layout := models.NewFieldLayout()
	roster := standardRoster()
	thrower := rosterFielder(t, roster, models.PositionCenterField)
	thrower.Attributes.ArmStrength = 0

	_, err := SimulateRelayThrow(thrower, models.FieldPosition{X: 0, Y: 380}, models.BaseHome, roster, layout)
	assert.Error(t, err)
}
