package physics

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCalibrationValid(t *testing.T) {
	assert.NoError(t, DefaultCalibration().Validate())
}

func TestLoadCalibrationOverlay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "calibration.yaml")
	content := "drag_coefficient: 0.30\ntime_step_sec: 0.002\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cal, err := LoadCalibration(path)
	require.NoError(t, err)

	assert.Equal(t, 0.30, cal.DragCoefficient)
	assert.Equal(t, 0.002, cal.TimeStepSec)

	// Untouched fields keep their defaults.
	def := DefaultCalibration()
	assert.Equal(t, def.LiftPerRPM, cal.LiftPerRPM)
	assert.Equal(t, def.ReleaseHeightFt, cal.ReleaseHeightFt)
	assert.Equal(t, def.SuccessCeiling, cal.SuccessCeiling)
}

func TestLoadCalibrationMissingFile(t *testing.T) {
	_, err := LoadCalibration(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadCalibrationRejectsBadValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "calibration.yaml")
	require.NoError(t, os.WriteFile(path, []byte("time_step_sec: -1\n"), 0o644))

	_, err := LoadCalibration(path)
	assert.Error(t, err)
}

func TestCalibrationValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Calibration)
	}{
		{"zero time step", func(c *Calibration) { c.TimeStepSec = 0 }},
		{"huge time step", func(c *Calibration) { c.TimeStepSec = 1 }},
		{"negative drag", func(c *Calibration) { c.DragCoefficient = -0.1 }},
		{"zero max flight time", func(c *Calibration) { c.MaxFlightTimeSec = 0 }},
		{"zero release height", func(c *Calibration) { c.ReleaseHeightFt = 0 }},
		{"success ceiling above one", func(c *Calibration) { c.SuccessCeiling = 1.1 }},
		{"zero success slope", func(c *Calibration) { c.SuccessSlopeSec = 0 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cal := DefaultCalibration()
			tt.mutate(&cal)
			assert.Error(t, cal.Validate())
		})
	}
}
