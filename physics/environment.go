package physics

import "math"

// Environment holds atmospheric conditions at the ballpark. Air density is
// computed once at construction and reused for every trajectory simulated
// under these conditions.
type Environment struct {
	AltitudeFt       float64 `json:"altitude_ft"`
	TemperatureF     float64 `json:"temperature_f"`
	RelativeHumidity float64 `json:"relative_humidity"`
	WindSpeedMPH     float64 `json:"wind_speed_mph"`
	WindDirectionDeg float64 `json:"wind_direction_deg"`

	airDensity float64
	pressurePa float64
}

// NewEnvironment validates the conditions and precomputes air density.
// Wind direction is the bearing the wind blows toward, in degrees, with 0
// pointing at center field and 90 toward right field. Humidity is a
// fraction in [0, 1].
func NewEnvironment(altitudeFt, temperatureF, humidity, windSpeedMPH, windDirectionDeg float64) (*Environment, error) {
	if altitudeFt < 0 || altitudeFt > MaxAltitudeFt || !finite(altitudeFt) {
		return nil, &InvalidInputError{Field: "altitude_ft", Value: altitudeFt, Reason: "must be in [0, 15000]"}
	}
	if temperatureF < MinTemperatureF || temperatureF > MaxTemperatureF || !finite(temperatureF) {
		return nil, &InvalidInputError{Field: "temperature_f", Value: temperatureF, Reason: "must be in [-20, 130]"}
	}
	if humidity < 0 || humidity > 1 || !finite(humidity) {
		return nil, &InvalidInputError{Field: "relative_humidity", Value: humidity, Reason: "must be in [0, 1]"}
	}
	if windSpeedMPH < 0 || windSpeedMPH > MaxWindSpeedMPH || !finite(windSpeedMPH) {
		return nil, &InvalidInputError{Field: "wind_speed_mph", Value: windSpeedMPH, Reason: "must be in [0, 60]"}
	}
	if !finite(windDirectionDeg) {
		return nil, &InvalidInputError{Field: "wind_direction_deg", Value: windDirectionDeg, Reason: "must be finite"}
	}

	env := &Environment{
		AltitudeFt:       altitudeFt,
		TemperatureF:     temperatureF,
		RelativeHumidity: humidity,
		WindSpeedMPH:     windSpeedMPH,
		WindDirectionDeg: windDirectionDeg,
	}
	env.pressurePa = barometricPressure(altitudeFt * FeetToMeters)
	env.airDensity = airDensity(env.pressurePa, temperatureF, humidity)
	return env, nil
}

// DefaultEnvironment is sea level, 70F, 50% humidity, no wind.
func DefaultEnvironment() *Environment {
	env, err := NewEnvironment(0, 70, 0.5, 0, 0)
	if err != nil {
		panic(err)
	}
	return env
}

// AirDensity returns the precomputed air density in kg/m^3.
func (e *Environment) AirDensity() float64 { return e.airDensity }

// PressurePa returns the barometric pressure in pascals.
func (e *Environment) PressurePa() float64 { return e.pressurePa }

// WindVectorFPS returns the horizontal wind components in field
// coordinates, in feet per second.
func (e *Environment) WindVectorFPS() (x, y float64) {
	speed := e.WindSpeedMPH * MPHToFPS
	rad := e.WindDirectionDeg * math.Pi / 180
	return speed * math.Sin(rad), speed * math.Cos(rad)
}

// windVectorMS is the same wind in meters per second, for the integrator.
func (e *Environment) windVectorMS() Vec3 {
	x, y := e.WindVectorFPS()
	return Vec3{X: x * FeetToMeters, Y: y * FeetToMeters}
}

// barometricPressure applies the exponential approximation to the
// barometric formula at the given altitude in meters.
func barometricPressure(altitudeM float64) float64 {
	return SeaLevelPressPa * math.Exp(-altitudeM/ScaleHeightM)
}

// airDensity computes moist-air density from pressure, temperature and
// relative humidity using the ideal gas law with a vapor correction. The
// saturation vapor pressure uses the Magnus formula.
func airDensity(pressurePa, temperatureF, humidity float64) float64 {
	tempC := (temperatureF - 32) * 5 / 9
	tempK := tempC + 273.15

	satVaporPa := 610.94 * math.Exp(17.625*tempC/(tempC+243.04))
	vaporPa := humidity * satVaporPa
	dryPa := pressurePa - vaporPa

	return dryPa/(GasConstDryAir*tempK) + vaporPa/(GasConstVapor*tempK)
}
