package physics

// Physical constants for the ball and the atmosphere. The integrator works
// in SI units; values cross the API boundary in feet and miles per hour.
const (
	BallMassKG      = 0.145
	BallDiameterM   = 0.074
	BallRadiusM     = BallDiameterM / 2
	GravityMS2      = 9.81
	SeaLevelPressPa = 101325.0
	ScaleHeightM    = 8400.0
	GasConstDryAir  = 287.05
	GasConstVapor   = 461.5
)

// Unit conversions
const (
	MPHToMS      = 0.44704
	FeetToMeters = 0.3048
	MetersToFeet = 1.0 / 0.3048
	MPHToFPS     = 5280.0 / 3600.0
)

// Input validation bounds
const (
	MinLaunchAngleDeg = -20.0
	MaxLaunchAngleDeg = 85.0
	MaxSprayAngleDeg  = 45.0
	MinTemperatureF   = -20.0
	MaxTemperatureF   = 130.0
	MaxAltitudeFt     = 15000.0
	MaxWindSpeedMPH   = 60.0

	// Exit velocities below this floor are clamped up to avoid
	// degenerate zero-length trajectories.
	MinExitVelocityMPH = 1.0
	MaxExitVelocityMPH = 130.0
)
