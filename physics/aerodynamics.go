package physics

import "math"

// crossSectionM2 is the ball's cross-sectional area in m^2.
var crossSectionM2 = math.Pi * BallRadiusM * BallRadiusM

// aeroModel evaluates the forces on the ball for one simulation. The drag
// coefficient and lift coefficient are fixed per trajectory because the
// spin magnitude is treated as constant during flight.
type aeroModel struct {
	airDensity float64
	wind       Vec3
	cd         float64
	cl         float64
	spinAxis   Vec3
	simplified bool
}

// newAeroModel builds the force model for a trajectory. backspin and
// sidespin are in rpm, already clamped. When simplified is set (the
// low-launch-angle regime) spin forces are dropped and a reduced drag
// coefficient is used.
func newAeroModel(cal Calibration, env *Environment, backspinRPM, sidespinRPM float64, simplified bool) aeroModel {
	m := aeroModel{
		airDensity: env.AirDensity(),
		wind:       env.windVectorMS(),
		simplified: simplified,
	}
	if simplified {
		m.cd = cal.GroundBallDragCoefficient
		return m
	}

	// Spin vector in field coordinates: backspin tilts around -x so the
	// Magnus force on a ball moving toward center field points up;
	// sidespin tilts around +z.
	spin := Vec3{X: -backspinRPM, Y: 0, Z: sidespinRPM}
	totalRPM := spin.Norm()

	m.cd = cal.DragCoefficient + math.Min(cal.SpinDragFactor*totalRPM, cal.SpinDragMaxIncrease)
	m.cl = liftCoefficient(cal, totalRPM)
	m.spinAxis = spin.Unit()
	return m
}

// liftCoefficient is linear in spin rate up to the saturation point, then
// grows at a reduced slope.
func liftCoefficient(cal Calibration, rpm float64) float64 {
	if rpm <= cal.SpinSaturationRPM {
		return cal.LiftPerRPM * rpm
	}
	base := cal.LiftPerRPM * cal.SpinSaturationRPM
	return base + cal.LiftPerRPM*cal.SaturatedLiftSlope*(rpm-cal.SpinSaturationRPM)
}

// acceleration returns the net acceleration in m/s^2 at the given velocity.
func (m aeroModel) acceleration(vel Vec3) Vec3 {
	acc := Vec3{Z: -GravityMS2}

	rel := Vec3{X: vel.X - m.wind.X, Y: vel.Y - m.wind.Y, Z: vel.Z}
	speed := rel.Norm()
	if speed == 0 {
		return acc
	}

	dragMag := 0.5 * m.cd * m.airDensity * crossSectionM2 * speed * speed / BallMassKG
	acc = acc.Add(rel.Unit().Scale(-dragMag))

	if !m.simplified && m.cl > 0 {
		magnusDir := rel.Unit().Cross(m.spinAxis).Unit()
		magnusMag := 0.5 * m.cl * m.airDensity * crossSectionM2 * speed * speed / BallMassKG
		acc = acc.Add(magnusDir.Scale(magnusMag))
	}
	return acc
}
