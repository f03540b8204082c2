package models

import (
	"fmt"
	"math"
)

// Base names used throughout the engine
const (
	BaseHome   = "home"
	BaseFirst  = "first"
	BaseSecond = "second"
	BaseThird  = "third"
)

// Defensive position names
const (
	PositionPitcher     = "pitcher"
	PositionCatcher     = "catcher"
	PositionFirstBase   = "first_base"
	PositionSecondBase  = "second_base"
	PositionThirdBase   = "third_base"
	PositionShortstop   = "shortstop"
	PositionLeftField   = "left_field"
	PositionCenterField = "center_field"
	PositionRightField  = "right_field"
)

// FieldPosition is a point in field coordinates: the origin is the back
// point of home plate, x grows toward right field, y grows toward center
// field, z grows upward. All values are in feet.
type FieldPosition struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// HorizontalDistanceTo returns the ground distance to other, ignoring height.
func (p FieldPosition) HorizontalDistanceTo(other FieldPosition) float64 {
	dx := p.X - other.X
	dy := p.Y - other.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// DistanceTo returns the straight-line distance to other in feet.
func (p FieldPosition) DistanceTo(other FieldPosition) float64 {
	dx := p.X - other.X
	dy := p.Y - other.Y
	dz := p.Z - other.Z
	return math.Sqrt(dx*dx + dy*dy + dz*dz)
}

// Bearing returns the horizontal angle of the position as seen from home
// plate, in degrees. Zero points at center field, negative angles point
// toward left field and positive toward right field.
func (p FieldPosition) Bearing() float64 {
	return math.Atan2(p.X, p.Y) * 180.0 / math.Pi
}

// WallProfile describes outfield wall distances and heights at the five
// standard survey points, measured from home plate along the listed bearing.
type WallProfile struct {
	LeftFieldDistance   float64 `json:"left_field_distance"`
	LeftCenterDistance  float64 `json:"left_center_distance"`
	CenterFieldDistance float64 `json:"center_field_distance"`
	RightCenterDistance float64 `json:"right_center_distance"`
	RightFieldDistance  float64 `json:"right_field_distance"`
	LeftFieldHeight     float64 `json:"left_field_height"`
	LeftCenterHeight    float64 `json:"left_center_height"`
	CenterFieldHeight   float64 `json:"center_field_height"`
	RightCenterHeight   float64 `json:"right_center_height"`
	RightFieldHeight    float64 `json:"right_field_height"`
}

// FieldLayout holds the static geometry of the playing field: base
// locations, the outfield wall profile, and the cutoff assignments used
// for relay throws.
type FieldLayout struct {
	Bases map[string]FieldPosition `json:"bases"`
	Wall  WallProfile              `json:"wall"`

	// cutoffs maps outfield zone -> target base -> cutoff position name.
	cutoffs map[string]map[string]string
}

// NewFieldLayout returns a layout with regulation base geometry, a
// symmetric 330/375/400 wall, and standard cutoff assignments.
func NewFieldLayout() *FieldLayout {
	// Base paths are 90 ft; first and third sit on the 45 degree foul
	// lines, second is straight away from home.
	baseDiag := 90.0 / math.Sqrt2
	return &FieldLayout{
		Bases: map[string]FieldPosition{
			BaseHome:   {X: 0, Y: 0},
			BaseFirst:  {X: baseDiag, Y: baseDiag},
			BaseSecond: {X: 0, Y: 90.0 * math.Sqrt2},
			BaseThird:  {X: -baseDiag, Y: baseDiag},
		},
		Wall: WallProfile{
			LeftFieldDistance:   330,
			LeftCenterDistance:  375,
			CenterFieldDistance: 400,
			RightCenterDistance: 375,
			RightFieldDistance:  330,
			LeftFieldHeight:     8,
			LeftCenterHeight:    8,
			CenterFieldHeight:   10,
			RightCenterHeight:   8,
			RightFieldHeight:    8,
		},
		cutoffs: map[string]map[string]string{
			PositionLeftField: {
				BaseHome:   PositionShortstop,
				BaseThird:  PositionShortstop,
				BaseSecond: PositionShortstop,
				BaseFirst:  PositionSecondBase,
			},
			PositionCenterField: {
				BaseHome:   PositionShortstop,
				BaseThird:  PositionShortstop,
				BaseSecond: PositionSecondBase,
				BaseFirst:  PositionSecondBase,
			},
			PositionRightField: {
				BaseHome:   PositionSecondBase,
				BaseThird:  PositionShortstop,
				BaseSecond: PositionSecondBase,
				BaseFirst:  PositionSecondBase,
			},
		},
	}
}

// BasePosition returns the location of the named base.
func (f *FieldLayout) BasePosition(base string) (FieldPosition, error) {
	pos, ok := f.Bases[base]
	if !ok {
		return FieldPosition{}, fmt.Errorf("unknown base %q", base)
	}
	return pos, nil
}

// InFairTerritory reports whether the position lies inside the 45 degree
// foul lines. Points exactly on a line are fair.
func InFairTerritory(pos FieldPosition) bool {
	if pos.Y < 0 {
		return false
	}
	return math.Abs(pos.X) <= pos.Y
}

// IsFair reports whether the position lies in fair territory.
func (f *FieldLayout) IsFair(pos FieldPosition) bool {
	return InFairTerritory(pos)
}

// wall survey bearings, left field line to right field line.
var wallBearings = [5]float64{-45, -22.5, 0, 22.5, 45}

// WallDistanceAt returns the wall distance at the given bearing in degrees,
// linearly interpolated between the five survey points. Bearings outside
// the foul lines clamp to the nearest line.
func (f *FieldLayout) WallDistanceAt(bearing float64) float64 {
	d := [5]float64{
		f.Wall.LeftFieldDistance,
		f.Wall.LeftCenterDistance,
		f.Wall.CenterFieldDistance,
		f.Wall.RightCenterDistance,
		f.Wall.RightFieldDistance,
	}
	return interpolateWall(bearing, d)
}

// WallHeightAt returns the wall height at the given bearing in degrees,
// interpolated the same way as WallDistanceAt.
func (f *FieldLayout) WallHeightAt(bearing float64) float64 {
	h := [5]float64{
		f.Wall.LeftFieldHeight,
		f.Wall.LeftCenterHeight,
		f.Wall.CenterFieldHeight,
		f.Wall.RightCenterHeight,
		f.Wall.RightFieldHeight,
	}
	return interpolateWall(bearing, h)
}

func interpolateWall(bearing float64, values [5]float64) float64 {
	if bearing <= wallBearings[0] {
		return values[0]
	}
	if bearing >= wallBearings[4] {
		return values[4]
	}
	for i := 1; i < 5; i++ {
		if bearing <= wallBearings[i] {
			span := wallBearings[i] - wallBearings[i-1]
			frac := (bearing - wallBearings[i-1]) / span
			return values[i-1] + frac*(values[i]-values[i-1])
		}
	}
	return values[4]
}

// OutfieldZoneFor classifies a ball position into the outfield zone whose
// fielder is nominally responsible for it, used to look up cutoff men.
func (f *FieldLayout) OutfieldZoneFor(pos FieldPosition) string {
	switch {
	case pos.X < -60:
		return PositionLeftField
	case pos.X > 60:
		return PositionRightField
	default:
		return PositionCenterField
	}
}

// CutoffFor returns the position name of the cutoff man for a throw from
// the given outfield zone to the given base.
func (f *FieldLayout) CutoffFor(zone, base string) (string, bool) {
	byBase, ok := f.cutoffs[zone]
	if !ok {
		return "", false
	}
	name, ok := byBase[base]
	return name, ok
}

// StandardDefensiveAlignment returns typical starting positions for all
// nine defenders, keyed by position name.
func StandardDefensiveAlignment() map[string]FieldPosition {
	return map[string]FieldPosition{
		PositionPitcher:     {X: 0, Y: 60.5},
		PositionCatcher:     {X: 0, Y: -5},
		PositionFirstBase:   {X: 65, Y: 80},
		PositionSecondBase:  {X: 35, Y: 130},
		PositionShortstop:   {X: -35, Y: 130},
		PositionThirdBase:   {X: -65, Y: 80},
		PositionLeftField:   {X: -140, Y: 240},
		PositionCenterField: {X: 0, Y: 305},
		PositionRightField:  {X: 140, Y: 240},
	}
}
