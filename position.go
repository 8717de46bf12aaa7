package yggdrasil

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats/scalar"
)

// Position is an immutable ECEF Cartesian position in meters.
type Position struct {
	X, Y, Z float64
}

// NewPosition returns the ECEF position of the given coordinates.
func NewPosition(x, y, z float64) Position {
	return Position{X: x, Y: y, Z: z}
}

// Norm returns the distance from the center of the Earth in meters.
func (p Position) Norm() float64 {
	return math.Sqrt(p.X*p.X + p.Y*p.Y + p.Z*p.Z)
}

// Vector returns the position as a plain vector.
func (p Position) Vector() Vector {
	return Vector{X: p.X, Y: p.Y, Z: p.Z}
}

// Equal returns whether both positions are exactly equal.
func (p Position) Equal(o Position) bool {
	return p.X == o.X && p.Y == o.Y && p.Z == o.Z
}

// String implements the Stringer interface.
func (p Position) String() string {
	return fmt.Sprintf("Position(x=%v, y=%v, z=%v)", p.X, p.Y, p.Z)
}

// GeographicPosition is an immutable geodetic position. Latitude and
// longitude are in radians, altitude in meters above the reference
// ellipsoid the position is tied to.
type GeographicPosition struct {
	Latitude  float64
	Longitude float64
	Altitude  float64
	Model     EllipsoidModel
}

// NewGeographicPosition returns the geographic position of the given
// coordinates on the provided reference ellipsoid.
func NewGeographicPosition(latitude, longitude, altitude float64, model EllipsoidModel) GeographicPosition {
	return GeographicPosition{
		Latitude:  latitude,
		Longitude: longitude,
		Altitude:  altitude,
		Model:     model,
	}
}

// Equal returns whether both geographic positions are exactly equal,
// reference ellipsoid included.
func (g GeographicPosition) Equal(o GeographicPosition) bool {
	return g.Latitude == o.Latitude && g.Longitude == o.Longitude &&
		g.Altitude == o.Altitude && g.Model.Equal(o.Model)
}

// EqualWithin returns whether both geographic positions are equal within
// the given relative tolerance on latitude, longitude and altitude. The
// reference ellipsoids must still compare exactly equal.
func (g GeographicPosition) EqualWithin(o GeographicPosition, relTol float64) bool {
	return scalar.EqualWithinRel(g.Latitude, o.Latitude, relTol) &&
		scalar.EqualWithinRel(g.Longitude, o.Longitude, relTol) &&
		scalar.EqualWithinRel(g.Altitude, o.Altitude, relTol) &&
		g.Model.Equal(o.Model)
}

// String implements the Stringer interface.
func (g GeographicPosition) String() string {
	return fmt.Sprintf("GeographicPosition(latitude=%v, longitude=%v, altitude=%v, %s)",
		g.Latitude, g.Longitude, g.Altitude, g.Model.Name)
}
