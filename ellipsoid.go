package yggdrasil

import (
	"fmt"
	"math"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Constants of the Earth environment, SI units throughout.
const (
	// EarthMu is the gravitational parameter of the Earth in m^3/s^2.
	EarthMu = 3.986004418e14
	// EarthRotationRate is the Earth rotation rate in rad/s.
	EarthRotationRate = 7.292115e-5
)

// EllipsoidModel defines a reference ellipsoid of the Earth. Construct via
// NewEllipsoidModel or EllipsoidFromName; immutable afterwards and compared
// by value.
type EllipsoidModel struct {
	Name          string
	SemiMajorAxis float64 // meters
	Flattening    float64 // dimensionless
	J2            float64 // dimensionless
}

// NewEllipsoidModel returns a validated ellipsoid model. The semi-major
// axis must be strictly positive and the flattening within [0, 1).
func NewEllipsoidModel(name string, semiMajorAxis, flattening, j2 float64) (EllipsoidModel, error) {
	if semiMajorAxis <= 0 {
		return EllipsoidModel{}, invalidf("semi-major axis must be positive, got %v", semiMajorAxis)
	}
	if flattening < 0 || flattening >= 1 {
		return EllipsoidModel{}, invalidf("flattening must be within [0, 1), got %v", flattening)
	}
	return EllipsoidModel{Name: name, SemiMajorAxis: semiMajorAxis, Flattening: flattening, J2: j2}, nil
}

// A returns the semi-major axis in meters.
func (e EllipsoidModel) A() float64 {
	return e.SemiMajorAxis
}

// F returns the flattening of the ellipsoid.
func (e EllipsoidModel) F() float64 {
	return e.Flattening
}

// B returns the semi-minor axis in meters.
func (e EllipsoidModel) B() float64 {
	return (1 - e.Flattening) * e.SemiMajorAxis
}

// Eccentricity returns the first eccentricity of the ellipsoid.
func (e EllipsoidModel) Eccentricity() float64 {
	a, b := e.A(), e.B()
	return math.Sqrt(a*a-b*b) / a
}

// MeanRadius returns the mean radius of the ellipsoid in meters.
func (e EllipsoidModel) MeanRadius() float64 {
	return (2*e.A() + e.B()) / 3
}

// Equal returns whether the provided ellipsoid model is the same.
func (e EllipsoidModel) Equal(o EllipsoidModel) bool {
	return e.Name == o.Name && e.SemiMajorAxis == o.SemiMajorAxis &&
		e.Flattening == o.Flattening && e.J2 == o.J2
}

// String implements the Stringer interface.
func (e EllipsoidModel) String() string {
	return fmt.Sprintf("%s ellipsoid (a=%v m, f=%v)", e.Name, e.SemiMajorAxis, e.Flattening)
}

/* Definitions */

// WGS84 returns the World Geodetic System 1984 reference ellipsoid.
func WGS84() EllipsoidModel {
	return EllipsoidModel{
		Name:          "WGS84",
		SemiMajorAxis: 6378137.0,
		Flattening:    1 / 298.257223563,
		J2:            1.08263e-3,
	}
}

// SphericalEarth returns a spherical Earth of mean radius, useful for
// quick analytical checks.
func SphericalEarth() EllipsoidModel {
	return EllipsoidModel{
		Name:          "Spherical Earth",
		SemiMajorAxis: 6371127.0,
		Flattening:    0,
		J2:            0,
	}
}

var availableEllipsoids = map[string]func() EllipsoidModel{
	"WGS84":           WGS84,
	"Spherical Earth": SphericalEarth,
}

// EllipsoidFromName returns the preset ellipsoid of that name. A fresh
// value is returned on each call so no caller can alias a shared default.
func EllipsoidFromName(name string) (EllipsoidModel, error) {
	preset, found := availableEllipsoids[name]
	if !found {
		keys := maps.Keys(availableEllipsoids)
		slices.Sort(keys)
		return EllipsoidModel{}, lookupf("'%s' is not a valid ellipsoid model name, available names: %v", name, keys)
	}
	return preset(), nil
}
