package yggdrasil

import "math"

// bowringMaxIter bounds the fixed-point solve of ECEF2LLA. Convergence
// takes two or three iterations in practice; reaching the cap returns the
// best estimate instead of spinning.
const bowringMaxIter = 1000

// LLA2ECEF converts a geodetic position into ECEF Cartesian coordinates,
// using the reference ellipsoid the position is tied to.
func LLA2ECEF(geo GeographicPosition) Position {
	a := geo.Model.A()
	e := geo.Model.Eccentricity()
	e2 := e * e

	sinLat, cosLat := math.Sincos(geo.Latitude)
	sinLon, cosLon := math.Sincos(geo.Longitude)

	// Radius of curvature in the prime vertical.
	n := a / math.Sqrt(1-e2*sinLat*sinLat)

	return Position{
		X: (n + geo.Altitude) * cosLat * cosLon,
		Y: (n + geo.Altitude) * cosLat * sinLon,
		Z: (n*(1-e2) + geo.Altitude) * sinLat,
	}
}

// ECEF2LLA converts an ECEF Cartesian position into geodetic coordinates
// on the provided reference ellipsoid, via Bowring's fixed-point method.
//
// Bowring, B.R. (1976). "Transformation from spatial to geographical
// coordinates". Survey Review 23 (181): 323-327.
func ECEF2LLA(pos Position, ellipsoid EllipsoidModel) GeographicPosition {
	a := ellipsoid.A()
	b := ellipsoid.B()
	f := ellipsoid.F()
	e := ellipsoid.Eccentricity()
	e2 := e * e          // first eccentricity squared
	ep2 := e2 / (1 - e2) // second eccentricity squared
	d := math.Hypot(pos.X, pos.Y)

	longitude := math.Atan2(pos.Y, pos.X)

	// Initial parametric (beta) and geodetic (phi) latitudes.
	beta := math.Atan2(pos.Z, (1-f)*d)
	phi := bowringLatitude(pos.Z, d, a, b, e2, ep2, beta)

	betaNew := math.Atan2((1-f)*math.Sin(phi), math.Cos(phi))
	for iter := 0; beta != betaNew && iter < bowringMaxIter; iter++ {
		beta = betaNew
		phi = bowringLatitude(pos.Z, d, a, b, e2, ep2, beta)
		betaNew = math.Atan2((1-f)*math.Sin(phi), math.Cos(phi))
	}

	// Ellipsoidal height from the final latitude.
	sinPhi := math.Sin(phi)
	n := a / math.Sqrt(1-e2*sinPhi*sinPhi)
	altitude := d*math.Cos(phi) + (pos.Z+e2*n*sinPhi)*sinPhi - n

	return GeographicPosition{
		Latitude:  phi,
		Longitude: longitude,
		Altitude:  altitude,
		Model:     ellipsoid,
	}
}

// bowringLatitude evaluates Bowring's formula for the geodetic latitude
// from the parametric latitude beta.
func bowringLatitude(z, d, a, b, e2, ep2, beta float64) float64 {
	sinBeta, cosBeta := math.Sincos(beta)
	return math.Atan2(z+b*ep2*sinBeta*sinBeta*sinBeta,
		d-a*e2*cosBeta*cosBeta*cosBeta)
}
