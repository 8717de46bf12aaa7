package yggdrasil

import (
	"math"
	"strings"
)

// Fundamental passive rotations, aerospace DCM convention: they rotate the
// reference frame, not the vector. Composed frame DCMs below depend on this
// exact convention.

// RotX returns the DCM of a frame rotation of x radians about the 1st axis.
func RotX(x float64) Matrix {
	s, c := math.Sincos(x)
	return Matrix{
		1, 0, 0,
		0, c, s,
		0, -s, c,
	}
}

// RotY returns the DCM of a frame rotation of x radians about the 2nd axis.
func RotY(x float64) Matrix {
	s, c := math.Sincos(x)
	return Matrix{
		c, 0, -s,
		0, 1, 0,
		s, 0, c,
	}
}

// RotZ returns the DCM of a frame rotation of x radians about the 3rd axis.
func RotZ(x float64) Matrix {
	s, c := math.Sincos(x)
	return Matrix{
		c, s, 0,
		-s, c, 0,
		0, 0, 1,
	}
}

// DCMECI2ECEF returns the DCM from the Earth-centered inertial frame to the
// Earth-centered Earth-fixed frame, dt seconds after the epoch at which
// both frames coincided. A negative dt is a domain error.
func DCMECI2ECEF(dt, rotationRate float64) (Matrix, error) {
	if dt < 0 {
		return Matrix{}, domainf("negative elapsed time %v s since the ECI epoch", dt)
	}
	return RotZ(rotationRate * dt), nil
}

// DCMECEF2NED returns the DCM from the ECEF frame to the North-East-Down
// local tangent frame at the given geodetic latitude and longitude, both in
// radians.
func DCMECEF2NED(latitude, longitude float64) Matrix {
	return RotY(-math.Pi / 2).MulMat(RotY(-latitude).MulMat(RotZ(longitude)))
}

// DCMECEF2ENU returns the DCM from the ECEF frame to the East-North-Up
// local tangent frame at the given geodetic latitude and longitude, both in
// radians.
func DCMECEF2ENU(latitude, longitude float64) Matrix {
	return RotX(math.Pi / 2).MulMat(RotZ(math.Pi / 2).MulMat(RotY(-latitude).MulMat(RotZ(longitude))))
}

// Angle2DCM converts Euler angles in radians into the associated DCM. Only
// the ZYX aerospace sequence (yaw, pitch, roll) is supported; any other
// sequence is an error, never a silent default.
func Angle2DCM(yaw, pitch, roll float64, sequence string) (Matrix, error) {
	if strings.ToUpper(sequence) != "ZYX" {
		return Matrix{}, &Error{Kind: ErrUnsupportedSequence, Msg: sequence}
	}
	return RotX(roll).MulMat(RotY(pitch).MulMat(RotZ(yaw))), nil
}

// DCM2Angle converts a DCM into the Euler angles of the given sequence.
// Only ZYX is supported. Yaw and roll are in (-pi, pi], pitch in
// [-pi/2, pi/2]; at pitch = +/- pi/2 the decomposition is degenerate
// (gimbal lock) and yaw/roll follow atan2 continuity.
func DCM2Angle(dcm Matrix, sequence string) (yaw, pitch, roll float64, err error) {
	if strings.ToUpper(sequence) != "ZYX" {
		return 0, 0, 0, &Error{Kind: ErrUnsupportedSequence, Msg: sequence}
	}
	yaw = math.Atan2(dcm.XY, dcm.XX)
	pitch = -math.Asin(dcm.XZ)
	roll = math.Atan2(dcm.YZ, dcm.ZZ)
	return yaw, pitch, roll, nil
}
