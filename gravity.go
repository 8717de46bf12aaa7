package yggdrasil

// Gravity returns the J2-perturbed gravitational acceleration at the given
// ECEF position, expressed in the ECEF frame in m/s^2. Evaluating at the
// center of the Earth is a domain error.
func Gravity(position Position, ellipsoid EllipsoidModel) (Vector, error) {
	r := position.Norm()
	if r == 0 {
		return Vector{}, domainf("cannot evaluate gravity at zero distance from the center of the Earth")
	}

	a := ellipsoid.A()
	j2 := ellipsoid.J2

	commonFactor := -EarthMu / (r * r)
	j2Factor := 1.5 * j2 * (a / r) * (a / r)
	zFactor := (position.Z / r) * (position.Z / r)

	return Vector{
		X: commonFactor * (1 + j2Factor*(1-5*zFactor)) * position.X / r,
		Y: commonFactor * (1 + j2Factor*(1-5*zFactor)) * position.Y / r,
		Z: commonFactor * (1 + j2Factor*(3-5*zFactor)) * position.Z / r,
	}, nil
}
