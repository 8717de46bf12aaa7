package yggdrasil

import (
	"errors"
	"strings"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"
)

func TestWGS84(t *testing.T) {
	model := WGS84()
	if model.Name != "WGS84" {
		t.Fatal("incorrect name")
	}
	if model.A() != 6378137.0 {
		t.Fatal("incorrect semi-major axis")
	}
	if model.F() != 1/298.257223563 {
		t.Fatal("incorrect flattening")
	}
	if model.J2 != 1.08263e-3 {
		t.Fatal("incorrect J2")
	}
	if !scalar.EqualWithinAbs(model.B(), 6356752.314245179, 1e-6) {
		t.Fatalf("incorrect semi-minor axis: %v", model.B())
	}
	if !scalar.EqualWithinAbs(model.Eccentricity(), 0.0818191908426215, 1e-12) {
		t.Fatalf("incorrect eccentricity: %v", model.Eccentricity())
	}
	if !scalar.EqualWithinAbs(model.MeanRadius(), (2*6378137.0+model.B())/3, 1e-9) {
		t.Fatalf("incorrect mean radius: %v", model.MeanRadius())
	}
}

func TestSphericalEarth(t *testing.T) {
	model := SphericalEarth()
	if model.A() != 6371127.0 || model.F() != 0 || model.J2 != 0 {
		t.Fatal("incorrect spherical Earth parameters")
	}
	if model.B() != model.A() {
		t.Fatal("a sphere has equal axes")
	}
	if model.Eccentricity() != 0 {
		t.Fatal("a sphere has zero eccentricity")
	}
	if model.MeanRadius() != model.A() {
		t.Fatal("the mean radius of a sphere is its radius")
	}
}

func TestEllipsoidValidation(t *testing.T) {
	if _, err := NewEllipsoidModel("bogus", -1, 0, 0); !errors.Is(err, ErrInvalidParameter) {
		t.Fatal("negative semi-major axis must be rejected")
	}
	if _, err := NewEllipsoidModel("bogus", 0, 0, 0); !errors.Is(err, ErrInvalidParameter) {
		t.Fatal("zero semi-major axis must be rejected")
	}
	if _, err := NewEllipsoidModel("bogus", 6378137.0, 1.0, 0); !errors.Is(err, ErrInvalidParameter) {
		t.Fatal("flattening of 1 must be rejected")
	}
	if _, err := NewEllipsoidModel("bogus", 6378137.0, -0.1, 0); !errors.Is(err, ErrInvalidParameter) {
		t.Fatal("negative flattening must be rejected")
	}
	model, err := NewEllipsoidModel("custom", 6378137.0, 1/298.257223563, 1.08263e-3)
	if err != nil {
		t.Fatal(err)
	}
	if !model.Equal(WGS84().withName("custom")) {
		t.Fatal("validated construction must carry the given values")
	}
}

// withName is a test helper to rename a preset for comparison.
func (e EllipsoidModel) withName(name string) EllipsoidModel {
	e.Name = name
	return e
}

func TestEllipsoidLookup(t *testing.T) {
	model, err := EllipsoidFromName("WGS84")
	if err != nil {
		t.Fatal(err)
	}
	if !model.Equal(WGS84()) {
		t.Fatal("lookup of WGS84 incorrect")
	}
	model, err = EllipsoidFromName("Spherical Earth")
	if err != nil {
		t.Fatal(err)
	}
	if !model.Equal(SphericalEarth()) {
		t.Fatal("lookup of Spherical Earth incorrect")
	}
	_, err = EllipsoidFromName("InvalidModel")
	if !errors.Is(err, ErrLookup) {
		t.Fatal("unknown models must be a lookup failure, not a default")
	}
	if !strings.Contains(err.Error(), "WGS84") || !strings.Contains(err.Error(), "Spherical Earth") {
		t.Fatalf("lookup failure must name the available models: %s", err)
	}
}

func TestEllipsoidLookupReturnsFreshValue(t *testing.T) {
	first, err := EllipsoidFromName("WGS84")
	if err != nil {
		t.Fatal(err)
	}
	first.SemiMajorAxis = 1 // local copy only
	second, err := EllipsoidFromName("WGS84")
	if err != nil {
		t.Fatal(err)
	}
	if !second.Equal(WGS84()) {
		t.Fatal("presets must not be aliasable singletons")
	}
}

func TestEllipsoidEquality(t *testing.T) {
	if !WGS84().Equal(WGS84()) {
		t.Fatal("WGS84 must equal itself")
	}
	if WGS84().Equal(SphericalEarth()) {
		t.Fatal("different models must not be equal")
	}
	eq, err := EqualValues(WGS84(), WGS84())
	if err != nil || !eq {
		t.Fatal("EqualValues on ellipsoids failed")
	}
	if _, err := EqualValues(WGS84(), 12.0); !errors.Is(err, ErrTypeMismatch) {
		t.Fatal("comparing an ellipsoid with a float must be a type mismatch")
	}
}
