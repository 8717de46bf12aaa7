package yggdrasil

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats/scalar"
	"gonum.org/v1/gonum/mat"
)

const deg2rad = math.Pi / 180

// Deg2rad converts degrees to radians, and enforces only positive numbers.
func Deg2rad(a float64) float64 {
	if a < 0 {
		a += 360
	}
	return math.Mod(a*deg2rad, 2*math.Pi)
}

// Rad2deg converts radians to degrees, and enforces only positive numbers.
func Rad2deg(a float64) float64 {
	if a < 0 {
		a += 2 * math.Pi
	}
	return math.Mod(a/deg2rad, 360)
}

// Vector is an immutable three dimensional vector. Every operation returns
// a new value.
type Vector struct {
	X, Y, Z float64
}

// NewVector returns the vector of the given components.
func NewVector(x, y, z float64) Vector {
	return Vector{X: x, Y: y, Z: z}
}

// String implements the Stringer interface.
func (v Vector) String() string {
	return fmt.Sprintf("Vector(%v, %v, %v)", v.X, v.Y, v.Z)
}

// At returns the i-th component (0, 1 or 2).
func (v Vector) At(i int) (float64, error) {
	switch i {
	case 0:
		return v.X, nil
	case 1:
		return v.Y, nil
	case 2:
		return v.Z, nil
	default:
		return 0, domainf("vector index %d out of range", i)
	}
}

// Add returns the sum of both vectors.
func (v Vector) Add(o Vector) Vector {
	return Vector{v.X + o.X, v.Y + o.Y, v.Z + o.Z}
}

// Sub returns the difference of both vectors.
func (v Vector) Sub(o Vector) Vector {
	return Vector{v.X - o.X, v.Y - o.Y, v.Z - o.Z}
}

// Neg returns the opposite vector.
func (v Vector) Neg() Vector {
	return Vector{-v.X, -v.Y, -v.Z}
}

// Scale returns the vector scaled by k.
func (v Vector) Scale(k float64) Vector {
	return Vector{k * v.X, k * v.Y, k * v.Z}
}

// Div returns the vector divided by k.
func (v Vector) Div(k float64) (Vector, error) {
	if k == 0 {
		return Vector{}, domainf("division of %s by zero", v)
	}
	return v.Scale(1 / k), nil
}

// Dot performs the inner product.
func (v Vector) Dot(o Vector) float64 {
	return v.X*o.X + v.Y*o.Y + v.Z*o.Z
}

// Cross performs the cross product.
func (v Vector) Cross(o Vector) Vector {
	return Vector{v.Y*o.Z - v.Z*o.Y,
		v.Z*o.X - v.X*o.Z,
		v.X*o.Y - v.Y*o.X}
}

// Norm returns the Euclidean norm of the vector.
func (v Vector) Norm() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// Unit returns the unit vector. Normalizing the zero vector is a domain
// error, not a silent NaN.
func (v Vector) Unit() (Vector, error) {
	n := v.Norm()
	if n == 0 {
		return Vector{}, domainf("cannot normalize the zero vector")
	}
	return v.Scale(1 / n), nil
}

// Project returns the scalar projection of v onto o.
func (v Vector) Project(o Vector) (float64, error) {
	n := o.Norm()
	if n == 0 {
		return 0, domainf("cannot project %s onto the zero vector", v)
	}
	return v.Dot(o) / n, nil
}

// Equal returns whether both vectors are exactly equal.
func (v Vector) Equal(o Vector) bool {
	return v.X == o.X && v.Y == o.Y && v.Z == o.Z
}

// EqualWithin returns whether both vectors are equal component-wise within
// the given absolute tolerance.
func (v Vector) EqualWithin(o Vector, tol float64) bool {
	return scalar.EqualWithinAbs(v.X, o.X, tol) &&
		scalar.EqualWithinAbs(v.Y, o.Y, tol) &&
		scalar.EqualWithinAbs(v.Z, o.Z, tol)
}

// IsParallel returns whether both vectors are parallel within the given
// tolerance on the cross product magnitude.
func (v Vector) IsParallel(o Vector, tol float64) bool {
	return v.Cross(o).EqualWithin(Vector{}, tol)
}

// IsOrthogonal returns whether both vectors are orthogonal within the given
// tolerance on the dot product.
func (v Vector) IsOrthogonal(o Vector, tol float64) bool {
	return scalar.EqualWithinAbs(v.Dot(o), 0, tol)
}

// Skew is reserved for the skew-symmetric matrix of the vector.
func (v Vector) Skew() (Matrix, error) {
	return Matrix{}, &Error{Kind: ErrNotImplemented, Msg: "Vector.Skew"}
}

// Vec returns the vector as a gonum mat.VecDense.
func (v Vector) Vec() *mat.VecDense {
	return mat.NewVecDense(3, []float64{v.X, v.Y, v.Z})
}

// Matrix is an immutable 3x3 matrix addressed by row then column. No
// orthonormality is enforced on construction; that is an invariant of the
// rotation builders only.
type Matrix struct {
	XX, XY, XZ float64
	YX, YY, YZ float64
	ZX, ZY, ZZ float64
}

// MatrixFromRows returns the matrix whose rows are the given triplets.
func MatrixFromRows(rows [3][3]float64) Matrix {
	return Matrix{
		XX: rows[0][0], XY: rows[0][1], XZ: rows[0][2],
		YX: rows[1][0], YY: rows[1][1], YZ: rows[1][2],
		ZX: rows[2][0], ZY: rows[2][1], ZZ: rows[2][2],
	}
}

// MatrixFromDense returns the 3x3 matrix stored in a gonum matrix.
func MatrixFromDense(d mat.Matrix) (Matrix, error) {
	r, c := d.Dims()
	if r != 3 || c != 3 {
		return Matrix{}, mismatchf("expected a 3x3 matrix, got %dx%d", r, c)
	}
	return Matrix{
		XX: d.At(0, 0), XY: d.At(0, 1), XZ: d.At(0, 2),
		YX: d.At(1, 0), YY: d.At(1, 1), YZ: d.At(1, 2),
		ZX: d.At(2, 0), ZY: d.At(2, 1), ZZ: d.At(2, 2),
	}, nil
}

// Identity returns the 3x3 identity matrix.
func Identity() Matrix {
	return Matrix{XX: 1, YY: 1, ZZ: 1}
}

// String implements the Stringer interface.
func (m Matrix) String() string {
	return fmt.Sprintf("Matrix(\n[%v, %v, %v]\n[%v, %v, %v]\n[%v, %v, %v])",
		m.XX, m.XY, m.XZ, m.YX, m.YY, m.YZ, m.ZX, m.ZY, m.ZZ)
}

// At returns the element at row i, column j.
func (m Matrix) At(i, j int) (float64, error) {
	if i < 0 || i > 2 || j < 0 || j > 2 {
		return 0, domainf("matrix index (%d, %d) out of range", i, j)
	}
	rows := m.rows()
	return rows[i][j], nil
}

func (m Matrix) rows() [3][3]float64 {
	return [3][3]float64{
		{m.XX, m.XY, m.XZ},
		{m.YX, m.YY, m.YZ},
		{m.ZX, m.ZY, m.ZZ},
	}
}

// Add returns the sum of both matrices.
func (m Matrix) Add(o Matrix) Matrix {
	return Matrix{
		m.XX + o.XX, m.XY + o.XY, m.XZ + o.XZ,
		m.YX + o.YX, m.YY + o.YY, m.YZ + o.YZ,
		m.ZX + o.ZX, m.ZY + o.ZY, m.ZZ + o.ZZ,
	}
}

// Sub returns the difference of both matrices.
func (m Matrix) Sub(o Matrix) Matrix {
	return m.Add(o.Neg())
}

// Neg returns the opposite matrix.
func (m Matrix) Neg() Matrix {
	return m.Scale(-1)
}

// Scale returns the matrix scaled by k.
func (m Matrix) Scale(k float64) Matrix {
	return Matrix{
		k * m.XX, k * m.XY, k * m.XZ,
		k * m.YX, k * m.YY, k * m.YZ,
		k * m.ZX, k * m.ZY, k * m.ZZ,
	}
}

// Transpose returns the transposed matrix.
func (m Matrix) Transpose() Matrix {
	return Matrix{
		m.XX, m.YX, m.ZX,
		m.XY, m.YY, m.ZY,
		m.XZ, m.YZ, m.ZZ,
	}
}

// MulMat performs the matrix product m times o.
func (m Matrix) MulMat(o Matrix) Matrix {
	return Matrix{
		XX: m.XX*o.XX + m.XY*o.YX + m.XZ*o.ZX,
		XY: m.XX*o.XY + m.XY*o.YY + m.XZ*o.ZY,
		XZ: m.XX*o.XZ + m.XY*o.YZ + m.XZ*o.ZZ,
		YX: m.YX*o.XX + m.YY*o.YX + m.YZ*o.ZX,
		YY: m.YX*o.XY + m.YY*o.YY + m.YZ*o.ZY,
		YZ: m.YX*o.XZ + m.YY*o.YZ + m.YZ*o.ZZ,
		ZX: m.ZX*o.XX + m.ZY*o.YX + m.ZZ*o.ZX,
		ZY: m.ZX*o.XY + m.ZY*o.YY + m.ZZ*o.ZY,
		ZZ: m.ZX*o.XZ + m.ZY*o.YZ + m.ZZ*o.ZZ,
	}
}

// MulVec performs the matrix vector product m times v.
func (m Matrix) MulVec(v Vector) Vector {
	return Vector{
		X: m.XX*v.X + m.XY*v.Y + m.XZ*v.Z,
		Y: m.YX*v.X + m.YY*v.Y + m.YZ*v.Z,
		Z: m.ZX*v.X + m.ZY*v.Y + m.ZZ*v.Z,
	}
}

// Det returns the determinant via cofactor expansion of the first row.
func (m Matrix) Det() float64 {
	return m.XX*(m.YY*m.ZZ-m.YZ*m.ZY) -
		m.XY*(m.YX*m.ZZ-m.YZ*m.ZX) +
		m.XZ*(m.YX*m.ZY-m.YY*m.ZX)
}

// Pow returns the matrix raised to the n-th power by repeated
// multiplication. Negative exponents are a domain error.
func (m Matrix) Pow(n int) (Matrix, error) {
	if n < 0 {
		return Matrix{}, domainf("negative matrix exponent %d", n)
	}
	result := Identity()
	for i := 0; i < n; i++ {
		result = result.MulMat(m)
	}
	return result, nil
}

// Equal returns whether both matrices are exactly equal.
func (m Matrix) Equal(o Matrix) bool {
	return m == o
}

// EqualWithin returns whether both matrices are equal element-wise within
// the given absolute tolerance.
func (m Matrix) EqualWithin(o Matrix, tol float64) bool {
	a, b := m.rows(), o.rows()
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			if !scalar.EqualWithinAbs(a[i][j], b[i][j], tol) {
				return false
			}
		}
	}
	return true
}

// Dense returns the matrix as a gonum mat.Dense.
func (m Matrix) Dense() *mat.Dense {
	return mat.NewDense(3, 3, []float64{
		m.XX, m.XY, m.XZ,
		m.YX, m.YY, m.YZ,
		m.ZX, m.ZY, m.ZZ,
	})
}

// EqualValues compares two values of this package. Comparing values of
// different (or foreign) types is a type mismatch, never a silent false.
func EqualValues(a, b interface{}) (bool, error) {
	switch x := a.(type) {
	case Vector:
		y, ok := b.(Vector)
		if !ok {
			return false, mismatchf("cannot compare Vector with %T", b)
		}
		return x.Equal(y), nil
	case Matrix:
		y, ok := b.(Matrix)
		if !ok {
			return false, mismatchf("cannot compare Matrix with %T", b)
		}
		return x.Equal(y), nil
	case Position:
		y, ok := b.(Position)
		if !ok {
			return false, mismatchf("cannot compare Position with %T", b)
		}
		return x.Equal(y), nil
	case GeographicPosition:
		y, ok := b.(GeographicPosition)
		if !ok {
			return false, mismatchf("cannot compare GeographicPosition with %T", b)
		}
		return x.Equal(y), nil
	case EllipsoidModel:
		y, ok := b.(EllipsoidModel)
		if !ok {
			return false, mismatchf("cannot compare EllipsoidModel with %T", b)
		}
		return x.Equal(y), nil
	default:
		return false, mismatchf("unsupported type %T", a)
	}
}
