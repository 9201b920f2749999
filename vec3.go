package vec3

import (
	"strconv"
	"strings"
)

// Vec3 is a 3D vector or point.
type Vec3 struct {
	X, Y, Z Scalar
}

// Unit vectors along each axis, and the origin. Treat these as constants.
var (
	Zero = Vec3{}
	I    = Vec3{X: 1}
	J    = Vec3{Y: 1}
	K    = Vec3{Z: 1}
)

// New returns the vector (x, y, z).
func New(x, y, z Scalar) Vec3 { return Vec3{X: x, Y: y, Z: z} }

func (v Vec3) Add(o Vec3) Vec3   { return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }
func (v Vec3) Sub(o Vec3) Vec3   { return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }
func (v Vec3) Mul(s Scalar) Vec3 { return Vec3{v.X * s, v.Y * s, v.Z * s} }
func (v Vec3) Neg() Vec3         { return Vec3{-v.X, -v.Y, -v.Z} }

// WithX returns a copy of v with X replaced.
func (v Vec3) WithX(x Scalar) Vec3 {
	v.X = x
	return v
}

// WithY returns a copy of v with Y replaced.
func (v Vec3) WithY(y Scalar) Vec3 {
	v.Y = y
	return v
}

// WithZ returns a copy of v with Z replaced.
func (v Vec3) WithZ(z Scalar) Vec3 {
	v.Z = z
	return v
}

func GetX(v Vec3) Scalar { return v.X }
func GetY(v Vec3) Scalar { return v.Y }
func GetZ(v Vec3) Scalar { return v.Z }

func SetX(x Scalar, v Vec3) Vec3 { return v.WithX(x) }
func SetY(y Scalar, v Vec3) Vec3 { return v.WithY(y) }
func SetZ(z Scalar, v Vec3) Vec3 { return v.WithZ(z) }

func Add(a, b Vec3) Vec3 { return a.Add(b) }

// Sub returns a - b.
func Sub(a, b Vec3) Vec3 { return a.Sub(b) }

func Negate(v Vec3) Vec3 { return v.Neg() }

// Scale multiplies every component of v by s.
func Scale(s Scalar, v Vec3) Vec3 { return v.Mul(s) }

func Dot(a, b Vec3) Scalar { return a.X*b.X + a.Y*b.Y + a.Z*b.Z }

func Cross(a, b Vec3) Vec3 {
	return Vec3{
		X: a.Y*b.Z - a.Z*b.Y,
		Y: a.Z*b.X - a.X*b.Z,
		Z: a.X*b.Y - a.Y*b.X,
	}
}

func LengthSquared(v Vec3) Scalar { return Dot(v, v) }

// Length returns the Euclidean norm of v.
func Length(v Vec3) Scalar { return sqrt(LengthSquared(v)) }

// Normalize scales v to unit length.
//
// The zero vector has no direction: the result is NaN in every component.
func Normalize(v Vec3) Vec3 {
	return v.Mul(1 / Length(v))
}

// Distance returns the Euclidean distance between points a and b.
func Distance(a, b Vec3) Scalar { return Length(a.Sub(b)) }

func DistanceSquared(a, b Vec3) Scalar { return LengthSquared(a.Sub(b)) }

// Direction returns the unit vector pointing from b toward a.
// Like Normalize, it is NaN in every component when a == b.
func Direction(a, b Vec3) Vec3 { return Normalize(a.Sub(b)) }

// IsNaN reports whether any component of v is NaN.
func IsNaN(v Vec3) bool { return isNaN(v.X) || isNaN(v.Y) || isNaN(v.Z) }

// ApproxEqual reports whether a and b differ by at most eps in every
// component. NaN components never compare equal.
func ApproxEqual(a, b Vec3, eps Scalar) bool {
	return near(a.X, b.X, eps) && near(a.Y, b.Y, eps) && near(a.Z, b.Z, eps)
}

func near(a, b, eps Scalar) bool {
	if a == b {
		return true
	}
	d := a - b
	if d < 0 {
		d = -d
	}
	return d <= eps
}

// String formats v as "(x, y, z)".
func (v Vec3) String() string {
	var b strings.Builder
	b.WriteByte('(')
	b.WriteString(strconv.FormatFloat(float64(v.X), 'g', -1, formatBits))
	b.WriteString(", ")
	b.WriteString(strconv.FormatFloat(float64(v.Y), 'g', -1, formatBits))
	b.WriteString(", ")
	b.WriteString(strconv.FormatFloat(float64(v.Z), 'g', -1, formatBits))
	b.WriteByte(')')
	return b.String()
}
