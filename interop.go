package vec3

import (
	"github.com/twpayne/go-geom"
	"gonum.org/v1/gonum/spatial/r3"
)

// ToR3 converts v to a gonum r3.Vec.
func ToR3(v Vec3) r3.Vec {
	return r3.Vec{X: float64(v.X), Y: float64(v.Y), Z: float64(v.Z)}
}

func FromR3(r r3.Vec) Vec3 {
	return Vec3{X: Scalar(r.X), Y: Scalar(r.Y), Z: Scalar(r.Z)}
}

// ToCoord converts v to a go-geom coordinate in XYZ layout.
func ToCoord(v Vec3) geom.Coord {
	return geom.Coord{float64(v.X), float64(v.Y), float64(v.Z)}
}

// FromCoord reads the first three ordinates of c. Missing ordinates are
// zero; anything past Z (such as M in an XYZM coordinate) is ignored.
func FromCoord(c geom.Coord) Vec3 {
	var v Vec3
	if len(c) > 0 {
		v.X = Scalar(c[0])
	}
	if len(c) > 1 {
		v.Y = Scalar(c[1])
	}
	if len(c) > 2 {
		v.Z = Scalar(c[2])
	}
	return v
}
