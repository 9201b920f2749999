package vec3

import (
	"math"
	"testing"

	"github.com/twpayne/go-geom"
	"github.com/twpayne/go-geom/xyz"
	"gonum.org/v1/gonum/spatial/r3"
)

func closeTo(a, b float64) bool {
	return math.Abs(a-b) <= eps*(1+math.Abs(b))
}

func TestR3RoundTrip(t *testing.T) {
	for _, v := range samples {
		if got := FromR3(ToR3(v)); got != v {
			t.Fatalf("r3 round trip %v -> %v", v, got)
		}
	}
	if got := ToR3(New(1, 2, 3)); got != (r3.Vec{X: 1, Y: 2, Z: 3}) {
		t.Fatalf("r3=%v", got)
	}
}

func TestAgainstR3(t *testing.T) {
	for _, a := range samples {
		ra := ToR3(a)
		if !closeTo(float64(Length(a)), r3.Norm(ra)) {
			t.Fatalf("length(%v)=%v r3=%v", a, Length(a), r3.Norm(ra))
		}
		for _, b := range samples {
			rb := ToR3(b)
			if !closeTo(float64(Dot(a, b)), r3.Dot(ra, rb)) {
				t.Fatalf("dot(%v,%v)=%v r3=%v", a, b, Dot(a, b), r3.Dot(ra, rb))
			}
			c, rc := ToR3(Cross(a, b)), r3.Cross(ra, rb)
			if !closeTo(c.X, rc.X) || !closeTo(c.Y, rc.Y) || !closeTo(c.Z, rc.Z) {
				t.Fatalf("cross(%v,%v)=%v r3=%v", a, b, c, rc)
			}
			if !closeTo(float64(Distance(a, b)), r3.Norm(r3.Sub(ra, rb))) {
				t.Fatalf("distance(%v,%v)=%v", a, b, Distance(a, b))
			}
		}
	}
}

func TestCoordRoundTrip(t *testing.T) {
	for _, v := range samples {
		c := ToCoord(v)
		if len(c) != 3 {
			t.Fatalf("coord len=%d", len(c))
		}
		if got := FromCoord(c); got != v {
			t.Fatalf("coord round trip %v -> %v", v, got)
		}
	}
}

func TestFromCoordShortAndLong(t *testing.T) {
	if got := FromCoord(nil); got != Zero {
		t.Fatalf("nil coord=%v", got)
	}
	if got := FromCoord(geom.Coord{1, 2}); got != New(1, 2, 0) {
		t.Fatalf("xy coord=%v", got)
	}
	if got := FromCoord(geom.Coord{1, 2, 3, 4}); got != New(1, 2, 3) {
		t.Fatalf("xyzm coord=%v", got)
	}
}

func TestAgainstXYZ(t *testing.T) {
	v := New(0.9807055460429551, 0.8643056316322373, 0.08720913878428183)
	if !closeTo(float64(Length(v)), xyz.VectorLength(ToCoord(v))) {
		t.Fatalf("length=%v xyz=%v", Length(v), xyz.VectorLength(ToCoord(v)))
	}
	want := FromCoord(xyz.VectorNormalize(ToCoord(v)))
	if got := Normalize(v); !ApproxEqual(got, want, eps) {
		t.Fatalf("normalize=%v xyz=%v", got, want)
	}
}
