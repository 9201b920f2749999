//go:build !vec3_f32

package vec3

import "math"

// Scalar is the component type of Vec3.
//
// Default backend is float64. See the package docs for build tags.
type Scalar = float64

func sqrt(v Scalar) Scalar { return math.Sqrt(v) }

func isNaN(v Scalar) bool { return math.IsNaN(v) }

// formatBits is the bit size passed to strconv.FormatFloat.
const formatBits = 64
