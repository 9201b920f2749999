//go:build vec3_f32

package vec3

import "github.com/chewxy/math32"

// Scalar is the component type of Vec3.
//
// The vec3_f32 backend uses float32 throughout.
type Scalar = float32

func sqrt(v Scalar) Scalar { return math32.Sqrt(v) }

func isNaN(v Scalar) bool { return math32.IsNaN(v) }

const formatBits = 32
