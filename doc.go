// Package vec3 provides a small 3D vector value type for geometry and
// graphics code.
//
// A Vec3 is three scalars. Every operation takes vectors by value and returns
// a new value; nothing in the package mutates its inputs or keeps state, so
// vectors can be shared freely between goroutines.
//
// Floating-point edge cases are not errors. NaN and ±Inf propagate through
// every operation as IEEE-754 dictates. In particular, normalizing the zero
// vector yields NaN in every component (1/0 is +Inf and 0*Inf is NaN). Use
// IsNaN to check.
//
// Numeric backend:
//
// By default Scalar is float64. Building with the tag `vec3_f32` switches it
// to float32, with square roots computed in single precision.
package vec3
