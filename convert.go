package vec3

// Tuple is a vector as an ordered triple (x, y, z).
type Tuple [3]Scalar

// Record is a vector as a labeled triple.
type Record struct {
	X Scalar `json:"x"`
	Y Scalar `json:"y"`
	Z Scalar `json:"z"`
}

func (v Vec3) Tuple() Tuple   { return Tuple{v.X, v.Y, v.Z} }
func (v Vec3) Record() Record { return Record{X: v.X, Y: v.Y, Z: v.Z} }

func ToTuple(v Vec3) Tuple { return v.Tuple() }

func FromTuple(t Tuple) Vec3 { return Vec3{X: t[0], Y: t[1], Z: t[2]} }

func ToRecord(v Vec3) Record { return v.Record() }

func FromRecord(r Record) Vec3 { return Vec3{X: r.X, Y: r.Y, Z: r.Z} }
