package geom

import "math"

// Key is the packed bit pattern of a point's coordinates. It exists purely so
// points can be used in sets and maps with exact identity: two points that are
// numerically close but not bit identical get different keys. Arithmetic
// always happens on Point; Key is never computed with.
type Key [2]uint64

func KeyOf(p Point) Key {
	return Key{math.Float64bits(p.X), math.Float64bits(p.Y)}
}

func (p Point) Key() Key {
	return KeyOf(p)
}

// Decode the key back into the exact point it was made from.
func (k Key) Point() Point {
	return Point{X: math.Float64frombits(k[0]), Y: math.Float64frombits(k[1])}
}
