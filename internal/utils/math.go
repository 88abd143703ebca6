// internal/utils/math.go
package utils

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Collide reports whether two axis-aligned boxes overlap. Boxes are given by
// their centre and full width/height; touching edges do not count.
func Collide(ax, ay, aw, ah, bx, by, bw, bh float64) bool {
	return ax-aw/2 < bx+bw/2 &&
		ax+aw/2 > bx-bw/2 &&
		ay-ah/2 < by+bh/2 &&
		ay+ah/2 > by-bh/2
}
