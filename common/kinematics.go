package common

// FinalVelocity returns v = u + a*t.
func FinalVelocity(u, a, t float64) float64 {
	return u + a*t
}

// Displacement returns s = u*t + 0.5*a*t^2 in metres.
func Displacement(u, a, t float64) float64 {
	return u*t + 0.5*a*t*t
}

func MetersToPixels(m float64) float64 {
	return m * PixelsPerMeter
}

func PixelsToMeters(px float64) float64 {
	return px / PixelsPerMeter
}

// Direction maps a velocity to a travel flag. Zero counts as negative.
func Direction(v float64) int {
	if v > 0 {
		return 1
	}
	return -1
}

// Reflect flips v and scales it by the restitution coefficient.
func Reflect(v, restitution float64) float64 {
	return -1.0 * (restitution * v)
}

// ReleaseVelocity converts a drag displacement in pixels over elapsed seconds
// into metres per second. A drag that took no time throws nothing.
func ReleaseVelocity(dPixels, elapsed float64) float64 {
	if elapsed <= 0 {
		return 0
	}
	return dPixels / (elapsed * PixelsPerMeter)
}

// CircleContains reports whether (px, py) lies inside or on the circle
// centred at (cx, cy) with radius r.
func CircleContains(cx, cy, r, px, py float64) bool {
	dx := px - cx
	dy := py - cy
	return dx*dx+dy*dy <= r*r
}
