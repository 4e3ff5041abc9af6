package common

const (
	BaseWidth  = 800
	BaseHeight = 500

	// PixelsPerMeter converts metres to screen pixels at 96 DPI.
	PixelsPerMeter = 37.795275590551

	Gravity     = 9.8
	Restitution = 0.6
	BallRadius  = 25.0
)
