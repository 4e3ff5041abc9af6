package component

import "github.com/jakecoffman/cp"

// Kinematics holds velocity in m/s and acceleration in m/s^2. DirX and DirY
// record the sign of the last integrated velocity and gate edge bounces.
type Kinematics struct {
	Velocity    cp.Vector
	Accel       cp.Vector
	DirX        int
	DirY        int
	Gravity     float64
	Restitution float64
}

var KinematicsComponent = NewComponent[Kinematics]()
