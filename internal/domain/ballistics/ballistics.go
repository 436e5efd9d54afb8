// Package ballistics solves launch velocities for unpowered projectiles
// under constant gravity and a fixed launch angle.
package ballistics

import (
	"math"

	"github.com/younwookim/motionkit/internal/domain/entity"
)

// minCos rejects launch angles too close to vertical to land anywhere
const minCos = 1e-9

// Request describes one shot. Gravity is a positive magnitude pulling
// towards -y; Angle is in radians above the horizontal.
type Request struct {
	Origin  entity.Vec2
	Target  entity.Vec2
	Angle   float64
	Gravity float64
}

// Degrees converts degrees to radians
func Degrees(deg float64) float64 {
	return deg * math.Pi / 180
}

// Solve returns the launch velocity that lands a projectile from Origin on
// Target. ok is false when the target is unreachable at this angle and
// gravity (too high, behind the apex, or degenerate input); the caller should
// skip the shot.
//
//	v² = g·d² / (2·cos²θ·(d·tanθ − Δh))
//
// where d is the horizontal distance and Δh the height difference.
func Solve(r Request) (vel entity.Vec2, ok bool) {
	if !(r.Gravity > 0) || math.IsInf(r.Gravity, 0) {
		return entity.Vec2{}, false
	}

	dx := r.Target.X - r.Origin.X
	dh := r.Target.Y - r.Origin.Y
	distance := math.Abs(dx)

	cos := math.Cos(r.Angle)
	if math.Abs(cos) < minCos {
		return entity.Vec2{}, false
	}

	denom := 2 * cos * cos * (distance*math.Tan(r.Angle) - dh)
	if !(denom > 0) {
		return entity.Vec2{}, false
	}

	v2 := r.Gravity * distance * distance / denom
	if !(v2 > 0) || math.IsInf(v2, 0) {
		return entity.Vec2{}, false
	}

	v := math.Sqrt(v2)
	dir := 1.0
	if dx < 0 {
		dir = -1.0
	}
	return entity.Vec2{
		X: v * cos * dir,
		Y: v * math.Sin(r.Angle),
	}, true
}

// FlightTime returns how long a projectile launched with vel takes to come
// back down to the target height. ok is false if it never reaches it.
func (r Request) FlightTime(vel entity.Vec2) (t float64, ok bool) {
	if !(r.Gravity > 0) {
		return 0, false
	}
	dh := r.Target.Y - r.Origin.Y
	disc := vel.Y*vel.Y - 2*r.Gravity*dh
	if disc < 0 {
		return 0, false
	}
	return (vel.Y + math.Sqrt(disc)) / r.Gravity, true
}

// PositionAt returns the unpowered position at time t after launch
func (r Request) PositionAt(vel entity.Vec2, t float64) entity.Vec2 {
	return entity.Vec2{
		X: r.Origin.X + vel.X*t,
		Y: r.Origin.Y + vel.Y*t - 0.5*r.Gravity*t*t,
	}
}
