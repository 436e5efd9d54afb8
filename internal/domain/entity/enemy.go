package entity

import "github.com/tanema/gween"

// AIType defines the type of AI behavior
type AIType int

const (
	AIPatrol AIType = iota
	AIMortar
)

// String returns the config name of the AI type
func (t AIType) String() string {
	switch t {
	case AIPatrol:
		return "patrol"
	case AIMortar:
		return "mortar"
	default:
		return "unknown"
	}
}

// Patrol is a melee enemy walking back and forth between two points
type Patrol struct {
	A, B          Vec2
	Speed         float64 // metres per second
	ContactDamage float64
	FacingRight   bool

	// Current leg. Leg tweens the distance travelled from LegFrom to LegTo.
	TowardB bool
	LegFrom Vec2
	LegTo   Vec2
	Leg     *gween.Tween
}

// NewPatrol creates a patrol that starts at A heading for B
func NewPatrol(a, b Vec2, speed, contactDamage float64) Patrol {
	return Patrol{
		A:             a,
		B:             b,
		Speed:         speed,
		ContactDamage: contactDamage,
		FacingRight:   b.X >= a.X,
		TowardB:       true,
		LegFrom:       a,
		LegTo:         b,
	}
}

// Target returns the point the patrol is walking towards
func (p *Patrol) Target() Vec2 {
	if p.TowardB {
		return p.B
	}
	return p.A
}

// Mortar is a stationary enemy lobbing shells at the player
type Mortar struct {
	DetectionRadius float64
	LaunchAngle     float64 // radians
	Gravity         float64 // gravity the shot is solved against
	FirePoint       Offset  // relative to the body, authored facing right
	Prefab          string

	Cadence     Countdown // time until the next shot
	Shooting    bool
	FacingRight bool
}

// NewMortar creates an idle mortar
func NewMortar(detectionRadius, launchAngle, gravity, shotInterval float64, firePoint Offset, prefab string) Mortar {
	return Mortar{
		DetectionRadius: detectionRadius,
		LaunchAngle:     launchAngle,
		Gravity:         gravity,
		FirePoint:       firePoint,
		Prefab:          prefab,
		Cadence:         NewCountdown(shotInterval),
		FacingRight:     true,
	}
}

// InRange reports whether target is within the detection radius
func (m *Mortar) InRange(self, target Vec2) bool {
	return self.Dist(target) <= m.DetectionRadius
}
