package entity

// BodyKind selects how the physics collaborator moves a body
type BodyKind int

const (
	// BodyDynamic integrates forces and gravity and resolves against solids
	BodyDynamic BodyKind = iota
	// BodyKinematic is positioned by its behaviour and never pushed
	BodyKinematic
	// BodySensor integrates velocity but passes through everything
	BodySensor
)

// String returns the config name of the body kind
func (k BodyKind) String() string {
	switch k {
	case BodyDynamic:
		return "dynamic"
	case BodyKinematic:
		return "kinematic"
	case BodySensor:
		return "sensor"
	default:
		return "unknown"
	}
}

// Offset is a local-space attachment point (ground check, fire point).
// X is authored for a body facing right.
type Offset struct {
	X, Y float64
}

// World returns the offset placed on a body at pos.
// Left-facing bodies mirror the offset around their centre.
func (o Offset) World(pos Vec2, facingRight bool) Vec2 {
	x := o.X
	if !facingRight {
		x = -x
	}
	return Vec2{pos.X + x, pos.Y + o.Y}
}

// BodyDef describes the collider and mass properties of an entity
type BodyDef struct {
	Kind         BodyKind
	W, H         float64 // metres
	Mass         float64 // kg, dynamic only
	GravityScale float64
	Layer        LayerMask // layer the body lives on
	CollidesWith LayerMask // solid layers a dynamic body resolves against
}

// Bounds returns the collider placed at pos
func (d BodyDef) Bounds(pos Vec2) Rect {
	return Rect{Center: pos, W: d.W, H: d.H}
}

// Overlaps reports whether two rects intersect (touching edges count)
func (r Rect) Overlaps(o Rect) bool {
	a0, a1 := r.Min(), r.Max()
	b0, b1 := o.Min(), o.Max()
	return a0.X <= b1.X && b0.X <= a1.X && a0.Y <= b1.Y && b0.Y <= a1.Y
}
