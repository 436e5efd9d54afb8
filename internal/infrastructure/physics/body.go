package physics

import (
	"math"

	"github.com/solarlune/resolv"

	"github.com/younwookim/motionkit/internal/domain/entity"
)

// Body is a rigid box in the space
type Body struct {
	id    entity.EntityID
	def   entity.BodyDef
	obj   *resolv.Object
	space *Space

	pos, vel entity.Vec2
	force    entity.Vec2 // cleared every step

	removed bool
}

// ID returns the entity that owns the body
func (b *Body) ID() entity.EntityID { return b.id }

// Def returns the body definition
func (b *Body) Def() entity.BodyDef { return b.def }

// Position returns the centre of the body
func (b *Body) Position() entity.Vec2 { return b.pos }

// Velocity returns the current velocity in m/s
func (b *Body) Velocity() entity.Vec2 { return b.vel }

// SetVelocity overwrites the velocity
func (b *Body) SetVelocity(v entity.Vec2) { b.vel = v }

// AddForce accumulates a force (newtons) for the next step
func (b *Body) AddForce(f entity.Vec2) { b.force = b.force.Add(f) }

// Gravity returns the gravity magnitude acting on this body
func (b *Body) Gravity() float64 { return b.space.gravity * b.def.GravityScale }

// SetGravityScale changes the gravity multiplier
func (b *Body) SetGravityScale(scale float64) { b.def.GravityScale = scale }

// Bounds returns the collider in world space
func (b *Body) Bounds() entity.Rect { return b.def.Bounds(b.pos) }

// Removed reports whether the body has left the space
func (b *Body) Removed() bool { return b.removed }

// SetPosition teleports the body without collision
func (b *Body) SetPosition(p entity.Vec2) {
	b.moveTo(p)
}

func (b *Body) integrate(dt float64) {
	acc := entity.Vec2{Y: -b.Gravity()}
	if b.def.Mass > 0 {
		acc = acc.Add(b.force.Scale(1 / b.def.Mass))
	}
	b.vel = b.vel.Add(acc.Scale(dt))
	b.force = entity.Vec2{}
}

func (b *Body) moveTo(p entity.Vec2) {
	b.pos = p
	x, y, _, _ := b.space.toResolv(b.Bounds())
	b.obj.X, b.obj.Y = x, y
	b.obj.Update()
}

// moveAndCollide moves by (dx, dy) metres, one axis at a time, stopping
// flush against the first solid in the way and zeroing that velocity axis.
func (b *Body) moveAndCollide(dx, dy float64) {
	tags := b.def.CollidesWith.Tags()
	if len(tags) == 0 {
		b.moveTo(b.pos.Add(entity.Vec2{X: dx, Y: dy}))
		return
	}

	if dx != 0 {
		rdx := dx * Scale
		if contact, hit := b.sweep(rdx, 0, tags); hit {
			rdx = contact
			b.vel.X = 0
		}
		b.obj.X += rdx
		b.obj.Update()
	}

	if dy != 0 {
		// resolv is y-down
		rdy := -dy * Scale
		if contact, hit := b.sweep(0, rdy, tags); hit {
			rdy = contact
			b.vel.Y = 0
		}
		b.obj.Y += rdy
		b.obj.Update()
	}

	b.pos = b.space.fromResolv(b.obj)
}

// sweep returns the allowed movement along the single non-zero axis when a
// solid blocks (dx, dy), in resolv units.
func (b *Body) sweep(dx, dy float64, tags []string) (float64, bool) {
	check := b.obj.Check(dx, dy, tags...)
	if check == nil {
		return 0, false
	}

	best, hit := 0.0, false
	for _, other := range check.ObjectsByTags(tags...) {
		if other == b.space.probe || !b.overlapsAfter(other, dx, dy) {
			continue
		}
		contact := check.ContactWithObject(other)
		d := contact.X()
		if dx == 0 {
			d = contact.Y()
		}
		if !hit || math.Abs(d) < math.Abs(best) {
			best, hit = d, true
		}
	}
	return best, hit
}

// overlapsAfter is the exact test behind the cell-level broad phase.
// Touching edges do not block, so resting on a floor never stops sliding.
func (b *Body) overlapsAfter(o *resolv.Object, dx, dy float64) bool {
	x, y := b.obj.X+dx, b.obj.Y+dy
	return x < o.X+o.W && o.X < x+b.obj.W && y < o.Y+o.H && o.Y < y+b.obj.H
}
