// Package physics is the reference physics collaborator: a y-up, metre based
// wrapper over a resolv space that integrates bodies, resolves them against
// static solids and answers ground and overlap queries.
package physics

import (
	"math"
	"sort"

	"github.com/solarlune/resolv"

	"github.com/younwookim/motionkit/internal/domain/entity"
)

// Scale is the number of resolv units per metre.
// resolv works in integer cells, so the space runs at centimetre precision.
const Scale = 100

const probeTag = "probe"

// Space owns the collision world
type Space struct {
	space   *resolv.Space
	width   float64 // metres
	height  float64 // metres
	gravity float64

	bodies  []*Body // insertion order, stepped in this order
	objects map[*resolv.Object]*Body
	solids  []*resolv.Object
	probe   *resolv.Object
}

// NewSpace creates a space covering [0,width]x[0,height] metres.
// gravity is a positive magnitude pulling towards -y.
func NewSpace(width, height, cellSize, gravity float64) *Space {
	cell := int(math.Max(1, math.Round(cellSize*Scale)))
	s := &Space{
		space:   resolv.NewSpace(int(math.Ceil(width*Scale)), int(math.Ceil(height*Scale)), cell, cell),
		width:   width,
		height:  height,
		gravity: gravity,
		objects: make(map[*resolv.Object]*Body),
	}

	s.probe = resolv.NewObject(0, 0, 1, 1, probeTag)
	s.space.Add(s.probe)
	return s
}

// Gravity returns the world gravity magnitude
func (s *Space) Gravity() float64 {
	return s.gravity
}

// Size returns the space bounds in metres
func (s *Space) Size() (w, h float64) {
	return s.width, s.height
}

// toResolv converts a y-up metre rect into resolv's y-down top-left form
func (s *Space) toResolv(r entity.Rect) (x, y, w, h float64) {
	return (r.Center.X - r.W/2) * Scale,
		(s.height - (r.Center.Y + r.H/2)) * Scale,
		r.W * Scale,
		r.H * Scale
}

// fromResolv returns the centre of obj in world space
func (s *Space) fromResolv(obj *resolv.Object) entity.Vec2 {
	return entity.Vec2{
		X: (obj.X + obj.W/2) / Scale,
		Y: s.height - (obj.Y+obj.H/2)/Scale,
	}
}

// AddSolid adds a static box on the given layer
func (s *Space) AddSolid(r entity.Rect, layer entity.LayerMask) {
	x, y, w, h := s.toResolv(r)
	obj := resolv.NewObject(x, y, w, h, layer.Tags()...)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	s.space.Add(obj)
	s.solids = append(s.solids, obj)
}

// AddBody creates a body centred on pos
func (s *Space) AddBody(id entity.EntityID, def entity.BodyDef, pos entity.Vec2) *Body {
	x, y, w, h := s.toResolv(def.Bounds(pos))
	obj := resolv.NewObject(x, y, w, h, def.Layer.Tags()...)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	s.space.Add(obj)

	b := &Body{
		id:    id,
		def:   def,
		obj:   obj,
		space: s,
		pos:   pos,
	}
	s.bodies = append(s.bodies, b)
	s.objects[obj] = b
	return b
}

// RemoveBody takes a body out of the space. Removing twice is a no-op.
func (s *Space) RemoveBody(b *Body) {
	if b == nil || b.removed {
		return
	}
	b.removed = true
	s.space.Remove(b.obj)
	delete(s.objects, b.obj)
	for i, o := range s.bodies {
		if o == b {
			s.bodies = append(s.bodies[:i], s.bodies[i+1:]...)
			break
		}
	}
}

// Solids returns the static boxes in world space
func (s *Space) Solids() []entity.Rect {
	out := make([]entity.Rect, len(s.solids))
	for i, obj := range s.solids {
		out[i] = s.rectOf(obj)
	}
	return out
}

// Bodies returns the live bodies in insertion order
func (s *Space) Bodies() []*Body {
	return s.bodies
}

// Step advances every body by dt with semi-implicit Euler.
// Dynamic bodies resolve against their CollidesWith layers; sensors pass
// through; kinematic bodies only move when their owner sets a position.
func (s *Space) Step(dt float64) {
	for _, b := range s.bodies {
		switch b.def.Kind {
		case entity.BodyDynamic:
			b.integrate(dt)
			b.moveAndCollide(b.vel.X*dt, b.vel.Y*dt)
		case entity.BodySensor:
			b.integrate(dt)
			b.moveTo(b.pos.Add(b.vel.Scale(dt)))
		case entity.BodyKinematic:
			b.force = entity.Vec2{}
		}
	}
}

// ProbeGround reports whether a circle at pos touches any solid or body on
// the given layers. A zero mask never touches anything.
func (s *Space) ProbeGround(pos entity.Vec2, radius float64, mask entity.LayerMask) bool {
	if mask == 0 || !(radius > 0) {
		return false
	}

	for _, obj := range s.query(entity.Rect{Center: pos, W: radius * 2, H: radius * 2}, mask) {
		if circleTouchesRect(pos, radius, s.rectOf(obj)) {
			return true
		}
	}
	return false
}

// Overlapping returns the bodies on the given layers touching b, ordered by id
func (s *Space) Overlapping(b *Body, mask entity.LayerMask) []*Body {
	var out []*Body
	for _, obj := range s.candidates(b, mask) {
		other, ok := s.objects[obj]
		if !ok || other == b {
			continue
		}
		out = append(out, other)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].id < out[j].id })
	return out
}

// TouchesSolid reports whether b touches a static solid on the given layers
func (s *Space) TouchesSolid(b *Body, mask entity.LayerMask) bool {
	for _, obj := range s.candidates(b, mask) {
		if _, isBody := s.objects[obj]; !isBody {
			return true
		}
	}
	return false
}

// candidates returns objects on mask whose boxes touch b
func (s *Space) candidates(b *Body, mask entity.LayerMask) []*resolv.Object {
	if b == nil || b.removed || mask == 0 {
		return nil
	}
	bounds := b.Bounds()
	var out []*resolv.Object
	for _, obj := range s.query(bounds, mask) {
		if obj == b.obj {
			continue
		}
		if bounds.Overlaps(s.rectOf(obj)) {
			out = append(out, obj)
		}
	}
	return out
}

// query returns the broad-phase candidates on mask around r. The probe is
// grown by one unit per side so boxes that only touch r are still found.
func (s *Space) query(r entity.Rect, mask entity.LayerMask) []*resolv.Object {
	x, y, w, h := s.toResolv(r)
	s.probe.X, s.probe.Y, s.probe.W, s.probe.H = x-1, y-1, w+2, h+2
	s.probe.Update()

	check := s.probe.Check(0, 0, mask.Tags()...)
	if check == nil {
		return nil
	}
	return check.ObjectsByTags(mask.Tags()...)
}

// rectOf returns the world-space box of a resolv object
func (s *Space) rectOf(obj *resolv.Object) entity.Rect {
	return entity.Rect{Center: s.fromResolv(obj), W: obj.W / Scale, H: obj.H / Scale}
}

func circleTouchesRect(c entity.Vec2, radius float64, r entity.Rect) bool {
	lo, hi := r.Min(), r.Max()
	nx := math.Max(lo.X, math.Min(c.X, hi.X))
	ny := math.Max(lo.Y, math.Min(c.Y, hi.Y))
	dx, dy := c.X-nx, c.Y-ny
	return dx*dx+dy*dy <= radius*radius
}
