package entity

import (
	"errors"
	"math"
	"strings"
)

// EntityID is a unique identifier for an entity (never recycled)
type EntityID uint64

// Errors returned when a caller breaks a contract at the core boundary
var (
	ErrInvalidDelta = errors.New("entity: time delta must be finite and non-negative")
	ErrInvalidDamage = errors.New("entity: damage amount must be positive")
)

// CheckDelta rejects negative, NaN and infinite time deltas
func CheckDelta(dt float64) error {
	if !(dt >= 0) || math.IsInf(dt, 1) {
		return ErrInvalidDelta
	}
	return nil
}

// Vec2 is a 2D vector in world space (y-up, metres)
type Vec2 struct {
	X, Y float64
}

// Add returns v + o
func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }

// Sub returns v - o
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }

// Scale returns v * s
func (v Vec2) Scale(s float64) Vec2 { return Vec2{v.X * s, v.Y * s} }

// Len returns the euclidean length
func (v Vec2) Len() float64 { return math.Hypot(v.X, v.Y) }

// Dist returns the distance between v and o
func (v Vec2) Dist(o Vec2) float64 { return v.Sub(o).Len() }

// Rect is an axis-aligned box described by its centre and size
type Rect struct {
	Center Vec2
	W, H   float64
}

// Min returns the bottom-left corner
func (r Rect) Min() Vec2 { return Vec2{r.Center.X - r.W/2, r.Center.Y - r.H/2} }

// Max returns the top-right corner
func (r Rect) Max() Vec2 { return Vec2{r.Center.X + r.W/2, r.Center.Y + r.H/2} }

// LayerMask selects collision layers for physics queries
type LayerMask uint32

const (
	LayerGround LayerMask = 1 << iota
	LayerPlatform
	LayerPlayer
	LayerEnemy
	LayerProjectile
)

var layerNames = []struct {
	layer LayerMask
	name  string
}{
	{LayerGround, "ground"},
	{LayerPlatform, "platform"},
	{LayerPlayer, "player"},
	{LayerEnemy, "enemy"},
	{LayerProjectile, "projectile"},
}

// Tags returns the layer names set in the mask, in bit order
func (m LayerMask) Tags() []string {
	tags := make([]string, 0, len(layerNames))
	for _, l := range layerNames {
		if m&l.layer != 0 {
			tags = append(tags, l.name)
		}
	}
	return tags
}

// Has reports whether every layer in o is set in m
func (m LayerMask) Has(o LayerMask) bool {
	return m&o == o
}

// String returns the layer names joined with "|"
func (m LayerMask) String() string {
	if m == 0 {
		return "none"
	}
	return strings.Join(m.Tags(), "|")
}

// ParseLayerMask builds a mask from layer names.
// Unknown names are reported with ok=false and ignored.
func ParseLayerMask(names []string) (mask LayerMask, ok bool) {
	ok = true
	for _, n := range names {
		found := false
		for _, l := range layerNames {
			if strings.EqualFold(n, l.name) {
				mask |= l.layer
				found = true
				break
			}
		}
		if !found {
			ok = false
		}
	}
	return mask, ok
}

// InputSample is one input-tick sample from the host
type InputSample struct {
	Axis        float64 // horizontal axis, clamped to [-1, 1]
	JumpPressed bool    // jump went down this tick
	JumpHeld    bool    // jump is held
}

// Clamped returns the sample with Axis clamped to [-1, 1]
func (in InputSample) Clamped() InputSample {
	if math.IsNaN(in.Axis) {
		in.Axis = 0
	}
	in.Axis = math.Max(-1, math.Min(1, in.Axis))
	return in
}
