package playing

import (
	"math"

	"github.com/younwookim/motionkit/internal/domain/entity"
)

// camera maps world metres (y up) to screen pixels (y down)
type camera struct {
	center  entity.Vec2
	scale   float64 // pixels per metre
	screenW float64
	screenH float64
}

// follow centres the camera on target, clamped so the view stays inside
// an arena of size w x h anchored at the origin
func (c *camera) follow(target entity.Vec2, w, h float64) {
	halfW := c.screenW / 2 / c.scale
	halfH := c.screenH / 2 / c.scale
	c.center = entity.Vec2{
		X: clampView(target.X, halfW, w),
		Y: clampView(target.Y, halfH, h),
	}
}

// clampView keeps [v-half, v+half] inside [0, size]; a view wider than the
// arena centres on it
func clampView(v, half, size float64) float64 {
	if 2*half >= size {
		return size / 2
	}
	return math.Max(half, math.Min(size-half, v))
}

// toScreen returns the screen position of a world point
func (c *camera) toScreen(p entity.Vec2) (float64, float64) {
	return (p.X-c.center.X)*c.scale + c.screenW/2,
		c.screenH/2 - (p.Y-c.center.Y)*c.scale
}

// rect returns the screen rectangle of a world box as x, y, w, h with
// x, y at the top-left
func (c *camera) rect(r entity.Rect) (x, y, w, h float64) {
	minX, maxY := r.Min().X, r.Max().Y
	x, y = c.toScreen(entity.Vec2{X: minX, Y: maxY})
	return x, y, r.W * c.scale, r.H * c.scale
}
