package replay

import (
	"encoding/binary"
	"math"

	"github.com/cespare/xxhash/v2"

	"github.com/younwookim/motionkit/internal/application/sim"
)

// Digest hashes a snapshot bit for bit. Two runs are in sync exactly when
// their digests match every frame.
func Digest(s sim.Snapshot) uint64 {
	h := xxhash.New()
	var buf [8]byte

	u64 := func(v uint64) {
		binary.LittleEndian.PutUint64(buf[:], v)
		_, _ = h.Write(buf[:])
	}
	f64 := func(v float64) { u64(math.Float64bits(v)) }
	flag := func(b bool) {
		if b {
			u64(1)
		} else {
			u64(0)
		}
	}

	u64(s.Tick)
	f64(s.Time)
	u64(uint64(len(s.Entities)))
	for _, e := range s.Entities {
		u64(uint64(e.ID))
		u64(uint64(e.Kind))
		u64(uint64(len(e.Prefab)))
		_, _ = h.WriteString(e.Prefab)
		f64(e.Bounds.Center.X)
		f64(e.Bounds.Center.Y)
		f64(e.Velocity.X)
		f64(e.Velocity.Y)
		f64(e.Health)
		flag(e.Alive)
		flag(e.FacingRight)
		u64(uint64(e.Pose))
	}

	if p := s.Player; p != nil {
		u64(uint64(p.ID))
		flag(p.Grounded)
		u64(uint64(p.JumpsRemaining))
		flag(p.Invincible)
	}
	return h.Sum64()
}
