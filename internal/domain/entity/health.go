package entity

// DamageResult reports what a damage event did
type DamageResult int

const (
	DamageIgnored DamageResult = iota // dead or invincible
	DamageApplied
	DamageFatal // health reached zero; returned exactly once
)

// String returns the string representation of the result
func (r DamageResult) String() string {
	switch r {
	case DamageIgnored:
		return "Ignored"
	case DamageApplied:
		return "Applied"
	case DamageFatal:
		return "Fatal"
	default:
		return "Unknown"
	}
}

// Health is a health pool with a post-hit invincibility window
type Health struct {
	Current       float64
	Max           float64
	Invincibility Countdown
	Dead          bool
}

// NewHealth creates a full health pool.
// A zero invincibility duration disables the post-hit window.
func NewHealth(max, invincibility float64) Health {
	return Health{
		Current:       max,
		Max:           max,
		Invincibility: NewCountdown(invincibility),
	}
}

// ApplyDamage applies damage unless the entity is dead or invincible.
// Health is clamped at zero and the death transition happens once.
func (h *Health) ApplyDamage(amount float64) (DamageResult, error) {
	if !(amount > 0) {
		return DamageIgnored, ErrInvalidDamage
	}
	if h.Dead || h.IsInvincible() {
		return DamageIgnored, nil
	}

	h.Current -= amount
	if h.Current < 0 {
		h.Current = 0
	}
	h.Invincibility.Reset()

	if h.Current <= 0 {
		h.Dead = true
		return DamageFatal, nil
	}
	return DamageApplied, nil
}

// Tick advances the invincibility window
func (h *Health) Tick(dt float64) error {
	if err := CheckDelta(dt); err != nil {
		return err
	}
	h.Invincibility.Tick(dt)
	return nil
}

// IsInvincible returns true while the post-hit window is running
func (h *Health) IsInvincible() bool {
	return h.Invincibility.Active()
}

// IsAlive returns true until the death transition
func (h *Health) IsAlive() bool {
	return !h.Dead
}
