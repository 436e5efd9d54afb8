package config

import (
	"math"

	"github.com/younwookim/motionkit/internal/domain/entity"
)

// TuningConfig is the root config for tuning.yaml / tuning.json
type TuningConfig struct {
	Physics PhysicsSettings         `json:"physics" yaml:"physics"`
	Sim     SimConfig               `json:"sim" yaml:"sim"`
	Player  PlayerConfig            `json:"player" yaml:"player"`
	Prefabs map[string]PrefabConfig `json:"prefabs" yaml:"prefabs"`
	Arena   ArenaConfig             `json:"arena" yaml:"arena"`
}

type PhysicsSettings struct {
	Gravity  float64 `json:"gravity" yaml:"gravity"`   // m/s², positive magnitude
	CellSize float64 `json:"cellSize" yaml:"cellSize"` // broad-phase cell edge, metres
}

type SimConfig struct {
	FixedStep   float64 `json:"fixedStep" yaml:"fixedStep"`     // physics sub-tick, seconds
	MaxSubsteps int     `json:"maxSubsteps" yaml:"maxSubsteps"` // per Step call
}

type PlayerConfig struct {
	Body       BodyConfig       `json:"body" yaml:"body"`
	Locomotion LocomotionConfig `json:"locomotion" yaml:"locomotion"`
	Health     HealthConfig     `json:"health" yaml:"health"`
}

type LocomotionConfig struct {
	MoveSpeed         float64      `json:"moveSpeed" yaml:"moveSpeed"`
	Acceleration      float64      `json:"acceleration" yaml:"acceleration"`
	Deceleration      float64      `json:"deceleration" yaml:"deceleration"`
	AirAcceleration   float64      `json:"airAcceleration" yaml:"airAcceleration"`
	AirDeceleration   float64      `json:"airDeceleration" yaml:"airDeceleration"`
	JumpForce         float64      `json:"jumpForce" yaml:"jumpForce"` // vertical velocity set on jump
	FallMultiplier    float64      `json:"fallMultiplier" yaml:"fallMultiplier"`
	LowJumpMultiplier float64      `json:"lowJumpMultiplier" yaml:"lowJumpMultiplier"`
	MaxJumps          int          `json:"maxJumps" yaml:"maxJumps"`
	CoyoteTime        float64      `json:"coyoteTime" yaml:"coyoteTime"`
	JumpBufferTime    float64      `json:"jumpBufferTime" yaml:"jumpBufferTime"`
	GroundCheck       OffsetConfig `json:"groundCheck" yaml:"groundCheck"`
	GroundCheckRadius float64      `json:"groundCheckRadius" yaml:"groundCheckRadius"`
	GroundLayers      []string     `json:"groundLayers" yaml:"groundLayers"`
}

// GroundMask returns the configured ground layers.
// Unknown names are dropped; Validate reports them.
func (c LocomotionConfig) GroundMask() entity.LayerMask {
	m, _ := entity.ParseLayerMask(c.GroundLayers)
	return m
}

type HealthConfig struct {
	Max            float64 `json:"max" yaml:"max"`
	Invincibility  float64 `json:"invincibility" yaml:"invincibility"`   // seconds, 0 disables
	DeathAnimation float64 `json:"deathAnimation" yaml:"deathAnimation"` // seconds
	DestroyDelay   float64 `json:"destroyDelay" yaml:"destroyDelay"`     // seconds after the animation
}

// DespawnDelay returns the grace period between death and removal
func (c HealthConfig) DespawnDelay() float64 {
	return c.DeathAnimation + c.DestroyDelay
}

type BodyConfig struct {
	Kind         string   `json:"kind" yaml:"kind"` // dynamic, kinematic, sensor
	Width        float64  `json:"width" yaml:"width"`
	Height       float64  `json:"height" yaml:"height"`
	Mass         float64  `json:"mass" yaml:"mass"`
	GravityScale float64  `json:"gravityScale" yaml:"gravityScale"`
	Layer        string   `json:"layer" yaml:"layer"`
	CollidesWith []string `json:"collidesWith" yaml:"collidesWith"`
}

// Def converts the config into a body definition
func (c BodyConfig) Def() entity.BodyDef {
	kind := entity.BodyDynamic
	switch c.Kind {
	case "kinematic":
		kind = entity.BodyKinematic
	case "sensor":
		kind = entity.BodySensor
	}
	layer, _ := entity.ParseLayerMask([]string{c.Layer})
	collides, _ := entity.ParseLayerMask(c.CollidesWith)
	return entity.BodyDef{
		Kind:         kind,
		W:            c.Width,
		H:            c.Height,
		Mass:         c.Mass,
		GravityScale: c.GravityScale,
		Layer:        layer,
		CollidesWith: collides,
	}
}

// PrefabConfig describes a spawnable entity. Exactly one behaviour
// section is expected for enemies; projectiles carry Projectile.
type PrefabConfig struct {
	Body       BodyConfig        `json:"body" yaml:"body"`
	Health     *HealthConfig     `json:"health,omitempty" yaml:"health,omitempty"`
	Patrol     *PatrolConfig     `json:"patrol,omitempty" yaml:"patrol,omitempty"`
	Mortar     *MortarConfig     `json:"mortar,omitempty" yaml:"mortar,omitempty"`
	Projectile *ProjectileConfig `json:"projectile,omitempty" yaml:"projectile,omitempty"`
}

// AI returns the behaviour the prefab runs, if any
func (c PrefabConfig) AI() (entity.AIType, bool) {
	switch {
	case c.Patrol != nil:
		return entity.AIPatrol, true
	case c.Mortar != nil:
		return entity.AIMortar, true
	default:
		return 0, false
	}
}

type PatrolConfig struct {
	// Waypoints relative to the spawn position
	PointA        VecConfig `json:"pointA" yaml:"pointA"`
	PointB        VecConfig `json:"pointB" yaml:"pointB"`
	Speed         float64   `json:"speed" yaml:"speed"`
	ContactDamage float64   `json:"contactDamage" yaml:"contactDamage"`
}

type MortarConfig struct {
	DetectionRadius float64      `json:"detectionRadius" yaml:"detectionRadius"`
	LaunchAngleDeg  float64      `json:"launchAngleDeg" yaml:"launchAngleDeg"`
	Gravity         float64      `json:"gravity" yaml:"gravity"` // solved against; shells scale world gravity to match
	ShotInterval    float64      `json:"shotInterval" yaml:"shotInterval"`
	FirePoint       OffsetConfig `json:"firePoint" yaml:"firePoint"`
	Projectile      string       `json:"projectile" yaml:"projectile"`
}

// LaunchAngle returns the launch angle in radians
func (c MortarConfig) LaunchAngle() float64 {
	return c.LaunchAngleDeg * math.Pi / 180
}

type ProjectileConfig struct {
	Damage   float64 `json:"damage" yaml:"damage"`
	Lifetime float64 `json:"lifetime" yaml:"lifetime"`
	Speed    float64 `json:"speed" yaml:"speed"` // used when the spawner gives no velocity
}

// ArenaConfig is the collision geometry and spawn list the driver starts from
type ArenaConfig struct {
	Width       float64       `json:"width" yaml:"width"`
	Height      float64       `json:"height" yaml:"height"`
	PlayerSpawn VecConfig     `json:"playerSpawn" yaml:"playerSpawn"`
	Solids      []SolidConfig `json:"solids" yaml:"solids"`
	Spawns      []SpawnConfig `json:"spawns" yaml:"spawns"`
}

// SolidConfig is a static box, positioned by its centre
type SolidConfig struct {
	X      float64 `json:"x" yaml:"x"`
	Y      float64 `json:"y" yaml:"y"`
	Width  float64 `json:"width" yaml:"width"`
	Height float64 `json:"height" yaml:"height"`
	Layer  string  `json:"layer" yaml:"layer"`
}

// Rect returns the solid's box in world space
func (c SolidConfig) Rect() entity.Rect {
	return entity.Rect{Center: entity.Vec2{X: c.X, Y: c.Y}, W: c.Width, H: c.Height}
}

type SpawnConfig struct {
	Prefab   string    `json:"prefab" yaml:"prefab"`
	Position VecConfig `json:"position" yaml:"position"`
}

type VecConfig struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

// Vec2 converts to a world vector
func (v VecConfig) Vec2() entity.Vec2 {
	return entity.Vec2{X: v.X, Y: v.Y}
}

type OffsetConfig struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

// Offset converts to a facing-aware offset
func (o OffsetConfig) Offset() entity.Offset {
	return entity.Offset{X: o.X, Y: o.Y}
}
