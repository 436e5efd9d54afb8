package config

// Prefab IDs shipped with the default tuning
const (
	PrefabPatroller   = "patroller"
	PrefabMortar      = "mortar"
	PrefabMortarShell = "mortar_shell"
)

// Default returns the stock tuning: the player moves at 7 m/s with a
// double jump, mortars lob 45° shells every 1.5 s within 10 m.
func Default() *TuningConfig {
	return &TuningConfig{
		Physics: PhysicsSettings{
			Gravity:  9.81,
			CellSize: 1,
		},
		Sim: SimConfig{
			FixedStep:   0.02,
			MaxSubsteps: 5,
		},
		Player: PlayerConfig{
			Body: BodyConfig{
				Kind:         "dynamic",
				Width:        0.8,
				Height:       1,
				Mass:         1,
				GravityScale: 1,
				Layer:        "player",
				CollidesWith: []string{"ground", "platform"},
			},
			Locomotion: LocomotionConfig{
				MoveSpeed:         7,
				Acceleration:      50,
				Deceleration:      50,
				AirAcceleration:   35,
				AirDeceleration:   35,
				JumpForce:         15,
				FallMultiplier:    2.5,
				LowJumpMultiplier: 2,
				MaxJumps:          2,
				CoyoteTime:        0.15,
				JumpBufferTime:    0.1,
				GroundCheck:       OffsetConfig{X: 0, Y: -0.5},
				GroundCheckRadius: 0.2,
				GroundLayers:      []string{"ground", "platform"},
			},
			Health: HealthConfig{
				Max:            100,
				Invincibility:  1,
				DeathAnimation: 0.4,
				DestroyDelay:   1,
			},
		},
		Prefabs: map[string]PrefabConfig{
			PrefabPatroller: {
				Body: BodyConfig{Kind: "kinematic", Width: 0.8, Height: 0.8, Layer: "enemy"},
				Health: &HealthConfig{
					Max:            30,
					Invincibility:  0.2,
					DeathAnimation: 0.4,
					DestroyDelay:   1,
				},
				Patrol: &PatrolConfig{
					PointA:        VecConfig{X: -3},
					PointB:        VecConfig{X: 3},
					Speed:         2,
					ContactDamage: 10,
				},
			},
			PrefabMortar: {
				Body: BodyConfig{Kind: "kinematic", Width: 1, Height: 1, Layer: "enemy"},
				Health: &HealthConfig{
					Max:            50,
					Invincibility:  0.5,
					DeathAnimation: 0.4,
					DestroyDelay:   1,
				},
				Mortar: &MortarConfig{
					DetectionRadius: 10,
					LaunchAngleDeg:  45,
					Gravity:         9.81,
					ShotInterval:    1.5,
					FirePoint:       OffsetConfig{X: 0.5, Y: 0.5},
					Projectile:      PrefabMortarShell,
				},
			},
			PrefabMortarShell: {
				Body: BodyConfig{
					Kind:         "sensor",
					Width:        0.3,
					Height:       0.3,
					GravityScale: 1,
					Layer:        "projectile",
				},
				Projectile: &ProjectileConfig{
					Damage:   20,
					Lifetime: 3,
					Speed:    5,
				},
			},
		},
		Arena: ArenaConfig{
			Width:       40,
			Height:      20,
			PlayerSpawn: VecConfig{X: 2, Y: 1},
			Solids: []SolidConfig{
				{X: 20, Y: 0.25, Width: 40, Height: 0.5, Layer: "ground"},
				{X: 12, Y: 3, Width: 4, Height: 0.5, Layer: "platform"},
			},
			Spawns: []SpawnConfig{
				{Prefab: PrefabPatroller, Position: VecConfig{X: 10, Y: 0.9}},
				{Prefab: PrefabMortar, Position: VecConfig{X: 25, Y: 1}},
			},
		},
	}
}
