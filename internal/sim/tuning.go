package sim

// Tuning holds every gameplay constant the simulation reads. The YAML config
// overrides individual fields; anything left out keeps its default.
type Tuning struct {
	MapWidth  int `yaml:"map_width"`
	MapHeight int `yaml:"map_height"`

	// Timeline.
	BossSpawnTime float64 `yaml:"boss_spawn_time"` // seconds of elapsed time
	WinTime       float64 `yaml:"win_time"`
	InitialWave   int     `yaml:"initial_wave_size"`
	WaveBonus     int     `yaml:"wave_bonus"` // wave n spawns n+WaveBonus enemies

	// Player.
	PlayerHealth         float64 `yaml:"player_health"`
	PlayerMana           float64 `yaml:"player_mana"`
	PlayerSpeed          float64 `yaml:"player_speed"`
	PickupRadius         float64 `yaml:"pickup_radius"`
	CollectRadius        float64 `yaml:"collect_radius"`
	BaseCooldown         float64 `yaml:"base_cooldown"`
	MinCooldown          float64 `yaml:"min_cooldown"`
	BurstCooldownMul     float64 `yaml:"burst_cooldown_mul"`
	ExplosionCooldownMul float64 `yaml:"explosion_cooldown_mul"`

	// Magic bolt.
	BoltDamage   float64 `yaml:"bolt_damage"`
	BoltSpeed    float64 `yaml:"bolt_speed"`
	BoltLifetime float64 `yaml:"bolt_lifetime"`
	HitRadius    float64 `yaml:"hit_radius"`
	CastStagger  float64 `yaml:"cast_stagger"`
	SpreadDeg    float64 `yaml:"spread_deg"`

	// Electric burst.
	BurstDamage        float64 `yaml:"burst_damage"`
	BurstSpeed         float64 `yaml:"burst_speed"`
	BurstRadius        float64 `yaml:"burst_radius"`
	BurstPulseInterval float64 `yaml:"burst_pulse_interval"`
	BurstMinLifetime   float64 `yaml:"burst_min_lifetime"`

	// Explosion.
	ExplosionRadius        float64 `yaml:"explosion_radius"`
	ExplosionDamage        float64 `yaml:"explosion_damage"`
	ExplosionFrameInterval float64 `yaml:"explosion_frame_interval"`
	ExplosionDamageFrame   int     `yaml:"explosion_damage_frame"`

	// Grunts.
	GruntHealth         float64 `yaml:"grunt_health"`
	GruntHealthPerWave  float64 `yaml:"grunt_health_per_wave"`
	GruntSpeed          float64 `yaml:"grunt_speed"`
	GruntAttackRange    float64 `yaml:"grunt_attack_range"`
	GruntAttackInterval float64 `yaml:"grunt_attack_interval"`
	GruntMeleeDamage    float64 `yaml:"grunt_melee_damage"`
	GruntBoltDamage     float64 `yaml:"grunt_bolt_damage"`
	GruntBoltSpeed      float64 `yaml:"grunt_bolt_speed"`
	RangedFromWave      int     `yaml:"ranged_from_wave"`
	RangedChance        float64 `yaml:"ranged_chance"`
	MeleeLockRadius     float64 `yaml:"melee_lock_radius"`
	ActivationRadius    float64 `yaml:"activation_radius"`
	ActivationDelay     float64 `yaml:"activation_delay"`
	SpawnMinDistance    float64 `yaml:"spawn_min_distance"`

	// Boss.
	BossHealth         float64 `yaml:"boss_health"`
	BossSpeed          float64 `yaml:"boss_speed"`
	BossAttackRange    float64 `yaml:"boss_attack_range"`
	BossAttackInterval float64 `yaml:"boss_attack_interval"`
	BossBoltDamage     float64 `yaml:"boss_bolt_damage"`
	BossBoltSpeed      float64 `yaml:"boss_bolt_speed"`
	BossBoltSpreadDeg  float64 `yaml:"boss_bolt_spread_deg"`

	// Animation lock durations.
	AttackedDuration      float64 `yaml:"attacked_duration"`
	AttackingDuration     float64 `yaml:"attacking_duration"`
	DeathDuration         float64 `yaml:"death_duration"`
	BossAttackingDuration float64 `yaml:"boss_attacking_duration"`
	BossDeathDuration     float64 `yaml:"boss_death_duration"`
	IdleFrameInterval     float64 `yaml:"idle_frame_interval"`
	RunFrameInterval      float64 `yaml:"run_frame_interval"`

	// Rewards and drops.
	GruntScore      int     `yaml:"grunt_score"`
	BossScore       int     `yaml:"boss_score"`
	GruntExp        float64 `yaml:"grunt_exp"`
	BossExp         float64 `yaml:"boss_exp"`
	GruntDropChance float64 `yaml:"grunt_drop_chance"`
	BossDropChance  float64 `yaml:"boss_drop_chance"`
	HealAmount      float64 `yaml:"heal_amount"`
	ScoreItemAmount float64 `yaml:"score_item_amount"`
	ItemHomingSpeed float64 `yaml:"item_homing_speed"`
}

// DefaultTuning returns the shipped game balance.
func DefaultTuning() Tuning {
	return Tuning{
		MapWidth:  120,
		MapHeight: 90,

		BossSpawnTime: 300,
		WinTime:       900,
		InitialWave:   5,
		WaveBonus:     10,

		PlayerHealth:         100,
		PlayerMana:           100,
		PlayerSpeed:          12,
		PickupRadius:         15,
		CollectRadius:        1,
		BaseCooldown:         1.0,
		MinCooldown:          0.6,
		BurstCooldownMul:     2.5,
		ExplosionCooldownMul: 6,

		BoltDamage:   17,
		BoltSpeed:    60,
		BoltLifetime: 3,
		HitRadius:    1,
		CastStagger:  0.35,
		SpreadDeg:    15,

		BurstDamage:        8,
		BurstSpeed:         30,
		BurstRadius:        3,
		BurstPulseInterval: 0.25,
		BurstMinLifetime:   1.2,

		ExplosionRadius:        12,
		ExplosionDamage:        40,
		ExplosionFrameInterval: 0.08,
		ExplosionDamageFrame:   3,

		GruntHealth:         50,
		GruntHealthPerWave:  0.1,
		GruntSpeed:          6,
		GruntAttackRange:    10,
		GruntAttackInterval: 1.5,
		GruntMeleeDamage:    5,
		GruntBoltDamage:     6,
		GruntBoltSpeed:      25,
		RangedFromWave:      3,
		RangedChance:        0.3,
		MeleeLockRadius:     9,
		ActivationRadius:    45,
		ActivationDelay:     3,
		SpawnMinDistance:    15,

		BossHealth:         300 * 2.5,
		BossSpeed:          7.5,
		BossAttackRange:    20,
		BossAttackInterval: 2.5,
		BossBoltDamage:     12,
		BossBoltSpeed:      35,
		BossBoltSpreadDeg:  12,

		AttackedDuration:      0.3,
		AttackingDuration:     0.6,
		DeathDuration:         0.8,
		BossAttackingDuration: 0.9,
		BossDeathDuration:     1.5,
		IdleFrameInterval:     0.15,
		RunFrameInterval:      0.1,

		GruntScore:      10,
		BossScore:       200,
		GruntExp:        20,
		BossExp:         150,
		GruntDropChance: 0.15,
		BossDropChance:  0.75,
		HealAmount:      20,
		ScoreItemAmount: 50,
		ItemHomingSpeed: 20,
	}
}
