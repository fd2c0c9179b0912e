package game

// Combatant is the read/write contract shared by the player and every enemy.
// There is deliberately no inheritance hierarchy: Player and Enemy are two
// independent implementations.
type Combatant interface {
	Name() string
	Level() int

	CurrentHP() int
	MaxHP() int
	// TakeDamage reduces current HP by damage, clamped at zero. It is the
	// single authoritative HP-reduction point; callers must never subtract
	// HP themselves.
	TakeDamage(damage int)
	IsAlive() bool

	// Core attributes
	Strength() int
	Dexterity() int
	Intelligence() int
	Constitution() int
	Luck() int
	Charisma() int

	// Derived combat stats. Always a pure function of the current core
	// attributes and equipment; stale values are a correctness bug.
	Armor() int
	AttackDamage() int
	Dodge() float64
	Parry() float64
	AttackSpeed() float64
	CritChance() float64
	CritDamage() float64

	// RecalculateDerivedStats recomputes every derived stat from the core
	// attributes and equipment. Must be invoked after any mutation of
	// attributes, level or equipment.
	RecalculateDerivedStats()
}

// Species identifies an enemy kind ("slime", "wolf", ...). The catalog of
// known species comes from the server configuration.
type Species string
