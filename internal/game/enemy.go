package game

import (
	"github.com/AlonBenyatov/dungeonloop/internal/stats"
)

// Enemy is a procedurally generated combatant. Instances are created fresh
// per encounter and discarded afterwards; they are never persisted.
type Enemy struct {
	name    string
	species Species
	level   int
	rarity  Rarity

	strength     int
	dexterity    int
	intelligence int
	constitution int
	luck         int
	charisma     int

	currentHP int
	maxHP     int

	// armorValue holds the final armor for the instance; species set it
	// directly, there is no per-piece equipment on enemies.
	armorValue    int
	baseAttackDmg int

	// Base rewards; the rarity multiplier is applied at grant time, not here.
	goldReward       int
	experienceReward int

	attackDmg   int
	dodge       float64
	parry       float64
	attackSpeed float64
	critChance  float64
	critDamage  float64
}

// EnemyBlueprint carries every value the factory computed for a new enemy.
type EnemyBlueprint struct {
	Name             string
	Species          Species
	Level            int
	Rarity           Rarity
	Strength         int
	Dexterity        int
	Intelligence     int
	Constitution     int
	Luck             int
	Charisma         int
	MaxHP            int
	Armor            int
	BaseAttackDamage int
	GoldReward       int
	ExperienceReward int
}

// NewEnemy builds an enemy from a blueprint and computes its derived stats.
func NewEnemy(bp EnemyBlueprint) *Enemy {
	e := &Enemy{
		name:             bp.Name,
		species:          bp.Species,
		level:            bp.Level,
		rarity:           bp.Rarity,
		strength:         bp.Strength,
		dexterity:        bp.Dexterity,
		intelligence:     bp.Intelligence,
		constitution:     bp.Constitution,
		luck:             bp.Luck,
		charisma:         bp.Charisma,
		maxHP:            bp.MaxHP,
		armorValue:       bp.Armor,
		baseAttackDmg:    bp.BaseAttackDamage,
		goldReward:       bp.GoldReward,
		experienceReward: bp.ExperienceReward,
	}
	e.currentHP = e.maxHP
	e.RecalculateDerivedStats()
	return e
}

// --- Combatant implementation ---

func (e *Enemy) Name() string      { return e.name }
func (e *Enemy) Level() int        { return e.level }
func (e *Enemy) CurrentHP() int    { return e.currentHP }
func (e *Enemy) MaxHP() int        { return e.maxHP }
func (e *Enemy) Strength() int     { return e.strength }
func (e *Enemy) Dexterity() int    { return e.dexterity }
func (e *Enemy) Intelligence() int { return e.intelligence }
func (e *Enemy) Constitution() int { return e.constitution }
func (e *Enemy) Luck() int         { return e.luck }
func (e *Enemy) Charisma() int     { return e.charisma }

func (e *Enemy) Armor() int           { return e.armorValue }
func (e *Enemy) AttackDamage() int    { return e.attackDmg }
func (e *Enemy) Dodge() float64       { return e.dodge }
func (e *Enemy) Parry() float64       { return e.parry }
func (e *Enemy) AttackSpeed() float64 { return e.attackSpeed }
func (e *Enemy) CritChance() float64  { return e.critChance }
func (e *Enemy) CritDamage() float64  { return e.critDamage }

func (e *Enemy) IsAlive() bool { return e.currentHP > 0 }

func (e *Enemy) TakeDamage(damage int) {
	e.currentHP -= damage
	if e.currentHP < 0 {
		e.currentHP = 0
	}
}

// RecalculateDerivedStats recomputes the derived combat stats from the
// current core attributes and base attack damage.
func (e *Enemy) RecalculateDerivedStats() {
	e.dodge = stats.DodgeChance(e.dexterity)
	e.attackSpeed = stats.AttackSpeed(e.dexterity)
	e.parry = stats.ParryChance(e.constitution)
	e.attackDmg = stats.AttackDamage(e.baseAttackDmg, e.strength)
	e.critChance = stats.CritChance(e.luck)
	e.critDamage = stats.CritDamage(e.dexterity, e.luck)
}

// Species returns the enemy's species tag.
func (e *Enemy) Species() Species { return e.species }

// Rarity returns the enemy's rarity tier.
func (e *Enemy) Rarity() Rarity { return e.rarity }

// BoostCoreStats multiplies every core attribute plus maxHP and armor by the
// given factor, reheals to the new maximum and recomputes derived stats.
// Used by battle loops to raise difficulty beyond rarity scaling.
func (e *Enemy) BoostCoreStats(multiplier float64) {
	e.strength = int(float64(e.strength) * multiplier)
	e.dexterity = int(float64(e.dexterity) * multiplier)
	e.intelligence = int(float64(e.intelligence) * multiplier)
	e.constitution = int(float64(e.constitution) * multiplier)
	e.luck = int(float64(e.luck) * multiplier)
	e.charisma = int(float64(e.charisma) * multiplier)

	e.maxHP = int(float64(e.maxHP) * multiplier)
	e.currentHP = e.maxHP
	e.armorValue = int(float64(e.armorValue) * multiplier)

	e.RecalculateDerivedStats()
}

// GoldReward returns the enemy's base gold reward, before rarity scaling.
func (e *Enemy) GoldReward() int { return e.goldReward }

// ExperienceReward returns the base experience reward, before rarity scaling.
func (e *Enemy) ExperienceReward() int { return e.experienceReward }

// ScaledGoldReward applies the rarity reward multiplier. Called at
// reward-grant time only.
func (e *Enemy) ScaledGoldReward() int {
	return int(float64(e.goldReward) * e.rarity.RewardMultiplier())
}

// ScaledExperienceReward applies the rarity reward multiplier. Called at
// reward-grant time only.
func (e *Enemy) ScaledExperienceReward() int {
	return int(float64(e.experienceReward) * e.rarity.RewardMultiplier())
}
