package engine

import (
	"math"

	"github.com/AlonBenyatov/dungeonloop/internal/game"
	"github.com/AlonBenyatov/dungeonloop/internal/stats"
)

// Rand is the uniform random source injected into the resolver and factory.
// *math/rand.Rand satisfies it. Nothing in the engine touches process-global
// random state, so a seeded source reproduces full battles.
type Rand interface {
	Float64() float64
}

// OutcomeKind classifies a resolved attack.
type OutcomeKind string

const (
	OutcomeMiss  OutcomeKind = "miss"
	OutcomeDodge OutcomeKind = "dodge"
	OutcomeParry OutcomeKind = "parry"
	OutcomeHit   OutcomeKind = "hit"
	OutcomeCrit  OutcomeKind = "crit"
)

// Outcome reports what a single resolved attack did. Damage has already been
// applied to the defender when an Outcome is returned.
type Outcome struct {
	Kind   OutcomeKind `json:"kind"`
	Damage int         `json:"damage"`
}

// ResolveAttack resolves one attack from attacker against defender and
// applies the resulting damage to the defender exactly once. Each step
// consumes one uniform draw from rng, in strict order: hit, dodge, parry,
// crit, armor mitigation. A parry reduces damage to 40% of base and bypasses
// the crit and armor steps entirely.
func ResolveAttack(attacker, defender game.Combatant, rng Rand) Outcome {
	base := float64(attacker.AttackDamage())

	hitChance := stats.HitChance(defender.Dexterity(), attacker.Dexterity())
	if rng.Float64() >= hitChance {
		return Outcome{Kind: OutcomeMiss}
	}

	if rng.Float64() < stats.DodgeChance(defender.Dexterity()) {
		return Outcome{Kind: OutcomeDodge}
	}

	if rng.Float64() < stats.ParryChance(defender.Constitution()) {
		damage := clampDamage(base * stats.ParryDamageReductionFactor)
		defender.TakeDamage(damage)
		return Outcome{Kind: OutcomeParry, Damage: damage}
	}

	kind := OutcomeHit
	damage := base
	if rng.Float64() < stats.CritChance(attacker.Luck()) {
		damage *= stats.CritDamage(attacker.Dexterity(), attacker.Luck())
		kind = OutcomeCrit
	}

	damage *= 1.0 - stats.ArmorMitigation(defender.Armor())

	final := clampDamage(damage)
	defender.TakeDamage(final)
	return Outcome{Kind: kind, Damage: final}
}

func clampDamage(damage float64) int {
	d := int(math.Floor(damage))
	if d < 0 {
		d = 0
	}
	return d
}
