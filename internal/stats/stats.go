package stats

// Combat stat base values and scaling constants. These govern every derived
// stat in the game; tune them here, never at call sites.
const (
	BaseCritChance    = 0.05   // 5% base critical hit chance
	CritChancePerLuck = 0.0005 // +0.05% crit chance per point of Luck

	BaseCritDamage         = 2.0   // 200% base critical damage multiplier
	CritDamagePerDexterity = 0.001 // +0.1% crit damage per point of Dexterity

	BaseDodgeChance         = 0.01   // 1% base dodge chance
	DodgeChancePerDexterity = 0.0002 // +0.02% dodge per point of Dexterity

	BaseParryChance            = 0.01   // 1% base parry chance
	ParryChancePerConstitution = 0.0004 // +0.04% parry per point of Constitution
	ParryDamageReductionFactor = 0.4    // damage reduced to 40% on parry

	BaseHitChance         = 0.75 // 75% base hit chance
	HitChancePerDexterity = 0.01 // +1% hit chance per point of attacker Dexterity

	BaseAttackSpeed         = 0.5   // attacks per second at 0 Dexterity
	AttackSpeedPerDexterity = 0.005 // +0.005 attacks/sec per point of Dexterity

	DamagePerStrength = 0.4 // flat damage per point of Strength
)

// Armor mitigation constants (asymptotic formula). MaxArmorMitigation is the
// bound the reduction approaches but never reaches; ArmorDenominator controls
// how quickly it approaches that bound.
const (
	MaxArmorMitigation = 0.60
	ArmorDenominator   = 50.0
)

// CritChance returns the critical hit chance for the given Luck.
func CritChance(luck int) float64 {
	return BaseCritChance + float64(luck)*CritChancePerLuck
}

// CritDamage returns the critical damage multiplier for the given Dexterity
// and Luck.
func CritDamage(dexterity, luck int) float64 {
	return BaseCritDamage + float64(dexterity)*CritDamagePerDexterity + float64(luck)*CritChancePerLuck
}

// DodgeChance returns the dodge chance for the given Dexterity.
func DodgeChance(dexterity int) float64 {
	return BaseDodgeChance + float64(dexterity)*DodgeChancePerDexterity
}

// ParryChance returns the parry chance for the given Constitution.
func ParryChance(constitution int) float64 {
	return BaseParryChance + float64(constitution)*ParryChancePerConstitution
}

// HitChance returns the chance for an attacker to land a hit, combining the
// attacker's accuracy bonus with the defender's dodge.
func HitChance(defenderDexterity, attackerDexterity int) float64 {
	return BaseHitChance + float64(attackerDexterity)*HitChancePerDexterity - DodgeChance(defenderDexterity)
}

// AttackSpeed returns attacks per second for the given Dexterity.
func AttackSpeed(dexterity int) float64 {
	return BaseAttackSpeed + float64(dexterity)*AttackSpeedPerDexterity
}

// AttackDamage combines a base weapon damage with the Strength bonus. The
// result truncates toward zero, matching integer damage everywhere else.
func AttackDamage(baseDamage, strength int) int {
	return int(float64(baseDamage) + float64(strength)*DamagePerStrength)
}

// ArmorMitigation returns the fractional damage reduction for the given
// armor value. The curve is asymptotic: it is strictly below
// MaxArmorMitigation for any finite armor and monotonically increasing.
func ArmorMitigation(armor int) float64 {
	if armor < 0 {
		armor = 0
	}
	return MaxArmorMitigation * (float64(armor) / (float64(armor) + ArmorDenominator))
}
