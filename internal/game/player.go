package game

import (
	"errors"
	"math"

	"github.com/AlonBenyatov/dungeonloop/internal/stats"
)

const (
	playerStartingAttribute = 5
	playerBaseArmor         = 2
	playerBaseWeaponDamage  = 8
	statPointsPerLevel      = 10
)

var (
	ErrLevelTooLow     = errors.New("player level too low to equip item")
	ErrNegativeAmount  = errors.New("amount must be positive")
	ErrUnknownStat     = errors.New("unknown stat name")
	ErrNotEnoughPoints = errors.New("not enough unallocated stat points")
)

// Player is the player-controlled combatant: a mutable character sheet with
// experience, gold and equipment on top of the shared combat contract.
type Player struct {
	name       string
	class      string
	level      int
	experience int
	expToLevel int

	strength     int
	dexterity    int
	intelligence int
	constitution int
	luck         int
	charisma     int

	currentHP int
	maxHP     int
	gold      int

	unallocatedPoints int

	weapon *Weapon
	armor  map[EquipmentSlot]ArmorPiece

	// Derived stats; valid only between recalculations.
	armorValue  int
	attackDmg   int
	dodge       float64
	parry       float64
	attackSpeed float64
	critChance  float64
	critDamage  float64
}

// NewPlayer creates a level-1 player with the default attribute spread and
// fully computed derived stats.
func NewPlayer(name string) *Player {
	p := &Player{
		name:         name,
		class:        "Adventurer",
		level:        1,
		strength:     playerStartingAttribute,
		dexterity:    playerStartingAttribute,
		intelligence: playerStartingAttribute,
		constitution: playerStartingAttribute,
		luck:         playerStartingAttribute,
		charisma:     playerStartingAttribute,
		armor:        make(map[EquipmentSlot]ArmorPiece),
	}
	p.maxHP = p.calculateMaxHP()
	p.currentHP = p.maxHP
	p.expToLevel = expRequiredForNext(p.level)
	p.RecalculateDerivedStats()
	return p
}

func (p *Player) calculateMaxHP() int {
	return 50 + p.constitution*5 + p.level*10
}

// expRequiredForNext is the experience needed to leave the given level.
func expRequiredForNext(level int) int {
	return int(14.0*math.Pow(float64(level), 2) + 600.0*float64(level) - 415.0)
}

// --- Combatant implementation ---

func (p *Player) Name() string      { return p.name }
func (p *Player) Level() int        { return p.level }
func (p *Player) CurrentHP() int    { return p.currentHP }
func (p *Player) MaxHP() int        { return p.maxHP }
func (p *Player) Strength() int     { return p.strength }
func (p *Player) Dexterity() int    { return p.dexterity }
func (p *Player) Intelligence() int { return p.intelligence }
func (p *Player) Constitution() int { return p.constitution }
func (p *Player) Luck() int         { return p.luck }
func (p *Player) Charisma() int     { return p.charisma }

func (p *Player) Armor() int           { return p.armorValue }
func (p *Player) AttackDamage() int    { return p.attackDmg }
func (p *Player) Dodge() float64       { return p.dodge }
func (p *Player) Parry() float64       { return p.parry }
func (p *Player) AttackSpeed() float64 { return p.attackSpeed }
func (p *Player) CritChance() float64  { return p.critChance }
func (p *Player) CritDamage() float64  { return p.critDamage }

func (p *Player) IsAlive() bool { return p.currentHP > 0 }

func (p *Player) TakeDamage(damage int) {
	p.currentHP -= damage
	if p.currentHP < 0 {
		p.currentHP = 0
	}
}

// RecalculateDerivedStats recomputes every derived stat from the current
// attributes, level and equipment. Idempotent: same inputs, same outputs.
func (p *Player) RecalculateDerivedStats() {
	p.dodge = stats.DodgeChance(p.dexterity)
	p.attackSpeed = stats.AttackSpeed(p.dexterity)
	p.parry = stats.ParryChance(p.constitution)
	p.critChance = stats.CritChance(p.luck)
	p.critDamage = stats.CritDamage(p.dexterity, p.luck)

	p.attackDmg = stats.AttackDamage(playerBaseWeaponDamage, p.strength)
	if p.weapon != nil {
		p.attackDmg += p.weapon.Damage
	}

	p.armorValue = playerBaseArmor
	for _, piece := range p.armor {
		p.armorValue += piece.Defense
	}
}

// --- Progression ---

// Experience returns the player's current experience toward the next level.
func (p *Player) Experience() int { return p.experience }

// ExpToNextLevel returns the experience required to reach the next level.
func (p *Player) ExpToNextLevel() int { return p.expToLevel }

// Gold returns the player's gold.
func (p *Player) Gold() int { return p.gold }

// Class returns the player's class name.
func (p *Player) Class() string { return p.class }

// UnallocatedStatPoints returns the points available to spend.
func (p *Player) UnallocatedStatPoints() int { return p.unallocatedPoints }

// GainExperience adds experience and levels up as many times as the total
// allows.
func (p *Player) GainExperience(amount int) {
	if amount <= 0 {
		return
	}
	p.experience += amount
	for p.experience >= p.expToLevel {
		p.levelUp()
	}
}

func (p *Player) levelUp() {
	p.level++
	p.experience -= p.expToLevel
	p.expToLevel = expRequiredForNext(p.level)
	p.unallocatedPoints += statPointsPerLevel
	p.maxHP = p.calculateMaxHP()
	p.currentHP = p.maxHP
	p.RecalculateDerivedStats()
}

// AddGold adds the given amount of gold. Negative amounts are ignored.
func (p *Player) AddGold(amount int) {
	if amount <= 0 {
		return
	}
	p.gold += amount
}

// HealToFull restores the player to maximum HP.
func (p *Player) HealToFull() { p.currentHP = p.maxHP }

// AllocateStatPoints spends unallocated points on a named attribute
// ("strength", "dexterity", "intelligence", "constitution", "luck",
// "charisma") and recomputes derived stats.
func (p *Player) AllocateStatPoints(stat string, amount int) error {
	if amount <= 0 {
		return ErrNegativeAmount
	}
	if amount > p.unallocatedPoints {
		return ErrNotEnoughPoints
	}
	switch stat {
	case "strength":
		p.strength += amount
	case "dexterity":
		p.dexterity += amount
	case "intelligence":
		p.intelligence += amount
	case "constitution":
		p.constitution += amount
	case "luck":
		p.luck += amount
	case "charisma":
		p.charisma += amount
	default:
		return ErrUnknownStat
	}
	p.unallocatedPoints -= amount
	p.maxHP = p.calculateMaxHP()
	if p.currentHP > p.maxHP {
		p.currentHP = p.maxHP
	}
	p.RecalculateDerivedStats()
	return nil
}

// --- Equipment ---

// EquipWeapon replaces the current weapon. The previous weapon, if any, is
// returned so callers can put it back in an inventory.
func (p *Player) EquipWeapon(w Weapon) (*Weapon, error) {
	if p.level < w.LevelRequirement {
		return nil, ErrLevelTooLow
	}
	prev := p.weapon
	p.weapon = &w
	p.RecalculateDerivedStats()
	return prev, nil
}

// UnequipWeapon removes and returns the equipped weapon, if any.
func (p *Player) UnequipWeapon() *Weapon {
	prev := p.weapon
	p.weapon = nil
	p.RecalculateDerivedStats()
	return prev
}

// EquipArmor places an armor piece in its slot, returning the displaced
// piece if one was there.
func (p *Player) EquipArmor(a ArmorPiece) (*ArmorPiece, error) {
	if p.level < a.LevelRequirement {
		return nil, ErrLevelTooLow
	}
	var prev *ArmorPiece
	if old, ok := p.armor[a.Slot]; ok {
		prev = &old
	}
	p.armor[a.Slot] = a
	p.RecalculateDerivedStats()
	return prev, nil
}

// UnequipArmor removes and returns the armor piece in the given slot.
func (p *Player) UnequipArmor(slot EquipmentSlot) *ArmorPiece {
	old, ok := p.armor[slot]
	if !ok {
		return nil
	}
	delete(p.armor, slot)
	p.RecalculateDerivedStats()
	return &old
}

// RestoreSheet rebuilds a player from persisted sheet values (used when
// loading a saved character). Derived stats are recomputed, never trusted
// from storage.
func RestoreSheet(name, class string, level, experience, gold int, str, dex, intl, con, luck, cha, unallocated int) *Player {
	p := &Player{
		name:              name,
		class:             class,
		level:             level,
		experience:        experience,
		gold:              gold,
		strength:          str,
		dexterity:         dex,
		intelligence:      intl,
		constitution:      con,
		luck:              luck,
		charisma:          cha,
		unallocatedPoints: unallocated,
		armor:             make(map[EquipmentSlot]ArmorPiece),
	}
	if p.level < 1 {
		p.level = 1
	}
	p.maxHP = p.calculateMaxHP()
	p.currentHP = p.maxHP
	p.expToLevel = expRequiredForNext(p.level)
	p.RecalculateDerivedStats()
	return p
}
