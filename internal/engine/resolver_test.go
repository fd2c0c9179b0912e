package engine

import (
	"testing"

	"github.com/AlonBenyatov/dungeonloop/internal/game"
)

// fakeCombatant is a minimal Combatant with fixed derived stats.
type fakeCombatant struct {
	name        string
	level       int
	hp, maxHP   int
	str, dex    int
	intl, con   int
	luck, cha   int
	armor       int
	attackDmg   int
	attackSpeed float64
}

func (f *fakeCombatant) Name() string   { return f.name }
func (f *fakeCombatant) Level() int     { return f.level }
func (f *fakeCombatant) CurrentHP() int { return f.hp }
func (f *fakeCombatant) MaxHP() int     { return f.maxHP }
func (f *fakeCombatant) TakeDamage(damage int) {
	f.hp -= damage
	if f.hp < 0 {
		f.hp = 0
	}
}
func (f *fakeCombatant) IsAlive() bool             { return f.hp > 0 }
func (f *fakeCombatant) Strength() int             { return f.str }
func (f *fakeCombatant) Dexterity() int            { return f.dex }
func (f *fakeCombatant) Intelligence() int         { return f.intl }
func (f *fakeCombatant) Constitution() int         { return f.con }
func (f *fakeCombatant) Luck() int                 { return f.luck }
func (f *fakeCombatant) Charisma() int             { return f.cha }
func (f *fakeCombatant) Armor() int                { return f.armor }
func (f *fakeCombatant) AttackDamage() int         { return f.attackDmg }
func (f *fakeCombatant) Dodge() float64            { return 0 }
func (f *fakeCombatant) Parry() float64            { return 0 }
func (f *fakeCombatant) AttackSpeed() float64      { return f.attackSpeed }
func (f *fakeCombatant) CritChance() float64       { return 0 }
func (f *fakeCombatant) CritDamage() float64       { return 0 }
func (f *fakeCombatant) RecalculateDerivedStats()  {}

var _ game.Combatant = (*fakeCombatant)(nil)

// seqRand replays a scripted sequence of uniform draws.
type seqRand struct {
	vals []float64
	i    int
}

func (r *seqRand) Float64() float64 {
	if r.i >= len(r.vals) {
		panic("seqRand exhausted: resolver consumed more draws than scripted")
	}
	v := r.vals[r.i]
	r.i++
	return v
}

func newAttacker() *fakeCombatant {
	return &fakeCombatant{name: "attacker", hp: 100, maxHP: 100, attackDmg: 10, attackSpeed: 1}
}

func newDefender() *fakeCombatant {
	return &fakeCombatant{name: "defender", hp: 100, maxHP: 100, attackDmg: 10, attackSpeed: 1}
}

func TestResolveAttack_Miss(t *testing.T) {
	att, def := newAttacker(), newDefender()
	// HitChance(0,0) = 0.74; a draw at or above it misses.
	out := ResolveAttack(att, def, &seqRand{vals: []float64{0.9}})
	if out.Kind != OutcomeMiss {
		t.Fatalf("expected miss, got %s", out.Kind)
	}
	if out.Damage != 0 || def.hp != 100 {
		t.Fatalf("a miss must deal no damage, got damage=%d hp=%d", out.Damage, def.hp)
	}
}

func TestResolveAttack_Dodge(t *testing.T) {
	att, def := newAttacker(), newDefender()
	// hit lands, then a draw below DodgeChance(0)=0.01 dodges.
	out := ResolveAttack(att, def, &seqRand{vals: []float64{0.0, 0.005}})
	if out.Kind != OutcomeDodge {
		t.Fatalf("expected dodge, got %s", out.Kind)
	}
	if def.hp != 100 {
		t.Fatalf("a dodge must deal no damage, hp=%d", def.hp)
	}
}

func TestResolveAttack_ParrySkipsCritAndArmor(t *testing.T) {
	att, def := newAttacker(), newDefender()
	def.armor = 1000 // would mitigate heavily if armor applied
	rng := &seqRand{vals: []float64{0.0, 0.5, 0.005}}
	out := ResolveAttack(att, def, rng)
	if out.Kind != OutcomeParry {
		t.Fatalf("expected parry, got %s", out.Kind)
	}
	// 40% of 10 base damage, no crit draw, no armor mitigation.
	if out.Damage != 4 {
		t.Fatalf("parry damage = %d, want 4", out.Damage)
	}
	if def.hp != 96 {
		t.Fatalf("defender hp = %d, want 96", def.hp)
	}
	if rng.i != 3 {
		t.Fatalf("parry must consume exactly 3 draws, consumed %d", rng.i)
	}
}

func TestResolveAttack_Crit(t *testing.T) {
	att, def := newAttacker(), newDefender()
	out := ResolveAttack(att, def, &seqRand{vals: []float64{0.0, 0.5, 0.5, 0.01}})
	if out.Kind != OutcomeCrit {
		t.Fatalf("expected crit, got %s", out.Kind)
	}
	// 10 * 2.0 crit multiplier, zero armor.
	if out.Damage != 20 {
		t.Fatalf("crit damage = %d, want 20", out.Damage)
	}
	if def.hp != 80 {
		t.Fatalf("defender hp = %d, want 80", def.hp)
	}
}

func TestResolveAttack_HitWithArmor(t *testing.T) {
	att, def := newAttacker(), newDefender()
	def.armor = 50 // 30% mitigation
	out := ResolveAttack(att, def, &seqRand{vals: []float64{0.0, 0.5, 0.5, 0.9}})
	if out.Kind != OutcomeHit {
		t.Fatalf("expected hit, got %s", out.Kind)
	}
	if out.Damage != 7 {
		t.Fatalf("mitigated damage = %d, want 7", out.Damage)
	}
	if def.hp != 93 {
		t.Fatalf("defender hp = %d, want 93", def.hp)
	}
}

func TestResolveAttack_DamageAppliedOnce(t *testing.T) {
	att, def := newAttacker(), newDefender()
	for i := 0; i < 5; i++ {
		ResolveAttack(att, def, &seqRand{vals: []float64{0.0, 0.5, 0.5, 0.9}})
	}
	if def.hp != 50 {
		t.Fatalf("5 plain hits of 10 should leave hp=50, got %d", def.hp)
	}
}
