package game

import "testing"

func TestNewPlayerDefaults(t *testing.T) {
	p := NewPlayer("hero")
	if p.Level() != 1 {
		t.Fatalf("new player level = %d, want 1", p.Level())
	}
	for name, got := range map[string]int{
		"strength":     p.Strength(),
		"dexterity":    p.Dexterity(),
		"intelligence": p.Intelligence(),
		"constitution": p.Constitution(),
		"luck":         p.Luck(),
		"charisma":     p.Charisma(),
	} {
		if got != 5 {
			t.Fatalf("new player %s = %d, want 5", name, got)
		}
	}
	// 50 + 5*5 con + 1*10 level
	if p.MaxHP() != 85 {
		t.Fatalf("new player max HP = %d, want 85", p.MaxHP())
	}
	if p.CurrentHP() != p.MaxHP() {
		t.Fatalf("new player should start at full HP")
	}
	// 14 + 600 - 415
	if p.ExpToNextLevel() != 199 {
		t.Fatalf("exp to level 2 = %d, want 199", p.ExpToNextLevel())
	}
	// base weapon 8 + 5*0.4 strength
	if p.AttackDamage() != 10 {
		t.Fatalf("new player attack damage = %d, want 10", p.AttackDamage())
	}
	// base armor with nothing equipped
	if p.Armor() != 2 {
		t.Fatalf("new player armor = %d, want 2", p.Armor())
	}
}

func TestGainExperienceLevelsUp(t *testing.T) {
	p := NewPlayer("hero")
	p.TakeDamage(30)

	p.GainExperience(199)
	if p.Level() != 2 {
		t.Fatalf("level = %d, want 2", p.Level())
	}
	if p.Experience() != 0 {
		t.Fatalf("leftover experience = %d, want 0", p.Experience())
	}
	// 14*4 + 1200 - 415
	if p.ExpToNextLevel() != 841 {
		t.Fatalf("exp to level 3 = %d, want 841", p.ExpToNextLevel())
	}
	if p.UnallocatedStatPoints() != 10 {
		t.Fatalf("stat points = %d, want 10", p.UnallocatedStatPoints())
	}
	if p.CurrentHP() != p.MaxHP() {
		t.Fatalf("leveling up should heal to full")
	}
}

func TestGainExperienceMultiLevel(t *testing.T) {
	p := NewPlayer("hero")
	// Enough for level 2 (199) and level 3 (841) with 60 left over.
	p.GainExperience(1100)
	if p.Level() != 3 {
		t.Fatalf("level = %d, want 3", p.Level())
	}
	if p.Experience() != 60 {
		t.Fatalf("leftover experience = %d, want 60", p.Experience())
	}
	if p.UnallocatedStatPoints() != 20 {
		t.Fatalf("stat points = %d, want 20", p.UnallocatedStatPoints())
	}
}

func TestAllocateStatPoints(t *testing.T) {
	p := NewPlayer("hero")
	p.GainExperience(199)

	if err := p.AllocateStatPoints("strength", 10); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Strength() != 15 {
		t.Fatalf("strength = %d, want 15", p.Strength())
	}
	// 8 + 15*0.4 = 14
	if p.AttackDamage() != 14 {
		t.Fatalf("attack damage = %d, want 14", p.AttackDamage())
	}
	if err := p.AllocateStatPoints("luck", 1); err != ErrNotEnoughPoints {
		t.Fatalf("expected ErrNotEnoughPoints, got %v", err)
	}
	if err := p.AllocateStatPoints("moxie", 0); err != ErrNegativeAmount {
		t.Fatalf("expected ErrNegativeAmount for zero amount, got %v", err)
	}
	p.GainExperience(841)
	if err := p.AllocateStatPoints("moxie", 1); err != ErrUnknownStat {
		t.Fatalf("expected ErrUnknownStat, got %v", err)
	}
}

func TestEquipmentAffectsDerivedStats(t *testing.T) {
	p := NewPlayer("hero")

	prev, err := p.EquipWeapon(Weapon{ItemName: "Short Sword", Damage: 4, LevelRequirement: 1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if prev != nil {
		t.Fatalf("no weapon should have been displaced")
	}
	if p.AttackDamage() != 14 {
		t.Fatalf("attack damage with weapon = %d, want 14", p.AttackDamage())
	}

	if _, err := p.EquipWeapon(Weapon{ItemName: "Greatsword", Damage: 20, LevelRequirement: 10}); err != ErrLevelTooLow {
		t.Fatalf("expected ErrLevelTooLow, got %v", err)
	}

	if _, err := p.EquipArmor(ArmorPiece{ItemName: "Leather Cap", Defense: 3, Slot: SlotHead, LevelRequirement: 1}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Armor() != 5 {
		t.Fatalf("armor = %d, want 5", p.Armor())
	}

	removed := p.UnequipArmor(SlotHead)
	if removed == nil || removed.ItemName != "Leather Cap" {
		t.Fatalf("expected the cap back, got %+v", removed)
	}
	if p.Armor() != 2 {
		t.Fatalf("armor after unequip = %d, want 2", p.Armor())
	}

	w := p.UnequipWeapon()
	if w == nil || w.ItemName != "Short Sword" {
		t.Fatalf("expected the sword back, got %+v", w)
	}
	if p.AttackDamage() != 10 {
		t.Fatalf("attack damage after unequip = %d, want 10", p.AttackDamage())
	}
}

func TestTakeDamageClampsAtZero(t *testing.T) {
	p := NewPlayer("hero")
	p.TakeDamage(10000)
	if p.CurrentHP() != 0 {
		t.Fatalf("hp = %d, want 0", p.CurrentHP())
	}
	if p.IsAlive() {
		t.Fatalf("player at 0 HP must not be alive")
	}
	p.HealToFull()
	if p.CurrentHP() != p.MaxHP() {
		t.Fatalf("HealToFull should restore max HP")
	}
}

func TestRestoreSheetRecomputesDerived(t *testing.T) {
	p := RestoreSheet("hero", "Adventurer", 3, 60, 250, 15, 5, 5, 5, 5, 5, 10)
	if p.Level() != 3 || p.Gold() != 250 || p.Experience() != 60 {
		t.Fatalf("restored sheet mismatch: level=%d gold=%d exp=%d", p.Level(), p.Gold(), p.Experience())
	}
	// 50 + 5*5 + 3*10
	if p.MaxHP() != 105 {
		t.Fatalf("restored max HP = %d, want 105", p.MaxHP())
	}
	// 8 + 15*0.4
	if p.AttackDamage() != 14 {
		t.Fatalf("restored attack damage = %d, want 14", p.AttackDamage())
	}
	// 14*9 + 1800 - 415
	if p.ExpToNextLevel() != 1511 {
		t.Fatalf("restored exp to next = %d, want 1511", p.ExpToNextLevel())
	}
}
