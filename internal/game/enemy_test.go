package game

import "testing"

func slimeBlueprint() EnemyBlueprint {
	return EnemyBlueprint{
		Name:             "Blue Slime, Level 2, COMMON",
		Species:          "slime",
		Level:            2,
		Rarity:           RarityCommon,
		Strength:         5,
		Dexterity:        3,
		Intelligence:     1,
		Constitution:     6,
		Luck:             2,
		Charisma:         1,
		MaxHP:            40,
		Armor:            3,
		BaseAttackDamage: 5,
		GoldReward:       7,
		ExperienceReward: 50,
	}
}

func TestNewEnemyDerivedStats(t *testing.T) {
	e := NewEnemy(slimeBlueprint())
	if e.CurrentHP() != 40 || e.MaxHP() != 40 {
		t.Fatalf("enemy should start at full HP, got %d/%d", e.CurrentHP(), e.MaxHP())
	}
	// 5 base + 5*0.4 strength
	if e.AttackDamage() != 7 {
		t.Fatalf("attack damage = %d, want 7", e.AttackDamage())
	}
	// 0.5 + 3*0.005
	if e.AttackSpeed() != 0.515 {
		t.Fatalf("attack speed = %v, want 0.515", e.AttackSpeed())
	}
}

func TestBoostCoreStats(t *testing.T) {
	e := NewEnemy(slimeBlueprint())
	e.TakeDamage(10)
	e.BoostCoreStats(2.0)

	if e.Strength() != 10 || e.Constitution() != 12 {
		t.Fatalf("attributes should double, got str=%d con=%d", e.Strength(), e.Constitution())
	}
	if e.MaxHP() != 80 || e.CurrentHP() != 80 {
		t.Fatalf("boost should double max HP and reheal, got %d/%d", e.CurrentHP(), e.MaxHP())
	}
	if e.Armor() != 6 {
		t.Fatalf("armor = %d, want 6", e.Armor())
	}
	// derived stats must follow the boosted attributes: 5 + 10*0.4
	if e.AttackDamage() != 9 {
		t.Fatalf("boosted attack damage = %d, want 9", e.AttackDamage())
	}
}

func TestScaledRewardsApplyRarityMultiplier(t *testing.T) {
	bp := slimeBlueprint()
	bp.Rarity = RarityRare
	e := NewEnemy(bp)

	if e.GoldReward() != 7 || e.ExperienceReward() != 50 {
		t.Fatalf("base rewards must stay unscaled, got gold=%d exp=%d", e.GoldReward(), e.ExperienceReward())
	}
	if e.ScaledGoldReward() != 210 {
		t.Fatalf("scaled gold = %d, want 210", e.ScaledGoldReward())
	}
	if e.ScaledExperienceReward() != 1500 {
		t.Fatalf("scaled exp = %d, want 1500", e.ScaledExperienceReward())
	}
}

func TestRarityRewardMultipliers(t *testing.T) {
	cases := []struct {
		rarity Rarity
		mult   float64
		prefix string
	}{
		{RarityCommon, 1, "Blue"},
		{RarityUncommon, 5, "Green"},
		{RarityRare, 30, "Red"},
		{RarityLegendary, 1000, "Yellow"},
	}
	for _, c := range cases {
		if got := c.rarity.RewardMultiplier(); got != c.mult {
			t.Fatalf("%s multiplier = %v, want %v", c.rarity, got, c.mult)
		}
		if got := c.rarity.DisplayPrefix(); got != c.prefix {
			t.Fatalf("%s prefix = %s, want %s", c.rarity, got, c.prefix)
		}
	}
}
