package game

// Rarity is an enemy's rarity tier. It influences the stat multiplier rolled
// at creation time and the reward multiplier applied at grant time.
type Rarity string

const (
	RarityCommon    Rarity = "common"
	RarityUncommon  Rarity = "uncommon"
	RarityRare      Rarity = "rare"
	RarityLegendary Rarity = "legendary"
)

// RewardMultiplier returns the factor applied to an enemy's base gold and
// experience rewards when they are granted. The table is intentionally much
// steeper than the stat multipliers.
func (r Rarity) RewardMultiplier() float64 {
	switch r {
	case RarityUncommon:
		return 5.0
	case RarityRare:
		return 30.0
	case RarityLegendary:
		return 1000.0
	default:
		return 1.0
	}
}

// DisplayPrefix returns the color prefix used in generated enemy names
// ("Blue Slime", "Yellow Wolf", ...).
func (r Rarity) DisplayPrefix() string {
	switch r {
	case RarityCommon:
		return "Blue"
	case RarityUncommon:
		return "Green"
	case RarityRare:
		return "Red"
	case RarityLegendary:
		return "Yellow"
	default:
		return "Generic"
	}
}
