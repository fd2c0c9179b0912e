package spawn

import (
	"fmt"
	"strings"

	"github.com/AlonBenyatov/dungeonloop/internal/config"
	"github.com/AlonBenyatov/dungeonloop/internal/constants"
	"github.com/AlonBenyatov/dungeonloop/internal/engine"
	"github.com/AlonBenyatov/dungeonloop/internal/game"
	"github.com/AlonBenyatov/dungeonloop/internal/logging"
)

// Rarity roll thresholds, cumulative over one uniform draw:
// Legendary 0.005%, Rare 0.495%, Uncommon 7%, Common the remainder.
const (
	legendaryThreshold = 0.00005
	rareThreshold      = 0.005
	uncommonThreshold  = 0.075
)

// legendaryStatMultiplier is fixed; only Uncommon and Rare jitter.
const legendaryStatMultiplier = 7.5

// Factory procedurally creates enemies from the configured species catalog.
// All randomness flows through the injected source.
type Factory struct {
	catalog *config.LoadedConfig
	rng     engine.Rand
}

func NewFactory(catalog *config.LoadedConfig, rng engine.Rand) *Factory {
	return &Factory{catalog: catalog, rng: rng}
}

// Create builds a fresh enemy of the requested species. Rarity and a level
// offset in [0,4] are rolled from weighted distributions; attributes, HP and
// rewards follow the species tables. A loop-supplied statMultiplier != 1.0
// boosts the finished enemy on top of rarity scaling. Unknown species fall
// back to the default species with a logged warning.
func (f *Factory) Create(species game.Species, tierStartingLevel int, statMultiplier float64) *game.Enemy {
	sc, ok := f.catalog.BySpecies(species)
	if !ok {
		sc = f.catalog.Default()
		logging.Warn("unknown species requested, falling back to default", logging.Fields{
			constants.LogFieldSpecies: string(species),
			"fallback":                sc.Name,
		})
	}

	rarity := f.rollRarity()
	level := tierStartingLevel + f.rollLevelOffset()
	if level < 1 {
		level = 1
	}

	rarityMult := f.rarityStatMultiplier(sc, rarity)

	bp := game.EnemyBlueprint{
		Name:             displayName(sc, rarity, level),
		Species:          game.Species(sc.Name),
		Level:            level,
		Rarity:           rarity,
		Strength:         scaleAttribute(sc.Strength, level, rarityMult),
		Dexterity:        scaleAttribute(sc.Dexterity, level, rarityMult),
		Intelligence:     scaleAttribute(sc.Intelligence, level, rarityMult),
		Constitution:     scaleAttribute(sc.Constitution, level, rarityMult),
		Luck:             scaleAttribute(sc.Luck, level, rarityMult),
		Charisma:         scaleAttribute(sc.Charisma, level, rarityMult),
		Armor:            sc.BaseArmor,
		BaseAttackDamage: sc.BaseAttackDamage,
		ExperienceReward: sc.BaseExpReward * level,
		GoldReward:       sc.BaseGoldReward,
	}
	if sc.GoldScalesWithLevel {
		bp.GoldReward = sc.BaseGoldReward * level
	}
	bp.MaxHP = bp.Constitution*sc.HPPerConstitution + sc.HPFlat + int(float64(level)*sc.HPPerLevel*rarityMult)

	enemy := game.NewEnemy(bp)

	if statMultiplier != 1.0 {
		enemy.BoostCoreStats(statMultiplier)
	}
	return enemy
}

func (f *Factory) rollRarity() game.Rarity {
	chance := f.rng.Float64()
	switch {
	case chance < legendaryThreshold:
		return game.RarityLegendary
	case chance < rareThreshold:
		return game.RarityRare
	case chance < uncommonThreshold:
		return game.RarityUncommon
	default:
		return game.RarityCommon
	}
}

// rollLevelOffset picks an offset within the species' 5-level tier:
// +0 40%, +1 30%, +2 20%, +3 8%, +4 2%.
func (f *Factory) rollLevelOffset() int {
	roll := f.rng.Float64()
	switch {
	case roll < 0.40:
		return 0
	case roll < 0.70:
		return 1
	case roll < 0.90:
		return 2
	case roll < 0.98:
		return 3
	default:
		return 4
	}
}

func (f *Factory) rarityStatMultiplier(sc config.SpeciesConfig, rarity game.Rarity) float64 {
	switch rarity {
	case game.RarityUncommon:
		return sc.Uncommon.Base + f.rng.Float64()*sc.Uncommon.Jitter
	case game.RarityRare:
		return sc.Rare.Base + f.rng.Float64()*sc.Rare.Jitter
	case game.RarityLegendary:
		return legendaryStatMultiplier
	default:
		return 1.0
	}
}

func scaleAttribute(a config.AttributeScaling, level int, rarityMult float64) int {
	return int(float64(a.Base) + float64(level)*a.Growth*rarityMult)
}

func displayName(sc config.SpeciesConfig, rarity game.Rarity, level int) string {
	return fmt.Sprintf("%s %s, Level %d, %s", rarity.DisplayPrefix(), sc.DisplayName, level, strings.ToUpper(string(rarity)))
}
