package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"

	"github.com/AlonBenyatov/dungeonloop/internal/game"
)

// Env holds runtime overrides parsed from the environment.
type Env struct {
	ConfigPath string `env:"DUNGEONLOOP_CONFIG" envDefault:"./dungeonloop_config.json"`
	DBPath     string `env:"DUNGEONLOOP_DB" envDefault:"./data/dungeonloop.db"`
	// Addr overrides the server.address value from the config file when set.
	Addr string `env:"DUNGEONLOOP_ADDR"`
}

// ParseEnv reads the DUNGEONLOOP_* environment variables.
func ParseEnv() (Env, error) {
	return env.ParseAs[Env]()
}

// AttributeScaling describes how one core attribute grows with enemy level:
// value = base + level*growth, before rarity and loop multipliers.
type AttributeScaling struct {
	Base   int     `json:"base"`
	Growth float64 `json:"growth"`
}

// MultiplierRange is a randomized stat-multiplier range: base plus a uniform
// jitter in [0, jitter).
type MultiplierRange struct {
	Base   float64 `json:"base"`
	Jitter float64 `json:"jitter"`
}

// SpeciesConfig is one entry of the species catalog.
type SpeciesConfig struct {
	Name              string `json:"name"`
	DisplayName       string `json:"display_name"`
	TierStartingLevel int    `json:"tier_starting_level"`

	BaseAttackDamage int `json:"base_attack_damage"`
	BaseArmor        int `json:"base_armor"`
	BaseExpReward    int `json:"base_exp_reward"`
	BaseGoldReward   int `json:"base_gold_reward"`
	// GoldScalesWithLevel multiplies the base gold reward by enemy level.
	// Experience always scales with level.
	GoldScalesWithLevel bool `json:"gold_scales_with_level"`

	Strength     AttributeScaling `json:"strength"`
	Dexterity    AttributeScaling `json:"dexterity"`
	Intelligence AttributeScaling `json:"intelligence"`
	Constitution AttributeScaling `json:"constitution"`
	Luck         AttributeScaling `json:"luck"`
	Charisma     AttributeScaling `json:"charisma"`

	// Max HP = constitution*hp_per_constitution + hp_flat +
	// level*hp_per_level*statMultiplier.
	HPPerConstitution int     `json:"hp_per_constitution"`
	HPFlat            int     `json:"hp_flat"`
	HPPerLevel        float64 `json:"hp_per_level"`

	Uncommon MultiplierRange `json:"uncommon_multiplier"`
	Rare     MultiplierRange `json:"rare_multiplier"`
}

type rawConfig struct {
	SpeciesList []SpeciesConfig `json:"species_list"`
	Server      *struct {
		Address string `json:"address"`
	} `json:"server"`
}

// LoadedConfig contains the species catalog and the server address to bind to.
type LoadedConfig struct {
	Species       []SpeciesConfig
	ServerAddress string
}

// BySpecies returns the catalog entry for the given species, if present.
func (c *LoadedConfig) BySpecies(s game.Species) (SpeciesConfig, bool) {
	for _, sc := range c.Species {
		if strings.EqualFold(sc.Name, string(s)) {
			return sc, true
		}
	}
	return SpeciesConfig{}, false
}

// Default returns the fallback species used when an unknown species is
// requested: the first configured entry.
func (c *LoadedConfig) Default() SpeciesConfig {
	return c.Species[0]
}

// LoadConfig reads the configuration file at path and returns the species
// catalog and server address. It requires a non-empty `species_list`.
func LoadConfig(path string) (*LoadedConfig, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	var rc rawConfig
	if err := json.Unmarshal(b, &rc); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	if len(rc.SpeciesList) == 0 {
		return nil, fmt.Errorf("config file %s: species_list is empty (provide a 'species_list' array)", path)
	}

	nameSet := make(map[string]struct{}, len(rc.SpeciesList))
	for _, sc := range rc.SpeciesList {
		if sc.Name == "" {
			return nil, fmt.Errorf("config file %s: species entry missing 'name'", path)
		}
		ln := strings.ToLower(strings.TrimSpace(sc.Name))
		if _, exists := nameSet[ln]; exists {
			return nil, fmt.Errorf("config file %s: duplicate species name '%s'", path, sc.Name)
		}
		nameSet[ln] = struct{}{}
		if sc.TierStartingLevel < 1 {
			return nil, fmt.Errorf("config file %s: species '%s': tier_starting_level must be >= 1", path, sc.Name)
		}
		if sc.HPPerConstitution <= 0 || sc.HPFlat < 0 || sc.HPPerLevel < 0 {
			return nil, fmt.Errorf("config file %s: species '%s': invalid HP formula constants", path, sc.Name)
		}
		if sc.BaseAttackDamage < 0 || sc.BaseArmor < 0 || sc.BaseExpReward < 0 || sc.BaseGoldReward < 0 {
			return nil, fmt.Errorf("config file %s: species '%s': base values must be non-negative", path, sc.Name)
		}
		if sc.Uncommon.Base < 1.0 || sc.Rare.Base < 1.0 || sc.Uncommon.Jitter < 0 || sc.Rare.Jitter < 0 {
			return nil, fmt.Errorf("config file %s: species '%s': invalid rarity multiplier ranges", path, sc.Name)
		}
	}

	addr := ":8080"
	if rc.Server != nil && rc.Server.Address != "" {
		addr = rc.Server.Address
	}

	return &LoadedConfig{
		Species:       rc.SpeciesList,
		ServerAddress: addr,
	}, nil
}
