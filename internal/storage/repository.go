package storage

import (
	"errors"

	"gorm.io/gorm"

	"github.com/AlonBenyatov/dungeonloop/internal/game"
)

var ErrPlayerNotFound = errors.New("player not found")

// PlayerRecord is the persisted character sheet. Only base values are
// stored; derived combat stats are recomputed on load, never trusted from
// the database.
type PlayerRecord struct {
	gorm.Model
	Name       string `gorm:"uniqueIndex" json:"name"`
	Class      string `json:"class"`
	Level      int    `json:"level"`
	Experience int    `json:"experience"`
	Gold       int    `json:"gold"`

	Strength     int `json:"strength"`
	Dexterity    int `json:"dexterity"`
	Intelligence int `json:"intelligence"`
	Constitution int `json:"constitution"`
	Luck         int `json:"luck"`
	Charisma     int `json:"charisma"`

	UnallocatedStatPoints int `json:"unallocated_stat_points"`
}

func (PlayerRecord) TableName() string { return "player_sheets" }

// LoopResult records one finished battle loop, complete or failed.
type LoopResult struct {
	gorm.Model
	PlayerName        string  `gorm:"index" json:"player_name"`
	Species           string  `json:"species"`
	TotalBattles      int     `json:"total_battles"`
	BattlesWon        int     `json:"battles_won"`
	Outcome           string  `json:"outcome"` // complete | failed
	ExperienceGranted int     `json:"experience_granted"`
	GoldGranted       int     `json:"gold_granted"`
	StatMultiplier    float64 `json:"stat_multiplier"`
}

func (LoopResult) TableName() string { return "loop_results" }

// Repository is the persistence collaborator the combat core calls into.
type Repository interface {
	SavePlayer(p *game.Player) error
	GetPlayerByName(name string) (*game.Player, error)
	RecordLoopResult(r *LoopResult) error
	RecentLoopResults(limit int) ([]LoopResult, error)
}
