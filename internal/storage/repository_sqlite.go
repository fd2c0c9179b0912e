package storage

import (
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/AlonBenyatov/dungeonloop/internal/game"
)

type sqliteRepository struct {
	db *gorm.DB
}

func NewSQLiteRepository(db *gorm.DB) Repository {
	return &sqliteRepository{db: db}
}

// SavePlayer upserts the player's sheet keyed by name.
func (r *sqliteRepository) SavePlayer(p *game.Player) error {
	rec := PlayerRecord{
		Name:                  p.Name(),
		Class:                 p.Class(),
		Level:                 p.Level(),
		Experience:            p.Experience(),
		Gold:                  p.Gold(),
		Strength:              p.Strength(),
		Dexterity:             p.Dexterity(),
		Intelligence:          p.Intelligence(),
		Constitution:          p.Constitution(),
		Luck:                  p.Luck(),
		Charisma:              p.Charisma(),
		UnallocatedStatPoints: p.UnallocatedStatPoints(),
	}
	return r.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "name"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"class", "level", "experience", "gold",
			"strength", "dexterity", "intelligence", "constitution", "luck", "charisma",
			"unallocated_stat_points", "updated_at",
		}),
	}).Create(&rec).Error
}

func (r *sqliteRepository) GetPlayerByName(name string) (*game.Player, error) {
	var rec PlayerRecord
	err := r.db.Where("name = ?", name).First(&rec).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPlayerNotFound
		}
		return nil, err
	}
	p := game.RestoreSheet(
		rec.Name, rec.Class,
		rec.Level, rec.Experience, rec.Gold,
		rec.Strength, rec.Dexterity, rec.Intelligence, rec.Constitution, rec.Luck, rec.Charisma,
		rec.UnallocatedStatPoints,
	)
	return p, nil
}

func (r *sqliteRepository) RecordLoopResult(res *LoopResult) error {
	return r.db.Create(res).Error
}

func (r *sqliteRepository) RecentLoopResults(limit int) ([]LoopResult, error) {
	if limit <= 0 {
		limit = 20
	}
	var out []LoopResult
	if err := r.db.Order("created_at DESC").Limit(limit).Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}
