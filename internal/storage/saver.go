package storage

import (
	"golang.org/x/sync/singleflight"

	"github.com/AlonBenyatov/dungeonloop/internal/constants"
	"github.com/AlonBenyatov/dungeonloop/internal/game"
	"github.com/AlonBenyatov/dungeonloop/internal/logging"
)

// Saver persists player sheets in the background. Reward grants call
// RequestSave fire-and-forget: the in-memory player remains the source of
// truth and a failed save is a logged warning, never a rollback.
type Saver struct {
	repo  Repository
	group singleflight.Group
}

func NewSaver(repo Repository) *Saver {
	return &Saver{repo: repo}
}

// RequestSave schedules a save of the player's sheet. Concurrent requests
// for the same player name coalesce into a single write.
func (s *Saver) RequestSave(p *game.Player) {
	if p == nil {
		return
	}
	name := p.Name()
	go func() {
		_, err, _ := s.group.Do(name, func() (interface{}, error) {
			return nil, s.repo.SavePlayer(p)
		})
		if err != nil {
			logging.Warn("background player save failed", logging.Fields{
				constants.LogFieldPlayer: name,
				"error":                  err.Error(),
			})
		}
	}()
}
