package storage

import (
	"testing"
	"time"

	"github.com/AlonBenyatov/dungeonloop/internal/game"
)

type notifyRepo struct {
	saved chan *game.Player
}

func (r *notifyRepo) SavePlayer(p *game.Player) error {
	r.saved <- p
	return nil
}

func (r *notifyRepo) GetPlayerByName(name string) (*game.Player, error) {
	return nil, ErrPlayerNotFound
}

func (r *notifyRepo) RecordLoopResult(res *LoopResult) error { return nil }

func (r *notifyRepo) RecentLoopResults(limit int) ([]LoopResult, error) { return nil, nil }

func TestRequestSavePersistsInBackground(t *testing.T) {
	repo := &notifyRepo{saved: make(chan *game.Player, 1)}
	s := NewSaver(repo)

	p := game.NewPlayer("hero")
	s.RequestSave(p)

	select {
	case got := <-repo.saved:
		if got != p {
			t.Fatalf("saved a different player")
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("save never reached the repository")
	}
}

func TestRequestSaveIgnoresNilPlayer(t *testing.T) {
	repo := &notifyRepo{saved: make(chan *game.Player, 1)}
	s := NewSaver(repo)

	s.RequestSave(nil)

	select {
	case <-repo.saved:
		t.Fatalf("nil player must not be saved")
	case <-time.After(50 * time.Millisecond):
	}
}
