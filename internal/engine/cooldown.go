package engine

import (
	"time"

	"github.com/AlonBenyatov/dungeonloop/internal/game"
)

// Handle identifies a combatant inside a Scheduler for the duration of one
// battle. Handles are issued by Register, never by the caller, so cooldown
// lookups cannot depend on names (which may collide) or pointer identity.
type Handle int

// Scheduler is the per-battle timing gate. A combatant may act once per
// cooldown period, where cooldown = 1/attackSpeed seconds. A combatant with
// attack speed <= 0 has an infinite cooldown and simply never acts; that is
// a legitimate degenerate state, not an error.
type Scheduler struct {
	next       Handle
	combatants map[Handle]game.Combatant
	lastAction map[Handle]time.Time
}

func NewScheduler() *Scheduler {
	return &Scheduler{
		next:       1,
		combatants: make(map[Handle]game.Combatant),
		lastAction: make(map[Handle]time.Time),
	}
}

// Register issues a handle for the combatant. The combatant starts with no
// recorded action and is immediately eligible.
func (s *Scheduler) Register(c game.Combatant) Handle {
	h := s.next
	s.next++
	s.combatants[h] = c
	return h
}

// Release removes the combatant from the scheduler when it leaves combat.
func (s *Scheduler) Release(h Handle) {
	delete(s.combatants, h)
	delete(s.lastAction, h)
}

// Reset clears any recorded action time, making the combatant immediately
// eligible. Called for both sides at the start of each battle.
func (s *Scheduler) Reset(h Handle) {
	delete(s.lastAction, h)
}

// Record marks now as the combatant's most recent action.
func (s *Scheduler) Record(h Handle, now time.Time) {
	if _, ok := s.combatants[h]; !ok {
		return
	}
	s.lastAction[h] = now
}

// CanAct reports whether the combatant's cooldown has elapsed at now.
func (s *Scheduler) CanAct(h Handle, now time.Time) bool {
	c, ok := s.combatants[h]
	if !ok {
		return false
	}
	speed := c.AttackSpeed()
	if speed <= 0 {
		return false
	}
	last, acted := s.lastAction[h]
	if !acted {
		return true
	}
	cooldown := time.Duration(float64(time.Second) / speed)
	return now.Sub(last) >= cooldown
}
