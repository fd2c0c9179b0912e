package engine

import (
	"context"
	"errors"
	"time"

	"github.com/AlonBenyatov/dungeonloop/internal/game"
)

// DefaultTickInterval is the wall-clock interval between battle ticks.
const DefaultTickInterval = 100 * time.Millisecond

// ErrStalledBattle is returned when both combatants have a non-positive
// attack speed: neither side could ever act, so the battle would never end.
var ErrStalledBattle = errors.New("both combatants have non-positive attack speed")

// EventKind classifies battle events emitted to the listener.
type EventKind string

const (
	EventAttack     EventKind = "attack"
	EventBattleOver EventKind = "battle_over"
)

// Event describes one observable step of a battle.
type Event struct {
	Kind       EventKind `json:"kind"`
	Attacker   string    `json:"attacker,omitempty"`
	Defender   string    `json:"defender,omitempty"`
	Outcome    Outcome   `json:"outcome,omitempty"`
	DefenderHP int       `json:"defender_hp,omitempty"`
	Winner     string    `json:"winner,omitempty"`
	PlayerWon  bool      `json:"player_won,omitempty"`
}

// Listener receives battle events. It runs on the battle's tick goroutine,
// so it must not block.
type Listener func(Event)

// Battle owns one player-versus-enemy fight. It has exclusive, non-reentrant
// ownership of both combatants' mutable state from creation until it reports
// a winner; no two battles run concurrently over the same combatants.
type Battle struct {
	player game.Combatant
	enemy  game.Combatant

	sched        *Scheduler
	playerHandle Handle
	enemyHandle  Handle

	rng      Rand
	listener Listener

	over      bool
	playerWon bool
}

// NewBattle prepares a battle between player and enemy. It rejects the
// configuration error where neither side can ever act; a single stalled side
// is fine (the other wins by attrition). Both cooldowns start cleared so
// either side may act on the first tick.
func NewBattle(player, enemy game.Combatant, rng Rand, listener Listener) (*Battle, error) {
	if player.AttackSpeed() <= 0 && enemy.AttackSpeed() <= 0 {
		return nil, ErrStalledBattle
	}
	b := &Battle{
		player:   player,
		enemy:    enemy,
		sched:    NewScheduler(),
		rng:      rng,
		listener: listener,
	}
	b.playerHandle = b.sched.Register(player)
	b.enemyHandle = b.sched.Register(enemy)
	b.sched.Reset(b.playerHandle)
	b.sched.Reset(b.enemyHandle)
	return b, nil
}

// Over reports whether the battle has finished.
func (b *Battle) Over() bool { return b.over }

// PlayerWon reports the result; meaningful only once Over returns true.
func (b *Battle) PlayerWon() bool { return b.playerWon }

// Tick advances the battle one step at the given time: the player acts first
// if ready, then the enemy, then terminal conditions are checked. Returns
// true once the battle is over.
func (b *Battle) Tick(now time.Time) bool {
	if b.over {
		return true
	}

	if b.player.IsAlive() && b.enemy.IsAlive() && b.sched.CanAct(b.playerHandle, now) {
		b.attack(b.player, b.enemy, b.playerHandle, now)
	}
	if b.player.IsAlive() && b.enemy.IsAlive() && b.sched.CanAct(b.enemyHandle, now) {
		b.attack(b.enemy, b.player, b.enemyHandle, now)
	}

	switch {
	case !b.enemy.IsAlive():
		b.finish(true)
	case !b.player.IsAlive():
		b.finish(false)
	}
	return b.over
}

func (b *Battle) attack(attacker, defender game.Combatant, h Handle, now time.Time) {
	out := ResolveAttack(attacker, defender, b.rng)
	b.sched.Record(h, now)
	b.emit(Event{
		Kind:       EventAttack,
		Attacker:   attacker.Name(),
		Defender:   defender.Name(),
		Outcome:    out,
		DefenderHP: defender.CurrentHP(),
	})
}

func (b *Battle) finish(playerWon bool) {
	b.over = true
	b.playerWon = playerWon
	winner := b.player.Name()
	if !playerWon {
		winner = b.enemy.Name()
	}
	b.sched.Release(b.playerHandle)
	b.sched.Release(b.enemyHandle)
	b.emit(Event{Kind: EventBattleOver, Winner: winner, PlayerWon: playerWon})
}

func (b *Battle) emit(ev Event) {
	if b.listener != nil {
		b.listener(ev)
	}
}

// Run drives the battle with real wall-clock ticks at the given interval
// until one side is defeated, returning whether the player won. The context
// bounds the ticking, not the combat rules; a cancelled context abandons the
// battle without a result.
func (b *Battle) Run(ctx context.Context, interval time.Duration) (bool, error) {
	if interval <= 0 {
		interval = DefaultTickInterval
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return false, ctx.Err()
		case now := <-ticker.C:
			if b.Tick(now) {
				return b.playerWon, nil
			}
		}
	}
}
