package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/AlonBenyatov/dungeonloop/internal/constants"
	"github.com/AlonBenyatov/dungeonloop/internal/engine"
	"github.com/AlonBenyatov/dungeonloop/internal/game"
	"github.com/AlonBenyatov/dungeonloop/internal/logging"
	"github.com/AlonBenyatov/dungeonloop/internal/spawn"
	"github.com/AlonBenyatov/dungeonloop/internal/storage"
)

const (
	MinBattlesPerLoop = 1
	MaxBattlesPerLoop = 100
)

var (
	ErrInvalidBattleCount = errors.New("battle count must be between 1 and 100")
	ErrNoPlayer           = errors.New("no player loaded")
	ErrPlayerDefeated     = errors.New("player is defeated")
	ErrLoopAlreadyRunning = errors.New("a battle loop is already running")
	ErrNoLoopRunning      = errors.New("no battle loop is running")
)

// LoopState is the orchestrator's lifecycle state.
type LoopState string

const (
	LoopIdle    LoopState = "idle"
	LoopRunning LoopState = "running"
)

// LoopOutcome reports how a finished loop ended.
type LoopOutcome string

const (
	OutcomeComplete LoopOutcome = "complete"
	OutcomeFailed   LoopOutcome = "failed"
)

// Saver is the fire-and-forget persistence hook invoked after reward grants.
type Saver interface {
	RequestSave(p *game.Player)
}

// ResultRecorder stores finished-loop rows. Failures are logged, not
// propagated: the in-memory player state is authoritative.
type ResultRecorder interface {
	RecordLoopResult(r *storage.LoopResult) error
}

// LoopService orchestrates chained battle loops: it generates an enemy per
// battle from fixed loop parameters, accumulates rewards, and pays out
// all-or-nothing. A single loss voids everything accumulated so far.
type LoopService struct {
	mu sync.Mutex

	player   *game.Player
	factory  *spawn.Factory
	rng      engine.Rand
	saver    Saver
	recorder ResultRecorder
	listener engine.Listener

	tickInterval time.Duration

	state             LoopState
	totalBattles      int
	battlesWon        int
	accumulatedExp    int
	accumulatedGold   int
	species           game.Species
	tierStartingLevel int
	statMultiplier    float64
	currentEnemy      *game.Enemy
}

// NewLoopService wires the orchestrator. listener may be nil; when set it
// receives every battle event (used by the websocket stream).
func NewLoopService(factory *spawn.Factory, rng engine.Rand, saver Saver, recorder ResultRecorder, listener engine.Listener) *LoopService {
	s := &LoopService{
		factory:      factory,
		rng:          rng,
		saver:        saver,
		recorder:     recorder,
		listener:     listener,
		tickInterval: engine.DefaultTickInterval,
		state:        LoopIdle,
	}
	s.statMultiplier = 1.0
	return s
}

// SetTickInterval overrides the wall-clock battle tick interval (tests use a
// short one).
func (s *LoopService) SetTickInterval(d time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if d > 0 {
		s.tickInterval = d
	}
}

// SetPlayer installs the active player character.
func (s *LoopService) SetPlayer(p *game.Player) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.player = p
}

// Player returns the active player, or nil.
func (s *LoopService) Player() *game.Player {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.player
}

// StartLoop validates the request and begins a loop of n battles against
// freshly generated enemies of the given species. Validation failures leave
// no state behind.
func (s *LoopService) StartLoop(n int, species game.Species, tierStartingLevel int, statMultiplier float64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if n < MinBattlesPerLoop || n > MaxBattlesPerLoop {
		return ErrInvalidBattleCount
	}
	if s.player == nil {
		return ErrNoPlayer
	}
	if !s.player.IsAlive() {
		return ErrPlayerDefeated
	}
	if s.state == LoopRunning {
		return ErrLoopAlreadyRunning
	}

	s.resetLoopStateLocked()
	s.state = LoopRunning
	s.totalBattles = n
	s.species = species
	s.tierStartingLevel = tierStartingLevel
	s.statMultiplier = statMultiplier

	logging.Info("battle loop started", logging.Fields{
		constants.LogFieldPlayer:  s.player.Name(),
		constants.LogFieldBattles: n,
		constants.LogFieldSpecies: string(species),
	})

	s.spawnNextEnemyLocked()
	return nil
}

func (s *LoopService) resetLoopStateLocked() {
	s.totalBattles = 0
	s.battlesWon = 0
	s.accumulatedExp = 0
	s.accumulatedGold = 0
	s.species = ""
	s.tierStartingLevel = 0
	s.statMultiplier = 1.0
	s.currentEnemy = nil
	s.state = LoopIdle
}

func (s *LoopService) spawnNextEnemyLocked() {
	s.currentEnemy = s.factory.Create(s.species, s.tierStartingLevel, s.statMultiplier)
}

// CurrentEnemy returns the enemy for the battle in progress, or nil.
func (s *LoopService) CurrentEnemy() *game.Enemy {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.currentEnemy
}

// State returns the orchestrator state.
func (s *LoopService) State() LoopState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Status returns a display string for the current loop.
func (s *LoopService) Status() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.statusLocked()
}

func (s *LoopService) statusLocked() string {
	if s.state != LoopRunning {
		return "No Battle Loop Active"
	}
	return fmt.Sprintf("Battle Loop: %d/%d", s.battlesWon, s.totalBattles)
}

// OnBattleResult advances the loop after a battle concludes. On a win before
// the last battle it accumulates the enemy's scaled reward, heals the player
// and spawns the next enemy. Winning the final battle grants everything
// accumulated; any loss voids it all. Returns a status string the caller may
// display.
func (s *LoopService) OnBattleResult(playerWon bool) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != LoopRunning {
		return s.statusLocked(), ErrNoLoopRunning
	}

	if !playerWon {
		return s.handleLoopLossLocked(), nil
	}

	s.battlesWon++
	s.accumulatedExp += s.currentEnemy.ScaledExperienceReward()
	s.accumulatedGold += s.currentEnemy.ScaledGoldReward()

	if s.battlesWon < s.totalBattles {
		s.player.HealToFull()
		s.spawnNextEnemyLocked()
		return s.statusLocked(), nil
	}
	return s.handleLoopCompletionLocked(), nil
}

func (s *LoopService) handleLoopCompletionLocked() string {
	exp, gold := s.accumulatedExp, s.accumulatedGold
	s.player.GainExperience(exp)
	s.player.AddGold(gold)
	s.player.HealToFull()

	logging.Info("battle loop completed", logging.Fields{
		constants.LogFieldPlayer:  s.player.Name(),
		constants.LogFieldBattles: s.totalBattles,
		constants.LogFieldExp:     exp,
		constants.LogFieldGold:    gold,
	})

	s.saver.RequestSave(s.player)
	s.recordResultLocked(OutcomeComplete, exp, gold)

	status := fmt.Sprintf("Battle Loop complete: %d/%d — gained %d XP and %d gold", s.totalBattles, s.totalBattles, exp, gold)
	s.resetLoopStateLocked()
	return status
}

func (s *LoopService) handleLoopLossLocked() string {
	failedAt := s.battlesWon + 1
	total := s.totalBattles

	// All accumulated rewards are void; the player keeps nothing from this
	// loop but is healed rather than punished further.
	s.player.HealToFull()

	logging.Info("battle loop failed", logging.Fields{
		constants.LogFieldPlayer:  s.player.Name(),
		constants.LogFieldBattle:  failedAt,
		constants.LogFieldBattles: total,
	})

	s.recordResultLocked(OutcomeFailed, 0, 0)

	status := fmt.Sprintf("Battle Loop failed at battle %d of %d — no rewards earned", failedAt, total)
	s.resetLoopStateLocked()
	return status
}

func (s *LoopService) recordResultLocked(outcome LoopOutcome, exp, gold int) {
	if s.recorder == nil {
		return
	}
	res := &storage.LoopResult{
		PlayerName:        s.player.Name(),
		Species:           string(s.species),
		TotalBattles:      s.totalBattles,
		BattlesWon:        s.battlesWon,
		Outcome:           string(outcome),
		ExperienceGranted: exp,
		GoldGranted:       gold,
		StatMultiplier:    s.statMultiplier,
	}
	if err := s.recorder.RecordLoopResult(res); err != nil {
		logging.Warn("failed to record loop result", logging.Fields{
			constants.LogFieldPlayer:  s.player.Name(),
			constants.LogFieldOutcome: string(outcome),
			"error":                   err.Error(),
		})
	}
}

// RunBattle drives the battle in progress to completion under the tick
// model, then feeds the result back through OnBattleResult. It blocks until
// the battle ends or ctx is cancelled.
func (s *LoopService) RunBattle(ctx context.Context) (bool, string, error) {
	s.mu.Lock()
	if s.state != LoopRunning || s.currentEnemy == nil {
		s.mu.Unlock()
		return false, s.statusLocked(), ErrNoLoopRunning
	}
	player := s.player
	enemy := s.currentEnemy
	interval := s.tickInterval
	listener := s.listener
	s.mu.Unlock()

	battle, err := engine.NewBattle(player, enemy, s.rng, listener)
	if err != nil {
		return false, s.Status(), err
	}
	playerWon, err := battle.Run(ctx, interval)
	if err != nil {
		return false, s.Status(), err
	}
	status, err := s.OnBattleResult(playerWon)
	return playerWon, status, err
}

// RunLoop runs every remaining battle of the active loop to completion and
// returns the loop outcome. Intended to be called once right after a
// successful StartLoop.
func (s *LoopService) RunLoop(ctx context.Context) (LoopOutcome, string, error) {
	for {
		playerWon, status, err := s.RunBattle(ctx)
		if err != nil {
			return OutcomeFailed, status, err
		}
		if !playerWon {
			return OutcomeFailed, status, nil
		}
		if s.State() == LoopIdle {
			return OutcomeComplete, status, nil
		}
	}
}
