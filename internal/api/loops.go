package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/AlonBenyatov/dungeonloop/internal/constants"
	"github.com/AlonBenyatov/dungeonloop/internal/game"
	"github.com/AlonBenyatov/dungeonloop/internal/logging"
	"github.com/AlonBenyatov/dungeonloop/internal/service"
)

type startLoopRequest struct {
	Battles           int     `json:"battles"`
	Species           string  `json:"species"`
	TierStartingLevel int     `json:"tier_starting_level"`
	StatMultiplier    float64 `json:"stat_multiplier"`
	// Drive controls who runs the battles. With "server" (default) the
	// core ticks every battle itself in the background; with "caller" the
	// client drives battles and reports outcomes via POST /loops/result.
	Drive string `json:"drive"`
}

// StartLoop validates and starts a battle loop.
func (h *Handler) StartLoop(c *gin.Context) {
	var req startLoopRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
		return
	}
	mult := req.StatMultiplier
	if mult == 0 {
		mult = 1.0
	}
	err := h.loops.StartLoop(req.Battles, game.Species(req.Species), req.TierStartingLevel, mult)
	if err != nil {
		switch err {
		case service.ErrInvalidBattleCount:
			c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: err.Error()})
		case service.ErrNoPlayer, service.ErrPlayerDefeated:
			c.JSON(http.StatusConflict, gin.H{constants.JSONKeyError: err.Error()})
		case service.ErrLoopAlreadyRunning:
			c.JSON(http.StatusConflict, gin.H{constants.JSONKeyError: constants.ErrLoopAlreadyRunning})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedStartLoop})
		}
		return
	}

	if req.Drive != "caller" {
		go func() {
			outcome, status, err := h.loops.RunLoop(context.Background())
			if err != nil {
				logging.Error("battle loop aborted", err, nil)
				return
			}
			logging.Info("battle loop finished", logging.Fields{
				constants.LogFieldOutcome: string(outcome),
				constants.JSONKeyStatus:   status,
			})
		}()
	}

	c.JSON(http.StatusAccepted, gin.H{
		constants.JSONKeyMessage: "battle loop started",
		constants.JSONKeyStatus:  h.loops.Status(),
	})
}

type loopResultRequest struct {
	PlayerWon bool `json:"player_won"`
}

// LoopResult reports a caller-driven battle outcome to the orchestrator.
func (h *Handler) LoopResult(c *gin.Context) {
	var req loopResultRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
		return
	}
	status, err := h.loops.OnBattleResult(req.PlayerWon)
	if err != nil {
		c.JSON(http.StatusConflict, gin.H{constants.JSONKeyError: constants.ErrNoLoopRunning})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		constants.JSONKeyStatus: status,
		"state":                 string(h.loops.State()),
	})
}

// LoopStatus returns the current orchestrator state and display string.
func (h *Handler) LoopStatus(c *gin.Context) {
	resp := gin.H{
		"state":                 string(h.loops.State()),
		constants.JSONKeyStatus: h.loops.Status(),
	}
	if enemy := h.loops.CurrentEnemy(); enemy != nil {
		resp["enemy"] = gin.H{
			"name":       enemy.Name(),
			"species":    string(enemy.Species()),
			"level":      enemy.Level(),
			"rarity":     string(enemy.Rarity()),
			"current_hp": enemy.CurrentHP(),
			"max_hp":     enemy.MaxHP(),
		}
	}
	c.JSON(http.StatusOK, resp)
}

// LoopHistory lists recently finished loops.
func (h *Handler) LoopHistory(c *gin.Context) {
	results, err := h.repo.RecentLoopResults(20)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"results": results})
}
