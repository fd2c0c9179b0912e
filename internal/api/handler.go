package api

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/AlonBenyatov/dungeonloop/internal/constants"
	"github.com/AlonBenyatov/dungeonloop/internal/engine"
	"github.com/AlonBenyatov/dungeonloop/internal/game"
	"github.com/AlonBenyatov/dungeonloop/internal/service"
	"github.com/AlonBenyatov/dungeonloop/internal/spawn"
	"github.com/AlonBenyatov/dungeonloop/internal/storage"
)

// Handler bundles the HTTP surface over the combat core. It is thin glue:
// all rules live in the service and engine packages.
type Handler struct {
	loops   *service.LoopService
	factory *spawn.Factory
	repo    storage.Repository
	saver   *storage.Saver
	rng     engine.Rand
	hub     *Hub
}

func NewHandler(loops *service.LoopService, factory *spawn.Factory, repo storage.Repository, saver *storage.Saver, rng engine.Rand, hub *Hub) *Handler {
	return &Handler{
		loops:   loops,
		factory: factory,
		repo:    repo,
		saver:   saver,
		rng:     rng,
		hub:     hub,
	}
}

type createPlayerRequest struct {
	Name string `json:"name"`
}

// CreatePlayer creates a fresh level-1 character, makes it the active
// player and persists its sheet.
func (h *Handler) CreatePlayer(c *gin.Context) {
	var req createPlayerRequest
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Name) == "" {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
		return
	}
	p := game.NewPlayer(strings.TrimSpace(req.Name))
	if err := h.repo.SavePlayer(p); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedSavePlayer})
		return
	}
	h.loops.SetPlayer(p)
	c.JSON(http.StatusCreated, playerView(p))
}

// GetPlayer loads a character sheet by name and makes it the active player.
func (h *Handler) GetPlayer(c *gin.Context) {
	name := strings.TrimSpace(c.Param("name"))
	p, err := h.repo.GetPlayerByName(name)
	if err != nil {
		if err == storage.ErrPlayerNotFound {
			c.JSON(http.StatusNotFound, gin.H{constants.JSONKeyError: constants.ErrPlayerNotFound})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: err.Error()})
		return
	}
	h.loops.SetPlayer(p)
	c.JSON(http.StatusOK, playerView(p))
}

func playerView(p *game.Player) gin.H {
	return gin.H{
		"name":                    p.Name(),
		"class":                   p.Class(),
		"level":                   p.Level(),
		"experience":              p.Experience(),
		"exp_to_next_level":       p.ExpToNextLevel(),
		"gold":                    p.Gold(),
		"current_hp":              p.CurrentHP(),
		"max_hp":                  p.MaxHP(),
		"strength":                p.Strength(),
		"dexterity":               p.Dexterity(),
		"intelligence":            p.Intelligence(),
		"constitution":            p.Constitution(),
		"luck":                    p.Luck(),
		"charisma":                p.Charisma(),
		"unallocated_stat_points": p.UnallocatedStatPoints(),
		"armor":                   p.Armor(),
		"attack_damage":           p.AttackDamage(),
		"attack_speed":            p.AttackSpeed(),
		"dodge":                   p.Dodge(),
		"parry":                   p.Parry(),
		"crit_chance":             p.CritChance(),
		"crit_damage":             p.CritDamage(),
	}
}

type resolveAttackRequest struct {
	Species           string  `json:"species"`
	TierStartingLevel int     `json:"tier_starting_level"`
	StatMultiplier    float64 `json:"stat_multiplier"`
	// Direction: "player" (default) resolves player -> enemy, "enemy"
	// resolves enemy -> player.
	Direction string `json:"direction"`
}

// ResolveAttack resolves a single standalone attack between the active
// player and a freshly generated enemy, outside any loop.
func (h *Handler) ResolveAttack(c *gin.Context) {
	var req resolveAttackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
		return
	}
	p := h.loops.Player()
	if p == nil {
		c.JSON(http.StatusConflict, gin.H{constants.JSONKeyError: service.ErrNoPlayer.Error()})
		return
	}
	mult := req.StatMultiplier
	if mult == 0 {
		mult = 1.0
	}
	tier := req.TierStartingLevel
	if tier < 1 {
		tier = 1
	}
	enemy := h.factory.Create(game.Species(req.Species), tier, mult)

	var out engine.Outcome
	if req.Direction == "enemy" {
		out = engine.ResolveAttack(enemy, p, h.rng)
	} else {
		out = engine.ResolveAttack(p, enemy, h.rng)
	}
	c.JSON(http.StatusOK, gin.H{
		"outcome":    out,
		"enemy_name": enemy.Name(),
		"enemy_hp":   enemy.CurrentHP(),
		"player_hp":  p.CurrentHP(),
	})
}
