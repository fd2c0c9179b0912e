package main

import (
	"math/rand"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/AlonBenyatov/dungeonloop/internal/api"
	"github.com/AlonBenyatov/dungeonloop/internal/config"
	"github.com/AlonBenyatov/dungeonloop/internal/constants"
	"github.com/AlonBenyatov/dungeonloop/internal/logging"
	"github.com/AlonBenyatov/dungeonloop/internal/service"
	"github.com/AlonBenyatov/dungeonloop/internal/spawn"
	"github.com/AlonBenyatov/dungeonloop/internal/storage"
)

func main() {
	envCfg, err := config.ParseEnv()
	if err != nil {
		logging.Fatal("Failed to parse environment", err, nil)
	}

	cfg := loadConfigOrExit(envCfg.ConfigPath)
	repo := createRepositoryOrExit(envCfg.DBPath)
	saver := storage.NewSaver(repo)

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	factory := spawn.NewFactory(cfg, rng)

	hub := api.NewHub()
	loops := service.NewLoopService(factory, rng, saver, repo, hub.Broadcast)
	handler := api.NewHandler(loops, factory, repo, saver, rng, hub)

	router := gin.Default()

	apiRoutes := router.Group(constants.RouteAPIPrefix)
	{
		apiRoutes.POST(constants.RoutePlayers, handler.CreatePlayer)
		apiRoutes.GET(constants.RoutePlayerByName, handler.GetPlayer)

		apiRoutes.POST(constants.RouteLoops, handler.StartLoop)
		apiRoutes.POST(constants.RouteLoopResult, handler.LoopResult)
		apiRoutes.GET(constants.RouteLoopStatus, handler.LoopStatus)
		apiRoutes.GET(constants.RouteLoopHistory, handler.LoopHistory)

		apiRoutes.POST(constants.RouteResolveAttack, handler.ResolveAttack)
	}

	router.GET(constants.RouteBattleWS, hub.Handle)
	router.GET(constants.RouteHealth, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{constants.JSONKeyStatus: "ok"})
	})

	addr := cfg.ServerAddress
	if envCfg.Addr != "" {
		addr = envCfg.Addr
	}
	logging.Info("Server started", logging.Fields{constants.LogFieldAddr: addr})
	if err := router.Run(addr); err != nil {
		logging.Fatal("Failed to start server", err, nil)
	}
}
