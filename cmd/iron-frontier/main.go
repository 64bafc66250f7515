package main

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/arcade-cabinet/iron-frontier-sub004/internal/api"
	"github.com/arcade-cabinet/iron-frontier-sub004/internal/config"
	"github.com/arcade-cabinet/iron-frontier-sub004/internal/constants"
	"github.com/arcade-cabinet/iron-frontier-sub004/internal/logging"
	"github.com/arcade-cabinet/iron-frontier-sub004/internal/service"
	"github.com/arcade-cabinet/iron-frontier-sub004/internal/storage"
)

func main() {
	srvEnv, err := config.LoadServerEnv()
	if err != nil {
		logging.Fatal("Failed to read server environment", err, nil)
	}

	// Load the content configuration file (required). All combat content
	// (enemies, weapons, items, encounters) comes from this file; the
	// database only pins ids across restarts.
	cfg, err := config.LoadConfig(srvEnv.ConfigPath)
	if err != nil {
		logging.Fatal("Missing or invalid frontier configuration", err, logging.Fields{
			"config_path": srvEnv.ConfigPath,
			"hint":        "create a frontier_config.json with enemy_list, weapon_list, item_list and encounter_list arrays and an optional server.address",
		})
	}

	db, err := storage.OpenAndMigrate(srvEnv.DBPath, cfg.Enemies, cfg.Encounters)
	if err != nil {
		logging.Fatal("Failed to initialize database", err, nil)
	}

	repo := storage.NewSQLiteRepository(db, cfg.Enemies, cfg.Encounters)
	handler := api.NewCombatHandler(repo, cfg.WeaponMap(), cfg.ItemMap(), srvEnv.ActionTimeout)

	// Background reaper: close sessions whose action deadline has passed.
	// An expired session counts as a retreat so the party's stats are
	// still recorded.
	go func() {
		ticker := time.NewTicker(srvEnv.ReaperInterval)
		defer ticker.Stop()
		for range ticker.C {
			stale, err := repo.FindTimedOutSessions(time.Now())
			if err != nil {
				logging.Error("idle session scan failed", err, nil)
				continue
			}
			for i := range stale {
				st, err := repo.GetSessionByID(stale[i].ID)
				if err != nil {
					continue
				}
				if err := service.HandleTimedOutSession(repo, st); err != nil {
					logging.Error("failed to expire session", err, logging.Fields{constants.LogFieldSessionID: st.ID})
				}
			}
		}
	}()

	router := gin.Default()

	apiRoutes := router.Group(constants.RouteAPIPrefix)
	{
		// Public endpoints
		apiRoutes.POST(constants.RouteLogin, handler.Login)
		apiRoutes.GET(constants.RouteVersion, api.Version)
		apiRoutes.GET(constants.RouteEnemies, handler.ListEnemies)
		apiRoutes.GET(constants.RouteEncounters, handler.ListEncounters)
		apiRoutes.GET(constants.RouteLeaderboard, handler.ListLeaderboard)

		// Authenticated endpoints
		protected := apiRoutes.Group("")
		protected.Use(api.AuthRequired())

		protected.POST(constants.RouteEncounterStart, handler.StartEncounter)
		protected.GET(constants.RouteSessionByID, handler.GetSession)
		protected.POST(constants.RouteSessionAction, handler.SubmitAction)
		protected.POST(constants.RouteSessionAbandon, handler.AbandonSession)
		protected.GET(constants.RoutePlayerStats, handler.GetPlayerStats)
	}

	addr := cfg.ServerAddress
	logging.Info("Server started", logging.Fields{constants.LogFieldAddr: addr})
	if err := router.Run(addr); err != nil {
		logging.Fatal("Failed to start server", err, nil)
	}
}
