package main

import (
	"os"

	"github.com/gin-gonic/gin"
	"github.com/lukeharte/wizard-arena/internal/api"
	"github.com/lukeharte/wizard-arena/internal/chooser"
	"github.com/lukeharte/wizard-arena/internal/constants"
	"github.com/lukeharte/wizard-arena/internal/logging"
)

func main() {
	checkEnvVars([]string{constants.EnvSessionSecret, constants.EnvGoogleClientID, constants.EnvGoogleClientSecret, constants.EnvOpenAIAPIKey})

	// Configuration file is optional; path may be provided via ARENA_CONFIG
	// or defaults to ./arena_config.json in the current working directory.
	configPath := os.Getenv(constants.EnvArenaConfig)
	if configPath == "" {
		configPath = "./arena_config.json"
	}
	cfg := loadConfigOrExit(configPath)
	applyGenerationOverrides(cfg)

	// Allow the DB path to be overridden via ARENA_DB for containers.
	dbPath := os.Getenv(constants.EnvArenaDB)
	if dbPath == "" {
		dbPath = cfg.DBPath
	}
	repo := createRepositoryOrExit(dbPath)

	startTimeoutScanner(repo)

	enemyChooser := chooser.NewLLM(cfg.ChatModel)
	matchHandler := api.NewMatchHandler(repo, enemyChooser, cfg.ActionTimeout)
	playerHandler := api.NewPlayerHandler(repo)
	wizardHandler := api.NewWizardHandler(repo)
	authHandler := api.NewAuthHandler(repo)

	router := gin.Default()

	apiRoutes := router.Group(constants.RouteAPIPrefix)
	{
		// Public endpoints
		apiRoutes.GET(constants.RouteHealth, api.Health)
		apiRoutes.GET(constants.RouteVersion, api.Version)
		apiRoutes.GET(constants.RouteRoster, api.Roster)
		apiRoutes.GET(constants.RouteLeaderboard, playerHandler.Leaderboard)

		// Authenticated endpoints
		protected := apiRoutes.Group("")
		protected.Use(api.AuthRequired())

		// Player profile: GET returns stats, POST updates display name
		protected.GET(constants.RoutePlayerStats, playerHandler.GetPlayerStats)
		protected.POST(constants.RoutePlayerStats, playerHandler.UpdatePlayerStats)

		protected.POST(constants.RouteWizardGenerate, wizardHandler.GenerateWizard)

		protected.POST(constants.RouteMatches, matchHandler.CreateMatch)
		protected.GET(constants.RouteMatches, matchHandler.ListActiveMatches)
		protected.GET(constants.RouteMatchByCode, matchHandler.GetMatch)
		protected.POST(constants.RouteMatchAction, matchHandler.SubmitAction)
		protected.POST(constants.RouteMatchResign, matchHandler.Resign)
	}

	router.POST(constants.RouteAPIPrefix+constants.RouteAuthGoogleCallBack, authHandler.GoogleOAuthCallback)
	router.POST(constants.RouteAPIPrefix+constants.RouteAuthLogout, authHandler.Logout)

	addr := cfg.ServerAddress
	logging.Info("Server started", logging.Fields{constants.LogFieldAddr: addr})
	if err := router.Run(addr); err != nil {
		logging.Fatal("Failed to start server", err, nil)
	}
}

func checkEnvVars(vars []string) {
	for _, v := range vars {
		if os.Getenv(v) == "" {
			logging.Fatal("Required environment variable not set", nil, logging.Fields{"var": v})
		}
	}
}
