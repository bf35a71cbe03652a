package app

import (
	"github.com/charanreddy9081/sports-vision-trainer/internal/handlers"
	"github.com/charanreddy9081/sports-vision-trainer/internal/platform/logger"
)

type Handlers struct {
	Auth         *handlers.AuthHandler
	User         *handlers.UserHandler
	Training     *handlers.TrainingHandler
	Leaderboard  *handlers.LeaderboardHandler
	Subscription *handlers.SubscriptionHandler
	Admin        *handlers.AdminHandler
}

func wireHandlers(log *logger.Logger, serviceset Services) Handlers {
	log.Info("Wiring handlers...")
	return Handlers{
		Auth:         handlers.NewAuthHandler(serviceset.Auth),
		User:         handlers.NewUserHandler(serviceset.User),
		Training:     handlers.NewTrainingHandler(serviceset.Training),
		Leaderboard:  handlers.NewLeaderboardHandler(serviceset.Leaderboard),
		Subscription: handlers.NewSubscriptionHandler(serviceset.Subscription),
		Admin:        handlers.NewAdminHandler(serviceset.Admin),
	}
}
