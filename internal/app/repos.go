package app

import (
	"gorm.io/gorm"

	"github.com/charanreddy9081/sports-vision-trainer/internal/platform/logger"
	"github.com/charanreddy9081/sports-vision-trainer/internal/repos"
)

type Repos struct {
	User            repos.UserRepo
	UserToken       repos.UserTokenRepo
	TrainingSession repos.TrainingSessionRepo
	Leaderboard     repos.LeaderboardRepo
	Subscription    repos.SubscriptionRepo
}

func wireRepos(db *gorm.DB, log *logger.Logger) Repos {
	log.Info("Wiring repos...")
	return Repos{
		User:            repos.NewUserRepo(db, log),
		UserToken:       repos.NewUserTokenRepo(db, log),
		TrainingSession: repos.NewTrainingSessionRepo(db, log),
		Leaderboard:     repos.NewLeaderboardRepo(db, log),
		Subscription:    repos.NewSubscriptionRepo(db, log),
	}
}
