package app

import (
	"gorm.io/gorm"

	redisclient "github.com/charanreddy9081/sports-vision-trainer/internal/clients/redis"
	"github.com/charanreddy9081/sports-vision-trainer/internal/platform/logger"
	"github.com/charanreddy9081/sports-vision-trainer/internal/services"
)

type Services struct {
	Auth         services.AuthService
	User         services.UserService
	Training     services.TrainingService
	Leaderboard  services.LeaderboardService
	Subscription services.SubscriptionService
	Admin        services.AdminService
}

func wireServices(db *gorm.DB, log *logger.Logger, cfg Config, reposet Repos, cache redisclient.Cache) Services {
	log.Info("Wiring services...")

	authService := services.NewAuthService(
		db, log,
		reposet.User,
		reposet.UserToken,
		reposet.Leaderboard,
		cfg.JWTSecretKey,
		cfg.AccessTokenTTL,
		cfg.RefreshTokenTTL,
	)
	userService := services.NewUserService(db, log, reposet.User)
	leaderboardService := services.NewLeaderboardService(db, log, reposet.Leaderboard, reposet.User, cache)
	trainingService := services.NewTrainingService(db, log, reposet.TrainingSession, reposet.Leaderboard, leaderboardService)
	subscriptionService := services.NewSubscriptionService(db, log, reposet.User, reposet.Subscription)
	adminService := services.NewAdminService(db, log, reposet.User, reposet.TrainingSession)

	return Services{
		Auth:         authService,
		User:         userService,
		Training:     trainingService,
		Leaderboard:  leaderboardService,
		Subscription: subscriptionService,
		Admin:        adminService,
	}
}
