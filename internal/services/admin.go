package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/charanreddy9081/sports-vision-trainer/internal/platform/apierr"
	"github.com/charanreddy9081/sports-vision-trainer/internal/platform/logger"
	"github.com/charanreddy9081/sports-vision-trainer/internal/repos"
	"github.com/charanreddy9081/sports-vision-trainer/internal/requestdata"
	"github.com/charanreddy9081/sports-vision-trainer/internal/types"
)

type AdminUserRow struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Role         string    `json:"role"`
	Subscription string    `json:"subscription"`
	CreatedAt    string    `json:"created_at"`
	SessionCount int64     `json:"session_count"`
}

type AdminAnalytics struct {
	TotalUsers       int64                    `json:"total_users"`
	TotalSessions    int64                    `json:"total_sessions"`
	TotalProUsers    int64                    `json:"total_pro_users"`
	SessionsByModule []repos.ModuleCount      `json:"sessions_by_module"`
	RecentSessions   []*types.TrainingSession `json:"recent_sessions"`
}

type AdminService interface {
	ListUsers(ctx context.Context) ([]AdminUserRow, error)
	DeleteUser(ctx context.Context, userID uuid.UUID) error
	Analytics(ctx context.Context) (*AdminAnalytics, error)
}

type adminService struct {
	db       *gorm.DB
	log      *logger.Logger
	users    repos.UserRepo
	sessions repos.TrainingSessionRepo
}

func NewAdminService(db *gorm.DB, baseLog *logger.Logger, users repos.UserRepo, sessions repos.TrainingSessionRepo) AdminService {
	return &adminService{
		db:       db,
		log:      baseLog.With("service", "AdminService"),
		users:    users,
		sessions: sessions,
	}
}

func (s *adminService) ListUsers(ctx context.Context) ([]AdminUserRow, error) {
	users, err := s.users.GetAll(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	counts, err := s.sessions.CountPerUser(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("count sessions: %w", err)
	}
	rows := make([]AdminUserRow, 0, len(users))
	for _, u := range users {
		rows = append(rows, AdminUserRow{
			ID:           u.ID,
			Name:         u.Name,
			Email:        u.Email,
			Role:         u.Role,
			Subscription: u.Subscription,
			CreatedAt:    u.CreatedAt.UTC().Format("2006-01-02T15:04:05Z07:00"),
			SessionCount: counts[u.ID],
		})
	}
	return rows, nil
}

func (s *adminService) DeleteUser(ctx context.Context, userID uuid.UUID) error {
	rd := requestdata.GetRequestData(ctx)
	if rd == nil || rd.UserID == uuid.Nil {
		return apierr.Unauthorized("not authenticated")
	}
	if userID == uuid.Nil {
		return apierr.Validation("id", "is required")
	}
	if userID == rd.UserID {
		return apierr.Validation("id", "cannot delete your own account")
	}
	if err := s.users.DeleteByID(ctx, nil, userID); err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	s.log.Info("user deleted by admin", "user_id", userID.String(), "admin_user_id", rd.UserID.String())
	return nil
}

func (s *adminService) Analytics(ctx context.Context) (*AdminAnalytics, error) {
	totalUsers, err := s.users.Count(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("count users: %w", err)
	}
	totalSessions, err := s.sessions.Count(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("count sessions: %w", err)
	}
	totalPro, err := s.users.CountBySubscription(ctx, nil, types.PlanPro)
	if err != nil {
		return nil, fmt.Errorf("count pro users: %w", err)
	}
	byModule, err := s.sessions.CountByModule(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("count by module: %w", err)
	}
	recent, err := s.sessions.GetRecent(ctx, nil, 10)
	if err != nil {
		return nil, fmt.Errorf("recent sessions: %w", err)
	}
	return &AdminAnalytics{
		TotalUsers:       totalUsers,
		TotalSessions:    totalSessions,
		TotalProUsers:    totalPro,
		SessionsByModule: byModule,
		RecentSessions:   recent,
	}, nil
}
