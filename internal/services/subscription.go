package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/charanreddy9081/sports-vision-trainer/internal/platform/apierr"
	"github.com/charanreddy9081/sports-vision-trainer/internal/platform/logger"
	"github.com/charanreddy9081/sports-vision-trainer/internal/repos"
	"github.com/charanreddy9081/sports-vision-trainer/internal/types"
)

const proTermDays = 30

type SubscriptionStatus struct {
	Subscription string              `json:"subscription"`
	Active       *types.Subscription `json:"active_subscription"`
}

type SubscriptionService interface {
	// ChangePlan records a plan switch. Payment processing lives elsewhere;
	// this only keeps the books.
	ChangePlan(ctx context.Context, userID uuid.UUID, plan string) error
	Status(ctx context.Context, userID uuid.UUID) (*SubscriptionStatus, error)
}

type subscriptionService struct {
	db            *gorm.DB
	log           *logger.Logger
	users         repos.UserRepo
	subscriptions repos.SubscriptionRepo
}

func NewSubscriptionService(db *gorm.DB, baseLog *logger.Logger, users repos.UserRepo, subscriptions repos.SubscriptionRepo) SubscriptionService {
	return &subscriptionService{
		db:            db,
		log:           baseLog.With("service", "SubscriptionService"),
		users:         users,
		subscriptions: subscriptions,
	}
}

func (s *subscriptionService) ChangePlan(ctx context.Context, userID uuid.UUID, plan string) error {
	if userID == uuid.Nil {
		return apierr.Unauthorized("not authenticated")
	}
	if plan != types.PlanFree && plan != types.PlanPro {
		return apierr.Validation("plan", "must be FREE or PRO")
	}
	if _, err := s.users.GetByID(ctx, nil, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apierr.NotFound("user")
		}
		return fmt.Errorf("load user: %w", err)
	}

	now := time.Now().UTC()
	var endDate *time.Time
	if plan == types.PlanPro {
		end := now.AddDate(0, 0, proTermDays)
		endDate = &end
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.users.UpdateSubscription(ctx, tx, userID, plan); err != nil {
			return fmt.Errorf("update plan: %w", err)
		}
		_, err := s.subscriptions.Create(ctx, tx, &types.Subscription{
			ID:        uuid.New(),
			UserID:    userID,
			Plan:      plan,
			StartDate: now,
			EndDate:   endDate,
			CreatedAt: now,
		})
		return err
	})
	if err != nil {
		return err
	}
	s.log.Info("subscription changed", "user_id", userID.String(), "plan", plan)
	return nil
}

func (s *subscriptionService) Status(ctx context.Context, userID uuid.UUID) (*SubscriptionStatus, error) {
	if userID == uuid.Nil {
		return nil, apierr.Unauthorized("not authenticated")
	}
	user, err := s.users.GetByID(ctx, nil, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierr.NotFound("user")
		}
		return nil, fmt.Errorf("load user: %w", err)
	}

	status := &SubscriptionStatus{Subscription: user.Subscription}
	active, err := s.subscriptions.GetLatestActive(ctx, nil, userID)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("load subscription: %w", err)
		}
	} else {
		status.Active = active
	}
	return status, nil
}
