package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/charanreddy9081/sports-vision-trainer/internal/platform/apierr"
	"github.com/charanreddy9081/sports-vision-trainer/internal/platform/logger"
	"github.com/charanreddy9081/sports-vision-trainer/internal/repos"
	"github.com/charanreddy9081/sports-vision-trainer/internal/requestdata"
	"github.com/charanreddy9081/sports-vision-trainer/internal/types"
)

const recentSessionsShown = 10

type CreateSessionInput struct {
	// SessionID lets a client retry a failed ingest without double-counting:
	// the same id applies at most once. Empty means the server assigns one.
	SessionID       string         `json:"session_id,omitempty"`
	ModuleType      string         `json:"module_type"`
	Score           int            `json:"score"`
	Accuracy        float64        `json:"accuracy"`
	ReactionTime    *float64       `json:"reaction_time,omitempty"`
	DurationSeconds int            `json:"duration"`
	Details         map[string]any `json:"details,omitempty"`
}

type TrainingService interface {
	CreateSession(ctx context.Context, userID uuid.UUID, in CreateSessionInput) (*types.TrainingSession, error)
	GetUserSessions(ctx context.Context, userID uuid.UUID) ([]*types.TrainingSession, error)
	GetStats(ctx context.Context, userID uuid.UUID) (*StatsSummary, error)
}

type trainingService struct {
	db          *gorm.DB
	log         *logger.Logger
	sessions    repos.TrainingSessionRepo
	leaderboard repos.LeaderboardRepo
	leaderSvc   LeaderboardService
}

func NewTrainingService(
	db *gorm.DB,
	baseLog *logger.Logger,
	sessions repos.TrainingSessionRepo,
	leaderboard repos.LeaderboardRepo,
	leaderSvc LeaderboardService,
) TrainingService {
	return &trainingService{
		db:          db,
		log:         baseLog.With("service", "TrainingService"),
		sessions:    sessions,
		leaderboard: leaderboard,
		leaderSvc:   leaderSvc,
	}
}

func validateCreateSession(in CreateSessionInput) (*apierr.Error, uuid.UUID) {
	sessionID := uuid.Nil
	if in.SessionID != "" {
		id, err := uuid.Parse(in.SessionID)
		if err != nil {
			return apierr.Validation("session_id", "must be a uuid"), uuid.Nil
		}
		sessionID = id
	}
	if !types.ValidModuleType(in.ModuleType) {
		return apierr.Validation("module_type", "must be one of REACTION, TRACKING, COLOR_MATCH, TARGET_HIT"), uuid.Nil
	}
	if in.Score < 0 {
		return apierr.Validation("score", "must be a non-negative integer"), uuid.Nil
	}
	if in.Accuracy < 0 || in.Accuracy > 100 {
		return apierr.Validation("accuracy", "must be between 0 and 100"), uuid.Nil
	}
	if in.ReactionTime != nil && *in.ReactionTime <= 0 {
		return apierr.Validation("reaction_time", "must be positive when present"), uuid.Nil
	}
	if in.DurationSeconds < 1 {
		return apierr.Validation("duration", "must be at least 1 second"), uuid.Nil
	}
	return nil, sessionID
}

// CreateSession validates the report, then appends the session row and folds
// its score into the leaderboard total inside one transaction. Readers never
// see one without the other, and a retry with the same session id is a no-op.
func (s *trainingService) CreateSession(ctx context.Context, userID uuid.UUID, in CreateSessionInput) (*types.TrainingSession, error) {
	if userID == uuid.Nil {
		return nil, apierr.Unauthorized("not authenticated")
	}
	vErr, sessionID := validateCreateSession(in)
	if vErr != nil {
		return nil, vErr
	}
	if sessionID == uuid.Nil {
		sessionID = uuid.New()
	}

	var details datatypes.JSON
	if len(in.Details) > 0 {
		b, err := json.Marshal(in.Details)
		if err != nil {
			return nil, apierr.Validation("details", "must be a JSON object")
		}
		details = datatypes.JSON(b)
	}

	row := &types.TrainingSession{
		ID:              sessionID,
		UserID:          userID,
		ModuleType:      in.ModuleType,
		Score:           in.Score,
		Accuracy:        in.Accuracy,
		ReactionTime:    in.ReactionTime,
		DurationSeconds: in.DurationSeconds,
		Details:         details,
		CreatedAt:       time.Now().UTC(),
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		inserted, err := s.sessions.Insert(ctx, tx, row)
		if err != nil {
			return fmt.Errorf("insert session: %w", err)
		}
		if !inserted {
			// Retry of an ingest that already applied. The increment ran in
			// the same transaction the first time, so skip it.
			return nil
		}
		if err := s.leaderboard.AddScore(ctx, tx, userID, row.Score); err != nil {
			return fmt.Errorf("increment leaderboard: %w", err)
		}
		return nil
	})
	if err != nil {
		s.log.Error("session ingest failed", "user_id", userID.String(), "error", err)
		return nil, err
	}

	if s.leaderSvc != nil {
		s.leaderSvc.InvalidateCache(ctx)
	}
	s.log.Debug("session ingested",
		"user_id", userID.String(),
		"session_id", row.ID.String(),
		"module_type", row.ModuleType,
		"score", row.Score,
	)
	return row, nil
}

// GetUserSessions returns the caller's own history, or any user's when the
// caller is an admin. Capped at the 100 most recent.
func (s *trainingService) GetUserSessions(ctx context.Context, userID uuid.UUID) ([]*types.TrainingSession, error) {
	rd := requestdata.GetRequestData(ctx)
	if rd == nil || rd.UserID == uuid.Nil {
		return nil, apierr.Unauthorized("not authenticated")
	}
	if userID == uuid.Nil {
		userID = rd.UserID
	}
	if userID != rd.UserID && !rd.IsAdmin() {
		return nil, apierr.Forbidden("access denied")
	}
	return s.sessions.GetByUserID(ctx, nil, userID, 100)
}

// GetStats recomputes the summary from the full session history. A user
// with no sessions gets a zero-valued summary, not an error.
func (s *trainingService) GetStats(ctx context.Context, userID uuid.UUID) (*StatsSummary, error) {
	if userID == uuid.Nil {
		return nil, apierr.Unauthorized("not authenticated")
	}
	sessions, err := s.sessions.GetByUserID(ctx, nil, userID, 0)
	if err != nil {
		return nil, fmt.Errorf("load sessions: %w", err)
	}
	return buildStatsSummary(sessions, time.Now(), recentSessionsShown), nil
}
