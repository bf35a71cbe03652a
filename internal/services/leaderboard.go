package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	redisclient "github.com/charanreddy9081/sports-vision-trainer/internal/clients/redis"
	"github.com/charanreddy9081/sports-vision-trainer/internal/platform/logger"
	"github.com/charanreddy9081/sports-vision-trainer/internal/repos"
)

const leaderboardCachePrefix = "leaderboard:"

type LeaderboardRow struct {
	Rank       int       `json:"rank"`
	UserID     uuid.UUID `json:"user_id"`
	Name       string    `json:"name"`
	TotalScore int       `json:"total_score"`
}

type LeaderboardView struct {
	Entries         []LeaderboardRow `json:"leaderboard"`
	CurrentUserRank *int             `json:"current_user_rank"`
}

type LeaderboardService interface {
	// GetLeaderboard returns the top n users by total score. Pass uuid.Nil
	// for requestingUserID to skip the rank lookup.
	GetLeaderboard(ctx context.Context, n int, requestingUserID uuid.UUID) (*LeaderboardView, error)
	// RankOf is 1 + the number of entries with a strictly greater total,
	// nil when the user has no entry yet. Always computed fresh.
	RankOf(ctx context.Context, userID uuid.UUID) (*int, error)
	InvalidateCache(ctx context.Context)
}

type leaderboardService struct {
	db      *gorm.DB
	log     *logger.Logger
	entries repos.LeaderboardRepo
	users   repos.UserRepo
	cache   redisclient.Cache
}

func NewLeaderboardService(
	db *gorm.DB,
	baseLog *logger.Logger,
	entries repos.LeaderboardRepo,
	users repos.UserRepo,
	cache redisclient.Cache,
) LeaderboardService {
	return &leaderboardService{
		db:      db,
		log:     baseLog.With("service", "LeaderboardService"),
		entries: entries,
		users:   users,
		cache:   cache,
	}
}

func (s *leaderboardService) GetLeaderboard(ctx context.Context, n int, requestingUserID uuid.UUID) (*LeaderboardView, error) {
	if n <= 0 {
		n = 10
	}

	rows, err := s.topRows(ctx, n)
	if err != nil {
		return nil, err
	}

	view := &LeaderboardView{Entries: rows}
	if requestingUserID != uuid.Nil {
		rank, err := s.RankOf(ctx, requestingUserID)
		if err != nil {
			return nil, err
		}
		view.CurrentUserRank = rank
	}
	return view, nil
}

// topRows serves the ranked slice from redis when possible. The per-user
// rank is never cached; only the shared top listing is.
func (s *leaderboardService) topRows(ctx context.Context, n int) ([]LeaderboardRow, error) {
	cacheKey := fmt.Sprintf("%stop:%d", leaderboardCachePrefix, n)
	if s.cache != nil {
		if raw, ok, err := s.cache.Get(ctx, cacheKey); err != nil {
			s.log.Warn("leaderboard cache read failed", "error", err)
		} else if ok {
			var rows []LeaderboardRow
			if err := json.Unmarshal(raw, &rows); err == nil {
				return rows, nil
			}
		}
	}

	entries, err := s.entries.Top(ctx, nil, n)
	if err != nil {
		return nil, fmt.Errorf("load leaderboard: %w", err)
	}

	userIDs := make([]uuid.UUID, 0, len(entries))
	for _, e := range entries {
		userIDs = append(userIDs, e.UserID)
	}
	users, err := s.users.GetByIDs(ctx, nil, userIDs)
	if err != nil {
		return nil, fmt.Errorf("resolve names: %w", err)
	}
	names := make(map[uuid.UUID]string, len(users))
	for _, u := range users {
		names[u.ID] = u.Name
	}

	rows := make([]LeaderboardRow, 0, len(entries))
	for i, e := range entries {
		rows = append(rows, LeaderboardRow{
			Rank:       i + 1,
			UserID:     e.UserID,
			Name:       names[e.UserID],
			TotalScore: e.TotalScore,
		})
	}

	if s.cache != nil {
		if raw, err := json.Marshal(rows); err == nil {
			if err := s.cache.Set(ctx, cacheKey, raw); err != nil {
				s.log.Warn("leaderboard cache write failed", "error", err)
			}
		}
	}
	return rows, nil
}

func (s *leaderboardService) RankOf(ctx context.Context, userID uuid.UUID) (*int, error) {
	entry, err := s.entries.GetByUserID(ctx, nil, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("load entry: %w", err)
	}
	above, err := s.entries.CountWithScoreAbove(ctx, nil, entry.TotalScore)
	if err != nil {
		return nil, fmt.Errorf("count above: %w", err)
	}
	rank := int(above) + 1
	return &rank, nil
}

func (s *leaderboardService) InvalidateCache(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.InvalidatePrefix(ctx, leaderboardCachePrefix); err != nil {
		s.log.Warn("leaderboard cache invalidation failed", "error", err)
	}
}
