package repos

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/charanreddy9081/sports-vision-trainer/internal/types"
)

func newSession(userID uuid.UUID, moduleType string, score int, createdAt time.Time) *types.TrainingSession {
	return &types.TrainingSession{
		ID:              uuid.New(),
		UserID:          userID,
		ModuleType:      moduleType,
		Score:           score,
		Accuracy:        90,
		DurationSeconds: 60,
		CreatedAt:       createdAt,
	}
}

func TestInsert_DuplicateIDIsNoOp(t *testing.T) {
	db := newTestDB(t)
	repo := NewTrainingSessionRepo(db, newTestLogger(t))
	ctx := context.Background()
	user := seedUser(t, db, "dana")

	row := newSession(user.ID, types.ModuleReaction, 120, time.Now().UTC())
	inserted, err := repo.Insert(ctx, nil, row)
	if err != nil {
		t.Fatalf("Insert: %v", err)
	}
	if !inserted {
		t.Fatalf("expected first insert to report inserted=true")
	}

	retry := *row
	retry.Score = 999 // a retry must not overwrite the stored row
	inserted, err = repo.Insert(ctx, nil, &retry)
	if err != nil {
		t.Fatalf("Insert retry: %v", err)
	}
	if inserted {
		t.Fatalf("expected duplicate insert to report inserted=false")
	}

	stored, err := repo.GetByID(ctx, nil, row.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if stored.Score != 120 {
		t.Fatalf("expected stored score=120 got %d", stored.Score)
	}
	count, err := repo.Count(ctx, nil)
	if err != nil {
		t.Fatalf("Count: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected 1 session got %d", count)
	}
}

func TestGetByUserID_NewestFirstAndLimited(t *testing.T) {
	db := newTestDB(t)
	repo := NewTrainingSessionRepo(db, newTestLogger(t))
	ctx := context.Background()
	user := seedUser(t, db, "eli")
	other := seedUser(t, db, "finn")

	base := time.Now().UTC()
	for i := 0; i < 5; i++ {
		row := newSession(user.ID, types.ModuleTracking, i, base.Add(time.Duration(i)*time.Minute))
		if _, err := repo.Insert(ctx, nil, row); err != nil {
			t.Fatalf("Insert: %v", err)
		}
	}
	if _, err := repo.Insert(ctx, nil, newSession(other.ID, types.ModuleTracking, 42, base)); err != nil {
		t.Fatalf("Insert other: %v", err)
	}

	sessions, err := repo.GetByUserID(ctx, nil, user.ID, 0)
	if err != nil {
		t.Fatalf("GetByUserID: %v", err)
	}
	if len(sessions) != 5 {
		t.Fatalf("expected 5 sessions got %d", len(sessions))
	}
	for i := 1; i < len(sessions); i++ {
		if sessions[i].CreatedAt.After(sessions[i-1].CreatedAt) {
			t.Fatalf("sessions not ordered newest first")
		}
	}

	limited, err := repo.GetByUserID(ctx, nil, user.ID, 3)
	if err != nil {
		t.Fatalf("GetByUserID limited: %v", err)
	}
	if len(limited) != 3 {
		t.Fatalf("expected 3 sessions got %d", len(limited))
	}
	if limited[0].Score != 4 {
		t.Fatalf("expected newest session first, got score %d", limited[0].Score)
	}
}

func TestCountPerUserAndByModule(t *testing.T) {
	db := newTestDB(t)
	repo := NewTrainingSessionRepo(db, newTestLogger(t))
	ctx := context.Background()
	a := seedUser(t, db, "gia")
	b := seedUser(t, db, "hal")

	now := time.Now().UTC()
	inserts := []*types.TrainingSession{
		newSession(a.ID, types.ModuleReaction, 10, now),
		newSession(a.ID, types.ModuleReaction, 20, now),
		newSession(a.ID, types.ModuleColorMatch, 30, now),
		newSession(b.ID, types.ModuleTargetHit, 40, now),
	}
	for _, row := range inserts {
		if _, err := repo.Insert(ctx, nil, row); err != nil {
			t.Fatalf("Insert: %v", err)
		}
	}

	perUser, err := repo.CountPerUser(ctx, nil)
	if err != nil {
		t.Fatalf("CountPerUser: %v", err)
	}
	if perUser[a.ID] != 3 || perUser[b.ID] != 1 {
		t.Fatalf("unexpected per-user counts: %v", perUser)
	}

	byModule, err := repo.CountByModule(ctx, nil)
	if err != nil {
		t.Fatalf("CountByModule: %v", err)
	}
	got := make(map[string]int64, len(byModule))
	for _, mc := range byModule {
		got[mc.ModuleType] = mc.Count
	}
	if got[types.ModuleReaction] != 2 || got[types.ModuleColorMatch] != 1 || got[types.ModuleTargetHit] != 1 {
		t.Fatalf("unexpected module counts: %v", got)
	}
}
