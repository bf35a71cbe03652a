package repos

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

func TestAddScore_CreatesThenIncrements(t *testing.T) {
	db := newTestDB(t)
	repo := NewLeaderboardRepo(db, newTestLogger(t))
	ctx := context.Background()
	user := seedUser(t, db, "ana")

	if err := repo.AddScore(ctx, nil, user.ID, 120); err != nil {
		t.Fatalf("first AddScore: %v", err)
	}
	if err := repo.AddScore(ctx, nil, user.ID, 35); err != nil {
		t.Fatalf("second AddScore: %v", err)
	}

	entry, err := repo.GetByUserID(ctx, nil, user.ID)
	if err != nil {
		t.Fatalf("GetByUserID: %v", err)
	}
	if entry.TotalScore != 155 {
		t.Fatalf("expected total=155 got %d", entry.TotalScore)
	}

	var count int64
	if err := db.Table("leaderboard_entry").Where("user_id = ?", user.ID).Count(&count).Error; err != nil {
		t.Fatalf("count entries: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected exactly one entry per user, got %d", count)
	}
}

func TestAddScore_ZeroDeltaCreatesEntry(t *testing.T) {
	db := newTestDB(t)
	repo := NewLeaderboardRepo(db, newTestLogger(t))
	ctx := context.Background()
	user := seedUser(t, db, "bo")

	if err := repo.AddScore(ctx, nil, user.ID, 0); err != nil {
		t.Fatalf("AddScore: %v", err)
	}
	entry, err := repo.GetByUserID(ctx, nil, user.ID)
	if err != nil {
		t.Fatalf("GetByUserID: %v", err)
	}
	if entry.TotalScore != 0 {
		t.Fatalf("expected total=0 got %d", entry.TotalScore)
	}
}

func TestGetByUserID_MissingEntry(t *testing.T) {
	db := newTestDB(t)
	repo := NewLeaderboardRepo(db, newTestLogger(t))

	_, err := repo.GetByUserID(context.Background(), nil, uuid.New())
	if err != gorm.ErrRecordNotFound {
		t.Fatalf("expected ErrRecordNotFound got %v", err)
	}
}

func TestTop_OrdersByScoreThenUserID(t *testing.T) {
	db := newTestDB(t)
	repo := NewLeaderboardRepo(db, newTestLogger(t))
	ctx := context.Background()

	a := seedUser(t, db, "a")
	b := seedUser(t, db, "b")
	c := seedUser(t, db, "c")
	for _, step := range []struct {
		id    uuid.UUID
		delta int
	}{
		{a.ID, 500},
		{b.ID, 500},
		{c.ID, 300},
	} {
		if err := repo.AddScore(ctx, nil, step.id, step.delta); err != nil {
			t.Fatalf("AddScore: %v", err)
		}
	}

	top, err := repo.Top(ctx, nil, 10)
	if err != nil {
		t.Fatalf("Top: %v", err)
	}
	if len(top) != 3 {
		t.Fatalf("expected 3 entries got %d", len(top))
	}
	if top[0].TotalScore != 500 || top[1].TotalScore != 500 || top[2].TotalScore != 300 {
		t.Fatalf("unexpected score order: %d %d %d", top[0].TotalScore, top[1].TotalScore, top[2].TotalScore)
	}
	// Tied scores must come back in user id order so the listing is stable.
	if top[0].UserID.String() > top[1].UserID.String() {
		t.Fatalf("tied entries not ordered by user id")
	}

	limited, err := repo.Top(ctx, nil, 2)
	if err != nil {
		t.Fatalf("Top limited: %v", err)
	}
	if len(limited) != 2 {
		t.Fatalf("expected limit to apply, got %d entries", len(limited))
	}
}

func TestCountWithScoreAbove(t *testing.T) {
	db := newTestDB(t)
	repo := NewLeaderboardRepo(db, newTestLogger(t))
	ctx := context.Background()

	scores := []int{500, 500, 300}
	ids := make([]uuid.UUID, 0, len(scores))
	for i, s := range scores {
		u := seedUser(t, db, string(rune('a'+i)))
		ids = append(ids, u.ID)
		if err := repo.AddScore(ctx, nil, u.ID, s); err != nil {
			t.Fatalf("AddScore: %v", err)
		}
	}

	// Both tied leaders rank 1; the third user ranks 3.
	above, err := repo.CountWithScoreAbove(ctx, nil, 500)
	if err != nil {
		t.Fatalf("CountWithScoreAbove: %v", err)
	}
	if got := above + 1; got != 1 {
		t.Fatalf("expected rank 1 for tied leaders, got %d", got)
	}
	above, err = repo.CountWithScoreAbove(ctx, nil, 300)
	if err != nil {
		t.Fatalf("CountWithScoreAbove: %v", err)
	}
	if got := above + 1; got != 3 {
		t.Fatalf("expected rank 3 for %s, got %d", ids[2], got)
	}
}
