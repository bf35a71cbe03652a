package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/charanreddy9081/sports-vision-trainer/internal/repos"
	"github.com/charanreddy9081/sports-vision-trainer/internal/types"
)

func validInput() CreateSessionInput {
	return CreateSessionInput{
		ModuleType:      types.ModuleReaction,
		Score:           120,
		Accuracy:        95.5,
		ReactionTime:    f64(0.35),
		DurationSeconds: 60,
	}
}

func TestValidateCreateSession(t *testing.T) {
	cases := []struct {
		name      string
		mutate    func(*CreateSessionInput)
		wantField string
	}{
		{"valid", func(in *CreateSessionInput) {}, ""},
		{"accuracy at upper bound", func(in *CreateSessionInput) { in.Accuracy = 100 }, ""},
		{"accuracy at lower bound", func(in *CreateSessionInput) { in.Accuracy = 0 }, ""},
		{"score zero", func(in *CreateSessionInput) { in.Score = 0 }, ""},
		{"no reaction time", func(in *CreateSessionInput) { in.ReactionTime = nil }, ""},
		{"accuracy above 100", func(in *CreateSessionInput) { in.Accuracy = 100.0001 }, "accuracy"},
		{"accuracy negative", func(in *CreateSessionInput) { in.Accuracy = -0.1 }, "accuracy"},
		{"score negative", func(in *CreateSessionInput) { in.Score = -1 }, "score"},
		{"duration zero", func(in *CreateSessionInput) { in.DurationSeconds = 0 }, "duration"},
		{"unknown module", func(in *CreateSessionInput) { in.ModuleType = "SPRINT" }, "module_type"},
		{"empty module", func(in *CreateSessionInput) { in.ModuleType = "" }, "module_type"},
		{"reaction time zero", func(in *CreateSessionInput) { in.ReactionTime = f64(0) }, "reaction_time"},
		{"reaction time negative", func(in *CreateSessionInput) { in.ReactionTime = f64(-0.2) }, "reaction_time"},
		{"malformed session id", func(in *CreateSessionInput) { in.SessionID = "not-a-uuid" }, "session_id"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := validInput()
			tc.mutate(&in)
			vErr, _ := validateCreateSession(in)
			if tc.wantField == "" {
				if vErr != nil {
					t.Fatalf("expected valid input, got %v", vErr)
				}
				return
			}
			if vErr == nil {
				t.Fatalf("expected validation error on %q", tc.wantField)
			}
			if vErr.Field != tc.wantField {
				t.Fatalf("expected field %q got %q", tc.wantField, vErr.Field)
			}
		})
	}
}

func newTrainingFixture(t *testing.T) (TrainingService, repos.LeaderboardRepo, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	log := newTestLogger(t)
	sessions := repos.NewTrainingSessionRepo(db, log)
	leaderboard := repos.NewLeaderboardRepo(db, log)
	svc := NewTrainingService(db, log, sessions, leaderboard, nil)
	return svc, leaderboard, db
}

func TestCreateSession_UpdatesLeaderboardAndStats(t *testing.T) {
	svc, leaderboard, db := newTrainingFixture(t)
	ctx := context.Background()
	user := seedUser(t, db, "iris")

	row, err := svc.CreateSession(ctx, user.ID, validInput())
	if err != nil {
		t.Fatalf("CreateSession: %v", err)
	}
	if row.ID == uuid.Nil {
		t.Fatalf("expected server-assigned session id")
	}

	entry, err := leaderboard.GetByUserID(ctx, nil, user.ID)
	if err != nil {
		t.Fatalf("leaderboard entry missing after ingest: %v", err)
	}
	if entry.TotalScore != 120 {
		t.Fatalf("expected total=120 got %d", entry.TotalScore)
	}

	stats, err := svc.GetStats(ctx, user.ID)
	if err != nil {
		t.Fatalf("GetStats: %v", err)
	}
	if stats.TotalSessions != 1 || stats.TotalScore != 120 {
		t.Fatalf("unexpected totals: %d sessions, %d score", stats.TotalSessions, stats.TotalScore)
	}
	if stats.AvgReactionTime == nil || *stats.AvgReactionTime != 0.35 {
		t.Fatalf("expected avgReactionTime=0.35 got %v", stats.AvgReactionTime)
	}
	if stats.Streak != 1 {
		t.Fatalf("expected streak=1 after an ingest today, got %d", stats.Streak)
	}
	if len(stats.RecentSessions) != 1 || stats.RecentSessions[0].ID != row.ID {
		t.Fatalf("expected the new session in recent history")
	}
}

func TestCreateSession_RetrySameIDAppliesOnce(t *testing.T) {
	svc, leaderboard, db := newTrainingFixture(t)
	ctx := context.Background()
	user := seedUser(t, db, "jude")

	in := validInput()
	in.SessionID = uuid.NewString()

	if _, err := svc.CreateSession(ctx, user.ID, in); err != nil {
		t.Fatalf("first CreateSession: %v", err)
	}
	if _, err := svc.CreateSession(ctx, user.ID, in); err != nil {
		t.Fatalf("retry CreateSession: %v", err)
	}

	entry, err := leaderboard.GetByUserID(ctx, nil, user.ID)
	if err != nil {
		t.Fatalf("GetByUserID: %v", err)
	}
	if entry.TotalScore != 120 {
		t.Fatalf("retry double-counted: total=%d", entry.TotalScore)
	}
	stats, err := svc.GetStats(ctx, user.ID)
	if err != nil {
		t.Fatalf("GetStats: %v", err)
	}
	if stats.TotalSessions != 1 {
		t.Fatalf("retry created a second session: %d", stats.TotalSessions)
	}
}

func TestCreateSession_TotalMatchesSessionSum(t *testing.T) {
	svc, leaderboard, db := newTrainingFixture(t)
	ctx := context.Background()
	user := seedUser(t, db, "kai")

	modules := []string{types.ModuleReaction, types.ModuleTracking, types.ModuleColorMatch, types.ModuleTargetHit}
	want := 0
	for i := 0; i < 12; i++ {
		in := validInput()
		in.ModuleType = modules[i%len(modules)]
		in.Score = 10 * (i + 1)
		if in.ModuleType != types.ModuleReaction {
			in.ReactionTime = nil
		}
		want += in.Score
		if _, err := svc.CreateSession(ctx, user.ID, in); err != nil {
			t.Fatalf("CreateSession %d: %v", i, err)
		}
	}

	entry, err := leaderboard.GetByUserID(ctx, nil, user.ID)
	if err != nil {
		t.Fatalf("GetByUserID: %v", err)
	}
	stats, err := svc.GetStats(ctx, user.ID)
	if err != nil {
		t.Fatalf("GetStats: %v", err)
	}
	if entry.TotalScore != want || stats.TotalScore != want {
		t.Fatalf("leaderboard total %d and stats total %d must both equal %d", entry.TotalScore, stats.TotalScore, want)
	}
	if len(stats.RecentSessions) != recentSessionsShown {
		t.Fatalf("expected %d recent sessions got %d", recentSessionsShown, len(stats.RecentSessions))
	}
}

func TestCreateSession_RejectsInvalidWithoutWriting(t *testing.T) {
	svc, _, db := newTrainingFixture(t)
	ctx := context.Background()
	user := seedUser(t, db, "lena")

	in := validInput()
	in.Accuracy = 120
	if _, err := svc.CreateSession(ctx, user.ID, in); err == nil {
		t.Fatalf("expected validation error")
	}

	var count int64
	if err := db.Model(&types.TrainingSession{}).Count(&count).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 0 {
		t.Fatalf("invalid report persisted a session")
	}
}

func TestCreateSession_RequiresAuthenticatedUser(t *testing.T) {
	svc, _, _ := newTrainingFixture(t)
	if _, err := svc.CreateSession(context.Background(), uuid.Nil, validInput()); err == nil {
		t.Fatalf("expected error for nil user id")
	}
}
