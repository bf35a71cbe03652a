package services

import (
	"math"
	"sort"
	"time"

	"github.com/charanreddy9081/sports-vision-trainer/internal/types"
)

type ModuleStats struct {
	Count           int      `json:"count"`
	AvgScore        float64  `json:"avg_score"`
	AvgAccuracy     float64  `json:"avg_accuracy"`
	AvgReactionTime *float64 `json:"avg_reaction_time,omitempty"`
}

// StatsSummary is derived from the session log on every query and never
// persisted.
type StatsSummary struct {
	TotalSessions   int                      `json:"total_sessions"`
	TotalScore      int                      `json:"total_score"`
	AvgAccuracy     float64                  `json:"avg_accuracy"`
	AvgReactionTime *float64                 `json:"avg_reaction_time"`
	Streak          int                      `json:"streak"`
	StatsByModule   map[string]ModuleStats   `json:"stats_by_module"`
	RecentSessions  []*types.TrainingSession `json:"recent_sessions"`
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// buildStatsSummary aggregates a user's full session history. now anchors
// the streak walk and carries the server's reference time zone.
func buildStatsSummary(sessions []*types.TrainingSession, now time.Time, recentN int) *StatsSummary {
	summary := &StatsSummary{
		TotalSessions: len(sessions),
		StatsByModule: make(map[string]ModuleStats, len(types.ModuleTypes)),
	}

	var accuracySum float64
	var reactionSum float64
	var reactionCount int
	for _, s := range sessions {
		summary.TotalScore += s.Score
		accuracySum += s.Accuracy
		if s.ReactionTime != nil {
			reactionSum += *s.ReactionTime
			reactionCount++
		}
	}
	if len(sessions) > 0 {
		summary.AvgAccuracy = round2(accuracySum / float64(len(sessions)))
	}
	if reactionCount > 0 {
		avg := round2(reactionSum / float64(reactionCount))
		summary.AvgReactionTime = &avg
	}

	for _, mt := range types.ModuleTypes {
		summary.StatsByModule[mt] = moduleStatsFor(sessions, mt)
	}

	summary.Streak = computeStreak(sessions, now)

	if recentN > len(sessions) {
		recentN = len(sessions)
	}
	summary.RecentSessions = sessions[:recentN]
	return summary
}

func moduleStatsFor(sessions []*types.TrainingSession, moduleType string) ModuleStats {
	var (
		count        int
		scoreSum     int
		accuracySum  float64
		reactionSum  float64
		reactionSeen int
	)
	for _, s := range sessions {
		if s.ModuleType != moduleType {
			continue
		}
		count++
		scoreSum += s.Score
		accuracySum += s.Accuracy
		if s.ReactionTime != nil {
			reactionSum += *s.ReactionTime
			reactionSeen++
		}
	}
	ms := ModuleStats{Count: count}
	if count > 0 {
		ms.AvgScore = float64(scoreSum) / float64(count)
		ms.AvgAccuracy = accuracySum / float64(count)
	}
	// Reaction time only means anything for the reaction module; other
	// modules omit the field entirely.
	if moduleType == types.ModuleReaction {
		avg := 0.0
		if reactionSeen > 0 {
			avg = reactionSum / float64(reactionSeen)
		}
		ms.AvgReactionTime = &avg
	}
	return ms
}

// computeStreak counts consecutive calendar days ending today that each
// contain at least one session. A day without sessions stops the walk; a
// gap is never skipped, so sessions yesterday with none today yield 0.
func computeStreak(sessions []*types.TrainingSession, now time.Time) int {
	if len(sessions) == 0 {
		return 0
	}
	loc := now.Location()

	seen := make(map[time.Time]struct{}, len(sessions))
	for _, s := range sessions {
		seen[startOfDay(s.CreatedAt.In(loc))] = struct{}{}
	}
	days := make([]time.Time, 0, len(seen))
	for d := range seen {
		days = append(days, d)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].After(days[j]) })

	streak := 0
	checkDate := startOfDay(now)
	for _, day := range days {
		if day.Equal(checkDate) {
			streak++
			checkDate = checkDate.AddDate(0, 0, -1)
		} else if day.Before(checkDate) {
			break
		}
	}
	return streak
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
