package wellness

import "github.com/limbo/serene/pkg/entity"

// Snapshot the badge predicates are evaluated against
type Stats struct {
	TotalLogs         int  `json:"total_logs"`
	Streak            int  `json:"streak"`
	PositiveDays      int  `json:"positive_days"`
	LoggedAfterBadDay bool `json:"logged_after_bad_day"`
	UsedBreathing     bool `json:"used_breathing"`
	UsedJournal       bool `json:"used_journal"`
}

func StatsFrom(p entity.ProfileStats, flags entity.ActivityFlags) Stats {
	return Stats{
		TotalLogs:         p.TotalLogs,
		Streak:            p.Streak,
		PositiveDays:      p.PositiveDays,
		LoggedAfterBadDay: p.LoggedAfterBadDay,
		UsedBreathing:     flags.UsedBreathing,
		UsedJournal:       flags.UsedJournal,
	}
}

type PredicateID string

const (
	PredFirstLog     PredicateID = "first_log"
	PredStreak3      PredicateID = "streak_3"
	PredStreak7      PredicateID = "streak_7"
	PredStreak14     PredicateID = "streak_14"
	PredStreak30     PredicateID = "streak_30"
	PredLogs10       PredicateID = "logs_10"
	PredLogs50       PredicateID = "logs_50"
	PredLogs100      PredicateID = "logs_100"
	PredPositiveWeek PredicateID = "positive_week"
	PredResilient    PredicateID = "resilient"
	PredBreathed     PredicateID = "breathed"
	PredJournaled    PredicateID = "journaled"
)

type Badge struct {
	ID          string      `json:"id"`
	Emoji       string      `json:"emoji"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Predicate   PredicateID `json:"predicate"`
}

type BadgeStatus struct {
	Badge
	Earned bool `json:"earned"`
}

var catalog = []Badge{
	{ID: "first_log", Emoji: "🌱", Title: "First Step", Description: "Log your first mood", Predicate: PredFirstLog},
	{ID: "streak_3", Emoji: "🔥", Title: "Getting Started", Description: "3 day streak", Predicate: PredStreak3},
	{ID: "streak_7", Emoji: "⭐", Title: "One Week", Description: "7 day streak", Predicate: PredStreak7},
	{ID: "streak_14", Emoji: "💪", Title: "Two Weeks Strong", Description: "14 day streak", Predicate: PredStreak14},
	{ID: "streak_30", Emoji: "🏆", Title: "Monthly Master", Description: "30 day streak", Predicate: PredStreak30},
	{ID: "logs_10", Emoji: "📝", Title: "Regular", Description: "Log 10 moods", Predicate: PredLogs10},
	{ID: "logs_50", Emoji: "📚", Title: "Dedicated", Description: "Log 50 moods", Predicate: PredLogs50},
	{ID: "logs_100", Emoji: "💯", Title: "Centurion", Description: "Log 100 moods", Predicate: PredLogs100},
	{ID: "positive_week", Emoji: "☀️", Title: "Sunshine", Description: "7 positive days", Predicate: PredPositiveWeek},
	{ID: "resilient", Emoji: "🌈", Title: "Resilient", Description: "Log again after a terrible day", Predicate: PredResilient},
	{ID: "breathed", Emoji: "🌬️", Title: "Deep Breath", Description: "Complete a breathing exercise", Predicate: PredBreathed},
	{ID: "journaled", Emoji: "📓", Title: "Reflective", Description: "Write your first journal entry", Predicate: PredJournaled},
}

var predicates = map[PredicateID]func(Stats) bool{
	PredFirstLog:     func(s Stats) bool { return s.TotalLogs >= 1 },
	PredStreak3:      func(s Stats) bool { return s.Streak >= 3 },
	PredStreak7:      func(s Stats) bool { return s.Streak >= 7 },
	PredStreak14:     func(s Stats) bool { return s.Streak >= 14 },
	PredStreak30:     func(s Stats) bool { return s.Streak >= 30 },
	PredLogs10:       func(s Stats) bool { return s.TotalLogs >= 10 },
	PredLogs50:       func(s Stats) bool { return s.TotalLogs >= 50 },
	PredLogs100:      func(s Stats) bool { return s.TotalLogs >= 100 },
	PredPositiveWeek: func(s Stats) bool { return s.PositiveDays >= 7 },
	PredResilient:    func(s Stats) bool { return s.LoggedAfterBadDay },
	PredBreathed:     func(s Stats) bool { return s.UsedBreathing },
	PredJournaled:    func(s Stats) bool { return s.UsedJournal },
}

func Catalog() []Badge {
	res := make([]Badge, len(catalog))
	copy(res, catalog)
	return res
}

// Evaluate reports whether the predicate holds. Unknown predicates never hold.
func (id PredicateID) Evaluate(s Stats) bool {
	pred, ok := predicates[id]
	if !ok {
		return false
	}
	return pred(s)
}

// EvaluateBadges tags every catalog badge with its earned state. Nothing is
// persisted, the result is recomputed for each request.
func EvaluateBadges(s Stats) []BadgeStatus {
	res := make([]BadgeStatus, 0, len(catalog))
	for _, b := range catalog {
		res = append(res, BadgeStatus{Badge: b, Earned: b.Predicate.Evaluate(s)})
	}
	return res
}

func EarnedCount(badges []BadgeStatus) int {
	n := 0
	for _, b := range badges {
		if b.Earned {
			n++
		}
	}
	return n
}
