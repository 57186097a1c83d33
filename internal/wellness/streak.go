package wellness

import (
	"time"

	"github.com/limbo/serene/pkg/entity"
)

// Calendar date layout used for LastLogDate
const DateLayout = "2006-01-02"

// CalendarDay formats t as a calendar date in t's own location.
func CalendarDay(t time.Time) string {
	return t.Format(DateLayout)
}

// NextStats applies one new mood entry logged at now to the previous profile
// counters. now must already be in the logger's local zone.
func NextStats(prev entity.ProfileStats, mood string, now time.Time) entity.ProfileStats {
	today := CalendarDay(now)
	yesterday := CalendarDay(now.Add(-24 * time.Hour))

	next := prev
	switch prev.LastLogDate {
	case yesterday:
		next.Streak = prev.Streak + 1
	case today:
		next.Streak = prev.Streak
	default:
		next.Streak = 1
	}
	next.TotalLogs = prev.TotalLogs + 1
	next.LastLogDate = today
	next.LastMood = mood
	// counts entries, not distinct days
	if IsPositive(mood) {
		next.PositiveDays = prev.PositiveDays + 1
	}
	if prev.LastMood == MoodTerrible && mood != MoodTerrible {
		next.LoggedAfterBadDay = true
	}
	return next
}
