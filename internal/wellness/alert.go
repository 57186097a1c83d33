package wellness

import "github.com/limbo/serene/pkg/entity"

// Low mood push alerting. Kept apart from the trend display tiers.
const (
	LowMoodWindow     = 7
	LowMoodThreshold  = 2.5
	LowMoodMinEntries = 3
)

// ShouldAlertLowMood takes the author's entries newest first, including the
// one that was just created.
func ShouldAlertLowMood(entries []entity.MoodEntry) bool {
	recent := newest(entries, LowMoodWindow)
	if len(recent) < LowMoodMinEntries {
		return false
	}
	return MeanScore(recent) < LowMoodThreshold
}
