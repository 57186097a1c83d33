package wellness

import (
	"math"

	"github.com/limbo/serene/pkg/entity"
)

type TrendStatus string

const (
	TrendInsufficientData TrendStatus = "insufficient_data"
	TrendPositive         TrendStatus = "positive"
	TrendNormal           TrendStatus = "normal"
	TrendConcerning       TrendStatus = "concerning"
	TrendCritical         TrendStatus = "critical"
)

const (
	// Newest entries taken into account
	TrendWindow = 7

	positiveFrom   = 4.0
	normalFrom     = 3.0
	concerningFrom = 2.0
)

var trendMessages = map[TrendStatus]string{
	TrendInsufficientData: "Log your mood for a few more days to see your trend.",
	TrendPositive:         "You've been feeling great lately! Keep doing what works for you.",
	TrendNormal:           "Your mood has been fairly stable. Remember to take care of yourself.",
	TrendConcerning:       "Your mood has been lower than usual. Consider reaching out to someone you trust.",
	TrendCritical:         "You've been going through a hard time. Please consider talking to a professional or calling a helpline.",
}

var trendLabels = map[TrendStatus]string{
	TrendInsufficientData: "Not enough data",
	TrendPositive:         "Positive",
	TrendNormal:           "Normal",
	TrendConcerning:       "Concerning",
	TrendCritical:         "Critical",
}

type Trend struct {
	Status  TrendStatus `json:"status"`
	Average *float64    `json:"avg"`
	Message string      `json:"message"`
	Alert   bool        `json:"alert"`
	Count   int         `json:"count"`
}

// StatusLabel is the human readable name of a trend status.
func StatusLabel(s TrendStatus) string {
	return trendLabels[s]
}

// AnalyzeTrend classifies entries ordered newest first. The average is rounded
// to one decimal before being compared against the tier boundaries.
func AnalyzeTrend(entries []entity.MoodEntry) Trend {
	if len(entries) < 2 {
		return Trend{
			Status:  TrendInsufficientData,
			Message: trendMessages[TrendInsufficientData],
			Count:   len(entries),
		}
	}
	window := newest(entries, TrendWindow)
	avg := math.Round(MeanScore(window)*10) / 10
	status := classify(avg)
	return Trend{
		Status:  status,
		Average: &avg,
		Message: trendMessages[status],
		Alert:   status == TrendCritical,
		Count:   len(window),
	}
}

// MeanScore is the arithmetic mean of resolved scores, 0 for no entries.
func MeanScore(entries []entity.MoodEntry) float64 {
	if len(entries) == 0 {
		return 0
	}
	sum := 0
	for _, e := range entries {
		sum += ResolveScore(e.Mood)
	}
	return float64(sum) / float64(len(entries))
}

func classify(avg float64) TrendStatus {
	switch {
	case avg >= positiveFrom:
		return TrendPositive
	case avg >= normalFrom:
		return TrendNormal
	case avg >= concerningFrom:
		return TrendConcerning
	default:
		return TrendCritical
	}
}

func newest(entries []entity.MoodEntry, n int) []entity.MoodEntry {
	if len(entries) > n {
		return entries[:n]
	}
	return entries
}
