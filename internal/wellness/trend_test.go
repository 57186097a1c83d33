package wellness_test

import (
	"testing"

	"github.com/limbo/serene/internal/wellness"
	"github.com/limbo/serene/pkg/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func entries(moods ...string) []entity.MoodEntry {
	res := make([]entity.MoodEntry, 0, len(moods))
	for _, m := range moods {
		res = append(res, entity.MoodEntry{Mood: m})
	}
	return res
}

func TestResolveScore(t *testing.T) {
	testCases := []struct {
		Mood  string
		Score int
	}{
		{Mood: "terrible", Score: 1},
		{Mood: "sad", Score: 2},
		{Mood: "neutral", Score: 3},
		{Mood: "good", Score: 4},
		{Mood: "great", Score: 5},
		{Mood: "", Score: 3},
		{Mood: "ecstatic", Score: 3},
		{Mood: "GREAT", Score: 3},
	}
	for _, tc := range testCases {
		assert.Equal(t, tc.Score, wellness.ResolveScore(tc.Mood), tc.Mood)
	}
}

func TestAnalyzeTrend(t *testing.T) {
	testCases := []struct {
		Desc    string
		Entries []entity.MoodEntry
		Status  wellness.TrendStatus
		Average float64
		Alert   bool
	}{
		{
			Desc:    "critical on three terrible",
			Entries: entries("terrible", "terrible", "terrible"),
			Status:  wellness.TrendCritical,
			Average: 1.0,
			Alert:   true,
		},
		{
			Desc:    "positive week",
			Entries: entries("good", "great", "good", "neutral", "good", "great", "good"),
			Status:  wellness.TrendPositive,
			Average: 4.1,
		},
		{
			Desc:    "exactly four is positive",
			Entries: entries("good", "good"),
			Status:  wellness.TrendPositive,
			Average: 4.0,
		},
		{
			Desc:    "normal",
			Entries: entries("neutral", "good"),
			Status:  wellness.TrendNormal,
			Average: 3.5,
		},
		{
			Desc:    "exactly two is concerning",
			Entries: entries("sad", "sad"),
			Status:  wellness.TrendConcerning,
			Average: 2.0,
		},
		{
			Desc:    "below two is critical",
			Entries: entries("sad", "terrible"),
			Status:  wellness.TrendCritical,
			Average: 1.5,
			Alert:   true,
		},
		{
			Desc:    "only the newest seven count",
			Entries: entries("great", "great", "great", "great", "great", "great", "great", "terrible", "terrible"),
			Status:  wellness.TrendPositive,
			Average: 5.0,
		},
		{
			// 13/7 = 1.857
			Desc:    "average rounded to one decimal",
			Entries: entries("sad", "sad", "sad", "sad", "sad", "sad", "terrible"),
			Status:  wellness.TrendCritical,
			Average: 1.9,
			Alert:   true,
		},
		{
			Desc:    "unknown mood counts as neutral",
			Entries: entries("???", "neutral"),
			Status:  wellness.TrendNormal,
			Average: 3.0,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			trend := wellness.AnalyzeTrend(tc.Entries)
			require.NotNil(t, trend.Average)
			assert.InDelta(t, tc.Average, *trend.Average, 0.0001)
			assert.Equal(t, tc.Status, trend.Status)
			assert.Equal(t, tc.Alert, trend.Alert)
			assert.NotEmpty(t, trend.Message)
		})
	}
}

func TestAnalyzeTrendInsufficientData(t *testing.T) {
	for _, es := range [][]entity.MoodEntry{nil, entries("terrible")} {
		trend := wellness.AnalyzeTrend(es)
		assert.Equal(t, wellness.TrendInsufficientData, trend.Status)
		assert.Nil(t, trend.Average)
		assert.False(t, trend.Alert)
		assert.NotEmpty(t, trend.Message)
	}
}

func TestStatusLabel(t *testing.T) {
	assert.Equal(t, "Critical", wellness.StatusLabel(wellness.TrendCritical))
	assert.Equal(t, "Not enough data", wellness.StatusLabel(wellness.TrendInsufficientData))
}

func TestShouldAlertLowMood(t *testing.T) {
	testCases := []struct {
		Desc    string
		Entries []entity.MoodEntry
		Alert   bool
	}{
		{Desc: "three terrible", Entries: entries("terrible", "terrible", "terrible"), Alert: true},
		{Desc: "two low entries are not enough", Entries: entries("terrible", "terrible"), Alert: false},
		{Desc: "mean exactly 2.5", Entries: entries("sad", "neutral", "sad", "neutral"), Alert: false},
		{Desc: "mean below 2.5", Entries: entries("sad", "sad", "neutral"), Alert: true},
		{Desc: "concerning display tier still alerts", Entries: entries("sad", "sad", "sad"), Alert: true},
		{Desc: "unknown moods default to neutral", Entries: entries("x", "y", "z"), Alert: false},
		{
			Desc:    "older entries outside the window are ignored",
			Entries: entries("great", "great", "great", "great", "great", "great", "great", "terrible", "terrible", "terrible"),
			Alert:   false,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			assert.Equal(t, tc.Alert, wellness.ShouldAlertLowMood(tc.Entries))
		})
	}
}
