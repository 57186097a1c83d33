// Package wellness holds the pure mood arithmetic: taxonomy, trend classification,
// streak bookkeeping, badge evaluation and the crisis keyword gate.
package wellness

const (
	MoodTerrible = "terrible"
	MoodSad      = "sad"
	MoodNeutral  = "neutral"
	MoodGood     = "good"
	MoodGreat    = "great"
)

// Score used for any mood value outside of the taxonomy
const NeutralScore = 3

type MoodInfo struct {
	ID    string `json:"id"`
	Score int    `json:"score"`
	Emoji string `json:"emoji"`
	Label string `json:"label"`
	Color string `json:"color"`
}

var moods = []MoodInfo{
	{ID: MoodTerrible, Score: 1, Emoji: "😢", Label: "Terrible", Color: "#ef4444"},
	{ID: MoodSad, Score: 2, Emoji: "😔", Label: "Sad", Color: "#f97316"},
	{ID: MoodNeutral, Score: 3, Emoji: "😐", Label: "Neutral", Color: "#eab308"},
	{ID: MoodGood, Score: 4, Emoji: "🙂", Label: "Good", Color: "#22c55e"},
	{ID: MoodGreat, Score: 5, Emoji: "😄", Label: "Great", Color: "#10b981"},
}

// Moods returns the taxonomy ordered from the lowest score to the highest.
func Moods() []MoodInfo {
	res := make([]MoodInfo, len(moods))
	copy(res, moods)
	return res
}

func Lookup(id string) (MoodInfo, bool) {
	for _, m := range moods {
		if m.ID == id {
			return m, true
		}
	}
	return MoodInfo{}, false
}

func IsValidMood(id string) bool {
	_, ok := Lookup(id)
	return ok
}

// ResolveScore maps a mood id to its 1..5 score. Unknown or corrupt ids
// resolve to NeutralScore instead of failing.
func ResolveScore(id string) int {
	if m, ok := Lookup(id); ok {
		return m.Score
	}
	return NeutralScore
}

func IsPositive(id string) bool {
	return id == MoodGood || id == MoodGreat
}
