package wellness

import "strings"

// Matched as plain substrings of the lower-cased text. False positives are
// accepted, missing a crisis phrase is not.
var crisisKeywords = []string{
	"suicide",
	"suicidal",
	"kill myself",
	"killing myself",
	"want to die",
	"wanna die",
	"die",
	"end my life",
	"end it all",
	"ending it all",
	"take my own life",
	"better off dead",
	"no reason to live",
	"not worth living",
	"don't want to live",
	"dont want to live",
	"don’t want to live",
	"don't want to be here",
	"self harm",
	"self-harm",
	"selfharm",
	"hurt myself",
	"hurting myself",
	"cut myself",
	"cutting myself",
	"overdose",
	"hopeless",
	"can't go on",
	"cant go on",
}

const CrisisMessage = "I'm really concerned about what you've shared. You don't have to go through this alone. " +
	"Please reach out right now: call or text 988 (Suicide & Crisis Lifeline, US), text HOME to 741741 " +
	"(Crisis Text Line), or contact your local emergency number. " +
	"If you are in immediate danger, please call emergency services."

type Helpline struct {
	Name    string `json:"name"`
	Contact string `json:"contact"`
	Region  string `json:"region"`
}

var helplines = []Helpline{
	{Name: "Suicide & Crisis Lifeline", Contact: "988", Region: "US"},
	{Name: "Crisis Text Line", Contact: "Text HOME to 741741", Region: "US"},
	{Name: "Samaritans", Contact: "116 123", Region: "UK"},
	{Name: "Emergency services", Contact: "112 / 911", Region: "International"},
}

func Helplines() []Helpline {
	res := make([]Helpline, len(helplines))
	copy(res, helplines)
	return res
}

func CrisisKeywords() []string {
	res := make([]string, len(crisisKeywords))
	copy(res, crisisKeywords)
	return res
}

// DetectCrisis reports whether text contains any crisis keyword.
func DetectCrisis(text string) bool {
	lower := strings.ToLower(text)
	for _, kw := range crisisKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}
