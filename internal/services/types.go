package services

import "time"

// Client is a person under screening. The id is a time-ordered token,
// stable for the client's lifetime.
type Client struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	BirthDate time.Time `json:"birthDate"`
	AddedDate time.Time `json:"addedDate"`
}

// Result is the persisted outcome of one completed questionnaire session.
// Answers holds the selected point value per question, in question order.
// Scores/Interpretations are set only for dual-scale tests (HADS).
type Result struct {
	ID              string            `json:"id"`
	ClientID        string            `json:"clientId"`
	TestID          string            `json:"testId"`
	Date            time.Time         `json:"date"`
	Score           int               `json:"score"`
	Answers         []int             `json:"answers"`
	Interpretation  string            `json:"interpretation,omitempty"`
	Scores          map[string]int    `json:"scores,omitempty"`
	Interpretations map[string]string `json:"interpretations,omitempty"`
}

// Analysis is an AI-generated narrative summary derived from a client's
// results. Append-only.
type Analysis struct {
	ID             string    `json:"id"`
	ClientID       string    `json:"clientId"`
	Date           time.Time `json:"date"`
	Text           string    `json:"text"`
	TestResultsIDs []string  `json:"testResultsIds"`
}

// Settings are the persisted display and AI preferences.
type Settings struct {
	Theme    string `json:"theme"`
	FontSize int    `json:"fontSize"`
	APIKey   string `json:"apiKey,omitempty"`
}

// AgeYears computes a whole-year age with the 365.25-day-year approximation
// used throughout reports and the AI prompt.
func AgeYears(birth, now time.Time) int {
	const yearHours = 365.25 * 24
	return int(now.Sub(birth).Hours() / yearHours)
}
