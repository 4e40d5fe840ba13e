package feedbackapimodels

// VerbalEntry is a catalog row triggered by a spoken keyword.
type VerbalEntry struct {
	ID         int    `json:"id"`
	Word       string `json:"word"`
	Text       string `json:"text"`
	Type       int    `json:"type"`
	IsPositive int    `json:"is_positive"`
}

// NonVerbalEntry is a catalog row about body language; it carries no
// trigger word, picks are timer-driven.
type NonVerbalEntry struct {
	ID         int    `json:"id"`
	Text       string `json:"text"`
	Type       int    `json:"type"`
	IsPositive int    `json:"is_positive"`
}
