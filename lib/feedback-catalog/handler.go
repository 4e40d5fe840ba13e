package feedbackcatalog

import (
	"strings"

	feedbackapimodels "interview-trainer-backend/models/api/feedback"
)

type Provider interface {
	GetVerbal() []feedbackapimodels.VerbalEntry
	GetNonVerbal() []feedbackapimodels.NonVerbalEntry
	// FindVerbalByWord matches a spoken word against the verbal triggers.
	// The match is exact and case-insensitive, substrings never match.
	FindVerbalByWord(word string) *feedbackapimodels.VerbalEntry
	// GetNonVerbalByPolarity returns the fixed positive or negative list
	// used by the polarity-driven selection branch.
	GetNonVerbalByPolarity(positive bool) []feedbackapimodels.NonVerbalEntry
}

var Instance Provider

func NewHandler() {
	byWord := make(map[string]int, len(verbalCatalog))
	for idx, entry := range verbalCatalog {
		byWord[strings.ToLower(entry.Word)] = idx
	}
	Instance = impl{byWord: byWord}
}

type impl struct {
	byWord map[string]int
}

func (i impl) GetVerbal() []feedbackapimodels.VerbalEntry {
	result := make([]feedbackapimodels.VerbalEntry, len(verbalCatalog))
	copy(result, verbalCatalog)
	return result
}

func (i impl) GetNonVerbal() []feedbackapimodels.NonVerbalEntry {
	result := make([]feedbackapimodels.NonVerbalEntry, len(nonVerbalCatalog))
	copy(result, nonVerbalCatalog)
	return result
}

func (i impl) FindVerbalByWord(word string) *feedbackapimodels.VerbalEntry {
	idx, ok := i.byWord[strings.ToLower(strings.TrimSpace(word))]
	if !ok {
		return nil
	}
	entry := verbalCatalog[idx]
	return &entry
}

func (i impl) GetNonVerbalByPolarity(positive bool) []feedbackapimodels.NonVerbalEntry {
	src := nonVerbalNegative
	if positive {
		src = nonVerbalPositive
	}
	result := make([]feedbackapimodels.NonVerbalEntry, len(src))
	copy(result, src)
	return result
}
