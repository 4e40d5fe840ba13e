package models

type InterviewStatus int

const (
	InterviewStatusPending  InterviewStatus = 0
	InterviewStatusComplete InterviewStatus = 1
)

type Difficulty int

const (
	DifficultyEasy   Difficulty = 1
	DifficultyMedium Difficulty = 2
	DifficultyHard   Difficulty = 3
)

func (d Difficulty) IsValid() bool {
	return d >= DifficultyEasy && d <= DifficultyHard
}

type FeedbackType int

const (
	FeedbackTypeVerbal    FeedbackType = 0
	FeedbackTypeNonVerbal FeedbackType = 1
)

// DefaultQuestionCount is used when an interview is requested without an
// explicit question count.
const DefaultQuestionCount = 4

// DefaultUserID is the single seeded practice account.
const DefaultUserID = 1
