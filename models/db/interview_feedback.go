package dbmodels

import "interview-trainer-backend/models"

// InterviewFeedback rows are append-only: the session inserts them when an
// answer is submitted and they are only ever read back in full.
type InterviewFeedback struct {
	BaseModel
	InterviewQuestionID int                 `gorm:"index" json:"interview_question_id"`
	Text                string              `json:"text"`
	Type                models.FeedbackType `json:"type"`
	IsPositive          int                 `json:"is_positive"`
	Seconds             int                 `json:"seconds"` // offset into the question's elapsed time
}
