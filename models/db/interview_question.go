package dbmodels

// InterviewQuestion links a pool question to an interview. The set is
// materialized when the interview is created and never re-queried.
// IsAnswered flips to true exactly once, when a submission is accepted.
type InterviewQuestion struct {
	BaseModel
	InterviewID int                 `gorm:"index;uniqueIndex:idx_interview_question" json:"interview_id"`
	QuestionID  int                 `gorm:"uniqueIndex:idx_interview_question" json:"question_id"`
	Question    *Question           `gorm:"foreignKey:QuestionID"`
	IsAnswered  bool                `json:"is_answered"`
	Answer      string              `json:"answer"`
	Duration    int                 `json:"duration"` // seconds spent on this question
	ClipKey     string              `gorm:"type:varchar(512)" json:"clip_key"` // object storage key of the recorded clip
	Feedbacks   []InterviewFeedback `gorm:"foreignKey:InterviewQuestionID;constraint:OnDelete:CASCADE" json:"feedbacks"`
}
