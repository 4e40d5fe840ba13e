package interviewapimodels

import (
	"time"

	"github.com/pkg/errors"

	"interview-trainer-backend/models"
	dbmodels "interview-trainer-backend/models/db"
)

type CreateRequest struct {
	JobRoleID  int                `json:"job_role_id"`
	Difficulty *models.Difficulty `json:"difficulty,omitempty"`  // nil = mixed
	NQuestions int                `json:"n_questions,omitempty"` // defaults to 4
}

func (r CreateRequest) Validate() error {
	if r.JobRoleID == 0 {
		return errors.New("job role is not specified")
	}
	if r.Difficulty != nil && !r.Difficulty.IsValid() {
		return errors.New("unknown difficulty value")
	}
	if r.NQuestions < 0 {
		return errors.New("invalid question count")
	}
	return nil
}

// SessionQuestion is what the client needs to run one question of the
// session: pool id, text, difficulty and the reference duration in seconds.
type SessionQuestion struct {
	ID           int               `json:"id"`
	QuestionText string            `json:"question_text"`
	Difficulty   models.Difficulty `json:"difficulty"`
	Duration     int               `json:"duration"`
	IsAnswered   bool              `json:"is_answered"`
}

type CreateResponse struct {
	InterviewID int               `json:"interview_id"`
	Questions   []SessionQuestion `json:"questions"`
}

type InterviewView struct {
	ID         int                    `json:"id"`
	JobRoleID  int                    `json:"job_role_id"`
	Difficulty *models.Difficulty     `json:"difficulty"`
	NQuestions int                    `json:"n_questions"`
	Status     models.InterviewStatus `json:"status"`
	Date       time.Time              `json:"date"`
	Duration   int                    `json:"duration"`
}

func Convert(rec dbmodels.Interview) InterviewView {
	return InterviewView{
		ID:         rec.ID,
		JobRoleID:  rec.JobRoleID,
		Difficulty: rec.Difficulty,
		NQuestions: rec.NQuestions,
		Status:     rec.Status,
		Date:       rec.Date,
		Duration:   rec.Duration,
	}
}

// ListItem is the denormalized history row: interview data with the role
// name and the nested question set carrying answered flags.
type ListItem struct {
	InterviewID int                    `json:"interview_id"`
	RoleName    string                 `json:"role_name"`
	Difficulty  *models.Difficulty     `json:"interview_difficulty"`
	Date        time.Time              `json:"date"`
	Status      models.InterviewStatus `json:"status"`
	NQuestions  int                    `json:"n_questions"`
	Duration    int                    `json:"duration"`
	Questions   []SessionQuestion      `json:"questions"`
}

type AnswerView struct {
	ID         int    `json:"id"`
	IsAnswered bool   `json:"is_answered"`
	Answer     string `json:"answer"`
	Duration   int    `json:"duration"` // answering time in seconds
}

type FeedbackView struct {
	Text       string `json:"text"`
	Seconds    int    `json:"seconds"`
	IsPositive int    `json:"is_positive"`
}

type AnswerWithFeedback struct {
	Answer             AnswerView     `json:"answer"`
	VerbalFeedbacks    []FeedbackView `json:"verbalFeedbacks"`
	NonVerbalFeedbacks []FeedbackView `json:"nonVerbalFeedbacks"`
}

// FeedbackItem is one injected feedback entry as accumulated by the session
// and serialized inside the multipart submission.
type FeedbackItem struct {
	ID         int    `json:"id"`
	Text       string `json:"text"`
	Type       int    `json:"type"`
	IsPositive int    `json:"is_positive"`
	Seconds    int    `json:"seconds"`
}

type SubmitAnswerRequest struct {
	InterviewID       int
	QuestionID        int
	Answer            string
	Clip              []byte
	ClipContentType   string
	VerbalFeedback    []FeedbackItem
	NonVerbalFeedback []FeedbackItem
	Status            models.InterviewStatus
	QuestionDuration  int
	InterviewDuration *int // set only when Status is complete
}

func (r SubmitAnswerRequest) Validate() error {
	if r.InterviewID == 0 || r.QuestionID == 0 {
		return errors.New("interview or question is not specified")
	}
	if r.Status == models.InterviewStatusComplete && r.InterviewDuration == nil {
		return errors.New("total duration is required to complete the interview")
	}
	return nil
}
