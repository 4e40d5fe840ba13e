package interviewfeedbackstore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"

	dbmodels "interview-trainer-backend/models/db"
)

type Provider interface {
	CreateBatch(recs []dbmodels.InterviewFeedback) error
	ListByInterviewQuestion(interviewQuestionID int) ([]dbmodels.InterviewFeedback, error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) CreateBatch(recs []dbmodels.InterviewFeedback) error {
	if len(recs) == 0 {
		return nil
	}
	err := i.db.Create(&recs).Error
	if err != nil {
		return errors.Wrap(err, "failed to save feedback entries")
	}
	return nil
}

func (i impl) ListByInterviewQuestion(interviewQuestionID int) ([]dbmodels.InterviewFeedback, error) {
	var result []dbmodels.InterviewFeedback
	err := i.db.
		Model(dbmodels.InterviewFeedback{}).
		Where("interview_question_id = ?", interviewQuestionID).
		Order("seconds").
		Find(&result).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list feedback entries")
	}
	return result, nil
}
