package interviewquestionstore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"

	dbmodels "interview-trainer-backend/models/db"
)

type Provider interface {
	CreateBatch(recs []dbmodels.InterviewQuestion) error
	Get(interviewID, questionID int) (*dbmodels.InterviewQuestion, error)
	ListByInterview(interviewID int) ([]dbmodels.InterviewQuestion, error)
	// MarkAnswered stores the transcript, the answering time and the clip
	// key, and flips the answered flag.
	MarkAnswered(interviewID, questionID int, answer string, duration int, clipKey string) error
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) CreateBatch(recs []dbmodels.InterviewQuestion) error {
	if len(recs) == 0 {
		return nil
	}
	err := i.db.
		Omit("Question", "Feedbacks").
		Create(&recs).Error
	if err != nil {
		return errors.Wrap(err, "failed to attach questions to interview")
	}
	return nil
}

func (i impl) Get(interviewID, questionID int) (*dbmodels.InterviewQuestion, error) {
	var rec dbmodels.InterviewQuestion
	err := i.db.
		Preload("Question").
		Where("interview_id = ? AND question_id = ?", interviewID, questionID).
		First(&rec).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}

func (i impl) ListByInterview(interviewID int) ([]dbmodels.InterviewQuestion, error) {
	var result []dbmodels.InterviewQuestion
	err := i.db.
		Model(dbmodels.InterviewQuestion{}).
		Preload("Question").
		Where("interview_id = ?", interviewID).
		Order("id").
		Find(&result).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list interview questions")
	}
	return result, nil
}

func (i impl) MarkAnswered(interviewID, questionID int, answer string, duration int, clipKey string) error {
	tx := i.db.
		Model(&dbmodels.InterviewQuestion{}).
		Where("interview_id = ? AND question_id = ?", interviewID, questionID).
		Updates(map[string]interface{}{
			"is_answered": true,
			"answer":      answer,
			"duration":    duration,
			"clip_key":    clipKey,
		})
	if tx.Error != nil {
		return errors.Wrap(tx.Error, "failed to mark question answered")
	}
	if tx.RowsAffected == 0 {
		return errors.New("interview question not found")
	}
	return nil
}
