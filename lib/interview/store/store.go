package interviewstore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"interview-trainer-backend/models"
	dbmodels "interview-trainer-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.Interview) (id int, err error)
	GetByID(id int) (*dbmodels.Interview, error)
	ListByUser(userID int) ([]dbmodels.Interview, error)
	// Complete flips the interview to the finished status and stores the
	// total elapsed seconds.
	Complete(id int, duration int) error
	Delete(id int) error
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.Interview) (int, error) {
	err := i.db.
		Omit("JobRole", "Questions").
		Create(&rec).Error
	if err != nil {
		return 0, errors.Wrap(err, "failed to create interview")
	}
	return rec.ID, nil
}

func (i impl) GetByID(id int) (*dbmodels.Interview, error) {
	rec := dbmodels.Interview{BaseModel: dbmodels.BaseModel{ID: id}}
	err := i.db.
		Preload("JobRole").
		Preload("Questions").
		Preload("Questions.Question").
		First(&rec).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}

func (i impl) ListByUser(userID int) ([]dbmodels.Interview, error) {
	var result []dbmodels.Interview
	err := i.db.
		Model(dbmodels.Interview{}).
		Preload("JobRole").
		Preload("Questions").
		Preload("Questions.Question").
		Where("user_id = ?", userID).
		Order("date DESC").
		Find(&result).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list interviews")
	}
	return result, nil
}

func (i impl) Complete(id int, duration int) error {
	tx := i.db.
		Model(&dbmodels.Interview{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":   models.InterviewStatusComplete,
			"duration": duration,
		})
	if tx.Error != nil {
		return errors.Wrap(tx.Error, "failed to complete interview")
	}
	if tx.RowsAffected == 0 {
		return errors.New("interview not found")
	}
	return nil
}

func (i impl) Delete(id int) error {
	// question and feedback rows go with it via the cascade constraint
	tx := i.db.
		Where("id = ?", id).
		Delete(&dbmodels.Interview{})
	if tx.Error != nil {
		return errors.Wrap(tx.Error, "failed to delete interview")
	}
	if tx.RowsAffected == 0 {
		return errors.New("interview not found")
	}
	return nil
}
