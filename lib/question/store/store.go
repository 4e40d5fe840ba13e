package questionstore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"interview-trainer-backend/models"
	dbmodels "interview-trainer-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.Question) (id int, err error)
	Update(id int, updMap map[string]interface{}) error
	Delete(id int) error
	GetByID(id int) (*dbmodels.Question, error)
	ListByRole(jobRoleID int) ([]dbmodels.Question, error)
	ListByUser(userID int) ([]dbmodels.Question, error)
	// PickRandom selects up to limit random pool questions for the role,
	// optionally pinned to one difficulty, excluding the given ids.
	PickRandom(jobRoleID int, difficulty *models.Difficulty, excludeIDs []int, limit int) ([]dbmodels.Question, error)
	// ListCommonPool returns the fixed questions every interview starts with.
	ListCommonPool() ([]dbmodels.Question, error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.Question) (int, error) {
	err := i.db.
		Omit("User", "JobRole").
		Create(&rec).Error
	if err != nil {
		return 0, errors.Wrap(err, "failed to create question")
	}
	return rec.ID, nil
}

func (i impl) Update(id int, updMap map[string]interface{}) error {
	tx := i.db.
		Model(&dbmodels.Question{}).
		Where("id = ?", id).
		Updates(updMap)
	if tx.Error != nil {
		return errors.Wrap(tx.Error, "failed to update question")
	}
	if tx.RowsAffected == 0 {
		return errors.New("question not found")
	}
	return nil
}

func (i impl) Delete(id int) error {
	tx := i.db.
		Where("id = ?", id).
		Delete(&dbmodels.Question{})
	if tx.Error != nil {
		return errors.Wrap(tx.Error, "failed to delete question")
	}
	if tx.RowsAffected == 0 {
		return errors.New("question not found")
	}
	return nil
}

func (i impl) GetByID(id int) (*dbmodels.Question, error) {
	rec := dbmodels.Question{BaseModel: dbmodels.BaseModel{ID: id}}
	err := i.db.First(&rec).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}

func (i impl) ListByRole(jobRoleID int) ([]dbmodels.Question, error) {
	var result []dbmodels.Question
	err := i.db.
		Model(dbmodels.Question{}).
		Where("job_role_id = ?", jobRoleID).
		Order("id").
		Find(&result).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list questions by role")
	}
	return result, nil
}

func (i impl) ListByUser(userID int) ([]dbmodels.Question, error) {
	var result []dbmodels.Question
	err := i.db.
		Model(dbmodels.Question{}).
		Where("user_id = ?", userID).
		Order("id").
		Find(&result).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list contributed questions")
	}
	return result, nil
}

func (i impl) PickRandom(jobRoleID int, difficulty *models.Difficulty, excludeIDs []int, limit int) ([]dbmodels.Question, error) {
	var result []dbmodels.Question
	tx := i.db.
		Model(dbmodels.Question{}).
		Where("job_role_id = ?", jobRoleID)
	if difficulty != nil {
		tx = tx.Where("difficulty = ?", *difficulty)
	}
	if len(excludeIDs) != 0 {
		tx = tx.Where("id NOT IN ?", excludeIDs)
	}
	err := tx.
		Order("RANDOM()").
		Limit(limit).
		Find(&result).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to pick random questions")
	}
	return result, nil
}

func (i impl) ListCommonPool() ([]dbmodels.Question, error) {
	var result []dbmodels.Question
	err := i.db.
		Model(dbmodels.Question{}).
		Where("job_role_id = ?", dbmodels.CommonPoolRoleID).
		Order("id").
		Find(&result).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list common pool questions")
	}
	return result, nil
}
