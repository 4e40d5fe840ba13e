package jobrolestore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"

	dbmodels "interview-trainer-backend/models/db"
)

type Provider interface {
	List() ([]dbmodels.JobRole, error)
	GetByID(id int) (*dbmodels.JobRole, error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) List() ([]dbmodels.JobRole, error) {
	var result []dbmodels.JobRole
	err := i.db.
		Model(dbmodels.JobRole{}).
		Where("id <> ?", dbmodels.CommonPoolRoleID).
		Order("id").
		Find(&result).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list job roles")
	}
	return result, nil
}

func (i impl) GetByID(id int) (*dbmodels.JobRole, error) {
	rec := dbmodels.JobRole{BaseModel: dbmodels.BaseModel{ID: id}}
	err := i.db.First(&rec).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}
