package profilestore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"

	dbmodels "interview-trainer-backend/models/db"
)

type Provider interface {
	GetByID(id int) (*dbmodels.User, error)
	SetVoice(id int, voice int) error
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) GetByID(id int) (*dbmodels.User, error) {
	rec := dbmodels.User{BaseModel: dbmodels.BaseModel{ID: id}}
	err := i.db.First(&rec).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}

func (i impl) SetVoice(id int, voice int) error {
	tx := i.db.
		Model(&dbmodels.User{}).
		Where("id = ?", id).
		Update("avatar_voice", voice)
	if tx.Error != nil {
		return errors.Wrap(tx.Error, "failed to update avatar voice")
	}
	if tx.RowsAffected == 0 {
		return errors.New("user not found")
	}
	return nil
}
