package profileprovider

import (
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"interview-trainer-backend/db"
	profilestore "interview-trainer-backend/lib/profile/store"
	profileapimodels "interview-trainer-backend/models/api/profile"
)

type Provider interface {
	Get(userID int) (profileapimodels.ProfileView, error)
	// SetVoice picks the interviewer avatar voice: 0 female, 1 male.
	SetVoice(userID int, voice int) error
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store: profilestore.NewInstance(db.DB),
	}
}

type impl struct {
	store profilestore.Provider
}

func (i impl) Get(userID int) (profileapimodels.ProfileView, error) {
	rec, err := i.store.GetByID(userID)
	if err != nil {
		log.WithField("user_id", userID).WithError(err).Error("failed to get profile")
		return profileapimodels.ProfileView{}, err
	}
	if rec == nil {
		return profileapimodels.ProfileView{}, errors.New("user not found")
	}
	return profileapimodels.Convert(*rec), nil
}

func (i impl) SetVoice(userID int, voice int) error {
	logger := log.
		WithField("user_id", userID).
		WithField("voice", voice)
	err := i.store.SetVoice(userID, voice)
	if err != nil {
		logger.WithError(err).Error("failed to update avatar voice")
		return err
	}
	logger.Info("avatar voice updated")
	return nil
}
