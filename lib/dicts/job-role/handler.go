package jobroleprovider

import (
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"interview-trainer-backend/db"
	jobrolestore "interview-trainer-backend/lib/dicts/job-role/store"
	jobroleapimodels "interview-trainer-backend/models/api/jobrole"
)

type Provider interface {
	// List returns the selectable roles; the common question pool role is
	// internal and never listed.
	List() ([]jobroleapimodels.JobRoleView, error)
	Get(id int) (jobroleapimodels.JobRoleView, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store: jobrolestore.NewInstance(db.DB),
	}
}

type impl struct {
	store jobrolestore.Provider
}

func (i impl) List() ([]jobroleapimodels.JobRoleView, error) {
	recList, err := i.store.List()
	if err != nil {
		log.WithError(err).Error("failed to get job role list")
		return nil, err
	}
	result := make([]jobroleapimodels.JobRoleView, 0, len(recList))
	for _, rec := range recList {
		result = append(result, jobroleapimodels.Convert(rec))
	}
	return result, nil
}

func (i impl) Get(id int) (jobroleapimodels.JobRoleView, error) {
	logger := log.WithField("rec_id", id)
	rec, err := i.store.GetByID(id)
	if err != nil {
		logger.WithError(err).Error("failed to get job role")
		return jobroleapimodels.JobRoleView{}, err
	}
	if rec == nil {
		return jobroleapimodels.JobRoleView{}, errors.New("job role not found")
	}
	return jobroleapimodels.Convert(*rec), nil
}
