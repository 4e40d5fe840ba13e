package questionprovider

import (
	"fmt"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"interview-trainer-backend/db"
	jobrolestore "interview-trainer-backend/lib/dicts/job-role/store"
	questionstore "interview-trainer-backend/lib/question/store"
	questionapimodels "interview-trainer-backend/models/api/question"
	dbmodels "interview-trainer-backend/models/db"
)

type Provider interface {
	Create(userID int, request questionapimodels.QuestionData) (id int, err error)
	Update(id int, request questionapimodels.QuestionData) error
	Delete(id int) error
	Get(id int) (item questionapimodels.QuestionView, err error)
	ListByRole(jobRoleID int) ([]questionapimodels.QuestionView, error)
	ListByUser(userID int) ([]questionapimodels.QuestionView, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store:        questionstore.NewInstance(db.DB),
		jobRoleStore: jobrolestore.NewInstance(db.DB),
	}
}

type impl struct {
	store        questionstore.Provider
	jobRoleStore jobrolestore.Provider
}

func (i impl) Create(userID int, request questionapimodels.QuestionData) (int, error) {
	logger := log.WithField("user_id", userID)
	role, err := i.jobRoleStore.GetByID(request.JobRoleID)
	if err != nil {
		logger.WithError(err).Error("failed to check job role")
		return 0, err
	}
	if role == nil {
		return 0, errors.New("job role not found")
	}
	rec := dbmodels.Question{
		UserID:          &userID,
		JobRoleID:       request.JobRoleID,
		QuestionText:    request.QuestionText,
		Difficulty:      request.Difficulty,
		DurationMinutes: request.DurationMinutes,
		DurationSeconds: request.DurationSeconds,
	}
	id, err := i.store.Create(rec)
	if err != nil {
		logger.
			WithField("request", fmt.Sprintf("%+v", request)).
			WithError(err).
			Error("failed to create question")
		return 0, err
	}
	logger.
		WithField("rec_id", id).
		Info("question contributed")
	return id, nil
}

func (i impl) Update(id int, request questionapimodels.QuestionData) error {
	logger := log.WithField("rec_id", id)
	updMap := map[string]interface{}{
		"question_text":    request.QuestionText,
		"difficulty":       request.Difficulty,
		"duration_minutes": request.DurationMinutes,
		"duration_seconds": request.DurationSeconds,
	}
	err := i.store.Update(id, updMap)
	if err != nil {
		logger.
			WithField("request", fmt.Sprintf("%+v", request)).
			WithError(err).
			Error("failed to update question")
		return err
	}
	logger.Info("question updated")
	return nil
}

func (i impl) Delete(id int) error {
	logger := log.WithField("rec_id", id)
	err := i.store.Delete(id)
	if err != nil {
		logger.WithError(err).Error("failed to delete question")
		return err
	}
	logger.Info("question deleted")
	return nil
}

func (i impl) Get(id int) (questionapimodels.QuestionView, error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		log.WithField("rec_id", id).WithError(err).Error("failed to get question")
		return questionapimodels.QuestionView{}, err
	}
	if rec == nil {
		return questionapimodels.QuestionView{}, errors.New("question not found")
	}
	return questionapimodels.Convert(*rec), nil
}

func (i impl) ListByRole(jobRoleID int) ([]questionapimodels.QuestionView, error) {
	recList, err := i.store.ListByRole(jobRoleID)
	if err != nil {
		log.WithField("job_role_id", jobRoleID).WithError(err).Error("failed to list questions")
		return nil, err
	}
	return convertList(recList), nil
}

func (i impl) ListByUser(userID int) ([]questionapimodels.QuestionView, error) {
	recList, err := i.store.ListByUser(userID)
	if err != nil {
		log.WithField("user_id", userID).WithError(err).Error("failed to list contributed questions")
		return nil, err
	}
	return convertList(recList), nil
}

func convertList(recList []dbmodels.Question) []questionapimodels.QuestionView {
	result := make([]questionapimodels.QuestionView, 0, len(recList))
	for _, rec := range recList {
		result = append(result, questionapimodels.Convert(rec))
	}
	return result
}
