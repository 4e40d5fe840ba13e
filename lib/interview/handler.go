package interviewprovider

import (
	"context"
	"fmt"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"interview-trainer-backend/db"
	jobrolestore "interview-trainer-backend/lib/dicts/job-role/store"
	filestorage "interview-trainer-backend/lib/file-storage"
	interviewfeedbackstore "interview-trainer-backend/lib/interview/feedback-store"
	interviewquestionstore "interview-trainer-backend/lib/interview/question-store"
	interviewstore "interview-trainer-backend/lib/interview/store"
	questionstore "interview-trainer-backend/lib/question/store"
	"interview-trainer-backend/models"
	interviewapimodels "interview-trainer-backend/models/api/interview"
	dbmodels "interview-trainer-backend/models/db"
)

type Provider interface {
	// Create builds a new interview: the common warm-up questions come
	// first, the rest is a random role pick honoring the difficulty filter.
	Create(userID int, request interviewapimodels.CreateRequest) (interviewapimodels.CreateResponse, error)
	List(userID int) ([]interviewapimodels.ListItem, error)
	Get(id int) (interviewapimodels.InterviewView, error)
	Questions(id int) ([]interviewapimodels.SessionQuestion, error)
	Delete(id int) error
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store:         interviewstore.NewInstance(db.DB),
		questionStore: questionstore.NewInstance(db.DB),
		ivQuestStore:  interviewquestionstore.NewInstance(db.DB),
		feedbackStore: interviewfeedbackstore.NewInstance(db.DB),
		jobRoleStore:  jobrolestore.NewInstance(db.DB),
	}
}

type impl struct {
	store         interviewstore.Provider
	questionStore questionstore.Provider
	ivQuestStore  interviewquestionstore.Provider
	feedbackStore interviewfeedbackstore.Provider
	jobRoleStore  jobrolestore.Provider
}

func (i impl) Create(userID int, request interviewapimodels.CreateRequest) (interviewapimodels.CreateResponse, error) {
	logger := log.
		WithField("user_id", userID).
		WithField("job_role_id", request.JobRoleID)
	role, err := i.jobRoleStore.GetByID(request.JobRoleID)
	if err != nil {
		logger.WithError(err).Error("failed to check job role")
		return interviewapimodels.CreateResponse{}, err
	}
	if role == nil {
		return interviewapimodels.CreateResponse{}, errors.New("job role not found")
	}
	nQuestions := request.NQuestions
	if nQuestions == 0 {
		nQuestions = models.DefaultQuestionCount
	}
	selected, err := i.selectQuestions(request.JobRoleID, request.Difficulty, nQuestions)
	if err != nil {
		logger.WithError(err).Error("failed to select interview questions")
		return interviewapimodels.CreateResponse{}, err
	}
	if len(selected) == 0 {
		return interviewapimodels.CreateResponse{}, errors.New("no questions available for the role")
	}
	rec := dbmodels.Interview{
		UserID:     userID,
		JobRoleID:  request.JobRoleID,
		Difficulty: request.Difficulty,
		NQuestions: len(selected),
		Status:     models.InterviewStatusPending,
		Date:       time.Now(),
	}
	id, err := i.store.Create(rec)
	if err != nil {
		logger.
			WithField("request", fmt.Sprintf("%+v", request)).
			WithError(err).
			Error("failed to create interview")
		return interviewapimodels.CreateResponse{}, err
	}
	ivQuestions := make([]dbmodels.InterviewQuestion, 0, len(selected))
	for _, q := range selected {
		ivQuestions = append(ivQuestions, dbmodels.InterviewQuestion{
			InterviewID: id,
			QuestionID:  q.ID,
		})
	}
	if err = i.ivQuestStore.CreateBatch(ivQuestions); err != nil {
		logger.WithField("interview_id", id).WithError(err).Error("failed to attach questions")
		return interviewapimodels.CreateResponse{}, err
	}
	logger.
		WithField("interview_id", id).
		WithField("questions", len(selected)).
		Info("interview created")
	result := interviewapimodels.CreateResponse{
		InterviewID: id,
		Questions:   make([]interviewapimodels.SessionQuestion, 0, len(selected)),
	}
	for _, q := range selected {
		result.Questions = append(result.Questions, toSessionQuestion(q, false))
	}
	return result, nil
}

// selectQuestions keeps the warm-up pool in its stored order and fills the
// remainder with a random role-specific pick.
func (i impl) selectQuestions(jobRoleID int, difficulty *models.Difficulty, nQuestions int) ([]dbmodels.Question, error) {
	common, err := i.questionStore.ListCommonPool()
	if err != nil {
		return nil, err
	}
	if len(common) > nQuestions {
		common = common[:nQuestions]
	}
	remaining := nQuestions - len(common)
	if remaining <= 0 {
		return common, nil
	}
	random, err := i.questionStore.PickRandom(jobRoleID, difficulty, nil, remaining)
	if err != nil {
		return nil, err
	}
	return append(common, random...), nil
}

func (i impl) List(userID int) ([]interviewapimodels.ListItem, error) {
	recList, err := i.store.ListByUser(userID)
	if err != nil {
		log.WithField("user_id", userID).WithError(err).Error("failed to list interviews")
		return nil, err
	}
	result := make([]interviewapimodels.ListItem, 0, len(recList))
	for _, rec := range recList {
		item := interviewapimodels.ListItem{
			InterviewID: rec.ID,
			RoleName:    rec.JobRole.Name,
			Difficulty:  rec.Difficulty,
			Date:        rec.Date,
			Status:      rec.Status,
			NQuestions:  rec.NQuestions,
			Duration:    rec.Duration,
			Questions:   make([]interviewapimodels.SessionQuestion, 0, len(rec.Questions)),
		}
		for _, ivq := range rec.Questions {
			if ivq.Question == nil {
				continue
			}
			item.Questions = append(item.Questions, toSessionQuestion(*ivq.Question, ivq.IsAnswered))
		}
		result = append(result, item)
	}
	return result, nil
}

func (i impl) Get(id int) (interviewapimodels.InterviewView, error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		log.WithField("interview_id", id).WithError(err).Error("failed to get interview")
		return interviewapimodels.InterviewView{}, err
	}
	if rec == nil {
		return interviewapimodels.InterviewView{}, errors.New("interview not found")
	}
	return interviewapimodels.Convert(*rec), nil
}

func (i impl) Questions(id int) ([]interviewapimodels.SessionQuestion, error) {
	recList, err := i.ivQuestStore.ListByInterview(id)
	if err != nil {
		log.WithField("interview_id", id).WithError(err).Error("failed to list interview questions")
		return nil, err
	}
	result := make([]interviewapimodels.SessionQuestion, 0, len(recList))
	for _, rec := range recList {
		if rec.Question == nil {
			continue
		}
		result = append(result, toSessionQuestion(*rec.Question, rec.IsAnswered))
	}
	return result, nil
}

func (i impl) Delete(id int) error {
	logger := log.WithField("interview_id", id)
	err := i.store.Delete(id)
	if err != nil {
		logger.WithError(err).Error("failed to delete interview")
		return err
	}
	// recorded clips are cleaned up best effort, orphans only cost storage
	if err = filestorage.Instance.DeleteInterviewClips(context.Background(), id); err != nil {
		logger.WithError(err).Warn("failed to delete interview clips")
	}
	logger.Info("interview deleted")
	return nil
}

func toSessionQuestion(q dbmodels.Question, isAnswered bool) interviewapimodels.SessionQuestion {
	return interviewapimodels.SessionQuestion{
		ID:           q.ID,
		QuestionText: q.QuestionText,
		Difficulty:   q.Difficulty,
		Duration:     q.DurationInSeconds(),
		IsAnswered:   isAnswered,
	}
}
