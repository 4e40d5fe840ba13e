package gpthandler

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"interview-trainer-backend/config"
	"interview-trainer-backend/db"
	jobrolestore "interview-trainer-backend/lib/dicts/job-role/store"
	yagptclient "interview-trainer-backend/lib/gpt/yagpt-client"
	questionstore "interview-trainer-backend/lib/question/store"
	"interview-trainer-backend/models"
	questionapimodels "interview-trainer-backend/models/api/question"
	dbmodels "interview-trainer-backend/models/db"
)

const sysPrompt = "You are an experienced technical recruiter building question pools for mock interviews."

const genTemplate = `Generate %v interview questions for the role "%v".
Cover easy, medium and hard difficulty.
Respond with a JSON array only, no prose, in this format:
[{"text":"...","difficulty":1,"duration_minutes":2,"duration_seconds":0}]
difficulty is 1 (easy), 2 (medium) or 3 (hard).`

type Provider interface {
	// GeneratePoolQuestions asks the model for new pool questions for the
	// role and stores them marked as generated.
	GeneratePoolQuestions(ctx context.Context, request questionapimodels.GenerateRequest) ([]questionapimodels.QuestionView, error)
}

type impl struct {
	client        yagptclient.Provider
	questionStore questionstore.Provider
	jobRoleStore  jobrolestore.Provider
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		client:        yagptclient.NewClient(config.Conf.YandexGPT.IAMToken, config.Conf.YandexGPT.CatalogID),
		questionStore: questionstore.NewInstance(db.DB),
		jobRoleStore:  jobrolestore.NewInstance(db.DB),
	}
}

type generatedQuestion struct {
	Text            string `json:"text"`
	Difficulty      int    `json:"difficulty"`
	DurationMinutes int    `json:"duration_minutes"`
	DurationSeconds int    `json:"duration_seconds"`
}

func (i impl) GeneratePoolQuestions(ctx context.Context, request questionapimodels.GenerateRequest) ([]questionapimodels.QuestionView, error) {
	logger := log.
		WithField("job_role_id", request.JobRoleID).
		WithField("count", request.Count)
	role, err := i.jobRoleStore.GetByID(request.JobRoleID)
	if err != nil {
		logger.WithError(err).Error("failed to check job role")
		return nil, err
	}
	if role == nil {
		return nil, errors.New("job role not found")
	}
	text := fmt.Sprintf(genTemplate, request.Count, role.Name)
	answer, err := i.client.GenerateByPromptAndText(ctx, sysPrompt, text)
	if err != nil {
		logger.WithError(err).Error("failed to generate questions")
		return nil, err
	}
	generated, err := parseGenerated(answer)
	if err != nil {
		logger.
			WithField("answer", answer).
			WithError(err).
			Error("failed to parse generated questions")
		return nil, err
	}
	result := make([]questionapimodels.QuestionView, 0, len(generated))
	for _, gq := range generated {
		difficulty := models.Difficulty(gq.Difficulty)
		if !difficulty.IsValid() {
			difficulty = models.DifficultyMedium
		}
		rec := dbmodels.Question{
			JobRoleID:       request.JobRoleID,
			QuestionText:    gq.Text,
			Difficulty:      difficulty,
			DurationMinutes: gq.DurationMinutes,
			DurationSeconds: gq.DurationSeconds,
			Generated:       true,
		}
		if rec.DurationInSeconds() == 0 {
			rec.DurationMinutes = 2
		}
		id, err := i.questionStore.Create(rec)
		if err != nil {
			logger.WithError(err).Error("failed to save generated question")
			return nil, err
		}
		rec.ID = id
		result = append(result, questionapimodels.Convert(rec))
	}
	logger.
		WithField("generated", len(result)).
		Info("pool questions generated")
	return result, nil
}

// parseGenerated tolerates the model wrapping the array in a code fence.
func parseGenerated(answer string) ([]generatedQuestion, error) {
	answer = strings.TrimSpace(answer)
	if start := strings.Index(answer, "["); start >= 0 {
		if end := strings.LastIndex(answer, "]"); end > start {
			answer = answer[start : end+1]
		}
	}
	var result []generatedQuestion
	if err := json.Unmarshal([]byte(answer), &result); err != nil {
		return nil, errors.Wrap(err, "unexpected model answer format")
	}
	if len(result) == 0 {
		return nil, errors.New("model returned no questions")
	}
	return result, nil
}
