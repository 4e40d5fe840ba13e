package questionapimodels

import (
	"github.com/pkg/errors"

	"interview-trainer-backend/models"
	dbmodels "interview-trainer-backend/models/db"
)

type QuestionData struct {
	JobRoleID       int               `json:"job_role_id"`
	QuestionText    string            `json:"question_text"`
	Difficulty      models.Difficulty `json:"difficulty"`
	DurationMinutes int               `json:"duration_minutes"`
	DurationSeconds int               `json:"duration_seconds"`
}

func (r QuestionData) Validate() error {
	if r.JobRoleID == 0 {
		return errors.New("job role is not specified")
	}
	if r.QuestionText == "" {
		return errors.New("question text is empty")
	}
	if !r.Difficulty.IsValid() {
		return errors.New("unknown difficulty value")
	}
	if r.DurationMinutes < 0 || r.DurationSeconds < 0 || r.DurationSeconds > 59 {
		return errors.New("invalid question duration")
	}
	return nil
}

type QuestionView struct {
	ID              int               `json:"id"`
	UserID          *int              `json:"user_id"`
	JobRoleID       int               `json:"job_role_id"`
	QuestionText    string            `json:"question_text"`
	Difficulty      models.Difficulty `json:"difficulty"`
	DurationMinutes int               `json:"duration_minutes"`
	DurationSeconds int               `json:"duration_seconds"`
	Generated       bool              `json:"generated"`
}

func Convert(rec dbmodels.Question) QuestionView {
	return QuestionView{
		ID:              rec.ID,
		UserID:          rec.UserID,
		JobRoleID:       rec.JobRoleID,
		QuestionText:    rec.QuestionText,
		Difficulty:      rec.Difficulty,
		DurationMinutes: rec.DurationMinutes,
		DurationSeconds: rec.DurationSeconds,
		Generated:       rec.Generated,
	}
}

type GenerateRequest struct {
	JobRoleID int `json:"job_role_id"`
	Count     int `json:"count"`
}

func (r GenerateRequest) Validate() error {
	if r.JobRoleID == 0 {
		return errors.New("job role is not specified")
	}
	if r.Count <= 0 || r.Count > 20 {
		return errors.New("count must be between 1 and 20")
	}
	return nil
}
