package dbmodels

import (
	"time"

	"interview-trainer-backend/models"
)

type Interview struct {
	BaseModel
	UserID     int                     `gorm:"index" json:"user_id"`
	JobRoleID  int                     `gorm:"index" json:"job_role_id"`
	JobRole    *JobRole                `gorm:"foreignKey:JobRoleID"`
	Difficulty *models.Difficulty      `json:"difficulty"` // nil = mixed
	NQuestions int                     `json:"n_questions"`
	Status     models.InterviewStatus  `json:"status"`
	Date       time.Time               `json:"date"`
	Duration   int                     `json:"duration"` // total seconds, set on completion
	Questions  []InterviewQuestion     `gorm:"foreignKey:InterviewID;constraint:OnDelete:CASCADE" json:"questions"`
}
