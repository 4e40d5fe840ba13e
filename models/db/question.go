package dbmodels

import "interview-trainer-backend/models"

// Question belongs to the contribution pool and lives independently of
// interviews. Duration is stored split in minutes and seconds.
type Question struct {
	BaseModel
	UserID          *int              `gorm:"index" json:"user_id"` // nil for generated questions
	User            *User             `gorm:"foreignKey:UserID"`
	JobRoleID       int               `gorm:"index" json:"job_role_id"`
	JobRole         *JobRole          `gorm:"foreignKey:JobRoleID"`
	QuestionText    string            `json:"question_text"`
	Difficulty      models.Difficulty `json:"difficulty"`
	DurationMinutes int               `json:"duration_minutes"`
	DurationSeconds int               `json:"duration_seconds"`
	Generated       bool              `json:"generated"`
}

// DurationInSeconds flattens the split storage for API responses.
func (q Question) DurationInSeconds() int {
	return q.DurationMinutes*60 + q.DurationSeconds
}
