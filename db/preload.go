package db

import (
	log "github.com/sirupsen/logrus"

	"interview-trainer-backend/models"
	dbmodels "interview-trainer-backend/models/db"
)

func InitPreload() {
	addDefaultUser()
	fillJobRoles()
	fillQuestionPool()
}

func addDefaultUser() {
	var count int64
	if err := DB.Model(&dbmodels.User{}).Count(&count).Error; err != nil {
		log.WithError(err).Error("default user preload error")
		return
	}
	if count > 0 {
		return
	}
	rec := dbmodels.User{
		BaseModel:   dbmodels.BaseModel{ID: models.DefaultUserID},
		Name:        "Alex",
		Surname:     "Candidate",
		AvatarVoice: 0,
	}
	if err := DB.Create(&rec).Error; err != nil {
		log.WithError(err).Error("default user preload error")
	}
}

// Role with ID 3 is the common pool: its questions open every interview.
func fillJobRoles() {
	roles := []dbmodels.JobRole{
		{BaseModel: dbmodels.BaseModel{ID: 1}, Name: "Software Engineer", Description: "Backend and frontend development positions"},
		{BaseModel: dbmodels.BaseModel{ID: 2}, Name: "Data Analyst", Description: "Analytics and reporting positions"},
		{BaseModel: dbmodels.BaseModel{ID: dbmodels.CommonPoolRoleID}, Name: "General", Description: "Warm-up questions asked in every interview"},
		{BaseModel: dbmodels.BaseModel{ID: 4}, Name: "Product Manager", Description: "Product and project management positions"},
	}
	for _, role := range roles {
		existed := dbmodels.JobRole{}
		err := DB.Where("id = ?", role.ID).Limit(1).Find(&existed).Error
		if err != nil {
			log.WithError(err).Error("job role preload error")
			return
		}
		if existed.ID != 0 {
			continue
		}
		if err := DB.Create(&role).Error; err != nil {
			log.WithError(err).Error("job role preload error")
			return
		}
	}
}

func fillQuestionPool() {
	var count int64
	if err := DB.Model(&dbmodels.Question{}).Count(&count).Error; err != nil {
		log.WithError(err).Error("question pool preload error")
		return
	}
	if count > 0 {
		return
	}
	pool := []dbmodels.Question{
		// common pool, asked in every interview
		{JobRoleID: dbmodels.CommonPoolRoleID, QuestionText: "Tell me about yourself.", Difficulty: models.DifficultyEasy, DurationMinutes: 2, DurationSeconds: 0},
		{JobRoleID: dbmodels.CommonPoolRoleID, QuestionText: "Why do you want to work in this role?", Difficulty: models.DifficultyEasy, DurationMinutes: 1, DurationSeconds: 30},

		{JobRoleID: 1, QuestionText: "Describe a challenging bug you fixed and how you tracked it down.", Difficulty: models.DifficultyMedium, DurationMinutes: 2, DurationSeconds: 30},
		{JobRoleID: 1, QuestionText: "How do you decide between readability and performance when writing code?", Difficulty: models.DifficultyMedium, DurationMinutes: 2, DurationSeconds: 0},
		{JobRoleID: 1, QuestionText: "Walk me through the design of a system you are proud of.", Difficulty: models.DifficultyHard, DurationMinutes: 3, DurationSeconds: 0},
		{JobRoleID: 1, QuestionText: "What is your experience with code reviews?", Difficulty: models.DifficultyEasy, DurationMinutes: 1, DurationSeconds: 30},

		{JobRoleID: 2, QuestionText: "Explain a time when your analysis changed a business decision.", Difficulty: models.DifficultyMedium, DurationMinutes: 2, DurationSeconds: 30},
		{JobRoleID: 2, QuestionText: "How do you validate the quality of a dataset before reporting on it?", Difficulty: models.DifficultyMedium, DurationMinutes: 2, DurationSeconds: 0},
		{JobRoleID: 2, QuestionText: "Which visualization would you pick to present churn to executives and why?", Difficulty: models.DifficultyHard, DurationMinutes: 2, DurationSeconds: 30},
		{JobRoleID: 2, QuestionText: "What tools do you use for day-to-day analysis?", Difficulty: models.DifficultyEasy, DurationMinutes: 1, DurationSeconds: 30},

		{JobRoleID: 4, QuestionText: "How do you prioritize a backlog when everything is urgent?", Difficulty: models.DifficultyMedium, DurationMinutes: 2, DurationSeconds: 30},
		{JobRoleID: 4, QuestionText: "Tell me about a product decision you got wrong.", Difficulty: models.DifficultyHard, DurationMinutes: 3, DurationSeconds: 0},
		{JobRoleID: 4, QuestionText: "How do you measure the success of a new feature?", Difficulty: models.DifficultyMedium, DurationMinutes: 2, DurationSeconds: 0},
		{JobRoleID: 4, QuestionText: "What makes a good user story?", Difficulty: models.DifficultyEasy, DurationMinutes: 1, DurationSeconds: 30},
	}
	for idx := range pool {
		pool[idx].Generated = false
	}
	if err := DB.Create(&pool).Error; err != nil {
		log.WithError(err).Error("question pool preload error")
	}
}
