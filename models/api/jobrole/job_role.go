package jobroleapimodels

import (
	dbmodels "interview-trainer-backend/models/db"
)

type JobRoleView struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

func Convert(rec dbmodels.JobRole) JobRoleView {
	return JobRoleView{
		ID:          rec.ID,
		Name:        rec.Name,
		Description: rec.Description,
	}
}
