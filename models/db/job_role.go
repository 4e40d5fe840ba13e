package dbmodels

// CommonPoolRoleID is the role whose question pool is included in every interview.
const CommonPoolRoleID = 3

type JobRole struct {
	BaseModel
	Name        string `gorm:"type:varchar(255)" json:"name"`
	Description string `json:"description"`
}
