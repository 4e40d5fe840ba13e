package dbmodels

// User is the single practice account. There is no authentication layer,
// the seeded user owns every human-submitted question and interview.
type User struct {
	BaseModel
	Name        string `gorm:"type:varchar(255)" json:"name"`
	Surname     string `gorm:"type:varchar(255)" json:"surname"`
	AvatarVoice int    `json:"avatar_voice"` // 0 - female, 1 - male
}
