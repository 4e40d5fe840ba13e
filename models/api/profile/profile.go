package profileapimodels

import (
	"github.com/pkg/errors"

	dbmodels "interview-trainer-backend/models/db"
)

type ProfileView struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Surname     string `json:"surname"`
	AvatarVoice int    `json:"avatar_voice"`
}

func Convert(rec dbmodels.User) ProfileView {
	return ProfileView{
		ID:          rec.ID,
		Name:        rec.Name,
		Surname:     rec.Surname,
		AvatarVoice: rec.AvatarVoice,
	}
}

type UpdateRequest struct {
	Voice int `json:"voice"`
}

func (r UpdateRequest) Validate() error {
	if r.Voice != 0 && r.Voice != 1 {
		return errors.New("voice must be 0 (female) or 1 (male)")
	}
	return nil
}
