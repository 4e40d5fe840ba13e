package db

import (
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	dbmodels "interview-trainer-backend/models/db"
)

func AutoMigrateDB() error {
	log.Info("running migrations")
	if err := DB.AutoMigrate(&dbmodels.User{}); err != nil {
		return errors.Wrap(err, "migration error for User")
	}
	if err := DB.AutoMigrate(&dbmodels.JobRole{}); err != nil {
		return errors.Wrap(err, "migration error for JobRole")
	}
	if err := DB.AutoMigrate(&dbmodels.Question{}); err != nil {
		return errors.Wrap(err, "migration error for Question")
	}
	if err := DB.AutoMigrate(&dbmodels.Interview{}); err != nil {
		return errors.Wrap(err, "migration error for Interview")
	}
	if err := DB.AutoMigrate(&dbmodels.InterviewQuestion{}); err != nil {
		return errors.Wrap(err, "migration error for InterviewQuestion")
	}
	if err := DB.AutoMigrate(&dbmodels.InterviewFeedback{}); err != nil {
		return errors.Wrap(err, "migration error for InterviewFeedback")
	}
	log.Info("migrations finished")
	return nil
}
