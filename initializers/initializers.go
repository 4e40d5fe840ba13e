package initializers

import (
	"context"

	"interview-trainer-backend/config"
	"interview-trainer-backend/fiberlog"
	answerprovider "interview-trainer-backend/lib/answer"
	jobroleprovider "interview-trainer-backend/lib/dicts/job-role"
	xlsexport "interview-trainer-backend/lib/export/xls"
	feedbackcatalog "interview-trainer-backend/lib/feedback-catalog"
	filestorage "interview-trainer-backend/lib/file-storage"
	gpthandler "interview-trainer-backend/lib/gpt"
	interviewprovider "interview-trainer-backend/lib/interview"
	profileprovider "interview-trainer-backend/lib/profile"
	questionprovider "interview-trainer-backend/lib/question"
	sessionhub "interview-trainer-backend/lib/session/hub"
	s3 "interview-trainer-backend/s3"
)

var LoggerConfig *fiberlog.Config

func InitAllServices(ctx context.Context) {
	LoggerConfig = InitLogger()
	config.InitConfig()
	InitDBConnection()
	InitS3()
	InitSmtp()
	sessionhub.Init()
	filestorage.NewHandler(s3.Client)
	feedbackcatalog.NewHandler()
	jobroleprovider.NewHandler()
	questionprovider.NewHandler()
	interviewprovider.NewHandler()
	answerprovider.NewHandler()
	profileprovider.NewHandler()
	gpthandler.NewHandler()
	xlsexport.NewHandler()
}
