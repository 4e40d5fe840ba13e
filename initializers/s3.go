package initializers

import (
	"context"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	log "github.com/sirupsen/logrus"

	"interview-trainer-backend/config"
	s3client "interview-trainer-backend/s3"
)

func InitS3() {
	minioClient, err := minio.New(config.Conf.S3.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(config.Conf.S3.AccessKeyID, config.Conf.S3.SecretAccessKey, ""),
		Secure: *config.Conf.S3.UseSSL,
	})
	if err != nil {
		log.WithError(err).Error("S3 client init error")
		return
	}
	s3client.Client = minioClient

	if err = s3client.EnsureBucket(context.Background()); err != nil {
		log.WithError(err).Error("S3 connection failed, clip storage is unavailable")
		return
	}
	log.Info("S3 client initialized")
}
