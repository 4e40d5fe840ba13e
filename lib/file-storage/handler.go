package filestorage

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/minio/minio-go/v7"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"interview-trainer-backend/config"
	normalizevideo "interview-trainer-backend/lib/utils/normalize-video"
)

type Provider interface {
	// UploadClip stores a recorded answer and returns its object key.
	UploadClip(ctx context.Context, interviewID, questionID int, clip []byte, contentType string) (key string, err error)
	GetClip(ctx context.Context, key string) (clip []byte, contentType string, err error)
	// DeleteInterviewClips removes every clip recorded for the interview.
	DeleteInterviewClips(ctx context.Context, interviewID int) error
}

var Instance Provider

func NewHandler(s3client *minio.Client) {
	Instance = &impl{
		s3client: s3client,
	}
}

type impl struct {
	s3client *minio.Client
}

func (i impl) UploadClip(ctx context.Context, interviewID, questionID int, clip []byte, contentType string) (string, error) {
	if contentType == "" {
		contentType = "video/webm"
	}
	key := clipKey(interviewID, questionID)
	info, err := i.s3client.PutObject(ctx, config.Conf.S3.BucketName, key,
		bytes.NewReader(clip), int64(len(clip)),
		minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		return "", errors.Wrap(err, "failed to upload answer clip")
	}
	if config.Conf.S3.NormalizeClips != nil && *config.Conf.S3.NormalizeClips {
		normalized, err := normalizevideo.Run(i.s3client, info)
		if err != nil {
			log.WithError(err).WithField("key", key).Error("failed to normalize answer clip")
		} else {
			key = normalized.Key
		}
	}
	log.
		WithField("key", key).
		WithField("size", len(clip)).
		Info("answer clip uploaded")
	return key, nil
}

func (i impl) GetClip(ctx context.Context, key string) ([]byte, string, error) {
	obj, err := i.s3client.GetObject(ctx, config.Conf.S3.BucketName, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, "", errors.Wrap(err, "failed to get answer clip")
	}
	defer obj.Close()
	stat, err := obj.Stat()
	if err != nil {
		return nil, "", errors.Wrap(err, "failed to stat answer clip")
	}
	data, err := io.ReadAll(obj)
	if err != nil {
		return nil, "", errors.Wrap(err, "failed to read answer clip")
	}
	return data, stat.ContentType, nil
}

func (i impl) DeleteInterviewClips(ctx context.Context, interviewID int) error {
	prefix := fmt.Sprintf("interview/%v/", interviewID)
	objectCh := i.s3client.ListObjects(ctx, config.Conf.S3.BucketName, minio.ListObjectsOptions{
		Prefix:    prefix,
		Recursive: true,
	})
	for object := range objectCh {
		if object.Err != nil {
			return errors.Wrap(object.Err, "failed to list interview clips")
		}
		err := i.s3client.RemoveObject(ctx, config.Conf.S3.BucketName, object.Key, minio.RemoveObjectOptions{})
		if err != nil {
			return errors.Wrap(err, "failed to remove interview clip")
		}
	}
	return nil
}

func clipKey(interviewID, questionID int) string {
	return fmt.Sprintf("interview/%v/%v.webm", interviewID, questionID)
}
