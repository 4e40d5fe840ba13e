package normalizevideo

import (
	"context"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/minio/minio-go/v7"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// Run re-encodes an uploaded answer clip into a uniform webm
// (720p, vp9 + opus) and replaces the original object with the
// normalized one, returning the updated upload info.
func Run(s3client *minio.Client, info minio.UploadInfo) (minio.UploadInfo, error) {
	ctx := context.Background()
	logger := log.WithFields(log.Fields{
		"bucket": info.Bucket,
		"key":    info.Key,
	})

	s3file, err := s3client.GetObject(ctx, info.Bucket, info.Key, minio.GetObjectOptions{})
	if err != nil {
		return info, errors.Wrap(err, "failed to fetch the clip from s3")
	}
	defer s3file.Close()

	tempDir, err := os.MkdirTemp("", "clip_normalize_*")
	if err != nil {
		return info, errors.Wrap(err, "failed to create a temp directory")
	}
	defer os.RemoveAll(tempDir)

	inputFile := filepath.Join(tempDir, "input_clip")
	outputFile := filepath.Join(tempDir, "output_clip.webm")

	inputFileHandle, err := os.Create(inputFile)
	if err != nil {
		return info, errors.Wrap(err, "failed to create a temp file")
	}
	_, err = io.Copy(inputFileHandle, s3file)
	inputFileHandle.Close()
	if err != nil {
		return info, errors.Wrap(err, "failed to store the original clip")
	}

	// webm, 1280x720, 2000k video bitrate
	cmd := exec.Command("ffmpeg",
		"-i", inputFile,
		"-vf", "scale=1280:720:force_original_aspect_ratio=decrease,pad=1280:720:(ow-iw)/2:(oh-ih)/2",
		"-c:v", "libvpx-vp9",
		"-b:v", "2000k",
		"-c:a", "libopus",
		"-y",
		outputFile,
	)
	output, err := cmd.CombinedOutput()
	if err != nil {
		logger.WithError(err).WithField("ffmpeg_output", string(output)).Error("ffmpeg run failed")
		return info, errors.Wrapf(err, "failed to normalize the clip: %s", string(output))
	}

	outputStat, err := os.Stat(outputFile)
	if err != nil {
		return info, errors.Wrap(err, "normalized clip was not produced")
	}

	originalKey := info.Key
	ext := filepath.Ext(originalKey)
	newKey := strings.TrimSuffix(originalKey, ext) + "_n.webm"

	normalizedFile, err := os.Open(outputFile)
	if err != nil {
		return info, errors.Wrap(err, "failed to open the normalized clip")
	}
	defer normalizedFile.Close()

	uploadInfo, err := s3client.PutObject(ctx, info.Bucket, newKey, normalizedFile, outputStat.Size(), minio.PutObjectOptions{
		ContentType: "video/webm",
	})
	if err != nil {
		return info, errors.Wrap(err, "failed to upload the normalized clip")
	}

	err = s3client.RemoveObject(ctx, info.Bucket, originalKey, minio.RemoveObjectOptions{})
	if err != nil {
		// the normalized clip is already in place, the stale original is the
		// only leftover
		logger.WithError(err).WithField("original_key", originalKey).Warn("failed to remove the original clip")
	}

	logger.WithFields(log.Fields{
		"normalized_key":  newKey,
		"original_size":   info.Size,
		"normalized_size": uploadInfo.Size,
	}).Info("answer clip normalized")

	info.Key = newKey
	info.Size = uploadInfo.Size
	info.ETag = uploadInfo.ETag
	info.LastModified = uploadInfo.LastModified
	return info, nil
}
