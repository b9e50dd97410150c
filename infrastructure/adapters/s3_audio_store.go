package adapters

import (
	"context"
	"fmt"
	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3iface"
	"net/url"
	"news-video-lambda/application/ports/outbound"
	"news-video-lambda/config"
	"os"
	"strings"
)

type s3AudioStore struct {
	logger   outbound.LoggerPort
	s3Svc    s3iface.S3API
	s3Config *config.S3Config
}

func NewS3AudioStore(logger outbound.LoggerPort, s3Svc s3iface.S3API, s3Config *config.S3Config) outbound.AudioStorePort {
	return &s3AudioStore{
		logger:   logger,
		s3Svc:    s3Svc,
		s3Config: s3Config,
	}
}

func (s *s3AudioStore) Upload(ctx context.Context, req outbound.UploadAudioRequest) (string, error) {
	itemPath := s.getS3ItemPath(req.ObjectKey)

	file, err := os.Open(req.FileName)
	if err != nil {
		s.logger.Error(err, "Failed to open audio file")
		return "", err
	}
	defer func(file *os.File) {
		err := file.Close()
		if err != nil {
			s.logger.Error(err, "Failed to close audio file")
		}
	}(file)

	putInput := &s3.PutObjectInput{
		Bucket:      aws.String(s.s3Config.BucketName),
		Key:         aws.String(itemPath),
		Body:        file,
		ContentType: aws.String("audio/mpeg"),
	}

	_, err = s.s3Svc.PutObjectWithContext(ctx, putInput)
	if err != nil {
		s.logger.ErrorWithFields(err, "Failed to upload object to S3", map[string]interface{}{
			"bucket": s.s3Config.BucketName,
			"key":    itemPath,
		})
		return "", err
	}

	s3Url := s.publicURL(itemPath)
	s.logger.DebugWithFields("Successfully uploaded object to S3", map[string]interface{}{
		"s3Url": s3Url,
	})

	return s3Url, nil
}

func (s *s3AudioStore) getS3ItemPath(objectKey string) string {
	if s.s3Config.KeyPrefix == "" {
		return objectKey
	}
	return strings.TrimSuffix(s.s3Config.KeyPrefix, "/") + "/" + objectKey
}

// publicURL follows the virtual-hosted bucket convention. The bucket is
// expected to serve its objects publicly. Key segments are path-escaped, so
// "big_news!.mp3" is published as "big_news%21.mp3"; S3 resolves both to the
// same object, and titles containing "?" or "#" stay addressable.
func (s *s3AudioStore) publicURL(itemPath string) string {
	segments := strings.Split(itemPath, "/")
	for i, segment := range segments {
		segments[i] = url.PathEscape(segment)
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.s3Config.BucketName, s.s3Config.Region, strings.Join(segments, "/"))
}
