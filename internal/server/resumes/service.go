// Package resumes issues presigned upload URLs for resume files and
// announces new uploads to the analysis queue.
package resumes

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	sc "github.com/skillbridge/skillbridge/internal/server/config"
)

// presignExpiry bounds how long an issued upload URL stays usable.
const presignExpiry = 15 * time.Minute

// Seams for tests: the AWS client constructors and presign calls can be
// swapped out without a real endpoint.
var (
	loadDefaultAWSConfig = awsconfig.LoadDefaultConfig

	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) *s3.Client {
		return s3.NewFromConfig(cfg, optFns...)
	}

	newS3PresignClient = func(c *s3.Client) *s3.PresignClient {
		return s3.NewPresignClient(c)
	}

	presignPutObject = func(pc *s3.PresignClient, ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		return pc.PresignPutObject(ctx, in, optFns...)
	}
)

// Notifier announces a registered resume upload downstream. The queue
// publisher implements it; a nil notifier disables announcements.
type Notifier interface {
	ResumeRegistered(ctx context.Context, email, storageKey string) error
}

type Service struct {
	config   *sc.Config
	notifier Notifier
}

func NewService(cfg *sc.Config, notifier Notifier) *Service {
	return &Service{config: cfg, notifier: notifier}
}

// storageKey namespaces resume objects by account and date.
func storageKey(email string) string {
	d := time.Now()
	return fmt.Sprintf("resumes/%s/%d/%d/%d/%v", email, d.Year(), d.Month(), d.Day(), uuid.New())
}

func (s *Service) getPresignClient() (*s3.PresignClient, error) {
	cfg, err := loadDefaultAWSConfig(context.Background(),
		awsconfig.WithRegion(s.config.S3Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			s.config.S3AccessKey,
			s.config.S3SecretKey,
			"",
		)))
	if err != nil {
		return nil, err
	}

	client := newS3ClientFromConfig(cfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(s.config.S3BaseEndpoint)
	})

	return newS3PresignClient(client), nil
}

// UploadURL issues a presigned PUT URL for a new resume object belonging to
// the given account, notifies the queue when one is configured, and returns
// the object key alongside the URL.
func (s *Service) UploadURL(ctx context.Context, email string) (string, string, error) {
	presignClient, err := s.getPresignClient()
	if err != nil {
		return "", "", err
	}

	bucket := s.config.S3Bucket
	key := storageKey(email)

	req, err := presignPutObject(presignClient, ctx, &s3.PutObjectInput{
		Bucket: &bucket,
		Key:    &key,
	}, s3.WithPresignExpires(presignExpiry))
	if err != nil {
		return "", "", err
	}

	if s.notifier != nil {
		if err := s.notifier.ResumeRegistered(ctx, email, key); err != nil {
			// The upload URL is still good; analysis can be re-triggered.
			return key, req.URL, fmt.Errorf("resume registered but notification failed: %w", err)
		}
	}

	return key, req.URL, nil
}
