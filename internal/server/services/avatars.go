package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/dmitrijs2005/esgportal/internal/autherr"
	"github.com/dmitrijs2005/esgportal/internal/server/auth"
	sc "github.com/dmitrijs2005/esgportal/internal/server/config"
	"github.com/google/uuid"
)

const avatarUploadValidity = 15 * time.Minute

var avatarExtensions = map[string]string{
	"image/png":  "png",
	"image/jpeg": "jpg",
	"image/webp": "webp",
	"image/gif":  "gif",
}

var (
	loadDefaultAWSConfig = config.LoadDefaultConfig

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

// AvatarService hands out presigned S3 uploads for profile photos.
type AvatarService struct {
	config *sc.Config
}

func NewAvatarService(config *sc.Config) *AvatarService {
	return &AvatarService{config: config}
}

// AvatarStorageKey returns a fresh object key under the user's prefix.
func AvatarStorageKey(uid, ext string) string {
	return fmt.Sprintf("users/%s/%v.%s", uid, uuid.New(), ext)
}

func (s *AvatarService) getPresignClient(ctx context.Context) (*s3.PresignClient, error) {
	cfg, err := loadDefaultAWSConfig(ctx,
		config.WithRegion(s.config.S3Region),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			s.config.S3RootUser,
			s.config.S3RootPassword,
			"",
		)))
	if err != nil {
		return nil, err
	}

	client := newS3ClientFromConfig(cfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(s.config.S3BaseEndpoint)
		o.UsePathStyle = true
	})

	return newS3PresignClient(client), nil
}

// UploadURL returns a presigned PUT URL for a new avatar of the caller and
// the public URL the photo will have once uploaded.
func (s *AvatarService) UploadURL(ctx context.Context, p auth.Principal, contentType string) (uploadURL, photoURL string, err error) {
	ext, ok := avatarExtensions[strings.ToLower(contentType)]
	if !ok {
		return "", "", autherr.New(autherr.CodeInvalidArgument, "unsupported image type")
	}

	presignClient, err := s.getPresignClient(ctx)
	if err != nil {
		return "", "", autherr.Wrap(autherr.CodeServiceUnavailable, err)
	}

	bucket := s.config.S3Bucket
	key := AvatarStorageKey(p.UserID, ext)
	ct := strings.ToLower(contentType)

	req, err := presignPutObject(presignClient, ctx, &s3.PutObjectInput{
		Bucket:      &bucket,
		Key:         &key,
		ContentType: &ct,
	}, s3.WithPresignExpires(avatarUploadValidity))
	if err != nil {
		return "", "", autherr.Wrap(autherr.CodeServiceUnavailable, err)
	}

	return req.URL, strings.TrimSuffix(s.config.S3PublicBaseURL, "/") + "/" + key, nil
}
