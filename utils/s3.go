package utils

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	s3types "github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/google/uuid"
)

var (
	s3Client      *s3.Client
	s3Bucket      string
	cloudFrontURL string
)

// InitS3 builds the shared S3 client used for meal photo uploads. Optional;
// without it UploadMealImage reports the store as unconfigured.
func InitS3(ctx context.Context, region, bucket, cfURL string) error {
	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return fmt.Errorf("load AWS config: %w", err)
	}
	s3Client = s3.NewFromConfig(cfg)
	s3Bucket = bucket
	cloudFrontURL = cfURL
	return nil
}

// ErrImageStoreNotConfigured is returned when InitS3 was never called.
var ErrImageStoreNotConfigured = errors.New("image store not configured")

// UploadMealImage stores a "data:<mime>;base64,<data>" payload under a
// unique key and returns its public URL.
func UploadMealImage(ctx context.Context, dataURI string) (string, error) {
	if s3Client == nil {
		return "", ErrImageStoreNotConfigured
	}

	parts := strings.Split(dataURI, ",")
	if len(parts) != 2 || !strings.HasPrefix(parts[0], "data:") {
		return "", fmt.Errorf("invalid base64 image")
	}
	mediaType := strings.TrimPrefix(parts[0], "data:")  // "image/jpeg;base64"
	contentType := strings.SplitN(mediaType, ";", 2)[0] // "image/jpeg"

	ext := ".bin"
	if p := strings.SplitN(contentType, "/", 2); len(p) == 2 && p[1] != "" {
		ext = "." + p[1]
	}
	if ext == ".jpeg" {
		ext = ".jpg"
	}

	imageData, err := base64.StdEncoding.DecodeString(parts[1])
	if err != nil {
		return "", fmt.Errorf("failed to decode image: %w", err)
	}

	key := fmt.Sprintf("meal-photos/%s%s", uuid.NewString(), ext)

	_, err = s3Client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s3Bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(imageData),
		ContentType: aws.String(contentType),
		ACL:         s3types.ObjectCannedACLPublicRead,
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload to S3: %w", err)
	}

	if cloudFrontURL != "" {
		return fmt.Sprintf("%s/%s", cloudFrontURL, key), nil
	}
	return fmt.Sprintf("https://%s.s3.amazonaws.com/%s", s3Bucket, key), nil
}
