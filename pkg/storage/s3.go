package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/awserr"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
)

type s3Uploader struct {
	svc    *s3.S3
	bucket string
	prefix string
}

// NewS3UploaderParams contains parameters for NewS3Uploader.
type NewS3UploaderParams struct {
	Bucket    string
	Region    string
	Prefix    string // key prefix template, {name} expands to the project name
	AccessKey string
	SecretKey string
	Endpoint  string // optional, for S3-compatible storage
}

// NewS3Uploader creates an Uploader backed by an S3 bucket.
func NewS3Uploader(params NewS3UploaderParams) (Uploader, error) {
	if params.Bucket == "" {
		return nil, ErrNoBucket
	}

	creds := credentials.NewStaticCredentials(params.AccessKey, params.SecretKey, "")
	if _, err := creds.Get(); err != nil {
		return nil, fmt.Errorf("failed to resolve storage credentials: %w", err)
	}

	cfg := aws.NewConfig().WithRegion(params.Region).WithCredentials(creds)
	if params.Endpoint != "" {
		cfg = cfg.WithEndpoint(params.Endpoint).WithS3ForcePathStyle(true)
	}
	sess, err := session.NewSession()
	if err != nil {
		return nil, fmt.Errorf("failed to create storage session: %w", err)
	}

	return &s3Uploader{
		svc:    s3.New(sess, cfg),
		bucket: params.Bucket,
		prefix: strings.Trim(params.Prefix, "/"),
	}, nil
}

// Upload implements Uploader.
func (u *s3Uploader) Upload(projectName, path, contentType string) (string, error) {
	key := u.objectKey(projectName, filepath.Base(path))

	exists, err := u.objectExists(key)
	if err != nil {
		return "", err
	}
	if exists {
		return key, nil
	}

	file, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer file.Close()
	stat, err := file.Stat()
	if err != nil {
		return "", fmt.Errorf("failed to stat %s: %w", path, err)
	}

	input := &s3.PutObjectInput{
		Bucket:        aws.String(u.bucket),
		Key:           aws.String(key),
		Body:          file,
		ContentLength: aws.Int64(stat.Size()),
		ContentType:   aws.String(contentType),
	}
	if _, err := u.svc.PutObject(input); err != nil {
		return "", fmt.Errorf("failed to upload %s to s3://%s/%s: %w", path, u.bucket, key, err)
	}
	return key, nil
}

func (u *s3Uploader) objectExists(key string) (bool, error) {
	input := &s3.HeadObjectInput{
		Bucket: aws.String(u.bucket),
		Key:    aws.String(key),
	}
	if _, err := u.svc.HeadObject(input); err != nil {
		if aerr, ok := err.(awserr.Error); ok {
			if aerr.Code() == "NotFound" || aerr.Code() == s3.ErrCodeNoSuchKey {
				return false, nil
			}
		}
		return false, fmt.Errorf("failed to check s3://%s/%s: %w", u.bucket, key, err)
	}
	return true, nil
}

func (u *s3Uploader) objectKey(projectName, filename string) string {
	prefix := strings.ReplaceAll(u.prefix, "{name}", projectName)
	if prefix == "" {
		return filename
	}
	return prefix + "/" + filename
}
