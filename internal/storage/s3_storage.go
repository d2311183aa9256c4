package storage

import (
	"bytes"
	"comepouco/internal/config"
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"
)

type s3ClientOptions struct {
	Region          string
	Endpoint        string
	AccessKeyID     string
	SecretAccessKey string
	SessionToken    string
	ForcePathStyle  bool
}

// s3API 是 remoteS3Storage 用到的 S3 客户端方法子集。
type s3API interface {
	HeadObject(ctx context.Context, params *s3.HeadObjectInput, optFns ...func(*s3.Options)) (*s3.HeadObjectOutput, error)
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// remoteS3Storage 同时服务 S3 和 R2。
type remoteS3Storage struct {
	client s3API
	bucket string
	prefix string
}

func (s *remoteS3Storage) Save(ctx context.Context, data []byte, opts SaveOptions) (string, error) {
	if len(data) == 0 {
		return "", errors.New("empty payload")
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	key := joinPrefix(s.prefix, buildObjectPath(opts.Category, opts.BaseName, opts.Extension, timeNow()))

	if opts.SkipIfExists {
		_, err := s.client.HeadObject(ctx, &s3.HeadObjectInput{Bucket: aws.String(s.bucket), Key: aws.String(key)})
		if err == nil {
			return key, nil
		}
		if !isS3NotFound(err) {
			return "", fmt.Errorf("head object: %w", err)
		}
	}

	input := &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(data),
		ContentLength: aws.Int64(int64(len(data))),
		ContentType:   aws.String(resolveContentType(opts)),
	}
	if opts.BaseName != "" {
		input.CacheControl = aws.String(immutableCacheControl)
	}

	if _, err := s.client.PutObject(ctx, input); err != nil {
		return "", fmt.Errorf("put object: %w", err)
	}

	return key, nil
}

var _ Storage = (*remoteS3Storage)(nil)

func isS3NotFound(err error) bool {
	if err == nil {
		return false
	}
	var notFound *types.NotFound
	if errors.As(err, &notFound) {
		return true
	}
	var noSuchKey *types.NoSuchKey
	if errors.As(err, &noSuchKey) {
		return true
	}
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		switch strings.ToLower(apiErr.ErrorCode()) {
		case "notfound", "nosuchkey", "404":
			return true
		}
	}
	return false
}

func NewS3Storage(cfg config.Config) (Storage, error) {
	bucket := strings.TrimSpace(cfg.StorageS3Bucket)
	if bucket == "" {
		return nil, errors.New("storage: missing S3 bucket")
	}

	client, err := newS3Client(s3ClientOptions{
		Region:          strings.TrimSpace(cfg.StorageS3Region),
		Endpoint:        strings.TrimSpace(cfg.StorageS3Endpoint),
		AccessKeyID:     strings.TrimSpace(cfg.StorageS3AccessKeyID),
		SecretAccessKey: strings.TrimSpace(cfg.StorageS3SecretAccessKey),
		SessionToken:    strings.TrimSpace(cfg.StorageS3SessionToken),
		ForcePathStyle:  cfg.StorageS3ForcePathStyle,
	})
	if err != nil {
		return nil, fmt.Errorf("storage: create S3 client: %w", err)
	}

	return &remoteS3Storage{
		client: client,
		bucket: bucket,
		prefix: trimPrefix(cfg.StorageS3Prefix),
	}, nil
}

func newS3Client(opts s3ClientOptions) (*s3.Client, error) {
	region := strings.TrimSpace(opts.Region)
	if region == "" {
		return nil, errors.New("storage: missing S3 region")
	}
	accessKey := strings.TrimSpace(opts.AccessKeyID)
	secretKey := strings.TrimSpace(opts.SecretAccessKey)
	if accessKey == "" || secretKey == "" {
		return nil, errors.New("storage: missing S3 credentials")
	}

	awsCfg := aws.Config{
		Region: region,
		Credentials: aws.NewCredentialsCache(
			credentials.NewStaticCredentialsProvider(accessKey, secretKey, strings.TrimSpace(opts.SessionToken)),
		),
	}

	endpoint := strings.TrimSpace(opts.Endpoint)
	if endpoint != "" && !strings.HasPrefix(endpoint, "http://") && !strings.HasPrefix(endpoint, "https://") {
		endpoint = "https://" + endpoint
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.UsePathStyle = opts.ForcePathStyle
		if endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
		}
	})

	return client, nil
}
