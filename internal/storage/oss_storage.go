package storage

import (
	"bytes"
	"comepouco/internal/config"
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/aliyun/aliyun-oss-go-sdk/oss"
)

type ossStorage struct {
	bucket *oss.Bucket
	prefix string
}

// NewOSSStorage 创建阿里云 OSS 存储。
func NewOSSStorage(cfg config.Config) (Storage, error) {
	endpoint := strings.TrimSpace(cfg.StorageOSSEndpoint)
	bucketName := strings.TrimSpace(cfg.StorageOSSBucket)
	accessKey := strings.TrimSpace(cfg.StorageOSSAccessKeyID)
	secretKey := strings.TrimSpace(cfg.StorageOSSAccessKeySecret)
	switch {
	case endpoint == "":
		return nil, errors.New("storage: missing OSS endpoint")
	case bucketName == "":
		return nil, errors.New("storage: missing OSS bucket")
	case accessKey == "" || secretKey == "":
		return nil, errors.New("storage: missing OSS credentials")
	}

	client, err := oss.New(endpoint, accessKey, secretKey)
	if err != nil {
		return nil, fmt.Errorf("storage: create OSS client: %w", err)
	}
	bucket, err := client.Bucket(bucketName)
	if err != nil {
		return nil, fmt.Errorf("storage: open OSS bucket: %w", err)
	}

	return &ossStorage{
		bucket: bucket,
		prefix: trimPrefix(cfg.StorageOSSPrefix),
	}, nil
}

func (s *ossStorage) Save(ctx context.Context, data []byte, opts SaveOptions) (string, error) {
	if len(data) == 0 {
		return "", errors.New("empty payload")
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	key := joinPrefix(s.prefix, buildObjectPath(opts.Category, opts.BaseName, opts.Extension, timeNow()))

	if opts.SkipIfExists {
		exists, err := s.bucket.IsObjectExist(key, oss.WithContext(ctx))
		if err != nil {
			return "", fmt.Errorf("check object: %w", err)
		}
		if exists {
			return key, nil
		}
	}

	options := []oss.Option{
		oss.WithContext(ctx),
		oss.ContentType(resolveContentType(opts)),
	}
	if opts.BaseName != "" {
		options = append(options, oss.CacheControl(immutableCacheControl))
	}

	if err := s.bucket.PutObject(key, bytes.NewReader(data), options...); err != nil {
		return "", fmt.Errorf("put object: %w", err)
	}

	return key, nil
}

var _ Storage = (*ossStorage)(nil)
