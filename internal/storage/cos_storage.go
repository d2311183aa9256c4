package storage

import (
	"bytes"
	"comepouco/internal/config"
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/tencentyun/cos-go-sdk-v5"
)

type cosStorage struct {
	client *cos.Client
	prefix string
}

// NewCOSStorage 创建腾讯云 COS 存储。
func NewCOSStorage(cfg config.Config) (Storage, error) {
	baseURL := strings.TrimSpace(cfg.StorageCOSBucketURL)
	if baseURL == "" {
		return nil, errors.New("storage: missing COS bucket URL")
	}
	parsedURL, err := url.Parse(baseURL)
	if err != nil || parsedURL.Host == "" {
		return nil, fmt.Errorf("storage: invalid COS bucket URL %q", baseURL)
	}

	secretID := strings.TrimSpace(cfg.StorageCOSSecretID)
	secretKey := strings.TrimSpace(cfg.StorageCOSSecretKey)
	if secretID == "" || secretKey == "" {
		return nil, errors.New("storage: missing COS credentials")
	}

	client := cos.NewClient(&cos.BaseURL{BucketURL: parsedURL}, &http.Client{
		Transport: &cos.AuthorizationTransport{
			SecretID:  secretID,
			SecretKey: secretKey,
		},
	})

	return &cosStorage{
		client: client,
		prefix: trimPrefix(cfg.StorageCOSPrefix),
	}, nil
}

func (s *cosStorage) Save(ctx context.Context, data []byte, opts SaveOptions) (string, error) {
	if len(data) == 0 {
		return "", errors.New("empty payload")
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	key := joinPrefix(s.prefix, buildObjectPath(opts.Category, opts.BaseName, opts.Extension, timeNow()))

	if opts.SkipIfExists {
		resp, err := s.client.Object.Head(ctx, key, nil)
		closeCOSBody(resp)
		if err == nil {
			return key, nil
		}
		if !cos.IsNotFoundError(err) {
			return "", fmt.Errorf("head object: %w", err)
		}
	}

	header := &cos.ObjectPutHeaderOptions{
		ContentType:   resolveContentType(opts),
		ContentLength: int64(len(data)),
	}
	if opts.BaseName != "" {
		header.CacheControl = immutableCacheControl
	}

	resp, err := s.client.Object.Put(ctx, key, bytes.NewReader(data), &cos.ObjectPutOptions{ObjectPutHeaderOptions: header})
	closeCOSBody(resp)
	if err != nil {
		return "", fmt.Errorf("put object: %w", err)
	}

	return key, nil
}

func closeCOSBody(resp *cos.Response) {
	if resp != nil && resp.Body != nil {
		resp.Body.Close()
	}
}

var _ Storage = (*cosStorage)(nil)
