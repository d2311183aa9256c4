package service

import (
	"comepouco/internal/storage"
	"context"
	"crypto/md5"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gabriel-vasile/mimetype"
)

// DefaultUploadMaxBytes 单个文件默认上限 5 MiB
const DefaultUploadMaxBytes int64 = 5 << 20

var allowedImageTypes = map[string]string{
	"image/png":  "png",
	"image/jpeg": "jpg",
	"image/gif":  "gif",
	"image/webp": "webp",
}

// UploadService 保存商品图片并返回可公开访问的 URL
type UploadService struct {
	storage       storage.Storage
	maxBytes      int64
	publicBaseURL string
}

// NewUploadService wires the upload service. A non-positive maxBytes falls
// back to DefaultUploadMaxBytes.
func NewUploadService(store storage.Storage, maxBytes int64, publicBaseURL string) *UploadService {
	if maxBytes <= 0 {
		maxBytes = DefaultUploadMaxBytes
	}
	return &UploadService{storage: store, maxBytes: maxBytes, publicBaseURL: publicBaseURL}
}

// MaxBytes returns the accepted upload size.
func (s *UploadService) MaxBytes() int64 {
	return s.maxBytes
}

// SaveProductImage validates the bytes as an image, stores them under a
// content-derived name and returns the public URL.
func (s *UploadService) SaveProductImage(ctx context.Context, data []byte) (string, error) {
	if s.storage == nil {
		return "", errors.New("storage not configured")
	}
	if len(data) == 0 {
		return "", Validation("Arquivo vazio.")
	}
	if int64(len(data)) > s.maxBytes {
		return "", Validation(fmt.Sprintf("Arquivo excede o tamanho máximo de %d bytes.", s.maxBytes))
	}

	detected := mimetype.Detect(data)
	contentType := strings.ToLower(detected.String())
	if idx := strings.Index(contentType, ";"); idx >= 0 {
		contentType = strings.TrimSpace(contentType[:idx])
	}
	ext, ok := allowedImageTypes[contentType]
	if !ok {
		return "", Validation("Formato de imagem não suportado. Use PNG, JPEG, GIF ou WEBP.")
	}

	ctx, cancel := context.WithTimeout(ctx, time.Minute)
	defer cancel()

	key, err := s.storage.Save(ctx, data, storage.SaveOptions{
		Category:     storage.CategoryProductImages,
		Extension:    ext,
		BaseName:     contentBaseName(data),
		ContentType:  contentType,
		SkipIfExists: true,
	})
	if err != nil {
		return "", fmt.Errorf("save product image: %w", err)
	}
	return storage.PublicURL(s.publicBaseURL, key), nil
}

// contentBaseName 使用 MD5 摘要作为文件名，相同图片只存一份
func contentBaseName(data []byte) string {
	sum := md5.Sum(data)
	return hex.EncodeToString(sum[:])
}
