package storage

import (
	"comepouco/internal/config"
	"context"
	"fmt"
	"strings"
)

const (
	// TypeLocal 表示本地文件系统存储。
	TypeLocal = "local"
	// TypeS3 表示 Amazon S3 或兼容的存储后端。
	TypeS3 = "s3"
	// TypeOSS 表示阿里云 OSS 存储。
	TypeOSS = "oss"
	// TypeCOS 表示腾讯云 COS 存储。
	TypeCOS = "cos"
	// TypeR2 表示 Cloudflare R2 存储。
	TypeR2 = "r2"
)

// CategoryProductImages 商品图片上传使用的目录。
const CategoryProductImages = "product-images"

// 内容寻址的对象不会被覆盖，可以长期缓存
const immutableCacheControl = "public, max-age=31536000, immutable"

// SaveOptions 控制存储后端如何持久化文件。
//
// BaseName 一般是内容摘要；相同内容得到相同的 key，配合 SkipIfExists 实现去重。
// ContentType 由调用方嗅探得到，为空时按扩展名推断。
type SaveOptions struct {
	Category     string
	Extension    string
	BaseName     string
	ContentType  string
	SkipIfExists bool
}

// Storage 持久化二进制数据并返回对象 key（相对路径）。
type Storage interface {
	Save(ctx context.Context, data []byte, opts SaveOptions) (string, error)
}

// LocalBaseDirProvider 由暴露可通过 HTTP 直接提供服务的本地目录的存储驱动实现。
type LocalBaseDirProvider interface {
	LocalBaseDir() string
}

// NewStorage 根据配置实例化存储后端。
func NewStorage(cfg config.Config) (Storage, error) {
	typeName := strings.ToLower(strings.TrimSpace(cfg.StorageType))
	switch typeName {
	case "", TypeLocal:
		return NewLocalStorage(cfg.StorageLocalDir)
	case TypeS3:
		return NewS3Storage(cfg)
	case TypeOSS:
		return NewOSSStorage(cfg)
	case TypeCOS:
		return NewCOSStorage(cfg)
	case TypeR2:
		return NewR2Storage(cfg)
	default:
		return nil, fmt.Errorf("unsupported storage type: %s", cfg.StorageType)
	}
}

// PublicURL joins the public base URL and an object key.
func PublicURL(baseURL, key string) string {
	base := strings.TrimRight(strings.TrimSpace(baseURL), "/")
	key = strings.TrimLeft(key, "/")
	if base == "" {
		return "/" + key
	}
	return base + "/" + key
}
