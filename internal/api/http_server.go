package api

import (
	"comepouco/internal/auth"
	"comepouco/internal/config"
	"comepouco/internal/model"
	"comepouco/internal/service"
	"comepouco/internal/storage"
	"errors"
	"net/url"
	"strings"
)

// HTTPHandler HTTP 请求处理器
type HTTPHandler struct {
	cfg     config.Config
	storage storage.Storage
	metrics *Metrics

	// 服务层
	authService     *service.AuthService
	userService     *service.UserService
	linkService     *service.AffiliateLinkService
	platformService *service.PurchasePlatformService
	uploadService   *service.UploadService
}

// NewHTTPHandler 创建 HTTP 处理器实例
func NewHTTPHandler(cfg config.Config, repo model.Repository, store storage.Storage, metrics *Metrics) (*HTTPHandler, error) {
	if repo == nil {
		return nil, errors.New("repository is required")
	}
	authManager, err := auth.NewManager(cfg.JWTSecret, cfg.JWTIssuer, cfg.JWTExpiresIn)
	if err != nil {
		return nil, err
	}
	hasher := auth.NewHasher(cfg.BcryptCost, 0)
	if metrics == nil {
		metrics = NewMetrics(nil)
	}

	return &HTTPHandler{
		cfg:             cfg,
		storage:         store,
		metrics:         metrics,
		authService:     service.NewAuthService(repo, authManager, hasher),
		userService:     service.NewUserService(repo, hasher),
		linkService:     service.NewAffiliateLinkService(repo),
		platformService: service.NewPurchasePlatformService(repo),
		uploadService:   service.NewUploadService(store, cfg.UploadMaxBytes, cfg.StoragePublicBaseURL),
	}, nil
}

// localFilesPrefix 返回本地存储静态文件的挂载路径。公共地址是绝对 URL 时取其 path 部分。
func localFilesPrefix(publicBase string) string {
	trimmed := strings.TrimSpace(publicBase)
	if strings.HasPrefix(trimmed, "http://") || strings.HasPrefix(trimmed, "https://") {
		parsed, err := url.Parse(trimmed)
		if err != nil {
			return ""
		}
		trimmed = parsed.Path
	}
	if trimmed == "" {
		trimmed = "/files"
	}
	if !strings.HasPrefix(trimmed, "/") {
		trimmed = "/" + trimmed
	}
	trimmed = strings.TrimRight(trimmed, "/")
	if trimmed == "" {
		return ""
	}
	for _, reserved := range []string{"/api", "/health", "/metrics"} {
		if trimmed == reserved || strings.HasPrefix(trimmed, reserved+"/") {
			return ""
		}
	}
	return trimmed
}
