package api

import (
	"comepouco/internal/entity"
	"comepouco/internal/storage"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// NewRouter 构建完整的 gin 引擎：中间件、API 路由、/metrics 与本地文件服务
func NewRouter(h *HTTPHandler) *gin.Engine {
	r := gin.New()

	// 添加中间件
	r.Use(RequestIDMiddleware())
	r.Use(LoggingMiddleware())
	r.Use(h.metrics.MetricsMiddleware())
	r.Use(CORSMiddleware(h.cfg.CORSOrigins))
	r.Use(gin.Recovery())

	r.GET("/health", Health)
	r.GET("/metrics", gin.WrapH(h.metrics.Handler()))

	h.RegisterRoutes(r.Group("/api"))

	if localProvider, ok := h.storage.(storage.LocalBaseDirProvider); ok {
		if prefix := localFilesPrefix(h.cfg.StoragePublicBaseURL); prefix != "" {
			r.Static(prefix, localProvider.LocalBaseDir())
			logrus.WithFields(logrus.Fields{
				"prefix": prefix,
				"dir":    localProvider.LocalBaseDir(),
			}).Debug("serving local uploads")
		}
	}

	r.NoRoute(func(c *gin.Context) {
		NotFound(c, ErrCodeNotFound, "Rota não encontrada.")
	})

	return r
}

// RegisterRoutes 注册 /api 下的全部路由
func (h *HTTPHandler) RegisterRoutes(apiGroup *gin.RouterGroup) {
	apiGroup.GET("/health", Health)

	authGroup := apiGroup.Group("/auth")
	authGroup.POST("/login", h.Login)
	authGroup.POST("/register", h.Register)
	authGroup.GET("/me", h.AuthMiddleware(), h.Me)

	protected := apiGroup.Group("")
	protected.Use(h.AuthMiddleware())

	userAdmin := protected.Group("/users")
	userAdmin.Use(RequireRole(entity.RoleAdmin))
	userAdmin.GET("", h.ListUsers)
	userAdmin.POST("", h.CreateUser)
	userAdmin.PUT("/:id", h.UpdateUser)
	userAdmin.DELETE("/:id", h.DeleteUser)

	links := protected.Group("/affiliate-links")
	links.Use(RequireRole(entity.RoleAdmin, entity.RoleUser))
	links.GET("", h.ListAffiliateLinks)
	links.POST("", h.CreateAffiliateLink)
	links.PUT("/:id", h.UpdateAffiliateLink)
	links.DELETE("/:id", h.DeleteAffiliateLink)

	platforms := protected.Group("/purchase-platforms")
	platforms.Use(RequireRole(entity.RoleAdmin))
	platforms.GET("", h.ListPurchasePlatforms)
	platforms.POST("", h.CreatePurchasePlatform)
	platforms.PUT("/:id", h.UpdatePurchasePlatform)
	platforms.DELETE("/:id", h.DeletePurchasePlatform)

	uploads := protected.Group("/uploads")
	uploads.Use(RequireRole(entity.RoleAdmin, entity.RoleUser))
	uploads.POST("/product-images", h.UploadProductImage)
}

// Health 健康检查
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
