package api

import (
	"comepouco/internal/service"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// 错误码定义
const (
	// 通用错误码
	ErrCodeInvalidRequest = "ERR_INVALID_REQUEST"
	ErrCodeUnauthorized   = "ERR_UNAUTHORIZED"
	ErrCodeForbidden      = "ERR_FORBIDDEN"
	ErrCodeNotFound       = "ERR_NOT_FOUND"
	ErrCodeConflict       = "ERR_CONFLICT"
	ErrCodeInternalError  = "ERR_INTERNAL_ERROR"

	// 业务错误码
	ErrCodeMissingField    = "ERR_MISSING_FIELD"
	ErrCodeInvalidID       = "ERR_INVALID_ID"
	ErrCodePayloadTooLarge = "ERR_PAYLOAD_TOO_LARGE"
)

const msgInternalError = "Erro interno do servidor."

// APIError 统一的 API 错误响应结构
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

// ErrorResponse 返回统一格式的错误响应
func ErrorResponse(c *gin.Context, status int, code string, message string) {
	c.AbortWithStatusJSON(status, APIError{
		Code:    code,
		Message: message,
	})
}

// ErrorResponseWithDetails 返回带详情的错误响应
func ErrorResponseWithDetails(c *gin.Context, status int, code string, message string, details any) {
	c.AbortWithStatusJSON(status, APIError{
		Code:    code,
		Message: message,
		Details: details,
	})
}

// BadRequest 400 错误请求
func BadRequest(c *gin.Context, code string, message string) {
	ErrorResponse(c, http.StatusBadRequest, code, message)
}

// Unauthorized 401 未授权
func Unauthorized(c *gin.Context, message string) {
	ErrorResponse(c, http.StatusUnauthorized, ErrCodeUnauthorized, message)
}

// Forbidden 403 禁止访问
func Forbidden(c *gin.Context, message string) {
	ErrorResponse(c, http.StatusForbidden, ErrCodeForbidden, message)
}

// NotFound 404 资源不存在
func NotFound(c *gin.Context, code string, message string) {
	ErrorResponse(c, http.StatusNotFound, code, message)
}

// InternalError 500 服务器内部错误
func InternalError(c *gin.Context, message string) {
	ErrorResponse(c, http.StatusInternalServerError, ErrCodeInternalError, message)
}

// MissingField 缺少必填字段
func MissingField(c *gin.Context, field string) {
	ErrorResponseWithDetails(c, http.StatusBadRequest, ErrCodeMissingField, "Campo obrigatório: "+field, gin.H{"field": field})
}

// InvalidPayload 无效的请求体
func InvalidPayload(c *gin.Context) {
	ErrorResponse(c, http.StatusBadRequest, ErrCodeInvalidRequest, "Corpo da requisição inválido.")
}

// respondError 将 service 层错误映射为 HTTP 响应。未分类的错误记录日志并返回 500，
// 响应体不携带内部细节。
func respondError(c *gin.Context, err error) {
	message := service.ClientMessage(err)

	switch {
	case errors.Is(err, service.ErrValidation):
		BadRequest(c, ErrCodeInvalidRequest, message)
	case errors.Is(err, service.ErrUnauthenticated):
		Unauthorized(c, message)
	case errors.Is(err, service.ErrForbidden):
		Forbidden(c, message)
	case errors.Is(err, service.ErrNotFound):
		NotFound(c, ErrCodeNotFound, message)
	case errors.Is(err, service.ErrConflict):
		ErrorResponse(c, http.StatusConflict, ErrCodeConflict, message)
	default:
		logrus.WithError(err).WithFields(logrus.Fields{
			"method":     c.Request.Method,
			"path":       c.Request.URL.Path,
			"request_id": RequestID(c),
		}).Error("request failed")
		InternalError(c, msgInternalError)
	}
}
