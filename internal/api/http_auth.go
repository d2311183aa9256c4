package api

import (
	"comepouco/internal/entity/converter"
	"comepouco/internal/entity/dto"
	"comepouco/internal/service"
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

func (h *HTTPHandler) Register(c *gin.Context) {
	var req dto.AuthRegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		InvalidPayload(c)
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	result, err := h.authService.Register(ctx, req.FullName, req.Email, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	logrus.WithField("user_id", result.User.ID).Info("user registered")
	c.JSON(http.StatusCreated, makeAuthResponse(result))
}

func (h *HTTPHandler) Login(c *gin.Context) {
	var req dto.AuthLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		InvalidPayload(c)
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	result, err := h.authService.Login(ctx, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrUnauthenticated) {
			h.metrics.RecordLogin(false)
			logrus.WithField("request_id", RequestID(c)).Warn("login attempt failed")
		}
		respondError(c, err)
		return
	}

	h.metrics.RecordLogin(true)
	c.JSON(http.StatusOK, makeAuthResponse(result))
}

func (h *HTTPHandler) Me(c *gin.Context) {
	identity, ok := CurrentIdentity(c)
	if !ok {
		Unauthorized(c, msgMissingToken)
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	user, err := h.authService.GetByID(ctx, identity.UserID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.UserDetailResponse{User: converter.UserToSummary(user)})
}

func makeAuthResponse(result *service.AuthResult) dto.AuthResponse {
	return dto.AuthResponse{
		Token:     result.Token,
		ExpiresAt: result.ExpiresAt,
		User:      converter.UserToSummary(result.User),
	}
}
