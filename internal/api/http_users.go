package api

import (
	"comepouco/internal/entity/converter"
	"comepouco/internal/entity/dto"
	"comepouco/internal/service"
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

func (h *HTTPHandler) ListUsers(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	users, err := h.userService.List(ctx)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.UserListResponse{Users: converter.UsersToSummaries(users)})
}

func (h *HTTPHandler) CreateUser(c *gin.Context) {
	var req dto.UserCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		InvalidPayload(c)
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	user, err := h.userService.Create(ctx, req)
	if err != nil {
		respondError(c, err)
		return
	}

	logrus.WithFields(logrus.Fields{
		"user_id": user.ID,
		"role":    user.Role,
	}).Info("user created")
	c.JSON(http.StatusCreated, dto.UserDetailResponse{User: converter.UserToSummary(user)})
}

func (h *HTTPHandler) UpdateUser(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req dto.UserUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		InvalidPayload(c)
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	user, err := h.userService.Update(ctx, id, req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.UserDetailResponse{User: converter.UserToSummary(user)})
}

func (h *HTTPHandler) DeleteUser(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	actor, _ := CurrentIdentity(c)

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	if err := h.userService.Delete(ctx, actor, id); err != nil {
		respondError(c, err)
		return
	}

	logrus.WithFields(logrus.Fields{
		"user_id":  id,
		"actor_id": actor.UserID,
	}).Info("user deleted")
	c.Status(http.StatusNoContent)
}

// pathID 解析路径中的 :id，失败时直接写回 400
func pathID(c *gin.Context) (uint, bool) {
	id, err := service.ParseID(c.Param("id"))
	if err != nil {
		BadRequest(c, ErrCodeInvalidID, service.ClientMessage(err))
		return 0, false
	}
	return id, true
}
