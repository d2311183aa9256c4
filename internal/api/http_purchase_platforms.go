package api

import (
	"comepouco/internal/entity/converter"
	"comepouco/internal/entity/dto"
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

func (h *HTTPHandler) ListPurchasePlatforms(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	platforms, err := h.platformService.List(ctx)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.PurchasePlatformListResponse{Platforms: converter.PurchasePlatformsToViews(platforms)})
}

func (h *HTTPHandler) CreatePurchasePlatform(c *gin.Context) {
	var req dto.CreatePurchasePlatformRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		InvalidPayload(c)
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	platform, err := h.platformService.Create(ctx, req)
	if err != nil {
		respondError(c, err)
		return
	}

	logrus.WithField("platform_id", platform.ID).Info("purchase platform created")
	c.JSON(http.StatusCreated, dto.PurchasePlatformDetailResponse{Platform: converter.PurchasePlatformToView(platform)})
}

func (h *HTTPHandler) UpdatePurchasePlatform(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req dto.UpdatePurchasePlatformRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		InvalidPayload(c)
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	platform, err := h.platformService.Update(ctx, id, req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.PurchasePlatformDetailResponse{Platform: converter.PurchasePlatformToView(platform)})
}

func (h *HTTPHandler) DeletePurchasePlatform(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	if err := h.platformService.Delete(ctx, id); err != nil {
		respondError(c, err)
		return
	}

	logrus.WithField("platform_id", id).Info("purchase platform deleted")
	c.Status(http.StatusNoContent)
}
