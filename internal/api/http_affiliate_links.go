package api

import (
	"comepouco/internal/entity/converter"
	"comepouco/internal/entity/dto"
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

func (h *HTTPHandler) ListAffiliateLinks(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	links, err := h.linkService.List(ctx)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.AffiliateLinkListResponse{Links: converter.AffiliateLinksToViews(links)})
}

func (h *HTTPHandler) CreateAffiliateLink(c *gin.Context) {
	var req dto.CreateAffiliateLinkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		InvalidPayload(c)
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	link, err := h.linkService.Create(ctx, req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.AffiliateLinkDetailResponse{Link: converter.AffiliateLinkToView(link)})
}

func (h *HTTPHandler) UpdateAffiliateLink(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req dto.UpdateAffiliateLinkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		InvalidPayload(c)
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	link, err := h.linkService.Update(ctx, id, req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.AffiliateLinkDetailResponse{Link: converter.AffiliateLinkToView(link)})
}

func (h *HTTPHandler) DeleteAffiliateLink(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	if err := h.linkService.Delete(ctx, id); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
