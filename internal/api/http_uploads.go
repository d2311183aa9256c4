package api

import (
	"comepouco/internal/entity/dto"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// multipart 头部与边界的额外余量
const multipartOverhead = 64 << 10

func (h *HTTPHandler) UploadProductImage(c *gin.Context) {
	maxBytes := h.uploadService.MaxBytes()
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes+multipartOverhead)

	fileHeader, err := c.FormFile("file")
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			BadRequest(c, ErrCodePayloadTooLarge, fmt.Sprintf("Arquivo excede o tamanho máximo de %d bytes.", maxBytes))
			return
		}
		MissingField(c, "file")
		return
	}
	if fileHeader.Size > maxBytes {
		BadRequest(c, ErrCodePayloadTooLarge, fmt.Sprintf("Arquivo excede o tamanho máximo de %d bytes.", maxBytes))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		respondError(c, fmt.Errorf("open upload: %w", err))
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxBytes+1))
	if err != nil {
		respondError(c, fmt.Errorf("read upload: %w", err))
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), time.Minute)
	defer cancel()

	url, err := h.uploadService.SaveProductImage(ctx, data)
	if err != nil {
		respondError(c, err)
		return
	}

	logrus.WithFields(logrus.Fields{
		"url":  url,
		"size": len(data),
	}).Info("product image uploaded")
	c.JSON(http.StatusCreated, dto.UploadResponse{URL: url})
}
