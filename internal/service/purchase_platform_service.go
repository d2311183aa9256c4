package service

import (
	"comepouco/internal/entity"
	"comepouco/internal/entity/db"
	"comepouco/internal/entity/dto"
	"comepouco/internal/model"
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"
)

// PurchasePlatformService manages purchase platforms.
type PurchasePlatformService struct {
	repo model.Repository
}

// NewPurchasePlatformService wires the purchase platform service.
func NewPurchasePlatformService(repo model.Repository) *PurchasePlatformService {
	return &PurchasePlatformService{repo: repo}
}

// List returns all platforms, newest first.
func (s *PurchasePlatformService) List(ctx context.Context) ([]db.PurchasePlatform, error) {
	platforms, err := s.repo.ListPurchasePlatforms(ctx)
	if err != nil {
		return nil, fmt.Errorf("list purchase platforms: %w", err)
	}
	return platforms, nil
}

// Create validates and stores a platform. IsActive defaults to true.
func (s *PurchasePlatformService) Create(ctx context.Context, req dto.CreatePurchasePlatformRequest) (*db.PurchasePlatform, error) {
	if strings.TrimSpace(req.Name) == "" || strings.TrimSpace(req.Description) == "" ||
		strings.TrimSpace(req.APILink) == "" || strings.TrimSpace(req.AccessKey) == "" {
		return nil, Validation("Nome, descrição, link da API e chave de acesso são obrigatórios.")
	}

	updates, err := validatePurchasePlatformFields(dto.UpdatePurchasePlatformRequest{
		Name:        &req.Name,
		Description: &req.Description,
		APILink:     &req.APILink,
		AccessKey:   &req.AccessKey,
	})
	if err != nil {
		return nil, err
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	platform := &db.PurchasePlatform{
		Name:        *updates.Name,
		Description: *updates.Description,
		IsActive:    isActive,
		APILink:     *updates.APILink,
		AccessKey:   *updates.AccessKey,
	}
	if err := s.repo.CreatePurchasePlatform(ctx, platform); err != nil {
		return nil, fmt.Errorf("create purchase platform: %w", err)
	}
	return platform, nil
}

// Update applies a partial update.
func (s *PurchasePlatformService) Update(ctx context.Context, id uint, req dto.UpdatePurchasePlatformRequest) (*db.PurchasePlatform, error) {
	updates, err := validatePurchasePlatformFields(req)
	if err != nil {
		return nil, err
	}
	if updates.IsEmpty() {
		return nil, Validation(msgNoFields)
	}

	platform, err := s.repo.UpdatePurchasePlatform(ctx, id, updates)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NotFound(msgPlatformNotFound)
		}
		return nil, fmt.Errorf("update purchase platform: %w", err)
	}
	return platform, nil
}

// Delete removes a platform.
func (s *PurchasePlatformService) Delete(ctx context.Context, id uint) error {
	if err := s.repo.DeletePurchasePlatform(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return NotFound(msgPlatformNotFound)
		}
		return fmt.Errorf("delete purchase platform: %w", err)
	}
	return nil
}

func validatePurchasePlatformFields(req dto.UpdatePurchasePlatformRequest) (entity.PurchasePlatformUpdates, error) {
	var (
		updates entity.PurchasePlatformUpdates
		err     error
	)
	if updates.Name, err = optionalText(req.Name, "Nome inválido(a)."); err != nil {
		return updates, err
	}
	if updates.Description, err = optionalText(req.Description, "Descrição inválido(a)."); err != nil {
		return updates, err
	}
	if updates.AccessKey, err = optionalText(req.AccessKey, "Chave de acesso inválido(a)."); err != nil {
		return updates, err
	}
	if updates.APILink, err = optionalURL(req.APILink, "Link da API inválido."); err != nil {
		return updates, err
	}
	updates.IsActive = req.IsActive
	return updates, nil
}
