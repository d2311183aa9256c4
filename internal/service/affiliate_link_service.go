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

const (
	msgInvalidOriginalLink  = "Link original inválido."
	msgInvalidProductImage  = "Imagem do produto deve ser uma URL válida."
	msgInvalidAffiliateLink = "Link afiliado inválido."
	msgInvalidCatchyPhrase  = "Frase chamativa inválida."
)

// AffiliateLinkService manages affiliate links.
type AffiliateLinkService struct {
	repo model.Repository
}

// NewAffiliateLinkService wires the affiliate link service.
func NewAffiliateLinkService(repo model.Repository) *AffiliateLinkService {
	return &AffiliateLinkService{repo: repo}
}

// List returns all links, newest first.
func (s *AffiliateLinkService) List(ctx context.Context) ([]db.AffiliateLink, error) {
	links, err := s.repo.ListAffiliateLinks(ctx)
	if err != nil {
		return nil, fmt.Errorf("list affiliate links: %w", err)
	}
	return links, nil
}

// Create validates and stores a link.
func (s *AffiliateLinkService) Create(ctx context.Context, req dto.CreateAffiliateLinkRequest) (*db.AffiliateLink, error) {
	if strings.TrimSpace(req.OriginalLink) == "" || strings.TrimSpace(req.ProductImage) == "" ||
		strings.TrimSpace(req.CatchyPhrase) == "" || strings.TrimSpace(req.AffiliateLink) == "" {
		return nil, Validation("Link original, imagem, frase e link afiliado são obrigatórios.")
	}

	updates, err := validateAffiliateLinkFields(dto.UpdateAffiliateLinkRequest{
		OriginalLink:  &req.OriginalLink,
		ProductImage:  &req.ProductImage,
		CatchyPhrase:  &req.CatchyPhrase,
		AffiliateLink: &req.AffiliateLink,
	})
	if err != nil {
		return nil, err
	}

	link := &db.AffiliateLink{
		OriginalLink:  *updates.OriginalLink,
		ProductImage:  *updates.ProductImage,
		CatchyPhrase:  *updates.CatchyPhrase,
		AffiliateLink: *updates.AffiliateLink,
	}
	if err := s.repo.CreateAffiliateLink(ctx, link); err != nil {
		return nil, fmt.Errorf("create affiliate link: %w", err)
	}
	return link, nil
}

// Update applies a partial update.
func (s *AffiliateLinkService) Update(ctx context.Context, id uint, req dto.UpdateAffiliateLinkRequest) (*db.AffiliateLink, error) {
	updates, err := validateAffiliateLinkFields(req)
	if err != nil {
		return nil, err
	}
	if updates.IsEmpty() {
		return nil, Validation(msgNoFields)
	}

	link, err := s.repo.UpdateAffiliateLink(ctx, id, updates)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NotFound(msgLinkNotFound)
		}
		return nil, fmt.Errorf("update affiliate link: %w", err)
	}
	return link, nil
}

// Delete removes a link.
func (s *AffiliateLinkService) Delete(ctx context.Context, id uint) error {
	if err := s.repo.DeleteAffiliateLink(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return NotFound(msgLinkNotFound)
		}
		return fmt.Errorf("delete affiliate link: %w", err)
	}
	return nil
}

func validateAffiliateLinkFields(req dto.UpdateAffiliateLinkRequest) (entity.AffiliateLinkUpdates, error) {
	var (
		updates entity.AffiliateLinkUpdates
		err     error
	)
	if updates.OriginalLink, err = optionalURL(req.OriginalLink, msgInvalidOriginalLink); err != nil {
		return updates, err
	}
	if updates.ProductImage, err = optionalURL(req.ProductImage, msgInvalidProductImage); err != nil {
		return updates, err
	}
	if updates.CatchyPhrase, err = optionalText(req.CatchyPhrase, msgInvalidCatchyPhrase); err != nil {
		return updates, err
	}
	if updates.AffiliateLink, err = optionalURL(req.AffiliateLink, msgInvalidAffiliateLink); err != nil {
		return updates, err
	}
	return updates, nil
}
