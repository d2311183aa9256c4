package sql

import (
	"comepouco/internal/entity"
	"comepouco/internal/entity/db"
	"context"
	"fmt"

	"gorm.io/gorm"
)

// ListAffiliateLinks returns all links, newest first.
func (r *GormRepository) ListAffiliateLinks(ctx context.Context) ([]db.AffiliateLink, error) {
	if r == nil || r.db == nil {
		return nil, errNotInitialised()
	}
	links := make([]db.AffiliateLink, 0)
	if err := r.db.WithContext(ctx).Order("id DESC").Find(&links).Error; err != nil {
		return nil, err
	}
	return links, nil
}

// CreateAffiliateLink persists a new link.
func (r *GormRepository) CreateAffiliateLink(ctx context.Context, link *db.AffiliateLink) error {
	if r == nil || r.db == nil {
		return errNotInitialised()
	}
	if link == nil {
		return fmt.Errorf("affiliate link is nil")
	}
	return translateError(r.db.WithContext(ctx).Create(link).Error)
}

// UpdateAffiliateLink applies the provided fields and returns the stored row.
func (r *GormRepository) UpdateAffiliateLink(ctx context.Context, id uint, updates entity.AffiliateLinkUpdates) (*db.AffiliateLink, error) {
	if r == nil || r.db == nil {
		return nil, errNotInitialised()
	}
	if id == 0 {
		return nil, gorm.ErrRecordNotFound
	}

	var link db.AffiliateLink
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&link, id).Error; err != nil {
			return err
		}
		if values := updates.ToMap(); len(values) > 0 {
			if err := tx.Model(&link).Updates(values).Error; err != nil {
				return err
			}
		}
		return tx.First(&link, id).Error
	})
	if err != nil {
		return nil, translateError(err)
	}
	return &link, nil
}

// DeleteAffiliateLink removes a link by ID.
func (r *GormRepository) DeleteAffiliateLink(ctx context.Context, id uint) error {
	if r == nil || r.db == nil {
		return errNotInitialised()
	}
	if id == 0 {
		return gorm.ErrRecordNotFound
	}
	result := r.db.WithContext(ctx).Delete(&db.AffiliateLink{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
