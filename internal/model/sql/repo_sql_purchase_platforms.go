package sql

import (
	"comepouco/internal/entity"
	"comepouco/internal/entity/db"
	"context"
	"fmt"

	"gorm.io/gorm"
)

// ListPurchasePlatforms returns all platforms, newest first.
func (r *GormRepository) ListPurchasePlatforms(ctx context.Context) ([]db.PurchasePlatform, error) {
	if r == nil || r.db == nil {
		return nil, errNotInitialised()
	}
	platforms := make([]db.PurchasePlatform, 0)
	if err := r.db.WithContext(ctx).Order("id DESC").Find(&platforms).Error; err != nil {
		return nil, err
	}
	return platforms, nil
}

// CreatePurchasePlatform persists a new platform. IsActive is written as-is,
// including false.
func (r *GormRepository) CreatePurchasePlatform(ctx context.Context, platform *db.PurchasePlatform) error {
	if r == nil || r.db == nil {
		return errNotInitialised()
	}
	if platform == nil {
		return fmt.Errorf("purchase platform is nil")
	}
	return translateError(r.db.WithContext(ctx).Create(platform).Error)
}

// UpdatePurchasePlatform applies the provided fields and returns the stored row.
func (r *GormRepository) UpdatePurchasePlatform(ctx context.Context, id uint, updates entity.PurchasePlatformUpdates) (*db.PurchasePlatform, error) {
	if r == nil || r.db == nil {
		return nil, errNotInitialised()
	}
	if id == 0 {
		return nil, gorm.ErrRecordNotFound
	}

	var platform db.PurchasePlatform
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&platform, id).Error; err != nil {
			return err
		}
		// map 形式的 Updates 会写入 false 等零值
		if values := updates.ToMap(); len(values) > 0 {
			if err := tx.Model(&platform).Updates(values).Error; err != nil {
				return err
			}
		}
		return tx.First(&platform, id).Error
	})
	if err != nil {
		return nil, translateError(err)
	}
	return &platform, nil
}

// DeletePurchasePlatform removes a platform by ID.
func (r *GormRepository) DeletePurchasePlatform(ctx context.Context, id uint) error {
	if r == nil || r.db == nil {
		return errNotInitialised()
	}
	if id == 0 {
		return gorm.ErrRecordNotFound
	}
	result := r.db.WithContext(ctx).Delete(&db.PurchasePlatform{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
