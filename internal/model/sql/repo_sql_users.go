package sql

import (
	"comepouco/internal/entity"
	"comepouco/internal/entity/db"
	"context"
	"fmt"
	"strings"

	"gorm.io/gorm"
)

// CreateUser persists a new user record.
func (r *GormRepository) CreateUser(ctx context.Context, user *db.User) error {
	if r == nil || r.db == nil {
		return errNotInitialised()
	}
	if user == nil {
		return fmt.Errorf("user is nil")
	}
	if user.Role == "" {
		user.Role = entity.RoleUser
	}
	return translateError(r.db.WithContext(ctx).Create(user).Error)
}

// UpdateUser applies the provided fields and returns the stored row.
func (r *GormRepository) UpdateUser(ctx context.Context, id uint, updates entity.UserUpdates) (*db.User, error) {
	if r == nil || r.db == nil {
		return nil, errNotInitialised()
	}
	if id == 0 {
		return nil, fmt.Errorf("invalid user id")
	}

	var user db.User
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&user, id).Error; err != nil {
			return err
		}
		if values := updates.ToMap(); len(values) > 0 {
			if err := tx.Model(&user).Updates(values).Error; err != nil {
				return err
			}
		}
		return tx.First(&user, id).Error
	})
	if err != nil {
		return nil, translateError(err)
	}
	return &user, nil
}

// GetUserByEmail loads a user by email.
func (r *GormRepository) GetUserByEmail(ctx context.Context, email string) (*db.User, error) {
	if r == nil || r.db == nil {
		return nil, errNotInitialised()
	}
	trimmed := strings.TrimSpace(email)
	if trimmed == "" {
		return nil, fmt.Errorf("email is empty")
	}

	var user db.User
	if err := r.db.WithContext(ctx).Where("email = ?", strings.ToLower(trimmed)).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// GetUserByID loads a user by ID.
func (r *GormRepository) GetUserByID(ctx context.Context, id uint) (*db.User, error) {
	if r == nil || r.db == nil {
		return nil, errNotInitialised()
	}
	if id == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	var user db.User
	if err := r.db.WithContext(ctx).First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// ListUsers returns every user ordered by id ascending.
func (r *GormRepository) ListUsers(ctx context.Context) ([]db.User, error) {
	if r == nil || r.db == nil {
		return nil, errNotInitialised()
	}
	users := make([]db.User, 0)
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// DeleteUser removes a user by ID.
func (r *GormRepository) DeleteUser(ctx context.Context, id uint) error {
	if r == nil || r.db == nil {
		return errNotInitialised()
	}
	if id == 0 {
		return gorm.ErrRecordNotFound
	}
	result := r.db.WithContext(ctx).Delete(&db.User{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// CountUsers returns total user count.
func (r *GormRepository) CountUsers(ctx context.Context) (int64, error) {
	if r == nil || r.db == nil {
		return 0, errNotInitialised()
	}
	var count int64
	if err := r.db.WithContext(ctx).Model(&db.User{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
