package model

import (
	"comepouco/internal/entity"
	"comepouco/internal/entity/db"
	"context"
)

// Repository 定义数据库操作接口
type Repository interface {
	// 用户管理
	CreateUser(ctx context.Context, user *db.User) error
	UpdateUser(ctx context.Context, id uint, updates entity.UserUpdates) (*db.User, error)
	GetUserByEmail(ctx context.Context, email string) (*db.User, error)
	GetUserByID(ctx context.Context, id uint) (*db.User, error)
	ListUsers(ctx context.Context) ([]db.User, error)
	DeleteUser(ctx context.Context, id uint) error
	CountUsers(ctx context.Context) (int64, error)

	// 联盟链接
	ListAffiliateLinks(ctx context.Context) ([]db.AffiliateLink, error)
	CreateAffiliateLink(ctx context.Context, link *db.AffiliateLink) error
	UpdateAffiliateLink(ctx context.Context, id uint, updates entity.AffiliateLinkUpdates) (*db.AffiliateLink, error)
	DeleteAffiliateLink(ctx context.Context, id uint) error

	// 购物平台
	ListPurchasePlatforms(ctx context.Context) ([]db.PurchasePlatform, error)
	CreatePurchasePlatform(ctx context.Context, platform *db.PurchasePlatform) error
	UpdatePurchasePlatform(ctx context.Context, id uint, updates entity.PurchasePlatformUpdates) (*db.PurchasePlatform, error)
	DeletePurchasePlatform(ctx context.Context, id uint) error

	// Close releases the underlying connection pool.
	Close() error
}
