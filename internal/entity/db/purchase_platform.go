package db

import "time"

// PurchasePlatform 存储购物平台的 API 地址和访问凭证。
type PurchasePlatform struct {
	ID          uint      `gorm:"primarykey" json:"id"`
	Name        string    `gorm:"type:varchar(255);not null" json:"name"`
	Description string    `gorm:"type:text;not null" json:"description"`
	IsActive    bool      `gorm:"column:is_active;not null" json:"is_active"`
	APILink     string    `gorm:"column:api_link;type:text;not null" json:"api_link"`
	AccessKey   string    `gorm:"column:access_key;type:text;not null" json:"access_key"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// TableName 指定 PurchasePlatform 的表名。
func (PurchasePlatform) TableName() string {
	return "purchase_platforms"
}
