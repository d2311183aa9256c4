package db

import "time"

// AffiliateLink 存储一个商品原始链接及其联盟推广链接。
type AffiliateLink struct {
	ID            uint      `gorm:"primarykey" json:"id"`
	OriginalLink  string    `gorm:"column:original_link;type:text;not null" json:"original_link"`
	ProductImage  string    `gorm:"column:product_image;type:text;not null" json:"product_image"`
	CatchyPhrase  string    `gorm:"column:catchy_phrase;type:text;not null" json:"catchy_phrase"`
	AffiliateLink string    `gorm:"column:affiliate_link;type:text;not null" json:"affiliate_link"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// TableName 指定 AffiliateLink 的表名。
func (AffiliateLink) TableName() string {
	return "affiliate_links"
}
