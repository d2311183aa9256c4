package dto

import "time"

// PurchasePlatformView is the admin-facing purchase platform representation.
type PurchasePlatformView struct {
	ID          uint      `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	IsActive    bool      `json:"isActive"`
	APILink     string    `json:"apiLink"`
	AccessKey   string    `json:"accessKey"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// CreatePurchasePlatformRequest defines payload for creating purchase platforms.
// IsActive defaults to true when omitted.
type CreatePurchasePlatformRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	IsActive    *bool  `json:"isActive"`
	APILink     string `json:"apiLink"`
	AccessKey   string `json:"accessKey"`
}

// UpdatePurchasePlatformRequest defines payload for updating purchase platforms.
type UpdatePurchasePlatformRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	IsActive    *bool   `json:"isActive"`
	APILink     *string `json:"apiLink"`
	AccessKey   *string `json:"accessKey"`
}

// PurchasePlatformListResponse wraps the platform collection.
type PurchasePlatformListResponse struct {
	Platforms []PurchasePlatformView `json:"platforms"`
}

// PurchasePlatformDetailResponse wraps a single platform.
type PurchasePlatformDetailResponse struct {
	Platform PurchasePlatformView `json:"platform"`
}
