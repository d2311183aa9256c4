package converter

import (
	"comepouco/internal/entity/db"
	"comepouco/internal/entity/dto"
)

// PurchasePlatformToView converts db.PurchasePlatform to dto.PurchasePlatformView.
func PurchasePlatformToView(p *db.PurchasePlatform) dto.PurchasePlatformView {
	if p == nil {
		return dto.PurchasePlatformView{}
	}
	return dto.PurchasePlatformView{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		IsActive:    p.IsActive,
		APILink:     p.APILink,
		AccessKey:   p.AccessKey,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

// PurchasePlatformsToViews converts a slice of db.PurchasePlatform.
func PurchasePlatformsToViews(platforms []db.PurchasePlatform) []dto.PurchasePlatformView {
	views := make([]dto.PurchasePlatformView, len(platforms))
	for i := range platforms {
		views[i] = PurchasePlatformToView(&platforms[i])
	}
	return views
}
