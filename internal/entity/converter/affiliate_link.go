package converter

import (
	"comepouco/internal/entity/db"
	"comepouco/internal/entity/dto"
)

// AffiliateLinkToView converts db.AffiliateLink to dto.AffiliateLinkView.
func AffiliateLinkToView(l *db.AffiliateLink) dto.AffiliateLinkView {
	if l == nil {
		return dto.AffiliateLinkView{}
	}
	return dto.AffiliateLinkView{
		ID:            l.ID,
		OriginalLink:  l.OriginalLink,
		ProductImage:  l.ProductImage,
		CatchyPhrase:  l.CatchyPhrase,
		AffiliateLink: l.AffiliateLink,
		CreatedAt:     l.CreatedAt,
		UpdatedAt:     l.UpdatedAt,
	}
}

// AffiliateLinksToViews converts a slice of db.AffiliateLink.
func AffiliateLinksToViews(links []db.AffiliateLink) []dto.AffiliateLinkView {
	views := make([]dto.AffiliateLinkView, len(links))
	for i := range links {
		views[i] = AffiliateLinkToView(&links[i])
	}
	return views
}
