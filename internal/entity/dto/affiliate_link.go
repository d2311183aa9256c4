package dto

import "time"

// AffiliateLinkView is the client-facing affiliate link representation.
type AffiliateLinkView struct {
	ID            uint      `json:"id"`
	OriginalLink  string    `json:"originalLink"`
	ProductImage  string    `json:"productImage"`
	CatchyPhrase  string    `json:"catchyPhrase"`
	AffiliateLink string    `json:"affiliateLink"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// CreateAffiliateLinkRequest defines payload for creating affiliate links.
type CreateAffiliateLinkRequest struct {
	OriginalLink  string `json:"originalLink"`
	ProductImage  string `json:"productImage"`
	CatchyPhrase  string `json:"catchyPhrase"`
	AffiliateLink string `json:"affiliateLink"`
}

// UpdateAffiliateLinkRequest defines payload for updating affiliate links.
type UpdateAffiliateLinkRequest struct {
	OriginalLink  *string `json:"originalLink"`
	ProductImage  *string `json:"productImage"`
	CatchyPhrase  *string `json:"catchyPhrase"`
	AffiliateLink *string `json:"affiliateLink"`
}

// AffiliateLinkListResponse wraps the link collection.
type AffiliateLinkListResponse struct {
	Links []AffiliateLinkView `json:"links"`
}

// AffiliateLinkDetailResponse wraps a single link.
type AffiliateLinkDetailResponse struct {
	Link AffiliateLinkView `json:"link"`
}
