package entity

// UserUpdates 用户更新字段
type UserUpdates struct {
	FullName     *string
	Email        *string
	PasswordHash *string
	Role         *Role
}

// ToMap 转换为 GORM 更新 map（内部使用）
func (u UserUpdates) ToMap() map[string]interface{} {
	updates := make(map[string]interface{})
	if u.FullName != nil {
		updates["full_name"] = *u.FullName
	}
	if u.Email != nil {
		updates["email"] = *u.Email
	}
	if u.PasswordHash != nil {
		updates["password_hash"] = *u.PasswordHash
	}
	if u.Role != nil {
		updates["role"] = string(*u.Role)
	}
	return updates
}

// IsEmpty 检查是否没有任何更新字段
func (u UserUpdates) IsEmpty() bool {
	return len(u.ToMap()) == 0
}

// AffiliateLinkUpdates 联盟链接更新字段
type AffiliateLinkUpdates struct {
	OriginalLink  *string
	ProductImage  *string
	CatchyPhrase  *string
	AffiliateLink *string
}

// ToMap 转换为 GORM 更新 map（内部使用）
func (u AffiliateLinkUpdates) ToMap() map[string]interface{} {
	updates := make(map[string]interface{})
	if u.OriginalLink != nil {
		updates["original_link"] = *u.OriginalLink
	}
	if u.ProductImage != nil {
		updates["product_image"] = *u.ProductImage
	}
	if u.CatchyPhrase != nil {
		updates["catchy_phrase"] = *u.CatchyPhrase
	}
	if u.AffiliateLink != nil {
		updates["affiliate_link"] = *u.AffiliateLink
	}
	return updates
}

// IsEmpty 检查是否没有任何更新字段
func (u AffiliateLinkUpdates) IsEmpty() bool {
	return len(u.ToMap()) == 0
}

// PurchasePlatformUpdates 购物平台更新字段
type PurchasePlatformUpdates struct {
	Name        *string
	Description *string
	IsActive    *bool
	APILink     *string
	AccessKey   *string
}

// ToMap 转换为 GORM 更新 map（内部使用）
func (u PurchasePlatformUpdates) ToMap() map[string]interface{} {
	updates := make(map[string]interface{})
	if u.Name != nil {
		updates["name"] = *u.Name
	}
	if u.Description != nil {
		updates["description"] = *u.Description
	}
	if u.IsActive != nil {
		updates["is_active"] = *u.IsActive
	}
	if u.APILink != nil {
		updates["api_link"] = *u.APILink
	}
	if u.AccessKey != nil {
		updates["access_key"] = *u.AccessKey
	}
	return updates
}

// IsEmpty 检查是否没有任何更新字段
func (u PurchasePlatformUpdates) IsEmpty() bool {
	return len(u.ToMap()) == 0
}
