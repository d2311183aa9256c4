package db

import (
	"time"

	"comepouco/internal/entity"
)

// User 表示持久化的用户账户。
type User struct {
	ID           uint        `gorm:"primarykey" json:"id"`
	CreatedAt    time.Time   `json:"created_at"`
	UpdatedAt    time.Time   `json:"updated_at"`
	FullName     string      `gorm:"column:full_name;type:varchar(255);not null" json:"full_name"`
	Email        string      `gorm:"column:email;type:varchar(255);uniqueIndex;not null" json:"email"`
	PasswordHash string      `gorm:"column:password_hash;type:varchar(255);not null" json:"-"`
	Role         entity.Role `gorm:"column:role;type:varchar(16);index;not null;default:USER" json:"role"`
}

// TableName 指定表名。
func (User) TableName() string {
	return "users"
}
