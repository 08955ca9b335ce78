package models

import (
	"time"

	"gorm.io/gorm"
)

// PasswordReset is a single-use token mailed to the user.
type PasswordReset struct {
	gorm.Model
	UserID    uint      `gorm:"not null;index" json:"userId"`
	Email     string    `gorm:"size:100;index" json:"email"`
	Token     string    `gorm:"size:64;uniqueIndex;not null" json:"-"`
	ExpiresAt time.Time `gorm:"not null" json:"expiresAt"`
	IsUsed    bool      `gorm:"default:false" json:"isUsed"`
	IsDeleted bool      `gorm:"default:false" json:"-"`
}
