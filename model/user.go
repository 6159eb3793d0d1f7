package model

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type User struct {
	UserID         string            `gorm:"column:user_id;type:uuid;primaryKey" json:"id"`
	Name           string            `gorm:"column:name;type:text;not null" json:"full_name"`
	Email          string            `gorm:"column:email;type:text;uniqueIndex;not null" json:"email"`
	HashedPassword string            `gorm:"column:hashed_password;type:text;not null" json:"-"`
	Role           string            `gorm:"column:role;type:text;default:'member'" json:"role"`
	AvatarURL      string            `gorm:"column:avatar_url;type:text" json:"avatar_url,omitempty"`
	RefreshHash    string            `gorm:"column:refresh_hash;type:text" json:"-"`
	Metadata       datatypes.JSONMap `gorm:"column:metadata;type:jsonb" json:"metadata"`
	CreatedAt      time.Time         `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (User) TableName() string {
	return "users"
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.UserID == "" {
		u.UserID = uuid.NewString()
	}
	return nil
}

type AccessClaims struct {
	UserID string `json:"userId"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

type RefreshClaims struct {
	UserID string `json:"userId"`
	jwt.RegisteredClaims
}
