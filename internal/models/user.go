package models

import (
	"time"
)

// User represents the users table. Account lifecycle (signup, social login,
// email verification) lives in the auth service; this API only needs the
// identity row for ownership and claim foreign keys.
// DB: users
type User struct {
	ID           uint       `gorm:"primaryKey" json:"id"`
	Username     string     `gorm:"column:username;size:255;not null;uniqueIndex:users_username_key" json:"username"`
	Email        string     `gorm:"column:email;size:255;not null" json:"email"`
	Name         string     `gorm:"column:name;size:100;not null" json:"name"`
	ProfileImage string     `gorm:"column:profile_image;size:500;not null" json:"profile_image"`
	IsActive     bool       `gorm:"column:is_active;not null" json:"is_active"`
	DateJoined   time.Time  `gorm:"column:date_joined;not null" json:"date_joined"`
	LastLogin    *time.Time `gorm:"column:last_login" json:"last_login,omitempty"`

	// Relations
	OwnedBusinesses []BusinessOwner `gorm:"foreignKey:UserID" json:"owned_businesses,omitempty"`
	Claims          []BusinessClaim `gorm:"foreignKey:ClaimantID" json:"claims,omitempty"`
}

func (User) TableName() string {
	return "users"
}
