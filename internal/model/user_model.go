package model

import "time"

// FallbackUser backs the demo-mode local registration store.
type FallbackUser struct {
	Id           string    `gorm:"type:varchar(64);primaryKey"`
	Name         string    `gorm:"type:varchar(255);not null"`
	Email        string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	Phone        string    `gorm:"type:varchar(50)"`
	PasswordHash string    `gorm:"type:varchar(255);not null"`
	CreatedAt    time.Time `gorm:"autoCreateTime"`
}

func (FallbackUser) TableName() string {
	return "fallback_users"
}
