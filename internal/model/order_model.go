package model

import (
	"time"

	"gorm.io/datatypes"
)

type Order struct {
	OrderId         string         `gorm:"type:varchar(64);primaryKey"`
	UserId          string         `gorm:"type:varchar(255);index"`
	Items           datatypes.JSON `gorm:"not null"`
	Total           float64        `gorm:"not null"`
	CustomerName    string         `gorm:"type:varchar(255)"`
	CustomerEmail   string         `gorm:"type:varchar(255)"`
	CustomerPhone   string         `gorm:"type:varchar(50)"`
	ShippingAddress string         `gorm:"type:varchar(255)"`
	ShippingCity    string         `gorm:"type:varchar(255)"`
	ShippingZip     string         `gorm:"type:varchar(20)"`
	Status          string         `gorm:"type:varchar(20);not null"`
	PlacedAt        time.Time      `gorm:"not null"`
	CreatedAt       time.Time      `gorm:"autoCreateTime"`
}

func (Order) TableName() string {
	return "orders"
}
