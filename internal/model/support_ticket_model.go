package model

import (
	"time"

	"github.com/google/uuid"
)

type SupportTicket struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string    `gorm:"type:varchar(255);not null"`
	Email     string    `gorm:"type:varchar(255);not null;index"`
	Category  string    `gorm:"type:varchar(100);not null"`
	Message   string    `gorm:"type:text;not null"`
	Status    string    `gorm:"type:varchar(20);not null"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

func (SupportTicket) TableName() string {
	return "support_tickets"
}
