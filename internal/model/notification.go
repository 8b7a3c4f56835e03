package model

import (
	"time"
)

type Notification struct {
	ID        uint64    `gorm:"primaryKey" json:"id"`
	UserID    uint64    `gorm:"not null;index:idx_user_id" json:"userId"`
	Title     string    `gorm:"type:varchar(255);not null" json:"title"`
	Message   string    `gorm:"type:varchar(500);not null" json:"message"`
	IsRead    bool      `gorm:"type:tinyint(1);not null;default:0" json:"isRead"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	User User `gorm:"foreignKey:UserID;references:ID" json:"user"`
}

func (Notification) TableName() string {
	return "notifications"
}
