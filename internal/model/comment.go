package model

import (
	"time"
)

type Comment struct {
	ID        uint64    `gorm:"primaryKey" json:"id"`
	PostID    uint64    `gorm:"not null;index:idx_post_id" json:"postId"`
	UserID    uint64    `gorm:"not null" json:"userId"`
	Content   string    `gorm:"type:varchar(1000);not null" json:"comment"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	User    User    `gorm:"foreignKey:UserID;references:ID" json:"user"`
	Replies []Reply `gorm:"foreignKey:CommentID;references:ID" json:"replies,omitempty"`
}

func (Comment) TableName() string {
	return "comments"
}
