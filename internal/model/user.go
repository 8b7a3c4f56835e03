package model

import (
	"time"
)

type User struct {
	ID                  uint64  `gorm:"primaryKey"`
	Name                string  `gorm:"type:varchar(100);not null" json:"name"`
	Email               string  `gorm:"type:varchar(255);not null;uniqueIndex:idx_email" json:"email"`
	Password            *string `gorm:"type:varchar(255)" json:"-"`
	Role                string  `gorm:"type:varchar(20);not null;default:USER" json:"role"`
	IsSocial            bool    `gorm:"type:tinyint(1);not null;default:0" json:"isSocial"`
	ResetPasswordToken  *string `gorm:"type:varchar(64);index:idx_reset_token" json:"-"`
	ResetPasswordExpire *time.Time `json:"-"`
	CreatedAt           time.Time  `json:"createdAt"`
	UpdatedAt           time.Time  `json:"updatedAt"`

	Profile Profile `gorm:"foreignKey:UserID;references:ID" json:"profile"`
	Posts   []Post  `gorm:"foreignKey:AuthorID;references:ID" json:"posts,omitempty"`
}

func (User) TableName() string {
	return "users"
}
