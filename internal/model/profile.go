package model

import "time"

type Profile struct {
	ID           uint64  `gorm:"primaryKey" json:"-"`
	UserID       uint64  `gorm:"not null;uniqueIndex:idx_profile_user" json:"-"`
	Bio          *string `gorm:"type:varchar(500)" json:"bio"`
	AvatarURL    *string `gorm:"type:varchar(500)" json:"avatarUrl"`
	AvatarObject *string `gorm:"type:varchar(255)" json:"-"`
	MailLink     *string `gorm:"type:varchar(255)" json:"mailLink"`
	CreatedAt    time.Time `json:"-"`
	UpdatedAt    time.Time `json:"-"`
}

func (Profile) TableName() string {
	return "profiles"
}
