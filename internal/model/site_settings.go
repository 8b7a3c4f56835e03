package model

import "time"

type SiteSettings struct {
	ID              uint64  `gorm:"primaryKey" json:"id"`
	SiteName        string  `gorm:"type:varchar(100);not null" json:"siteName"`
	HeroTitle       string  `gorm:"type:varchar(255)" json:"heroTitle"`
	HeroDescription string  `gorm:"type:varchar(500)" json:"heroDescription"`
	LogoURL         *string `gorm:"type:varchar(500)" json:"logoUrl"`
	LogoObject      *string `gorm:"type:varchar(255)" json:"-"`
	HeroImageURL    *string `gorm:"type:varchar(500)" json:"heroImageUrl"`
	HeroImageObject *string `gorm:"type:varchar(255)" json:"-"`
	AccentColor     string  `gorm:"type:varchar(20)" json:"accentColor"`
	GradientStart   string  `gorm:"type:varchar(20)" json:"gradientStart"`
	GradientEnd     string  `gorm:"type:varchar(20)" json:"gradientEnd"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

func (SiteSettings) TableName() string {
	return "site_settings"
}
