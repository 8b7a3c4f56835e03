package dto

type UpdateSiteSettingsDTO struct {
	SiteName        *string `form:"siteName"`
	HeroTitle       *string `form:"heroTitle"`
	HeroDescription *string `form:"heroDescription"`
	AccentColor     *string `form:"accentColor"`
	GradientStart   *string `form:"gradientStart"`
	GradientEnd     *string `form:"gradientEnd"`
}
