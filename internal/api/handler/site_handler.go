package handler

import (
	"Orbit/internal/api/dto"
	"Orbit/internal/pkg/response"
	"Orbit/internal/service"

	"github.com/gin-gonic/gin"
)

type SiteHandler struct {
	siteSvc service.SiteService
}

func NewSiteHandler(siteSvc service.SiteService) *SiteHandler {
	return &SiteHandler{
		siteSvc: siteSvc,
	}
}

func (s *SiteHandler) GetSettings(c *gin.Context) {
	settings, err := s.siteSvc.GetSettings(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, "settings", settings)
}

func (s *SiteHandler) UpdateSettings(c *gin.Context) {
	var req dto.UpdateSiteSettingsDTO
	if err := c.ShouldBind(&req); err != nil {
		response.Error(c, err)
		return
	}

	logo, _ := c.FormFile("logo")
	heroImage, _ := c.FormFile("heroImage")
	settings, err := s.siteSvc.UpdateSettings(c.Request.Context(), &req, logo, heroImage)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, "settings", settings)
}
