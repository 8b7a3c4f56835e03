package handler

import (
	"Orbit/internal/pkg/response"
	"Orbit/internal/service"
	"strconv"

	"github.com/gin-gonic/gin"
)

type AnalyticsHandler struct {
	analyticsSvc service.AnalyticsService
}

func NewAnalyticsHandler(analyticsSvc service.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{
		analyticsSvc: analyticsSvc,
	}
}

// monthsParam 解析路径中的统计窗口月数
func monthsParam(c *gin.Context) (int, error) {
	months, err := strconv.Atoi(c.Param("days"))
	if err != nil || months <= 0 {
		return 0, service.ErrParamInvalid
	}
	return months, nil
}

func (s *AnalyticsHandler) GetPostAnalytics(c *gin.Context) {
	months, err := monthsParam(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	analytics, err := s.analyticsSvc.GetAuthorAnalytics(c.Request.Context(), c.GetUint64("user_id"), months)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, "analytics", analytics)
}

func (s *AnalyticsHandler) GetAdminOverview(c *gin.Context) {
	months, err := monthsParam(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	overview, err := s.analyticsSvc.GetPlatformOverview(c.Request.Context(), months)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, "overview", overview)
}

func (s *AnalyticsHandler) GetAdminPostAnalytics(c *gin.Context) {
	analytics, err := s.analyticsSvc.GetDetailedPostAnalytics(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, "PostAnalytics", analytics)
}

func (s *AnalyticsHandler) GetUserAnalytics(c *gin.Context) {
	analytics, err := s.analyticsSvc.GetUserActivityAnalytics(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, "UserAnalytics", analytics)
}

func (s *AnalyticsHandler) GetGrowthReports(c *gin.Context) {
	reports, err := s.analyticsSvc.GetGrowthReports(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, "GrowthReport", reports)
}
