package handler

import (
	"Orbit/internal/pkg/response"
	"Orbit/internal/service"
	"strconv"

	"github.com/gin-gonic/gin"
)

type NotificationHandler struct {
	notificationSvc service.NotificationService
}

func NewNotificationHandler(notificationSvc service.NotificationService) *NotificationHandler {
	return &NotificationHandler{
		notificationSvc: notificationSvc,
	}
}

func (s *NotificationHandler) List(c *gin.Context) {
	notifications, err := s.notificationSvc.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, "notifications", notifications)
}

func (s *NotificationHandler) MarkRead(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	if err = s.notificationSvc.MarkRead(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.Message(c, "Notification marked as read")
}

func (s *NotificationHandler) MarkAllRead(c *gin.Context) {
	if err := s.notificationSvc.MarkAllRead(c.Request.Context()); err != nil {
		response.Error(c, err)
		return
	}
	response.Message(c, "All notifications marked as read")
}
