package handler

import (
	"Orbit/internal/api/dto"
	"Orbit/internal/pkg/response"
	"Orbit/internal/pkg/util"
	"Orbit/internal/service"
	"strconv"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	userSvc service.UserService
}

func NewUserHandler(userSvc service.UserService) *UserHandler {
	return &UserHandler{
		userSvc: userSvc,
	}
}

func (s *UserHandler) Register(c *gin.Context) {
	var req dto.RegisterDTO
	if err := c.ShouldBind(&req); err != nil {
		response.Error(c, err)
		return
	}
	if err := util.ValidateDTO(&req); err != nil {
		response.Error(c, err)
		return
	}
	result, err := s.userSvc.Register(c.Request.Context(), &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, "activationToken", result.ActivationToken)
}

func (s *UserHandler) Activate(c *gin.Context) {
	var req dto.ActivationDTO
	if err := c.ShouldBind(&req); err != nil {
		response.Error(c, err)
		return
	}
	if err := util.ValidateDTO(&req); err != nil {
		response.Error(c, err)
		return
	}
	result, err := s.userSvc.Activate(c.Request.Context(), &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, "auth", result)
}

func (s *UserHandler) ResendOTP(c *gin.Context) {
	var req dto.ResendOtpDTO
	if err := c.ShouldBind(&req); err != nil {
		response.Error(c, err)
		return
	}
	if err := util.ValidateDTO(&req); err != nil {
		response.Error(c, err)
		return
	}
	if err := s.userSvc.ResendOTP(c.Request.Context(), &req); err != nil {
		response.Error(c, err)
		return
	}
	response.Message(c, "Activation code sent")
}

func (s *UserHandler) Login(c *gin.Context) {
	var req dto.LoginDTO
	if err := c.ShouldBind(&req); err != nil {
		response.Error(c, err)
		return
	}
	if err := util.ValidateDTO(&req); err != nil {
		response.Error(c, err)
		return
	}
	result, err := s.userSvc.Login(c.Request.Context(), &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, "auth", result)
}

func (s *UserHandler) SocialAuth(c *gin.Context) {
	var req dto.SocialAuthDTO
	if err := c.ShouldBind(&req); err != nil {
		response.Error(c, err)
		return
	}
	if err := util.ValidateDTO(&req); err != nil {
		response.Error(c, err)
		return
	}
	result, err := s.userSvc.SocialAuth(c.Request.Context(), &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, "auth", result)
}

func (s *UserHandler) Logout(c *gin.Context) {
	token := c.GetString("token")
	if err := s.userSvc.Logout(c.Request.Context(), token); err != nil {
		response.Error(c, err)
		return
	}
	response.Message(c, "Logged out successfully")
}

func (s *UserHandler) GetMe(c *gin.Context) {
	user, err := s.userSvc.GetMe(c.Request.Context(), c.GetUint64("user_id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, "user", user)
}

func (s *UserHandler) GetAuthorProfile(c *gin.Context) {
	authorID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	author, err := s.userSvc.GetAuthorProfile(c.Request.Context(), authorID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, "author", author)
}

func (s *UserHandler) ForgotPassword(c *gin.Context) {
	var req dto.ForgotPasswordDTO
	if err := c.ShouldBind(&req); err != nil {
		response.Error(c, err)
		return
	}
	if err := util.ValidateDTO(&req); err != nil {
		response.Error(c, err)
		return
	}
	if err := s.userSvc.ForgotPassword(c.Request.Context(), &req); err != nil {
		response.Error(c, err)
		return
	}
	response.Message(c, "Reset password email sent")
}

func (s *UserHandler) ResetPassword(c *gin.Context) {
	var req dto.ResetPasswordDTO
	if err := c.ShouldBind(&req); err != nil {
		response.Error(c, err)
		return
	}
	if err := util.ValidateDTO(&req); err != nil {
		response.Error(c, err)
		return
	}
	if err := s.userSvc.ResetPassword(c.Request.Context(), c.Param("token"), &req); err != nil {
		response.Error(c, err)
		return
	}
	response.Message(c, "Password updated successfully")
}

func (s *UserHandler) UpdateProfile(c *gin.Context) {
	var req dto.UpdateProfileDTO
	if err := c.ShouldBind(&req); err != nil {
		response.Error(c, err)
		return
	}
	user, err := s.userSvc.UpdateProfile(c.Request.Context(), c.GetUint64("user_id"), &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, "user", user)
}

func (s *UserHandler) UpdateAvatar(c *gin.Context) {
	fh, err := c.FormFile("avatar")
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	user, err := s.userSvc.UpdateAvatar(c.Request.Context(), c.GetUint64("user_id"), fh)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, "user", user)
}

func (s *UserHandler) ChangePassword(c *gin.Context) {
	var req dto.ChangePasswordDTO
	if err := c.ShouldBind(&req); err != nil {
		response.Error(c, err)
		return
	}
	if err := util.ValidateDTO(&req); err != nil {
		response.Error(c, err)
		return
	}
	if err := s.userSvc.ChangePassword(c.Request.Context(), c.GetUint64("user_id"), &req); err != nil {
		response.Error(c, err)
		return
	}
	response.Message(c, "Password changed successfully")
}

func (s *UserHandler) AuthorRequest(c *gin.Context) {
	var req dto.AuthorRequestDTO
	if err := c.ShouldBind(&req); err != nil {
		response.Error(c, err)
		return
	}
	if err := util.ValidateDTO(&req); err != nil {
		response.Error(c, err)
		return
	}
	if err := s.userSvc.AuthorRequest(c.Request.Context(), c.GetUint64("user_id"), &req); err != nil {
		response.Error(c, err)
		return
	}
	response.Message(c, "Author request submitted")
}

func (s *UserHandler) ContactUs(c *gin.Context) {
	var req dto.ContactUsDTO
	if err := c.ShouldBind(&req); err != nil {
		response.Error(c, err)
		return
	}
	if err := util.ValidateDTO(&req); err != nil {
		response.Error(c, err)
		return
	}
	if err := s.userSvc.ContactUs(c.Request.Context(), &req); err != nil {
		response.Error(c, err)
		return
	}
	response.Message(c, "Message sent successfully")
}

func (s *UserHandler) ListUsers(c *gin.Context) {
	users, err := s.userSvc.ListUsers(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, "users", users)
}

func (s *UserHandler) GetUserDetail(c *gin.Context) {
	userID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	detail, err := s.userSvc.GetUserDetail(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, "user", detail)
}

func (s *UserHandler) UpdateRole(c *gin.Context) {
	userID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	var req dto.UpdateRoleDTO
	if err = c.ShouldBind(&req); err != nil {
		response.Error(c, err)
		return
	}
	req.UserID = userID
	if err = util.ValidateDTO(&req); err != nil {
		response.Error(c, err)
		return
	}
	if err := s.userSvc.UpdateRole(c.Request.Context(), &req); err != nil {
		response.Error(c, err)
		return
	}
	response.Message(c, "Role updated successfully")
}

func (s *UserHandler) DeleteUser(c *gin.Context) {
	userID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	if err = s.userSvc.DeleteUser(c.Request.Context(), userID); err != nil {
		response.Error(c, err)
		return
	}
	response.Message(c, "User deleted successfully")
}
