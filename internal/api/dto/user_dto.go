package dto

import "Orbit/internal/model"

type RegisterDTO struct {
	Name     string `json:"name" validate:"required,min=2,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6,max=64"`
}

type ActivationDTO struct {
	Token string `json:"activationToken" validate:"required"`
	OTP   string `json:"otp" validate:"required,len=6"`
}

type ResendOtpDTO struct {
	Token string `json:"activationToken" validate:"required"`
}

type LoginDTO struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type SocialAuthDTO struct {
	Name      string  `json:"name" validate:"required"`
	Email     string  `json:"email" validate:"required,email"`
	AvatarURL *string `json:"avatarUrl"`
}

type ForgotPasswordDTO struct {
	Email string `json:"email" validate:"required,email"`
}

type ResetPasswordDTO struct {
	Password        string `json:"password" validate:"required,min=6,max=64"`
	ConfirmPassword string `json:"confirmPassword" validate:"required"`
}

type UpdateProfileDTO struct {
	Name     *string `json:"name"`
	Bio      *string `json:"bio"`
	MailLink *string `json:"mailLink"`
}

type ChangePasswordDTO struct {
	OldPassword string `json:"oldPassword" validate:"required"`
	NewPassword string `json:"newPassword" validate:"required,min=6,max=64"`
}

type AuthorRequestDTO struct {
	Reason string `json:"reason" validate:"required,max=1000"`
}

type ContactUsDTO struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Subject string `json:"subject" validate:"required,max=255"`
	Message string `json:"message" validate:"required,max=2000"`
}

type UpdateRoleDTO struct {
	UserID uint64 `json:"userId" validate:"required"`
	Role   string `json:"role" validate:"required,oneof=USER AUTHOR ADMIN"`
}

// AuthResultDTO 登录或激活成功后的返回
type AuthResultDTO struct {
	Token string      `json:"token"`
	User  *model.User `json:"user"`
}

// RegisterResultDTO 注册成功后的激活会话
type RegisterResultDTO struct {
	ActivationToken string `json:"activationToken"`
}

// UserDetailDTO 管理端的用户画像
type UserDetailDTO struct {
	User     *model.User `json:"user"`
	Posts    int64       `json:"posts"`
	Comments int64       `json:"comments"`
	Replies  int64       `json:"replies"`
	Likes    int64       `json:"likes"`
}
