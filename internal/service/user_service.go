package service

import (
	"Orbit/internal/api/config"
	"Orbit/internal/api/dto"
	"Orbit/internal/model"
	"Orbit/internal/pkg/consts"
	"Orbit/internal/pkg/mailer"
	"Orbit/internal/pkg/redis"
	"Orbit/internal/pkg/security"
	"Orbit/internal/pkg/util"
	"Orbit/internal/repository"
	"context"
	"errors"
	"fmt"
	log "log/slog"
	"mime/multipart"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	activationTTL     = time.Hour
	otpTTL            = 5 * time.Minute
	resetTokenTTL     = 15 * time.Minute
	otpResendLimit    = 3
	otpResendWindow   = 15 * time.Minute
	authorRequestTTL  = 24 * time.Hour
	contactLimitCount = 3
)

type UserService interface {
	Register(ctx context.Context, req *dto.RegisterDTO) (*dto.RegisterResultDTO, error)
	Activate(ctx context.Context, req *dto.ActivationDTO) (*dto.AuthResultDTO, error)
	ResendOTP(ctx context.Context, req *dto.ResendOtpDTO) error
	Login(ctx context.Context, req *dto.LoginDTO) (*dto.AuthResultDTO, error)
	SocialAuth(ctx context.Context, req *dto.SocialAuthDTO) (*dto.AuthResultDTO, error)
	Logout(ctx context.Context, token string) error
	GetMe(ctx context.Context, userID uint64) (*model.User, error)
	GetUserByID(ctx context.Context, userID uint64) (*model.User, error)
	GetAuthorProfile(ctx context.Context, authorID uint64) (*model.User, error)
	ForgotPassword(ctx context.Context, req *dto.ForgotPasswordDTO) error
	ResetPassword(ctx context.Context, token string, req *dto.ResetPasswordDTO) error
	UpdateProfile(ctx context.Context, userID uint64, req *dto.UpdateProfileDTO) (*model.User, error)
	UpdateAvatar(ctx context.Context, userID uint64, fh *multipart.FileHeader) (*model.User, error)
	ChangePassword(ctx context.Context, userID uint64, req *dto.ChangePasswordDTO) error
	AuthorRequest(ctx context.Context, userID uint64, req *dto.AuthorRequestDTO) error
	ContactUs(ctx context.Context, req *dto.ContactUsDTO) error
	ListUsers(ctx context.Context) ([]*model.User, error)
	GetUserDetail(ctx context.Context, userID uint64) (*dto.UserDetailDTO, error)
	UpdateRole(ctx context.Context, req *dto.UpdateRoleDTO) error
	DeleteUser(ctx context.Context, userID uint64) error
}

type UserServiceImpl struct {
	userRepo         repository.UserRepo
	postRepo         repository.PostRepo
	notificationRepo repository.NotificationRepo
	mail             *mailer.Mailer
}

func NewUserService(userRepo repository.UserRepo, postRepo repository.PostRepo, notificationRepo repository.NotificationRepo, mail *mailer.Mailer) UserService {
	return &UserServiceImpl{
		userRepo:         userRepo,
		postRepo:         postRepo,
		notificationRepo: notificationRepo,
		mail:             mail,
	}
}

// pendingRegistration 暂存在 Redis 中的待激活注册信息
type pendingRegistration struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	OTP       string `json:"otp"`
	OtpExpire int64  `json:"otpExpire"`
}

// Register 第一阶段注册：校验邮箱未占用后暂存会话并发送激活码
func (s *UserServiceImpl) Register(ctx context.Context, req *dto.RegisterDTO) (*dto.RegisterResultDTO, error) {
	if _, err := s.userRepo.GetUserByEmail(ctx, req.Email); err == nil {
		return nil, ErrEmailExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.ErrorContext(ctx, "查询邮箱失败", "email", req.Email, "err", err)
		return nil, UnExpectedError
	}

	hashed, err := security.HashPassword(req.Password)
	if err != nil {
		log.ErrorContext(ctx, "密码哈希失败", "err", err)
		return nil, UnExpectedError
	}

	otp := util.GenerateOTP(6)
	pending := pendingRegistration{
		Name:      req.Name,
		Email:     req.Email,
		Password:  hashed,
		OTP:       otp,
		OtpExpire: time.Now().Add(otpTTL).Unix(),
	}
	payload, err := json.Marshal(pending)
	if err != nil {
		return nil, UnExpectedError
	}

	token := uuid.New().String()
	if err = redis.SetWithExpiration(ctx, consts.ActivationKey+token, payload, activationTTL); err != nil {
		log.ErrorContext(ctx, "激活会话写入失败", "err", err)
		return nil, UnExpectedError
	}

	if err = s.mail.Send(ctx, req.Email, "Activate your Orbit Blog account", mailer.ActivationMailHTML(req.Name, otp)); err != nil {
		log.ErrorContext(ctx, "激活邮件发送失败", "email", req.Email, "err", err)
		return nil, ErrUpstreamMail
	}

	return &dto.RegisterResultDTO{ActivationToken: token}, nil
}

func (s *UserServiceImpl) loadPending(ctx context.Context, token string) (*pendingRegistration, error) {
	raw, err := redis.GetValue(ctx, consts.ActivationKey+token)
	if err != nil {
		log.ErrorContext(ctx, "激活会话读取失败", "err", err)
		return nil, UnExpectedError
	}
	if raw == "" {
		return nil, ErrActivationExpired
	}
	var pending pendingRegistration
	if err = json.Unmarshal([]byte(raw), &pending); err != nil {
		return nil, UnExpectedError
	}
	return &pending, nil
}

// Activate 第二阶段注册：校验激活码并真正落库
func (s *UserServiceImpl) Activate(ctx context.Context, req *dto.ActivationDTO) (*dto.AuthResultDTO, error) {
	pending, err := s.loadPending(ctx, req.Token)
	if err != nil {
		return nil, err
	}

	if pending.OTP != req.OTP || time.Now().Unix() > pending.OtpExpire {
		return nil, ErrActivationCode
	}

	user := &model.User{
		Name:     pending.Name,
		Email:    pending.Email,
		Password: &pending.Password,
		Role:     consts.RoleUser,
	}
	if err = s.userRepo.CreateUser(ctx, user, &model.Profile{}); err != nil {
		log.ErrorContext(ctx, "用户落库失败", "email", pending.Email, "err", err)
		return nil, UnExpectedError
	}
	_ = redis.DeleteKey(ctx, consts.ActivationKey+req.Token)

	token, err := security.GenerateToken(user.ID, user.Role)
	if err != nil {
		return nil, UnExpectedError
	}
	return &dto.AuthResultDTO{Token: token, User: user}, nil
}

// ResendOTP 重发激活码，15 分钟内最多 3 次
func (s *UserServiceImpl) ResendOTP(ctx context.Context, req *dto.ResendOtpDTO) error {
	count, err := redis.IncrWithWindow(ctx, consts.OtpResendLimitKey+req.Token, otpResendWindow)
	if err != nil {
		log.ErrorContext(ctx, "重发限流计数失败", "err", err)
		return UnExpectedError
	}
	if count > otpResendLimit {
		return ErrTooManyRequests
	}

	pending, err := s.loadPending(ctx, req.Token)
	if err != nil {
		return err
	}

	pending.OTP = util.GenerateOTP(6)
	pending.OtpExpire = time.Now().Add(otpTTL).Unix()
	payload, err := json.Marshal(pending)
	if err != nil {
		return UnExpectedError
	}
	if err = redis.SetWithExpiration(ctx, consts.ActivationKey+req.Token, payload, activationTTL); err != nil {
		return UnExpectedError
	}

	if err = s.mail.Send(ctx, pending.Email, "Activate your Orbit Blog account", mailer.ActivationMailHTML(pending.Name, pending.OTP)); err != nil {
		log.ErrorContext(ctx, "激活邮件重发失败", "email", pending.Email, "err", err)
		return ErrUpstreamMail
	}
	return nil
}

func (s *UserServiceImpl) Login(ctx context.Context, req *dto.LoginDTO) (*dto.AuthResultDTO, error) {
	user, err := s.userRepo.GetUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, UnExpectedError
	}
	if user.Password == nil {
		return nil, ErrSocialAccount
	}
	if err = security.CheckPasswordHash(req.Password, *user.Password); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := security.GenerateToken(user.ID, user.Role)
	if err != nil {
		return nil, UnExpectedError
	}
	return &dto.AuthResultDTO{Token: token, User: user}, nil
}

// SocialAuth 第三方登录，账号不存在时静默注册
func (s *UserServiceImpl) SocialAuth(ctx context.Context, req *dto.SocialAuthDTO) (*dto.AuthResultDTO, error) {
	user, err := s.userRepo.GetUserByEmail(ctx, req.Email)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, UnExpectedError
		}
		user = &model.User{
			Name:     req.Name,
			Email:    req.Email,
			Role:     consts.RoleUser,
			IsSocial: true,
		}
		profile := &model.Profile{AvatarURL: req.AvatarURL}
		if err = s.userRepo.CreateUser(ctx, user, profile); err != nil {
			log.ErrorContext(ctx, "社交用户落库失败", "email", req.Email, "err", err)
			return nil, UnExpectedError
		}
		user.Profile = *profile
	}

	token, err := security.GenerateToken(user.ID, user.Role)
	if err != nil {
		return nil, UnExpectedError
	}
	return &dto.AuthResultDTO{Token: token, User: user}, nil
}

// Logout 将 Token 签名拉黑直至其自然过期
func (s *UserServiceImpl) Logout(ctx context.Context, token string) error {
	signature, err := security.ExtractSignature(token)
	if err != nil {
		return ErrTokenInvalid
	}
	expireHours := config.Cfg.Auth.ExpireHours
	if expireHours <= 0 {
		expireHours = 24
	}
	if err = redis.SetWithExpiration(ctx, signature, "logout", time.Duration(expireHours)*time.Hour); err != nil {
		log.ErrorContext(ctx, "登出黑名单写入失败", "err", err)
		return UnExpectedError
	}
	return nil
}

func (s *UserServiceImpl) GetMe(ctx context.Context, userID uint64) (*model.User, error) {
	return s.GetUserByID(ctx, userID)
}

func (s *UserServiceImpl) GetUserByID(ctx context.Context, userID uint64) (*model.User, error) {
	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, UnExpectedError
	}
	return user, nil
}

// GetAuthorProfile 作者公开主页，只带已发布的帖子
func (s *UserServiceImpl) GetAuthorProfile(ctx context.Context, authorID uint64) (*model.User, error) {
	user, err := s.userRepo.GetAuthorWithPosts(ctx, authorID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, UnExpectedError
	}
	return user, nil
}

// ForgotPassword 下发重置密码链接，有效期 15 分钟
func (s *UserServiceImpl) ForgotPassword(ctx context.Context, req *dto.ForgotPasswordDTO) error {
	user, err := s.userRepo.GetUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return UnExpectedError
	}

	raw, hashed, err := security.GenerateResetToken()
	if err != nil {
		return UnExpectedError
	}
	if err = s.userRepo.SetResetToken(ctx, user.ID, hashed, time.Now().Add(resetTokenTTL)); err != nil {
		return UnExpectedError
	}

	resetURL := fmt.Sprintf("%s/reset-password/%s", config.Cfg.Site.FrontendURL, raw)
	if err = s.mail.Send(ctx, user.Email, "Reset your Orbit Blog password", mailer.ResetPasswordMailHTML(user.Name, resetURL)); err != nil {
		// 邮件发不出去就作废令牌，避免悬挂的重置入口
		_ = s.userRepo.ClearResetToken(ctx, user.ID)
		log.ErrorContext(ctx, "重置邮件发送失败", "email", user.Email, "err", err)
		return ErrUpstreamMail
	}
	return nil
}

func (s *UserServiceImpl) ResetPassword(ctx context.Context, token string, req *dto.ResetPasswordDTO) error {
	if req.Password != req.ConfirmPassword {
		return ErrPasswordMismatch
	}

	user, err := s.userRepo.GetUserByResetToken(ctx, security.HashResetToken(token), time.Now())
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrResetTokenInvalid
		}
		return UnExpectedError
	}

	hashed, err := security.HashPassword(req.Password)
	if err != nil {
		return UnExpectedError
	}
	if err = s.userRepo.UpdatePassword(ctx, user.ID, hashed); err != nil {
		return UnExpectedError
	}
	return s.userRepo.ClearResetToken(ctx, user.ID)
}

func (s *UserServiceImpl) UpdateProfile(ctx context.Context, userID uint64, req *dto.UpdateProfileDTO) (*model.User, error) {
	if _, err := s.GetUserByID(ctx, userID); err != nil {
		return nil, err
	}

	if req.Name != nil && *req.Name != "" {
		if err := s.userRepo.UpdateUser(ctx, &model.User{ID: userID, Name: *req.Name}); err != nil {
			return nil, UnExpectedError
		}
	}
	if req.Bio != nil || req.MailLink != nil {
		profile := &model.Profile{UserID: userID, Bio: req.Bio, MailLink: req.MailLink}
		if err := s.userRepo.UpdateProfile(ctx, profile); err != nil {
			return nil, UnExpectedError
		}
	}

	return s.GetUserByID(ctx, userID)
}

func (s *UserServiceImpl) UpdateAvatar(ctx context.Context, userID uint64, fh *multipart.FileHeader) (*model.User, error) {
	user, err := s.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	url, object, err := uploadImage(ctx, consts.FolderAvatar, fh)
	if err != nil {
		return nil, err
	}
	destroyImage(ctx, user.Profile.AvatarObject)

	profile := &model.Profile{UserID: userID, AvatarURL: &url, AvatarObject: &object}
	if err = s.userRepo.UpdateProfile(ctx, profile); err != nil {
		return nil, UnExpectedError
	}
	return s.GetUserByID(ctx, userID)
}

func (s *UserServiceImpl) ChangePassword(ctx context.Context, userID uint64, req *dto.ChangePasswordDTO) error {
	user, err := s.GetUserByID(ctx, userID)
	if err != nil {
		return err
	}
	if user.Password == nil {
		return ErrSocialAccount
	}
	if err = security.CheckPasswordHash(req.OldPassword, *user.Password); err != nil {
		return ErrOldPasswordIncorrect
	}

	hashed, err := security.HashPassword(req.NewPassword)
	if err != nil {
		return UnExpectedError
	}
	if err = s.userRepo.UpdatePassword(ctx, userID, hashed); err != nil {
		return UnExpectedError
	}
	return nil
}

// AuthorRequest 普通用户申请作者身份，24 小时内只受理一次
func (s *UserServiceImpl) AuthorRequest(ctx context.Context, userID uint64, req *dto.AuthorRequestDTO) error {
	user, err := s.GetUserByID(ctx, userID)
	if err != nil {
		return err
	}

	key := fmt.Sprintf("%s%d", consts.AuthorRequestKey, userID)
	existing, err := redis.GetValue(ctx, key)
	if err != nil {
		return UnExpectedError
	}
	if existing != "" {
		return ErrAuthorRequestPending
	}
	if err = redis.SetWithExpiration(ctx, key, "pending", authorRequestTTL); err != nil {
		return UnExpectedError
	}

	notification := &model.Notification{
		UserID:  userID,
		Title:   "Author Request",
		Message: fmt.Sprintf("%s requested to become an author: %s", user.Name, req.Reason),
	}
	if err = s.notificationRepo.Create(ctx, notification); err != nil {
		return UnExpectedError
	}

	html := mailer.NoticeMailHTML("New Author Request",
		fmt.Sprintf("User: %s (%s)", user.Name, user.Email),
		fmt.Sprintf("Reason: %s", req.Reason))
	if err = s.mail.SendToAdmin(ctx, "New author request on Orbit Blog", html); err != nil {
		log.WarnContext(ctx, "作者申请通知邮件发送失败", "userID", userID, "err", err)
	}
	return nil
}

func (s *UserServiceImpl) ContactUs(ctx context.Context, req *dto.ContactUsDTO) error {
	count, err := redis.IncrWithWindow(ctx, consts.ContactLimitKey+req.Email, otpResendWindow)
	if err != nil {
		return UnExpectedError
	}
	if count > contactLimitCount {
		return ErrTooManyRequests
	}

	html := mailer.NoticeMailHTML("Contact Form: "+req.Subject,
		fmt.Sprintf("From: %s (%s)", req.Name, req.Email),
		req.Message)
	if err = s.mail.SendToAdmin(ctx, "Orbit Blog contact: "+req.Subject, html); err != nil {
		log.ErrorContext(ctx, "联系邮件发送失败", "email", req.Email, "err", err)
		return ErrUpstreamMail
	}
	return nil
}

func (s *UserServiceImpl) ListUsers(ctx context.Context) ([]*model.User, error) {
	users, err := s.userRepo.ListUsers(ctx)
	if err != nil {
		return nil, UnExpectedError
	}
	return users, nil
}

func (s *UserServiceImpl) GetUserDetail(ctx context.Context, userID uint64) (*dto.UserDetailDTO, error) {
	user, err := s.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	posts, comments, replies, likes, err := s.userRepo.CountUserContent(ctx, userID)
	if err != nil {
		return nil, UnExpectedError
	}
	return &dto.UserDetailDTO{
		User:     user,
		Posts:    posts,
		Comments: comments,
		Replies:  replies,
		Likes:    likes,
	}, nil
}

// UpdateRole 管理员调整用户角色并邮件告知
func (s *UserServiceImpl) UpdateRole(ctx context.Context, req *dto.UpdateRoleDTO) error {
	user, err := s.GetUserByID(ctx, req.UserID)
	if err != nil {
		return err
	}
	if err = s.userRepo.UpdateRole(ctx, req.UserID, req.Role); err != nil {
		return UnExpectedError
	}

	html := mailer.NoticeMailHTML("Your role has been updated",
		fmt.Sprintf("Hi %s, your Orbit Blog role is now %s.", user.Name, req.Role))
	if err = s.mail.Send(ctx, user.Email, "Your Orbit Blog role was updated", html); err != nil {
		log.WarnContext(ctx, "角色变更邮件发送失败", "userID", req.UserID, "err", err)
	}
	return nil
}

// DeleteUser 删除用户前先级联清理其名下的帖子，避免留下无主内容
func (s *UserServiceImpl) DeleteUser(ctx context.Context, userID uint64) error {
	if _, err := s.GetUserByID(ctx, userID); err != nil {
		return err
	}

	posts, err := s.postRepo.ListByAuthor(ctx, userID)
	if err != nil {
		log.ErrorContext(ctx, "查询用户帖子失败", "userID", userID, "err", err)
		return UnExpectedError
	}
	for _, post := range posts {
		if err = s.postRepo.DeletePost(ctx, post.ID); err != nil {
			log.ErrorContext(ctx, "删除用户帖子失败", "userID", userID, "postID", post.ID, "err", err)
			return UnExpectedError
		}
		destroyImage(ctx, post.FeaturedImageObject)
	}

	if err = s.userRepo.DeleteUser(ctx, userID); err != nil {
		log.ErrorContext(ctx, "删除用户失败", "userID", userID, "err", err)
		return UnExpectedError
	}
	return nil
}
