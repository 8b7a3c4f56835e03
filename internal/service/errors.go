package service

import (
	"errors"
	"net/http"
)

var (
	ErrParamInvalid         = errors.New("Please enter all fields")
	ErrUnauthenticated      = errors.New("Please login to access the resource")
	ErrTokenInvalid         = errors.New("Token is invalid or has expired")
	ErrForbidden            = errors.New("You are not authorized to access this resource")
	ErrEmailExists          = errors.New("Email already exists")
	ErrInvalidCredentials   = errors.New("Invalid email or password")
	ErrUserNotFound         = errors.New("User not found")
	ErrActivationExpired    = errors.New("Verification session expired. Please sign up again")
	ErrActivationCode       = errors.New("Invalid or expired activation code")
	ErrTooManyRequests      = errors.New("Too many attempts, please try again after 15 minutes")
	ErrResetTokenInvalid    = errors.New("Reset password token is invalid or has expired")
	ErrPasswordMismatch     = errors.New("Password does not match")
	ErrOldPasswordIncorrect = errors.New("Old password is incorrect")
	ErrSocialAccount        = errors.New("This account uses social login")
	ErrPostNotFound         = errors.New("Post not found")
	ErrPostNotPublished     = errors.New("Post is not published yet")
	ErrNotPostAuthor        = errors.New("You are not an author of this post")
	ErrCommentNotFound      = errors.New("Comment not found")
	ErrCommentEmpty         = errors.New("Comment is empty")
	ErrReplyNotFound        = errors.New("Reply not found")
	ErrNotificationNotFound = errors.New("Notification not found")
	ErrSettingsNotFound     = errors.New("Settings not found")
	ErrAuthorRequestPending = errors.New("Already requested. Please wait 24 hours")
	ErrFileNotSupported     = errors.New("Please upload an image file")
	ErrUpstreamMail         = errors.New("Failed to send email")
	ErrUpstreamMedia        = errors.New("An error occurred while uploading the image")
	UnExpectedError         = errors.New("Internal Server Error")
)

// ErrorMap 业务错误到 HTTP 状态码的映射
var ErrorMap = map[error]int{
	ErrParamInvalid:         http.StatusBadRequest,
	ErrUnauthenticated:      http.StatusUnauthorized,
	ErrTokenInvalid:         http.StatusUnauthorized,
	ErrForbidden:            http.StatusForbidden,
	ErrEmailExists:          http.StatusBadRequest,
	ErrInvalidCredentials:   http.StatusUnauthorized,
	ErrUserNotFound:         http.StatusNotFound,
	ErrActivationExpired:    http.StatusBadRequest,
	ErrActivationCode:       http.StatusBadRequest,
	ErrTooManyRequests:      http.StatusTooManyRequests,
	ErrResetTokenInvalid:    http.StatusBadRequest,
	ErrPasswordMismatch:     http.StatusBadRequest,
	ErrOldPasswordIncorrect: http.StatusBadRequest,
	ErrSocialAccount:        http.StatusBadRequest,
	ErrPostNotFound:         http.StatusNotFound,
	ErrPostNotPublished:     http.StatusNotFound,
	ErrNotPostAuthor:        http.StatusForbidden,
	ErrCommentNotFound:      http.StatusNotFound,
	ErrCommentEmpty:         http.StatusBadRequest,
	ErrReplyNotFound:        http.StatusNotFound,
	ErrNotificationNotFound: http.StatusNotFound,
	ErrSettingsNotFound:     http.StatusNotFound,
	ErrAuthorRequestPending: http.StatusBadRequest,
	ErrFileNotSupported:     http.StatusBadRequest,
	ErrUpstreamMail:         http.StatusBadGateway,
	ErrUpstreamMedia:        http.StatusBadGateway,
	UnExpectedError:         http.StatusInternalServerError,
}
