package consts

const (
	ActivationKey     = "user:activation:"
	OtpResendLimitKey = "user:activation:resend:"
	ContactLimitKey   = "contact:limit:"
	AuthorRequestKey  = "user:author:request:"
)
