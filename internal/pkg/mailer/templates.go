package mailer

import (
	"fmt"
	"html/template"
	"strings"
)

// ActivationMailHTML 渲染注册激活验证码邮件
func ActivationMailHTML(name string, otp string) string {
	return fmt.Sprintf(`
<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <h2>Welcome to Orbit Blog, %s!</h2>
  <p>Use the code below to activate your account. It expires in 5 minutes.</p>
  <p style="font-size: 28px; font-weight: bold; letter-spacing: 6px;">%s</p>
  <p>If you did not sign up, you can safely ignore this email.</p>
</div>`, template.HTMLEscapeString(name), template.HTMLEscapeString(otp))
}

// ResetPasswordMailHTML 渲染重置密码邮件
func ResetPasswordMailHTML(name string, resetURL string) string {
	return fmt.Sprintf(`
<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <h2>Password Reset Request</h2>
  <p>Hi %s, click the link below to reset your password. The link expires in 15 minutes.</p>
  <p><a href="%s">%s</a></p>
  <p>If you did not request this, please ignore this email.</p>
</div>`, template.HTMLEscapeString(name), resetURL, resetURL)
}

// NoticeMailHTML 渲染通用通知邮件
func NoticeMailHTML(title string, lines ...string) string {
	var sb strings.Builder
	sb.WriteString(`<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">`)
	sb.WriteString("<h2>" + template.HTMLEscapeString(title) + "</h2>")
	for _, line := range lines {
		sb.WriteString("<p>" + template.HTMLEscapeString(line) + "</p>")
	}
	sb.WriteString("</div>")
	return sb.String()
}
