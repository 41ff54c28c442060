package email

import (
	"bytes"
	"fmt"
	"html/template"
)

// Template 邮件模板
type Template struct {
	tmpl *template.Template
}

// NewTemplate 从 HTML 字符串创建模板
func NewTemplate(htmlContent string) (*Template, error) {
	tmpl, err := template.New("email").Parse(htmlContent)
	if err != nil {
		return nil, fmt.Errorf("parse email template: %w", err)
	}
	return &Template{tmpl: tmpl}, nil
}

// MustTemplate 用于包级预定义模板
func MustTemplate(htmlContent string) *Template {
	t, err := NewTemplate(htmlContent)
	if err != nil {
		panic(err)
	}
	return t
}

// Render 渲染模板
func (t *Template) Render(data any) (string, error) {
	var buf bytes.Buffer
	if err := t.tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("render email template: %w", err)
	}
	return buf.String(), nil
}

// RenderMessage 渲染模板并生成 HTML 邮件
func RenderMessage(to, subject string, tmpl *Template, data any) (*Message, error) {
	body, err := tmpl.Render(data)
	if err != nil {
		return nil, err
	}
	return &Message{
		To:          []string{to},
		Subject:     subject,
		Body:        body,
		ContentType: "text/html; charset=UTF-8",
	}, nil
}

// ReviewResultData 审核结果邮件参数
type ReviewResultData struct {
	Name     string
	Title    string
	Approved bool
	Note     string
	Link     string
}

// ReviewResultTemplate 稿件审核结果通知
var ReviewResultTemplate = MustTemplate(`
<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <style>
        body { font-family: 'Noto Sans Bengali', Arial, sans-serif; line-height: 1.6; color: #333; }
        .container { max-width: 600px; margin: 0 auto; padding: 20px; }
        .header { background-color: #b91c1c; color: white; padding: 16px; text-align: center; }
        .content { padding: 20px; background-color: #f9f9f9; }
        .note { border-left: 4px solid #b91c1c; padding-left: 12px; color: #555; }
        .footer { text-align: center; margin-top: 20px; color: #999; font-size: 12px; }
    </style>
</head>
<body>
    <div class="container">
        <div class="header"><h2>NewsBangla24</h2></div>
        <div class="content">
            <p>{{.Name}},</p>
            {{if .Approved}}
            <p>Your story <strong>{{.Title}}</strong> has been approved and published.</p>
            <p><a href="{{.Link}}">{{.Link}}</a></p>
            {{else}}
            <p>Your story <strong>{{.Title}}</strong> was sent back by the desk.</p>
            {{end}}
            {{if .Note}}<p class="note">{{.Note}}</p>{{end}}
        </div>
        <div class="footer"><p>This message was sent automatically, please do not reply.</p></div>
    </div>
</body>
</html>
`)

// WelcomeData 新账号邮件参数
type WelcomeData struct {
	Name  string
	Email string
	Role  string
}

// WelcomeTemplate 管理员创建账号后发送
var WelcomeTemplate = MustTemplate(`
<!DOCTYPE html>
<html>
<head><meta charset="UTF-8"></head>
<body style="font-family: Arial, sans-serif; color: #333;">
    <h2>স্বাগতম / Welcome, {{.Name}}</h2>
    <p>An account with the role <strong>{{.Role}}</strong> has been created for {{.Email}}.</p>
    <p>Please sign in and change your password.</p>
</body>
</html>
`)
