// Package email SMTP 邮件发送
package email

import (
	"crypto/tls"
	"fmt"
	"net/smtp"
	"sort"
	"strings"
)

// Config 邮件服务配置
type Config struct {
	Host     string `koanf:"host"`     // SMTP 服务器地址，如 smtp.gmail.com
	Port     int    `koanf:"port"`     // SMTP 端口，通常 587 (STARTTLS) 或 25
	Username string `koanf:"username"` // 登录账号
	Password string `koanf:"password"` // 密码或授权码
	From     string `koanf:"from"`     // 默认发件人，如 "NewsBangla24 <noreply@newsbangla24.com>"
	UseTLS   bool   `koanf:"tls"`      // 是否使用 STARTTLS
}

// Enabled 未配置 host 时视为关闭邮件功能
func (c Config) Enabled() bool {
	return c.Host != ""
}

// Message 邮件消息
type Message struct {
	From        string   // 发件人，为空时使用 Config.From
	To          []string // 收件人列表
	Cc          []string // 抄送列表
	Bcc         []string // 密送列表
	Subject     string   // 邮件主题
	Body        string   // 邮件正文（纯文本或 HTML）
	ContentType string   // 默认 "text/plain; charset=UTF-8"
}

// Sender 发信接口，业务层只依赖这个接口
type Sender interface {
	Send(msg *Message) error
}

// Client 邮件客户端
type Client struct {
	config *Config
}

// NewClient 创建邮件客户端
func NewClient(config *Config) *Client {
	if config.Port == 0 {
		config.Port = 587
	}
	return &Client{config: config}
}

// Send 发送邮件
func (c *Client) Send(msg *Message) error {
	if msg.From == "" {
		msg.From = c.config.From
	}
	if msg.From == "" {
		return fmt.Errorf("sender is empty")
	}
	if len(msg.To) == 0 {
		return fmt.Errorf("recipient list is empty")
	}
	if msg.Subject == "" {
		return fmt.Errorf("subject is empty")
	}

	raw := buildMessage(msg)

	recipients := append([]string{}, msg.To...)
	recipients = append(recipients, msg.Cc...)
	recipients = append(recipients, msg.Bcc...)

	auth := smtp.PlainAuth("", c.config.Username, c.config.Password, c.config.Host)
	addr := fmt.Sprintf("%s:%d", c.config.Host, c.config.Port)

	if c.config.UseTLS || c.config.Port == 587 {
		return c.sendWithTLS(addr, auth, envelopeAddress(msg.From), recipients, raw)
	}
	return smtp.SendMail(addr, auth, envelopeAddress(msg.From), recipients, raw)
}

// buildMessage 组装 RFC 5322 邮件内容，header 顺序固定便于测试
func buildMessage(msg *Message) []byte {
	contentType := msg.ContentType
	if contentType == "" {
		contentType = "text/plain; charset=UTF-8"
	}

	headers := map[string]string{
		"From":         msg.From,
		"To":           strings.Join(msg.To, ", "),
		"Subject":      msg.Subject,
		"MIME-Version": "1.0",
		"Content-Type": contentType,
	}
	if len(msg.Cc) > 0 {
		headers["Cc"] = strings.Join(msg.Cc, ", ")
	}

	keys := make([]string, 0, len(headers))
	for k := range headers {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	for _, k := range keys {
		fmt.Fprintf(&b, "%s: %s\r\n", k, headers[k])
	}
	b.WriteString("\r\n")
	b.WriteString(msg.Body)
	return []byte(b.String())
}

// envelopeAddress 从 "Name <addr>" 中取出 addr
func envelopeAddress(from string) string {
	if i := strings.LastIndex(from, "<"); i >= 0 {
		if j := strings.LastIndex(from, ">"); j > i {
			return from[i+1 : j]
		}
	}
	return from
}

// sendWithTLS 使用 STARTTLS 发送邮件
func (c *Client) sendWithTLS(addr string, auth smtp.Auth, from string, to []string, msg []byte) error {
	client, err := smtp.Dial(addr)
	if err != nil {
		return fmt.Errorf("dial smtp: %w", err)
	}
	defer client.Close()

	if err = client.StartTLS(&tls.Config{ServerName: c.config.Host}); err != nil {
		return fmt.Errorf("starttls: %w", err)
	}
	if c.config.Username != "" {
		if err = client.Auth(auth); err != nil {
			return fmt.Errorf("smtp auth: %w", err)
		}
	}
	if err = client.Mail(from); err != nil {
		return fmt.Errorf("smtp mail from: %w", err)
	}
	for _, recipient := range to {
		if err = client.Rcpt(recipient); err != nil {
			return fmt.Errorf("smtp rcpt %s: %w", recipient, err)
		}
	}

	w, err := client.Data()
	if err != nil {
		return fmt.Errorf("smtp data: %w", err)
	}
	if _, err = w.Write(msg); err != nil {
		return fmt.Errorf("write body: %w", err)
	}
	if err = w.Close(); err != nil {
		return fmt.Errorf("close body: %w", err)
	}
	return client.Quit()
}

// SendHTML 发送 HTML 邮件（便捷方法）
func (c *Client) SendHTML(to string, subject string, htmlBody string) error {
	return c.Send(&Message{
		To:          []string{to},
		Subject:     subject,
		Body:        htmlBody,
		ContentType: "text/html; charset=UTF-8",
	})
}

// NoopSender 未配置 SMTP 时使用，直接丢弃
type NoopSender struct{}

func (NoopSender) Send(*Message) error { return nil }
