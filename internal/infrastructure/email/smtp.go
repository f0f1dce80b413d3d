// Package email delivers transactional mail over SMTP.
package email

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"gopkg.in/gomail.v2"

	"github.com/artsoul-app/artsoul/internal/shared/logger"
	"github.com/artsoul-app/artsoul/internal/shared/services/markdown"
)

// ErrEmailServiceNotConfigured is returned when no SMTP relay is configured.
var ErrEmailServiceNotConfigured = errors.New("email service is not configured")

type SMTPConfig struct {
	Host        string
	Port        int
	Username    string
	Password    string
	FromAddress string
	FromName    string
	// LinkBaseURL prefixes links in mail bodies, usually the frontend URL.
	LinkBaseURL string
	// ResetValidity is quoted in the reset mail, e.g. "30 minutes".
	ResetValidity string
}

// sender is satisfied by *gomail.Dialer.
type sender interface {
	DialAndSend(m ...*gomail.Message) error
}

type SMTPEmailService struct {
	config   SMTPConfig
	dialer   sender
	markdown markdown.Service
	logger   logger.Interface
}

func NewSMTPEmailService(config SMTPConfig, md markdown.Service, log logger.Interface) *SMTPEmailService {
	return &SMTPEmailService{
		config:   config,
		dialer:   gomail.NewDialer(config.Host, config.Port, config.Username, config.Password),
		markdown: md,
		logger:   log,
	}
}

// message is a rendered mail before it is addressed.
type message struct {
	Subject string
	Plain   string
	HTML    string
}

// PasswordResetURL builds the link the user follows to choose a new password.
func (s *SMTPEmailService) PasswordResetURL(token string) string {
	base := strings.TrimRight(s.config.LinkBaseURL, "/")
	return fmt.Sprintf("%s/reset-password?token=%s", base, url.QueryEscape(token))
}

func (s *SMTPEmailService) passwordResetMessage(name, token string) (*message, error) {
	resetURL := s.PasswordResetURL(token)
	validity := s.config.ResetValidity
	if validity == "" {
		validity = "30 minutes"
	}
	greeting := "Hello"
	if name = strings.TrimSpace(name); name != "" {
		greeting = "Hello " + name
	}

	body := fmt.Sprintf(`## Password reset

%s,

we received a request to reset the password of your ArtSoul account.

[Choose a new password](%s)

Or copy this address into your browser: %s

The link expires in %s. If you did not ask for a reset, ignore this message and your password stays unchanged.
`, greeting, resetURL, resetURL, validity)

	html, err := s.markdown.ToHTMLSanitized(body)
	if err != nil {
		return nil, err
	}
	return &message{
		Subject: "Reset your ArtSoul password",
		Plain:   body,
		HTML:    html,
	}, nil
}

// SendPasswordResetEmail mails the reset link for token to the account owner.
func (s *SMTPEmailService) SendPasswordResetEmail(to, name, token string) error {
	msg, err := s.passwordResetMessage(name, token)
	if err != nil {
		return fmt.Errorf("failed to render password reset email: %w", err)
	}
	return s.send(to, msg)
}

func (s *SMTPEmailService) send(to string, msg *message) error {
	m := gomail.NewMessage()
	m.SetAddressHeader("From", s.config.FromAddress, s.config.FromName)
	m.SetHeader("To", to)
	m.SetHeader("Subject", msg.Subject)
	m.SetBody("text/plain", msg.Plain)
	m.AddAlternative("text/html", msg.HTML)

	if err := s.dialer.DialAndSend(m); err != nil {
		s.logger.Errorw("failed to send email", "subject", msg.Subject, "error", err)
		return fmt.Errorf("failed to send email: %w", err)
	}
	s.logger.Infow("email sent", "subject", msg.Subject)
	return nil
}

// DisabledEmailService stands in when SMTP credentials are missing. Every send
// is logged and reported as ErrEmailServiceNotConfigured.
type DisabledEmailService struct {
	logger logger.Interface
}

func NewDisabledEmailService(log logger.Interface) *DisabledEmailService {
	return &DisabledEmailService{logger: log}
}

func (s *DisabledEmailService) SendPasswordResetEmail(to, name, token string) error {
	s.logger.Warnw("email service not configured, password reset email not sent")
	return ErrEmailServiceNotConfigured
}
