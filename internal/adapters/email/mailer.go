package email

import (
	"context"
	"crypto/tls"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"

	"explorewithme/internal/domain"
)

// Supported values of MailerConfig.Provider.
const (
	ProviderSES  = "ses"
	ProviderNoop = "noop"
)

const (
	sendTimeout = 10 * time.Second
	charset     = "UTF-8"
)

// SESConfig holds configuration for AWS SES.
type SESConfig struct {
	Region             string
	AccessKeyID        string
	SecretAccessKey    string
	InsecureSkipVerify bool
}

// MailerConfig holds configuration for creating a mailer.
type MailerConfig struct {
	Provider    string
	FromAddress string
	FromName    string
	SES         SESConfig
}

// NewMailer picks the mailer for config.Provider. An empty or unknown
// provider falls back to a mailer that only logs.
func NewMailer(config MailerConfig, logger *slog.Logger) (domain.Mailer, error) {
	switch config.Provider {
	case ProviderSES:
		if config.FromAddress == "" {
			return nil, fmt.Errorf("ses mailer: from address is required")
		}
		if config.SES.InsecureSkipVerify {
			logger.Warn("TLS certificate verification is disabled for SES, use only in development")
		}
		return &sesMailer{
			client:      newSESClient(config.SES),
			fromAddress: config.FromAddress,
			fromName:    config.FromName,
			logger:      logger,
		}, nil
	case ProviderNoop, "":
	default:
		logger.Warn("unknown email provider, notifications are logged only", "provider", config.Provider)
	}
	return &noopMailer{logger: logger}, nil
}

func newSESClient(cfg SESConfig) *ses.Client {
	transport := http.DefaultTransport.(*http.Transport).Clone()
	transport.TLSClientConfig = &tls.Config{
		InsecureSkipVerify: cfg.InsecureSkipVerify, //nolint:gosec // opt-in for local SES emulators
		MinVersion:         tls.VersionTLS12,
	}
	return ses.NewFromConfig(aws.Config{
		Region: cfg.Region,
		Credentials: aws.NewCredentialsCache(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		),
		HTTPClient: &http.Client{Transport: transport},
	})
}

type sesMailer struct {
	client      *ses.Client
	fromAddress string
	fromName    string
	logger      *slog.Logger
}

func content(s string) *types.Content {
	return &types.Content{Data: aws.String(s), Charset: aws.String(charset)}
}

// buildInput assembles the SES request; empty bodies are omitted.
func (s *sesMailer) buildInput(to, subject, html, text string) *ses.SendEmailInput {
	source := s.fromAddress
	if s.fromName != "" {
		source = fmt.Sprintf("%s <%s>", s.fromName, s.fromAddress)
	}
	body := &types.Body{}
	if html != "" {
		body.Html = content(html)
	}
	if text != "" {
		body.Text = content(text)
	}
	return &ses.SendEmailInput{
		Source:      aws.String(source),
		Destination: &types.Destination{ToAddresses: []string{to}},
		Message:     &types.Message{Subject: content(subject), Body: body},
	}
}

func (s *sesMailer) Send(to, subject, html, text string) error {
	ctx, cancel := context.WithTimeout(context.Background(), sendTimeout)
	defer cancel()

	out, err := s.client.SendEmail(ctx, s.buildInput(to, subject, html, text))
	if err != nil {
		return fmt.Errorf("send email to %s via SES: %w", to, err)
	}
	s.logger.Debug("email sent", "provider", ProviderSES, "message_id", aws.ToString(out.MessageId))
	return nil
}

// noopMailer logs instead of sending.
type noopMailer struct {
	logger *slog.Logger
}

func (n *noopMailer) Send(to, subject, html, text string) error {
	n.logger.Debug("email not sent, no provider configured", "to", to, "subject", subject)
	return nil
}
