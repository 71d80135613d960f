package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"

	"webquote/internal/domain/entities"
)

var ErrNotionNotConfigured = errors.New("notion credentials not configured")

type Config struct {
	Server    ServerConfig
	Notion    NotionConfig
	Sender    SenderConfig
	RateLimit RateLimitConfig
}

type ServerConfig struct {
	Port     int    `envconfig:"PORT" default:"8080"`
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`
}

// NotionConfig holds the external store credentials. The two database ids
// point at the invoices (견적서) and items (품목) databases.
type NotionConfig struct {
	APIKey       string `envconfig:"NOTION_API_KEY"`
	InvoicesDBID string `envconfig:"NOTION_INVOICES_DB_ID"`
	ItemsDBID    string `envconfig:"NOTION_ITEMS_DB_ID"`
}

func (n NotionConfig) Validate() error {
	if n.APIKey == "" || n.InvoicesDBID == "" || n.ItemsDBID == "" {
		return ErrNotionNotConfigured
	}
	return nil
}

// SenderConfig is the static issuing-company profile. Defaults mirror the
// placeholder values shown when the deployment is not yet configured.
type SenderConfig struct {
	CompanyName    string `envconfig:"SENDER_COMPANY_NAME" default:"회사명 미설정"`
	Representative string `envconfig:"SENDER_REPRESENTATIVE" default:"대표자명 미설정"`
	BusinessNumber string `envconfig:"SENDER_BUSINESS_NUMBER" default:"000-00-00000"`
	Address        string `envconfig:"SENDER_ADDRESS" default:"주소 미설정"`
	Phone          string `envconfig:"SENDER_PHONE" default:"000-0000-0000"`
	Email          string `envconfig:"SENDER_EMAIL" default:"email@example.com"`
	LogoURL        string `envconfig:"SENDER_LOGO_URL"`
}

// SenderInfo converts the configured profile to the domain shape.
func (s SenderConfig) SenderInfo() entities.SenderInfo {
	return entities.SenderInfo{
		CompanyName:    s.CompanyName,
		Representative: s.Representative,
		BusinessNumber: s.BusinessNumber,
		Address:        s.Address,
		Phone:          s.Phone,
		Email:          s.Email,
		LogoURL:        s.LogoURL,
	}
}

type RateLimitConfig struct {
	Window      time.Duration `envconfig:"RATE_LIMIT_WINDOW" default:"60s"`
	MaxRequests int           `envconfig:"RATE_LIMIT_MAX_REQUESTS" default:"60"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}
