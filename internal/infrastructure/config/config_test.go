package config

import (
	"errors"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Server.Port != 8080 {
		t.Errorf("expected default port 8080, got %d", cfg.Server.Port)
	}
	if cfg.RateLimit.Window != time.Minute {
		t.Errorf("expected default window 60s, got %v", cfg.RateLimit.Window)
	}
	if cfg.RateLimit.MaxRequests != 60 {
		t.Errorf("expected default cap 60, got %d", cfg.RateLimit.MaxRequests)
	}
	if cfg.Sender.CompanyName == "" {
		t.Error("expected placeholder sender company name")
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("RATE_LIMIT_MAX_REQUESTS", "10")
	t.Setenv("SENDER_COMPANY_NAME", "주식회사 테스트")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Server.Port != 9090 {
		t.Errorf("expected port 9090, got %d", cfg.Server.Port)
	}
	if cfg.RateLimit.MaxRequests != 10 {
		t.Errorf("expected cap 10, got %d", cfg.RateLimit.MaxRequests)
	}
	if cfg.Sender.CompanyName != "주식회사 테스트" {
		t.Errorf("unexpected sender name %q", cfg.Sender.CompanyName)
	}
}

func TestNotionConfigValidate(t *testing.T) {
	full := NotionConfig{APIKey: "secret", InvoicesDBID: "inv-db", ItemsDBID: "item-db"}
	if err := full.Validate(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}

	cases := []struct {
		name string
		cfg  NotionConfig
	}{
		{"missing api key", NotionConfig{InvoicesDBID: "inv-db", ItemsDBID: "item-db"}},
		{"missing invoices db", NotionConfig{APIKey: "secret", ItemsDBID: "item-db"}},
		{"missing items db", NotionConfig{APIKey: "secret", InvoicesDBID: "inv-db"}},
		{"empty", NotionConfig{}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if err := tc.cfg.Validate(); !errors.Is(err, ErrNotionNotConfigured) {
				t.Errorf("expected ErrNotionNotConfigured, got %v", err)
			}
		})
	}
}

func TestSenderInfo(t *testing.T) {
	sender := SenderConfig{
		CompanyName:    "주식회사 테스트",
		Representative: "홍길동",
		BusinessNumber: "123-45-67890",
		Email:          "quote@example.com",
		LogoURL:        "https://example.com/logo.png",
	}

	info := sender.SenderInfo()
	if info.CompanyName != sender.CompanyName || info.Representative != sender.Representative {
		t.Errorf("unexpected info %+v", info)
	}
	if info.LogoURL != sender.LogoURL {
		t.Errorf("unexpected logo %q", info.LogoURL)
	}
}
