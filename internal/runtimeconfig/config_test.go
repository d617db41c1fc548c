package runtimeconfig_test

import (
	"testing"

	"github.com/goliatone/go-docs/internal/runtimeconfig"
)

func TestDefaultConfig(t *testing.T) {
	cfg := runtimeconfig.DefaultConfig()

	if cfg.Content.Dir != "content" {
		t.Fatalf("default content dir mismatch, got %q", cfg.Content.Dir)
	}
	if len(cfg.Content.Extensions) != 1 || cfg.Content.Extensions[0] != ".md" {
		t.Fatalf("default extensions mismatch, got %v", cfg.Content.Extensions)
	}
	if cfg.Navigation.BasePath != "/docs" {
		t.Fatalf("default base path mismatch, got %q", cfg.Navigation.BasePath)
	}
	if cfg.Navigation.IndexPage != "introduction" {
		t.Fatalf("default index page mismatch, got %q", cfg.Navigation.IndexPage)
	}
	if cfg.Logging.Provider != runtimeconfig.LoggingProviderNoop {
		t.Fatalf("default logging provider mismatch, got %q", cfg.Logging.Provider)
	}

	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config must validate, got %v", err)
	}
}

func TestConfigValidate(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(*runtimeconfig.Config)
		wantErr bool
	}{
		{"valid", func(*runtimeconfig.Config) {}, false},
		{"missing content dir", func(c *runtimeconfig.Config) { c.Content.Dir = "" }, true},
		{"blank content dir", func(c *runtimeconfig.Config) { c.Content.Dir = "   " }, true},
		{"relative base path", func(c *runtimeconfig.Config) { c.Navigation.BasePath = "docs" }, true},
		{"empty base path ok", func(c *runtimeconfig.Config) { c.Navigation.BasePath = "" }, false},
		{"unknown logging provider", func(c *runtimeconfig.Config) { c.Logging.Provider = "zap" }, true},
		{"bad logging level", func(c *runtimeconfig.Config) { c.Logging.Level = "loud" }, true},
		{"bad logging format", func(c *runtimeconfig.Config) { c.Logging.Format = "xml" }, true},
		{"gologger provider ok", func(c *runtimeconfig.Config) {
			c.Logging.Provider = runtimeconfig.LoggingProviderGoLogger
			c.Logging.Level = "debug"
			c.Logging.Format = "console"
		}, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := runtimeconfig.DefaultConfig()
			tc.mutate(&cfg)

			err := cfg.Validate()
			if tc.wantErr && err == nil {
				t.Fatal("expected validation error")
			}
			if !tc.wantErr && err != nil {
				t.Fatalf("unexpected validation error: %v", err)
			}
		})
	}
}
