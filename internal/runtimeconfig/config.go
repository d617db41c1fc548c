package runtimeconfig

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Config aggregates the settings the docs module consumes. The route-setup
// layer owns loading these from wherever it keeps configuration; this package
// only validates and defaults plain values.
type Config struct {
	Content    ContentConfig
	Navigation NavigationConfig
	Logging    LoggingConfig
}

// ContentConfig locates the markdown content on disk.
type ContentConfig struct {
	// Dir is the directory holding markdown files. Must exist at wiring time.
	Dir string
	// Extensions lists recognized markdown suffixes. Defaults to [".md"].
	Extensions []string
}

// NavigationConfig shapes the generated navigation tree.
type NavigationConfig struct {
	// BasePath prefixes every generated href. Defaults to "/docs".
	BasePath string
	// IndexPage names the extension-less stem of the landing page, which
	// collapses onto BasePath itself. Defaults to "introduction".
	IndexPage string
	// SectionOrder lists section titles in display precedence. Unlisted
	// sections follow in the order the walk first encounters them.
	SectionOrder []string
}

// LoggingConfig selects and tunes the logging provider.
type LoggingConfig struct {
	// Provider is "noop" (default) or "gologger".
	Provider string
	// Level is one of trace, debug, info, warn, error, fatal.
	Level string
	// Format is one of json, console, pretty.
	Format string
	// AddSource includes caller locations in log entries.
	AddSource bool
}

const (
	LoggingProviderNoop     = "noop"
	LoggingProviderGoLogger = "gologger"
)

// DefaultConfig mirrors the conventional docs layout: a "content" directory,
// hrefs under "/docs", and an "introduction" landing page.
func DefaultConfig() Config {
	return Config{
		Content: ContentConfig{
			Dir:        "content",
			Extensions: []string{".md"},
		},
		Navigation: NavigationConfig{
			BasePath:  "/docs",
			IndexPage: "introduction",
		},
		Logging: LoggingConfig{
			Provider: LoggingProviderNoop,
		},
	}
}

// Validate checks the configuration before any service is wired.
func (c Config) Validate() error {
	if err := c.Content.Validate(); err != nil {
		return err
	}
	if err := c.Navigation.Validate(); err != nil {
		return err
	}
	return c.Logging.Validate()
}

// Validate ensures the content directory is configured.
func (c ContentConfig) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Dir, validation.Required, validation.By(func(value any) error {
			if strings.TrimSpace(value.(string)) == "" {
				return validation.NewError("docs.config.content_dir_required", "content directory is required")
			}
			return nil
		})),
	)
}

// Validate ensures navigation paths are well formed.
func (c NavigationConfig) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.BasePath, validation.By(func(value any) error {
			base := strings.TrimSpace(value.(string))
			if base != "" && !strings.HasPrefix(base, "/") {
				return validation.NewError("docs.config.base_path_invalid", "base path must start with /")
			}
			return nil
		})),
	)
}

// Validate restricts logging settings to the supported providers and levels.
func (c LoggingConfig) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Provider, validation.In("", LoggingProviderNoop, LoggingProviderGoLogger).
			Error("logging provider is unknown")),
		validation.Field(&c.Level, validation.In("", "trace", "debug", "info", "warn", "warning", "error", "fatal").
			Error("logging level is invalid")),
		validation.Field(&c.Format, validation.In("", "json", "console", "pretty").
			Error("logging format is invalid")),
	)
}
