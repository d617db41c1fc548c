package docs

import (
	"context"
	"fmt"

	"github.com/goliatone/go-docs/document"
	"github.com/goliatone/go-docs/internal/docsource"
	"github.com/goliatone/go-docs/internal/logging"
	"github.com/goliatone/go-docs/internal/logging/gologger"
	"github.com/goliatone/go-docs/internal/runtimeconfig"
	"github.com/goliatone/go-docs/navigation"
	"github.com/goliatone/go-docs/pkg/interfaces"
)

// NavigationService exports the navigation service contract.
type NavigationService = navigation.Service

// DocumentService exports the per-page document loader contract.
type DocumentService = document.Service

// Logger exports the logging contract consumed across the module.
type Logger = interfaces.Logger

// Module is the top level docs runtime facade. It owns no cache and no
// background state: navigation builds and page loads read the content
// directory fresh on every call.
type Module struct {
	cfg       Config
	source    *docsource.Source
	navigator *navigation.Builder
}

// Option overrides module wiring.
type Option func(*moduleDeps)

type moduleDeps struct {
	provider interfaces.LoggerProvider
}

// WithLoggerProvider replaces the logging provider selected by the
// configuration, letting hosts reuse their own logger hierarchy.
func WithLoggerProvider(provider interfaces.LoggerProvider) Option {
	return func(deps *moduleDeps) {
		deps.provider = provider
	}
}

// New validates the configuration and wires the document source and
// navigation builder rooted at the configured content directory.
func New(cfg Config, opts ...Option) (*Module, error) {
	if err := cfg.Validate(); err != nil {
		return nil, wrapConfigError(err)
	}

	deps := &moduleDeps{}
	for _, opt := range opts {
		opt(deps)
	}

	if deps.provider == nil {
		provider, err := newLoggerProvider(cfg.Logging)
		if err != nil {
			return nil, wrapConfigError(err)
		}
		deps.provider = provider
	}

	source, err := docsource.Open(docsource.Config{
		Dir:        cfg.Content.Dir,
		Extensions: cfg.Content.Extensions,
		Logger:     logging.DocumentLogger(deps.provider),
	})
	if err != nil {
		return nil, err
	}

	navigator := navigation.NewBuilder(source,
		navigation.WithLogger(logging.NavigationLogger(deps.provider)))

	return &Module{
		cfg:       cfg,
		source:    source,
		navigator: navigator,
	}, nil
}

// Navigation returns the configured navigation service.
func (m *Module) Navigation() NavigationService {
	return m.navigator
}

// Documents returns the per-page document loader used by route handlers.
func (m *Module) Documents() DocumentService {
	return m.source
}

// BuildNav builds the navigation tree using the configured options.
func (m *Module) BuildNav(ctx context.Context) (navigation.Tree, error) {
	return m.navigator.Build(ctx, m.BuildOptions())
}

// BuildOptions exposes the navigation options derived from the configuration
// so callers can tweak a copy per call.
func (m *Module) BuildOptions() navigation.BuildOptions {
	return navigation.BuildOptions{
		BasePath:     m.cfg.Navigation.BasePath,
		SectionOrder: append([]string(nil), m.cfg.Navigation.SectionOrder...),
		IndexPage:    m.cfg.Navigation.IndexPage,
	}
}

func newLoggerProvider(cfg runtimeconfig.LoggingConfig) (interfaces.LoggerProvider, error) {
	switch cfg.Provider {
	case "", runtimeconfig.LoggingProviderNoop:
		return nil, nil
	case runtimeconfig.LoggingProviderGoLogger:
		return gologger.NewProvider(gologger.Config{
			Level:     cfg.Level,
			Format:    cfg.Format,
			AddSource: cfg.AddSource,
		})
	default:
		return nil, fmt.Errorf("docs: unknown logging provider %q", cfg.Provider)
	}
}
