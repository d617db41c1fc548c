package docs

import "github.com/goliatone/go-docs/internal/runtimeconfig"

type (
	Config           = runtimeconfig.Config
	ContentConfig    = runtimeconfig.ContentConfig
	NavigationConfig = runtimeconfig.NavigationConfig
	LoggingConfig    = runtimeconfig.LoggingConfig
)

const (
	LoggingProviderNoop     = runtimeconfig.LoggingProviderNoop
	LoggingProviderGoLogger = runtimeconfig.LoggingProviderGoLogger
)

func DefaultConfig() Config {
	return runtimeconfig.DefaultConfig()
}
