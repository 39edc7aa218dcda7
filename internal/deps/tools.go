package deps

import (
	"log/slog"
	"time"

	"bioconvert/internal/config"
)

// ConfiguredTools returns the external tools described by cfg.
func ConfiguredTools(cfg *config.Config) []Tool {
	if cfg == nil {
		defaults := config.Default()
		cfg = &defaults
	}
	return []Tool{
		{
			Name:        "squizz",
			Command:     cfg.Tools.SquizzBinary,
			Description: "sequence/alignment format converter (interleaved PHYLIP)",
		},
		{
			Name:        "goalign",
			Command:     cfg.Tools.GoalignBinary,
			Description: "alignment toolkit used by the goalign method",
			Install:     append([]string(nil), cfg.Tools.GoalignInstall...),
		},
	}
}

// NewCheckerFromConfig builds a Checker for the configured tools directory.
func NewCheckerFromConfig(cfg *config.Config, logger *slog.Logger, opts ...Option) *Checker {
	if cfg == nil {
		defaults := config.Default()
		cfg = &defaults
	}
	base := []Option{
		WithLogger(logger),
		WithInstallTimeout(time.Duration(cfg.Tools.InstallTimeout) * time.Second),
	}
	return NewChecker(cfg.Paths.ToolsDir, ConfiguredTools(cfg), append(base, opts...)...)
}
