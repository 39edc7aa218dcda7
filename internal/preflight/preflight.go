package preflight

import (
	"context"

	"bioconvert/internal/config"
	"bioconvert/internal/deps"
)

// Result reports the outcome of a single preflight check.
type Result struct {
	Name   string
	Passed bool
	Detail string
}

// RunAll executes the environment checks for the given config. checker may
// be nil, in which case one is built from cfg.
func RunAll(ctx context.Context, cfg *config.Config, checker *deps.Checker) []Result {
	if cfg == nil {
		return nil
	}
	if checker == nil {
		checker = deps.NewCheckerFromConfig(cfg, nil)
	}

	var results []Result

	// Tools directory (always checked, may not exist yet)
	results = append(results, CheckToolsDirectory(cfg.Paths.ToolsDir))

	// Log directory (when configured)
	if cfg.Paths.LogDir != "" {
		results = append(results, CheckDirectoryAccess("Log directory", cfg.Paths.LogDir))
	}

	// goalign installs need the go toolchain when goalign is missing
	if !checker.IsPresent("goalign") {
		results = append(results, CheckInstaller(ctx, cfg.Tools.GoalignInstall))
	}

	return results
}
