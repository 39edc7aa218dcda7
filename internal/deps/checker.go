package deps

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/gofrs/flock"
	"golang.org/x/sys/unix"

	"bioconvert/internal/logging"
	"bioconvert/internal/services"
)

const (
	installLockName   = ".install.lock"
	installRetryDelay = 250 * time.Millisecond
)

// Tool describes an external program the converter may invoke.
type Tool struct {
	Name        string
	Command     string
	Description string
	// Install is the argv of the recipe that places Command into the tools
	// directory. An empty recipe means the tool cannot be installed.
	Install []string
}

// Option configures the checker.
type Option func(*Checker)

// WithRunner injects a custom command runner (primarily for tests).
func WithRunner(r services.Runner) Option {
	return func(c *Checker) {
		if r != nil {
			c.runner = r
		}
	}
}

// WithLogger sets the logger used for install progress.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Checker) {
		if logger != nil {
			c.logger = logging.NewComponentLogger(logger, "deps")
		}
	}
}

// WithInstallTimeout bounds each install recipe. Zero disables the bound.
func WithInstallTimeout(d time.Duration) Option {
	return func(c *Checker) {
		c.installTimeout = d
	}
}

// Checker answers whether tools are present and installs them on request.
// Lookups check the managed tools directory before PATH.
type Checker struct {
	toolsDir       string
	tools          map[string]Tool
	runner         services.Runner
	logger         *slog.Logger
	installTimeout time.Duration
}

// NewChecker constructs a Checker for the given tools.
func NewChecker(toolsDir string, tools []Tool, opts ...Option) *Checker {
	c := &Checker{
		toolsDir: strings.TrimSpace(toolsDir),
		tools:    make(map[string]Tool, len(tools)),
		runner:   services.ExecRunner{},
		logger:   logging.NewNop(),
	}
	for _, tool := range tools {
		name := strings.ToLower(strings.TrimSpace(tool.Name))
		if name == "" {
			continue
		}
		if strings.TrimSpace(tool.Command) == "" {
			tool.Command = name
		}
		c.tools[name] = tool
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ToolsDir returns the managed install directory.
func (c *Checker) ToolsDir() string {
	return c.toolsDir
}

// Tools returns the configured tools sorted by name.
func (c *Checker) Tools() []Tool {
	out := make([]Tool, 0, len(c.tools))
	for _, tool := range c.tools {
		out = append(out, tool)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Lookup resolves the executable path for a tool.
func (c *Checker) Lookup(name string) (string, bool) {
	tool, ok := c.tool(name)
	if !ok {
		return resolve(c.toolsDir, strings.TrimSpace(name))
	}
	return resolve(c.toolsDir, tool.Command)
}

// IsPresent reports whether the tool can be located. It has no side effects.
func (c *Checker) IsPresent(name string) bool {
	_, ok := c.Lookup(name)
	return ok
}

// Status reports availability for the named tools, or every configured tool
// when names is empty.
func (c *Checker) Status(names ...string) []Status {
	tools := c.Tools()
	if len(names) > 0 {
		tools = tools[:0:0]
		for _, name := range names {
			tool, ok := c.tool(name)
			if !ok {
				tool = Tool{Name: name, Command: name}
			}
			tools = append(tools, tool)
		}
	}
	reqs := make([]Requirement, 0, len(tools))
	for _, tool := range tools {
		reqs = append(reqs, Requirement{Name: tool.Name, Command: tool.Command, Description: tool.Description, Optional: true})
	}
	statuses := CheckBinaries(c.toolsDir, reqs)
	for i := range statuses {
		statuses[i].Installable = len(tools[i].Install) > 0
	}
	return statuses
}

// Install runs the tool's install recipe with GOBIN pointing at the tools
// directory, then confirms the tool resolves. Concurrent installs are
// serialized through a lock file in the tools directory.
func (c *Checker) Install(ctx context.Context, name string) error {
	tool, ok := c.tool(name)
	if !ok {
		return services.Wrap(services.ErrInstallation, "deps", "install", fmt.Sprintf("tool %q is not configured", name), nil)
	}
	if len(tool.Install) == 0 || strings.TrimSpace(tool.Install[0]) == "" {
		return services.Wrap(services.ErrInstallation, "deps", "install", fmt.Sprintf("no install recipe for %s", tool.Name), nil)
	}
	if c.toolsDir == "" {
		return services.Wrap(services.ErrInstallation, "deps", "install", "tools directory not configured", nil)
	}
	if err := os.MkdirAll(c.toolsDir, 0o755); err != nil {
		return services.Wrap(services.ErrInstallation, "deps", "install", "create tools directory", err)
	}
	if err := unix.Access(c.toolsDir, unix.W_OK|unix.X_OK); err != nil {
		return services.Wrap(services.ErrInstallation, "deps", "install", fmt.Sprintf("tools directory %s is not writable", c.toolsDir), err)
	}

	lock := flock.New(filepath.Join(c.toolsDir, installLockName))
	locked, err := lock.TryLockContext(ctx, installRetryDelay)
	if err != nil {
		return services.Wrap(services.ErrInstallation, "deps", "install", "acquire install lock", err)
	}
	if !locked {
		return services.Wrap(services.ErrInstallation, "deps", "install", "install lock unavailable", nil)
	}
	defer func() {
		_ = lock.Unlock()
	}()

	if c.IsPresent(tool.Name) {
		c.logger.Info("tool already installed", logging.String("tool", tool.Name))
		return nil
	}

	installCtx := ctx
	if c.installTimeout > 0 {
		var cancel context.CancelFunc
		installCtx, cancel = context.WithTimeout(ctx, c.installTimeout)
		defer cancel()
	}

	cmd := services.Command{
		Binary: tool.Install[0],
		Args:   append([]string(nil), tool.Install[1:]...),
		Env:    []string{"GOBIN=" + c.toolsDir},
	}
	start := time.Now()
	c.logger.Info("installing tool",
		logging.String("tool", tool.Name),
		logging.String("command", cmd.String()),
		logging.String("tools_dir", c.toolsDir),
	)
	if _, err := services.Check(installCtx, c.runner, cmd.Binary, cmd); err != nil {
		logging.ErrorWithContext(c.logger, "tool install failed", "tool_install",
			logging.String("tool", tool.Name),
			logging.Error(err),
			logging.String(logging.FieldErrorHint, "install the tool manually or adjust tools.goalign_install"),
		)
		return services.Wrap(services.ErrInstallation, "deps", "install", tool.Name, err)
	}
	if !c.IsPresent(tool.Name) {
		return services.Wrap(services.ErrInstallation, "deps", "install",
			fmt.Sprintf("%s still not found after install (looked in %s and PATH)", tool.Command, c.toolsDir), nil)
	}
	c.logger.Info("tool installed",
		logging.String("tool", tool.Name),
		logging.Duration("duration", time.Since(start)),
	)
	return nil
}

func (c *Checker) tool(name string) (Tool, bool) {
	tool, ok := c.tools[strings.ToLower(strings.TrimSpace(name))]
	return tool, ok
}
