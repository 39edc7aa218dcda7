package services

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// Command describes a single child process invocation.
type Command struct {
	Binary string
	Args   []string
	// Env entries are appended to the parent environment.
	Env []string
	// StdoutPath, when set, receives the process stdout instead of the
	// in-memory buffer. The file is created or truncated before the start.
	StdoutPath string
}

// String renders the invocation for logs.
func (c Command) String() string {
	parts := make([]string, 0, len(c.Args)+3)
	parts = append(parts, c.Binary)
	parts = append(parts, c.Args...)
	if c.StdoutPath != "" {
		parts = append(parts, ">", c.StdoutPath)
	}
	return strings.Join(parts, " ")
}

// Result captures the outcome of a finished process.
type Result struct {
	ExitCode int
	Stdout   string
	Stderr   string
}

// Runner abstracts command execution for testability.
type Runner interface {
	Run(ctx context.Context, cmd Command) (Result, error)
}

// RunnerFunc adapts a function to the Runner interface.
type RunnerFunc func(ctx context.Context, cmd Command) (Result, error)

// Run calls f.
func (f RunnerFunc) Run(ctx context.Context, cmd Command) (Result, error) {
	return f(ctx, cmd)
}

// ExecRunner runs commands with os/exec. A non-zero exit is reported through
// Result.ExitCode with a nil error; err is reserved for failures to start or
// wait on the process.
type ExecRunner struct{}

func (ExecRunner) Run(ctx context.Context, command Command) (Result, error) {
	var result Result
	if strings.TrimSpace(command.Binary) == "" {
		return result, errors.New("command binary required")
	}

	cmd := exec.CommandContext(ctx, command.Binary, command.Args...) //nolint:gosec
	if len(command.Env) > 0 {
		cmd.Env = append(os.Environ(), command.Env...)
	}

	var stdout, stderr bytes.Buffer
	cmd.Stderr = &stderr
	cmd.Stdout = &stdout
	if command.StdoutPath != "" {
		out, err := os.Create(command.StdoutPath)
		if err != nil {
			return result, Wrap(ErrIO, command.Binary, "redirect stdout", command.StdoutPath, err)
		}
		defer out.Close()
		cmd.Stdout = out
	}

	err := cmd.Run()
	result.Stdout = stdout.String()
	result.Stderr = stderr.String()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			result.ExitCode = exitErr.ExitCode()
			if ctxErr := ctx.Err(); ctxErr != nil {
				return result, ctxErr
			}
			return result, nil
		}
		return result, fmt.Errorf("run %s: %w", command.Binary, err)
	}
	return result, nil
}

// Check runs cmd through r and converts a non-zero exit into a *ToolError.
func Check(ctx context.Context, r Runner, tool string, cmd Command) (Result, error) {
	if r == nil {
		r = ExecRunner{}
	}
	result, err := r.Run(ctx, cmd)
	if err != nil {
		return result, err
	}
	if result.ExitCode != 0 {
		return result, &ToolError{Tool: tool, ExitCode: result.ExitCode, Stderr: result.Stderr}
	}
	return result, nil
}
