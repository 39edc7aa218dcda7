package services_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"bioconvert/internal/services"
)

func writeScript(t *testing.T, body string) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("shell scripts unsupported on windows")
	}
	path := filepath.Join(t.TempDir(), "tool")
	if err := os.WriteFile(path, []byte("#!/bin/sh\n"+body+"\n"), 0o755); err != nil {
		t.Fatalf("write stub: %v", err)
	}
	return path
}

func TestExecRunnerCapturesExitCodeAndStderr(t *testing.T) {
	script := writeScript(t, "echo out; echo bad input >&2; exit 4")
	result, err := services.ExecRunner{}.Run(context.Background(), services.Command{Binary: script})
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if result.ExitCode != 4 {
		t.Fatalf("expected exit code 4, got %d", result.ExitCode)
	}
	if strings.TrimSpace(result.Stdout) != "out" {
		t.Fatalf("unexpected stdout %q", result.Stdout)
	}
	if strings.TrimSpace(result.Stderr) != "bad input" {
		t.Fatalf("unexpected stderr %q", result.Stderr)
	}
}

func TestExecRunnerRedirectsStdout(t *testing.T) {
	script := writeScript(t, `echo "$1"`)
	target := filepath.Join(t.TempDir(), "out.txt")
	result, err := services.ExecRunner{}.Run(context.Background(), services.Command{
		Binary:     script,
		Args:       []string{"file with spaces;rm -rf"},
		StdoutPath: target,
	})
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if result.ExitCode != 0 || result.Stdout != "" {
		t.Fatalf("unexpected result %#v", result)
	}
	data, err := os.ReadFile(target)
	if err != nil {
		t.Fatalf("read redirected output: %v", err)
	}
	if strings.TrimSpace(string(data)) != "file with spaces;rm -rf" {
		t.Fatalf("argument was not passed verbatim: %q", data)
	}
}

func TestExecRunnerMissingBinary(t *testing.T) {
	_, err := services.ExecRunner{}.Run(context.Background(), services.Command{Binary: filepath.Join(t.TempDir(), "missing")})
	if err == nil {
		t.Fatal("expected error for missing binary")
	}
}

func TestCheckConvertsNonZeroExit(t *testing.T) {
	runner := services.RunnerFunc(func(ctx context.Context, cmd services.Command) (services.Result, error) {
		return services.Result{ExitCode: 2, Stderr: "boom"}, nil
	})
	_, err := services.Check(context.Background(), runner, "goalign", services.Command{Binary: "goalign"})
	var toolErr *services.ToolError
	if !errors.As(err, &toolErr) {
		t.Fatalf("expected ToolError, got %v", err)
	}
	if toolErr.Tool != "goalign" || toolErr.ExitCode != 2 || toolErr.Stderr != "boom" {
		t.Fatalf("unexpected tool error %#v", toolErr)
	}
}

func TestCommandString(t *testing.T) {
	cmd := services.Command{Binary: "squizz", Args: []string{"-c", "PHYLIPI", "in.fa"}, StdoutPath: "out.phy"}
	if got := cmd.String(); got != "squizz -c PHYLIPI in.fa > out.phy" {
		t.Fatalf("unexpected rendering %q", got)
	}
}
