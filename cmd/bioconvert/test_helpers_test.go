package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"bioconvert/internal/config"
	"bioconvert/internal/testsupport"
)

type cliTestEnv struct {
	cfg        *config.Config
	configPath string
	baseDir    string
	workDir    string
}

func setupCLITestEnv(t *testing.T, opts ...testsupport.ConfigOption) *cliTestEnv {
	t.Helper()

	cfg := testsupport.NewConfig(t, opts...)
	base := testsupport.BaseDir(cfg)
	homeDir := filepath.Join(base, "home")
	workDir := filepath.Join(base, "work")
	for _, dir := range []string{homeDir, workDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			t.Fatalf("mkdir %s: %v", dir, err)
		}
	}
	t.Setenv("HOME", homeDir)
	t.Setenv("BIOCONVERT_TOOLS_DIR", "")
	t.Setenv("BIOCONVERT_SQUIZZ", "")
	t.Setenv("BIOCONVERT_GOALIGN", "")

	configPath := filepath.Join(homeDir, ".config", "bioconvert", "config.toml")
	if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		t.Fatalf("mkdir config dir: %v", err)
	}
	writeTestConfig(t, configPath, cfg)

	return &cliTestEnv{
		cfg:        cfg,
		configPath: configPath,
		baseDir:    base,
		workDir:    workDir,
	}
}

func runCLI(t *testing.T, args []string, configPath string) (string, string, error) {
	t.Helper()
	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	flags := []string{"--log-level", "error"}
	if configPath != "" {
		flags = append(flags, "--config", configPath)
	}
	cmd.SetArgs(append(flags, args...))
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func writeTestConfig(t *testing.T, path string, cfg *config.Config) {
	t.Helper()
	install := make([]string, 0, len(cfg.Tools.GoalignInstall))
	for _, arg := range cfg.Tools.GoalignInstall {
		install = append(install, fmt.Sprintf("%q", arg))
	}
	content := fmt.Sprintf(
		"[paths]\ntools_dir = %q\nlog_dir = %q\n\n"+
			"[conversion]\ndefault_method = %q\nalphabet = %q\nforce = %t\n\n"+
			"[tools]\nsquizz_binary = %q\ngoalign_binary = %q\ngoalign_install = [%s]\ninstall_timeout = %d\n",
		cfg.Paths.ToolsDir,
		cfg.Paths.LogDir,
		cfg.Conversion.DefaultMethod,
		cfg.Conversion.Alphabet,
		cfg.Conversion.Force,
		cfg.Tools.SquizzBinary,
		cfg.Tools.GoalignBinary,
		strings.Join(install, ", "),
		cfg.Tools.InstallTimeout,
	)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
}

func requireContains(t *testing.T, output, substr string) {
	t.Helper()
	if !strings.Contains(output, substr) {
		t.Fatalf("expected %q to contain %q", output, substr)
	}
}
