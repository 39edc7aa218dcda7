package main

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"bioconvert/internal/services"
	"bioconvert/internal/testsupport"
)

func TestMethodsJSON(t *testing.T) {
	env := setupCLITestEnv(t, testsupport.WithStubbedBinaries("squizz"))
	out, _, err := runCLI(t, []string{"methods", "--json"}, env.configPath)
	if err != nil {
		t.Fatalf("methods --json: %v", err)
	}
	var views []struct {
		Name      string `json:"name"`
		Default   bool   `json:"default"`
		Available bool   `json:"available"`
	}
	if err := json.Unmarshal([]byte(out), &views); err != nil {
		t.Fatalf("decode methods: %v\n%s", err, out)
	}
	if len(views) != 3 {
		t.Fatalf("expected three methods, got %d", len(views))
	}
	byName := map[string]int{}
	for i, v := range views {
		byName[v.Name] = i
	}
	biogo := views[byName["biogo"]]
	if !biogo.Default || !biogo.Available {
		t.Fatalf("expected biogo to be the available default: %+v", biogo)
	}
	if !views[byName["squizz"]].Available {
		t.Fatalf("expected stubbed squizz to be available: %+v", views)
	}
}

func TestMethodsTable(t *testing.T) {
	env := setupCLITestEnv(t, testsupport.WithDefaultMethod("squizz"))
	out, _, err := runCLI(t, []string{"methods"}, env.configPath)
	if err != nil {
		t.Fatalf("methods: %v", err)
	}
	requireContains(t, out, "squizz *")
	requireContains(t, out, "sequential")
}

func TestToolsStatus(t *testing.T) {
	env := setupCLITestEnv(t, testsupport.WithStubbedBinaries("squizz"))
	out, _, err := runCLI(t, []string{"tools", "status"}, env.configPath)
	if err != nil {
		t.Fatalf("tools status: %v", err)
	}
	requireContains(t, out, "squizz")
	requireContains(t, out, "goalign")
	requireContains(t, out, "== Checks ==")
	requireContains(t, out, "Tools directory")
}

func TestRenderCheckLine(t *testing.T) {
	if got := renderCheckLine("Tools directory", true, "/opt/tools", false); got != "  Tools directory:     [OK] /opt/tools" {
		t.Fatalf("unexpected passed line %q", got)
	}
	if got := renderCheckLine("Installer", false, "", false); got != "  Installer:           [WARN]" {
		t.Fatalf("unexpected failed line %q", got)
	}
	colored := renderCheckLine("Installer", false, "", true)
	if !strings.HasPrefix(colored, ansiYellow) || !strings.HasSuffix(colored, ansiReset) {
		t.Fatalf("expected yellow line, got %q", colored)
	}
}

func TestToolsInstallWithoutRecipe(t *testing.T) {
	env := setupCLITestEnv(t)
	_, _, err := runCLI(t, []string{"tools", "install", "squizz"}, env.configPath)
	if !errors.Is(err, services.ErrInstallation) {
		t.Fatalf("expected installation error, got %v", err)
	}
}

func TestConfigInitAndValidate(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, []string{"config", "validate"}, env.configPath)
	if err != nil {
		t.Fatalf("config validate: %v", err)
	}
	requireContains(t, out, "Configuration valid")
	requireContains(t, out, env.configPath)

	target := filepath.Join(t.TempDir(), "config.toml")
	out, _, err = runCLI(t, []string{"config", "init", "--path", target}, "")
	if err != nil {
		t.Fatalf("config init: %v", err)
	}
	requireContains(t, out, "Wrote sample configuration")
	if _, err := os.Stat(target); err != nil {
		t.Fatalf("expected config file at %s: %v", target, err)
	}

	if _, _, err := runCLI(t, []string{"config", "init", "--path", target}, ""); err == nil {
		t.Fatal("expected init to refuse overwriting without --overwrite")
	}

	out, _, err = runCLI(t, []string{"config", "validate"}, target)
	if err != nil {
		t.Fatalf("validate sample: %v", err)
	}
	requireContains(t, out, "Default method: biogo")
}
