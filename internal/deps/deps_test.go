package deps

import (
	"os"
	"path/filepath"
	"testing"
)

func writeStub(t *testing.T, dir, name string) string {
	t.Helper()
	path := filepath.Join(dir, executableName(name))
	if err := os.WriteFile(path, []byte("#!/bin/sh\nexit 0\n"), 0o755); err != nil {
		t.Fatalf("write stub: %v", err)
	}
	return path
}

func TestCheckBinaries(t *testing.T) {
	binDir := t.TempDir()
	present := writeStub(t, binDir, "present")
	reqs := []Requirement{
		{Name: "Present", Command: present},
		{Name: "Missing", Command: "clearly-not-present-binary"},
		{Name: "Blank", Command: "  "},
	}

	results := CheckBinaries("", reqs)
	if len(results) != len(reqs) {
		t.Fatalf("expected %d results, got %d", len(reqs), len(results))
	}

	if !results[0].Available {
		t.Fatalf("expected first requirement to be available, got %#v", results[0])
	}
	if results[0].Detail != "" {
		t.Fatalf("unexpected detail for available dependency: %s", results[0].Detail)
	}

	if results[1].Available {
		t.Fatalf("expected missing binary to be unavailable")
	}
	if results[1].Detail == "" {
		t.Fatalf("expected detail message for missing binary")
	}
	if results[1].Command != "clearly-not-present-binary" {
		t.Fatalf("unexpected command recorded: %s", results[1].Command)
	}

	if results[2].Available || results[2].Detail != "command not configured" {
		t.Fatalf("unexpected blank command status: %#v", results[2])
	}
}

func TestCheckBinariesPrefersSearchDir(t *testing.T) {
	toolsDir := t.TempDir()
	pathDir := t.TempDir()
	want := writeStub(t, toolsDir, "goalign")
	writeStub(t, pathDir, "goalign")
	t.Setenv("PATH", pathDir)

	results := CheckBinaries(toolsDir, []Requirement{{Name: "goalign", Command: "goalign"}})
	if !results[0].Available {
		t.Fatalf("expected goalign to resolve, got %#v", results[0])
	}
	if results[0].Command != want {
		t.Fatalf("expected tools dir binary %q, got %q", want, results[0].Command)
	}
}

func TestResolveIgnoresNonExecutable(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "squizz")
	if err := os.WriteFile(path, []byte("data"), 0o644); err != nil {
		t.Fatalf("write file: %v", err)
	}
	t.Setenv("PATH", "")
	if _, ok := resolve(dir, "squizz"); ok {
		t.Fatal("expected non-executable file to be ignored")
	}
	if _, ok := resolve(dir, path); ok {
		t.Fatal("expected non-executable explicit path to be ignored")
	}
}
