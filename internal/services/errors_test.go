package services_test

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"bioconvert/internal/services"
)

func TestWrapIncludesContext(t *testing.T) {
	base := errors.New("boom")
	err := services.Wrap(services.ErrParse, "biogo", "read fasta", "sample.fa", base)
	if err == nil {
		t.Fatal("expected error")
	}
	if !errors.Is(err, services.ErrParse) {
		t.Fatalf("expected marker to be retained, got %v", err)
	}
	if !errors.Is(err, base) {
		t.Fatalf("expected wrapped error to contain base error, got %v", err)
	}
	msg := err.Error()
	for _, fragment := range []string{"biogo", "read fasta", "sample.fa"} {
		if !strings.Contains(msg, fragment) {
			t.Fatalf("expected %q in error string %q", fragment, msg)
		}
	}
}

func TestWrapDefaultsToIOMarker(t *testing.T) {
	err := services.Wrap(nil, "", "", "", nil)
	if !errors.Is(err, services.ErrIO) {
		t.Fatalf("expected ErrIO marker, got %v", err)
	}
	if !strings.Contains(err.Error(), "service failure") {
		t.Fatalf("expected placeholder detail, got %q", err.Error())
	}
}

func TestToolErrorCarriesExitCode(t *testing.T) {
	var err error = &services.ToolError{Tool: "squizz", ExitCode: 3, Stderr: "sequences differ in length\n"}
	wrapped := fmt.Errorf("convert: %w", err)

	if !errors.Is(wrapped, services.ErrExternalTool) {
		t.Fatalf("expected ErrExternalTool, got %v", wrapped)
	}
	code, ok := services.ExitCode(wrapped)
	if !ok || code != 3 {
		t.Fatalf("unexpected exit code: %d %v", code, ok)
	}
	msg := wrapped.Error()
	if !strings.Contains(msg, "squizz exited with code 3") || !strings.Contains(msg, "sequences differ in length") {
		t.Fatalf("unexpected message: %q", msg)
	}
	if _, ok := services.ExitCode(errors.New("plain")); ok {
		t.Fatal("expected no exit code for plain error")
	}
}
