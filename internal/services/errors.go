package services

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrConfiguration   = errors.New("configuration error")
	ErrUnknownStrategy = errors.New("unknown conversion method")
	ErrParse           = errors.New("parse error")
	ErrExternalTool    = errors.New("external tool error")
	ErrInstallation    = errors.New("installation error")
	ErrIO              = errors.New("i/o error")
)

// Wrap builds an error message that includes component context while tagging
// it with the provided marker for later classification. The marker should be
// one of the exported sentinel errors above.
func Wrap(marker error, component, operation, message string, err error) error {
	detail := buildDetail(component, operation, message)
	if marker == nil {
		marker = ErrIO
	}
	if err != nil {
		return fmt.Errorf("%w: %s: %w", marker, detail, err)
	}
	return fmt.Errorf("%w: %s", marker, detail)
}

// ToolError reports a child process that exited with a non-zero status.
type ToolError struct {
	Tool     string
	ExitCode int
	Stderr   string
}

func (e *ToolError) Error() string {
	msg := fmt.Sprintf("%s: %s exited with code %d", ErrExternalTool, e.Tool, e.ExitCode)
	if stderr := strings.TrimSpace(e.Stderr); stderr != "" {
		msg += ": " + stderr
	}
	return msg
}

// Unwrap lets errors.Is match ErrExternalTool.
func (e *ToolError) Unwrap() error {
	return ErrExternalTool
}

// ExitCode returns the exit code carried by a ToolError in err's chain.
func ExitCode(err error) (int, bool) {
	var toolErr *ToolError
	if errors.As(err, &toolErr) {
		return toolErr.ExitCode, true
	}
	return 0, false
}

func buildDetail(component, operation, message string) string {
	parts := make([]string, 0, 3)
	if component = strings.TrimSpace(component); component != "" {
		parts = append(parts, component)
	}
	if operation = strings.TrimSpace(operation); operation != "" {
		parts = append(parts, operation)
	}
	if message = strings.TrimSpace(message); message != "" {
		parts = append(parts, message)
	}
	if len(parts) == 0 {
		return "service failure"
	}
	return strings.Join(parts, ": ")
}
