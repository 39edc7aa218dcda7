package squizz

import (
	"context"
	"errors"
	"strings"

	"bioconvert/internal/services"
)

// ToolName identifies squizz in logs and errors.
const ToolName = "squizz"

// OutputFormat is the squizz format code for interleaved PHYLIP.
const OutputFormat = "PHYLIPI"

// Option configures the client.
type Option func(*Client)

// WithRunner injects a custom runner (primarily for tests).
func WithRunner(r services.Runner) Option {
	return func(c *Client) {
		if r != nil {
			c.runner = r
		}
	}
}

// Client wraps squizz CLI interactions.
type Client struct {
	binary string
	runner services.Runner
}

// New constructs a squizz client.
func New(binary string, opts ...Option) (*Client, error) {
	binary = strings.TrimSpace(binary)
	if binary == "" {
		return nil, errors.New("squizz binary required")
	}
	client := &Client{binary: binary, runner: services.ExecRunner{}}
	for _, opt := range opts {
		opt(client)
	}
	return client, nil
}

// Binary returns the configured executable.
func (c *Client) Binary() string {
	return c.binary
}

// Command builds the invocation that converts inputPath into outputPath.
// squizz writes the converted alignment to stdout.
func (c *Client) Command(inputPath, outputPath string) services.Command {
	return services.Command{
		Binary:     c.binary,
		Args:       []string{"-c", OutputFormat, inputPath},
		StdoutPath: outputPath,
	}
}

// Convert runs squizz and waits for it to finish. A non-zero exit is
// reported as a *services.ToolError carrying the captured stderr.
func (c *Client) Convert(ctx context.Context, inputPath, outputPath string) error {
	if inputPath == "" || outputPath == "" {
		return services.Wrap(services.ErrConfiguration, ToolName, "convert", "input and output paths required", nil)
	}
	_, err := services.Check(ctx, c.runner, ToolName, c.Command(inputPath, outputPath))
	return err
}

// WithBinary returns a copy of the client that runs binary instead.
func (c *Client) WithBinary(binary string) *Client {
	clone := *c
	if binary = strings.TrimSpace(binary); binary != "" {
		clone.binary = binary
	}
	return &clone
}
