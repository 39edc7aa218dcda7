package goalign

import (
	"context"
	"errors"
	"strings"

	"bioconvert/internal/services"
)

// ToolName identifies goalign in logs, errors, and install requests.
const ToolName = "goalign"

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

// Client wraps goalign CLI interactions.
type Client struct {
	binary string
	runner services.Runner
}

// New constructs a goalign client.
func New(binary string, opts ...Option) (*Client, error) {
	binary = strings.TrimSpace(binary)
	if binary == "" {
		return nil, errors.New("goalign binary required")
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

// ReformatCommand builds the `goalign reformat phylip` invocation.
func (c *Client) ReformatCommand(inputPath, outputPath string) services.Command {
	return services.Command{
		Binary: c.binary,
		Args:   []string{"reformat", "phylip", "-i", inputPath, "-o", outputPath},
	}
}

// Reformat converts inputPath into PHYLIP at outputPath.
func (c *Client) Reformat(ctx context.Context, inputPath, outputPath string) error {
	if inputPath == "" || outputPath == "" {
		return services.Wrap(services.ErrConfiguration, ToolName, "reformat", "input and output paths required", nil)
	}
	_, err := services.Check(ctx, c.runner, ToolName, c.ReformatCommand(inputPath, outputPath))
	return err
}

// WithBinary returns a copy of the client that runs binary instead. Used
// after an install resolves the tool to a managed path.
func (c *Client) WithBinary(binary string) *Client {
	clone := *c
	if binary = strings.TrimSpace(binary); binary != "" {
		clone.binary = binary
	}
	return &clone
}
