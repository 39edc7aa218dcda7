package conversion

import (
	"context"
	"errors"
	"log/slog"

	"bioconvert/internal/logging"
	"bioconvert/internal/services"
	"bioconvert/internal/services/goalign"
	"bioconvert/internal/services/squizz"
)

// Method names for the subprocess-backed strategies.
const (
	MethodSquizz  = squizz.ToolName
	MethodGoalign = goalign.ToolName
)

// Squizz converts through the squizz CLI, producing interleaved PHYLIP.
type Squizz struct {
	client  *squizz.Client
	checker ToolChecker
	logger  *slog.Logger
}

// NewSquizz constructs the squizz strategy. checker may be nil, in which case
// the client's binary is executed as configured.
func NewSquizz(client *squizz.Client, checker ToolChecker, logger *slog.Logger) *Squizz {
	return &Squizz{client: client, checker: checker, logger: logging.NewComponentLogger(logger, MethodSquizz)}
}

func (s *Squizz) Name() string { return MethodSquizz }

func (s *Squizz) Convert(ctx context.Context, job Job) (int, error) {
	client := s.client
	if s.checker != nil {
		if path, ok := s.checker.Lookup(MethodSquizz); ok {
			client = client.WithBinary(path)
		}
	}
	logger := logging.WithContext(ctx, s.logger)
	cmd := client.Command(job.InputPath, job.OutputPath)
	logger.Debug("running squizz", logging.String("command", cmd.String()))
	if err := client.Convert(ctx, job.InputPath, job.OutputPath); err != nil {
		return 0, toolFailure(ctx, MethodSquizz, err)
	}
	return UnknownCount, nil
}

// Goalign converts through `goalign reformat phylip`, installing goalign
// first when it cannot be found.
type Goalign struct {
	client  *goalign.Client
	checker ToolChecker
	logger  *slog.Logger
}

// NewGoalign constructs the goalign strategy.
func NewGoalign(client *goalign.Client, checker ToolChecker, logger *slog.Logger) *Goalign {
	return &Goalign{client: client, checker: checker, logger: logging.NewComponentLogger(logger, MethodGoalign)}
}

func (g *Goalign) Name() string { return MethodGoalign }

func (g *Goalign) Convert(ctx context.Context, job Job) (int, error) {
	logger := logging.WithContext(ctx, g.logger)
	client := g.client
	if g.checker != nil {
		if !g.checker.IsPresent(MethodGoalign) {
			logger.Info("goalign not found, installing")
			if err := g.checker.Install(ctx, MethodGoalign); err != nil {
				if errors.Is(err, services.ErrInstallation) {
					return 0, err
				}
				return 0, services.Wrap(services.ErrInstallation, MethodGoalign, "install", "", err)
			}
		}
		if path, ok := g.checker.Lookup(MethodGoalign); ok {
			client = client.WithBinary(path)
		}
	}
	logger.Debug("running goalign", logging.String("command", client.ReformatCommand(job.InputPath, job.OutputPath).String()))
	if err := client.Reformat(ctx, job.InputPath, job.OutputPath); err != nil {
		return 0, toolFailure(ctx, MethodGoalign, err)
	}
	return UnknownCount, nil
}

// toolFailure classifies a client error. Non-zero exits already carry
// ErrExternalTool; failures to start the process are tagged the same way.
func toolFailure(ctx context.Context, tool string, err error) error {
	if errors.Is(err, services.ErrExternalTool) || errors.Is(err, services.ErrConfiguration) {
		return err
	}
	if ctxErr := ctx.Err(); ctxErr != nil && errors.Is(err, ctxErr) {
		return err
	}
	return services.Wrap(services.ErrExternalTool, tool, "run", "", err)
}
