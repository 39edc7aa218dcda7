package conversion

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"bioconvert/internal/logging"
	"bioconvert/internal/services"
	"bioconvert/internal/services/goalign"
	"bioconvert/internal/services/squizz"
)

// MethodDefault is the registry alias resolved when no method is named.
const MethodDefault = "default"

// Options holds the optional dispatcher parameters. Zero values select the
// documented defaults.
type Options struct {
	// OutputPath defaults to the input path with a .phylip extension.
	OutputPath string
	Alphabet   string
	// DefaultMethod is registered under "default". Defaults to biogo.
	DefaultMethod string
	SquizzBinary  string
	GoalignBinary string
	// Checker locates and installs external tools. Nil skips availability
	// checks and runs binaries as configured.
	Checker ToolChecker
	Runner  services.Runner
	Logger  *slog.Logger
}

// Dispatcher resolves a method name to a strategy and runs it against a
// single input file.
type Dispatcher struct {
	job        Job
	strategies map[string]Strategy
	logger     *slog.Logger
}

// New builds a dispatcher for inputPath. The input is not opened until
// Convert runs.
func New(inputPath string, opts Options) (*Dispatcher, error) {
	inputPath = strings.TrimSpace(inputPath)
	if inputPath == "" {
		return nil, services.Wrap(services.ErrConfiguration, "conversion", "new", "input path required", nil)
	}
	output := strings.TrimSpace(opts.OutputPath)
	if output == "" {
		output = DeriveOutputPath(inputPath)
	}

	logger := logging.NewComponentLogger(opts.Logger, "conversion")
	runner := opts.Runner
	if runner == nil {
		runner = services.ExecRunner{}
	}

	squizzClient, err := squizz.New(defaultString(opts.SquizzBinary, squizz.ToolName), squizz.WithRunner(runner))
	if err != nil {
		return nil, services.Wrap(services.ErrConfiguration, "conversion", "new", "squizz client", err)
	}
	goalignClient, err := goalign.New(defaultString(opts.GoalignBinary, goalign.ToolName), goalign.WithRunner(runner))
	if err != nil {
		return nil, services.Wrap(services.ErrConfiguration, "conversion", "new", "goalign client", err)
	}

	d := &Dispatcher{
		job: Job{
			InputPath:  inputPath,
			OutputPath: output,
			Alphabet:   strings.ToLower(strings.TrimSpace(opts.Alphabet)),
		},
		strategies: make(map[string]Strategy, 4),
		logger:     logger,
	}
	d.RegisterStrategy(MethodBiogo, NewSequenceLibrary(opts.Logger))
	d.RegisterStrategy(MethodSquizz, NewSquizz(squizzClient, opts.Checker, opts.Logger))
	d.RegisterStrategy(MethodGoalign, NewGoalign(goalignClient, opts.Checker, opts.Logger))

	defaultMethod := strings.ToLower(defaultString(opts.DefaultMethod, MethodBiogo))
	fallback, ok := d.strategies[defaultMethod]
	if !ok || defaultMethod == MethodDefault {
		return nil, services.Wrap(services.ErrConfiguration, "conversion", "new",
			fmt.Sprintf("default method %q is not one of %s", defaultMethod, strings.Join(d.Methods(), ", ")), nil)
	}
	d.RegisterStrategy(MethodDefault, fallback)
	return d, nil
}

// Job returns the job every strategy receives.
func (d *Dispatcher) Job() Job {
	return d.job
}

// RegisterStrategy adds or replaces the strategy stored under name. It must
// not be called while a conversion is running.
func (d *Dispatcher) RegisterStrategy(name string, strategy Strategy) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" || strategy == nil {
		return
	}
	d.strategies[name] = strategy
}

// Methods returns the registered method names in sorted order, including the
// default alias.
func (d *Dispatcher) Methods() []string {
	names := make([]string, 0, len(d.strategies))
	for name := range d.strategies {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Strategy returns the strategy registered under method.
func (d *Dispatcher) Strategy(method string) (Strategy, bool) {
	method = strings.ToLower(strings.TrimSpace(method))
	if method == "" {
		method = MethodDefault
	}
	s, ok := d.strategies[method]
	return s, ok
}

// Convert runs the named method (empty selects the default) and returns the
// number of records converted, or UnknownCount for tool-backed methods.
// threads is recorded but not used by any strategy. On failure the output
// file may hold partial content; a warning is logged when the failed run
// changed it.
func (d *Dispatcher) Convert(ctx context.Context, method string, threads int) (int, error) {
	strategy, ok := d.Strategy(method)
	if !ok {
		return 0, services.Wrap(services.ErrUnknownStrategy, "conversion", "resolve",
			fmt.Sprintf("%q (available: %s)", method, strings.Join(d.Methods(), ", ")), nil)
	}

	ctx = services.WithRequestID(ctx, uuid.NewString())
	ctx = services.WithMethod(ctx, strategy.Name())
	ctx = services.WithInputPath(ctx, d.job.InputPath)
	logger := logging.WithContext(ctx, d.logger)

	if err := checkInput(d.job.InputPath); err != nil {
		return 0, err
	}

	before, _ := os.Stat(d.job.OutputPath)
	start := time.Now()
	logger.Info("conversion started",
		logging.String("output", d.job.OutputPath),
		logging.Int("threads", threads),
	)
	count, err := strategy.Convert(ctx, d.job)
	if err != nil {
		logging.ErrorWithContext(logger, "conversion failed", "conversion_failed",
			logging.Error(err),
			logging.String("output", d.job.OutputPath),
			logging.String(logging.FieldErrorHint, errorHint(err)),
		)
		if outputTouched(d.job.OutputPath, before) {
			logging.WarnWithContext(logger, "output may be incomplete", "partial_output",
				logging.String("output", d.job.OutputPath),
				logging.String(logging.FieldErrorHint, "delete the output file before using it"),
				logging.String(logging.FieldImpact, "output file was modified by a failed conversion"),
			)
		}
		return 0, err
	}
	logger.Info("conversion completed",
		logging.String("output", d.job.OutputPath),
		logging.Int("records", count),
		logging.Duration("duration", time.Since(start)),
	)
	return count, nil
}

func checkInput(path string) error {
	file, err := os.Open(path)
	if err != nil {
		return services.Wrap(services.ErrConfiguration, "conversion", "open input", path, err)
	}
	defer file.Close()
	info, err := file.Stat()
	if err != nil {
		return services.Wrap(services.ErrConfiguration, "conversion", "stat input", path, err)
	}
	if info.IsDir() {
		return services.Wrap(services.ErrConfiguration, "conversion", "open input", path+" is a directory", nil)
	}
	return nil
}

// outputTouched reports whether path exists and differs from the state
// captured in before, which is nil when the file did not exist.
func outputTouched(path string, before os.FileInfo) bool {
	after, err := os.Stat(path)
	if err != nil {
		return false
	}
	if before == nil {
		return true
	}
	return after.Size() != before.Size() || !after.ModTime().Equal(before.ModTime())
}

func errorHint(err error) string {
	switch {
	case errors.Is(err, services.ErrParse):
		return "check that the input is an aligned FASTA file"
	case errors.Is(err, services.ErrInstallation):
		return "run `bioconvert tools install goalign` or install goalign manually"
	case errors.Is(err, services.ErrExternalTool):
		return "inspect the tool stderr above"
	default:
		return "check logs for details"
	}
}

func defaultString(value, fallback string) string {
	if value = strings.TrimSpace(value); value != "" {
		return value
	}
	return fallback
}
