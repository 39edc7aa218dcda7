package conversion

import (
	"context"
	"errors"
	"log/slog"
	"os"

	"bioconvert/internal/logging"
	"bioconvert/internal/seqio/fasta"
	"bioconvert/internal/seqio/phylip"
	"bioconvert/internal/services"
)

// MethodBiogo names the in-process strategy backed by the biogo library.
const MethodBiogo = "biogo"

// SequenceLibrary parses FASTA with biogo and writes sequential PHYLIP.
type SequenceLibrary struct {
	logger *slog.Logger
}

// NewSequenceLibrary constructs the library strategy.
func NewSequenceLibrary(logger *slog.Logger) *SequenceLibrary {
	return &SequenceLibrary{logger: logging.NewComponentLogger(logger, MethodBiogo)}
}

func (s *SequenceLibrary) Name() string { return MethodBiogo }

func (s *SequenceLibrary) Convert(ctx context.Context, job Job) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	logger := logging.WithContext(ctx, s.logger)

	records, err := fasta.ReadFile(job.InputPath, job.Alphabet)
	if err != nil {
		switch {
		case errors.Is(err, fasta.ErrUnknownAlphabet):
			return 0, services.Wrap(services.ErrConfiguration, MethodBiogo, "read fasta", job.Alphabet, err)
		case errors.Is(err, fasta.ErrInvalid):
			return 0, services.Wrap(services.ErrParse, MethodBiogo, "read fasta", job.InputPath, err)
		default:
			return 0, services.Wrap(services.ErrIO, MethodBiogo, "read fasta", job.InputPath, err)
		}
	}
	logger.Debug("fasta parsed", logging.Int("records", len(records)))

	rows := make([]phylip.Record, len(records))
	for i, rec := range records {
		rows[i] = phylip.Record{Name: rec.ID, Residues: string(rec.Residues)}
	}

	if _, err := phylip.Validate(rows); err != nil {
		return 0, services.Wrap(services.ErrParse, MethodBiogo, "validate alignment", job.InputPath, err)
	}

	out, err := os.Create(job.OutputPath)
	if err != nil {
		return 0, services.Wrap(services.ErrIO, MethodBiogo, "create output", job.OutputPath, err)
	}
	count, writeErr := phylip.NewWriter(out, phylip.Sequential).Write(rows)
	closeErr := out.Close()
	if writeErr != nil {
		return 0, services.Wrap(services.ErrIO, MethodBiogo, "write phylip", job.OutputPath, writeErr)
	}
	if closeErr != nil {
		return 0, services.Wrap(services.ErrIO, MethodBiogo, "close output", job.OutputPath, closeErr)
	}
	logger.Debug("phylip written", logging.String("output", job.OutputPath), logging.String("layout", phylip.Sequential.String()))
	return count, nil
}
