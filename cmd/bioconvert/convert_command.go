package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"bioconvert/internal/conversion"
	"bioconvert/internal/logging"
	"bioconvert/internal/preflight"
	"bioconvert/internal/seqio/fasta"
)

func newFasta2PhylipCommand(ctx *commandContext) *cobra.Command {
	var method string
	var alphabet string
	var threads int
	var force bool

	cmd := &cobra.Command{
		Use:   "fasta2phylip INPUT [OUTPUT]",
		Short: "Convert a FASTA alignment to PHYLIP",
		Long: "Convert a FASTA alignment to PHYLIP.\n\n" +
			"When OUTPUT is omitted it is derived from INPUT by replacing the extension with ." +
			conversion.OutputExtension + ".\n" +
			"Methods: biogo (default), squizz, goalign.",
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := ctx.ensureLogger()
			if err != nil {
				return err
			}
			checker, err := ctx.newChecker()
			if err != nil {
				return err
			}

			input := args[0]
			var output string
			if len(args) > 1 {
				output = args[1]
			}
			if !cmd.Flags().Changed("alphabet") {
				alphabet = cfg.Conversion.Alphabet
			}
			if !fasta.HasExtension(input) {
				logger.Debug("input has no FASTA extension",
					logging.String("input", input),
					logging.String("extensions", strings.Join(fasta.Extensions, ",")),
				)
			}

			dispatcher, err := conversion.New(input, conversion.Options{
				OutputPath:    output,
				Alphabet:      alphabet,
				DefaultMethod: cfg.Conversion.DefaultMethod,
				SquizzBinary:  cfg.Tools.SquizzBinary,
				GoalignBinary: cfg.Tools.GoalignBinary,
				Checker:       checker,
				Logger:        logger,
			})
			if err != nil {
				return err
			}
			output = dispatcher.Job().OutputPath

			if !force && !cfg.Conversion.Force {
				if _, err := os.Stat(output); err == nil {
					return fmt.Errorf("output %s already exists (use --force to overwrite)", output)
				} else if !errors.Is(err, os.ErrNotExist) {
					return fmt.Errorf("check output path: %w", err)
				}
			}
			if check := preflight.CheckOutputDirectory(output); !check.Passed {
				return fmt.Errorf("%s: %s", check.Name, check.Detail)
			}

			count, err := dispatcher.Convert(cmd.Context(), method, threads)
			if err != nil {
				return err
			}

			used := method
			if strategy, ok := dispatcher.Strategy(method); ok {
				used = strategy.Name()
			}
			out := cmd.OutOrStdout()
			if count == conversion.UnknownCount {
				fmt.Fprintf(out, "Converted %s -> %s (%s)\n", input, output, used)
			} else {
				fmt.Fprintf(out, "Converted %d records %s -> %s (%s)\n", count, input, output, used)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&method, "method", "m", "", "Conversion method (default from conversion.default_method)")
	cmd.Flags().StringVar(&alphabet, "alphabet", "", "Residue alphabet to validate against: dna, rna or protein")
	cmd.Flags().IntVarP(&threads, "threads", "t", 1, "Thread count passed through to the conversion (recorded only)")
	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite the output file if it exists")
	return cmd
}
