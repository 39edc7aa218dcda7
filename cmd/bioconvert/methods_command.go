package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"bioconvert/internal/conversion"
)

type methodView struct {
	conversion.MethodInfo
	Default   bool `json:"default"`
	Available bool `json:"available"`
}

func newMethodsCommand(ctx *commandContext) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "methods",
		Short: "List conversion methods and their availability",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			checker, err := ctx.newChecker()
			if err != nil {
				return err
			}

			known := conversion.KnownMethods()
			views := make([]methodView, 0, len(known))
			for _, info := range known {
				available := info.Tool == "" || checker.IsPresent(info.Tool)
				views = append(views, methodView{
					MethodInfo: info,
					Default:    info.Name == cfg.Conversion.DefaultMethod,
					Available:  available,
				})
			}

			if jsonOutput {
				return writeJSON(cmd, views)
			}

			colorize := shouldColorize(cmd.OutOrStdout())
			rows := make([][]string, 0, len(views))
			for _, v := range views {
				name := v.Name
				if v.Default {
					name += " *"
				}
				available := yesNo(v.Available)
				if !v.Available && v.Installable {
					available = "no (installs on use)"
				}
				if colorize {
					available = colorAvailability(available, v.Available, v.Installable)
				}
				rows = append(rows, []string{name, v.Layout, available, v.Description})
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable(tableSpec{
				headers:  []string{"Method", "Layout", "Available", "Description"},
				rows:     rows,
				footer:   "* default method",
				colorize: colorize,
			}))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Emit JSON")
	return cmd
}
