package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"bioconvert/internal/deps"
	"bioconvert/internal/preflight"
)

func newToolsCommand(ctx *commandContext) *cobra.Command {
	toolsCmd := &cobra.Command{
		Use:   "tools",
		Short: "Inspect and install external conversion tools",
	}

	toolsCmd.AddCommand(newToolsStatusCommand(ctx))
	toolsCmd.AddCommand(newToolsInstallCommand(ctx))

	return toolsCmd
}

type toolStatusView struct {
	Kind   string `json:"kind"`
	Name   string `json:"name"`
	OK     bool   `json:"ok"`
	Detail string `json:"detail"`
}

func toolStatusViews(statuses []deps.Status, checks []preflight.Result) []toolStatusView {
	views := make([]toolStatusView, 0, len(statuses)+len(checks))
	for _, s := range statuses {
		detail := s.Detail
		if s.Available {
			detail = s.Command
		}
		views = append(views, toolStatusView{Kind: "tool", Name: s.Name, OK: s.Available, Detail: detail})
	}
	for _, c := range checks {
		views = append(views, toolStatusView{Kind: "check", Name: c.Name, OK: c.Passed, Detail: c.Detail})
	}
	return views
}

func newToolsStatusCommand(ctx *commandContext) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show external tool availability",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			checker, err := ctx.newChecker()
			if err != nil {
				return err
			}

			statuses := checker.Status()
			checks := preflight.RunAll(cmd.Context(), cfg, checker)
			if jsonOutput {
				return writeJSON(cmd, toolStatusViews(statuses, checks))
			}

			out := cmd.OutOrStdout()
			colorize := shouldColorize(out)
			rows := make([][]string, 0, len(statuses))
			for _, status := range statuses {
				available := yesNo(status.Available)
				if colorize {
					available = colorAvailability(available, status.Available, status.Installable)
				}
				detail := status.Detail
				if status.Available {
					detail = status.Command
				}
				rows = append(rows, []string{status.Name, available, yesNo(status.Installable), detail})
			}
			fmt.Fprintln(out, renderTable(tableSpec{
				headers:  []string{"Tool", "Available", "Installable", "Path / Detail"},
				rows:     rows,
				colorize: colorize,
			}))

			for _, line := range renderSectionHeader("Checks", colorize) {
				fmt.Fprintln(out, line)
			}
			for _, check := range checks {
				fmt.Fprintln(out, renderCheckLine(check.Name, check.Passed, check.Detail, colorize))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Emit JSON")
	return cmd
}

func newToolsInstallCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "install NAME",
		Short: "Install an external tool into the managed tools directory",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			checker, err := ctx.newChecker()
			if err != nil {
				return err
			}
			name := strings.ToLower(strings.TrimSpace(args[0]))
			if check := preflight.CheckToolsDirectory(checker.ToolsDir()); !check.Passed {
				return fmt.Errorf("%s: %s", check.Name, check.Detail)
			}
			if err := checker.Install(cmd.Context(), name); err != nil {
				return err
			}
			path, _ := checker.Lookup(name)
			fmt.Fprintf(cmd.OutOrStdout(), "%s available at %s\n", name, path)
			return nil
		},
	}
}
