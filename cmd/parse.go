package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/daniel-kun/hiptest-publisher/internal/nodes"
	"github.com/daniel-kun/hiptest-publisher/internal/parser"
	"github.com/daniel-kun/hiptest-publisher/internal/ui"
	"github.com/spf13/cobra"
)

var (
	verboseFlag bool
	treeFlag    bool
)

var parseCmd = &cobra.Command{
	Use:   "parse <project.xml>",
	Short: "Parse a project export and print a summary",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return RunParse(cmd.OutOrStdout(), args[0], verboseFlag, treeFlag)
	},
}

func init() {
	parseCmd.Flags().BoolVar(&verboseFlag, "verbose", false, "Print every skipped element and why")
	parseCmd.Flags().BoolVar(&treeFlag, "tree", false, "Dump the full tree")
	rootCmd.AddCommand(parseCmd)
}

func RunParse(w io.Writer, path string, verbose, tree bool) error {
	project, builder, err := buildProjectFile(path, verbose)
	if err != nil {
		return err
	}

	ui.HeaderLine(w, project.Name, project.Description)
	ui.CountLine(w, len(project.Scenarios.Items), len(project.Actionwords.Items))

	if verbose {
		for _, diag := range builder.Diagnostics() {
			ui.DiagLine(w, diag.Element, diag.Err.Error())
		}
	}
	if tree {
		ui.RenderNode(w, project)
	}
	return nil
}

// buildProjectFile reads and builds an export. Diagnostics are collected on
// the returned builder; the commands print them, so the builder's own
// logging is discarded.
func buildProjectFile(path string, verbose bool) (*nodes.Project, *parser.Builder, error) {
	source, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("reading %s: %w", path, err)
	}
	builder, err := parser.NewBuilder(source, parser.Options{
		Verbose: verbose,
		Logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	if err != nil {
		return nil, nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	project, err := builder.BuildProject()
	if err != nil {
		return nil, nil, fmt.Errorf("building %s: %w", path, err)
	}
	return project, builder, nil
}
