package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/daniel-kun/hiptest-publisher/internal/db"
	"github.com/daniel-kun/hiptest-publisher/internal/ui"
	"github.com/spf13/cobra"
)

var actionwordsFlag bool

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List indexed scenarios",
	RunE: func(cmd *cobra.Command, args []string) error {
		return RunList(cmd.OutOrStdout(), actionwordsFlag)
	},
}

func init() {
	listCmd.Flags().BoolVar(&actionwordsFlag, "actionwords", false, "List actionwords instead of scenarios")
	rootCmd.AddCommand(listCmd)
}

type listRow struct {
	id      int64
	project string
	name    string
}

func RunList(w io.Writer, actionwords bool) error {
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		return fmt.Errorf("run `htp init` first")
	}

	sqlDB, err := db.Open(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer sqlDB.Close()

	table := "scenarios"
	if actionwords {
		table = "actionwords"
	}

	rows, err := sqlDB.Query(`
		SELECT t.id, p.name, t.name
		FROM ` + table + ` t
		JOIN projects p ON t.project_id = p.id
		ORDER BY p.name, t.id
	`)
	if err != nil {
		return fmt.Errorf("querying %s: %w", table, err)
	}
	defer rows.Close()

	var results []listRow
	for rows.Next() {
		var r listRow
		if err := rows.Scan(&r.id, &r.project, &r.name); err != nil {
			return fmt.Errorf("scanning row: %w", err)
		}
		results = append(results, r)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterating rows: %w", err)
	}

	if len(results) == 0 {
		return nil
	}

	idWidth, projectWidth := 0, 0
	for _, r := range results {
		if n := len(fmt.Sprintf("%d", r.id)); n > idWidth {
			idWidth = n
		}
		if len(r.project) > projectWidth {
			projectWidth = len(r.project)
		}
	}

	for _, r := range results {
		ui.ListRow(w, r.id, r.project, r.name, idWidth, projectWidth)
	}

	return nil
}
