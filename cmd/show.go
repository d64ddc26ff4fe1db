package cmd

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/daniel-kun/hiptest-publisher/internal/db"
	"github.com/daniel-kun/hiptest-publisher/internal/ui"
	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show an indexed scenario's tree",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return RunShow(cmd.OutOrStdout(), args[0])
	},
}

func init() {
	rootCmd.AddCommand(showCmd)
}

func RunShow(w io.Writer, rawID string) error {
	id, err := strconv.ParseInt(rawID, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid scenario ID: %s", rawID)
	}

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		return fmt.Errorf("run `htp init` first")
	}

	sqlDB, err := db.Open(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer sqlDB.Close()

	var scenarioName string
	var filePath string
	err = sqlDB.QueryRow(`
		SELECT s.name, p.file_path
		FROM scenarios s
		JOIN projects p ON s.project_id = p.id
		WHERE s.id = ?
	`, id).Scan(&scenarioName, &filePath)
	if err != nil {
		return fmt.Errorf("scenario %d not found", id)
	}

	project, _, err := buildProjectFile(filePath, false)
	if err != nil {
		return err
	}

	for _, scenario := range project.Scenarios.Items {
		if scenario.Name == scenarioName {
			ui.RenderNode(w, scenario)
			return nil
		}
	}
	return fmt.Errorf("scenario %q not found in %s", scenarioName, filePath)
}
