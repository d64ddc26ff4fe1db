package cmd

import (
	"database/sql"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/daniel-kun/hiptest-publisher/internal/db"
	"github.com/daniel-kun/hiptest-publisher/internal/ui"
	"github.com/spf13/cobra"
)

var syncCmd = &cobra.Command{
	Use:   "sync <project.xml>",
	Short: "Index an export's scenarios and actionwords",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return RunSync(cmd.OutOrStdout(), args[0])
	},
}

func init() {
	rootCmd.AddCommand(syncCmd)
}

func RunSync(w io.Writer, path string) error {
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		return fmt.Errorf("run `htp init` first")
	}

	sqlDB, err := db.Open(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer sqlDB.Close()

	project, _, err := buildProjectFile(path, false)
	if err != nil {
		return err
	}

	var projectID int64
	err = sqlDB.QueryRow(`SELECT id FROM projects WHERE file_path = ?`, path).Scan(&projectID)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		res, err := sqlDB.Exec(`INSERT INTO projects (name, file_path) VALUES (?, ?)`, project.Name, path)
		if err != nil {
			return fmt.Errorf("inserting project %s: %w", path, err)
		}
		projectID, err = res.LastInsertId()
		if err != nil {
			return fmt.Errorf("inserting project %s: %w", path, err)
		}
	case err != nil:
		return fmt.Errorf("querying project %s: %w", path, err)
	default:
		if _, err := sqlDB.Exec(`UPDATE projects SET name = ?, updated_at = datetime('now') WHERE id = ?`, project.Name, projectID); err != nil {
			return fmt.Errorf("updating project %s: %w", path, err)
		}
	}

	scenarioCount := 0
	for _, scenario := range project.Scenarios.Items {
		var id int64
		err := sqlDB.QueryRow(`SELECT id FROM scenarios WHERE project_id = ? AND name = ?`, projectID, scenario.Name).Scan(&id)
		switch {
		case errors.Is(err, sql.ErrNoRows):
			_, err = sqlDB.Exec(`INSERT INTO scenarios (project_id, name, step_count) VALUES (?, ?, ?)`,
				projectID, scenario.Name, len(scenario.Steps))
			if err != nil {
				return fmt.Errorf("inserting scenario %q: %w", scenario.Name, err)
			}
			ui.NewLine(w, scenario.Name)
		case err != nil:
			return fmt.Errorf("querying scenario %q: %w", scenario.Name, err)
		default:
			_, err = sqlDB.Exec(`UPDATE scenarios SET step_count = ?, updated_at = datetime('now') WHERE id = ?`,
				len(scenario.Steps), id)
			if err != nil {
				return fmt.Errorf("updating scenario %q: %w", scenario.Name, err)
			}
			ui.TrkLine(w, scenario.Name)
		}
		scenarioCount++
	}

	actionwordCount := 0
	for _, actionword := range project.Actionwords.Items {
		var id int64
		err := sqlDB.QueryRow(`SELECT id FROM actionwords WHERE project_id = ? AND name = ?`, projectID, actionword.Name).Scan(&id)
		switch {
		case errors.Is(err, sql.ErrNoRows):
			_, err = sqlDB.Exec(`INSERT INTO actionwords (project_id, name, parameter_count) VALUES (?, ?, ?)`,
				projectID, actionword.Name, len(actionword.Parameters))
			if err != nil {
				return fmt.Errorf("inserting actionword %q: %w", actionword.Name, err)
			}
			ui.NewLine(w, actionword.Name)
		case err != nil:
			return fmt.Errorf("querying actionword %q: %w", actionword.Name, err)
		default:
			_, err = sqlDB.Exec(`UPDATE actionwords SET parameter_count = ?, updated_at = datetime('now') WHERE id = ?`,
				len(actionword.Parameters), id)
			if err != nil {
				return fmt.Errorf("updating actionword %q: %w", actionword.Name, err)
			}
			ui.TrkLine(w, actionword.Name)
		}
		actionwordCount++
	}

	ui.SummaryLine(w, scenarioCount, actionwordCount)
	return nil
}
