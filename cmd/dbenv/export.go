package dbenv

import (
	"fmt"
	"os"

	"github.com/railwayapp/dbenv/internal/export"
	"github.com/railwayapp/dbenv/internal/schema"
	"github.com/spf13/cobra"
)

var (
	exportFormat  string
	exportOutput  string
	exportRedact  bool
	exportProject string
)

var exportCmd = &cobra.Command{
	Use:   "export <definition>...",
	Short: "Export resolved database services as JSON or a docker compose file",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		exporter, err := export.NewExporter(exportFormat)
		if err != nil {
			return err
		}

		project := schema.NewProject(exportProject)
		for _, source := range args {
			service, err := loadService(cmd.Context(), source)
			if err != nil {
				return fmt.Errorf("%s: %w", source, err)
			}
			project.AddService(schema.NewService(service, service.ContainerEnv(), exportRedact))
		}

		output, err := exporter.Export(project)
		if err != nil {
			return fmt.Errorf("%s export failed: %w", exporter.Name(), err)
		}

		if exportOutput == "" || exportOutput == "-" {
			_, err = cmd.OutOrStdout().Write(output)
			return err
		}

		if err := os.WriteFile(exportOutput, output, 0600); err != nil {
			return fmt.Errorf("failed to write %s: %w", exportOutput, err)
		}
		logger.Info("Exported project", "format", exporter.Name(), "path", exportOutput, "services", len(project.Services))
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVar(&exportFormat, "format", "json", "export format: json or compose")
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "output file (default stdout)")
	exportCmd.Flags().BoolVar(&exportRedact, "redact", false, "mask sensitive values")
	exportCmd.Flags().StringVar(&exportProject, "project", "dbenv", "project name")
	rootCmd.AddCommand(exportCmd)
}
