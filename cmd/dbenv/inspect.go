package dbenv

import (
	"fmt"

	"github.com/railwayapp/dbenv/internal/dbapp"
	"github.com/railwayapp/dbenv/internal/environment/types"
	"github.com/spf13/cobra"
)

var inspectShowSecrets bool

var inspectCmd = &cobra.Command{
	Use:   "inspect <definition>",
	Short: "Print the connection parameters of the database service",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		service, err := loadService(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "=== %s (%s) ===\n", service.Base().Name, service.Engine())
		fmt.Fprintf(out, "  Image:    %s\n", service.Base().Image())
		fmt.Fprintf(out, "  Driver:   %s\n", orNone(service.Driver()))
		fmt.Fprintf(out, "  User:     %s\n", orNone(service.User()))
		password, ok := service.Password()
		fmt.Fprintf(out, "  Password: %s\n", orNone(types.Mask(password, !inspectShowSecrets), ok))
		fmt.Fprintf(out, "  Schema:   %s\n", orNone(service.Schema()))
		fmt.Fprintf(out, "  Host:     %s\n", orNone(service.Host()))
		fmt.Fprintf(out, "  Port:     %s\n", portOrNone(service.Port()))
		fmt.Fprintf(out, "  Local:    %s:%s\n", service.LocalHost(), portOrNone(service.LocalPort()))

		// Connection strings embed the password
		if !inspectShowSecrets {
			return nil
		}

		url, err := dbapp.ConnectionURL(service)
		if err != nil {
			logger.Warn("Cannot build connection URL", "error", err)
			return nil
		}
		fmt.Fprintf(out, "  URL:      %s\n", url)

		dsn, err := service.DSN()
		if err != nil {
			logger.Warn("Cannot build DSN", "error", err)
			return nil
		}
		fmt.Fprintf(out, "  DSN:      %s\n", dsn)
		return nil
	},
}

func orNone(value string, ok bool) string {
	if !ok {
		return "<none>"
	}
	return value
}

func portOrNone(port int, ok bool) string {
	if !ok {
		return "<none>"
	}
	return fmt.Sprintf("%d", port)
}

func init() {
	inspectCmd.Flags().BoolVar(&inspectShowSecrets, "show-secrets", false, "print the password and connection strings")
	rootCmd.AddCommand(inspectCmd)
}
