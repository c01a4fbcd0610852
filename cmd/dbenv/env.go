package dbenv

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/railwayapp/dbenv/internal/environment"
	"github.com/railwayapp/dbenv/internal/environment/types"
	"github.com/spf13/cobra"
)

var (
	envShowSecrets bool
	envSecretsLast bool
	envFormat      string
)

var envCmd = &cobra.Command{
	Use:   "env <definition>",
	Short: "Print the environment injected into the database container",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		service, err := loadService(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		var opts []environment.AssemblerOption
		if envSecretsLast {
			opts = append(opts, environment.WithSecretsFileLast())
		}
		env := environment.NewAssembler(opts...).Build(service.EnvSource())

		switch envFormat {
		case "dotenv":
			if !envShowSecrets {
				env = maskEnv(env)
			}
			output, err := godotenv.Marshal(env)
			if err != nil {
				return fmt.Errorf("failed to encode environment: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), output)
		case "text":
			printEnv(cmd, env)
		default:
			return fmt.Errorf("unknown format: %s", envFormat)
		}
		return nil
	},
}

func printEnv(cmd *cobra.Command, env map[string]string) {
	out := cmd.OutOrStdout()
	if len(env) == 0 {
		fmt.Fprintln(out, "No environment variables")
		return
	}

	for _, envVar := range types.Annotate(env) {
		value := envVar.Value
		sensitiveMarker := ""
		if envVar.Sensitive {
			sensitiveMarker = " [SENSITIVE]"
			if !envShowSecrets {
				value = types.Mask(value, true)
			}
		}
		fmt.Fprintf(out, "%s=%s%s\n", envVar.VarName, value, sensitiveMarker)
	}
}

func maskEnv(env map[string]string) map[string]string {
	masked := make(map[string]string, len(env))
	for _, envVar := range types.Annotate(env) {
		masked[envVar.VarName] = types.Mask(envVar.Value, envVar.Sensitive)
	}
	return masked
}

func init() {
	envCmd.Flags().BoolVar(&envShowSecrets, "show-secrets", false, "print sensitive values instead of masking them")
	envCmd.Flags().BoolVar(&envSecretsLast, "secrets-last", false, "apply the secrets file after the env file, letting it replace typed credentials")
	envCmd.Flags().StringVar(&envFormat, "format", "text", "output format: text or dotenv")
	rootCmd.AddCommand(envCmd)
}
