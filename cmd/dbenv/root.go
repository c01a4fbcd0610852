package dbenv

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/railwayapp/dbenv/internal/config"
	"github.com/railwayapp/dbenv/internal/dbapp"
	"github.com/railwayapp/dbenv/internal/filesystems"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile string
	logger  = log.NewWithOptions(os.Stderr, log.Options{Prefix: "dbenv"})
)

var rootCmd = &cobra.Command{
	Use:   "dbenv",
	Short: "Resolve the container environment of a database service",
	Long: `dbenv reads a database service definition (YAML, TOML or JSON) and
resolves what the container runtime needs to start it:
1. Credentials - explicit values, falling back to the secrets file
2. Environment - base env, engine settings, env file and explicit overrides
3. Connection  - the parameters other services use to reach the database`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if viper.GetBool("debug") {
			logger.SetLevel(log.DebugLevel)
		}
	},
}

func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.dbenv.yaml)")
	rootCmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	rootCmd.PersistentFlags().Bool("env-lookup", false, "allow DBENV_* variables to override definition fields")
	cobra.CheckErr(viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug")))
	cobra.CheckErr(viper.BindPFlag("env_lookup", rootCmd.PersistentFlags().Lookup("env-lookup")))
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		viper.AddConfigPath(home)
		viper.SetConfigType("yaml")
		viper.SetConfigName(".dbenv")
	}

	viper.SetEnvPrefix(config.EnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		logger.Debug("Using config file", "path", viper.ConfigFileUsed())
	}
}

// loadService loads the definition at source, which may be a local path
// or a file:// URI.
func loadService(ctx context.Context, source string) (dbapp.Service, error) {
	filesystem, err := filesystems.NewFileSystem(source)
	if err != nil {
		return nil, fmt.Errorf("failed to create filesystem: %w", err)
	}

	opts := []config.Option{config.WithLogger(logger)}
	if viper.GetBool("env_lookup") {
		opts = append(opts, config.WithEnvLookup())
	}

	loader := config.NewLoader(filesystem, opts...)
	service, err := loader.Load(ctx, filesystems.GetBasePath(source))
	if err != nil {
		return nil, err
	}

	logger.Debug("Loaded service", "name", service.Base().Name, "engine", service.Engine())
	return service, nil
}
