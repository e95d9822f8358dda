package root

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"loro-backend/config"
	"loro-backend/internal"
)

// Cmd returns the root command. Before any subcommand runs it loads
// .env, the optional config file and the environment into the
// application config.
func Cmd(app *internal.App) *cobra.Command {
	var (
		cfgFile string
		envFile string
	)

	cmd := &cobra.Command{
		Use:           "loro-backend",
		Short:         "Read-only HTTP gateway to GitHub repository metadata and structure",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := config.LoadDotEnv(envFile); err != nil {
				return err
			}
			return config.Load(cfgFile, app.Config())
		},
	}

	cmd.PersistentFlags().StringVar(&cfgFile, "config", "", "path to a config file (yaml, json or toml)")
	cmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "path to a dotenv file, ignored when missing")
	cmd.PersistentFlags().String("environment", "prod", `application environment: "local", "dev" or "prod"`)
	_ = viper.BindPFlag("env", cmd.PersistentFlags().Lookup("environment"))

	return cmd
}
