package serve

import (
	"context"
	"time"

	"github.com/misnaged/annales/logger"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"loro-backend/internal"
)

const verifyTimeout = 10 * time.Second

// Cmd returns the command starting the HTTP gateway.
func Cmd(app *internal.App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP gateway",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Init(); err != nil {
				return err
			}

			if app.Config().GitHub.VerifyToken {
				ctx, cancel := context.WithTimeout(cmd.Context(), verifyTimeout)
				defer cancel()

				if err := app.VerifyToken(ctx); err != nil {
					return err
				}
			}

			logger.Log().Infof("Starting loro-backend %s", app.Version())

			return app.Serve()
		},
	}

	flags := cmd.Flags()
	flags.Int("port", 3000, "port the HTTP server listens on")
	flags.String("host", "", "interface the HTTP server binds, all when empty")
	flags.String("tree-strategy", "nested", `default structure strategy: "nested" or "flat"`)
	flags.Bool("verify-token", false, "check the GitHub token before serving")

	_ = viper.BindPFlag("http.port", flags.Lookup("port"))
	_ = viper.BindPFlag("http.host", flags.Lookup("host"))
	_ = viper.BindPFlag("tree.strategy", flags.Lookup("tree-strategy"))
	_ = viper.BindPFlag("github.verify_token", flags.Lookup("verify-token"))

	return cmd
}
