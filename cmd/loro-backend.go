package main

import (
	"os"

	"github.com/misnaged/annales/logger"

	"loro-backend/cmd/root"
	"loro-backend/cmd/serve"
	"loro-backend/cmd/version"
	"loro-backend/internal"
)

func main() {
	app, err := internal.NewApplication()
	if err != nil {
		logger.Log().Infof("An error occurred: %s", err.Error())
		os.Exit(1)
	}

	rootCmd := root.Cmd(app)
	rootCmd.AddCommand(serve.Cmd(app))
	rootCmd.AddCommand(version.Cmd(app))

	if err := rootCmd.Execute(); err != nil {
		logger.Log().Infof("An error occurred: %s", err.Error())
		os.Exit(1)
	}
}
