package app

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/randtok/randtok/internal/config"
	"github.com/randtok/randtok/internal/logger"
	"github.com/randtok/randtok/internal/web"
)

func init() { //nolint:gochecknoinits
	serveCmd.Flags().StringVarP(&serveConfigPath, "config", "c", "", "Path to the config directory")
	serveCmd.Flags().BoolVar(&devMode, "dev", false, "Enable dev mode")

	rootCmd.AddCommand(serveCmd)
}

var (
	serveConfigPath string
	devMode         bool

	serveCmd = &cobra.Command{
		Use:   "serve",
		Short: "Start the randtok token http service",
		PreRun: func(_ *cobra.Command, _ []string) {
			var err error
			if cfg, err = config.ReadConfig(serveConfigPath); err != nil {
				panic(err)
			}

			if devMode {
				cfg.DevMode = true
			}
		},
		RunE: func(_ *cobra.Command, _ []string) error {
			if err := logger.Init(cfg.Log); err != nil {
				return err
			}

			service, err := web.New(&cfg)
			if err != nil {
				return err
			}

			go service.WaitShutdown()

			return service.Start(fmt.Sprintf(":%d", cfg.Webserver.Port))
		},
	}
)
