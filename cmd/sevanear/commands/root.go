package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"sevanear/internal/app"
	"sevanear/internal/domain"
	"sevanear/internal/services/browser"
)

var (
	cfgFile  string
	apiURL   string
	fixture  bool
	timeout  time.Duration
	logLevel string

	appCfg app.Config
	appCtx *app.Wire
)

func Execute() error {
	root := &cobra.Command{
		Use:          "sevanear",
		Short:        "Find community-aid services near hospitals",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := app.Load(cfgFile)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("api-url") {
				cfg.APIURL = apiURL
			}
			if cmd.Flags().Changed("fixture") {
				cfg.Fixture = fixture
			}
			if cmd.Flags().Changed("timeout") {
				cfg.Timeout = timeout
			}
			if cmd.Flags().Changed("log-level") {
				cfg.Log.Level = logLevel
			}
			appCfg = cfg

			// Line-oriented commands have no screen to drive; the map
			// centering side effect prints instead. The browse command
			// assembles its own wire around the terminal UI.
			appCtx, err = app.NewWire(cfg, nil, browser.MapFunc(func(at domain.Coordinate) {
				fmt.Printf("Map centered at %.4f, %.4f\n", at.Latitude, at.Longitude)
			}))
			return err
		},
	}

	root.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (optional)")
	root.PersistentFlags().StringVar(&apiURL, "api-url", "", "backend base URL")
	root.PersistentFlags().BoolVar(&fixture, "fixture", false, "use canned sample data instead of the backend")
	root.PersistentFlags().DurationVar(&timeout, "timeout", 0, "HTTP client timeout (0 keeps the transport default)")
	root.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (debug, info, warn, error)")

	root.AddCommand(
		hospitalsCmd(),
		serviceTypesCmd(),
		searchCmd(),
		nearbyCmd(),
		showCmd(),
		addCmd(),
		browseCmd(),
	)
	return root.Execute()
}
