package commands

import (
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"gamiclient/internal/app"
)

var (
	home       string
	host       string
	gameToken  string
	passphrase string
	logLevel   string
	jsonOutput bool

	cfg    app.Config
	appCtx *app.App
)

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "gamiclient",
		Short:        "Client for the gamification platform API",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if home == "" {
				dir, err := os.UserHomeDir()
				if err != nil {
					return err
				}
				home = filepath.Join(dir, ".gamiclient")
			}
			if err := os.MkdirAll(home, 0o700); err != nil {
				return err
			}

			c, err := app.Load(home)
			if err != nil {
				return err
			}
			if host != "" {
				c.Host = host
			}
			if gameToken != "" {
				c.GameToken = gameToken
			}
			if passphrase != "" {
				c.Passphrase = passphrase
			}
			if logLevel != "" {
				c.LogLevel = logLevel
			}
			if err := c.Validate(); err != nil {
				return err
			}

			level, err := app.ParseLevel(c.LogLevel)
			if err != nil {
				return err
			}
			logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
			slog.SetDefault(logger)

			w, err := app.NewWire(c, nil, logger)
			if err != nil {
				return err
			}
			cfg = c
			appCtx = app.New(w)
			return nil
		},
	}

	root.PersistentFlags().StringVar(&home, "home", "", "config dir (default ~/.gamiclient)")
	root.PersistentFlags().StringVar(&host, "host", "", "platform base URL (e.g. https://play.example.com)")
	root.PersistentFlags().StringVar(&gameToken, "game-token", "", "application token of the game")
	root.PersistentFlags().StringVarP(&passphrase, "passphrase", "p", "", "passphrase protecting the stored session")
	root.PersistentFlags().StringVar(&logLevel, "log-level", "", "debug, info, warn or error")
	root.PersistentFlags().BoolVar(&jsonOutput, "json", false, "print raw envelopes as JSON")

	root.AddCommand(
		loginCmd(),
		logoutCmd(),
		registerCmd(),
		statusCmd(),
		setStatusCmd(),
		assetsCmd(),
		assetContentCmd(),
		setFieldCmd(),
	)
	return root
}
