package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"gamiclient/internal/domain"
)

func statusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the session's activity status",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := resume(); err != nil {
				return err
			}
			env := appCtx.FetchStatus(cmd.Context())
			if env.OK() {
				if err := appCtx.Persist(cfg.Passphrase); err != nil {
					return err
				}
			}
			if done, err := printJSON(env); done || err != nil {
				return err
			}
			if err := envError(env.Status, env.Error); err != nil {
				return err
			}
			fmt.Printf("Status: %s (last modified %s)\n", env.Content.Status, env.Content.LastModified)
			return nil
		},
	}
}

// set-status <status>: status is enrolled, started, completed or a raw code.
func setStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set-status <status>",
		Short: "Update the session's activity status",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			status, err := domain.ParseActivityStatus(args[0])
			if err != nil {
				return err
			}
			if err := resume(); err != nil {
				return err
			}

			env := appCtx.SetCompletionStatus(cmd.Context(), status)
			if env.OK() {
				if err := appCtx.Persist(cfg.Passphrase); err != nil {
					return err
				}
			}
			if done, err := printJSON(env); done || err != nil {
				return err
			}
			if err := envError(env.Status, env.Error); err != nil {
				return err
			}
			if !env.Content {
				fmt.Printf("Requested %s but the platform reports %s\n", status, appCtx.Session().Status)
				return nil
			}
			fmt.Printf("Status set to %s\n", status)
			return nil
		},
	}
}
