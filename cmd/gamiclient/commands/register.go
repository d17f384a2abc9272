package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"gamiclient/internal/domain"
)

func registerCmd() *cobra.Command {
	var req domain.RegisterRequest
	cmd := &cobra.Command{
		Use:   "register",
		Short: "Register a new player for the game",
		RunE: func(cmd *cobra.Command, args []string) error {
			if req.Password == "" {
				p, err := readSecret("Password: ")
				if err != nil {
					return err
				}
				req.Password = p
			}

			env := appCtx.RegisterPlayer(cmd.Context(), req)
			if done, err := printJSON(env); done || err != nil {
				return err
			}
			if err := envError(env.Status, env.Error); err != nil {
				return err
			}
			if !env.Content {
				return fmt.Errorf("registration refused by the platform")
			}
			fmt.Println("Player registered")
			return nil
		},
	}
	cmd.Flags().StringVar(&req.FirstName, "first-name", "", "first name")
	cmd.Flags().StringVar(&req.LastName, "last-name", "", "last name")
	cmd.Flags().StringVar(&req.Company, "company", "", "company")
	cmd.Flags().StringVar(&req.Phone, "phone", "", "phone number used to log in")
	cmd.Flags().StringVar(&req.Password, "password", "", "account password (prompted when omitted)")
	_ = cmd.MarkFlagRequired("phone")
	return cmd
}
