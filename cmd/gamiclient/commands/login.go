package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"gamiclient/internal/crypto"
)

// loginCmd performs the handshake and stores the session for later commands.
func loginCmd() *cobra.Command {
	var phone, password string
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Authenticate and store an encrypted play session",
		RunE: func(cmd *cobra.Command, args []string) error {
			if password == "" {
				p, err := readSecret("Password: ")
				if err != nil {
					return err
				}
				password = p
			}
			pass, err := sessionPassphrase()
			if err != nil {
				return err
			}

			env, err := appCtx.Login(cmd.Context(), phone, password, pass)
			if err != nil {
				return err
			}
			if done, err := printJSON(env); done || err != nil {
				return err
			}
			if err := envError(env.Status, env.Error); err != nil {
				return err
			}
			s := env.Content
			fmt.Printf("Session established. game=%s campaign=%s player=%s status=%s token=%s\n",
				s.GameID, s.CampaignID, s.Player, s.Status, crypto.TokenFingerprint(s.PersonalToken))
			return nil
		},
	}
	cmd.Flags().StringVar(&phone, "phone", "", "phone number you registered with")
	cmd.Flags().StringVar(&password, "password", "", "account password (prompted when omitted)")
	_ = cmd.MarkFlagRequired("phone")
	return cmd
}

func logoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Forget the stored play session",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := appCtx.Logout(); err != nil {
				return err
			}
			fmt.Println("Session removed")
			return nil
		},
	}
}
