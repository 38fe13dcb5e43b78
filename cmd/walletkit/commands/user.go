package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"walletkit/internal/domain"
)

func registerCmd() *cobra.Command {
	var in domain.RegisterInput
	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create an account and start a session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			u, err := wire.Users.Register(cmd.Context(), in)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Registered %s (id %s)\n", u.Email, idOf(u.ID))
			return nil
		},
	}
	f := cmd.Flags()
	f.StringVar(&in.Name, "name", "", "full name")
	f.StringVar(&in.Email, "email", "", "email address")
	f.StringVar(&in.Phone, "phone", "", "phone number")
	f.StringVar(&in.Document, "document", "", "identity document number")
	f.StringVar(&in.Password, "password", "", "account password")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}

func logoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Forget the stored session token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := wire.Users.Logout(); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Logged out")
			return nil
		},
	}
}

// whoami reads the stored token's claims; the user record itself is only
// cached for the life of a process.
func whoamiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the current session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if _, ok, err := wire.Session.Token(); err != nil {
				return err
			} else if !ok {
				fmt.Fprintln(out, "Not logged in")
				return nil
			}
			claims, ok, err := wire.Session.Claims()
			if err != nil {
				return err
			}
			if !ok {
				fmt.Fprintln(out, "Logged in (opaque token)")
				return nil
			}
			fmt.Fprintf(out, "User: %s\n", claims.Subject)
			if claims.ExpiresAt != nil {
				state := "valid"
				if claims.Expired(time.Now()) {
					state = "expired"
				}
				fmt.Fprintf(out, "Expires: %s (%s)\n", date(claims.ExpiresAt), state)
			}
			return nil
		},
	}
}
