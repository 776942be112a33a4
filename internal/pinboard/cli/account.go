package cli

import (
	"fmt"
	"time"

	"github.com/aussiebroadwan/pinboard/pkg/pinsdk"
	"github.com/spf13/cobra"
)

func newRegisterCmd(st *state) *cobra.Command {
	var email, password string

	cmd := &cobra.Command{
		Use:   "register <username>",
		Short: "Create an account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if password == "" {
				pw, err := promptPassword(cmd.OutOrStdout(), "Choose a password: ")
				if err != nil {
					return err
				}
				password = pw
			}

			user, err := st.client().Register(cmd.Context(), pinsdk.RegisterRequest{
				Username: args[0],
				Email:    email,
				Password: password,
			})
			if err != nil {
				return err
			}

			if st.asJSON {
				return printJSON(cmd.OutOrStdout(), user)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Registered %s\n", user.Username)
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "email address")
	cmd.Flags().StringVar(&password, "password", "", "password (prompted when omitted)")
	_ = cmd.MarkFlagRequired("email")
	return cmd
}

func newLoginCmd(st *state) *cobra.Command {
	var password string

	cmd := &cobra.Command{
		Use:   "login <username>",
		Short: "Log in and save the session",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if password == "" {
				pw, err := promptPassword(cmd.OutOrStdout(), "Password: ")
				if err != nil {
					return err
				}
				password = pw
			}

			session, err := st.client().Authenticate(cmd.Context(), args[0], password)
			if err != nil {
				return err
			}

			st.cfg.Username = session.Username()
			st.cfg.Token = session.AccessToken()
			st.cfg.ExpiresAt = session.ExpiresAt().UTC()
			if err := st.save(); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Logged in as %s (session valid until %s)\n",
				session.Username(), session.ExpiresAt().Local().Format(time.RFC1123))
			return nil
		},
	}

	cmd.Flags().StringVar(&password, "password", "", "password (prompted when omitted)")
	return cmd
}

func newLogoutCmd(st *state) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Forget the saved session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			st.cfg.Username = ""
			st.cfg.Token = ""
			st.cfg.ExpiresAt = time.Time{}
			if err := st.save(); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Logged out")
			return nil
		},
	}
}

func newWhoamiCmd(st *state) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the logged-in user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := st.session()
			if err != nil {
				return err
			}

			// Round-trips the token so a revoked or foreign session shows up here.
			profile, err := session.GetProfile(cmd.Context(), session.Username())
			if err != nil {
				return err
			}

			if st.asJSON {
				return printJSON(cmd.OutOrStdout(), profile)
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s on %s\n", profile.Username, st.cfg.Server)
			fmt.Fprintf(out, "Session expires %s\n", session.ExpiresAt().Local().Format(time.RFC1123))
			return nil
		},
	}
}
