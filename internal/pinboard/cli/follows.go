package cli

import (
	"fmt"
	"io"

	"github.com/aussiebroadwan/pinboard/pkg/pinsdk"
	"github.com/spf13/cobra"
)

func newFollowCmd(st *state) *cobra.Command {
	return &cobra.Command{
		Use:   "follow <username>",
		Short: "Follow a user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := st.session()
			if err != nil {
				return err
			}
			if err := session.Follow(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Now following %s\n", args[0])
			return nil
		},
	}
}

func newUnfollowCmd(st *state) *cobra.Command {
	return &cobra.Command{
		Use:   "unfollow <username>",
		Short: "Stop following a user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := st.session()
			if err != nil {
				return err
			}
			if err := session.Unfollow(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "No longer following %s\n", args[0])
			return nil
		},
	}
}

func newFollowersCmd(st *state) *cobra.Command {
	return &cobra.Command{
		Use:   "followers [username]",
		Short: "List who follows a user (default: you)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			username, err := st.target(args)
			if err != nil {
				return err
			}
			users, err := st.client().ListFollowers(cmd.Context(), username)
			if err != nil {
				return err
			}
			return printSummaries(cmd.OutOrStdout(), st.asJSON, users)
		},
	}
}

func newFollowingCmd(st *state) *cobra.Command {
	return &cobra.Command{
		Use:   "following [username]",
		Short: "List who a user follows (default: you)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			username, err := st.target(args)
			if err != nil {
				return err
			}
			users, err := st.client().ListFollowing(cmd.Context(), username)
			if err != nil {
				return err
			}
			return printSummaries(cmd.OutOrStdout(), st.asJSON, users)
		},
	}
}

func newProfileCmd(st *state) *cobra.Command {
	return &cobra.Command{
		Use:   "profile [username]",
		Short: "Show a user's profile (default: you)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			username, err := st.target(args)
			if err != nil {
				return err
			}

			var profile *pinsdk.ProfileResponse
			if session := st.optionalSession(); session != nil {
				profile, err = session.GetProfile(cmd.Context(), username)
			} else {
				profile, err = st.client().GetProfile(cmd.Context(), username)
			}
			if err != nil {
				return err
			}

			if st.asJSON {
				return printJSON(cmd.OutOrStdout(), profile)
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, profile.Username)
			fmt.Fprintf(out, "%d posts, %d followers, %d following\n",
				profile.Counts.Posts, profile.Counts.Followers, profile.Counts.Following)
			switch {
			case profile.IsSelf:
				fmt.Fprintln(out, "This is you")
			case profile.IsFollowing:
				fmt.Fprintln(out, "You follow this user")
			}
			return nil
		},
	}
}

// target picks the username argument, defaulting to the logged-in user.
func (s *state) target(args []string) (string, error) {
	if len(args) == 1 {
		return args[0], nil
	}
	if s.cfg.Username == "" {
		return "", errNotLoggedIn
	}
	return s.cfg.Username, nil
}

func printSummaries(w io.Writer, asJSON bool, users []pinsdk.ProfileSummary) error {
	if asJSON {
		return printJSON(w, users)
	}
	if len(users) == 0 {
		fmt.Fprintln(w, "Nobody")
		return nil
	}
	for _, u := range users {
		fmt.Fprintln(w, u.Username)
	}
	return nil
}
