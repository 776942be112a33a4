package cli

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/aussiebroadwan/pinboard/pkg/pinsdk"
	"github.com/spf13/cobra"
)

func newPostCmd(st *state) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "post",
		Short: "Publish, read and search posts",
	}
	cmd.AddCommand(
		newPostCreateCmd(st),
		newPostShowCmd(st),
		newPostEditCmd(st),
		newPostDeleteCmd(st),
		newPostListCmd(st),
		newPostSearchCmd(st),
	)
	return cmd
}

func newPostCreateCmd(st *state) *cobra.Command {
	var title, body string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Publish a post",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := st.session()
			if err != nil {
				return err
			}

			id, err := session.CreatePost(cmd.Context(), pinsdk.PostRequest{Title: title, Body: body})
			if err != nil {
				return err
			}

			if st.asJSON {
				return printJSON(cmd.OutOrStdout(), pinsdk.CreatePostResponse{ID: id})
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created post %s\n", id)
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "post title")
	cmd.Flags().StringVar(&body, "body", "", "post body")
	return cmd
}

func newPostShowCmd(st *state) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show a post",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				post *pinsdk.PostResponse
				err  error
			)
			if session := st.optionalSession(); session != nil {
				post, err = session.GetPost(cmd.Context(), args[0])
			} else {
				post, err = st.client().GetPost(cmd.Context(), args[0])
			}
			if err != nil {
				return err
			}

			if st.asJSON {
				return printJSON(cmd.OutOrStdout(), post)
			}
			printPost(cmd.OutOrStdout(), *post)
			return nil
		},
	}
}

func newPostEditCmd(st *state) *cobra.Command {
	var title, body string

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Replace the title and body of your post",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := st.session()
			if err != nil {
				return err
			}

			if err := session.UpdatePost(cmd.Context(), args[0], pinsdk.PostRequest{Title: title, Body: body}); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated post %s\n", args[0])
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "new title")
	cmd.Flags().StringVar(&body, "body", "", "new body")
	return cmd
}

func newPostDeleteCmd(st *state) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete your post",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := st.session()
			if err != nil {
				return err
			}

			if err := session.DeletePost(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted post %s\n", args[0])
			return nil
		},
	}
}

func newPostListCmd(st *state) *cobra.Command {
	return &cobra.Command{
		Use:   "list [username]",
		Short: "List a user's posts, newest first (default: yours)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			username := st.cfg.Username
			if len(args) == 1 {
				username = args[0]
			}
			if username == "" {
				return errNotLoggedIn
			}

			var (
				posts []pinsdk.PostResponse
				err   error
			)
			if session := st.optionalSession(); session != nil {
				posts, err = session.ListUserPosts(cmd.Context(), username)
			} else {
				posts, err = st.client().ListUserPosts(cmd.Context(), username)
			}
			if err != nil {
				return err
			}
			return printPosts(cmd.OutOrStdout(), st.asJSON, posts)
		},
	}
}

func newPostSearchCmd(st *state) *cobra.Command {
	return &cobra.Command{
		Use:   "search <terms...>",
		Short: "Full-text search, best matches first",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			term := strings.Join(args, " ")

			var (
				posts []pinsdk.PostResponse
				err   error
			)
			if session := st.optionalSession(); session != nil {
				posts, err = session.SearchPosts(cmd.Context(), term)
			} else {
				posts, err = st.client().SearchPosts(cmd.Context(), term)
			}
			if err != nil {
				return err
			}
			return printPosts(cmd.OutOrStdout(), st.asJSON, posts)
		},
	}
}

func printPosts(w io.Writer, asJSON bool, posts []pinsdk.PostResponse) error {
	if asJSON {
		return printJSON(w, posts)
	}
	if len(posts) == 0 {
		fmt.Fprintln(w, "No posts")
		return nil
	}
	for i, p := range posts {
		if i > 0 {
			fmt.Fprintln(w)
		}
		printPost(w, p)
	}
	return nil
}

func printPost(w io.Writer, p pinsdk.PostResponse) {
	owner := ""
	if p.IsOwner {
		owner = " (yours)"
	}
	fmt.Fprintf(w, "%s  %s%s\n", p.ID, p.Title, owner)
	fmt.Fprintf(w, "by %s on %s\n", p.Author.Username, p.CreatedAt.Local().Format(time.DateTime))
	fmt.Fprintln(w, p.Body)
}
