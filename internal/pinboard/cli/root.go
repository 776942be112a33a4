// Package cli implements pinctl, the command line client for a pinboard
// server.
package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/aussiebroadwan/pinboard/pkg/pinsdk"
	"github.com/spf13/cobra"
)

// errNotLoggedIn is returned by commands that need a saved session.
var errNotLoggedIn = errors.New("not logged in; run `pinctl login` first")

// state is shared by every command of one invocation.
type state struct {
	configPath string
	server     string
	asJSON     bool

	cfg Config
}

// NewRootCommand builds the pinctl command tree.
func NewRootCommand() *cobra.Command {
	st := &state{}

	root := &cobra.Command{
		Use:           "pinctl",
		Short:         "Command line client for pinboard",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return st.load()
		},
	}

	root.PersistentFlags().StringVar(&st.configPath, "config", "", "config file (default ~/.config/pinctl/config.toml)")
	root.PersistentFlags().StringVar(&st.server, "server", "", "pinboard server URL (overrides the saved one)")
	root.PersistentFlags().BoolVar(&st.asJSON, "json", false, "print responses as JSON")

	root.AddCommand(
		newRegisterCmd(st),
		newLoginCmd(st),
		newLogoutCmd(st),
		newWhoamiCmd(st),
		newPostCmd(st),
		newFollowCmd(st),
		newUnfollowCmd(st),
		newFollowersCmd(st),
		newFollowingCmd(st),
		newProfileCmd(st),
		newHealthCmd(st),
	)
	return root
}

// Execute runs pinctl and reports failures on stderr.
func Execute() int {
	root := NewRootCommand()
	if err := root.Execute(); err != nil {
		fmt.Fprintln(root.ErrOrStderr(), "Error:", describe(err))
		return 1
	}
	return 0
}

func (s *state) load() error {
	if s.configPath == "" {
		path, err := ConfigPath()
		if err != nil {
			return err
		}
		s.configPath = path
	}

	cfg, err := ReadConfig(s.configPath)
	if err != nil {
		return err
	}
	if s.server != "" {
		cfg.Server = s.server
	}
	s.cfg = cfg
	return nil
}

func (s *state) save() error {
	return WriteConfig(s.configPath, s.cfg)
}

func (s *state) client() *pinsdk.Client {
	return pinsdk.NewClient(s.cfg.Server)
}

// session resumes the saved session.
func (s *state) session() (*pinsdk.Session, error) {
	if !s.cfg.LoggedIn() {
		return nil, errNotLoggedIn
	}
	session := s.client().NewSessionFromToken(s.cfg.Token, s.cfg.Username, s.cfg.ExpiresAt)
	if session.Expired() {
		return nil, errors.New("session expired; run `pinctl login` again")
	}
	return session, nil
}

// optionalSession resumes the saved session when there is a valid one, so
// reads are personalised for logged-in users.
func (s *state) optionalSession() *pinsdk.Session {
	session, err := s.session()
	if err != nil {
		return nil
	}
	return session
}

// printJSON writes v as indented JSON.
func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// describe renders API failures with their reasons, one per line.
func describe(err error) string {
	var apiErr *pinsdk.APIError
	if !errors.As(err, &apiErr) {
		return err.Error()
	}
	if len(apiErr.Reasons) == 0 {
		return apiErr.Description
	}
	if len(apiErr.Reasons) == 1 {
		return apiErr.Reasons[0]
	}
	msg := "request rejected:"
	for _, r := range apiErr.Reasons {
		msg += "\n  - " + r
	}
	return msg
}
