package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
)

// DefaultServer is used until a server is saved or passed by flag.
const DefaultServer = "http://localhost:8080"

// Config is what pinctl remembers between runs.
type Config struct {
	Server    string    `toml:"server"`
	Username  string    `toml:"username,omitempty"`
	Token     string    `toml:"token,omitempty"`
	ExpiresAt time.Time `toml:"expires_at"`
}

// LoggedIn reports whether a token is saved.
func (c Config) LoggedIn() bool { return c.Token != "" }

// ConfigPath returns the config file location, checking PINCTL_CONFIG first
// and falling back to ~/.config/pinctl/config.toml.
func ConfigPath() (string, error) {
	if path := os.Getenv("PINCTL_CONFIG"); path != "" {
		return path, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	return filepath.Join(homeDir, ".config", "pinctl", "config.toml"), nil
}

// ReadConfig decodes the config at path. A missing file yields the defaults.
func ReadConfig(path string) (Config, error) {
	cfg := Config{Server: DefaultServer}

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Config{Server: DefaultServer}, nil
		}
		return Config{}, fmt.Errorf("reading config from %s: %w", path, err)
	}
	if cfg.Server == "" {
		cfg.Server = DefaultServer
	}
	return cfg, nil
}

// WriteConfig encodes cfg to path. The file holds a bearer token, so it is
// only readable by the owner.
func WriteConfig(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}
	defer f.Close()

	if err := toml.NewEncoder(f).Encode(cfg); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}
	return nil
}
