package config

import (
	"fmt"
	"os"
	"os/user"

	homedir "github.com/mitchellh/go-homedir"
)

// HostEnv is the host identity and location a build or run composes
// against: numeric uid/gid, user name, home directory, current working
// directory, and the user's preferred shell. It is captured once per
// invocation and passed around explicitly so composition stays
// deterministic and testable without a real host.
type HostEnv struct {
	UID      int
	GID      int
	Username string
	Home     string
	Cwd      string
	Shell    string // value of $SHELL, may be empty
}

// CurrentHostEnv reads the ambient host environment. This is the only place
// the pipeline touches process identity or the working directory.
func CurrentHostEnv() (HostEnv, error) {
	u, err := user.Current()
	if err != nil {
		return HostEnv{}, fmt.Errorf("Failed to look up current user: %w", err)
	}
	home, err := homedir.Dir()
	if err != nil {
		return HostEnv{}, fmt.Errorf("Failed to locate home directory: %w", err)
	}
	cwd, err := os.Getwd()
	if err != nil {
		return HostEnv{}, err
	}

	return HostEnv{
		UID:      os.Getuid(),
		GID:      os.Getgid(),
		Username: u.Username,
		Home:     home,
		Cwd:      cwd,
		Shell:    os.Getenv("SHELL"),
	}, nil
}

// Owner renders the uid:gid pair used by COPY --chown and USER directives.
func (h HostEnv) Owner() string {
	return fmt.Sprintf("%d:%d", h.UID, h.GID)
}

// DefaultShell returns the user's shell, falling back to /bin/bash.
func (h HostEnv) DefaultShell() string {
	if h.Shell != "" {
		return h.Shell
	}
	return DefaultShellPath
}
