// Package docker drives the docker CLI: building images from a composed
// Dockerfile, recovering image IDs from build output, tagging and pushing,
// and running containers in batch, interactive, and notebook modes.
package docker

import (
	"os"
	"os/exec"
	"strings"

	"github.com/skiff-ml/skiff/pkg/util/console"
)

// Command is the boundary to the docker executable. Wrapping it in an
// interface lets tests script the engine instead of spawning processes.
type Command interface {
	// Stream runs docker with args, wiring the process to the caller's
	// terminal so output appears live. Blocks until the process exits.
	Stream(args []string) error

	// Output runs docker with args, feeding stdin to the process and
	// returning its combined stdout and stderr.
	Output(stdin string, args []string) (string, error)
}

type cliCommand struct{}

func (cliCommand) Stream(args []string) error {
	cmd := exec.Command("docker", args...)
	cmd.Env = os.Environ()
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	console.Debug("$ " + strings.Join(cmd.Args, " "))
	return cmd.Run()
}

func (cliCommand) Output(stdin string, args []string) (string, error) {
	cmd := exec.Command("docker", args...)
	cmd.Env = os.Environ()
	if stdin != "" {
		cmd.Stdin = strings.NewReader(stdin)
	}

	console.Debug("$ " + strings.Join(cmd.Args, " "))
	out, err := cmd.CombinedOutput()
	return string(out), err
}

// Client is the handle callers use to build, push, and run images.
type Client struct {
	command Command
}

func NewClient() *Client {
	return &Client{command: cliCommand{}}
}
