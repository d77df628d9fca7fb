package docker

import (
	"fmt"

	"github.com/skiff-ml/skiff/pkg/config"
	"github.com/skiff-ml/skiff/pkg/errors"
)

const (
	// notebookInterpreter runs the notebook server. Fixed: the base images
	// install their Python environment here.
	notebookInterpreter = "/opt/venv/bin/python"

	// DefaultNotebookPort is used when the caller doesn't pick one.
	DefaultNotebookPort = 8888
)

// RunOptions configures a batch container run.
type RunOptions struct {
	Build      config.Options // used to build an image when Image is unset
	Image      ImageID        // run this image instead of building one
	Args       []string       // extra docker run arguments
	ScriptArgs []string       // arguments passed through to the entrypoint
}

// InteractiveOptions layers a live terminal session over a batch run.
type InteractiveOptions struct {
	RunOptions

	// Workdir is the mount point for the current directory inside the
	// container. Defaults to config.DefaultWorkdir.
	Workdir string

	// DisableHomeMount stops the home directory being mounted into the
	// container. Mounted by default so shell profiles and settings work.
	DisableHomeMount bool

	// Shell to install into the image and default the entrypoint to.
	// When empty: the caller's shell if home is mounted (a custom shell is
	// useless without its profile), the stock fallback otherwise.
	Shell string

	// Entrypoint overrides the command run in the container. Defaults to
	// the resolved shell.
	Entrypoint     string
	EntrypointArgs []string
}

// NotebookOptions layers a notebook server over an interactive run.
type NotebookOptions struct {
	InteractiveOptions

	Port           int  // host and container port, defaults to DefaultNotebookPort
	Lab            bool // start jupyter lab instead of jupyter notebook
	JupyterVersion string
}

// runArgs builds the leading docker run argument vector: the GPU runtime
// when the mode calls for it, then host IPC sharing, then caller arguments.
func runArgs(mode config.Mode, extra []string) []string {
	args := []string{"run"}
	if mode == config.GPU {
		args = append(args, "--runtime", "nvidia")
	}
	args = append(args, "--ipc", "host")
	return append(args, extra...)
}

// Run resolves an image, building one from opts.Build when none is
// supplied, and runs it synchronously. Output streams live to the
// terminal; nothing is captured. Blocks until the container exits.
func (c *Client) Run(mode config.Mode, opts RunOptions) error {
	env, err := config.CurrentHostEnv()
	if err != nil {
		return errors.InvalidOptions("%s", err)
	}
	return c.run(mode, opts, env)
}

func (c *Client) run(mode config.Mode, opts RunOptions, env config.HostEnv) error {
	image := opts.Image
	if image == "" {
		built, err := c.build(mode, opts.Build, env)
		if err != nil {
			return err
		}
		image = built
	}

	args := runArgs(mode, opts.Args)
	args = append(args, string(image))
	args = append(args, opts.ScriptArgs...)

	if err := c.command.Stream(args); err != nil {
		return errors.EngineFailure(err, "")
	}
	return nil
}

// RunInteractive starts a live shell with the current directory mounted as
// the working directory and, by default, the home directory mounted too.
// The resolved shell is forwarded into the build so it can be installed.
func (c *Client) RunInteractive(mode config.Mode, opts InteractiveOptions) error {
	env, err := config.CurrentHostEnv()
	if err != nil {
		return errors.InvalidOptions("%s", err)
	}
	return c.runInteractive(mode, opts, env)
}

func (c *Client) runInteractive(mode config.Mode, opts InteractiveOptions, env config.HostEnv) error {
	workdir := opts.Workdir
	if workdir == "" {
		workdir = config.DefaultWorkdir
	}
	shell := resolveShell(opts, env)
	entrypoint := opts.Entrypoint
	if entrypoint == "" {
		entrypoint = shell
	}

	build := opts.Build
	build.Workdir = workdir
	build.ShellCmd = shell

	return c.run(mode, RunOptions{
		Build:      build,
		Image:      opts.Image,
		Args:       interactiveArgs(opts, env, workdir, entrypoint),
		ScriptArgs: opts.EntrypointArgs,
	}, env)
}

// RunNotebook starts a notebook server in the container, with the chosen
// port mapped 1:1 to the host and the notebook fragment injected into the
// underlying build.
func (c *Client) RunNotebook(mode config.Mode, opts NotebookOptions) error {
	env, err := config.CurrentHostEnv()
	if err != nil {
		return errors.InvalidOptions("%s", err)
	}
	return c.runNotebook(mode, opts, env)
}

func (c *Client) runNotebook(mode config.Mode, opts NotebookOptions, env config.HostEnv) error {
	port := opts.Port
	if port == 0 {
		port = DefaultNotebookPort
	}

	interactive := opts.InteractiveOptions
	// The notebook server owns the entrypoint; caller overrides don't apply.
	interactive.Entrypoint = notebookInterpreter
	interactive.EntrypointArgs = notebookEntrypointArgs(port, opts.Lab)
	interactive.Args = append([]string{"-p", fmt.Sprintf("%d:%d", port, port)}, opts.Args...)
	interactive.Build.InjectNotebook = true
	interactive.Build.JupyterVersion = opts.JupyterVersion

	return c.runInteractive(mode, interactive, env)
}

// resolveShell picks the shell to install and default the entrypoint to.
func resolveShell(opts InteractiveOptions, env config.HostEnv) string {
	if opts.Shell != "" {
		return opts.Shell
	}
	if opts.DisableHomeMount {
		return config.DefaultShellPath
	}
	return env.DefaultShell()
}

// interactiveArgs assembles the docker run arguments for a live session:
// current directory mounted at the workdir, host uid:gid, an interactive
// terminal, an explicit entrypoint, and optionally the home directory.
func interactiveArgs(opts InteractiveOptions, env config.HostEnv, workdir, entrypoint string) []string {
	args := []string{
		"-w", workdir,
		"-u", env.Owner(),
		"-v", env.Cwd + ":" + workdir,
		"-it",
		"--entrypoint", entrypoint,
	}
	if !opts.DisableHomeMount {
		args = append(args, "-v", env.Home+":/home/"+env.Username)
	}
	return append(args, opts.Args...)
}

func notebookEntrypointArgs(port int, lab bool) []string {
	flavor := "notebook"
	if lab {
		flavor = "lab"
	}
	return []string{
		"-m", "jupyter", flavor,
		"--ip=0.0.0.0",
		fmt.Sprintf("--port=%d", port),
		"--no-browser",
	}
}
