package cli

import (
	"github.com/spf13/cobra"

	"github.com/skiff-ml/skiff/pkg/config"
	"github.com/skiff-ml/skiff/pkg/docker"
	"github.com/skiff-ml/skiff/pkg/util/console"
)

func newShellCommand() *cobra.Command {
	flags := &buildFlags{}
	var imageFlag string
	var dockerArgs []string
	var shellFlag string
	var bare bool

	cmd := &cobra.Command{
		Use:   "shell",
		Short: "Start an interactive shell inside the container environment",
		Long: `Start a live shell with all dependencies installed, the current directory
mounted as the working directory, and (unless --bare) your home directory
mounted so shell profiles and credentials carry over.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !console.IsTerminal() {
				console.Warn("stdin is not a terminal; the shell will exit immediately")
			}

			mode := flags.mode()
			opts, err := flags.options(mode)
			if err != nil {
				return err
			}

			return docker.NewClient().RunInteractive(mode, docker.InteractiveOptions{
				RunOptions: docker.RunOptions{
					Build: opts,
					Image: docker.ImageID(imageFlag),
					Args:  dockerArgs,
				},
				DisableHomeMount: bare,
				Shell:            shellFlag,
			})
		},
	}
	flags.register(cmd.Flags())
	cmd.Flags().StringVar(&imageFlag, "image", "", "Run this image ID instead of building one")
	cmd.Flags().StringArrayVar(&dockerArgs, "docker-run-arg", nil, "Extra argument to pass to docker run (repeatable)")
	cmd.Flags().StringVar(&shellFlag, "shell", "", "Shell to install and run (default $SHELL, or "+config.DefaultShellPath+" with --bare)")
	cmd.Flags().BoolVar(&bare, "bare", false, "Don't mount the home directory")
	return cmd
}
