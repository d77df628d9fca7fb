package cli

import (
	"github.com/spf13/cobra"

	"github.com/skiff-ml/skiff/pkg/docker"
)

func newNotebookCommand() *cobra.Command {
	flags := &buildFlags{}
	var imageFlag string
	var dockerArgs []string
	var bare bool
	var port int
	var lab bool
	var jupyterVersion string

	cmd := &cobra.Command{
		Use:   "notebook",
		Short: "Start a notebook server inside the container environment",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			mode := flags.mode()
			opts, err := flags.options(mode)
			if err != nil {
				return err
			}

			return docker.NewClient().RunNotebook(mode, docker.NotebookOptions{
				InteractiveOptions: docker.InteractiveOptions{
					RunOptions: docker.RunOptions{
						Build: opts,
						Image: docker.ImageID(imageFlag),
						Args:  dockerArgs,
					},
					DisableHomeMount: bare,
				},
				Port:           port,
				Lab:            lab,
				JupyterVersion: jupyterVersion,
			})
		},
	}
	flags.register(cmd.Flags())
	cmd.Flags().StringVar(&imageFlag, "image", "", "Run this image ID instead of building one")
	cmd.Flags().StringArrayVar(&dockerArgs, "docker-run-arg", nil, "Extra argument to pass to docker run (repeatable)")
	cmd.Flags().BoolVar(&bare, "bare", false, "Don't mount the home directory")
	cmd.Flags().IntVarP(&port, "port", "p", docker.DefaultNotebookPort, "Port for the notebook server, mapped 1:1 to the host")
	cmd.Flags().BoolVar(&lab, "lab", false, "Start jupyter lab instead of jupyter notebook")
	cmd.Flags().StringVar(&jupyterVersion, "jupyter-version", "", "Exact jupyterlab version to install")
	return cmd
}
