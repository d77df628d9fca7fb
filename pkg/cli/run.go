package cli

import (
	"github.com/spf13/cobra"

	"github.com/skiff-ml/skiff/pkg/docker"
)

func newRunCommand() *cobra.Command {
	flags := &buildFlags{}
	var imageFlag string
	var dockerArgs []string

	cmd := &cobra.Command{
		Use:   "run MODULE_OR_SCRIPT [ARG...]",
		Short: "Run a module or script inside a freshly built container",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			mode := flags.mode()
			opts, err := flags.options(mode)
			if err != nil {
				return err
			}
			opts.Package = resolvePackage(args[0])

			return docker.NewClient().Run(mode, docker.RunOptions{
				Build:      opts,
				Image:      docker.ImageID(imageFlag),
				Args:       dockerArgs,
				ScriptArgs: args[1:],
			})
		},
	}
	flags.register(cmd.Flags())
	cmd.Flags().StringVar(&imageFlag, "image", "", "Run this image ID instead of building one")
	cmd.Flags().StringArrayVar(&dockerArgs, "docker-run-arg", nil, "Extra argument to pass to docker run (repeatable)")

	// Flags after the first argument belong to the entrypoint.
	cmd.Flags().SetInterspersed(false)
	return cmd
}
