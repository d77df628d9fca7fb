package cli

import (
	"github.com/spf13/cobra"

	"github.com/skiff-ml/skiff/pkg/docker"
	"github.com/skiff-ml/skiff/pkg/util/console"
)

func newPushCommand() *cobra.Command {
	flags := &buildFlags{}
	var imageFlag string

	cmd := &cobra.Command{
		Use:     "push PROJECT_ID",
		Short:   "Build an image and push it to the container registry",
		Example: `  skiff push my-research-project`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client := docker.NewClient()

			image := docker.ImageID(imageFlag)
			if image == "" {
				mode := flags.mode()
				opts, err := flags.options(mode)
				if err != nil {
					return err
				}
				image, err = client.Build(mode, opts)
				if err != nil {
					return err
				}
			}

			tag, err := client.Push(args[0], image)
			if err != nil {
				return err
			}
			console.Output(tag)
			return nil
		},
	}
	flags.register(cmd.Flags())
	cmd.Flags().StringVar(&imageFlag, "image", "", "Push this image ID instead of building one")
	return cmd
}
