package cli

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/skiff-ml/skiff/pkg/docker"
	"github.com/skiff-ml/skiff/pkg/util/console"
)

func newBuildCommand() *cobra.Command {
	flags := &buildFlags{}

	cmd := &cobra.Command{
		Use:   "build [MODULE_OR_SCRIPT]",
		Short: "Build an image from the current directory",
		Long: `Build an image containing the current directory's code and dependencies.
When a module or script is given, it is copied in and declared as the
image's entrypoint. The image ID is printed on stdout.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			mode := flags.mode()
			opts, err := flags.options(mode)
			if err != nil {
				return err
			}
			if len(args) > 0 {
				opts.Package = resolvePackage(args[0])
			}

			start := time.Now()
			id, err := docker.NewClient().Build(mode, opts)
			if err != nil {
				return err
			}

			console.Infof("Successfully built image (build started %s)", console.FormatTime(start))
			console.Output(string(id))
			return nil
		},
	}
	flags.register(cmd.Flags())
	return cmd
}
