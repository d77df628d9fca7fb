package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/skiff-ml/skiff/pkg/global"
	"github.com/skiff-ml/skiff/pkg/util/console"
)

func NewRootCommand() (*cobra.Command, error) {
	rootCmd := cobra.Command{
		Use:     "skiff",
		Short:   "Build and run containerized research jobs",
		Version: fmt.Sprintf("%s (built %s)", global.Version, global.BuildTime),
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if global.Verbose {
				console.SetLevel(console.DebugLevel)
			}
			if !console.IsTTY(os.Stderr) {
				console.SetColor(false)
			}
			cmd.SilenceUsage = true
		},
		// Errors are printed by cmd/skiff/main.go
		SilenceErrors: true,
	}
	setPersistentFlags(&rootCmd)

	rootCmd.AddCommand(
		newBuildCommand(),
		newPushCommand(),
		newRunCommand(),
		newShellCommand(),
		newNotebookCommand(),
	)

	return &rootCmd, nil
}

func setPersistentFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().BoolVarP(&global.Verbose, "verbose", "v", false, "Verbose output")
}
