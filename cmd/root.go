package cmd

import "github.com/spf13/cobra"

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "ssweep",
		Short:         "Session Sweeper (ssweep): deduplicate JSON session files",
		Long:          "ssweep scans a directory of JSON session files, keeps the newest file per session identifier and removes the rest, either once or on a polling interval. It also generates the capture extension's PNG icons.",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	app, err := wireApp()
	if err != nil {
		rootCmd.RunE = func(_ *cobra.Command, _ []string) error {
			return err
		}
		return rootCmd
	}

	rootCmd.AddCommand(
		newVersionCmd(),
		newRunCmd(app),
		newIconsCmd(),
		newConfigCmd(app),
	)

	return rootCmd
}
