package cmd

import (
	"fmt"

	"github.com/mvbarbosa/session-sweep/internal/adapters/icons"
	"github.com/spf13/cobra"
)

func newIconsCmd() *cobra.Command {
	var outDir string

	cmd := &cobra.Command{
		Use:   "icons",
		Short: "Generate the capture extension's PNG icons",
		RunE: func(cmd *cobra.Command, _ []string) error {
			paths, err := icons.Generate(outDir)
			if err != nil {
				return err
			}

			for _, path := range paths {
				if _, err := fmt.Fprintf(cmd.OutOrStdout(), "created %s\n", path); err != nil {
					return err
				}
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&outDir, "out", ".", "Directory to write the icons into")

	return cmd
}
