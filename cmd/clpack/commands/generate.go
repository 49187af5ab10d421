package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/clpack/internal/adapters/telemetry/progrock"
	"go.trai.ch/clpack/internal/app"
)

func (c *CLI) newGenerateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Convert kernel sources into embeddable header files",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			src, _ := cmd.Flags().GetString("src")
			dst, _ := cmd.Flags().GetString("dst")
			force, _ := cmd.Flags().GetBool("force")
			progress, _ := cmd.Flags().GetBool("progress")

			if progress {
				c.app.WithTelemetry(progrock.New())
			}

			return c.app.Run(cmd.Context(), app.RunOptions{
				Src:   src,
				Dst:   dst,
				Force: force,
			})
		},
	}

	cmd.Flags().String("src", "", "Directory to process (defaults to the configured source directory)")
	cmd.Flags().String("dst", "", "Directory to save artifacts to (defaults to the configured output directory)")
	cmd.Flags().BoolP("force", "f", false, "Regenerate all artifacts, bypassing recorded state")
	cmd.Flags().BoolP("progress", "p", false, "Show live per-kernel progress")

	return cmd
}
