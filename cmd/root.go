package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "wfc",
	Short: "Wave Function Collapse procedural generation",
	Long: `wfc synthesizes new images from either a small exemplar (overlapping mode)
or an explicit tile set with adjacency rules (tiled mode).`,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
