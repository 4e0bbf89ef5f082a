package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rybkr/wfc/internal/overlapping"
)

var (
	overlapInput          string
	overlapOutput         string
	overlapSeed           uint32
	overlapWidth          int
	overlapHeight         int
	overlapPeriodicOutput bool
	overlapPeriodicInput  bool
	overlapN              int
	overlapGround         bool
	overlapSymmetry       int
	overlapSamples        uint32
	overlapTries          uint32
	overlapVerbose        bool
)

func init() {
	overlapCmd := &cobra.Command{
		Use:   "overlap",
		Short: "Generate images by extracting N×N patterns from an exemplar",
		Long: `overlap implements the overlapping mode of Wave Function Collapse:
it extracts N×N patterns from a small exemplar image, derives adjacency
rules from how those patterns overlap, and synthesizes a new image whose
every local neighborhood matches one seen in the exemplar.

Examples:
  wfc overlap --input flower.png --output out.png -n 3 --symmetry 8
  wfc overlap --input rooms.png --output out.png --ground --periodic-output`,
		RunE: runOverlap,
	}

	overlapCmd.Flags().StringVarP(&overlapInput, "input", "i", "", "Exemplar PNG path (required)")
	overlapCmd.Flags().StringVarP(&overlapOutput, "output", "o", "out.png", "Output PNG path (or prefix, for --samples > 1)")
	overlapCmd.Flags().Uint32Var(&overlapSeed, "seed", 42, "PRNG seed")
	overlapCmd.Flags().IntVar(&overlapWidth, "width", 48, "Output width in pixels")
	overlapCmd.Flags().IntVar(&overlapHeight, "height", 48, "Output height in pixels")
	overlapCmd.Flags().BoolVar(&overlapPeriodicOutput, "periodic-output", false, "Treat the output as toroidal")
	overlapCmd.Flags().BoolVar(&overlapPeriodicInput, "periodic-input", false, "Treat the exemplar as toroidal")
	overlapCmd.Flags().IntVarP(&overlapN, "pattern-size", "n", 3, "Pattern side length N")
	overlapCmd.Flags().BoolVar(&overlapGround, "ground", false, "Force the bottom-middle exemplar pattern onto the output's last row")
	overlapCmd.Flags().IntVar(&overlapSymmetry, "symmetry", 8, "Symmetry level (1, 2, 4, or 8)")
	overlapCmd.Flags().Uint32Var(&overlapSamples, "samples", 1, "Number of independent outputs to generate")
	overlapCmd.Flags().Uint32Var(&overlapTries, "tries", 10, "Retry budget per sample before giving up")
	overlapCmd.Flags().BoolVarP(&overlapVerbose, "verbose", "v", false, "Print a diagnostic for each failed sample")

	_ = overlapCmd.MarkFlagRequired("input")
	rootCmd.AddCommand(overlapCmd)
}

func runOverlap(cmd *cobra.Command, args []string) error {
	input, err := loadImage(overlapInput)
	if err != nil {
		return err
	}

	opts := overlapping.Options{
		Seed:           overlapSeed,
		OutputWidth:    overlapWidth,
		OutputHeight:   overlapHeight,
		PeriodicOutput: overlapPeriodicOutput,
		PeriodicInput:  overlapPeriodicInput,
		N:              overlapN,
		Ground:         overlapGround,
		Symmetry:       overlapSymmetry,
		NbSamples:      overlapSamples,
		NbTries:        overlapTries,
	}
	if overlapVerbose {
		opts.Warnf = func(format string, args ...interface{}) {
			fmt.Printf(format+"\n", args...)
		}
	}

	results, err := overlapping.Run(input, opts)
	if err != nil {
		return fmt.Errorf("overlap: %w", err)
	}

	return writeSamples(overlapOutput, results)
}
