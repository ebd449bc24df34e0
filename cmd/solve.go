package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// solveCmd plays both puzzle parts: the labels after cup 1 on the unextended
// ring, and the product of the two cups after 1 on the million-cup ring.
var solveCmd = &cobra.Command{
	Use:   "solve",
	Short: "Solve both parts of the cup puzzle",
	Run: func(cmd *cobra.Command, args []string) {
		defaults, err := loadDefaultsConfig(defaultsFilePath)
		if err != nil {
			logrus.Fatalf("Failed to load presets: %v", err)
		}
		input := cups
		if input == "" {
			input = defaults.Cups
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()

		if err := solve(ctx, input, defaults, cmd.OutOrStdout()); err != nil {
			logrus.Fatalf("Solve failed: %v", err)
		}
	},
}

// solve runs the labels and million presets on cupOrder and writes one line
// per answer to w.
func solve(ctx context.Context, cupOrder string, defaults Config, w io.Writer) error {
	labelsPreset, err := defaults.Preset(PresetLabels)
	if err != nil {
		return err
	}
	millionPreset, err := defaults.Preset(PresetMillion)
	if err != nil {
		return err
	}

	part1, err := runSimulation(ctx, cupOrder, labelsPreset.SimConfig(), runOptions{})
	if err != nil {
		return fmt.Errorf("part 1: %w", err)
	}
	labels := part1.LabelsAfterOne
	if labels == "" {
		// The labels preset was configured with an extended ring.
		labels = "(ring extended, labels omitted)"
	}
	if _, err := fmt.Fprintf(w, "Part 1: %s\n", labels); err != nil {
		return err
	}

	part2, err := runSimulation(ctx, cupOrder, millionPreset.SimConfig(), runOptions{})
	if err != nil {
		return fmt.Errorf("part 2: %w", err)
	}
	logrus.Infof("Part 2 took %d ms for %d rounds on %d cups", part2.WallTimeMs, part2.Rounds, part2.Size)
	_, err = fmt.Fprintf(w, "Part 2: %d\n", part2.ProductAfterOne)
	return err
}

func init() {
	solveCmd.Flags().StringVar(&cups, "cups", "", "Initial cup order (default from the defaults file)")

	rootCmd.AddCommand(solveCmd)
}
