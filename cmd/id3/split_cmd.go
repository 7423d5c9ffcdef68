package main

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/pbanos/id3/dataset"
	"github.com/spf13/cobra"
)

type splitCmdConfig struct {
	*setCmdConfig
	splitOutput      tableLocation
	splitProbability int
	seed             int64
}

func splitCmd(setConfig *setCmdConfig) *cobra.Command {
	config := &splitCmdConfig{setCmdConfig: setConfig}
	cmd := &cobra.Command{
		Use:   "split",
		Short: "Split a set into two sets",
		Long:  `Split a set into an output set and a split set, for instance to keep part of the data to test trees grown from the rest`,
		Run: func(cmd *cobra.Command, args []string) {
			err := config.Validate()
			if err != nil {
				config.Exit(1, err)
			}
			ctx := cmd.Context()
			t, err := config.input.readTable(ctx, config.rootCmdConfig)
			if err != nil {
				config.Exit(4, fmt.Errorf("reading input set: %w", err))
			}
			if config.seed == 0 {
				config.seed = time.Now().UnixNano()
			}
			output, split := splitTable(t, config.splitProbability, rand.New(rand.NewSource(config.seed)))
			config.Logf("Input set with %d rows was split into sets with %d and %d rows", len(t.Rows), len(output.Rows), len(split.Rows))
			config.output.maxDBConns = config.input.maxDBConns
			err = config.output.writeTable(ctx, config.rootCmdConfig, output)
			if err != nil {
				config.Exit(8, fmt.Errorf("writing output set: %w", err))
			}
			config.splitOutput.maxDBConns = config.input.maxDBConns
			err = config.splitOutput.writeTable(ctx, config.rootCmdConfig, split)
			if err != nil {
				config.Exit(9, fmt.Errorf("writing split set: %w", err))
			}
			config.Logf("Done")
		},
	}
	cmd.Flags().IntVarP(&(config.splitProbability), "split-probability", "p", 20, "probability as percent integer that a row of the set will be assigned to the split set")
	cmd.Flags().StringVarP(&(config.splitOutput.location), "split-output", "s", "", "location to dump the split set, in any of the forms the output accepts (required)")
	cmd.Flags().StringVar(&(config.splitOutput.table), "split-table", "samples", tableFlagUsage+" on the split output")
	cmd.Flags().Int64Var(&(config.seed), "seed", 0, "seed for the random assignment of rows (defaults to 0: seeded with the current time)")
	return cmd
}

func (scc *splitCmdConfig) Validate() error {
	if scc.splitOutput.location == "" {
		return fmt.Errorf("required split-output flag was not set")
	}
	if scc.splitProbability <= 0 || scc.splitProbability > 100 {
		return fmt.Errorf("split-probability flag was set to an invalid value: it must be set to an integer between 1 and 100")
	}
	return nil
}

// splitTable assigns every row of the table to the split table with the
// given percent probability and to the output table otherwise.
func splitTable(t *dataset.Table, splitProbability int, r *rand.Rand) (*dataset.Table, *dataset.Table) {
	output := &dataset.Table{Header: t.Header}
	split := &dataset.Table{Header: t.Header}
	for _, row := range t.Rows {
		if 100*r.Float32() > float32(splitProbability) {
			output.Rows = append(output.Rows, row)
		} else {
			split.Rows = append(split.Rows, row)
		}
	}
	return output, split
}
