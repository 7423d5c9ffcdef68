package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

type setCmdConfig struct {
	*rootCmdConfig
	input  tableLocation
	output tableLocation
}

func setCmd(rootConfig *rootCmdConfig) *cobra.Command {
	config := &setCmdConfig{rootCmdConfig: rootConfig}
	cmd := &cobra.Command{
		Use:   "set",
		Short: "Manage sets of data",
		Long:  `Copy a set of data from one location to another, for instance to load a CSV file into a database`,
		Run: func(cmd *cobra.Command, args []string) {
			ctx := cmd.Context()
			t, err := config.input.readTable(ctx, config.rootCmdConfig)
			if err != nil {
				config.Exit(4, fmt.Errorf("reading input set: %w", err))
			}
			err = config.output.writeTable(ctx, config.rootCmdConfig, t)
			if err != nil {
				config.Exit(8, fmt.Errorf("writing output set: %w", err))
			}
			config.Logf("Done")
		},
	}
	cmd.PersistentFlags().StringVarP(&(config.input.location), "input", "i", "", inputFlagUsage)
	cmd.PersistentFlags().StringVar(&(config.input.table), "table", "samples", tableFlagUsage+" on the input")
	cmd.PersistentFlags().StringVarP(&(config.output.location), "output", "o", "", "path to a CSV file or SQLite3 (.db) file, or a PostgreSQL (postgresql://) or MongoDB (mongodb://) connection URL to dump the output set (defaults to STDOUT in CSV)")
	cmd.PersistentFlags().StringVar(&(config.output.table), "output-table", "samples", tableFlagUsage+" on the output")
	cmd.PersistentFlags().IntVar(&(config.input.maxDBConns), "max-db-conns", 0, "limit to DB connections opened at a time (defaults to 0: no limit)")
	cmd.AddCommand(splitCmd(config))
	return cmd
}
