package main

import (
	"fmt"

	"github.com/pbanos/id3"
	"github.com/spf13/cobra"
)

type growCmdConfig struct {
	*rootCmdConfig
	input  tableLocation
	output treeLocation
}

func growCmd(rootConfig *rootCmdConfig) *cobra.Command {
	config := &growCmdConfig{rootCmdConfig: rootConfig}
	cmd := &cobra.Command{
		Use:   "grow",
		Short: "Grow a tree from a set of data",
		Long:  `Grow a tree from a set of data to predict its last column, and store it along the metadata needed to read it back`,
		Run: func(cmd *cobra.Command, args []string) {
			err := config.Validate()
			if err != nil {
				config.Exit(1, err)
			}
			ctx := cmd.Context()
			trainingSet, err := config.input.readTable(ctx, config.rootCmdConfig)
			if err != nil {
				config.Exit(4, fmt.Errorf("reading training set: %w", err))
			}
			config.Logf("Growing tree from a set with %d rows and %d features...", len(trainingSet.Rows), len(trainingSet.Header)-1)
			t, err := id3.NewTreeBuilder(config.Logger()).Train(trainingSet)
			if err != nil {
				config.Exit(5, fmt.Errorf("growing the tree: %w", err))
			}
			config.Logf("Done")
			err = config.output.saveTree(ctx, config.rootCmdConfig, t)
			if err != nil {
				config.Exit(9, fmt.Errorf("storing the tree: %w", err))
			}
		},
	}
	cmd.Flags().StringVarP(&(config.input.location), "input", "i", "", inputFlagUsage)
	cmd.Flags().StringVar(&(config.input.table), "table", "samples", tableFlagUsage)
	cmd.Flags().IntVar(&(config.input.maxDBConns), "max-db-conns", 0, "limit to DB connections opened at a time (defaults to 0: no limit)")
	cmd.Flags().StringVarP(&(config.output.location), "output", "o", "", "path to a file to which the tree will be written in JSON format, or a redis://host:port/prefix URL of a redis server to store it (defaults to STDOUT)")
	cmd.Flags().StringVarP(&(config.output.metadata), "metadata", "m", "", "path to a YML file to which the metadata describing the features of the tree will be written (required unless the tree is stored on redis)")
	return cmd
}

func (gcc *growCmdConfig) Validate() error {
	return gcc.output.Validate()
}
