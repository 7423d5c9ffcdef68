package main

import (
	"fmt"
	"os"

	"github.com/pbanos/id3"
	"github.com/pbanos/id3/dataset/csv"
	"github.com/spf13/cobra"
)

type runCmdConfig struct {
	*rootCmdConfig
	training tableLocation
	testing  tableLocation
}

func runCmd(rootConfig *rootCmdConfig) *cobra.Command {
	config := &runCmdConfig{rootCmdConfig: rootConfig}
	cmd := &cobra.Command{
		Use:   "run TRAINING TESTING",
		Short: "Grow a tree and classify a set with it",
		Long:  `Grow a tree from the training set, print it and then print the class predicted for every row of the testing set, one per line`,
		Args:  cobra.ExactArgs(2),
		Run: func(cmd *cobra.Command, args []string) {
			config.training.location, config.testing.location = args[0], args[1]
			config.testing.table, config.testing.maxDBConns = config.training.table, config.training.maxDBConns
			ctx := cmd.Context()
			trainingSet, err := config.training.readTable(ctx, config.rootCmdConfig)
			if err != nil {
				config.Exit(3, fmt.Errorf("reading training set: %w", err))
			}
			classifier := id3.NewClassifier(config.Logger())
			config.Logf("Growing tree from a set with %d rows and %d features...", len(trainingSet.Rows), len(trainingSet.Header)-1)
			err = classifier.Train(trainingSet)
			if err != nil {
				config.Exit(5, fmt.Errorf("growing the tree: %w", err))
			}
			text, err := classifier.Render()
			if err != nil {
				config.Exit(6, err)
			}
			fmt.Print(text)
			testingSet, err := config.testing.readTable(ctx, config.rootCmdConfig)
			if err != nil {
				config.Exit(4, fmt.Errorf("reading testing set: %w", err))
			}
			labels, err := classifier.Classify(testingSet)
			if err != nil {
				config.Exit(7, fmt.Errorf("classifying testing set: %w", err))
			}
			err = csv.WriteLabels(os.Stdout, labels)
			if err != nil {
				config.Exit(8, err)
			}
		},
	}
	cmd.Flags().StringVar(&(config.training.table), "table", "samples", tableFlagUsage)
	cmd.Flags().IntVar(&(config.training.maxDBConns), "max-db-conns", 0, "limit to DB connections opened at a time (defaults to 0: no limit)")
	return cmd
}
