package main

import (
	"fmt"
	"os"

	"github.com/pbanos/id3/dataset/csv"
	"github.com/spf13/cobra"
)

type classifyCmdConfig struct {
	*rootCmdConfig
	tree  treeLocation
	input tableLocation
}

func classifyCmd(rootConfig *rootCmdConfig) *cobra.Command {
	config := &classifyCmdConfig{rootCmdConfig: rootConfig}
	cmd := &cobra.Command{
		Use:   "classify",
		Short: "Classify a set of data with a tree",
		Long:  `Use a stored tree to print the class predicted for every row of a set of data, one per line`,
		Run: func(cmd *cobra.Command, args []string) {
			err := config.Validate()
			if err != nil {
				config.Exit(1, err)
			}
			ctx := cmd.Context()
			t, err := config.tree.loadTree(ctx, config.rootCmdConfig)
			if err != nil {
				config.Exit(2, err)
			}
			set, err := config.input.readTable(ctx, config.rootCmdConfig)
			if err != nil {
				config.Exit(4, fmt.Errorf("reading set: %w", err))
			}
			labels, err := t.ClassifyTable(set)
			if err != nil {
				config.Exit(7, err)
			}
			err = csv.WriteLabels(os.Stdout, labels)
			if err != nil {
				config.Exit(8, err)
			}
		},
	}
	cmd.Flags().StringVarP(&(config.tree.location), "tree", "t", "", treeFlagUsage+" (required)")
	cmd.Flags().StringVarP(&(config.tree.metadata), "metadata", "m", "", metadataFlagUsage)
	cmd.Flags().StringVarP(&(config.input.location), "input", "i", "", inputFlagUsage)
	cmd.Flags().StringVar(&(config.input.table), "table", "samples", tableFlagUsage)
	return cmd
}

func (ccc *classifyCmdConfig) Validate() error {
	if ccc.tree.location == "" {
		return fmt.Errorf("required tree flag was not set")
	}
	return ccc.tree.Validate()
}
