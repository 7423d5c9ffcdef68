package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

type testCmdConfig struct {
	*rootCmdConfig
	tree  treeLocation
	input tableLocation
}

func testCmd(rootConfig *rootCmdConfig) *cobra.Command {
	config := &testCmdConfig{rootCmdConfig: rootConfig}
	cmd := &cobra.Command{
		Use:   "test",
		Short: "Test the performance of a tree",
		Long:  `Test the performance of a tree against a labelled testing set`,
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
			testingSet, err := config.input.readTable(ctx, config.rootCmdConfig)
			if err != nil {
				config.Exit(4, fmt.Errorf("reading testing set: %w", err))
			}
			config.Logf("Testing tree against testing set with %d rows...", len(testingSet.Rows))
			successRate, err := t.Test(testingSet)
			if err != nil {
				config.Exit(6, fmt.Errorf("testing tree: %w", err))
			}
			config.Logf("Done")
			fmt.Printf("%f success rate\n", successRate)
		},
	}
	cmd.Flags().StringVarP(&(config.tree.location), "tree", "t", "", treeFlagUsage+" (required)")
	cmd.Flags().StringVarP(&(config.tree.metadata), "metadata", "m", "", metadataFlagUsage)
	cmd.Flags().StringVarP(&(config.input.location), "input", "i", "", inputFlagUsage)
	cmd.Flags().StringVar(&(config.input.table), "table", "samples", tableFlagUsage)
	return cmd
}

func (tcc *testCmdConfig) Validate() error {
	if tcc.tree.location == "" {
		return fmt.Errorf("required tree flag was not set")
	}
	return tcc.tree.Validate()
}
