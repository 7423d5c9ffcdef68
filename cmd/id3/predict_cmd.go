package main

import (
	"fmt"
	"os"

	"github.com/pbanos/id3/dataset/inputsample"
	"github.com/pbanos/id3/feature"
	"github.com/spf13/cobra"
)

type predictCmdConfig struct {
	*rootCmdConfig
	tree           treeLocation
	undefinedValue string
}

type stdoutFeatureValueRequester string

func predictCmd(rootConfig *rootCmdConfig) *cobra.Command {
	config := &predictCmdConfig{rootCmdConfig: rootConfig}
	cmd := &cobra.Command{
		Use:   "predict",
		Short: "Predict the class of a row answering questions",
		Long:  `Use a stored tree to predict the class of a row answering a reduced set of questions about its features`,
		Run: func(cmd *cobra.Command, args []string) {
			err := config.Validate()
			if err != nil {
				config.Exit(1, err)
			}
			t, err := config.tree.loadTree(cmd.Context(), config.rootCmdConfig)
			if err != nil {
				config.Exit(2, err)
			}
			sample := inputsample.New(os.Stdin, t.Index, stdoutFeatureValueRequester(config.undefinedValue), config.undefinedValue)
			code, err := t.ClassifyWith(sample.ValueFor)
			if err != nil {
				config.Exit(7, err)
			}
			fmt.Printf("Predicted class is %s\n", t.Index.Class().Value(code))
		},
	}
	cmd.Flags().StringVarP(&(config.tree.location), "tree", "t", "", treeFlagUsage+" (required)")
	cmd.Flags().StringVarP(&(config.tree.metadata), "metadata", "m", "", metadataFlagUsage)
	cmd.Flags().StringVarP(&(config.undefinedValue), "undefined-value", "u", "?", "value to input to define a row's value for a feature as undefined")
	return cmd
}

func (pcc *predictCmdConfig) Validate() error {
	if pcc.tree.location == "" {
		return fmt.Errorf("required tree flag was not set")
	}
	return pcc.tree.Validate()
}

func (sfvr stdoutFeatureValueRequester) RequestValueFor(f *feature.Feature) error {
	fmt.Printf("Please provide the row's %s:\n(valid values are %v or %s if undefined)\n", f.Name(), f.Values(), string(sfvr))
	return nil
}

func (sfvr stdoutFeatureValueRequester) RejectValueFor(f *feature.Feature, value string) error {
	fmt.Printf("%s is not a valid value for the row's %s. Please provide one of %v or %s if undefined.\n", value, f.Name(), f.Values(), string(sfvr))
	return nil
}
