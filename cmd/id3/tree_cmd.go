package main

import (
	"fmt"
	"os"

	"github.com/pbanos/id3/tree/dot"
	"github.com/spf13/cobra"
)

type treeCmdConfig struct {
	*rootCmdConfig
	tree   treeLocation
	format string
	index  bool
}

func treeCmd(rootConfig *rootCmdConfig) *cobra.Command {
	config := &treeCmdConfig{rootCmdConfig: rootConfig}
	cmd := &cobra.Command{
		Use:   "tree",
		Short: "Show a tree",
		Long:  `Show a stored tree as indented text or as a graphviz DOT digraph`,
		Run: func(cmd *cobra.Command, args []string) {
			err := config.Validate()
			if err != nil {
				config.Exit(1, err)
			}
			t, err := config.tree.loadTree(cmd.Context(), config.rootCmdConfig)
			if err != nil {
				config.Exit(2, err)
			}
			if config.index {
				for _, l := range t.Index.Lines() {
					fmt.Println(l)
				}
			}
			switch config.format {
			case "dot":
				err = dot.Write(os.Stdout, t)
			default:
				_, err = fmt.Print(t)
			}
			if err != nil {
				config.Exit(3, err)
			}
		},
	}
	cmd.Flags().StringVarP(&(config.tree.location), "tree", "t", "", treeFlagUsage+" (required)")
	cmd.Flags().StringVarP(&(config.tree.metadata), "metadata", "m", "", metadataFlagUsage)
	cmd.Flags().StringVarP(&(config.format), "format", "f", "text", "output format: text or dot")
	cmd.Flags().BoolVar(&(config.index), "index", false, "print the code of every value of every feature before the tree")
	return cmd
}

func (tcc *treeCmdConfig) Validate() error {
	if tcc.tree.location == "" {
		return fmt.Errorf("required tree flag was not set")
	}
	if tcc.format != "text" && tcc.format != "dot" {
		return fmt.Errorf("unknown format %s: it must be text or dot", tcc.format)
	}
	return tcc.tree.Validate()
}
