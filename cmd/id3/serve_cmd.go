package main

import (
	"fmt"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/pbanos/id3"
	"github.com/pbanos/id3/server"
	"github.com/spf13/cobra"
)

type serveCmdConfig struct {
	*rootCmdConfig
	tree            treeLocation
	addr            string
	apiKey          string
	shutdownTimeout time.Duration
}

func serveCmd(rootConfig *rootCmdConfig) *cobra.Command {
	config := &serveCmdConfig{rootCmdConfig: rootConfig}
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve classifications over HTTP",
		Long:  `Load a stored tree and serve classifications of rows posted as JSON, along renderings of the tree, over HTTP`,
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
			if !config.verbose {
				gin.SetMode(gin.ReleaseMode)
			}
			s := server.New(id3.NewTrainedClassifier(t, config.Logger()), config.Logger(), config.apiKey)
			err = s.Run(ctx, config.addr, config.shutdownTimeout)
			if err != nil {
				config.Exit(10, err)
			}
		},
	}
	cmd.Flags().StringVarP(&(config.tree.location), "tree", "t", "", treeFlagUsage+" (required)")
	cmd.Flags().StringVarP(&(config.tree.metadata), "metadata", "m", "", metadataFlagUsage)
	cmd.Flags().StringVarP(&(config.addr), "addr", "a", ":8080", "address to listen on")
	cmd.Flags().StringVar(&(config.apiKey), "api-key", os.Getenv("ID3_API_KEY"), "key classification requests must carry on the X-API-Key header (defaults to $ID3_API_KEY, none if empty)")
	cmd.Flags().DurationVar(&(config.shutdownTimeout), "shutdown-timeout", 10*time.Second, "time to wait for requests in flight when shutting down")
	return cmd
}

func (scc *serveCmdConfig) Validate() error {
	if scc.tree.location == "" {
		return fmt.Errorf("required tree flag was not set")
	}
	return scc.tree.Validate()
}
