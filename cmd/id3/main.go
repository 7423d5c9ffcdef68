package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type rootCmdConfig struct {
	verbose bool
	logFile string
	logger  *zap.Logger
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := cliParser().ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}

func cliParser() *cobra.Command {
	config := &rootCmdConfig{}
	rootCmd := &cobra.Command{
		Use:   "id3",
		Short: "id3 is a tool to grow decision trees from categorical data",
		Long:  `A tool to grow ID3 decision trees from tables of categorical values, inspect them, test them and use them to classify new rows`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logger, err := newLogger(config.verbose, config.logFile)
			if err != nil {
				return err
			}
			config.logger = logger
			return nil
		},
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().BoolVarP(&(config.verbose), "verbose", "v", false, "log progress messages on STDERR")
	rootCmd.PersistentFlags().StringVar(&(config.logFile), "log-file", os.Getenv("ID3_LOG_FILE"), "path to a file on which to append logs in JSON format, debug level included (defaults to $ID3_LOG_FILE)")
	rootCmd.AddCommand(
		versionCmd(),
		runCmd(config),
		growCmd(config),
		classifyCmd(config),
		predictCmd(config),
		treeCmd(config),
		testCmd(config),
		serveCmd(config),
		setCmd(config),
	)
	return rootCmd
}

// Logger returns the logger set up for the command, a no-op one if none
func (rcc *rootCmdConfig) Logger() *zap.Logger {
	if rcc.logger == nil {
		return zap.NewNop()
	}
	return rcc.logger
}

// Exit prints the error on STDERR, flushes the logger and exits with the
// given code
func (rcc *rootCmdConfig) Exit(code int, err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	rcc.Logger().Sync()
	os.Exit(code)
}
