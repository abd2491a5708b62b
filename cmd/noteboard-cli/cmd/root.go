package cmd

import (
	"context"
	"fmt"
	"os"

	"noteboard-backend/lib/configutil"
	"noteboard-backend/lib/restyutil"
	"noteboard-backend/lib/scrapers/noteboard"
	"noteboard-backend/lib/telemetry"

	"github.com/spf13/cobra"
)

var client *noteboard.Client

var (
	flagDebug      bool
	flagOptimistic bool
	flagDumpHTTP   string
)

var rootCmd = &cobra.Command{
	Use:   "noteboard-cli",
	Short: "noteboard-cli fetches, renders and posts notes on the note board.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		telemetry.InitSlog(flagDebug)
		err := telemetry.SetupFromEnv(cmd.Context(), "noteboard-cli")
		if err != nil && !os.IsNotExist(err) {
			return err
		}

		config, err := configutil.ReadRecursively[noteboard.Config]("noteboard.json5")
		if os.IsNotExist(err) {
			config = noteboard.DefaultConfig()
		} else if err != nil {
			return err
		}
		if flagOptimistic {
			config.OptimisticFallback = true
		}

		opts := config.ClientOptions()
		if flagDumpHTTP != "" {
			opts.InstrumentOutput = restyutil.NewFilesystemOutput(flagDumpHTTP)
		}

		client, err = noteboard.NewClient(opts)
		return err
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		telemetry.Shutdown(context.Background())
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&flagOptimistic, "optimistic", false, "fabricate a success envelope locally when a mutation endpoint is unreachable")
	rootCmd.PersistentFlags().StringVar(&flagDumpHTTP, "dump-http", "", "dump every http request/response into the given directory (requires --debug)")
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
