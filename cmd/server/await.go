package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/artem13815/recruit/pkg/poller"
)

var awaitCmd = &cobra.Command{
	Use:   "await-result <assessmentId>",
	Short: "Poll an assessment result until its narrative is ready",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil || id <= 0 {
			return fmt.Errorf("invalid assessment id %q", args[0])
		}
		cfg, logger := setup()
		defer func() { _ = logger.Sync() }()

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()
		if timeout, _ := cmd.Flags().GetDuration("timeout"); timeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, timeout)
			defer cancel()
		}

		out := cmd.OutOrStdout()
		p := poller.New(poller.NewHTTPFetcher(cfg.APIBaseURL, 10*time.Second), cfg.PollInterval, logger)
		final, err := p.Run(ctx, id, func(s poller.Snapshot) {
			fmt.Fprintf(out, "state: %s\n", s.State)
		})
		if err != nil {
			logger.Warn("polling stopped", zap.Error(err))
			return err
		}
		if final.State == poller.StateError {
			return final.Err
		}
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(final.Result)
	},
}

func init() {
	awaitCmd.Flags().Duration("timeout", 0, "give up after this long (0 waits until interrupted)")
	rootCmd.AddCommand(awaitCmd)
}
