package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
)

// options are shared by every load shape.
type options struct {
	addr     string
	requests int
	timeout  time.Duration
	fileSize int
	session  string
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:   "loadgen",
		Short: "Load generator for the stream-lab gRPC server",
		Long: "loadgen floods one of the four call shapes of chat.StreamService " +
			"with concurrent requests and reports latency, success rate and throughput.",
	}

	cmd.PersistentFlags().StringVar(&opts.addr, "addr", "localhost:50051", "server address")
	cmd.PersistentFlags().IntVarP(&opts.requests, "requests", "n", 10, "number of concurrent requests")
	cmd.PersistentFlags().DurationVar(&opts.timeout, "timeout", 10*time.Second, "per-stream deadline")

	cmd.AddCommand(
		newUnaryCommand(opts),
		newNotifyCommand(opts),
		newUploadCommand(opts),
		newChatCommand(opts),
	)
	return cmd
}
