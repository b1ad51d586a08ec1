package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime"

	"github.com/fatih/color"
	"github.com/gophersatwork/shaderpurge"
	"github.com/spf13/cobra"
)

// goos is the platform check; tests override it.
var goos = runtime.GOOS

func newRootCmd(options ...shaderpurge.Option) *cobra.Command {
	var (
		noColor bool
		verbose bool
	)

	cmd := &cobra.Command{
		Use:   "shaderpurge",
		Short: "Purge stale Steam and NVIDIA shader caches",
		Long: "Deletes the Steam per-library shader caches and the NVIDIA DirectX and OpenGL " +
			"shader caches. Missing caches are skipped. Caches are rebuilt by the driver on demand.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if goos != "windows" {
				return fmt.Errorf("shaderpurge only supports windows machines, not %s", goos)
			}

			logger := shaderpurge.NewLogger(cmd.OutOrStdout())
			if noColor {
				logger.DisableColor()
			}
			logger.SetVerbose(verbose)

			p := shaderpurge.New(append([]shaderpurge.Option{shaderpurge.WithLogger(logger)}, options...)...)
			p.Run(cmd.Context())
			return nil
		},
	}

	cmd.Flags().BoolVar(&noColor, "no-color", false, "Disable colored output")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Print why sources were skipped and which deletes failed")
	return cmd
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := newRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		color.New(color.FgRed).Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
