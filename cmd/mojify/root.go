package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/spf13/cobra"
)

// tracer traces to a global core tracer
func tracer() tracing.Trace {
	return gtrace.CoreTracer
}

var (
	noDemo     bool
	traceLevel string
)

var rootCmd = &cobra.Command{
	Use:   "mojify",
	Short: "Translate plain sentences into emoji sequences",
	Long: `mojify turns natural-language sentences into emoji: tabulated words and
phrases become their emoji counterparts, digit runs become keycap symbols
and remaining letters become regional indicators.

mojify first prints a couple of demo translations and then enters an
interactive loop. Type 'quit' or 'exit' to leave.`,
	RunE: run,
}

// Execute runs the root command.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().BoolVar(&noDemo, "no-demo", false, "skip the demo translations")
	rootCmd.PersistentFlags().StringVar(&traceLevel, "trace", "", "trace level (Debug|Info|Error)")
}

func run(cmd *cobra.Command, args []string) error {
	setupTracing()
	out := cmd.OutOrStdout()
	if !noDemo {
		runDemo(out)
		fmt.Fprintln(out)
		fmt.Fprintln(out, "--- Interactive mode ---")
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := runLoop(ctx, cmd.InOrStdin(), out); err != nil {
		return fmt.Errorf("interactive loop: %w", err)
	}
	return nil
}

// setupTracing wires a log-based tracing adapter, if the user asked for
// tracing output with the --trace flag.
func setupTracing() {
	if traceLevel == "" {
		return
	}
	gtrace.CoreTracer = gologadapter.New()
	switch strings.ToLower(traceLevel) {
	case "debug":
		gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	case "info":
		gtrace.CoreTracer.SetTraceLevel(tracing.LevelInfo)
	default:
		gtrace.CoreTracer.SetTraceLevel(tracing.LevelError)
	}
}
