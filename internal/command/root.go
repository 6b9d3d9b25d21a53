// Package command implements the huff command line.
package command

import (
	"fmt"
	"io"
	"os"

	"github.com/chronos-tachyon/huffman/v2"
	"github.com/chronos-tachyon/huffman/v2/internal/config"
	"github.com/chronos-tachyon/huffman/v2/internal/fileio"

	"github.com/nuclio/errors"
	"github.com/nuclio/logger"
	"github.com/nuclio/zap"
	"github.com/spf13/cobra"
)

type RootCommandeer struct {
	loggerInstance logger.Logger
	cmd            *cobra.Command
	codec          *huffman.Codec
	output         io.Writer

	configPath   string
	verbose      bool
	layout       string
	maxTreeDepth int
	workers      int
}

func NewRootCommandeer() *RootCommandeer {
	commandeer := &RootCommandeer{
		output: os.Stdout,
	}

	cmd := &cobra.Command{
		Use:           "huff [command]",
		Short:         "Huffman encoder and decoder",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	defaults := config.Default()

	cmd.PersistentFlags().BoolVarP(&commandeer.verbose, "verbose", "v", false, "Verbose output")
	cmd.PersistentFlags().StringVarP(&commandeer.configPath, "config", "c", "", "Path to a YAML configuration file")
	cmd.PersistentFlags().StringVar(&commandeer.layout, "layout", defaults.Layout, "Container layout - \"tagged\" or \"sentinel\" (env: HUFF_LAYOUT)")
	cmd.PersistentFlags().IntVar(&commandeer.maxTreeDepth, "max-tree-depth", defaults.MaxTreeDepth, "Longest code, in bits, the encoder may produce (env: HUFF_MAX_TREE_DEPTH)")
	cmd.PersistentFlags().IntVar(&commandeer.workers, "workers", defaults.Workers, "Number of goroutines counting byte frequencies (env: HUFF_WORKERS)")

	// add children
	cmd.AddCommand(
		newEncodeCommandeer(commandeer).cmd,
		newDecodeCommandeer(commandeer).cmd,
		newInspectCommandeer(commandeer).cmd,
		newCodesCommandeer(commandeer).cmd,
	)

	commandeer.cmd = cmd

	return commandeer
}

// Execute uses os.Args to execute the command.  On failure the error kind and
// message are printed to stderr.
func (rc *RootCommandeer) Execute() error {
	err := rc.cmd.Execute()
	if err != nil {
		rc.printError(os.Stderr, err)
	}
	return err
}

// GetCmd returns the underlying cobra command
func (rc *RootCommandeer) GetCmd() *cobra.Command {
	return rc.cmd
}

func (rc *RootCommandeer) initialize() error {
	resolved, err := config.ReadFileOrDefault(rc.configPath)
	if err != nil {
		return errors.Wrap(err, "Failed to load configuration")
	}

	// flags win over the file and the environment, but only when given
	flags := rc.cmd.PersistentFlags()
	if flags.Changed("layout") {
		resolved.Layout = rc.layout
	}
	if flags.Changed("max-tree-depth") {
		resolved.MaxTreeDepth = rc.maxTreeDepth
	}
	if flags.Changed("workers") {
		resolved.Workers = rc.workers
	}
	if flags.Changed("verbose") {
		resolved.Verbose = rc.verbose
	}

	rc.loggerInstance, err = rc.createLogger(resolved.Verbose)
	if err != nil {
		return errors.Wrap(err, "Failed to create logger")
	}

	options, err := resolved.Options()
	if err != nil {
		return errors.Wrap(err, "Failed to resolve codec options")
	}

	rc.codec, err = huffman.NewCodec(rc.loggerInstance, options)
	if err != nil {
		return errors.Wrap(err, "Failed to create codec")
	}

	rc.loggerInstance.DebugWith("Initialized",
		"layout", options.Layout.String(),
		"maxTreeDepth", options.MaxTreeDepth,
		"workers", options.Workers)

	return nil
}

func (rc *RootCommandeer) createLogger(verbose bool) (logger.Logger, error) {
	var loggerLevel nucliozap.Level

	if verbose {
		loggerLevel = nucliozap.DebugLevel
	} else {
		loggerLevel = nucliozap.InfoLevel
	}

	loggerInstance, err := nucliozap.NewNuclioZapCmd("huff", loggerLevel, os.Stderr)
	if err != nil {
		return nil, errors.Wrap(err, "Failed to create logger")
	}

	return loggerInstance, nil
}

func (rc *RootCommandeer) printError(out io.Writer, err error) {
	kind := huffman.Kind(err)
	if kind == nil && errors.RootCause(err) == fileio.ErrOutput {
		kind = fileio.ErrOutput
	}

	// the message wrapped directly around the kind describes the failure;
	// everything above it is context added by callers
	detail := err
	for {
		cause := errors.Cause(detail)
		if cause == nil || cause == kind || cause == detail {
			break
		}
		detail = cause
	}

	if kind != nil && detail != kind && errors.Cause(detail) == kind {
		fmt.Fprintf(out, "huff: %s: %s\n", kind.Error(), detail.Error()) // nolint: errcheck
	} else {
		fmt.Fprintf(out, "huff: %s\n", err.Error()) // nolint: errcheck
	}

	if rc.verbose {
		errors.PrintErrorStack(out, err, 0)
	}
}
