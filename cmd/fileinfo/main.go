// Command fileinfo classifies files into typed entities (directory, JSON or
// YAML document, image, audio/video medium, plain file) and reports on
// them.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/backmassage/fileinfo/internal/check"
	"github.com/backmassage/fileinfo/internal/config"
	"github.com/backmassage/fileinfo/internal/entity"
	"github.com/backmassage/fileinfo/internal/logging"
)

// version and commit are injected at build time via -ldflags.
var (
	version = "1.0.0"
	commit  = "unknown"
)

// exitError ends the process with code without printing anything more.
type exitError struct{ code int }

func (e exitError) Error() string { return fmt.Sprintf("exit status %d", e.code) }

// app carries the state every subcommand shares once flags are parsed.
type app struct {
	cfg      config.Config
	log      *logging.Logger
	reg      *entity.Registry
	proberOK bool
	stop     context.CancelFunc
}

func main() {
	a := &app{cfg: config.DefaultConfig()}
	err := newRootCmd(a).Execute()
	a.teardown()
	if err != nil {
		var ee exitError
		if errors.As(err, &ee) {
			os.Exit(ee.code)
		}
		fmt.Fprintf(os.Stderr, "fileinfo: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:           "fileinfo",
		Short:         "Classify files by content and report on them",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}
	config.BindFlags(root.PersistentFlags(), &a.cfg)

	root.AddCommand(newVersionCmd(a))
	root.AddCommand(newCheckCmd(a))
	root.AddCommand(newInspectCmd(a))
	root.AddCommand(newLsCmd(a))
	root.AddCommand(newTracksCmd(a))
	root.AddCommand(newChaptersCmd(a))
	root.AddCommand(newSumCmd(a))
	root.AddCommand(newCmpCmd(a))
	root.AddCommand(newDocCmd(a))
	root.AddCommand(newProbeCmd(a))
	root.AddCommand(newScanCmd(a))
	root.AddCommand(newTransferCmd(a, transferCopy))
	root.AddCommand(newTransferCmd(a, transferMove))
	return root
}

// setup applies the config file, opens the logger, resolves mediainfo once
// and builds the registry. Logs go to stderr so stdout carries only data.
func (a *app) setup(cmd *cobra.Command) error {
	if err := config.Load(cmd.Flags(), &a.cfg); err != nil {
		return err
	}

	log, err := logging.NewLogger(&a.cfg)
	if err != nil {
		return err
	}
	log.SetOutput(cmd.ErrOrStderr(), cmd.ErrOrStderr())
	a.log = log

	opts := []entity.Option{entity.WithLogger(log, a.cfg.Verbose)}
	if prober, err := check.NewProber(&a.cfg); err != nil {
		log.Debug(a.cfg.Verbose, "media probing disabled: %v", err)
	} else {
		a.proberOK = true
		opts = append(opts, entity.WithProber(prober))
	}
	a.reg = entity.NewRegistry(opts...)

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	a.stop = stop
	cmd.SetContext(ctx)
	return nil
}

// teardown releases what setup acquired; safe when setup never ran.
func (a *app) teardown() {
	if a.stop != nil {
		a.stop()
	}
	if a.log != nil {
		a.log.Close()
	}
}

// requireProber explains why a media-only command cannot classify media.
func (a *app) requireProber() {
	if !a.proberOK {
		a.log.Warn("mediainfo not found; media files will not be recognised (see `fileinfo check`)")
	}
}

func newVersionCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "fileinfo %s (%s)\n", version, commit)
		},
	}
}
