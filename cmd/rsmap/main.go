package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/siuubhamm/reversed_kvstore/config"
	"github.com/siuubhamm/reversed_kvstore/ctxlog"
	"github.com/siuubhamm/reversed_kvstore/kvstore"
)

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

type app struct {
	configPath string
	cfg        *config.Config
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:           "rsmap",
		Short:         "Play with a map that keys every string by its reversal",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}
	root.PersistentFlags().StringVar(&a.configPath, "config", config.DefaultFileName, "path to the YAML config file")

	root.AddCommand(a.newReplCmd(), a.newExecCmd(), a.newStressCmd())
	return root
}

func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	level, _ := cfg.LogLevel()
	logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

	a.cfg = cfg
	cmd.SetContext(ctxlog.WithLogger(cmd.Context(), logger))
	return nil
}

func (a *app) seeded() *kvstore.ReversedStringMap {
	m := kvstore.New()
	for _, v := range a.cfg.Seed {
		m.Insert(v)
	}
	return m
}

func (a *app) newReplCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Read commands from stdin, one per line",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := ctxlog.FromContext(cmd.Context())
			m := a.seeded()
			logger.Info("session started", "entries", m.Len())

			err := newSession(m, cmd.OutOrStdout()).run(cmd.Context(), cmd.InOrStdin())
			logger.Info("session closed", "entries", m.Len())
			return err
		},
	}
}

func (a *app) newExecCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "exec <command> [; <command>...]",
		Short: "Run ';'-separated commands given as arguments",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			script := strings.ReplaceAll(strings.Join(args, " "), ";", "\n")
			return newSession(a.seeded(), cmd.OutOrStdout()).run(cmd.Context(), strings.NewReader(script))
		},
	}
}

func (a *app) newStressCmd() *cobra.Command {
	var workers, ops int
	cmd := &cobra.Command{
		Use:   "stress",
		Short: "Drive one locked map from many goroutines and check the result",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("workers") {
				workers = a.cfg.Stress.Workers
			}
			if !cmd.Flags().Changed("ops") {
				ops = a.cfg.Stress.OpsPerWorker
			}

			res, err := runStress(cmd.Context(), kvstore.NewLocked(a.seeded()), workers, ops)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "ops=%d entries=%d duration=%s\n", res.Ops, res.Entries, res.Duration)
			return nil
		},
	}
	cmd.Flags().IntVar(&workers, "workers", 0, "number of concurrent workers (default from config)")
	cmd.Flags().IntVar(&ops, "ops", 0, "operations per worker (default from config)")
	return cmd
}
