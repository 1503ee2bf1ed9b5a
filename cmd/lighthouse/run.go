// Copyright (C) 2019-2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"go.uber.org/zap"

	"github.com/ava-labs/lighthouse/config"
	"github.com/ava-labs/lighthouse/node"
)

const shutdownTimeout = 10 * time.Second

func runCommand() *cobra.Command {
	c := &cobra.Command{
		Use:   "run",
		Short: "Runs the launchpad node",
		RunE:  runFunc,
	}
	// Flags are parsed by viper so env vars and config files apply.
	c.DisableFlagParsing = true
	config.AddFlags(c.Flags())
	return c
}

func runFunc(c *cobra.Command, args []string) error {
	v, err := config.BuildViper(c.Flags(), args)
	if err != nil {
		return err
	}
	nodeConfig, err := config.GetConfig(v)
	if err != nil {
		return err
	}

	log := node.NewLogger(nodeConfig.Logging)
	defer log.Stop()

	n, err := node.New(nodeConfig, log)
	if err != nil {
		log.Error("failed to initialize node", zap.Error(err))
		return err
	}

	ctx, stop := signal.NotifyContext(c.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := n.Shutdown(shutdownCtx); err != nil {
			log.Error("failed to shut down node", zap.Error(err))
		}
	}()

	if err := n.Dispatch(); err != nil {
		log.Error("API server stopped", zap.Error(err))
		return err
	}
	return nil
}
