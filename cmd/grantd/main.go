// SPDX-FileCopyrightText: Copyright 2025 Quayside, Inc.
// SPDX-License-Identifier: Apache-2.0

// Package main is the entry point for the grantd authorization server.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/quayside/grantd/cmd/grantd/app"
	"github.com/quayside/grantd/pkg/logger"
)

func main() {
	logger.Initialize()

	// A context that ends on SIGINT/SIGTERM drives graceful shutdown.
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := app.NewRootCmd().ExecuteContext(ctx); err != nil {
		logger.Errorf("Error executing command: %v", err)
		os.Exit(1)
	}
}
