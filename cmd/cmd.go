// Copyright 2024 The Taskbrd Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package cmd

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/taskbrd/taskbrd/models/db"
	"github.com/taskbrd/taskbrd/modules/setting"

	"github.com/urfave/cli/v2"
)

// argsSet checks that each of the named flags is set and non-empty
func argsSet(c *cli.Context, args ...string) error {
	for _, a := range args {
		if !c.IsSet(a) {
			return errors.New(a + " is not set")
		}
		if strings.TrimSpace(c.String(a)) == "" {
			return errors.New(a + " is required")
		}
	}
	return nil
}

// installSignals returns a context that ends on SIGINT or SIGTERM
func installSignals() (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		signalChannel := make(chan os.Signal, 1)

		signal.Notify(
			signalChannel,
			syscall.SIGINT,
			syscall.SIGTERM,
		)
		select {
		case <-signalChannel:
		case <-ctx.Done():
		}
		cancel()
		signal.Stop(signalChannel)
		close(signalChannel)
	}()

	return ctx, cancel
}

// initDB opens the database for commands that work on it directly, without
// going through the web boot sequence
func initDB(ctx context.Context) error {
	setting.LoadSettingsForInstall()
	return db.InitEngineWithSync(ctx)
}
