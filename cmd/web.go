// Copyright 2024 The Taskbrd Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package cmd

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/taskbrd/taskbrd/modules/log"
	"github.com/taskbrd/taskbrd/modules/setting"
	"github.com/taskbrd/taskbrd/routers"

	"github.com/urfave/cli/v2"
)

// CmdWeb represents the available web sub-command.
var CmdWeb = &cli.Command{
	Name:  "web",
	Usage: "Start the api server",
	Description: `Taskbrd web server is the only thing you need to run,
and it takes care of all the other things for you`,
	Action: runWeb,
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:    "port",
			Aliases: []string{"p"},
			Usage:   "Temporary port number to prevent conflict",
		},
	},
}

func runWeb(c *cli.Context) error {
	ctx, cancel := installSignals()
	defer cancel()

	log.Info("Starting Taskbrd %s", setting.AppVer)

	routers.Init(ctx)

	if c.IsSet("port") {
		setting.HTTPPort = c.String("port")
	}

	addr := net.JoinHostPort(setting.HTTPAddr, setting.HTTPPort)
	server := &http.Server{
		Addr:    addr,
		Handler: routers.NormalRoutes(),
	}

	shutdownComplete := make(chan struct{})
	go func() {
		<-ctx.Done()
		log.Info("Shutting down the http server ...")
		shutdownCtx, cancelShutdown := context.WithTimeout(
			context.Background(), time.Duration(setting.GracefulShutdownTimeout)*time.Second)
		defer cancelShutdown()
		if err := server.Shutdown(shutdownCtx); err != nil {
			log.Error("Failed to shut down the http server gracefully: %v", err)
		}
		close(shutdownComplete)
	}()

	log.Info("Listen: http://%s", addr)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Critical("Failed to start server: %v", err)
		return err
	}

	<-shutdownComplete
	log.Info("HTTP listener %s closed", addr)
	return nil
}
