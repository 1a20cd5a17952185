// Copyright 2024 The Taskbrd Authors. All rights reserved.
// SPDX-License-Identifier: MIT

// Package cmd provides subcommands to the taskbrd binary
package cmd

import (
	"fmt"

	"github.com/taskbrd/taskbrd/modules/setting"

	"github.com/urfave/cli/v2"
)

func appGlobalFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "config",
			Aliases: []string{"c"},
			Usage:   "Set custom config file (defaults to '{WorkPath}/custom/conf/app.ini')",
		},
		&cli.StringFlag{
			Name:    "work-path",
			Aliases: []string{"w"},
			Usage:   "Set the working path (defaults to the current directory)",
		},
	}
}

// prepareWorkPathAndCfg resolves the global flags into the loaded
// configuration before any subcommand action runs
func prepareWorkPathAndCfg(c *cli.Context) error {
	setting.InitWorkPathAndCfg(c.String("work-path"), c.String("config"))
	return nil
}

// NewMainApp creates the cli application with every subcommand registered.
// Running the binary without a subcommand starts the web server.
func NewMainApp() *cli.App {
	app := cli.NewApp()
	app.Name = "taskbrd"
	app.Usage = "A self-hosted kanban board service"
	app.Description = fmt.Sprintf(`%s keeps boards, tasks and comments for small teams behind a JSON API. If no subcommand is given, it starts the web server by default.`, app.Name)
	app.Version = setting.AppVer
	app.EnableBashCompletion = true
	app.Flags = appGlobalFlags()
	app.Before = prepareWorkPathAndCfg
	app.Commands = []*cli.Command{
		CmdWeb,
		CmdAdmin,
	}
	app.DefaultCommand = CmdWeb.Name
	return app
}
