// Copyright 2024 The Taskbrd Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package cmd

import (
	"errors"
	"fmt"
	"os"
	"text/tabwriter"

	auth_model "github.com/taskbrd/taskbrd/models/auth"
	user_model "github.com/taskbrd/taskbrd/models/user"
	"github.com/taskbrd/taskbrd/modules/util"

	"github.com/urfave/cli/v2"
)

// CmdAdmin represents the available admin sub-command.
var CmdAdmin = &cli.Command{
	Name:  "admin",
	Usage: "Perform common administrative operations",
	Subcommands: []*cli.Command{
		subcmdUser,
	},
}

var subcmdUser = &cli.Command{
	Name:  "user",
	Usage: "Modify users",
	Subcommands: []*cli.Command{
		microcmdUserCreate,
		microcmdUserList,
	},
}

var microcmdUserCreate = &cli.Command{
	Name:   "create",
	Usage:  "Create a new user in database",
	Action: runCreateUser,
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:  "email",
			Usage: "User email address",
		},
		&cli.StringFlag{
			Name:  "fullname",
			Usage: "User full display name",
		},
		&cli.StringFlag{
			Name:  "password",
			Usage: "User password",
		},
		&cli.BoolFlag{
			Name:  "admin",
			Usage: "User is an admin",
		},
		&cli.BoolFlag{
			Name:  "random-password",
			Usage: "Generate a random password for the user",
		},
		&cli.IntFlag{
			Name:  "random-password-length",
			Usage: "Length of the random password to be generated",
			Value: 12,
		},
		&cli.BoolFlag{
			Name:  "access-token",
			Usage: "Generate access token for the user",
		},
	},
}

var microcmdUserList = &cli.Command{
	Name:   "list",
	Usage:  "List users",
	Action: runListUsers,
	Flags: []cli.Flag{
		&cli.BoolFlag{
			Name:  "admin",
			Usage: "List only admin users",
		},
	},
}

func runCreateUser(c *cli.Context) error {
	if err := argsSet(c, "email"); err != nil {
		return err
	}

	if c.IsSet("password") && c.IsSet("random-password") {
		return errors.New("cannot set both -random-password and -password flags")
	}

	var password string
	switch {
	case c.IsSet("password"):
		password = c.String("password")
	case c.IsSet("random-password"):
		var err error
		password, err = util.CryptoRandomString(int64(c.Int("random-password-length")))
		if err != nil {
			return err
		}
		fmt.Printf("generated random password is '%s'\n", password)
	default:
		return errors.New("must set either password or random-password flag")
	}

	ctx, cancel := installSignals()
	defer cancel()

	if err := initDB(ctx); err != nil {
		return err
	}

	u := &user_model.User{
		Email:    c.String("email"),
		FullName: c.String("fullname"),
		IsAdmin:  c.Bool("admin"),
	}
	if err := u.SetPassword(password); err != nil {
		return err
	}

	if err := user_model.CreateUser(ctx, u); err != nil {
		return fmt.Errorf("CreateUser: %w", err)
	}

	if c.Bool("access-token") {
		t := &auth_model.AccessToken{UID: u.ID}
		if err := auth_model.NewAccessToken(ctx, t); err != nil {
			return err
		}
		fmt.Printf("Access token was successfully created... %s\n", t.Token)
	}

	fmt.Printf("New user '%s' has been successfully created!\n", u.Email)
	return nil
}

func runListUsers(c *cli.Context) error {
	ctx, cancel := installSignals()
	defer cancel()

	if err := initDB(ctx); err != nil {
		return err
	}

	users, _, err := user_model.SearchUsers(ctx, &user_model.SearchUserOptions{
		IsAdmin: c.Bool("admin"),
	})
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 5, 0, 1, ' ', 0)
	fmt.Fprintf(w, "ID\tEmail\tFullName\tIsAdmin\n")
	for _, u := range users {
		fmt.Fprintf(w, "%d\t%s\t%s\t%t\n", u.ID, u.Email, u.FullName, u.IsAdmin)
	}
	w.Flush()

	return nil
}
