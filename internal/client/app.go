// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/MKhiriev/go-account-keeper/internal/adapter"
	"github.com/MKhiriev/go-account-keeper/internal/config"
	"github.com/MKhiriev/go-account-keeper/internal/logger"
	"github.com/MKhiriev/go-account-keeper/models"
)

const (
	usageRegister = "register <name> <email> <password>"
	usageVerify   = "verify <token>"
)

type command struct {
	usage      string
	privileged bool
	run        func(a *App, ctx context.Context, args []string) error
}

var commands = map[string]command{
	"register":          {usage: usageRegister, run: (*App).register},
	"verify":            {usage: usageVerify, run: (*App).verify},
	"login":             {usage: "login", run: (*App).login},
	"list":              {usage: "list", privileged: true, run: (*App).list},
	"block":             {usage: "block <id>...", privileged: true, run: (*App).block},
	"unblock":           {usage: "unblock <id>...", privileged: true, run: (*App).unblock},
	"delete":            {usage: "delete <id>...", privileged: true, run: (*App).delete},
	"delete-unverified": {usage: "delete-unverified <id>...", privileged: true, run: (*App).deleteUnverified},
	"ping":              {usage: "ping", run: (*App).ping},
	"version":           {usage: "version", run: (*App).version},
}

type App struct {
	api      adapter.AccountAPI
	email    string
	password string
	out      io.Writer
	logger   *logger.Logger
}

func NewApp(api adapter.AccountAPI, cfg *config.ClientConfig, out io.Writer, logger *logger.Logger) *App {
	return &App{
		api:      api,
		email:    cfg.Email,
		password: cfg.Password,
		out:      out,
		logger:   logger,
	}
}

func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return ErrNoCommand
	}

	cmd, ok := commands[args[0]]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownCommand, args[0])
	}

	a.logger.Debug().Str("command", args[0]).Msg("running command")

	if cmd.privileged {
		if _, err := a.authenticate(ctx); err != nil {
			return err
		}
	}

	if err := cmd.run(a, ctx, args[1:]); err != nil {
		return fmt.Errorf("%s: %w", args[0], err)
	}

	return nil
}

// Usage writes the list of supported commands.
func Usage(w io.Writer) {
	names := []string{"register", "verify", "login", "list", "block", "unblock", "delete", "delete-unverified", "ping", "version"}

	fmt.Fprintln(w, "commands:")
	for _, name := range names {
		fmt.Fprintf(w, "  %s\n", commands[name].usage)
	}
}

func (a *App) authenticate(ctx context.Context) (models.LoginResponse, error) {
	if a.email == "" || a.password == "" {
		return models.LoginResponse{}, ErrMissingCredentials
	}

	return a.api.Login(ctx, models.LoginRequest{Email: a.email, Password: a.password})
}

func (a *App) register(ctx context.Context, args []string) error {
	if len(args) != 3 {
		return fmt.Errorf("%w: %s", ErrUsage, usageRegister)
	}

	resp, err := a.api.Register(ctx, models.RegisterRequest{Name: args[0], Email: args[1], Password: args[2]})
	if err != nil {
		return err
	}

	fmt.Fprintln(a.out, resp.Message)
	fmt.Fprintf(a.out, "verify: %s\n", resp.VerifyURL)
	return nil
}

func (a *App) verify(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("%w: %s", ErrUsage, usageVerify)
	}

	if err := a.api.Verify(ctx, args[0]); err != nil {
		return err
	}

	fmt.Fprintln(a.out, "Account verified.")
	return nil
}

func (a *App) login(ctx context.Context, _ []string) error {
	resp, err := a.authenticate(ctx)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "%s (id %d, %s)\n", resp.Message, resp.ID, resp.Status)
	return nil
}

func (a *App) list(ctx context.Context, _ []string) error {
	accounts, err := a.api.List(ctx)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tEMAIL\tSTATUS\tLAST LOGIN\tCREATED")
	for _, acc := range accounts {
		lastLogin := "-"
		if acc.LastLogin != nil {
			lastLogin = acc.LastLogin.UTC().Format(time.DateTime)
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\n",
			acc.ID, acc.Name, acc.Email, acc.Status, lastLogin, acc.CreatedAt.UTC().Format(time.DateTime))
	}

	return tw.Flush()
}

func (a *App) block(ctx context.Context, args []string) error {
	ids, err := parseIDs(args)
	if err != nil {
		return err
	}

	res, err := a.api.Block(ctx, ids)
	if err != nil {
		return err
	}

	if res.SelfBlocked {
		fmt.Fprintln(a.out, "You blocked your own account. Logging out...")
		return nil
	}
	fmt.Fprintf(a.out, "Blocked %d account(s).\n", len(ids))
	return nil
}

func (a *App) unblock(ctx context.Context, args []string) error {
	ids, err := parseIDs(args)
	if err != nil {
		return err
	}

	if err = a.api.Unblock(ctx, ids); err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Unblocked %d account(s).\n", len(ids))
	return nil
}

func (a *App) delete(ctx context.Context, args []string) error {
	ids, err := parseIDs(args)
	if err != nil {
		return err
	}

	resp, err := a.api.Delete(ctx, ids)
	if err != nil {
		return err
	}

	fmt.Fprintln(a.out, resp.Message)
	return nil
}

func (a *App) deleteUnverified(ctx context.Context, args []string) error {
	ids, err := parseIDs(args)
	if err != nil {
		return err
	}

	deleted, err := a.api.DeleteUnverified(ctx, ids)
	if err != nil {
		return err
	}

	if len(deleted) == 0 {
		fmt.Fprintln(a.out, "No unverified accounts matched.")
		return nil
	}
	fmt.Fprintf(a.out, "Deleted unverified: %s\n", joinIDs(deleted))
	return nil
}

func (a *App) ping(ctx context.Context, _ []string) error {
	if err := a.api.PingDatabase(ctx); err != nil {
		return err
	}

	fmt.Fprintln(a.out, "DB OK")
	return nil
}

func (a *App) version(ctx context.Context, _ []string) error {
	info, err := a.api.Version(ctx)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Server version: %s\nServer build date: %s\nServer commit: %s\n",
		info.BuildVersion, info.BuildDate, info.BuildCommit)
	return nil
}

// parseIDs accepts ids as separate arguments or comma-separated lists.
func parseIDs(args []string) ([]int64, error) {
	var ids []int64
	for _, arg := range args {
		for _, part := range strings.Split(arg, ",") {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}
			id, err := strconv.ParseInt(part, 10, 64)
			if err != nil || id <= 0 {
				return nil, fmt.Errorf("%w: %q", ErrInvalidID, part)
			}
			ids = append(ids, id)
		}
	}

	if len(ids) == 0 {
		return nil, fmt.Errorf("%w: at least one id is required", ErrUsage)
	}

	return ids, nil
}

func joinIDs(ids []int64) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.FormatInt(id, 10)
	}
	return strings.Join(parts, ", ")
}
