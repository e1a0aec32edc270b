// SPDX-FileCopyrightText: Copyright (c) 2026, Josh Williams. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// check-do-kernel is a Nagios-convention plugin that reports whether a
// DigitalOcean droplet's configured boot kernel is the newest
// comparable kernel the provider offers.
package main

import (
	"context"
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"

	"github.com/joshwilliams/check-digital-ocean-kernel/app/build"
	"github.com/joshwilliams/check-digital-ocean-kernel/app/config"
	"github.com/joshwilliams/check-digital-ocean-kernel/app/digitalocean"
	"github.com/joshwilliams/check-digital-ocean-kernel/app/domain/kernel"
	"github.com/joshwilliams/check-digital-ocean-kernel/app/logging"
	"github.com/joshwilliams/check-digital-ocean-kernel/app/status"
)

const (
	FlagKey      = "key"
	FlagHostname = "hostname"
	FlagList     = "list"
	FlagAll      = "all"
	FlagMatching = "matching"
	FlagCritical = "critical"
	FlagTimeout  = "timeout"
	FlagConfig   = "config"
	FlagVerbose  = "verbose"
)

func main() {
	// the repeatable -v belongs to --verbose
	cli.VersionFlag = &cli.BoolFlag{Name: "version", Aliases: []string{"V"}, Usage: "print the version"}

	app := &cli.App{
		Name:     "check-do-kernel",
		Version:  fmt.Sprintf("%s/%s-%s", build.GetVersion(), runtime.GOOS, runtime.GOARCH),
		Compiled: time.Now(),
		Authors: []*cli.Author{
			{Name: build.AuthorName, Email: build.AuthorEmail},
		},
		Copyright:            build.Copyright,
		Usage:                "check whether a DigitalOcean droplet boots the newest comparable kernel",
		EnableBashCompletion: true,
		Flags: []cli.Flag{
			&cli.StringFlag{Name: FlagKey, Aliases: []string{"k"}, Usage: "DigitalOcean API token (falls back to DO_API_KEY)"},
			&cli.StringFlag{Name: FlagHostname, Aliases: []string{"H"}, Usage: "hostname of the droplet to check"},
			&cli.BoolFlag{Name: FlagList, Usage: "list droplet hostnames and their current kernels, then exit"},
			&cli.BoolFlag{Name: FlagAll, Usage: "list every kernel offered for the droplet, then exit"},
			&cli.BoolFlag{Name: FlagMatching, Usage: "list only the kernels comparable to the current one, then exit"},
			&cli.BoolFlag{Name: FlagCritical, Aliases: []string{"c"}, Usage: "report CRITICAL instead of WARNING when a newer kernel is available"},
			&cli.IntFlag{Name: FlagTimeout, Aliases: []string{"t"}, Usage: "timeout per API call in seconds", Value: 30},
			&cli.StringFlag{Name: FlagConfig, Aliases: []string{"f"}, Usage: "optional YAML settings file"},
			&cli.BoolFlag{Name: FlagVerbose, Aliases: []string{"v"}, Usage: "diagnostic output on stderr, repeat up to 3 times"},
		},
		Action: run,
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(status.StateUnknown.ExitCode())
	}
}

func run(c *cli.Context) error {
	logger, err := logging.NewLogger(logging.WithVerbosity(c.Count(FlagVerbose)))
	if err != nil {
		return cli.Exit(err.Error(), status.StateUnknown.ExitCode())
	}
	ctx := logger.WithContext(c.Context)

	var files []string
	if cfgFile := c.String(FlagConfig); cfgFile != "" {
		files = append(files, cfgFile)
	}
	cfg, err := config.NewSettings(files...)
	if err != nil {
		return cli.Exit(fmt.Sprintf("failed to load settings: %v", err), status.StateUnknown.ExitCode())
	}

	// flags override file and environment
	if key := c.String(FlagKey); key != "" {
		cfg.DigitalOcean.Token = key
	}
	if c.IsSet(FlagTimeout) {
		cfg.DigitalOcean.Timeout = time.Duration(c.Int(FlagTimeout)) * time.Second
	}

	if err := cfg.Validate(); err != nil {
		return cli.Exit(fmt.Sprintf("invalid configuration: %v (see --help)", err), status.StateUnknown.ExitCode())
	}

	hostname := c.String(FlagHostname)
	if hostname == "" && !c.Bool(FlagList) {
		return cli.Exit("a hostname is required unless --list is given (see --help)", status.StateUnknown.ExitCode())
	}

	client := digitalocean.NewClient(cfg, logger)

	switch {
	case c.Bool(FlagList):
		return listDroplets(ctx, client)
	case c.Bool(FlagAll):
		return listKernels(ctx, client, hostname, false)
	case c.Bool(FlagMatching):
		return listKernels(ctx, client, hostname, true)
	default:
		return check(ctx, client, hostname, c.Bool(FlagCritical))
	}
}

// listDroplets prints every droplet hostname and its current kernel
// name, tab-separated.
func listDroplets(ctx context.Context, client *digitalocean.Client) error {
	droplets, err := client.ListDroplets(ctx)
	if err != nil {
		return cli.Exit(err.Error(), status.StateUnknown.ExitCode())
	}

	for _, d := range droplets {
		name := "-"
		if d.Kernel != nil {
			name = d.Kernel.Name
		}
		fmt.Printf("%s\t%s\n", d.Name, name)
	}
	return nil
}

// listKernels prints the kernels offered for the droplet, flagging the
// currently configured one. With matchingOnly it restricts the listing
// to the comparable set, newest first.
func listKernels(ctx context.Context, client *digitalocean.Client, hostname string, matchingOnly bool) error {
	droplet, kernels, err := fetch(ctx, client, hostname)
	if err != nil {
		return cli.Exit(err.Error(), status.StateUnknown.ExitCode())
	}

	current := droplet.Kernel
	if matchingOnly {
		if current == nil {
			return cli.Exit(fmt.Sprintf("droplet %q reports no configured kernel", hostname), status.StateUnknown.ExitCode())
		}
		sel := kernel.Select(*current, kernels, kernel.BuildFilter(current.Name))
		kernels = sel.Comparable
	}

	for _, k := range kernels {
		marker := ""
		if current != nil && k.ID == current.ID {
			marker = "*"
		}
		fmt.Printf("%d\t%s\t%s\n", k.ID, k.Name, marker)
	}
	return nil
}

// check runs the full pipeline and exits with the Nagios state code.
func check(ctx context.Context, client *digitalocean.Client, hostname string, critical bool) error {
	droplet, kernels, err := fetch(ctx, client, hostname)
	if err != nil {
		return emit(status.Unknownf("%v", err))
	}
	if droplet.Kernel == nil {
		return emit(status.Unknownf("droplet %q reports no configured kernel", hostname))
	}

	filter := kernel.BuildFilter(droplet.Kernel.Name)
	log.Ctx(ctx).Debug().Str("filter", filter.String()).Msg("built comparability filter")

	sel := kernel.Select(*droplet.Kernel, kernels, filter)
	return emit(status.FromSelection(sel, critical))
}

func fetch(ctx context.Context, client *digitalocean.Client, hostname string) (*digitalocean.Droplet, []digitalocean.Kernel, error) {
	droplet, err := client.DropletByName(ctx, hostname)
	if err != nil {
		return nil, nil, err
	}

	kernels, err := client.ListKernels(ctx, droplet.ID)
	if err != nil {
		return nil, nil, err
	}
	return droplet, kernels, nil
}

// emit prints the status line and carries the state out as the exit code.
func emit(r status.Report) error {
	fmt.Println(r.Render())
	return cli.Exit("", r.State.ExitCode())
}
