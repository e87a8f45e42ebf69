// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/urfave/cli/v3"
	"golang.org/x/time/rate"

	"github.com/NVIDIA/progress-bar/pkg/api"
	"github.com/NVIDIA/progress-bar/pkg/config"
	"github.com/NVIDIA/progress-bar/pkg/logging"
	"github.com/NVIDIA/progress-bar/pkg/server"
)

const (
	name           = "pbar"
	versionDefault = "dev"
)

var (
	// overridden during build with ldflags
	version = versionDefault
	commit  = "unknown"
	date    = "unknown"

	// serve is replaced in tests.
	serve = api.Serve
)

// Execute runs the root command and exits non-zero on failure.
// This is called by main.main().
func Execute() {
	if err := newRootCmd().Run(context.Background(), os.Args); err != nil {
		slog.Error("pbar failed", "error", err)
		os.Exit(1)
	}
}

func newRootCmd() *cli.Command {
	return &cli.Command{
		Name:    name,
		Usage:   "Serve progress bar SVG images over HTTP",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
		Description: `pbar renders a progress bar image for every GET / request. The
progress, scale, title, colors, widths and suffix are taken from the query
string, for example:

  curl 'http://127.0.0.1:5005/?progress=42&title=Build'`,
		Flags: serveFlags(),
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			logging.SetDefaultStructuredLoggerWithLevel(name, version, cmd.String(flagLogLevel))
			slog.Debug("starting",
				"name", name,
				"version", version,
				"commit", commit,
				"date", date)
			return ctx, nil
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			opts, err := optionsFromCmd(cmd)
			if err != nil {
				return err
			}
			return serve(ctx, opts)
		},
	}
}

// optionsFromCmd layers defaults, the configuration file and explicitly set
// flags, in that order.
func optionsFromCmd(cmd *cli.Command) (api.Options, error) {
	file := &config.Config{}
	if path := cmd.String(flagConfig); path != "" {
		var err error
		if file, err = config.Load(path); err != nil {
			return api.Options{}, fmt.Errorf("error loading config %q: %w", path, err)
		}
	}

	cfg := server.NewConfig()
	file.ApplyTo(cfg)

	if cmd.IsSet(flagIP) {
		cfg.Address = cmd.String(flagIP)
	}
	if cmd.IsSet(flagPort) {
		cfg.Port = cmd.Int(flagPort)
	}
	if cmd.IsSet(flagWorkers) {
		cfg.Workers = cmd.Int(flagWorkers)
	}
	if cmd.IsSet(flagRateLimit) {
		cfg.RateLimit = rate.Limit(cmd.Float(flagRateLimit))
	}
	if cmd.IsSet(flagRateBurst) {
		cfg.RateLimitBurst = cmd.Int(flagRateBurst)
	}

	templateFile := file.Template.File
	if cmd.IsSet(flagTemplateFile) {
		templateFile = cmd.String(flagTemplateFile)
	}

	return api.Options{
		Version:      version,
		TemplateFile: templateFile,
		Palette:      file.Palette,
		Server:       cfg,
	}, nil
}
