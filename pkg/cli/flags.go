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
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/progress-bar/pkg/defaults"
	"github.com/NVIDIA/progress-bar/pkg/logging"
)

const (
	flagTemplateFile = "template-file"
	flagIP           = "ip"
	flagPort         = "port"
	flagWorkers      = "workers"
	flagConfig       = "config"
	flagLogLevel     = "log-level"
	flagRateLimit    = "rate-limit"
	flagRateBurst    = "rate-burst"
)

func serveFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:      flagTemplateFile,
			Aliases:   []string{"f"},
			Usage:     "SVG template file rendered for every request (default: embedded template)",
			Sources:   cli.EnvVars("PBAR_TEMPLATE_FILE"),
			TakesFile: true,
		},
		&cli.StringFlag{
			Name:    flagIP,
			Aliases: []string{"i"},
			Usage:   "IP address to bind",
			Sources: cli.EnvVars("PBAR_IP"),
			Value:   defaults.ServerAddress,
		},
		&cli.IntFlag{
			Name:    flagPort,
			Aliases: []string{"p"},
			Usage:   "TCP port to listen on",
			Sources: cli.EnvVars("PORT"),
			Value:   defaults.ServerPort,
			Validator: func(p int) error {
				if p < defaults.MinPort || p > defaults.MaxPort {
					return fmt.Errorf("port %d out of range [%d, %d]", p, defaults.MinPort, defaults.MaxPort)
				}
				return nil
			},
		},
		&cli.IntFlag{
			Name:    flagWorkers,
			Aliases: []string{"w"},
			Usage:   "number of requests rendered concurrently",
			Sources: cli.EnvVars("PBAR_WORKERS"),
			Value:   defaults.ServerWorkers,
			Validator: func(n int) error {
				if n < 1 {
					return fmt.Errorf("workers must be at least 1, got %d", n)
				}
				return nil
			},
		},
		&cli.StringFlag{
			Name:      flagConfig,
			Aliases:   []string{"c"},
			Usage:     "YAML configuration file",
			Sources:   cli.EnvVars("PBAR_CONFIG"),
			TakesFile: true,
		},
		&cli.StringFlag{
			Name:    flagLogLevel,
			Usage:   "log level (debug, info, warn, error)",
			Sources: cli.EnvVars(logging.EnvLogLevel),
			Value:   "info",
		},
		&cli.FloatFlag{
			Name:  flagRateLimit,
			Usage: "sustained requests per second across all clients",
			Value: defaults.ServerRateLimit,
		},
		&cli.IntFlag{
			Name:  flagRateBurst,
			Usage: "rate limiter burst size",
			Value: defaults.ServerRateLimitBurst,
		},
	}
}
