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

// Package cli implements the pbar command-line interface.
//
// # Usage
//
//	pbar [--template-file FILE] [--ip ADDR] [--port PORT] [--workers N] [--config FILE]
//
// pbar serves progress bar SVG images rendered from query parameters:
//
//	curl 'http://127.0.0.1:5005/?progress=42&title=Build'
//
// # Flags
//
//	--template-file, -f  SVG template file (default: embedded template)
//	--ip, -i             bind address (default: 127.0.0.1)
//	--port, -p           listen port (default: 5005)
//	--workers, -w        requests rendered concurrently (default: 1)
//	--config, -c         YAML configuration file
//	--log-level          debug, info, warn or error (default: info)
//	--rate-limit         sustained requests per second
//	--rate-burst         rate limiter burst size
//	--help, -h           show help
//	--version, -v        show version
//
// Flags override values from the configuration file, which override the
// built-in defaults.
//
// # Environment Variables
//
//	PBAR_TEMPLATE_FILE        same as --template-file
//	PBAR_IP                   same as --ip
//	PORT                      same as --port
//	PBAR_WORKERS              same as --workers
//	PBAR_CONFIG               same as --config
//	LOG_LEVEL                 same as --log-level
//	SHUTDOWN_TIMEOUT_SECONDS  graceful shutdown budget
//
// # Exit Codes
//
//	0  Clean shutdown
//	1  Invalid arguments, unusable template, or the listener could not be bound
//
// Version information is embedded at build time using ldflags:
//
//	go build -ldflags="-X 'github.com/NVIDIA/progress-bar/pkg/cli.version=1.0.0'"
package cli
