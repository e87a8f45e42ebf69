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

// Package api assembles the pbar HTTP service.
//
// It loads and probes the progress bar template, builds the request handler
// and hands both to pkg/server, which owns the listener, the middleware chain
// and graceful shutdown.
//
// # Usage
//
//	err := api.Serve(ctx, api.Options{
//	    Version:      version,
//	    TemplateFile: "/etc/pbar/bar.svg",
//	    Server:       server.NewConfig(),
//	})
//
// An empty TemplateFile selects the embedded default template.
//
// # Endpoints
//
// Application endpoint (rate limited, bounded by the worker count):
//   - GET / - render a progress bar from query parameters
//
// System endpoints:
//   - GET /health  - liveness
//   - GET /ready   - readiness
//   - GET /metrics - Prometheus metrics
//
// # Startup
//
// The template is read and parsed exactly once, then rendered against a
// sample context and parsed as SVG. Any failure is returned before the
// listener is bound.
package api
