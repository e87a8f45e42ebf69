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

// Package server provides the HTTP transport for pbar: configuration,
// the middleware chain, system endpoints and graceful shutdown.
//
// # Usage
//
//	s := server.New(
//	    server.WithName("pbar"),
//	    server.WithVersion(version),
//	    server.WithHandler(map[string]http.HandlerFunc{
//	        "/{$}": handler.HandleProgress,
//	    }),
//	    server.WithErrorHandler(handler.HandleError),
//	)
//	if err := s.Run(ctx); err != nil {
//	    return err
//	}
//
// Custom configuration:
//
//	cfg := server.NewConfig()
//	cfg.Address = "0.0.0.0"
//	cfg.Port = 8080
//	cfg.Workers = 4
//	s := server.New(server.WithConfig(cfg))
//
// # Endpoints
//
// Application handlers are registered under the mux patterns supplied in
// Config.Handlers and run behind the middleware chain. The server adds:
//
//	GET /health   liveness, always 200
//	GET /ready    200 once the listener is bound, 503 otherwise
//	GET /metrics  Prometheus exposition
//
// # Middleware
//
// Application handlers are wrapped, outermost first, with:
//
//   - metrics: request count, latency and in-flight gauge labelled by route pattern
//   - version: X-Pbar-Version response header
//   - request id: X-Request-Id is accepted when it is a UUID, generated otherwise
//   - panic recovery: 500
//   - rate limit: token bucket (golang.org/x/time/rate), 429 with Retry-After
//   - workers: at most Config.Workers handlers run at once (golang.org/x/sync/semaphore),
//     503 when the client goes away while queued, 504 when its deadline passes
//   - logging: debug-level request trace
//
// Rejections on application routes go to Config.ErrorHandler when set, so
// they are answered and logged the same way as the handler's own failures.
// Otherwise, and always on system endpoints, errors use a JSON envelope:
//
//	{
//	  "code": "RATE_LIMIT_EXCEEDED",
//	  "message": "Rate limit exceeded",
//	  "details": {"limit": 100, "burst": 200},
//	  "requestId": "550e8400-e29b-41d4-a716-446655440000",
//	  "timestamp": "2025-12-22T12:00:00Z",
//	  "retryable": true
//	}
//
// # Lifecycle
//
// Run installs SIGINT/SIGTERM handling and blocks until shutdown completes.
// When started by systemd with Type=notify, READY=1 is sent once the
// listener is bound and STOPPING=1 when shutdown begins.
//
// Environment:
//
//	PORT                      listen port
//	SHUTDOWN_TIMEOUT_SECONDS  graceful shutdown budget
package server
