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

package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	pberrors "github.com/NVIDIA/progress-bar/pkg/errors"
	"github.com/google/uuid"
)

// withMiddleware wraps handlers with common middleware
func (s *Server) withMiddleware(handler http.HandlerFunc) http.HandlerFunc {
	return s.metricsMiddleware(
		s.versionMiddleware(
			s.requestIDMiddleware(
				s.panicRecoveryMiddleware( // Recover first to prevent token waste on panics
					s.rateLimitMiddleware(
						s.workerMiddleware(
							s.loggingMiddleware(handler),
						),
					),
				),
			),
		),
	)
}

// Middleware implementations

// versionMiddleware advertises the build version of the serving binary
func (s *Server) versionMiddleware(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		SetVersionHeader(w, s.config.Version)

		ctx := context.WithValue(r.Context(), contextKeyServerVersion, s.config.Version)

		next.ServeHTTP(w, r.WithContext(ctx))
	}
}

// requestIDMiddleware extracts or generates request IDs
func (s *Server) requestIDMiddleware(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get("X-Request-Id")
		if requestID == "" {
			requestID = uuid.New().String()
		}

		// Validate UUID format if provided
		if _, err := uuid.Parse(requestID); err != nil {
			requestID = uuid.New().String()
		}

		// Store in context and response header
		ctx := context.WithValue(r.Context(), contextKeyRequestID, requestID)
		w.Header().Set("X-Request-Id", requestID)

		next.ServeHTTP(w, r.WithContext(ctx))
	}
}

// rateLimitMiddleware implements rate limiting
func (s *Server) rateLimitMiddleware(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !s.rateLimiter.Allow() {
			rateLimitRejects.Inc()
			w.Header().Set("Retry-After", "1")
			s.writeError(w, r, pberrors.NewWithContext(pberrors.ErrCodeRateLimitExceeded,
				"Rate limit exceeded", map[string]any{
					"limit": float64(s.config.RateLimit),
					"burst": s.config.RateLimitBurst,
				}))
			return
		}

		// Add rate limit headers
		w.Header().Set("X-RateLimit-Limit", fmt.Sprintf("%d", int(s.config.RateLimit)))
		w.Header().Set("X-RateLimit-Remaining", fmt.Sprintf("%d", int(s.rateLimiter.Tokens())))
		w.Header().Set("X-RateLimit-Reset", fmt.Sprintf("%d", time.Now().Add(time.Second).Unix()))

		next.ServeHTTP(w, r)
	}
}

// workerMiddleware bounds the number of requests executing the handler at
// once. Requests queue until a worker frees up or the client goes away.
func (s *Server) workerMiddleware(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		if err := s.workers.Acquire(r.Context(), 1); err != nil {
			code := pberrors.ErrCodeUnavailable
			if errors.Is(err, context.DeadlineExceeded) {
				code = pberrors.ErrCodeTimeout
			}
			s.writeError(w, r, pberrors.WrapWithContext(code,
				"No worker available", err, map[string]any{
					"workers": s.config.Workers,
				}))
			return
		}
		defer s.workers.Release(1)
		workerWaitDuration.Observe(time.Since(start).Seconds())

		workersBusy.Inc()
		defer workersBusy.Dec()

		next.ServeHTTP(w, r)
	}
}

// panicRecoveryMiddleware recovers from panics
func (s *Server) panicRecoveryMiddleware(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if err := recover(); err != nil {
				panicRecoveries.Inc()
				var errMsg string
				switch v := err.(type) {
				case error:
					errMsg = v.Error()
				default:
					errMsg = fmt.Sprintf("%v", v)
				}
				slog.Error("panic recovered",
					"error", errMsg,
					"requestID", r.Context().Value(contextKeyRequestID),
					"version", r.Context().Value(contextKeyServerVersion),
					"path", r.URL.Path,
					"method", r.Method,
				)
				s.writeError(w, r, pberrors.New(pberrors.ErrCodeInternal, "Internal server error"))
			}
		}()
		next.ServeHTTP(w, r)
	}
}

// loggingMiddleware traces requests at debug level. The application handler
// owns the per-request outcome record.
func (s *Server) loggingMiddleware(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		requestID := r.Context().Value(contextKeyRequestID)
		version := r.Context().Value(contextKeyServerVersion)

		// Wrap response writer to track status code
		rw := newResponseWriter(w)

		slog.Debug("request started",
			"requestID", requestID,
			"version", version,
			"method", r.Method,
			"path", r.URL.Path,
		)

		next.ServeHTTP(rw, r)

		slog.Debug("request completed",
			"requestID", requestID,
			"version", version,
			"method", r.Method,
			"path", r.URL.Path,
			"status", rw.Status(),
			"duration", time.Since(start).String(),
		)
	}
}

// writeError hands a middleware rejection to the configured ErrorHandler,
// falling back to the JSON envelope.
func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	if s.config.ErrorHandler != nil {
		s.config.ErrorHandler(w, r, err)
		return
	}
	WriteErrorFromErr(w, r, err, "Internal server error", nil)
}
