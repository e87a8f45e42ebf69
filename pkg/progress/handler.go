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

package progress

import (
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	pberrors "github.com/NVIDIA/progress-bar/pkg/errors"
	"github.com/NVIDIA/progress-bar/pkg/render"
	"github.com/NVIDIA/progress-bar/pkg/serializer"
)

// UnknownAddr is logged when the peer address cannot be determined.
const UnknownAddr = "<UNKNOWN>"

// Handler serves GET / progress bar images.
type Handler struct {
	store   *render.Store
	palette Palette
}

// Option configures a Handler.
type Option func(*Handler)

// WithPalette sets the colors used for defaults. Empty entries fall back to
// DefaultPalette.
func WithPalette(p Palette) Option {
	return func(h *Handler) {
		h.palette = p.WithDefaults()
	}
}

// NewHandler returns a Handler rendering through store. The store must be
// fully loaded before the handler serves its first request.
func NewHandler(store *render.Store, opts ...Option) *Handler {
	h := &Handler{
		store:   store,
		palette: DefaultPalette(),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// StatusFor maps an error to its HTTP status. Input-attributable pipeline
// failures are 400; admission failures keep their transport status; the
// rest is 500.
func StatusFor(err error) int {
	switch pberrors.CodeOf(err) {
	case pberrors.ErrCodeInvalidRequest, pberrors.ErrCodeRenderFailed:
		return http.StatusBadRequest
	case pberrors.ErrCodeMethodNotAllowed:
		return http.StatusMethodNotAllowed
	case pberrors.ErrCodeRateLimitExceeded:
		return http.StatusTooManyRequests
	case pberrors.ErrCodeUnavailable:
		return http.StatusServiceUnavailable
	case pberrors.ErrCodeTimeout:
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}

// HandleError answers a request that was rejected before reaching
// HandleProgress, such as by rate limiting or worker admission. The
// response and log record have the same shape as pipeline failures.
func (h *Handler) HandleError(w http.ResponseWriter, r *http.Request, err error) {
	h.respondError(w, r, StatusFor(err), diagnostic(err), err)
}

// HandleProgress processes GET / requests end-to-end.
func (h *Handler) HandleProgress(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		h.respondError(w, r, http.StatusMethodNotAllowed,
			fmt.Sprintf("Method %s not allowed", r.Method),
			pberrors.New(pberrors.ErrCodeMethodNotAllowed, "method not allowed"))
		return
	}

	args, err := ParseQuery(r.URL.Query())
	if err != nil {
		h.respondError(w, r, StatusFor(err),
			fmt.Sprintf("Failed to parse query: %s", diagnostic(err)), err)
		return
	}

	tmpl, err := h.store.Lookup(render.TemplateName)
	if err != nil {
		h.respondError(w, r, http.StatusInternalServerError,
			fmt.Sprintf("Failed to find template. It is probably a bug, please report it to the developer. %v", err), err)
		return
	}

	ctx := Derive(args, h.palette)
	colorBandsTotal.WithLabelValues(bandLabel(args)).Inc()
	slog.Debug("derived template context",
		"addr", peerAddr(r),
		"query", r.URL.RequestURI(),
		"context", ctx.String(),
	)

	start := time.Now()
	svg, err := h.store.Render(tmpl, ctx)
	renderDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		h.respondError(w, r, StatusFor(err),
			fmt.Sprintf("Failed to construct progress bar with parameters: %s", ctx), err)
		return
	}

	requestsTotal.WithLabelValues(string(OutcomeOK)).Inc()
	slog.Info("request served",
		"addr", peerAddr(r),
		"query", r.URL.RequestURI(),
		"outcome", OutcomeOK,
	)
	serializer.RespondSVG(w, http.StatusOK, svg)
}

// respondError writes a text diagnostic and logs the failure once, at Warn
// for client errors and Error for server errors.
func (h *Handler) respondError(w http.ResponseWriter, r *http.Request, status int, body string, err error) {
	outcome := OutcomeClientError
	level := slog.LevelWarn
	if status >= http.StatusInternalServerError {
		outcome = OutcomeServerError
		level = slog.LevelError
	}

	requestsTotal.WithLabelValues(string(outcome)).Inc()
	slog.Log(r.Context(), level, "request failed",
		"addr", peerAddr(r),
		"query", r.URL.RequestURI(),
		"outcome", outcome,
		"status", status,
		"error", err,
	)
	serializer.RespondText(w, status, body)
}

// diagnostic returns the user-facing part of err.
func diagnostic(err error) string {
	if se, ok := err.(*pberrors.StructuredError); ok {
		return se.Message
	}
	return err.Error()
}

func bandLabel(a *Args) string {
	if a.ProgressColor != nil {
		return "override"
	}
	return BandFor(a.Progress, a.ScaleOrDefault()).String()
}

// peerAddr returns the client IP, or UnknownAddr.
func peerAddr(r *http.Request) string {
	if r.RemoteAddr == "" {
		return UnknownAddr
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		if ip := net.ParseIP(r.RemoteAddr); ip != nil {
			return ip.String()
		}
		return UnknownAddr
	}
	if host == "" {
		return UnknownAddr
	}
	return host
}
