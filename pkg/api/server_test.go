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

package api

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pberrors "github.com/NVIDIA/progress-bar/pkg/errors"
	"github.com/NVIDIA/progress-bar/pkg/progress"
	"github.com/NVIDIA/progress-bar/pkg/render"
	"github.com/NVIDIA/progress-bar/pkg/server"
)

func writeTemplate(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "bar.svg")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestOptions_TemplateSource(t *testing.T) {
	assert.True(t, Options{}.TemplateSource().IsEmbedded())

	src := Options{TemplateFile: "/tmp/bar.svg"}.TemplateSource()
	assert.False(t, src.IsEmbedded())
	assert.Equal(t, "file:/tmp/bar.svg", src.String())
}

func TestLoadTemplate(t *testing.T) {
	tests := []struct {
		name     string
		template string
		wantErr  bool
	}{
		{
			name:     "minimal svg",
			template: `<svg xmlns="http://www.w3.org/2000/svg" width="{{.progress_width}}" height="20"><rect width="{{int .progress}}" height="20" fill="{{.progress_color}}"/></svg>`,
		},
		{
			name:     "syntax error",
			template: `<svg width="{{.progress_width}"/>`,
			wantErr:  true,
		},
		{
			name:     "unknown field",
			template: `<svg width="{{.nope}}" height="20"/>`,
			wantErr:  true,
		},
		{
			name:     "not svg",
			template: `progress: {{.progress}}`,
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store, err := LoadTemplate(Options{TemplateFile: writeTemplate(t, tt.template)})
			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, pberrors.ErrCodeInternal, pberrors.CodeOf(err))
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, store)
		})
	}
}

func TestLoadTemplate_Missing(t *testing.T) {
	_, err := LoadTemplate(Options{TemplateFile: filepath.Join(t.TempDir(), "missing.svg")})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read template file")
}

func TestLoadTemplate_ReadOnce(t *testing.T) {
	path := writeTemplate(t, `<svg xmlns="http://www.w3.org/2000/svg" width="{{.progress_width}}" height="20"><text>{{int .progress}}</text></svg>`)

	store, err := LoadTemplate(Options{TemplateFile: path})
	require.NoError(t, err)

	// Changes after startup are not observed.
	require.NoError(t, os.WriteFile(path, []byte("changed"), 0o600))

	tmpl, err := store.Lookup(render.TemplateName)
	require.NoError(t, err)
	out, err := store.Render(tmpl, progress.Derive(&progress.Args{Progress: 7}, progress.DefaultPalette()))
	require.NoError(t, err)
	assert.Contains(t, out, "<text>7</text>")
}

func TestNewServer(t *testing.T) {
	t.Setenv("PORT", "")

	s, err := NewServer(Options{Version: "test"})
	require.NoError(t, err)

	tests := []struct {
		method      string
		target      string
		wantStatus  int
		wantType    string
		wantContent string
	}{
		{http.MethodGet, "/?progress=50", http.StatusOK, "image/svg+xml; charset=utf-8", progress.DefaultMidColor},
		{http.MethodGet, "/", http.StatusBadRequest, "text/plain; charset=utf-8", "progress"},
		{http.MethodPost, "/?progress=50", http.StatusMethodNotAllowed, "text/plain; charset=utf-8", ""},
		{http.MethodGet, "/health", http.StatusOK, "application/json", "healthy"},
		{http.MethodGet, "/bar", http.StatusNotFound, "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.target, func(t *testing.T) {
			w := httptest.NewRecorder()
			s.Handler().ServeHTTP(w, httptest.NewRequest(tt.method, tt.target, nil))

			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantType != "" {
				assert.Equal(t, tt.wantType, w.Header().Get("Content-Type"))
			}
			assert.Contains(t, w.Body.String(), tt.wantContent)
		})
	}
}

func TestNewServer_Headers(t *testing.T) {
	s, err := NewServer(Options{Version: "v9.9.9"})
	require.NoError(t, err)

	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/?progress=10", nil))

	assert.Equal(t, "v9.9.9", w.Header().Get(server.VersionHeader))
	assert.NotEmpty(t, w.Header().Get("X-Request-Id"))
}

func TestNewServer_Palette(t *testing.T) {
	s, err := NewServer(Options{Palette: progress.Palette{High: "#010203"}})
	require.NoError(t, err)

	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/?progress=99", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, strings.Contains(w.Body.String(), `fill="#010203"`))
}

func TestNewServer_InvalidConfig(t *testing.T) {
	cfg := server.NewConfig()
	cfg.Workers = 0

	_, err := NewServer(Options{Server: cfg})
	require.Error(t, err)
	assert.Equal(t, pberrors.ErrCodeInvalidRequest, pberrors.CodeOf(err))
}

func TestNewServer_BadTemplate(t *testing.T) {
	_, err := NewServer(Options{TemplateFile: writeTemplate(t, "{{.progress_width}")})
	require.Error(t, err)
}

func TestNewServer_RejectedRequestsMatchPipelineFailures(t *testing.T) {
	prev := slog.Default()
	var logs bytes.Buffer
	slog.SetDefault(slog.New(slog.NewJSONHandler(&logs, &slog.HandlerOptions{Level: slog.LevelInfo})))
	t.Cleanup(func() { slog.SetDefault(prev) })

	cfg := server.NewConfig()
	cfg.RateLimit = 0.001
	cfg.RateLimitBurst = 1

	s, err := NewServer(Options{Server: cfg})
	require.NoError(t, err)

	codes := make([]int, 0, 2)
	for i := 0; i < 2; i++ {
		req := httptest.NewRequest(http.MethodGet, "/?progress=50", nil)
		req.RemoteAddr = "192.0.2.10:5000"
		w := httptest.NewRecorder()
		s.Handler().ServeHTTP(w, req)
		codes = append(codes, w.Code)

		if i == 1 {
			assert.Equal(t, "text/plain; charset=utf-8", w.Header().Get("Content-Type"))
			assert.Equal(t, "Rate limit exceeded", w.Body.String())
			assert.Equal(t, "1", w.Header().Get("Retry-After"))
		}
	}
	assert.Equal(t, []int{http.StatusOK, http.StatusTooManyRequests}, codes)

	var outcomes []string
	for _, line := range bytes.Split(bytes.TrimSpace(logs.Bytes()), []byte("\n")) {
		var rec map[string]any
		require.NoError(t, json.Unmarshal(line, &rec))
		if outcome, ok := rec["outcome"].(string); ok {
			outcomes = append(outcomes, outcome)
			assert.Equal(t, "192.0.2.10", rec["addr"])
			assert.Equal(t, "/?progress=50", rec["query"])
		}
	}
	assert.Equal(t, []string{string(progress.OutcomeOK), string(progress.OutcomeClientError)}, outcomes)
}

func TestLoadTemplate_BandFilter(t *testing.T) {
	path := writeTemplate(t, `<svg xmlns="http://www.w3.org/2000/svg" width="10" height="20" class="{{band .progress .scale}}"></svg>`)

	store, err := LoadTemplate(Options{TemplateFile: path})
	require.NoError(t, err)

	tmpl, err := store.Lookup(render.TemplateName)
	require.NoError(t, err)
	out, err := store.Render(tmpl, progress.Derive(&progress.Args{Progress: 10}, progress.DefaultPalette()))
	require.NoError(t, err)
	assert.Contains(t, out, `class="low"`)
}
