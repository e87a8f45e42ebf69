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
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"

	"github.com/NVIDIA/progress-bar/pkg/api"
	"github.com/NVIDIA/progress-bar/pkg/progress"
)

// clearEnv removes flag sources for the duration of the test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"PBAR_TEMPLATE_FILE", "PBAR_IP", "PORT", "PBAR_WORKERS", "PBAR_CONFIG", "LOG_LEVEL", "SHUTDOWN_TIMEOUT_SECONDS"} {
		if prev, ok := os.LookupEnv(key); ok {
			require.NoError(t, os.Unsetenv(key))
			t.Cleanup(func() { _ = os.Setenv(key, prev) })
		}
	}
}

// run executes the root command with serve stubbed and returns the options
// it would have served with.
func run(t *testing.T, args ...string) (api.Options, error) {
	t.Helper()

	var got api.Options
	prev := serve
	serve = func(_ context.Context, o api.Options) error {
		got = o
		return nil
	}
	t.Cleanup(func() { serve = prev })

	cmd := newRootCmd()
	cmd.Writer = io.Discard
	cmd.ErrWriter = io.Discard
	err := cmd.Run(context.Background(), append([]string{name}, args...))
	return got, err
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "pbar.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestRootCmd_Defaults(t *testing.T) {
	clearEnv(t)

	opts, err := run(t)
	require.NoError(t, err)

	assert.Equal(t, version, opts.Version)
	assert.Empty(t, opts.TemplateFile)
	assert.Equal(t, progress.Palette{}, opts.Palette)
	require.NotNil(t, opts.Server)
	assert.Equal(t, "127.0.0.1", opts.Server.Address)
	assert.Equal(t, 5005, opts.Server.Port)
	assert.Equal(t, 1, opts.Server.Workers)
}

func TestRootCmd_Flags(t *testing.T) {
	clearEnv(t)

	tests := []struct {
		name  string
		args  []string
		check func(t *testing.T, o api.Options)
	}{
		{
			name: "long names",
			args: []string{"--template-file", "/tmp/bar.svg", "--ip", "0.0.0.0", "--port", "8080", "--workers", "4"},
			check: func(t *testing.T, o api.Options) {
				assert.Equal(t, "/tmp/bar.svg", o.TemplateFile)
				assert.Equal(t, "0.0.0.0", o.Server.Address)
				assert.Equal(t, 8080, o.Server.Port)
				assert.Equal(t, 4, o.Server.Workers)
			},
		},
		{
			name: "short names",
			args: []string{"-f", "/tmp/bar.svg", "-i", "::1", "-p", "9000", "-w", "2"},
			check: func(t *testing.T, o api.Options) {
				assert.Equal(t, "/tmp/bar.svg", o.TemplateFile)
				assert.Equal(t, "::1", o.Server.Address)
				assert.Equal(t, 9000, o.Server.Port)
				assert.Equal(t, 2, o.Server.Workers)
			},
		},
		{
			name: "rate limiting",
			args: []string{"--rate-limit", "2.5", "--rate-burst", "5"},
			check: func(t *testing.T, o api.Options) {
				assert.Equal(t, rate.Limit(2.5), o.Server.RateLimit)
				assert.Equal(t, 5, o.Server.RateLimitBurst)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts, err := run(t, tt.args...)
			require.NoError(t, err)
			tt.check(t, opts)
		})
	}
}

func TestRootCmd_InvalidFlags(t *testing.T) {
	clearEnv(t)

	for _, args := range [][]string{
		{"--port", "0"},
		{"--port", "65536"},
		{"--port", "http"},
		{"--workers", "0"},
		{"--unknown"},
	} {
		_, err := run(t, args...)
		assert.Error(t, err, args)
	}
}

func TestRootCmd_Env(t *testing.T) {
	clearEnv(t)
	t.Setenv("PBAR_IP", "10.0.0.1")
	t.Setenv("PORT", "7000")
	t.Setenv("PBAR_WORKERS", "3")
	t.Setenv("PBAR_TEMPLATE_FILE", "/srv/bar.svg")

	opts, err := run(t)
	require.NoError(t, err)

	assert.Equal(t, "10.0.0.1", opts.Server.Address)
	assert.Equal(t, 7000, opts.Server.Port)
	assert.Equal(t, 3, opts.Server.Workers)
	assert.Equal(t, "/srv/bar.svg", opts.TemplateFile)
}

func TestRootCmd_ConfigFile(t *testing.T) {
	clearEnv(t)

	path := writeConfig(t, `
server:
  address: 0.0.0.0
  port: 8081
  workers: 8
template:
  file: /etc/pbar/bar.svg
palette:
  mid: "#abcdef"
`)

	t.Run("file values apply", func(t *testing.T) {
		opts, err := run(t, "--config", path)
		require.NoError(t, err)

		assert.Equal(t, "0.0.0.0", opts.Server.Address)
		assert.Equal(t, 8081, opts.Server.Port)
		assert.Equal(t, 8, opts.Server.Workers)
		assert.Equal(t, "/etc/pbar/bar.svg", opts.TemplateFile)
		assert.Equal(t, "#abcdef", opts.Palette.Mid)
	})

	t.Run("flags win over file", func(t *testing.T) {
		opts, err := run(t, "-c", path, "-p", "9999", "-f", "/tmp/other.svg")
		require.NoError(t, err)

		assert.Equal(t, 9999, opts.Server.Port)
		assert.Equal(t, "/tmp/other.svg", opts.TemplateFile)
		assert.Equal(t, 8, opts.Server.Workers)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := run(t, "--config", filepath.Join(t.TempDir(), "nope.yaml"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "error loading config")
	})

	t.Run("invalid file", func(t *testing.T) {
		_, err := run(t, "--config", writeConfig(t, "palette:\n  low: red\n"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "palette.low")
	})
}

func TestRootCmd_ServeError(t *testing.T) {
	clearEnv(t)

	boom := errors.New("bind failed")
	prev := serve
	serve = func(context.Context, api.Options) error { return boom }
	t.Cleanup(func() { serve = prev })

	cmd := newRootCmd()
	cmd.Writer = io.Discard
	cmd.ErrWriter = io.Discard
	err := cmd.Run(context.Background(), []string{name})
	assert.ErrorIs(t, err, boom)
}
