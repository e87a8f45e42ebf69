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
	"testing"
	"time"
)

func TestParseConfig(t *testing.T) {
	t.Run("default config", func(t *testing.T) {
		t.Setenv("PORT", "")
		t.Setenv("SHUTDOWN_TIMEOUT_SECONDS", "")

		cfg := parseConfig()

		if cfg.Address != "127.0.0.1" {
			t.Errorf("expected address 127.0.0.1, got %s", cfg.Address)
		}

		if cfg.Port != 5005 {
			t.Errorf("expected port 5005, got %d", cfg.Port)
		}

		if cfg.Workers != 1 {
			t.Errorf("expected 1 worker, got %d", cfg.Workers)
		}

		if cfg.RateLimit != 100 {
			t.Errorf("expected rate limit 100, got %v", cfg.RateLimit)
		}

		if cfg.RateLimitBurst != 200 {
			t.Errorf("expected rate limit burst 200, got %d", cfg.RateLimitBurst)
		}

		if cfg.ReadTimeout != 10*time.Second {
			t.Errorf("expected read timeout 10s, got %v", cfg.ReadTimeout)
		}

		if cfg.WriteTimeout != 30*time.Second {
			t.Errorf("expected write timeout 30s, got %v", cfg.WriteTimeout)
		}

		if cfg.IdleTimeout != 120*time.Second {
			t.Errorf("expected idle timeout 120s, got %v", cfg.IdleTimeout)
		}

		if cfg.ShutdownTimeout != 30*time.Second {
			t.Errorf("expected shutdown timeout 30s, got %v", cfg.ShutdownTimeout)
		}
	})

	t.Run("custom port from environment", func(t *testing.T) {
		t.Setenv("PORT", "9090")

		cfg := parseConfig()

		if cfg.Port != 9090 {
			t.Errorf("expected port 9090 from env, got %d", cfg.Port)
		}
	})

	t.Run("invalid port from environment uses default", func(t *testing.T) {
		t.Setenv("PORT", "invalid")

		cfg := parseConfig()

		if cfg.Port != 5005 {
			t.Errorf("expected default port 5005 for invalid env, got %d", cfg.Port)
		}
	})

	t.Run("shutdown timeout from environment", func(t *testing.T) {
		t.Setenv("SHUTDOWN_TIMEOUT_SECONDS", "5")

		cfg := parseConfig()

		if cfg.ShutdownTimeout != 5*time.Second {
			t.Errorf("expected shutdown timeout 5s, got %v", cfg.ShutdownTimeout)
		}
	})

	t.Run("non-positive shutdown timeout ignored", func(t *testing.T) {
		t.Setenv("SHUTDOWN_TIMEOUT_SECONDS", "0")

		cfg := parseConfig()

		if cfg.ShutdownTimeout != 30*time.Second {
			t.Errorf("expected default shutdown timeout, got %v", cfg.ShutdownTimeout)
		}
	})
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults", func(*Config) {}, false},
		{"any address", func(c *Config) { c.Address = "" }, false},
		{"ipv6 address", func(c *Config) { c.Address = "::1" }, false},
		{"hostname", func(c *Config) { c.Address = "localhost" }, true},
		{"port zero", func(c *Config) { c.Port = 0 }, true},
		{"port too high", func(c *Config) { c.Port = 65536 }, true},
		{"max port", func(c *Config) { c.Port = 65535 }, false},
		{"zero workers", func(c *Config) { c.Workers = 0 }, true},
		{"zero rate", func(c *Config) { c.RateLimit = 0 }, true},
		{"zero burst", func(c *Config) { c.RateLimitBurst = 0 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestConfigAddr(t *testing.T) {
	tests := []struct {
		address string
		port    int
		want    string
	}{
		{"127.0.0.1", 5005, "127.0.0.1:5005"},
		{"", 8080, ":8080"},
		{"::1", 80, "[::1]:80"},
	}

	for _, tt := range tests {
		cfg := &Config{Address: tt.address, Port: tt.port}
		if got := cfg.Addr(); got != tt.want {
			t.Errorf("Addr() = %q, want %q", got, tt.want)
		}
	}
}
