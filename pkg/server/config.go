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
	"fmt"
	"net"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/NVIDIA/progress-bar/pkg/defaults"
	"golang.org/x/time/rate"
)

// Config holds server configuration
type Config struct {
	// Server identity
	Name    string
	Version string

	// Handlers maps mux patterns to application handlers. Each one is
	// wrapped with the middleware chain.
	Handlers map[string]http.HandlerFunc

	// ErrorHandler writes errors raised by middleware on application
	// routes. When nil, errors are written as a JSON ErrorResponse.
	ErrorHandler ErrorHandler

	// Server configuration
	Address string
	Port    int

	// Workers bounds the number of application requests served concurrently.
	Workers int

	// Rate limiting configuration
	RateLimit      rate.Limit // requests per second
	RateLimitBurst int        // burst size

	// Timeouts
	ReadTimeout       time.Duration
	ReadHeaderTimeout time.Duration
	WriteTimeout      time.Duration
	IdleTimeout       time.Duration
	ShutdownTimeout   time.Duration
}

// NewConfig returns a new Config with sensible defaults.
// Use this when you want to customize config programmatically.
func NewConfig() *Config {
	return parseConfig()
}

// parseConfig returns sensible defaults
func parseConfig() *Config {
	cfg := &Config{
		Name:              "pbar",
		Version:           "undefined",
		Address:           defaults.ServerAddress,
		Port:              defaults.ServerPort,
		Workers:           defaults.ServerWorkers,
		RateLimit:         defaults.ServerRateLimit,
		RateLimitBurst:    defaults.ServerRateLimitBurst,
		ReadTimeout:       defaults.ServerReadTimeout,
		ReadHeaderTimeout: defaults.ServerReadHeaderTimeout,
		WriteTimeout:      defaults.ServerWriteTimeout,
		IdleTimeout:       defaults.ServerIdleTimeout,
		ShutdownTimeout:   defaults.ServerShutdownTimeout,
	}

	// Override with environment variables if set
	if portStr := os.Getenv("PORT"); portStr != "" {
		var port int
		if _, err := fmt.Sscanf(portStr, "%d", &port); err == nil {
			cfg.Port = port
		}
	}

	// Allow customization of shutdown timeout to match the supervisor's stop grace period
	if shutdownStr := os.Getenv("SHUTDOWN_TIMEOUT_SECONDS"); shutdownStr != "" {
		var seconds int
		if _, err := fmt.Sscanf(shutdownStr, "%d", &seconds); err == nil && seconds > 0 {
			cfg.ShutdownTimeout = time.Duration(seconds) * time.Second
		}
	}

	return cfg
}

// Validate reports the first invalid setting.
func (c *Config) Validate() error {
	if c.Port < defaults.MinPort || c.Port > defaults.MaxPort {
		return fmt.Errorf("port %d out of range [%d, %d]", c.Port, defaults.MinPort, defaults.MaxPort)
	}
	if c.Workers < 1 {
		return fmt.Errorf("workers must be at least 1, got %d", c.Workers)
	}
	if c.Address != "" && net.ParseIP(c.Address) == nil {
		return fmt.Errorf("address %q is not an IP address", c.Address)
	}
	if c.RateLimit <= 0 {
		return fmt.Errorf("rate limit must be positive, got %v", c.RateLimit)
	}
	if c.RateLimitBurst < 1 {
		return fmt.Errorf("rate limit burst must be at least 1, got %d", c.RateLimitBurst)
	}
	return nil
}

// Addr returns the host:port the server binds to.
func (c *Config) Addr() string {
	return net.JoinHostPort(c.Address, strconv.Itoa(c.Port))
}
