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

package config

import (
	"fmt"
	"net"
	"regexp"
	"strings"
	"time"

	"github.com/NVIDIA/progress-bar/pkg/defaults"
	pberrors "github.com/NVIDIA/progress-bar/pkg/errors"
)

var hexColor = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// Validate checks configuration correctness without mutating it.
func Validate(cfg *Config) error {
	var problems []string
	fail := func(format string, args ...any) {
		problems = append(problems, fmt.Sprintf(format, args...))
	}

	s := cfg.Server
	if s.Address != "" && net.ParseIP(s.Address) == nil {
		fail("server.address %q is not an IP address", s.Address)
	}
	if s.Port != 0 && (s.Port < defaults.MinPort || s.Port > defaults.MaxPort) {
		fail("server.port %d out of range [%d, %d]", s.Port, defaults.MinPort, defaults.MaxPort)
	}
	if s.Workers < 0 {
		fail("server.workers must not be negative")
	}
	if s.RateLimit < 0 {
		fail("server.rateLimit must not be negative")
	}
	if s.RateLimitBurst < 0 {
		fail("server.rateLimitBurst must not be negative")
	}
	for _, d := range []struct {
		key   string
		value time.Duration
	}{
		{"readTimeout", s.ReadTimeout},
		{"writeTimeout", s.WriteTimeout},
		{"idleTimeout", s.IdleTimeout},
		{"shutdownTimeout", s.ShutdownTimeout},
	} {
		if d.value < 0 {
			fail("server.%s must not be negative", d.key)
		}
	}

	p := cfg.Palette
	for _, c := range []struct{ key, value string }{
		{"low", p.Low},
		{"mid", p.Mid},
		{"high", p.High},
		{"title", p.Title},
	} {
		if c.value != "" && !hexColor.MatchString(c.value) {
			fail("palette.%s %q is not a #rgb or #rrggbb color", c.key, c.value)
		}
	}

	if len(problems) == 0 {
		return nil
	}
	return pberrors.NewWithContext(pberrors.ErrCodeInvalidRequest,
		"invalid configuration: "+strings.Join(problems, "; "), map[string]any{"problems": problems})
}
