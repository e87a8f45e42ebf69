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
	"time"

	"github.com/NVIDIA/progress-bar/pkg/progress"
	"github.com/NVIDIA/progress-bar/pkg/server"
	"golang.org/x/time/rate"
)

// Config is the root of the configuration file.
type Config struct {
	Server   ServerConfig     `yaml:"server"`
	Template TemplateConfig   `yaml:"template"`
	Palette  progress.Palette `yaml:"palette"`
}

// ServerConfig mirrors the tunable parts of server.Config.
type ServerConfig struct {
	Address        string  `yaml:"address"`
	Port           int     `yaml:"port"`
	Workers        int     `yaml:"workers"`
	RateLimit      float64 `yaml:"rateLimit"`
	RateLimitBurst int     `yaml:"rateLimitBurst"`

	ReadTimeout     time.Duration `yaml:"readTimeout"`
	WriteTimeout    time.Duration `yaml:"writeTimeout"`
	IdleTimeout     time.Duration `yaml:"idleTimeout"`
	ShutdownTimeout time.Duration `yaml:"shutdownTimeout"`
}

// TemplateConfig selects the template source. An empty File means the
// embedded default.
type TemplateConfig struct {
	File string `yaml:"file"`
}

// ApplyTo copies every non-zero server setting onto sc.
func (c *Config) ApplyTo(sc *server.Config) {
	if c == nil || sc == nil {
		return
	}
	s := c.Server
	if s.Address != "" {
		sc.Address = s.Address
	}
	if s.Port != 0 {
		sc.Port = s.Port
	}
	if s.Workers != 0 {
		sc.Workers = s.Workers
	}
	if s.RateLimit != 0 {
		sc.RateLimit = rate.Limit(s.RateLimit)
	}
	if s.RateLimitBurst != 0 {
		sc.RateLimitBurst = s.RateLimitBurst
	}
	if s.ReadTimeout != 0 {
		sc.ReadTimeout = s.ReadTimeout
	}
	if s.WriteTimeout != 0 {
		sc.WriteTimeout = s.WriteTimeout
	}
	if s.IdleTimeout != 0 {
		sc.IdleTimeout = s.IdleTimeout
	}
	if s.ShutdownTimeout != 0 {
		sc.ShutdownTimeout = s.ShutdownTimeout
	}
}
