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
	"context"
	"log/slog"
	"net/http"

	pberrors "github.com/NVIDIA/progress-bar/pkg/errors"
	"github.com/NVIDIA/progress-bar/pkg/progress"
	"github.com/NVIDIA/progress-bar/pkg/render"
	"github.com/NVIDIA/progress-bar/pkg/server"
)

const (
	// Name identifies the service in logs.
	Name = "pbar"

	// RootPattern matches GET / and nothing below it.
	RootPattern = "/{$}"

	probeProgress = 50
	probeTitle    = "probe"
)

// Options configures the service.
type Options struct {
	Version      string
	TemplateFile string
	Palette      progress.Palette
	Server       *server.Config
}

// TemplateSource returns the source selected by TemplateFile.
func (o Options) TemplateSource() render.Source {
	if o.TemplateFile == "" {
		return render.EmbeddedSource()
	}
	return render.FileSource(o.TemplateFile)
}

// LoadTemplate reads, parses and probes the configured template.
func LoadTemplate(o Options) (*render.Store, error) {
	src := o.TemplateSource()

	store, err := render.Load(src, render.WithFilters(progress.Filters()))
	if err != nil {
		return nil, err
	}

	title := probeTitle
	sample := progress.Derive(&progress.Args{
		Progress: probeProgress,
		Title:    &title,
	}, o.Palette)

	if err := render.Probe(store, sample); err != nil {
		return nil, err
	}

	slog.Debug("template loaded", "source", src.String())
	return store, nil
}

// NewServer builds the HTTP server without starting it.
func NewServer(o Options) (*server.Server, error) {
	cfg := o.Server
	if cfg == nil {
		cfg = server.NewConfig()
	}

	if err := cfg.Validate(); err != nil {
		return nil, pberrors.Wrap(pberrors.ErrCodeInvalidRequest, "invalid server configuration", err)
	}

	store, err := LoadTemplate(o)
	if err != nil {
		return nil, err
	}

	h := progress.NewHandler(store, progress.WithPalette(o.Palette))

	return server.New(
		server.WithConfig(cfg),
		server.WithName(Name),
		server.WithVersion(o.Version),
		server.WithHandler(map[string]http.HandlerFunc{
			RootPattern: h.HandleProgress,
		}),
		server.WithErrorHandler(h.HandleError),
	), nil
}

// Serve starts the service and blocks until shutdown.
func Serve(ctx context.Context, o Options) error {
	s, err := NewServer(o)
	if err != nil {
		return err
	}

	if err := s.Run(ctx); err != nil {
		slog.Error("server exited with error", "error", err)
		return err
	}

	return nil
}
