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

package render

import (
	"bytes"
	_ "embed"
	"fmt"
	"html/template"
	"os"

	pberrors "github.com/NVIDIA/progress-bar/pkg/errors"
)

// TemplateName is the name the progress bar template is registered under.
const TemplateName = "pbar_template"

//go:embed resources/default.svg
var defaultTemplate string

// Source selects where the template text comes from.
type Source struct {
	path string
}

// FileSource reads the template from path at load time.
func FileSource(path string) Source {
	return Source{path: path}
}

// EmbeddedSource uses the default template compiled into the binary.
func EmbeddedSource() Source {
	return Source{}
}

// IsEmbedded reports whether s refers to the built-in template.
func (s Source) IsEmbedded() bool {
	return s.path == ""
}

// String describes the source for logs.
func (s Source) String() string {
	if s.IsEmbedded() {
		return "embedded:default.svg"
	}
	return "file:" + s.path
}

func (s Source) read() (string, error) {
	if s.IsEmbedded() {
		return defaultTemplate, nil
	}
	b, err := os.ReadFile(s.path)
	if err != nil {
		return "", pberrors.WrapWithContext(pberrors.ErrCodeInternal,
			"failed to read template file", err, map[string]any{
				"path": s.path,
			})
	}
	return string(b), nil
}

// Template is a parsed, immutable template registered in a Store.
type Template struct {
	name string
	tmpl *template.Template
}

// Name returns the name the template is registered under.
func (t *Template) Name() string {
	return t.name
}

// Option configures a Store at construction.
type Option func(*Store)

// WithFilters adds filters on top of DefaultFilters. Entries with the same
// name replace the default.
func WithFilters(f Filters) Option {
	return func(s *Store) {
		s.filters = s.filters.merge(f)
	}
}

// Store holds the loaded template. It is immutable after Load returns and
// safe for concurrent use.
type Store struct {
	source  Source
	filters Filters
	root    *template.Template
}

// Load reads and parses the template from src. Any error is fatal to startup.
func Load(src Source, opts ...Option) (*Store, error) {
	s := &Store{
		source:  src,
		filters: DefaultFilters(),
	}
	for _, opt := range opts {
		opt(s)
	}

	text, err := src.read()
	if err != nil {
		return nil, err
	}

	root, err := template.New(TemplateName).
		Option("missingkey=error").
		Funcs(template.FuncMap(s.filters)).
		Parse(text)
	if err != nil {
		return nil, pberrors.WrapWithContext(pberrors.ErrCodeInternal,
			"failed to parse template", err, map[string]any{
				"source": src.String(),
			})
	}
	s.root = root

	return s, nil
}

// Source returns where the template was loaded from.
func (s *Store) Source() Source {
	return s.source
}

// Lookup returns the template registered under name.
func (s *Store) Lookup(name string) (*Template, error) {
	if s == nil || s.root == nil {
		return nil, pberrors.New(pberrors.ErrCodeNotFound, "template store is not initialized")
	}
	t := s.root.Lookup(name)
	if t == nil {
		return nil, pberrors.NewWithContext(pberrors.ErrCodeNotFound,
			fmt.Sprintf("template %q not found", name), map[string]any{
				"source": s.source.String(),
			})
	}
	return &Template{name: name, tmpl: t}, nil
}

// Render executes t against ctx and returns the produced text.
func (s *Store) Render(t *Template, ctx Context) (string, error) {
	if t == nil || t.tmpl == nil {
		return "", pberrors.New(pberrors.ErrCodeNotFound, "template is nil")
	}

	var buf bytes.Buffer
	if err := t.tmpl.Execute(&buf, ctx.Data()); err != nil {
		return "", pberrors.WrapWithContext(pberrors.ErrCodeRenderFailed,
			"failed to render template", err, map[string]any{
				"template": t.name,
			})
	}
	return buf.String(), nil
}
