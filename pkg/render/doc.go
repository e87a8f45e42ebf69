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

// Package render owns the single progress bar template and executes it
// against a per-request Context.
//
// # Overview
//
// A Store is built once at startup from either a template file or the
// default template embedded in the binary, and is read-only afterwards, so
// it can be shared by every request without locking.
//
//	store, err := render.Load(render.FileSource("/etc/pbar/bar.svg"))
//	if err != nil {
//	    return err // fatal: do not start serving
//	}
//	tmpl, err := store.Lookup(render.TemplateName)
//	svg, err := store.Render(tmpl, ctx)
//
// # Template Language
//
// Templates use html/template syntax with missingkey=error, so referencing a
// field the Context does not carry fails the render instead of printing
// "<no value>". Optional fields are read with index:
//
//	{{if index . "title"}}<text>{{.title}}</text>{{end}}
//
// The Store's filter table provides, by default:
//   - int: truncate a number toward zero, saturating at the int32 bounds;
//     non-numeric or non-finite input fails
//   - add, sub, mul: numeric arithmetic, int when both operands are int
//   - div: numeric division, always float
//
// Additional filters are supplied with WithFilters at construction time.
package render
