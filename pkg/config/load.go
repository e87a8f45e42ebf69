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
	"bytes"
	"errors"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	pberrors "github.com/NVIDIA/progress-bar/pkg/errors"
)

// Load reads and validates the configuration file at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, pberrors.WrapWithContext(pberrors.ErrCodeInternal,
			"failed to read config file", err, map[string]any{"path": path})
	}

	cfg, err := Parse(data)
	if err != nil {
		var se *pberrors.StructuredError
		if errors.As(err, &se) {
			se.Context = mergeContext(se.Context, map[string]any{"path": path})
		}
		return nil, err
	}
	return cfg, nil
}

// Parse decodes and validates YAML configuration. Unknown keys are rejected
// and an empty document yields an empty Config.
func Parse(data []byte) (*Config, error) {
	cfg := &Config{}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, pberrors.Wrap(pberrors.ErrCodeInvalidRequest,
			"failed to parse config", err)
	}

	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func mergeContext(a, b map[string]any) map[string]any {
	out := make(map[string]any, len(a)+len(b))
	for k, v := range a {
		out[k] = v
	}
	for k, v := range b {
		out[k] = v
	}
	return out
}
