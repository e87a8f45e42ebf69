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
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pberrors "github.com/NVIDIA/progress-bar/pkg/errors"
)

func TestProbe(t *testing.T) {
	t.Run("embedded template", func(t *testing.T) {
		s, err := Load(EmbeddedSource())
		require.NoError(t, err)
		assert.NoError(t, Probe(s, sampleContext()))
	})

	t.Run("minimal file template", func(t *testing.T) {
		s, err := Load(FileSource(filepath.Join("testdata", "minimal.svg")))
		require.NoError(t, err)
		assert.NoError(t, Probe(s, sampleContext()))
	})

	t.Run("output is not svg", func(t *testing.T) {
		s, err := Load(FileSource(filepath.Join("testdata", "not_svg.svg")))
		require.NoError(t, err)
		err = Probe(s, sampleContext())
		require.Error(t, err)
		assert.Equal(t, pberrors.ErrCodeInternal, pberrors.CodeOf(err))
	})

	t.Run("template needs unknown field", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "extra.svg")
		require.NoError(t, os.WriteFile(path,
			[]byte(`<svg width="{{.unknown}}" height="20"></svg>`), 0o600))

		s, err := Load(FileSource(path))
		require.NoError(t, err)
		err = Probe(s, sampleContext())
		require.Error(t, err)
		assert.True(t, pberrors.HasCode(err, pberrors.ErrCodeRenderFailed))
	})

	t.Run("no size", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "nosize.svg")
		require.NoError(t, os.WriteFile(path,
			[]byte(`<svg xmlns="http://www.w3.org/2000/svg"><rect width="{{.progress_width}}" height="20"/></svg>`), 0o600))

		s, err := Load(FileSource(path))
		require.NoError(t, err)
		assert.Error(t, Probe(s, sampleContext()))
	})
}
