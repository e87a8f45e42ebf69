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
	"fmt"
	"strings"

	"github.com/srwiley/oksvg"

	pberrors "github.com/NVIDIA/progress-bar/pkg/errors"
)

// Probe renders the store's template with sample and checks the output is an
// SVG document with usable dimensions. It is run once before serving so a
// malformed template file stops the process instead of failing every request.
func Probe(s *Store, sample Context) error {
	t, err := s.Lookup(TemplateName)
	if err != nil {
		return err
	}

	out, err := s.Render(t, sample)
	if err != nil {
		return pberrors.Wrap(pberrors.ErrCodeInternal, "template failed to render sample context", err)
	}

	icon, err := oksvg.ReadIconStream(strings.NewReader(out), oksvg.IgnoreErrorMode)
	if err != nil {
		return pberrors.WrapWithContext(pberrors.ErrCodeInternal,
			"template output is not valid SVG", err, map[string]any{
				"source": s.source.String(),
			})
	}

	if icon.ViewBox.W <= 0 || icon.ViewBox.H <= 0 {
		return pberrors.NewWithContext(pberrors.ErrCodeInternal,
			fmt.Sprintf("template output has no usable size (%gx%g)", icon.ViewBox.W, icon.ViewBox.H),
			map[string]any{
				"source": s.source.String(),
			})
	}

	return nil
}
