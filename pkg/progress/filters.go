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

package progress

import (
	"fmt"

	"github.com/NVIDIA/progress-bar/pkg/render"
)

// Filters returns the template filters this package contributes to the
// Store, on top of render.DefaultFilters:
//   - band: the Band name ("low", "mid" or "high") of progress/scale, for
//     templates that style each band beyond its fill color
func Filters() render.Filters {
	return render.Filters{
		"band": band,
	}
}

func band(progress, scale any) (string, error) {
	p, err := toFloat("band", progress)
	if err != nil {
		return "", err
	}
	s, err := toFloat("band", scale)
	if err != nil {
		return "", err
	}
	return BandFor(p, s).String(), nil
}

// toFloat accepts the numeric kinds a render.Context carries.
func toFloat(op string, v any) (float64, error) {
	switch n := v.(type) {
	case int:
		return float64(n), nil
	case float64:
		return n, nil
	default:
		return 0, fmt.Errorf("%s: expected a number, got %T", op, v)
	}
}
