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
	"math"
	"net/url"
	"strconv"
	"strings"

	pberrors "github.com/NVIDIA/progress-bar/pkg/errors"
)

// Query parameter names.
const (
	ParamTitle         = "title"
	ParamTitleWidth    = "title_width"
	ParamTitleColor    = "title_color"
	ParamScale         = "scale"
	ParamProgress      = "progress"
	ParamProgressWidth = "progress_width"
	ParamProgressColor = "progress_color"
	ParamSuffix        = "suffix"
)

// Args is the validated query of a progress bar request. Nil pointers mark
// parameters the caller did not supply.
type Args struct {
	Title         *string
	TitleWidth    *int
	TitleColor    *string
	Scale         *float64
	Progress      float64
	ProgressWidth *int
	ProgressColor *string
	Suffix        *string
}

// ParseQuery validates q into Args. Only the first value of a repeated
// parameter is used and unknown parameters are ignored. Every offending
// parameter is reported in the returned error.
func ParseQuery(q url.Values) (*Args, error) {
	p := &queryParser{q: q}
	a := &Args{
		Title:         p.str(ParamTitle),
		TitleWidth:    p.integer(ParamTitleWidth),
		TitleColor:    p.str(ParamTitleColor),
		Scale:         p.float(ParamScale),
		ProgressWidth: p.integer(ParamProgressWidth),
		ProgressColor: p.str(ParamProgressColor),
		Suffix:        p.str(ParamSuffix),
	}

	if progress := p.float(ParamProgress); progress != nil {
		a.Progress = *progress
	} else if !q.Has(ParamProgress) {
		p.fail(ParamProgress, "missing required parameter")
	}

	if len(p.problems) > 0 {
		return nil, pberrors.NewWithContext(pberrors.ErrCodeInvalidRequest,
			"invalid query parameters: "+strings.Join(p.problems, "; "),
			map[string]any{
				"params": p.params,
			})
	}

	return a, nil
}

type queryParser struct {
	q        url.Values
	problems []string
	params   []string
}

func (p *queryParser) fail(name, reason string) {
	p.params = append(p.params, name)
	p.problems = append(p.problems, fmt.Sprintf("%s: %s", name, reason))
}

func (p *queryParser) str(name string) *string {
	if !p.q.Has(name) {
		return nil
	}
	v := p.q.Get(name)
	return &v
}

func (p *queryParser) integer(name string) *int {
	if !p.q.Has(name) {
		return nil
	}
	raw := p.q.Get(name)
	n, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 32)
	if err != nil {
		p.fail(name, fmt.Sprintf("%q is not an integer", raw))
		return nil
	}
	v := int(n)
	return &v
}

func (p *queryParser) float(name string) *float64 {
	if !p.q.Has(name) {
		return nil
	}
	raw := p.q.Get(name)
	f, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		p.fail(name, fmt.Sprintf("%q is not a number", raw))
		return nil
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		p.fail(name, fmt.Sprintf("%q is not a finite number", raw))
		return nil
	}
	return &f
}
