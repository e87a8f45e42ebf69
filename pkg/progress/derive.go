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
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"

	"github.com/NVIDIA/progress-bar/pkg/render"
)

// Width heuristics, in pixels.
const (
	DefaultProgressWidth       = 90
	DefaultTitledProgressWidth = 60
	TitlePadding               = 10
	TitleCharWidth             = 6
)

// DefaultScale is the denominator used when scale is not supplied.
const DefaultScale = 100.0

// DefaultSuffix is appended to the progress value when suffix is not supplied.
const DefaultSuffix = "%"

// Template field names produced by Derive.
const (
	FieldTitle         = "title"
	FieldTitleWidth    = "title_width"
	FieldTitleColor    = "title_color"
	FieldScale         = "scale"
	FieldProgress      = "progress"
	FieldProgressWidth = "progress_width"
	FieldProgressColor = "progress_color"
	FieldSuffix        = "suffix"
)

// TitleLength counts the characters of title after NFC normalisation, so a
// precomposed and a decomposed accent measure the same.
func TitleLength(title string) int {
	return utf8.RuneCountInString(norm.NFC.String(title))
}

// TitleWidth is the width reserved for a title of the given text.
func TitleWidth(title string) int {
	return TitlePadding + TitleCharWidth*TitleLength(title)
}

// ScaleOrDefault returns the supplied scale or DefaultScale.
func (a *Args) ScaleOrDefault() float64 {
	if a.Scale != nil {
		return *a.Scale
	}
	return DefaultScale
}

// Derive resolves a into the full template context. Explicit values always
// win over computed defaults; progress_color is computed from the final
// progress and scale.
func Derive(a *Args, p Palette) render.Context {
	p = p.WithDefaults()

	ctx := render.Context{}
	progressWidth := DefaultProgressWidth
	titleWidth := 0

	if a.Title != nil {
		progressWidth = DefaultTitledProgressWidth
		titleWidth = TitleWidth(*a.Title)
		ctx[FieldTitle] = render.String(*a.Title)
	}

	if a.TitleWidth != nil {
		titleWidth = *a.TitleWidth
	}
	if a.ProgressWidth != nil {
		progressWidth = *a.ProgressWidth
	}

	scale := a.ScaleOrDefault()

	titleColor := p.Title
	if a.TitleColor != nil {
		titleColor = *a.TitleColor
	}

	var progressColor string
	if a.ProgressColor != nil {
		progressColor = *a.ProgressColor
	} else {
		progressColor = p.ColorFor(a.Progress, scale)
	}

	suffix := DefaultSuffix
	if a.Suffix != nil {
		suffix = *a.Suffix
	}

	ctx[FieldTitleColor] = render.String(titleColor)
	ctx[FieldTitleWidth] = render.Int(titleWidth)
	ctx[FieldScale] = render.Float(scale)
	ctx[FieldProgress] = render.Float(a.Progress)
	ctx[FieldProgressWidth] = render.Int(progressWidth)
	ctx[FieldProgressColor] = render.String(progressColor)
	ctx[FieldSuffix] = render.String(suffix)

	return ctx
}
