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

import "fmt"

const (
	// LowThreshold is the ratio at which the mid band starts.
	LowThreshold = 0.3
	// HighThreshold is the ratio at which the high band starts.
	HighThreshold = 0.7
)

// Default colors.
const (
	DefaultLowColor   = "#d9534f"
	DefaultMidColor   = "#f0ad4e"
	DefaultHighColor  = "#5cb85c"
	DefaultTitleColor = "#428bca"
)

// Band is one of the three progress color states.
type Band int

const (
	BandLow Band = iota
	BandMid
	BandHigh
)

// String returns the band name.
func (b Band) String() string {
	switch b {
	case BandLow:
		return "low"
	case BandMid:
		return "mid"
	case BandHigh:
		return "high"
	default:
		return fmt.Sprintf("Band(%d)", int(b))
	}
}

// BandFor classifies progress/scale. Boundaries belong to the higher band.
// scale is not guarded: a zero scale yields ±Inf or NaN, and NaN compares
// false against both thresholds so it lands in BandHigh.
func BandFor(progress, scale float64) Band {
	ratio := progress / scale
	switch {
	case ratio < LowThreshold:
		return BandLow
	case ratio < HighThreshold:
		return BandMid
	default:
		return BandHigh
	}
}

// Palette holds the band colors and the default title color.
type Palette struct {
	Low   string `json:"low" yaml:"low"`
	Mid   string `json:"mid" yaml:"mid"`
	High  string `json:"high" yaml:"high"`
	Title string `json:"title" yaml:"title"`
}

// DefaultPalette returns the built-in colors.
func DefaultPalette() Palette {
	return Palette{
		Low:   DefaultLowColor,
		Mid:   DefaultMidColor,
		High:  DefaultHighColor,
		Title: DefaultTitleColor,
	}
}

// Color returns the color of band b.
func (p Palette) Color(b Band) string {
	switch b {
	case BandLow:
		return p.Low
	case BandMid:
		return p.Mid
	default:
		return p.High
	}
}

// ColorFor returns the band color for progress/scale.
func (p Palette) ColorFor(progress, scale float64) string {
	return p.Color(BandFor(progress, scale))
}

// WithDefaults fills empty entries from DefaultPalette.
func (p Palette) WithDefaults() Palette {
	d := DefaultPalette()
	if p.Low == "" {
		p.Low = d.Low
	}
	if p.Mid == "" {
		p.Mid = d.Mid
	}
	if p.High == "" {
		p.High = d.High
	}
	if p.Title == "" {
		p.Title = d.Title
	}
	return p
}
