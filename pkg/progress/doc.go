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

// Package progress turns a progress bar request into a rendered SVG image.
//
// # Pipeline
//
// Each GET / request runs a fixed sequence of stages:
//
//	parse -> lookup -> derive -> render -> respond
//
//   - parse: ParseQuery validates the query string into Args. A missing or
//     non-numeric progress, or a malformed numeric field, is a 400.
//   - lookup: the template is fetched from the render.Store. A failure here is
//     a startup defect and answers 500.
//   - derive: Derive fills every template field from Args, applying width
//     heuristics and the color Palette. It cannot fail.
//   - render: the Store executes the template. Failure is attributed to the
//     caller's input (for example scale=0) and answers 400 with the derived
//     context in the body.
//
// Each request is logged exactly once with the peer address, request URI and
// outcome.
//
// # Query Parameters
//
//   - progress (float, required): numerator of the progress ratio
//   - scale (float, default 100): denominator of the progress ratio
//   - title (string): label drawn left of the bar
//   - title_width, progress_width (int): pixel widths
//   - title_color, progress_color (string): fill colors
//   - suffix (string, default "%"): appended to the progress value
//
// Example:
//
//	curl "http://127.0.0.1:5005/?progress=42&title=Build"
//
// # Color Bands
//
// Without an explicit progress_color the bar color is chosen from the ratio
// progress/scale: below 0.3 low, below 0.7 mid, otherwise high. The ratio is
// not validated, so a NaN ratio falls through to the high band.
package progress
