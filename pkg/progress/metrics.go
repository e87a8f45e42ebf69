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
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Outcome classifies how a request ended.
type Outcome string

const (
	OutcomeOK          Outcome = "ok"
	OutcomeClientError Outcome = "client_error"
	OutcomeServerError Outcome = "server_error"
)

var (
	requestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pbar_progress_requests_total",
			Help: "Total number of progress bar requests by outcome",
		},
		[]string{"outcome"},
	)

	renderDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "pbar_render_duration_seconds",
			Help:    "Template execution latency in seconds",
			Buckets: []float64{.0001, .00025, .0005, .001, .0025, .005, .01, .025},
		},
	)

	colorBandsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pbar_color_band_total",
			Help: "Derived progress colors by band; explicit progress_color is counted as override",
		},
		[]string{"band"},
	)
)
