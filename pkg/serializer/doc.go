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

// Package serializer writes HTTP responses for the progress bar service.
//
// # Overview
//
// Every response body is fully materialised before headers are written, so a
// failed encode can still be reported with a proper status code instead of a
// truncated 200.
//
// # Content Types
//
//   - RespondJSON: application/json, used by transport-level errors and the
//     health and readiness endpoints
//   - RespondText: text/plain; charset=utf-8, used for pipeline diagnostics
//   - RespondSVG: image/svg+xml; charset=utf-8, used for rendered progress bars
package serializer
