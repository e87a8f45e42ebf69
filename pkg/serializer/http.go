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

package serializer

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
)

const (
	// ContentTypeJSON is the content type of JSON responses.
	ContentTypeJSON = "application/json"
	// ContentTypeText is the content type of diagnostic responses.
	ContentTypeText = "text/plain; charset=utf-8"
	// ContentTypeSVG is the content type of rendered images.
	ContentTypeSVG = "image/svg+xml; charset=utf-8"
)

// RespondJSON writes a JSON response with the given status code and data.
// It buffers the JSON encoding before writing headers to prevent partial responses.
func RespondJSON(w http.ResponseWriter, statusCode int, data any) {
	// Serialize first to detect errors before writing headers
	buf := &bytes.Buffer{}
	if err := json.NewEncoder(buf).Encode(data); err != nil {
		slog.Error("json encoding failed", "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	Respond(w, statusCode, ContentTypeJSON, buf.Bytes())
}

// RespondText writes a plain text diagnostic.
func RespondText(w http.ResponseWriter, statusCode int, body string) {
	Respond(w, statusCode, ContentTypeText, []byte(body))
}

// RespondSVG writes a rendered SVG document.
func RespondSVG(w http.ResponseWriter, statusCode int, body string) {
	Respond(w, statusCode, ContentTypeSVG, []byte(body))
}

// Respond writes body with the given status and content type.
func Respond(w http.ResponseWriter, statusCode int, contentType string, body []byte) {
	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(statusCode)
	if _, err := w.Write(body); err != nil {
		// Connection is broken, log but can't recover
		slog.Warn("response write failed", "error", err)
	}
}
