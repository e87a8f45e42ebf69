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

package server

import (
	"errors"
	"net/http"
	"time"

	pberrors "github.com/NVIDIA/progress-bar/pkg/errors"
	"github.com/NVIDIA/progress-bar/pkg/serializer"
	"github.com/google/uuid"
)

// ErrorResponse is the JSON envelope for transport-level errors.
type ErrorResponse struct {
	Code      string         `json:"code"`
	Message   string         `json:"message"`
	Details   map[string]any `json:"details,omitempty"`
	RequestID string         `json:"requestId"`
	Timestamp time.Time      `json:"timestamp"`
	Retryable bool           `json:"retryable"`
}

// ErrorHandler writes err as the response to r.
type ErrorHandler func(w http.ResponseWriter, r *http.Request, err error)

// HTTPStatusFromCode maps an error code to its HTTP status.
func HTTPStatusFromCode(code pberrors.ErrorCode) int {
	switch code {
	case pberrors.ErrCodeInvalidRequest, pberrors.ErrCodeRenderFailed:
		return http.StatusBadRequest
	case pberrors.ErrCodeNotFound:
		return http.StatusNotFound
	case pberrors.ErrCodeMethodNotAllowed:
		return http.StatusMethodNotAllowed
	case pberrors.ErrCodeRateLimitExceeded:
		return http.StatusTooManyRequests
	case pberrors.ErrCodeUnavailable:
		return http.StatusServiceUnavailable
	case pberrors.ErrCodeTimeout:
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}

func retryableFromCode(code pberrors.ErrorCode) bool {
	switch code {
	case pberrors.ErrCodeTimeout, pberrors.ErrCodeUnavailable,
		pberrors.ErrCodeRateLimitExceeded, pberrors.ErrCodeInternal:
		return true
	default:
		return false
	}
}

// mergeDetails combines two detail maps, b wins on conflicts. Returns nil
// when the result would be empty.
func mergeDetails(a, b map[string]any) map[string]any {
	if len(a) == 0 && len(b) == 0 {
		return nil
	}
	out := make(map[string]any, len(a)+len(b))
	for k, v := range a {
		out[k] = v
	}
	for k, v := range b {
		out[k] = v
	}
	return out
}

// WriteError writes a JSON ErrorResponse carrying the request id.
func WriteError(w http.ResponseWriter, r *http.Request, statusCode int,
	code pberrors.ErrorCode, message string, retryable bool, details map[string]any) {

	requestID, _ := r.Context().Value(contextKeyRequestID).(string)
	if requestID == "" {
		requestID = uuid.New().String()
	}

	errResp := ErrorResponse{
		Code:      string(code),
		Message:   message,
		Details:   details,
		RequestID: requestID,
		Timestamp: time.Now().UTC(),
		Retryable: retryable,
	}

	serializer.RespondJSON(w, statusCode, errResp)
}

// WriteErrorFromErr writes err as an ErrorResponse. Structured errors keep
// their code, message and context; anything else is reported as INTERNAL
// with fallbackMessage.
func WriteErrorFromErr(w http.ResponseWriter, r *http.Request, err error,
	fallbackMessage string, extraDetails map[string]any) {

	var se *pberrors.StructuredError
	if errors.As(err, &se) {
		details := mergeDetails(se.Context, extraDetails)
		if se.Cause != nil {
			details = mergeDetails(details, map[string]any{"error": se.Cause.Error()})
		}
		WriteError(w, r, HTTPStatusFromCode(se.Code), se.Code, se.Message,
			retryableFromCode(se.Code), details)
		return
	}

	details := mergeDetails(extraDetails, map[string]any{"error": err.Error()})
	WriteError(w, r, http.StatusInternalServerError, pberrors.ErrCodeInternal,
		fallbackMessage, retryableFromCode(pberrors.ErrCodeInternal), details)
}
