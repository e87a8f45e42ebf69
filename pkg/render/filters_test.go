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
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTruncate(t *testing.T) {
	tests := []struct {
		name    string
		in      any
		want    int
		wantErr bool
	}{
		{"int passthrough", 42, 42, false},
		{"int64", int64(7), 7, false},
		{"positive float", 45.9, 45, false},
		{"negative float toward zero", -45.9, -45, false},
		{"float32", float32(3.7), 3, false},
		{"zero", 0.0, 0, false},
		{"positive infinity", math.Inf(1), 0, true},
		{"negative infinity", math.Inf(-1), 0, true},
		{"nan", math.NaN(), 0, true},
		{"above int32 saturates", 1e12, math.MaxInt32, false},
		{"below int32 saturates", -1e12, math.MinInt32, false},
		{"int32 bound", 2147483647.9, math.MaxInt32, false},
		{"large int saturates", int64(1) << 40, math.MaxInt32, false},
		{"string", "50", 0, true},
		{"bool", true, 0, true},
		{"nil", nil, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Truncate(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestArithmetic(t *testing.T) {
	t.Run("add ints stays int", func(t *testing.T) {
		got, err := add(40, 60)
		require.NoError(t, err)
		assert.Equal(t, 100, got)
	})

	t.Run("add mixed is float", func(t *testing.T) {
		got, err := add(40, 2.5)
		require.NoError(t, err)
		assert.Equal(t, 42.5, got)
	})

	t.Run("sub", func(t *testing.T) {
		got, err := sub(10, 4)
		require.NoError(t, err)
		assert.Equal(t, 6, got)
	})

	t.Run("mul float", func(t *testing.T) {
		got, err := mul(0.5, 90)
		require.NoError(t, err)
		assert.Equal(t, 45.0, got)
	})

	t.Run("div ints is float", func(t *testing.T) {
		got, err := div(45, 2)
		require.NoError(t, err)
		assert.Equal(t, 22.5, got)
	})

	t.Run("div by zero is infinite", func(t *testing.T) {
		got, err := div(50.0, 0.0)
		require.NoError(t, err)
		assert.True(t, math.IsInf(got, 1))
	})

	t.Run("string operand", func(t *testing.T) {
		_, err := add("a", 1)
		assert.Error(t, err)
	})
}

func TestFilters_Merge(t *testing.T) {
	custom := func(v any) (int, error) { return 1, nil }
	merged := DefaultFilters().merge(Filters{"int": custom, "extra": custom})

	assert.Len(t, merged, len(DefaultFilters())+1)
	assert.Contains(t, merged, "extra")
	assert.Contains(t, merged, "add")

	// defaults are untouched
	_, ok := DefaultFilters()["extra"]
	assert.False(t, ok)
}
