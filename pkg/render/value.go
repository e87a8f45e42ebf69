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
	"sort"
	"strconv"
	"strings"
)

// Kind identifies the scalar type held by a Value.
type Kind int

const (
	KindString Kind = iota
	KindInt
	KindFloat
	KindBool
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindBool:
		return "bool"
	default:
		return "unknown"
	}
}

// Value is a scalar template input. The zero Value is the empty string.
type Value struct {
	kind Kind
	str  string
	num  int
	flt  float64
	b    bool
}

// String returns a string Value.
func String(s string) Value { return Value{kind: KindString, str: s} }

// Int returns an integer Value.
func Int(i int) Value { return Value{kind: KindInt, num: i} }

// Float returns a floating-point Value.
func Float(f float64) Value { return Value{kind: KindFloat, flt: f} }

func boolValue(b bool) Value { return Value{kind: KindBool, b: b} }

// Kind returns the kind of v.
func (v Value) Kind() Kind { return v.kind }

// Interface returns the native Go value handed to the template engine.
func (v Value) Interface() any {
	switch v.kind {
	case KindInt:
		return v.num
	case KindFloat:
		return v.flt
	case KindBool:
		return v.b
	default:
		return v.str
	}
}

// String formats v for diagnostics. Strings are quoted.
func (v Value) String() string {
	switch v.kind {
	case KindInt:
		return strconv.Itoa(v.num)
	case KindFloat:
		return strconv.FormatFloat(v.flt, 'g', -1, 64)
	case KindBool:
		return strconv.FormatBool(v.b)
	default:
		return strconv.Quote(v.str)
	}
}

// Context maps template field names to values for a single render.
type Context map[string]Value

// Get returns the value stored under key.
func (c Context) Get(key string) (Value, bool) {
	v, ok := c[key]
	return v, ok
}

// Data converts c to the map passed to the template engine.
func (c Context) Data() map[string]any {
	data := make(map[string]any, len(c))
	for k, v := range c {
		data[k] = v.Interface()
	}
	return data
}

// String renders c with sorted keys, e.g. {"progress": 50, "suffix": "%"}.
func (c Context) String() string {
	keys := make([]string, 0, len(c))
	for k := range c {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var sb strings.Builder
	sb.WriteByte('{')
	for i, k := range keys {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(strconv.Quote(k))
		sb.WriteString(": ")
		sb.WriteString(c[k].String())
	}
	sb.WriteByte('}')
	return sb.String()
}
