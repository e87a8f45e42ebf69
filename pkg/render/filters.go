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
	"fmt"
	"math"
)

// Filters is the table of named functions a template may call.
type Filters map[string]any

// DefaultFilters returns the filters every Store registers.
func DefaultFilters() Filters {
	return Filters{
		"int": Truncate,
		"add": add,
		"sub": sub,
		"mul": mul,
		"div": div,
	}
}

// merge returns a copy of f overlaid with other.
func (f Filters) merge(other Filters) Filters {
	out := make(Filters, len(f)+len(other))
	for k, v := range f {
		out[k] = v
	}
	for k, v := range other {
		out[k] = v
	}
	return out
}

// Truncate converts a number to an int by truncation toward zero. Finite
// values beyond the int32 range saturate at its bounds.
func Truncate(v any) (int, error) {
	f, _, err := number("int", v)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("int: cannot truncate non-finite value %v", f)
	}
	t := math.Trunc(f)
	switch {
	case t > math.MaxInt32:
		return math.MaxInt32, nil
	case t < math.MinInt32:
		return math.MinInt32, nil
	}
	return int(t), nil
}

// number extracts a float64 from v, reporting whether v was integral.
func number(op string, v any) (float64, bool, error) {
	switch n := v.(type) {
	case int:
		return float64(n), true, nil
	case int32:
		return float64(n), true, nil
	case int64:
		return float64(n), true, nil
	case float32:
		return float64(n), false, nil
	case float64:
		return n, false, nil
	case nil:
		return 0, false, fmt.Errorf("%s: expected a number, got no value", op)
	default:
		return 0, false, fmt.Errorf("%s: expected a number, got %T", op, v)
	}
}

func operands(op string, a, b any) (float64, float64, bool, error) {
	x, xInt, err := number(op, a)
	if err != nil {
		return 0, 0, false, err
	}
	y, yInt, err := number(op, b)
	if err != nil {
		return 0, 0, false, err
	}
	return x, y, xInt && yInt, nil
}

func arith(op string, a, b any, fn func(x, y float64) float64) (any, error) {
	x, y, integral, err := operands(op, a, b)
	if err != nil {
		return nil, err
	}
	r := fn(x, y)
	if integral {
		return int(r), nil
	}
	return r, nil
}

func add(a, b any) (any, error) {
	return arith("add", a, b, func(x, y float64) float64 { return x + y })
}

func sub(a, b any) (any, error) {
	return arith("sub", a, b, func(x, y float64) float64 { return x - y })
}

func mul(a, b any) (any, error) {
	return arith("mul", a, b, func(x, y float64) float64 { return x * y })
}

// div follows IEEE semantics: a zero divisor yields ±Inf or NaN.
func div(a, b any) (float64, error) {
	x, y, _, err := operands("div", a, b)
	if err != nil {
		return 0, err
	}
	return x / y, nil
}
