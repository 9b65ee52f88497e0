//  Copyright (C) 2021-2023 Chronicle Labs, Inc.
//
//  This program is free software: you can redistribute it and/or modify
//  it under the terms of the GNU Affero General Public License as
//  published by the Free Software Foundation, either version 3 of the
//  License, or (at your option) any later version.
//
//  This program is distributed in the hope that it will be useful,
//  but WITHOUT ANY WARRANTY; without even the implied warranty of
//  MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
//  GNU Affero General Public License for more details.
//
//  You should have received a copy of the GNU Affero General Public License
//  along with this program.  If not, see <http://www.gnu.org/licenses/>.

// Package lang provides helpers operating on dynamic values from the value
// package. Every function takes its operands as a variadic list, missing
// operands are undefined and extra ones are ignored, so the functions can be
// passed directly to Map.
package lang

import (
	"github.com/chronicleprotocol/go-helpers/value"
)

// Iteratee is a function called by Map with an element, its index and the
// whole collection.
type Iteratee func(args ...value.Value) value.Value

// Map returns a new slice with the results of calling fn on every element
// of values.
func Map(values []value.Value, fn Iteratee) []value.Value {
	coll := value.Array(values...)
	out := make([]value.Value, len(values))
	for i, v := range values {
		out[i] = fn(v, value.Number(i), coll)
	}
	return out
}

// arg returns the n-th argument or undefined if there are not enough
// arguments.
func arg(args []value.Value, n int) value.Value {
	if n < len(args) {
		return args[n]
	}
	return value.Undefined()
}
