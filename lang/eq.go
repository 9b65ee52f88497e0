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

package lang

import (
	"golang.org/x/exp/constraints"

	"github.com/chronicleprotocol/go-helpers/value"
)

// Eq reports whether the first two arguments are the same value.
//
// Values of different kinds are never equal and no conversion is made.
// Numbers compare by value, except that NaN equals NaN and positive zero
// equals negative zero. Symbols and objects are equal only to themselves.
func Eq(args ...value.Value) bool {
	a, b := arg(args, 0), arg(args, 1)
	if a.Kind() != b.Kind() {
		return false
	}
	switch a.Kind() {
	case value.KindUndefined, value.KindNull:
		return true
	case value.KindBool:
		return a.AsBool() == b.AsBool()
	case value.KindNumber:
		return SameValueZero(a.AsNumber(), b.AsNumber())
	case value.KindString:
		return a.AsString() == b.AsString()
	default:
		return a.Identity() == b.Identity()
	}
}

// Scalar is a type whose values compare by payload with ==.
type Scalar interface {
	constraints.Integer | constraints.Float | ~string | ~bool
}

// SameValueZero reports whether a and b are equal, treating NaN as equal
// to itself. For floats, positive and negative zero are equal.
//
// Composite types are not accepted: a struct or array holding a NaN is
// unequal to itself, which would make distinct values compare equal.
func SameValueZero[T Scalar](a, b T) bool {
	// For scalars, x != x holds only for NaN.
	return a == b || (a != a && b != b)
}
