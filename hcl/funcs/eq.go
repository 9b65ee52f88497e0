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

package funcs

import (
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/function"
)

// EqFunc reports whether two values are the same value.
//
// Values of different types are never equal, no conversion is made. Null
// equals null of the same type. Numbers compare by value, so negative zero
// equals positive zero. Collections compare element-wise because cty values
// have no identity.
var EqFunc = function.New(&function.Spec{
	Description: "Reports whether two values are the same value, without converting them.",
	Params: []function.Parameter{
		{
			Name:        "a",
			Description: "The first value.",
			Type:        cty.DynamicPseudoType,
			AllowNull:   true,
		},
		{
			Name:        "b",
			Description: "The second value.",
			Type:        cty.DynamicPseudoType,
			AllowNull:   true,
		},
	},
	Type: function.StaticReturnType(cty.Bool),
	Impl: func(args []cty.Value, _ cty.Type) (cty.Value, error) {
		a, _ := args[0].UnmarkDeep()
		b, _ := args[1].UnmarkDeep()
		if !a.IsWhollyKnown() || !b.IsWhollyKnown() {
			return cty.UnknownVal(cty.Bool), nil
		}
		return cty.BoolVal(sameValue(a, b)), nil
	},
})

func sameValue(a, b cty.Value) bool {
	if !a.Type().Equals(b.Type()) {
		return false
	}
	if a.IsNull() || b.IsNull() {
		return a.IsNull() && b.IsNull()
	}
	return a.Equals(b).True()
}
