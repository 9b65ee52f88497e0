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
	"fmt"

	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
	"github.com/zclconf/go-cty/cty/function"
)

// MakeToFunc returns a function that converts its argument to the given type
// using the cty/convert package. Null values stay null.
//
// It should work just like the "to*" functions in Terraform.
func MakeToFunc(wantTyp cty.Type) function.Function {
	return function.New(&function.Spec{
		Description: fmt.Sprintf("Converts the given value to %s type.", wantTyp.FriendlyName()),
		Params:      []function.Parameter{toParam},
		Type: func(args []cty.Value) (cty.Type, error) {
			valTyp := args[0].Type()
			if valTyp.Equals(wantTyp) || convert.GetConversionUnsafe(valTyp, wantTyp) != nil {
				return wantTyp, nil
			}
			return cty.NilType, function.NewArgErrorf(
				0,
				"cannot convert %s to %s: %s",
				valTyp.FriendlyNameForConstraint(),
				wantTyp.FriendlyNameForConstraint(),
				convert.MismatchMessage(valTyp, wantTyp),
			)
		},
		Impl: func(args []cty.Value, retType cty.Type) (cty.Value, error) {
			return convertArg(args[0], retType)
		},
	})
}

// ToIntegerFunc converts its argument to a number and truncates it toward
// zero, the same way the length option of TruncateFunc is interpreted.
var ToIntegerFunc = function.New(&function.Spec{
	Description: "Converts the given value to a whole number, dropping any fraction.",
	Params:      []function.Parameter{toParam},
	Type:        function.StaticReturnType(cty.Number),
	Impl: func(args []cty.Value, _ cty.Type) (cty.Value, error) {
		n, err := convertArg(args[0], cty.Number)
		if err != nil {
			return cty.NilVal, err
		}
		n, marks := n.Unmark()
		if n.IsNull() {
			return n.WithMarks(marks), nil
		}
		return cty.NumberIntVal(int64(toInt(n))).WithMarks(marks), nil
	},
})

var toParam = function.Parameter{
	Name:             "value",
	Description:      "The value to convert.",
	Type:             cty.DynamicPseudoType,
	AllowNull:        true,
	AllowUnknown:     false,
	AllowMarked:      true,
	AllowDynamicType: true,
}

func convertArg(val cty.Value, typ cty.Type) (cty.Value, error) {
	res, err := convert.Convert(val, typ)
	if err != nil {
		return cty.NilVal, function.NewArgErrorf(
			0,
			"cannot convert %s to %s: %s",
			val.Type().FriendlyName(),
			typ.FriendlyName(),
			err,
		)
	}
	return res, nil
}
