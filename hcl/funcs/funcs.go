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

// Functions returns the functions provided by this package, keyed by the
// name under which they should be exposed in an evaluation context.
func Functions() map[string]function.Function {
	return map[string]function.Function{
		"eq":        EqFunc,
		"truncate":  TruncateFunc,
		"tobool":    MakeToFunc(cty.Bool),
		"tointeger": ToIntegerFunc,
		"tonumber":  MakeToFunc(cty.Number),
		"tostring":  MakeToFunc(cty.String),
	}
}
