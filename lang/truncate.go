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
	"github.com/chronicleprotocol/go-helpers/strutil"
	"github.com/chronicleprotocol/go-helpers/value"
)

// Truncate converts the first argument to a string and shortens it with
// strutil.Truncate.
//
// The second argument is read only if it is an object. Its "length"
// property is converted with value.ToInteger, "omission" with
// value.ToString, and "separator" is either a regular expression or text.
// A property that is present but undefined still overrides the default,
// so an undefined omission appends "undefined". Non-object options, such
// as the index passed by Map, are ignored.
func Truncate(args ...value.Value) value.Value {
	input, options := arg(args, 0), arg(args, 1)
	var opts []strutil.Option
	if options.IsObject() {
		if sep, ok := options.Get("separator"); ok {
			if s := separator(sep); s != nil {
				opts = append(opts, strutil.WithSeparator(s))
			}
		}
		if length, ok := options.Get("length"); ok {
			opts = append(opts, strutil.WithLength(value.ToInteger(length)))
		}
		if omission, ok := options.Get("omission"); ok {
			opts = append(opts, strutil.WithOmission(value.ToString(omission)))
		}
	}
	return value.String(strutil.Truncate(value.ToString(input), opts...))
}

func separator(v value.Value) strutil.Separator {
	if v.IsUndefined() {
		return nil
	}
	// The global flag only affects stateful matching, which is not used here.
	if re, _, ok := v.Regexp(); ok {
		return strutil.NewPattern(re)
	}
	return strutil.Literal(value.ToString(v))
}
