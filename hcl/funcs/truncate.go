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
	"errors"
	"fmt"
	"math"
	"regexp"
	"sort"

	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
	"github.com/zclconf/go-cty/cty/function"

	"github.com/chronicleprotocol/go-helpers/errutil"
	"github.com/chronicleprotocol/go-helpers/strutil"
)

// TruncateFunc shortens a string using strutil.Truncate.
//
// The optional second argument is an object with the following attributes,
// all optional, null meaning the default:
//
//   - length: maximum length of the result, including the omission.
//   - omission: text appended to truncated strings.
//   - separator: literal text at which the string should preferably be cut.
//   - separator_pattern: regular expression used instead of separator.
var TruncateFunc = function.New(&function.Spec{
	Description: "Shortens a string to a maximum length, appending an omission marker.",
	Params: []function.Parameter{
		{
			Name:        "str",
			Description: "The string to truncate.",
			Type:        cty.String,
		},
	},
	VarParam: &function.Parameter{
		Name:        "options",
		Description: "An object with the length, omission, separator and separator_pattern attributes.",
		Type:        cty.DynamicPseudoType,
		AllowNull:   true,
	},
	Type: function.StaticReturnType(cty.String),
	Impl: func(args []cty.Value, _ cty.Type) (cty.Value, error) {
		if len(args) > 2 {
			return cty.NilVal, function.NewArgErrorf(2, "too many arguments, only one options object is allowed")
		}
		var opts []strutil.Option
		if len(args) == 2 {
			v, _ := args[1].UnmarkDeep()
			if !v.IsWhollyKnown() {
				return cty.UnknownVal(cty.String), nil
			}
			var err error
			if opts, err = truncateOptions(v); err != nil {
				return cty.NilVal, function.NewArgError(1, err)
			}
		}
		return cty.StringVal(strutil.Truncate(args[0].AsString(), opts...)), nil
	},
})

func truncateOptions(v cty.Value) ([]strutil.Option, error) {
	if v.IsNull() {
		return nil, nil
	}
	if ty := v.Type(); !ty.IsObjectType() && !ty.IsMapType() {
		return nil, fmt.Errorf("options must be an object, got %s", ty.FriendlyName())
	}
	attrs := v.AsValueMap()
	var errs error
	if isSet(attrs, "separator") && isSet(attrs, "separator_pattern") {
		errs = errors.New("separator and separator_pattern cannot be used together")
	}
	names := make([]string, 0, len(attrs))
	for name := range attrs {
		names = append(names, name)
	}
	sort.Strings(names)
	var opts []strutil.Option
	for _, name := range names {
		opt, err := truncateOption(name, attrs[name])
		if err != nil {
			errs = errutil.Append(errs, err)
			continue
		}
		if opt != nil {
			opts = append(opts, opt)
		}
	}
	if errs != nil {
		return nil, errs
	}
	return opts, nil
}

// truncateOption returns the option for a single attribute. Null
// attributes yield a nil option.
func truncateOption(name string, attr cty.Value) (strutil.Option, error) {
	if attr.IsNull() {
		return nil, nil
	}
	switch name {
	case "length":
		n, err := convert.Convert(attr, cty.Number)
		if err != nil {
			return nil, fmt.Errorf("invalid length: %w", err)
		}
		return strutil.WithLength(toInt(n)), nil
	case "omission":
		s, err := convert.Convert(attr, cty.String)
		if err != nil {
			return nil, fmt.Errorf("invalid omission: %w", err)
		}
		return strutil.WithOmission(s.AsString()), nil
	case "separator":
		s, err := convert.Convert(attr, cty.String)
		if err != nil {
			return nil, fmt.Errorf("invalid separator: %w", err)
		}
		return strutil.WithSeparator(strutil.Literal(s.AsString())), nil
	case "separator_pattern":
		s, err := convert.Convert(attr, cty.String)
		if err != nil {
			return nil, fmt.Errorf("invalid separator_pattern: %w", err)
		}
		re, err := regexp.Compile(s.AsString())
		if err != nil {
			return nil, fmt.Errorf("invalid separator_pattern: %w", err)
		}
		return strutil.WithSeparator(strutil.NewPattern(re)), nil
	}
	return nil, fmt.Errorf("unsupported option %q", name)
}

func isSet(attrs map[string]cty.Value, name string) bool {
	v, ok := attrs[name]
	return ok && !v.IsNull()
}

// toInt truncates a number toward zero and clamps it to the int range.
func toInt(n cty.Value) int {
	i, _ := n.AsBigFloat().Int64()
	switch {
	case i > math.MaxInt:
		return math.MaxInt
	case i < math.MinInt:
		return math.MinInt
	}
	return int(i)
}
