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

package value

import (
	"errors"
	"math"
	"math/big"
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

var decimalLiteral = regexp.MustCompile(`^[+-]?(?:Infinity|(?:[0-9]+\.?[0-9]*|\.[0-9]+)(?:[eE][+-]?[0-9]+)?)$`)

// ToString converts v to its text representation.
//
// Undefined and null become "undefined" and "null", negative zero keeps its
// sign, arrays join their elements with commas and objects use their
// toString hook if they have one.
func ToString(v Value) string {
	switch v.kind {
	case KindUndefined:
		return "undefined"
	case KindNull:
		return "null"
	case KindBool:
		return strconv.FormatBool(v.b)
	case KindNumber:
		return formatNumber(v.n)
	case KindString:
		return v.s
	case KindSymbol:
		return "Symbol(" + v.sym.desc + ")"
	case KindObject:
		return objectToString(v.obj)
	}
	return ""
}

// ToNumber converts v to a number. Values without a numeric meaning
// convert to NaN.
func ToNumber(v Value) float64 {
	switch v.kind {
	case KindUndefined, KindSymbol:
		return math.NaN()
	case KindNull:
		return 0
	case KindBool:
		if v.b {
			return 1
		}
		return 0
	case KindNumber:
		return v.n
	case KindString:
		return parseNumber(v.s)
	case KindObject:
		return ToNumber(ToPrimitive(v))
	}
	return math.NaN()
}

// ToInteger converts v to an integer. NaN becomes 0, fractions are
// truncated toward zero and values out of the int range are clamped.
func ToInteger(v Value) int {
	f := ToNumber(v)
	switch {
	case math.IsNaN(f):
		return 0
	case f >= math.MaxInt:
		return math.MaxInt
	case f <= math.MinInt:
		return math.MinInt
	}
	return int(math.Trunc(f))
}

// ToPrimitive returns the primitive representation of v. Primitives are
// returned as is. Objects are asked for their valueOf hook first, then
// boxed objects unwrap, and everything else falls back to its text form.
func ToPrimitive(v Value) Value {
	if v.kind != KindObject {
		return v
	}
	if v.obj.valueOf != nil {
		if p := v.obj.valueOf(); p.kind != KindObject {
			return p
		}
	}
	if v.obj.class == classBoxed {
		return v.obj.boxed
	}
	return String(objectToString(v.obj))
}

func objectToString(o *object) string {
	if o.toString != nil {
		if s := o.toString(); s.kind != KindObject {
			return ToString(s)
		}
	}
	switch o.class {
	case classArray:
		parts := make([]string, len(o.elems))
		for i, e := range o.elems {
			parts[i] = ToString(e)
		}
		return strings.Join(parts, ",")
	case classBoxed:
		return ToString(o.boxed)
	case classRegExp:
		src := "(?:)"
		if o.re != nil {
			src = o.re.String()
		}
		s := "/" + src + "/"
		if o.global {
			s += "g"
		}
		return s
	}
	return "[object Object]"
}

func formatNumber(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	case f == 0:
		if math.Signbit(f) {
			return "-0"
		}
		return "0"
	}
	if abs := math.Abs(f); abs >= 1e21 || abs < 1e-6 {
		mant, exp, _ := strings.Cut(strconv.FormatFloat(f, 'e', -1, 64), "e")
		digits := strings.TrimLeft(exp[1:], "0")
		if digits == "" {
			digits = "0"
		}
		return mant + "e" + exp[:1] + digits
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func parseNumber(s string) float64 {
	s = strings.TrimFunc(s, func(r rune) bool {
		return unicode.IsSpace(r) || r == '\uFEFF'
	})
	if s == "" {
		return 0
	}
	if len(s) > 2 && s[0] == '0' {
		base := 0
		switch s[1] {
		case 'x', 'X':
			base = 16
		case 'o', 'O':
			base = 8
		case 'b', 'B':
			base = 2
		}
		if base != 0 {
			return parseInteger(s[2:], base)
		}
	}
	if !decimalLiteral.MatchString(s) {
		return math.NaN()
	}
	switch strings.TrimLeft(s, "+") {
	case "Infinity":
		return math.Inf(1)
	case "-Infinity":
		return math.Inf(-1)
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return math.NaN()
	}
	return f
}

func parseInteger(digits string, base int) float64 {
	if digits[0] == '+' || digits[0] == '-' {
		return math.NaN()
	}
	n, ok := new(big.Int).SetString(digits, base)
	if !ok {
		return math.NaN()
	}
	f, _ := new(big.Float).SetInt(n).Float64()
	return f
}
