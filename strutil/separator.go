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

package strutil

import (
	"regexp"
	"strings"

	"github.com/chronicleprotocol/go-helpers/errutil"
)

// Separator finds the position at which a truncated string should be cut.
type Separator interface {
	// Boundary is called with the full text and the byte offset of the
	// cutoff. It returns the byte offset, not greater than cut, at which the
	// text should end instead. If ok is false, the text is cut at the cutoff.
	Boundary(s string, cut int) (i int, ok bool)
}

// Literal is a separator that matches the literal text.
type Literal string

// Boundary implements the Separator interface.
//
// If the separator starts exactly at the cutoff, the cutoff is already a
// boundary and is kept. Otherwise the text is cut before the last
// occurrence of the separator that ends at or before the cutoff.
func (l Literal) Boundary(s string, cut int) (int, bool) {
	if strings.HasPrefix(s[cut:], string(l)) {
		return 0, false
	}
	i := strings.LastIndex(s[:cut], string(l))
	return i, i >= 0
}

// Pattern is a separator that matches a regular expression.
type Pattern struct {
	re *regexp.Regexp
}

// NewPattern returns a separator matching the given expression.
func NewPattern(re *regexp.Regexp) Pattern {
	return Pattern{re: re}
}

// MustPattern compiles the expression and returns a separator matching it.
// It panics if the expression cannot be compiled.
func MustPattern(expr string) Pattern {
	return NewPattern(errutil.Must(regexp.Compile(expr)))
}

// Boundary implements the Separator interface.
//
// If the expression matches at the cutoff, the cutoff is kept. Otherwise
// the text is cut at the start of the last match lying wholly before the
// cutoff.
func (p Pattern) Boundary(s string, cut int) (int, bool) {
	if p.re == nil {
		return 0, false
	}
	if loc := p.re.FindStringIndex(s[cut:]); loc != nil && loc[0] == 0 {
		return 0, false
	}
	matches := p.re.FindAllStringIndex(s[:cut], -1)
	if len(matches) == 0 {
		return 0, false
	}
	return matches[len(matches)-1][0], true
}

func (p Pattern) String() string {
	if p.re == nil {
		return ""
	}
	return p.re.String()
}
