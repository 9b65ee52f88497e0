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
	"github.com/apparentlymart/go-textseg/v15/textseg"

	"github.com/chronicleprotocol/go-helpers/errutil"
)

// Len returns the number of user-perceived characters (grapheme clusters)
// in s.
func Len(s string) int {
	return errutil.Ignore(textseg.TokenCount([]byte(s), textseg.ScanGraphemeClusters))
}

// Slice returns the first n user-perceived characters of s.
func Slice(s string, n int) string {
	if n <= 0 {
		return ""
	}
	cut := 0
	for i, c := range graphemes(s) {
		if i == n {
			break
		}
		cut += len(c)
	}
	return s[:cut]
}

// graphemes splits s into grapheme clusters. The scanner never fails.
func graphemes(s string) [][]byte {
	return errutil.Ignore(textseg.AllTokens([]byte(s), textseg.ScanGraphemeClusters))
}
