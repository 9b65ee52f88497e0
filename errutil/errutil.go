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

package errutil

import (
	"strings"
)

// MultiError is a list of errors that occurred together.
type MultiError []error

// Error implements the error interface.
func (m MultiError) Error() string {
	if len(m) == 0 {
		return ""
	}
	s := make([]string, len(m))
	for i, err := range m {
		s[i] = err.Error()
	}
	return "following errors occurred: [" + strings.Join(s, ", ") + "]"
}

// Unwrap returns the wrapped errors so errors.Is and errors.As can look
// through the list.
func (m MultiError) Unwrap() []error {
	return m
}

// Append joins the given errors into one. Nil errors are skipped and
// MultiError values are flattened. If only one non-nil error remains, it is
// returned as is.
func Append(err error, errs ...error) error {
	var m MultiError
	for _, e := range append([]error{err}, errs...) {
		switch t := e.(type) {
		case nil:
			continue
		case MultiError:
			m = append(m, t...)
		default:
			m = append(m, t)
		}
	}
	switch len(m) {
	case 0:
		return nil
	case 1:
		return m[0]
	}
	return m
}

// Ignore returns the value and discards the error.
func Ignore[T any](v T, _ error) T {
	return v
}

// Must returns the value and panics if the error is not nil.
func Must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}
