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
	"strings"

	"github.com/chronicleprotocol/go-helpers/env"
)

// DefaultLength and DefaultOmission are used by Truncate when the
// corresponding option is not given.
const (
	DefaultLength   = 30
	DefaultOmission = "..."
)

type options struct {
	length    int
	omission  string
	separator Separator
}

// Option configures Truncate.
type Option func(*options)

// WithLength sets the maximum length of the result, measured in
// user-perceived characters. Negative lengths are treated as 0.
func WithLength(n int) Option {
	return func(o *options) { o.length = max(n, 0) }
}

// WithOmission sets the text appended to truncated strings.
func WithOmission(s string) Option {
	return func(o *options) { o.omission = s }
}

// EnvOptions returns the length and omission configured by the
// CFG_TRUNCATE_LENGTH and CFG_TRUNCATE_OMISSION environment variables.
// Unset or invalid variables yield the defaults. The environment is read
// on every call, Truncate itself never reads it.
func EnvOptions() []Option {
	return []Option{
		WithLength(env.Int(env.KeyTruncateLength, DefaultLength)),
		WithOmission(env.String(env.KeyTruncateOmission, DefaultOmission)),
	}
}

// WithSeparator makes Truncate cut at the last separator occurrence before
// the cutoff instead of in the middle of a word.
func WithSeparator(sep Separator) Option {
	return func(o *options) { o.separator = sep }
}

// Truncate shortens s so that it is at most the configured length,
// including the omission marker. Strings that already fit are returned
// unchanged.
//
// Lengths are counted in grapheme clusters, so multi-code-point characters
// are never split. If the length is too small to hold any text before the
// omission, the omission itself is returned, cut to the length when the
// length is positive.
func Truncate(s string, opts ...Option) string {
	o := options{length: DefaultLength, omission: DefaultOmission}
	for _, opt := range opts {
		opt(&o)
	}
	clusters := graphemes(s)
	if o.length >= len(clusters) {
		return s
	}
	end := o.length - Len(o.omission)
	if end < 1 {
		if o.length == 0 {
			return o.omission
		}
		return Slice(o.omission, o.length)
	}
	cut := 0
	for _, c := range clusters[:end] {
		cut += len(c)
	}
	prefix := s[:cut]
	if o.separator != nil {
		if i, ok := o.separator.Boundary(s, cut); ok {
			prefix = prefix[:i]
		}
	}
	var b strings.Builder
	b.Grow(len(prefix) + len(o.omission))
	b.WriteString(prefix)
	b.WriteString(o.omission)
	return b.String()
}
