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

// Package env reads configuration from environment variables.
//
// Every getter takes a default that is returned when the variable is not
// set or its value cannot be parsed.
package env

import (
	"os"
	"reflect"
	"strconv"
	"strings"
)

type parseFn[T any] func(string) (T, error)

func lookup[T any](parse parseFn[T], key string, def T) (v T) {
	defer func() {
		log.Debugw("Environment variable resolved", "key", key, "type", reflect.TypeOf(def).String(), "value", v)
	}()
	s, ok := os.LookupEnv(key)
	if !ok {
		return def
	}
	val, err := parse(s)
	if err != nil {
		log.Warnw("Invalid environment variable, using default", "key", key, "error", err)
		return def
	}
	return val
}

// String returns the value of the variable. Empty values are valid.
func String(key, def string) string {
	return lookup(func(s string) (string, error) { return s, nil }, key, def)
}

// Int returns the value of the variable parsed as a decimal integer.
// Surrounding whitespace is ignored.
func Int(key string, def int) int {
	return lookup(func(s string) (int, error) { return strconv.Atoi(strings.TrimSpace(s)) }, key, def)
}
