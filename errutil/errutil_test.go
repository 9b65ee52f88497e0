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
	"errors"
	"io/fs"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppend(t *testing.T) {
	errA := errors.New("a")
	errB := errors.New("b")
	errC := errors.New("c")

	tests := []struct {
		name string
		err  error
		errs []error
		want error
	}{
		{name: "nothing", err: nil, want: nil},
		{name: "only nils", err: nil, errs: []error{nil, nil}, want: nil},
		{name: "single error", err: errA, want: errA},
		{name: "single error after nil", err: nil, errs: []error{nil, errB}, want: errB},
		{name: "two errors", err: errA, errs: []error{errB}, want: MultiError{errA, errB}},
		{name: "nils are skipped", err: errA, errs: []error{nil, errB, nil}, want: MultiError{errA, errB}},
		{name: "flattens the first argument", err: MultiError{errA, errB}, errs: []error{errC}, want: MultiError{errA, errB, errC}},
		{name: "flattens later arguments", err: errA, errs: []error{MultiError{errB, errC}}, want: MultiError{errA, errB, errC}},
		{name: "keeps duplicates", err: MultiError{errA, errB}, errs: []error{MultiError{errA, errB}}, want: MultiError{errA, errB, errA, errB}},
		{name: "single error inside MultiError", err: MultiError{errA}, want: errA},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Append(tt.err, tt.errs...))
		})
	}
}

func TestAppendAccumulates(t *testing.T) {
	var err error
	for i := 0; i < 3; i++ {
		err = Append(err, errors.New(strconv.Itoa(i)))
	}
	assert.EqualError(t, err, "following errors occurred: [0, 1, 2]")
}

func TestMultiError(t *testing.T) {
	assert.Empty(t, MultiError(nil).Error())
	assert.Equal(t, "following errors occurred: [a]", MultiError{errors.New("a")}.Error())
	assert.Equal(t, "following errors occurred: [a, b]", MultiError{errors.New("a"), errors.New("b")}.Error())
}

func TestMultiErrorUnwrap(t *testing.T) {
	pathErr := &fs.PathError{Op: "open", Path: "x.hcl", Err: fs.ErrNotExist}
	err := Append(errors.New("a"), pathErr)

	assert.ErrorIs(t, err, fs.ErrNotExist)
	assert.NotErrorIs(t, err, fs.ErrPermission)

	var target *fs.PathError
	require.ErrorAs(t, err, &target)
	assert.Equal(t, "x.hcl", target.Path)
}

func TestIgnore(t *testing.T) {
	assert.Equal(t, 1, Ignore(1, nil))
	assert.Equal(t, 2, Ignore(2, errors.New("ignored")))
	assert.Equal(t, "", Ignore("", errors.New("ignored")))
}

func TestMust(t *testing.T) {
	t.Run("no error", func(t *testing.T) {
		assert.NotPanics(t, func() {
			assert.Equal(t, 1, Must(1, nil))
		})
	})
	t.Run("error", func(t *testing.T) {
		err := errors.New("boom")
		assert.PanicsWithError(t, "boom", func() {
			Must(1, err)
		})
	})
}
