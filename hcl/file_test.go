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

package hcl

import (
	"testing"
	"testing/fstest"

	"github.com/hashicorp/hcl/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFiles(t *testing.T) {
	tests := []struct {
		name          string
		paths         []string
		expectedBody  hcl.Body
		expectedError string
	}{
		{
			name: "valid configurations",
			paths: []string{
				"./testdata/valid1.hcl",
				"./testdata/valid2.hcl",
			},
		},
		{
			name: "invalid configurations",
			paths: []string{
				"./testdata/valid1.hcl",
				"./testdata/invalid.hcl",
			},
			expectedError: "invalid.hcl", // Invalid file must be reported.
		},
		{
			name:  "no files",
			paths: nil,
		},
		{
			name: "non-existent file",
			paths: []string{
				"./testdata/valid1.hcl",
				"./testdata/non-existent.hcl",
			},
			expectedError: "Cannot read file ./testdata/non-existent.hcl", // Non-existent file must be reported.
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body, diags := ParseFiles(tt.paths, nil)
			if len(tt.expectedError) > 0 {
				assert.NotNil(t, diags)
				assert.True(t, diags.HasErrors())
				assert.Contains(t, diags.Error(), tt.expectedError)

			} else {
				assert.False(t, diags.HasErrors())
				assert.NotNil(t, body)
			}
		})
	}
}

func TestParseSources(t *testing.T) {
	body, diags := ParseSources(map[string][]byte{
		"a.hcl": []byte(`a = eq(1, 1)`),
		"b.hcl": []byte(`b = truncate("hi-diddly-ho there, neighborino", { length = 4 })`),
	})
	require.False(t, diags.HasErrors(), diags.Error())

	vals, diags := EvalAttributes(NewEvalContext(nil), body)
	require.False(t, diags.HasErrors(), diags.Error())
	assert.True(t, vals["a"].True())
	assert.Equal(t, "h...", vals["b"].AsString())

	_, diags = ParseSources(map[string][]byte{"broken.hcl": []byte(`a = "`)})
	assert.True(t, diags.HasErrors())
	assert.Contains(t, diags.Error(), "broken.hcl")
}

func TestParseFileFS(t *testing.T) {
	fsys := fstest.MapFS{
		"conf/main.hcl": &fstest.MapFile{Data: []byte(`title = truncate("hi-diddly-ho there, neighborino", { separator = " " })`)},
	}

	body, diags := ParseFileFS(fsys, "conf/main.hcl", nil)
	require.False(t, diags.HasErrors(), diags.Error())
	vals, diags := EvalAttributes(NewEvalContext(nil), body)
	require.False(t, diags.HasErrors(), diags.Error())
	assert.Equal(t, "hi-diddly-ho there,...", vals["title"].AsString())

	_, diags = ParseFileFS(fsys, "conf/missing.hcl", nil)
	assert.True(t, diags.HasErrors())
	assert.Contains(t, diags.Error(), "Cannot read file conf/missing.hcl")
}
