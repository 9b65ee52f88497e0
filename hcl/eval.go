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
	"github.com/hashicorp/hcl/v2"
	logging "github.com/ipfs/go-log/v2"
	"github.com/zclconf/go-cty/cty"

	"github.com/chronicleprotocol/go-helpers/hcl/funcs"
)

var log = logging.Logger("hcl")

// NewEvalContext returns an evaluation context with the helper functions
// from the funcs package and the given variables.
func NewEvalContext(vars map[string]cty.Value) *hcl.EvalContext {
	return &hcl.EvalContext{
		Variables: vars,
		Functions: funcs.Functions(),
	}
}

// EvalAttributes evaluates every attribute of the body. The body must not
// contain blocks.
//
// Attributes that fail to evaluate are left out of the result and reported
// in the returned diagnostics.
func EvalAttributes(ctx *hcl.EvalContext, body hcl.Body) (map[string]cty.Value, hcl.Diagnostics) {
	attrs, diags := body.JustAttributes()
	if diags.HasErrors() {
		return nil, diags
	}
	vals := make(map[string]cty.Value, len(attrs))
	for name, attr := range attrs {
		val, valDiags := attr.Expr.Value(ctx)
		diags = diags.Extend(valDiags)
		if valDiags.HasErrors() {
			continue
		}
		log.Debugw("Attribute evaluated", "name", name, "type", val.Type().FriendlyName())
		vals[name] = val
	}
	return vals, diags
}
