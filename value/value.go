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

// Package value implements a small dynamic value model: a tagged union of
// undefined, null, booleans, numbers, strings, symbols and objects.
//
// Primitives compare by payload. Symbols and objects carry an identity, two
// values built by separate constructor calls are never the same value.
package value

import (
	"regexp"
	"sort"

	"golang.org/x/exp/constraints"
)

// Kind is the type tag of a Value.
type Kind uint8

const (
	KindUndefined Kind = iota
	KindNull
	KindBool
	KindNumber
	KindString
	KindSymbol
	KindObject
)

func (k Kind) String() string {
	switch k {
	case KindUndefined:
		return "undefined"
	case KindNull:
		return "null"
	case KindBool:
		return "boolean"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindSymbol:
		return "symbol"
	case KindObject:
		return "object"
	default:
		return "unknown"
	}
}

// Value is a dynamically typed value. The zero Value is undefined.
type Value struct {
	kind Kind
	b    bool
	n    float64
	s    string
	sym  *symbol
	obj  *object
}

type symbol struct {
	desc string
}

type class uint8

const (
	classPlain class = iota
	classArray
	classBoxed
	classRegExp
)

type object struct {
	class    class
	props    map[string]Value
	elems    []Value
	boxed    Value
	re       *regexp.Regexp
	global   bool
	toString func() Value
	valueOf  func() Value
}

// ObjectOption configures an object created by Object.
type ObjectOption func(*object)

// WithToString sets the function used when the object is converted to text.
func WithToString(fn func() Value) ObjectOption {
	return func(o *object) { o.toString = fn }
}

// WithValueOf sets the function used when the object is converted to
// a primitive, for example by ToNumber.
func WithValueOf(fn func() Value) ObjectOption {
	return func(o *object) { o.valueOf = fn }
}

// Undefined returns the undefined value.
func Undefined() Value { return Value{} }

// Null returns the null value.
func Null() Value { return Value{kind: KindNull} }

// Bool returns a boolean value.
func Bool(b bool) Value { return Value{kind: KindBool, b: b} }

// Number returns a number value. All numbers are stored as float64.
func Number[T constraints.Integer | constraints.Float](n T) Value {
	return Value{kind: KindNumber, n: float64(n)}
}

// String returns a string value.
func String(s string) Value { return Value{kind: KindString, s: s} }

// NewSymbol returns a new symbol with the given description. Every call
// returns a distinct symbol, even for equal descriptions.
func NewSymbol(desc string) Value {
	return Value{kind: KindSymbol, sym: &symbol{desc: desc}}
}

// Object returns a new plain object with a copy of the given properties.
func Object(props map[string]Value, opts ...ObjectOption) Value {
	o := &object{class: classPlain, props: make(map[string]Value, len(props))}
	for k, v := range props {
		o.props[k] = v
	}
	for _, opt := range opts {
		opt(o)
	}
	return Value{kind: KindObject, obj: o}
}

// Array returns a new array object holding the given elements.
func Array(elems ...Value) Value {
	o := &object{class: classArray, elems: append([]Value(nil), elems...)}
	return Value{kind: KindObject, obj: o}
}

// Box wraps a primitive in a new object. Boxing an object returns it
// unchanged.
func Box(v Value) Value {
	if v.kind == KindObject {
		return v
	}
	return Value{kind: KindObject, obj: &object{class: classBoxed, boxed: v}}
}

// RegExp returns a new regular expression object. The global flag is kept
// only so it can be reported back, matching never depends on it.
func RegExp(re *regexp.Regexp, global bool) Value {
	return Value{kind: KindObject, obj: &object{class: classRegExp, re: re, global: global}}
}

func (v Value) Kind() Kind { return v.kind }

func (v Value) IsUndefined() bool { return v.kind == KindUndefined }
func (v Value) IsNull() bool      { return v.kind == KindNull }
func (v Value) IsObject() bool    { return v.kind == KindObject }

// IsArray reports whether v is an array object.
func (v Value) IsArray() bool { return v.kind == KindObject && v.obj.class == classArray }

// IsRegExp reports whether v is a regular expression object.
func (v Value) IsRegExp() bool { return v.kind == KindObject && v.obj.class == classRegExp }

// AsBool returns the payload of a boolean value. It panics for other kinds.
func (v Value) AsBool() bool {
	v.assertKind(KindBool)
	return v.b
}

// AsNumber returns the payload of a number value. It panics for other kinds.
func (v Value) AsNumber() float64 {
	v.assertKind(KindNumber)
	return v.n
}

// AsString returns the payload of a string value. It panics for other kinds.
func (v Value) AsString() string {
	v.assertKind(KindString)
	return v.s
}

// Description returns the description of a symbol. It panics for other kinds.
func (v Value) Description() string {
	v.assertKind(KindSymbol)
	return v.sym.desc
}

// Get returns the named property of a plain object. The second result is
// false if the property is absent, which differs from a property explicitly
// set to undefined.
func (v Value) Get(key string) (Value, bool) {
	if v.kind != KindObject || v.obj.class != classPlain {
		return Value{}, false
	}
	p, ok := v.obj.props[key]
	return p, ok
}

// Keys returns the sorted property names of a plain object.
func (v Value) Keys() []string {
	if v.kind != KindObject || v.obj.class != classPlain {
		return nil
	}
	keys := make([]string, 0, len(v.obj.props))
	for k := range v.obj.props {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Elements returns a copy of the elements of an array object.
func (v Value) Elements() []Value {
	if !v.IsArray() {
		return nil
	}
	return append([]Value(nil), v.obj.elems...)
}

// Regexp returns the expression of a regular expression object and its
// global flag.
func (v Value) Regexp() (re *regexp.Regexp, global bool, ok bool) {
	if !v.IsRegExp() {
		return nil, false, false
	}
	return v.obj.re, v.obj.global, true
}

// Unbox returns the primitive wrapped by a boxed object.
func (v Value) Unbox() (Value, bool) {
	if v.kind != KindObject || v.obj.class != classBoxed {
		return Value{}, false
	}
	return v.obj.boxed, true
}

// String implements the fmt.Stringer interface using ToString.
func (v Value) String() string {
	return ToString(v)
}

func (v Value) assertKind(k Kind) {
	if v.kind != k {
		panic("value: " + v.kind.String() + " used as " + k.String())
	}
}

// Identity returns an opaque comparable handle for symbols and objects.
// Two values have equal identities only if they were returned by the same
// constructor call. Other kinds return nil.
func (v Value) Identity() any {
	switch v.kind {
	case KindSymbol:
		return v.sym
	case KindObject:
		return v.obj
	default:
		return nil
	}
}
