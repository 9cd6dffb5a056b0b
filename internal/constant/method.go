// Copyright 2026 Oliver Eikemeier. All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0


package constant

// Method is a method bound to a constant str or bytes receiver, e.g. 'x'.upper.
type Method struct {
	Receiver Value
	Name     string
}

func (Method) value() {}

func (m Method) String() string {
	kind := "str"
	if _, ok := m.Receiver.(Bytes); ok {
		kind = "bytes"
	}

	return "<built-in method " + m.Name + " of " + kind + " object>"
}

// sequenceMethods are the methods str and bytes have in common.
var sequenceMethods = makeNames(
	"capitalize", "center", "count", "endswith", "expandtabs", "find", "index",
	"isalnum", "isalpha", "isascii", "isdigit", "islower", "isspace", "istitle",
	"isupper", "join", "ljust", "lower", "lstrip", "partition", "removeprefix",
	"removesuffix", "replace", "rfind", "rindex", "rjust", "rpartition", "rsplit",
	"rstrip", "split", "splitlines", "startswith", "strip", "swapcase", "title",
	"translate", "upper", "zfill",
)

var (
	strMethods   = makeNames("casefold", "encode", "format", "format_map", "isdecimal", "isidentifier", "isnumeric", "isprintable")
	bytesMethods = makeNames("decode", "hex")
)

func makeNames(names ...string) map[string]struct{} {
	m := make(map[string]struct{}, len(names))
	for _, n := range names {
		m[n] = struct{}{}
	}

	return m
}

// attribute folds the lookup of attr on recv. Only methods of str and bytes fold.
func attribute(recv Value, attr string) Value {
	var own map[string]struct{}

	switch recv.(type) {
	case Str:
		own = strMethods

	case Bytes:
		own = bytesMethods

	default:
		return Volatile
	}

	_, shared := sequenceMethods[attr]
	if _, ok := own[attr]; !ok && !shared {
		return Volatile
	}

	return Method{Receiver: recv, Name: attr}
}
