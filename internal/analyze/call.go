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

package analyze

import (
	"github.com/TrLucas/codingtools/internal/pyast"
	"github.com/TrLucas/codingtools/internal/report"
)

// discouragedAPIs maps functions to their preferred replacement.
var discouragedAPIs = map[string]string{
	"re.match":    "re.search",
	"codecs.open": "io.open",
}

// lambdaConsumers are called with a lambda function and an iterable.
var lambdaConsumers = map[string]struct{}{
	"map":               {},
	"filter":            {},
	"imap":              {},
	"ifilter":           {},
	"itertools.imap":    {},
	"itertools.ifilter": {},
}

func (v *visitor) call(n *pyast.Call) {
	fn := identifier(n.Func)

	if redundantConstructor(fn, n.Args) {
		v.report(report.RedundantConstructor.Of(n, fn))
	}

	if _, ok := lambdaConsumers[fn]; ok && len(n.Args) == 2 {
		if _, ok := n.Args[0].(*pyast.Lambda); ok {
			v.report(report.LambdaCall.Of(n, fn))
		}
	}

	v.discouraged(n, fn)
}

// redundantConstructor reports whether calling fn with args could be written as a literal or comprehension.
func redundantConstructor(fn string, args []pyast.Expr) bool {
	if len(args) == 0 {
		return false
	}

	switch arg := args[0].(type) {
	case *pyast.List:
		return sequenceConstructor(fn, arg.Elts)

	case *pyast.Tuple:
		return sequenceConstructor(fn, arg.Elts)

	case *pyast.ListComp:
		return comprehensionConstructor(fn, arg.Elt)

	case *pyast.GeneratorExp:
		return comprehensionConstructor(fn, arg.Elt)

	default:
		return false
	}
}

func sequenceConstructor(fn string, elts []pyast.Expr) bool {
	switch fn {
	case "dict":
		for _, elt := range elts {
			if !isPair(elt) {
				return false
			}
		}

		return true

	case "list", "set", "tuple":
		return true

	default:
		return false
	}
}

func comprehensionConstructor(fn string, elt pyast.Expr) bool {
	switch fn {
	case "dict":
		return isPair(elt)

	case "list", "set":
		return true

	default:
		return false
	}
}

// isPair reports whether e is a tuple or list display.
func isPair(e pyast.Expr) bool {
	switch e.(type) {
	case *pyast.Tuple, *pyast.List:
		return true

	default:
		return false
	}
}

func (v *visitor) discouraged(n pyast.Node, name string) {
	if substitute, ok := discouragedAPIs[name]; ok {
		v.report(report.DiscouragedAPI.Of(n, substitute, name))
	}
}

// identifier returns "name" or "value.attr" for simple names and attributes, "" otherwise.
func identifier(e pyast.Expr) string {
	switch e := e.(type) {
	case *pyast.Name:
		return e.ID

	case *pyast.Attribute:
		if value, ok := e.Value.(*pyast.Name); ok {
			return value.ID + "." + e.Attr
		}
	}

	return ""
}
