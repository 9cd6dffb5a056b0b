// Copyright 2025-2026 Oliver Eikemeier. All Rights Reserved.
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

package analyzer

import (
	"strconv"

	"github.com/TrLucas/codingtools/internal/config"
)

// boolValue is a boolean [flag.Value] backed by one flag of a [config.BitMask].
// An inverted value is true when the flag is disabled.
type boolValue[F config.Flag] struct {
	flags  *config.BitMask[F]
	flag   F
	invert bool
}

func newBehaviorValue(flags *config.BitMask[config.Behavior], flag config.Behavior, invert bool) boolValue[config.Behavior] {
	return boolValue[config.Behavior]{flags: flags, flag: flag, invert: invert}
}

// Set implements [flag.Value].
func (f boolValue[_]) Set(s string) error {
	b, err := parseBool(s)
	if err != nil {
		return err
	}

	f.flags.Set(f.flag, b != f.invert)

	return nil
}

// String implements [flag.Value].
func (f boolValue[_]) String() string {
	return strconv.FormatBool(f.value())
}

// Get implements [flag.Getter].
func (f boolValue[_]) Get() any {
	return f.value()
}

func (f boolValue[_]) value() bool {
	if f.flags == nil {
		return false
	}

	return f.flags.Enabled(f.flag) != f.invert
}

// IsBoolFlag returns true to indicate that this is a boolean [flag.Value].
func (f boolValue[_]) IsBoolFlag() bool { return true }

// parseBool returns the boolean value represented by the string.
func parseBool(str string) (bool, error) {
	switch str {
	case "1", "t", "T", "true", "TRUE", "True", "on", "On":
		return true, nil
	case "0", "f", "F", "false", "FALSE", "False", "off", "Off":
		return false, nil
	}

	return false, &strconv.NumError{Func: "ParseBool", Num: str, Err: strconv.ErrSyntax}
}
