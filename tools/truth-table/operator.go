// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package main

import (
	"fmt"
	"strings"

	"github.com/Fantom-foundation/Tristate/common"
	"github.com/Fantom-foundation/Tristate/common/tribool"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

const errInvalidChoice = common.ConstError("invalid choice")

// operator bundles the different ways a binary operator can be applied.
// All of them are expected to agree on every pair of operands.
type operator struct {
	name string
	// apply combines two tribools.
	apply func(a, b tribool.Tribool) tribool.Tribool
	// applyOptional combines a tribool with an optional boolean.
	applyOptional func(a tribool.Tribool, b *bool) tribool.Tribool
	// applyFree combines two optional booleans.
	applyFree func(a, b *bool) *bool
	// applyBool is the two-valued counterpart.
	applyBool func(a, b bool) bool
}

var operators = map[string]operator{
	"and": {
		name:          "AND",
		apply:         tribool.Tribool.And,
		applyOptional: tribool.Tribool.AndOptional,
		applyFree:     tribool.And,
		applyBool:     func(a, b bool) bool { return a && b },
	},
	"or": {
		name:          "OR",
		apply:         tribool.Tribool.Or,
		applyOptional: tribool.Tribool.OrOptional,
		applyFree:     tribool.Or,
		applyBool:     func(a, b bool) bool { return a || b },
	},
}

// operands lists the values in the order rows are printed and checked.
var operands = []tribool.Tribool{tribool.True(), tribool.False(), tribool.Unknown()}

// choices returns the sorted keys of the given map.
func choices[V any](options map[string]V) []string {
	res := maps.Keys(options)
	slices.Sort(res)
	return res
}

// selectOperators resolves an operator name. An empty name selects all
// operators, ordered by name.
func selectOperators(name string) ([]operator, error) {
	if name == "" {
		res := make([]operator, 0, len(operators))
		for _, key := range choices(operators) {
			res = append(res, operators[key])
		}
		return res, nil
	}
	op, found := operators[strings.ToLower(name)]
	if !found {
		return nil, fmt.Errorf("%w: unknown operator %q, valid operators are %s", errInvalidChoice, name, strings.Join(choices(operators), ", "))
	}
	return []operator{op}, nil
}
