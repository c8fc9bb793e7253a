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
	"log"

	"github.com/Fantom-foundation/Tristate/common"
	"github.com/Fantom-foundation/Tristate/common/tribool"
	"github.com/urfave/cli/v2"
)

const errInconsistentTable = common.ConstError("inconsistent truth table")

var checkCommand = cli.Command{
	Action: check,
	Name:   "check",
	Usage:  "verifies that all forms of the logic operators agree with each other",
	Flags: []cli.Flag{
		&operatorFlag,
	},
}

func check(ctx *cli.Context) error {
	ops, err := selectOperators(ctx.String(operatorFlag.Name))
	if err != nil {
		return err
	}
	for _, op := range ops {
		log.Printf("Checking %s table ...", op.name)
		if err := checkOperator(op); err != nil {
			return err
		}
	}
	log.Printf("All tables are consistent")
	return nil
}

// checkOperator compares the results of all forms of the given operator on
// every pair of operands. It also checks that the operator is commutative
// and agrees with its two-valued counterpart on known operands.
func checkOperator(op operator) error {
	for _, a := range operands {
		for _, b := range operands {
			want := op.apply(a, b)
			if got := op.apply(b, a); got != want {
				return fmt.Errorf("%w: %v %s %v = %v, but %v %s %v = %v", errInconsistentTable, a, op.name, b, want, b, op.name, a, got)
			}
			if got := op.applyOptional(a, b.Optional()); got != want {
				return fmt.Errorf("%w: %v %s %v = %v, but optional form yields %v", errInconsistentTable, a, op.name, b, want, got)
			}
			if got := tribool.FromOptional(op.applyFree(a.Optional(), b.Optional())); got != want {
				return fmt.Errorf("%w: %v %s %v = %v, but free function yields %v", errInconsistentTable, a, op.name, b, want, got)
			}
			x, xKnown := a.Bool()
			y, yKnown := b.Bool()
			if !xKnown || !yKnown {
				continue
			}
			if got := tribool.New(op.applyBool(x, y)); got != want {
				return fmt.Errorf("%w: %v %s %v = %v, but boolean logic yields %v", errInconsistentTable, a, op.name, b, want, got)
			}
		}
	}
	return nil
}
