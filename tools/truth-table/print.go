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
	"io"
	"strings"

	"github.com/Fantom-foundation/Tristate/common/tribool"
	"github.com/urfave/cli/v2"
)

var (
	operatorFlag = cli.StringFlag{
		Name:  "op",
		Usage: "the operator to print the table for, all operators if empty",
	}
	formatFlag = cli.StringFlag{
		Name:  "format",
		Usage: "the output format, one of markdown or tsv",
		Value: "markdown",
	}
	optionalFlag = cli.BoolFlag{
		Name:  "optional",
		Usage: "print optional booleans (true, false, null) instead of tri-state values",
	}
)

var printCommand = cli.Command{
	Action: printTables,
	Name:   "print",
	Usage:  "prints the truth tables of the logic operators",
	Flags: []cli.Flag{
		&operatorFlag,
		&formatFlag,
		&optionalFlag,
	},
}

// tableWriter renders the truth table of a single operator.
type tableWriter func(out io.Writer, op operator, cell func(tribool.Tribool) string) error

var formats = map[string]tableWriter{
	"markdown": writeMarkdown,
	"tsv":      writeTSV,
}

func printTables(ctx *cli.Context) error {
	ops, err := selectOperators(ctx.String(operatorFlag.Name))
	if err != nil {
		return err
	}
	name := ctx.String(formatFlag.Name)
	write, found := formats[strings.ToLower(name)]
	if !found {
		return fmt.Errorf("%w: unknown format %q, valid formats are %s", errInvalidChoice, name, strings.Join(choices(formats), ", "))
	}
	cell := tribool.Tribool.String
	if ctx.Bool(optionalFlag.Name) {
		cell = optionalCell
	}

	out := ctx.App.Writer
	for i, op := range ops {
		if i > 0 {
			if _, err := fmt.Fprintln(out); err != nil {
				return err
			}
		}
		if err := write(out, op, cell); err != nil {
			return err
		}
	}
	return nil
}

// optionalCell renders the optional boolean projection of a value the way
// it would appear in JSON.
func optionalCell(value tribool.Tribool) string {
	if res, known := value.Bool(); known {
		return fmt.Sprintf("%t", res)
	}
	return "null"
}

func writeMarkdown(out io.Writer, op operator, cell func(tribool.Tribool) string) error {
	if _, err := fmt.Fprintf(out, "| a | b | %s(a,b) |\n|---|---|---|\n", op.name); err != nil {
		return err
	}
	return writeRows(out, op, cell, "| %s | %s | %s |\n")
}

func writeTSV(out io.Writer, op operator, cell func(tribool.Tribool) string) error {
	if _, err := fmt.Fprintf(out, "a\tb\t%s(a,b)\n", op.name); err != nil {
		return err
	}
	return writeRows(out, op, cell, "%s\t%s\t%s\n")
}

func writeRows(out io.Writer, op operator, cell func(tribool.Tribool) string, row string) error {
	for _, a := range operands {
		for _, b := range operands {
			if _, err := fmt.Fprintf(out, row, cell(a), cell(b), cell(op.apply(a, b))); err != nil {
				return err
			}
		}
	}
	return nil
}
