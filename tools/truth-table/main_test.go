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
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/Fantom-foundation/Tristate/common/tribool"
)

func runApp(t *testing.T, args ...string) (string, error) {
	t.Helper()
	out := &bytes.Buffer{}
	app := newApp()
	app.Writer = out
	err := app.Run(append([]string{"truth-table"}, args...))
	return out.String(), err
}

func TestPrint_AndTableAsMarkdown(t *testing.T) {
	out, err := runApp(t, "print", "--op", "and")
	if err != nil {
		t.Fatalf("failed to print table: %v", err)
	}
	want := strings.Join([]string{
		"| a | b | AND(a,b) |",
		"|---|---|---|",
		"| TRUE | TRUE | TRUE |",
		"| TRUE | FALSE | FALSE |",
		"| TRUE | UNKNOWN | UNKNOWN |",
		"| FALSE | TRUE | FALSE |",
		"| FALSE | FALSE | FALSE |",
		"| FALSE | UNKNOWN | FALSE |",
		"| UNKNOWN | TRUE | UNKNOWN |",
		"| UNKNOWN | FALSE | FALSE |",
		"| UNKNOWN | UNKNOWN | UNKNOWN |",
	}, "\n") + "\n"
	if out != want {
		t.Errorf("unexpected output, wanted\n%s\ngot\n%s", want, out)
	}
}

func TestPrint_OrTableAsTSVWithOptionals(t *testing.T) {
	out, err := runApp(t, "print", "--op", "or", "--format", "tsv", "--optional")
	if err != nil {
		t.Fatalf("failed to print table: %v", err)
	}
	want := strings.Join([]string{
		"a\tb\tOR(a,b)",
		"true\ttrue\ttrue",
		"true\tfalse\ttrue",
		"true\tnull\ttrue",
		"false\ttrue\ttrue",
		"false\tfalse\tfalse",
		"false\tnull\tnull",
		"null\ttrue\ttrue",
		"null\tfalse\tnull",
		"null\tnull\tnull",
	}, "\n") + "\n"
	if out != want {
		t.Errorf("unexpected output, wanted\n%s\ngot\n%s", want, out)
	}
}

func TestPrint_WithoutOperator_PrintsAllTables(t *testing.T) {
	out, err := runApp(t, "print")
	if err != nil {
		t.Fatalf("failed to print tables: %v", err)
	}
	and := strings.Index(out, "AND(a,b)")
	or := strings.Index(out, "OR(a,b)")
	if and < 0 || or < 0 || and > or {
		t.Errorf("expected AND table followed by OR table, got\n%s", out)
	}
	if got, want := strings.Count(out, "\n"), 2*11+1; got != want {
		t.Errorf("unexpected number of lines, wanted %d, got %d", want, got)
	}
}

func TestPrint_InvalidChoices_AreRejected(t *testing.T) {
	tests := map[string][]string{
		"operator": {"print", "--op", "xor"},
		"format":   {"print", "--format", "html"},
		"check":    {"check", "--op", "implies"},
	}
	for name, args := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := runApp(t, args...)
			if !errors.Is(err, errInvalidChoice) {
				t.Errorf("expected invalid choice error, got %v", err)
			}
		})
	}
}

func TestSelectOperators_ListsValidChoices(t *testing.T) {
	_, err := selectOperators("nand")
	if err == nil {
		t.Fatalf("expected an error for an unknown operator")
	}
	if !strings.Contains(err.Error(), "and, or") {
		t.Errorf("error should list sorted choices, got %v", err)
	}
}

func TestSelectOperators_IsCaseInsensitive(t *testing.T) {
	ops, err := selectOperators("OR")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(ops) != 1 || ops[0].name != "OR" {
		t.Errorf("unexpected selection: %v", ops)
	}
}

func TestCheck_AllTablesAreConsistent(t *testing.T) {
	if _, err := runApp(t, "check"); err != nil {
		t.Errorf("tables are not consistent: %v", err)
	}
}

func TestCheckOperator_DetectsInconsistencies(t *testing.T) {
	broken := map[string]operator{}

	op := operators["and"]
	op.apply = func(a, b tribool.Tribool) tribool.Tribool { return a }
	broken["not commutative"] = op

	op = operators["and"]
	op.applyOptional = tribool.Tribool.OrOptional
	broken["optional form"] = op

	op = operators["or"]
	op.applyFree = func(a, b *bool) *bool { return nil }
	broken["free function"] = op

	op = operators["or"]
	op.applyBool = func(a, b bool) bool { return a && b }
	broken["boolean logic"] = op

	for name, op := range broken {
		t.Run(name, func(t *testing.T) {
			if err := checkOperator(op); !errors.Is(err, errInconsistentTable) {
				t.Errorf("expected inconsistency to be detected, got %v", err)
			}
		})
	}
}
