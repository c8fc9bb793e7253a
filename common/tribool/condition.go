// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package tribool

import "fmt"

//go:generate mockgen -source condition.go -destination condition_mocks.go -package tribool

// Condition is a check producing a three-valued result. A condition that
// lacks the information to decide, for instance because it is based on
// incomplete data, should report Unknown rather than False. The error
// result is reserved for failures of the check itself.
type Condition interface {
	Evaluate() (Tribool, error)
}

// ConditionFunc adapts a plain function to the Condition interface.
type ConditionFunc func() (Tribool, error)

func (f ConditionFunc) Evaluate() (Tribool, error) {
	return f()
}

// Const returns a condition always evaluating to the given value.
func Const(value Tribool) Condition {
	return ConditionFunc(func() (Tribool, error) {
		return value, nil
	})
}

// AllOf computes the conjunction of the given values. The conjunction of
// no values is True.
func AllOf(values ...Tribool) Tribool {
	res := True()
	for _, cur := range values {
		res = res.And(cur)
		if res.False() {
			break
		}
	}
	return res
}

// AnyOf computes the disjunction of the given values. The disjunction of
// no values is False.
func AnyOf(values ...Tribool) Tribool {
	res := False()
	for _, cur := range values {
		res = res.Or(cur)
		if res.True() {
			break
		}
	}
	return res
}

// All evaluates the given conditions in order and returns their conjunction.
// Evaluation stops at the first condition reporting False. If a condition
// fails, Unknown and the wrapped error are returned.
func All(conditions ...Condition) (Tribool, error) {
	return fold(conditions, True(), Tribool.And)
}

// Any evaluates the given conditions in order and returns their disjunction.
// Evaluation stops at the first condition reporting True. If a condition
// fails, Unknown and the wrapped error are returned.
func Any(conditions ...Condition) (Tribool, error) {
	return fold(conditions, False(), Tribool.Or)
}

// fold combines condition results starting from the neutral element of op.
// The negation of the neutral element dominates op, so evaluation ends once
// it has been reached.
func fold(conditions []Condition, neutral Tribool, op func(Tribool, Tribool) Tribool) (Tribool, error) {
	res := neutral
	for i, condition := range conditions {
		cur, err := condition.Evaluate()
		if err != nil {
			return Unknown(), fmt.Errorf("failed to evaluate condition %d: %w", i, err)
		}
		res = op(res, cur)
		if !res.Unknown() && res != neutral {
			break
		}
	}
	return res, nil
}
