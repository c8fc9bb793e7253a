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

// Tribool is a three-valued logic type following Kleene's semantics.
// It can be either True, False or Unknown. Unknown stands for a truth
// value that is missing or could not be determined and is never treated
// as false. The zero value is Unknown.
type Tribool struct {
	value byte
}

const (
	unknownValue byte = iota
	trueValue
	falseValue
)

// New creates a new Tribool with the given value.
func New(value bool) Tribool {
	if value {
		return True()
	}
	return False()
}

// FromOptional converts an optional boolean into a Tribool. A nil value
// is mapped to Unknown.
func FromOptional(value *bool) Tribool {
	if value == nil {
		return Unknown()
	}
	return New(*value)
}

// Unknown creates a new Tribool with unknown value.
func Unknown() Tribool {
	return Tribool{}
}

// False creates a new Tribool with false value.
func False() Tribool {
	return Tribool{value: falseValue}
}

// True creates a new Tribool with true value.
func True() Tribool {
	return Tribool{value: trueValue}
}

// Unknown returns true if the value is unknown.
func (t Tribool) Unknown() bool {
	return t.value == unknownValue
}

// True returns true if the value is true.
func (t Tribool) True() bool {
	return t.value == trueValue
}

// False returns true if the value is false.
func (t Tribool) False() bool {
	return t.value == falseValue
}

// Bool returns the boolean value of t. The second result is false if the
// value is unknown, in which case the first result is meaningless.
func (t Tribool) Bool() (value bool, known bool) {
	return t.True(), !t.Unknown()
}

// Optional projects t onto an optional boolean. Unknown yields nil. Every
// call returns a fresh pointer, so callers may modify the result.
func (t Tribool) Optional() *bool {
	if t.Unknown() {
		return nil
	}
	res := t.True()
	return &res
}

// String returns "TRUE", "FALSE" or "UNKNOWN".
func (t Tribool) String() string {
	switch t.value {
	case trueValue:
		return "TRUE"
	case falseValue:
		return "FALSE"
	default:
		return "UNKNOWN"
	}
}

// Both tables are indexed by the ordinals of the operands and are symmetric.
var (
	andTable = [3][3]Tribool{
		unknownValue: {unknownValue: Unknown(), trueValue: Unknown(), falseValue: False()},
		trueValue:    {unknownValue: Unknown(), trueValue: True(), falseValue: False()},
		falseValue:   {unknownValue: False(), trueValue: False(), falseValue: False()},
	}
	orTable = [3][3]Tribool{
		unknownValue: {unknownValue: Unknown(), trueValue: True(), falseValue: Unknown()},
		trueValue:    {unknownValue: True(), trueValue: True(), falseValue: True()},
		falseValue:   {unknownValue: Unknown(), trueValue: True(), falseValue: False()},
	}
)

// And computes the ternary conjunction of t and other. The result is False
// if any of the operands is False, Unknown if any of them is Unknown, and
// True otherwise.
func (t Tribool) And(other Tribool) Tribool {
	return andTable[t.value][other.value]
}

// Or computes the ternary disjunction of t and other. The result is True
// if any of the operands is True, Unknown if any of them is Unknown, and
// False otherwise.
func (t Tribool) Or(other Tribool) Tribool {
	return orTable[t.value][other.value]
}

// AndOptional is a shortcut for t.And(FromOptional(other)).
func (t Tribool) AndOptional(other *bool) Tribool {
	return t.And(FromOptional(other))
}

// OrOptional is a shortcut for t.Or(FromOptional(other)).
func (t Tribool) OrOptional(other *bool) Tribool {
	return t.Or(FromOptional(other))
}

// And computes the ternary conjunction of two optional booleans, where nil
// represents an unknown value. Unlike a && b, And(nil, false) is false.
func And(a, b *bool) *bool {
	return FromOptional(a).AndOptional(b).Optional()
}

// Or computes the ternary disjunction of two optional booleans, where nil
// represents an unknown value. Unlike a || b, Or(nil, false) is nil.
func Or(a, b *bool) *bool {
	return FromOptional(a).OrOptional(b).Optional()
}
