// Copyright (c) 2025 Sonic Operations Ltd
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at soniclabs.com/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

// Package condition provides Condition, a portable status describing the
// outcome of an operation through a numeric code and the category defining
// its meaning. Conditions are intended to be used as the status of a
// statusvalue.StatusValue.
package condition

//go:generate mockgen -source condition.go -destination condition_mocks.go -package condition

import (
	"errors"
	"fmt"
	"reflect"
)

// Category defines the meaning of a family of condition codes. Categories
// should be of comparable types, such as pointers or empty structs.
// Categories of other types are identified by their dynamic type and name.
type Category interface {
	// Name returns a short identifier of the category.
	Name() string
	// Message describes the given code of this category.
	Message(code int) string
}

// Condition is a code within a Category. The zero value represents success
// in the generic category. Codes other than zero denote failures. Conditions
// should be compared using Equal, since == panics for categories of
// non-comparable types.
type Condition struct {
	code     int
	category Category
}

// New creates a condition with the given code in the given category. A nil
// category denotes the generic category.
func New(code int, category Category) Condition {
	return Condition{code: code, category: category}
}

// Make creates a condition for the given code of the generic category.
func Make(code GenericCode) Condition {
	return Condition{code: int(code)}
}

func (c Condition) Code() int {
	return c.code
}

// Category returns the category of c, which is the generic category if none
// was specified on creation.
func (c Condition) Category() Category {
	if c.category == nil {
		return generic
	}
	return c.category
}

// Message describes c according to its category.
func (c Condition) Message() string {
	return c.Category().Message(c.code)
}

// OK reports whether c denotes success.
func (c Condition) OK() bool {
	return c.code == 0
}

func (c Condition) String() string {
	return fmt.Sprintf("%s:%d %s", c.Category().Name(), c.code, c.Message())
}

// Err converts c into an error. It returns nil if c denotes success.
func (c Condition) Err() error {
	if c.OK() {
		return nil
	}
	return &Error{Condition: c}
}

// Equal reports whether c and other share code and category.
func (c Condition) Equal(other Condition) bool {
	return c.code == other.code && sameCategory(c.Category(), other.Category())
}

func sameCategory(a, b Category) bool {
	if reflect.TypeOf(a) != reflect.TypeOf(b) {
		return false
	}
	if reflect.ValueOf(a).Comparable() {
		return a == b
	}
	return a.Name() == b.Name()
}

// Error is the error representation of a failure condition.
type Error struct {
	Condition Condition
}

func (e *Error) Error() string {
	return e.Condition.Message()
}

// Is reports whether target is an *Error with an equal condition.
func (e *Error) Is(target error) bool {
	var other *Error
	if !errors.As(target, &other) {
		return false
	}
	return e.Condition.Equal(other.Condition)
}
