// Copyright (c) 2025 Sonic Operations Ltd
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at soniclabs.com/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

// Status values pair a mandatory status with an optional value. They allow a
// function to report a diagnostic status and, only if the computation
// produced one, a result. Unlike a Result, the status is always present, also
// when a value is available; it is not limited to signaling failures.
//
// The producer side typically looks as follows:
//
//	func parse(text string) *statusvalue.StatusValue[string, int64] {
//	   value, err := strconv.ParseInt(text, 0, 64)
//	   if err != nil {
//	      return statusvalue.New[string, int64]("not a number")
//	   }
//	   return statusvalue.With("ok", value)
//	}
//
// Consumers check for the presence of a value before accessing it:
//
//	if sv := parse(text); sv.HasValue() {
//	   use(sv.Value())
//	} else {
//	   report(sv.Status())
//	}
//
// Accessing the value of a status value without one is a programming error.
// It panics with a *BadAccessError carrying the status, or, in builds using
// the statusvalue_abort tag, terminates the process.
//
// A StatusValue has a single owner. It is handled through pointers and must
// not be copied; ownership is transferred explicitly using Take. Copies of a
// StatusValue are reported by the copylocks check of go vet.
package statusvalue

import (
	"errors"
	"fmt"
)

// ErrNotConstructed is the panic value raised when a StatusValue is used
// that was not created by New or With, including a nil *StatusValue.
var ErrNotConstructed = errors.New("status value: not constructed by New or With")

// StatusValue holds a status of type S and, optionally, a value of type V.
// Instances are created by New or With; the zero value is not usable.
type StatusValue[S, V any] struct {
	_           noCopy
	status      S
	value       V // valid if hasValue is true, the zero value otherwise
	hasValue    bool
	constructed bool
}

// New creates a StatusValue holding the given status and no value.
func New[S, V any](status S) *StatusValue[S, V] {
	return &StatusValue[S, V]{
		status:      status,
		constructed: true,
	}
}

// With creates a StatusValue holding the given status and value.
func With[S, V any](status S, value V) *StatusValue[S, V] {
	return &StatusValue[S, V]{
		status:      status,
		value:       value,
		hasValue:    true,
		constructed: true,
	}
}

// Take moves the content of sv into a new StatusValue. Afterwards, sv retains
// its status but no longer holds a value, even if it did before.
func (sv *StatusValue[S, V]) Take() *StatusValue[S, V] {
	sv.checkConstructed()
	res := &StatusValue[S, V]{
		status:      sv.status,
		value:       sv.value,
		hasValue:    sv.hasValue,
		constructed: true,
	}
	sv.reset()
	return res
}

// Status returns the status of sv.
func (sv *StatusValue[S, V]) Status() S {
	sv.checkConstructed()
	return sv.status
}

// HasValue reports whether sv holds a value.
func (sv *StatusValue[S, V]) HasValue() bool {
	sv.checkConstructed()
	return sv.hasValue
}

// Ok is an alias of HasValue, intended for truthiness checks.
func (sv *StatusValue[S, V]) Ok() bool {
	return sv.HasValue()
}

// Value returns the value held by sv. If there is none, the access fails
// with a *BadAccessError carrying the status of sv.
func (sv *StatusValue[S, V]) Value() V {
	return *sv.Ptr()
}

// Deref is an alias of Value.
func (sv *StatusValue[S, V]) Deref() V {
	return sv.Value()
}

// Ptr returns a pointer to the value held by sv, which may be used to access
// or modify its members in place. The pointer is only valid as long as sv
// holds the value. If there is no value, the access fails like Value.
func (sv *StatusValue[S, V]) Ptr() *V {
	sv.checkConstructed()
	if !sv.hasValue {
		failBadAccess(sv.status)
	}
	return &sv.value
}

// TakeValue moves the value out of sv. Afterwards, sv retains its status but
// holds no value. If there is no value, the access fails like Value.
func (sv *StatusValue[S, V]) TakeValue() V {
	res := *sv.Ptr()
	sv.reset()
	return res
}

// Get returns the value of sv and true if there is one, or the zero value of
// V and false otherwise. Unlike Value, it never fails.
func (sv *StatusValue[S, V]) Get() (V, bool) {
	sv.checkConstructed()
	return sv.value, sv.hasValue
}

func (sv *StatusValue[S, V]) String() string {
	sv.checkConstructed()
	if !sv.hasValue {
		return fmt.Sprintf("status: %v, no value", sv.status)
	}
	return fmt.Sprintf("status: %v, value: %v", sv.status, sv.value)
}

func (sv *StatusValue[S, V]) reset() {
	var zero V
	sv.value = zero
	sv.hasValue = false
}

func (sv *StatusValue[S, V]) checkConstructed() {
	if sv == nil || !sv.constructed {
		panic(ErrNotConstructed)
	}
}

// noCopy may be embedded into structs which must not be copied after first
// use. Copies are reported by the copylocks check of go vet.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}
