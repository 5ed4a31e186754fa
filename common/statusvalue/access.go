// Copyright (c) 2025 Sonic Operations Ltd
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at soniclabs.com/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package statusvalue

import (
	"errors"
	"fmt"
)

// ErrBadAccess is matched by every *BadAccessError under errors.Is,
// independently of its status type.
var ErrBadAccess = errors.New("status value: bad access")

// BadAccessError signals an attempt to access the value of a StatusValue
// holding none. It carries the status present at the time of the access.
type BadAccessError[S any] struct {
	status S
}

func newBadAccessError[S any](status S) *BadAccessError[S] {
	return &BadAccessError[S]{status: status}
}

// Status returns the status of the StatusValue whose value was accessed.
func (e *BadAccessError[S]) Status() S {
	return e.status
}

func (e *BadAccessError[S]) Error() string {
	return fmt.Sprintf("%v (status: %v)", ErrBadAccess, e.status)
}

func (e *BadAccessError[S]) Is(target error) bool {
	return target == ErrBadAccess
}

// Recover converts the value obtained from recover() into a *BadAccessError
// with status type S. It reports false for nil and for any other panic value.
//
//	defer func() {
//	   if e, ok := statusvalue.Recover[int](recover()); ok {
//	      log.Printf("no value, status %d", e.Status())
//	   }
//	}()
func Recover[S any](recovered any) (*BadAccessError[S], bool) {
	err, ok := recovered.(error)
	if !ok {
		return nil, false
	}
	var res *BadAccessError[S]
	if !errors.As(err, &res) {
		return nil, false
	}
	return res, true
}
