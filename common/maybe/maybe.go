// Copyright (c) 2025 Sonic Operations Ltd
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at soniclabs.com/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

// Package maybe provides an optional value built on a status value whose
// status carries no information.
package maybe

import "github.com/panoptisDev/statusvalue/common/statusvalue"

// Status is the status of every Maybe. It carries no information.
type Status struct{}

// Maybe holds either a value of type T or nothing.
type Maybe[T any] = statusvalue.StatusValue[Status, T]

// Some creates a Maybe holding the given value.
func Some[T any](value T) *Maybe[T] {
	return statusvalue.With(Status{}, value)
}

// None creates a Maybe holding nothing.
func None[T any]() *Maybe[T] {
	return statusvalue.New[Status, T](Status{})
}
