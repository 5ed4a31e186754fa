// Copyright (c) 2025 Sonic Operations Ltd
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at soniclabs.com/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

//go:build !statusvalue_abort

package statusvalue_test

import (
	"fmt"

	"github.com/panoptisDev/statusvalue/common/statusvalue"
)

func ExampleRecover() {
	defer func() {
		if err, ok := statusvalue.Recover[int](recover()); ok {
			fmt.Println("no value, status", err.Status())
		}
	}()
	statusvalue.New[int, string](7).Value()
	// Output:
	// no value, status 7
}
