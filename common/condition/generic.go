// Copyright (c) 2025 Sonic Operations Ltd
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at soniclabs.com/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package condition

import "fmt"

// GenericCode enumerates the codes of the generic category.
type GenericCode int

const (
	Success GenericCode = iota
	InvalidArgument
	ResultOutOfRange
)

var generic Category = genericCategory{}

// Generic returns the category of platform independent conditions.
func Generic() Category {
	return generic
}

type genericCategory struct{}

func (genericCategory) Name() string {
	return "generic"
}

func (genericCategory) Message(code int) string {
	switch GenericCode(code) {
	case Success:
		return "success"
	case InvalidArgument:
		return "invalid argument"
	case ResultOutOfRange:
		return "numerical result out of range"
	}
	return fmt.Sprintf("unknown condition %d", code)
}
