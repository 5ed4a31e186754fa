// Copyright (c) 2025 Sonic Operations Ltd
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at soniclabs.com/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package main

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/panoptisDev/statusvalue/common/condition"
	"github.com/panoptisDev/statusvalue/common/maybe"
	"github.com/panoptisDev/statusvalue/common/statusvalue"
	"github.com/urfave/cli/v2"
)

var MessageCmd = cli.Command{
	Name:      "message",
	Usage:     "converts text to numbers, describing the outcome by a message",
	ArgsUsage: "<text>...",
	Flags:     []cli.Flag{&outputFlag},
	Action: func(ctx *cli.Context) error {
		return convert(ctx, func(text string) report {
			sv := toIntWithMessage(text)
			return newReport(text, sv.Status(), sv)
		})
	},
}

var ConditionCmd = cli.Command{
	Name:      "condition",
	Usage:     "converts text to numbers, describing the outcome by a condition",
	ArgsUsage: "<text>...",
	Flags:     []cli.Flag{&outputFlag},
	Action: func(ctx *cli.Context) error {
		return convert(ctx, func(text string) report {
			sv := toIntWithCondition(text)
			return newReport(text, sv.Status().Message(), sv)
		})
	},
}

var MaybeCmd = cli.Command{
	Name:      "maybe",
	Usage:     "converts text to numbers, only reporting whether it succeeded",
	ArgsUsage: "<text>...",
	Flags:     []cli.Flag{&outputFlag},
	Action: func(ctx *cli.Context) error {
		return convert(ctx, func(text string) report {
			return newReport(text, "", toIntMaybe(text))
		})
	},
}

var errNoInput = errors.New("no text to convert provided")

func convert(ctx *cli.Context, toReport func(string) report) error {
	texts := ctx.Args().Slice()
	if len(texts) == 0 {
		return errNoInput
	}
	reports := make([]report, 0, len(texts))
	for _, text := range texts {
		reports = append(reports, toReport(text))
	}
	return writeReports(ctx.App.Writer, ctx.String(outputFlag.Name), reports)
}

func parseInt(text string) (int64, error) {
	return strconv.ParseInt(text, 0, 64)
}

func toIntWithMessage(text string) *statusvalue.StatusValue[string, int64] {
	value, err := parseInt(text)
	if errors.Is(err, strconv.ErrRange) {
		return statusvalue.New[string, int64](fmt.Sprintf("'%s' is out of range", text))
	}
	if err != nil {
		return statusvalue.New[string, int64](fmt.Sprintf("'%s' isn't a number", text))
	}
	return statusvalue.With("excellent", value)
}

func toIntWithCondition(text string) *statusvalue.StatusValue[condition.Condition, int64] {
	value, err := parseInt(text)
	if errors.Is(err, strconv.ErrRange) {
		return statusvalue.New[condition.Condition, int64](condition.Make(condition.ResultOutOfRange))
	}
	if err != nil {
		return statusvalue.New[condition.Condition, int64](condition.Make(condition.InvalidArgument))
	}
	return statusvalue.With(condition.Condition{}, value)
}

func toIntMaybe(text string) *maybe.Maybe[int64] {
	value, err := parseInt(text)
	if err != nil {
		return maybe.None[int64]()
	}
	return maybe.Some(value)
}
