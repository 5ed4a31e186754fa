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
	"encoding/json"
	"fmt"
	"io"

	"github.com/panoptisDev/statusvalue/common/statusvalue"
	"gopkg.in/yaml.v3"
)

const (
	formatText = "text"
	formatJSON = "json"
	formatYAML = "yaml"
)

// report summarizes the outcome of converting a single input.
type report struct {
	Input    string `json:"input" yaml:"input"`
	Status   string `json:"status,omitempty" yaml:"status,omitempty"`
	HasValue bool   `json:"has_value" yaml:"has_value"`
	Value    *int64 `json:"value,omitempty" yaml:"value,omitempty"`
}

func newReport[S any](input string, status string, sv *statusvalue.StatusValue[S, int64]) report {
	res := report{
		Input:  input,
		Status: status,
	}
	if value, ok := sv.Get(); ok {
		res.HasValue = true
		res.Value = &value
	}
	return res
}

func (r report) String() string {
	switch {
	case r.HasValue && r.Status != "":
		return fmt.Sprintf("%s: '%s' is %d", r.Status, r.Input, *r.Value)
	case r.HasValue:
		return fmt.Sprintf("'%s' is %d", r.Input, *r.Value)
	case r.Status != "":
		return fmt.Sprintf("Error: %s", r.Status)
	}
	return fmt.Sprintf("'%s': no contents", r.Input)
}

func writeReports(out io.Writer, format string, reports []report) error {
	switch format {
	case formatText:
		for _, r := range reports {
			if _, err := fmt.Fprintln(out, r); err != nil {
				return err
			}
		}
		return nil
	case formatJSON:
		encoder := json.NewEncoder(out)
		encoder.SetIndent("", "  ")
		return encoder.Encode(reports)
	case formatYAML:
		encoder := yaml.NewEncoder(out)
		encoder.SetIndent(2)
		if err := encoder.Encode(reports); err != nil {
			return fmt.Errorf("failed to encode reports: %w", err)
		}
		return encoder.Close()
	}
	return fmt.Errorf("unsupported output format %q, supported are %s, %s and %s", format, formatText, formatJSON, formatYAML)
}
