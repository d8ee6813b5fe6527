// Copyright The Shipwright Contributors
//
// SPDX-License-Identifier: Apache-2.0

package resources

import (
	"encoding/json"
	"fmt"
	"io"

	"sigs.k8s.io/yaml"
)

// Supported output formats
const (
	FormatYAML  = "yaml"
	FormatJSON  = "json"
	FormatTable = "table"
)

// Encode writes the accumulated resources as a v1 List in the given format
func (b *ListBuilder) Encode(w io.Writer, format string) error {
	list, err := b.Build()
	if err != nil {
		return err
	}

	var data []byte
	switch format {
	case FormatYAML, "":
		data, err = yaml.Marshal(list)

	case FormatJSON:
		data, err = json.MarshalIndent(list, "", "  ")
		data = append(data, '\n')

	case FormatTable:
		return b.PrintTable(w)

	default:
		return fmt.Errorf("unsupported output format %q", format)
	}

	if err != nil {
		return fmt.Errorf("failed to encode resource list: %w", err)
	}

	_, err = w.Write(data)
	return err
}
